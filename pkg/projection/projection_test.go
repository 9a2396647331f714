package projection

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lip-protocol/lip-coordinator/pkg/models"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func intent(id uint64, owner common.Address, total, executed int64, active bool) models.Intent {
	return models.Intent{
		ID:                id,
		Owner:             owner,
		TotalLiquidity:    big.NewInt(total),
		ExecutedLiquidity: big.NewInt(executed),
		MaxChunk:          big.NewInt(total / 4),
		Active:            active,
	}
}

func TestOwnedIntents(t *testing.T) {
	// Deliberately out of id order to verify sorting
	intents := []models.Intent{
		intent(3, bob, 1000, 0, true),
		intent(1, alice, 1000, 500, true),
		intent(0, alice, 1000, 0, false),
		intent(2, bob, 1000, 1000, true),
	}

	owned := OwnedIntents(intents, alice)
	require.Len(t, owned, 2)
	assert.Equal(t, uint64(0), owned[0].ID)
	assert.Equal(t, uint64(1), owned[1].ID)

	// Ownership filter includes inactive and complete intents
	assert.False(t, owned[0].Active)

	assert.Empty(t, OwnedIntents(intents, common.HexToAddress("0x9999999999999999999999999999999999999999")))
}

func TestExecutableIntents(t *testing.T) {
	intents := []models.Intent{
		intent(0, alice, 1000, 0, false),   // cancelled
		intent(1, alice, 1000, 1000, true), // complete
		intent(2, bob, 1000, 500, true),    // executable
		intent(3, alice, 1000, 0, true),    // executable
	}

	executable := ExecutableIntents(intents)
	require.Len(t, executable, 2)
	assert.Equal(t, uint64(2), executable[0].ID)
	assert.Equal(t, uint64(3), executable[1].ID)
}

func TestDerivedFields(t *testing.T) {
	views := AllIntents([]models.Intent{intent(0, alice, 1000, 250, true)})
	require.Len(t, views, 1)

	assert.InDelta(t, 0.25, views[0].ProgressRatio, 1e-9)
	assert.Equal(t, big.NewInt(750), views[0].Remaining)
	assert.False(t, views[0].IsComplete)

	views = AllIntents([]models.Intent{intent(0, alice, 1000, 1000, true)})
	assert.Equal(t, 1.0, views[0].ProgressRatio)
	assert.True(t, views[0].IsComplete)
}

func TestEmptyInputs(t *testing.T) {
	assert.Empty(t, OwnedIntents(nil, alice))
	assert.Empty(t, ExecutableIntents(nil))
	assert.Empty(t, AllIntents(nil))
}
