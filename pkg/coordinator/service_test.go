package coordinator

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
	"github.com/lip-protocol/lip-coordinator/pkg/config"
	"github.com/lip-protocol/lip-coordinator/pkg/ledger"
	"github.com/lip-protocol/lip-coordinator/pkg/models"
)

var testAccount = common.HexToAddress("0x1111111111111111111111111111111111111111")

// fakeLedger simulates contract semantics in memory: submissions hand back a
// handle immediately, state changes apply when the confirmation watch
// resolves, and rule violations surface as rejected confirmations.
type fakeLedger struct {
	mu      sync.Mutex
	account common.Address
	intents []models.Intent
	pending map[common.Hash]func() error
	nextTx  uint64
}

var _ ledger.Client = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		account: testAccount,
		pending: map[common.Hash]func() error{},
	}
}

func (f *fakeLedger) Account() common.Address {
	return f.account
}

func (f *fakeLedger) enqueue(apply func() error) common.Hash {
	f.nextTx++
	handle := common.BigToHash(new(big.Int).SetUint64(f.nextTx))
	f.pending[handle] = apply
	return handle
}

func (f *fakeLedger) CreateIntent(_ context.Context, params ledger.CreateParams) (common.Hash, error) {
	if err := params.Validate(); err != nil {
		return common.Hash{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enqueue(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.intents = append(f.intents, models.Intent{
			ID:                uint64(len(f.intents)),
			Owner:             f.account,
			Pool:              params.Pool,
			TickLower:         params.TickLower,
			TickUpper:         params.TickUpper,
			TotalLiquidity:    new(big.Int).Set(params.TotalLiquidity),
			ExecutedLiquidity: big.NewInt(0),
			MaxChunk:          new(big.Int).Set(params.MaxChunk),
			Active:            true,
		})
		return nil
	}), nil
}

func (f *fakeLedger) ExecuteChunk(_ context.Context, intentID uint64, chunkLiquidity *big.Int) (common.Hash, error) {
	if chunkLiquidity == nil || chunkLiquidity.Sign() <= 0 {
		return common.Hash{}, clienterrors.Validationf("chunkLiquidity must be positive")
	}

	chunk := new(big.Int).Set(chunkLiquidity)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enqueue(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		if intentID >= uint64(len(f.intents)) {
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}
		intent := &f.intents[intentID]
		if !intent.Active {
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}
		if chunk.Cmp(intent.MaxChunk) > 0 {
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}
		if chunk.Cmp(intent.Remaining()) > 0 {
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}
		intent.ExecutedLiquidity = new(big.Int).Add(intent.ExecutedLiquidity, chunk)
		return nil
	}), nil
}

func (f *fakeLedger) CancelIntent(_ context.Context, intentID uint64) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enqueue(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		if intentID >= uint64(len(f.intents)) || !f.intents[intentID].Active {
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}
		f.intents[intentID].Active = false
		return nil
	}), nil
}

func (f *fakeLedger) GetIntent(_ context.Context, intentID uint64) (models.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if intentID >= uint64(len(f.intents)) {
		return models.Intent{}, clienterrors.NotFoundf("intent %d does not exist", intentID)
	}
	return f.intents[intentID], nil
}

func (f *fakeLedger) GetIntentCount(_ context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.intents)), nil
}

func (f *fakeLedger) WaitConfirmation(_ context.Context, handle common.Hash) error {
	f.mu.Lock()
	apply, ok := f.pending[handle]
	delete(f.pending, handle)
	f.mu.Unlock()
	if !ok {
		return clienterrors.NotFoundf("unknown transaction %s", handle.Hex())
	}
	return apply()
}

func newTestService(t *testing.T) (*Service, *fakeLedger) {
	t.Helper()
	fake := newFakeLedger()
	cfg := &config.Config{RefreshConcurrency: 4}
	return newService(cfg, fake, nil, nil), fake
}

func createParams(total, maxChunk int64) ledger.CreateParams {
	return ledger.CreateParams{
		Pool: models.PoolKey{
			Currency0: common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
			Currency1: common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
			Fee:       3000,
		},
		TickLower:      -600,
		TickUpper:      600,
		TotalLiquidity: big.NewInt(total),
		MaxChunk:       big.NewInt(maxChunk),
	}
}

// mustConfirm drives one action to its terminal state and asserts success
func mustConfirm(t *testing.T, done <-chan models.SubmittedAction, err error) models.SubmittedAction {
	t.Helper()
	require.NoError(t, err)
	terminal := <-done
	require.Equal(t, models.StatusConfirmed, terminal.Status)
	return terminal
}

func TestCreateIntentRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)

	done, err := svc.CreateIntent(context.Background(), createParams(1000, 250))
	mustConfirm(t, done, err)

	// Confirmation triggers a refresh, so the new intent is visible
	intent, ok := svc.GetIntent(0)
	require.True(t, ok)
	assert.Equal(t, testAccount, intent.Owner)
	assert.Equal(t, big.NewInt(1000), intent.TotalLiquidity)
	assert.Equal(t, big.NewInt(250), intent.MaxChunk)
	assert.Equal(t, int64(0), intent.ExecutedLiquidity.Int64())
	assert.True(t, intent.Active)
}

func TestCreateIntentValidationNeverSubmits(t *testing.T) {
	svc, fake := newTestService(t)

	params := createParams(1000, 250)
	params.MaxChunk = big.NewInt(2000)
	_, err := svc.CreateIntent(context.Background(), params)
	require.Error(t, err)
	assert.True(t, clienterrors.IsKind(err, clienterrors.KindValidation))
	assert.Empty(t, fake.pending)

	// The failed submission is terminal; a new action may begin at once
	done, err := svc.CreateIntent(context.Background(), createParams(1000, 250))
	mustConfirm(t, done, err)
}

func TestChunkExecutionProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)

	views := svc.ExecutableIntents()
	require.Len(t, views, 1)
	assert.Equal(t, 0.0, views[0].ProgressRatio)
	assert.Equal(t, big.NewInt(1000), views[0].Remaining)

	done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(250))
	mustConfirm(t, done, err)

	views = svc.ExecutableIntents()
	require.Len(t, views, 1)
	assert.InDelta(t, 0.25, views[0].ProgressRatio, 1e-9)
	assert.Equal(t, big.NewInt(750), views[0].Remaining)

	// A chunk above maxChunk is rejected at confirmation and executed
	// liquidity is unchanged
	done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(800))
	require.NoError(t, err)
	terminal := <-done
	assert.Equal(t, models.StatusFailed, terminal.Status)
	assert.True(t, clienterrors.IsKind(terminal.Err, clienterrors.KindRejected))

	require.NoError(t, svc.Refresh(ctx))
	intent, ok := svc.GetIntent(0)
	require.True(t, ok)
	assert.Equal(t, int64(250), intent.ExecutedLiquidity.Int64())
}

func TestExecutedLiquidityIsMonotonic(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)

	previous := int64(0)
	for i := 0; i < 4; i++ {
		done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(250))
		mustConfirm(t, done, err)

		intent, ok := svc.GetIntent(0)
		require.True(t, ok)
		assert.Greater(t, intent.ExecutedLiquidity.Int64(), previous)
		previous = intent.ExecutedLiquidity.Int64()
	}

	// Fully executed intents leave the executable view
	intent, _ := svc.GetIntent(0)
	assert.True(t, intent.IsComplete())
	assert.Empty(t, svc.ExecutableIntents())

	// Any further chunk is rejected; executed liquidity never regresses
	done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(1))
	require.NoError(t, err)
	terminal := <-done
	assert.Equal(t, models.StatusFailed, terminal.Status)

	require.NoError(t, svc.Refresh(ctx))
	intent, _ = svc.GetIntent(0)
	assert.Equal(t, int64(1000), intent.ExecutedLiquidity.Int64())
}

func TestExecuteChunkOnCancelledIntent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)
	done, err = svc.CancelIntent(ctx, 0)
	mustConfirm(t, done, err)

	intent, ok := svc.GetIntent(0)
	require.True(t, ok)
	assert.False(t, intent.Active)
	assert.Empty(t, svc.ExecutableIntents())

	done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(100))
	require.NoError(t, err)
	terminal := <-done
	assert.Equal(t, models.StatusFailed, terminal.Status)
	assert.True(t, clienterrors.IsKind(terminal.Err, clienterrors.KindRejected))

	require.NoError(t, svc.Refresh(ctx))
	intent, _ = svc.GetIntent(0)
	assert.Equal(t, int64(0), intent.ExecutedLiquidity.Int64())
}

func TestCancelTwice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)
	done, err = svc.CancelIntent(ctx, 0)
	mustConfirm(t, done, err)

	// A second cancel is rejected by the ledger; the intent stays inactive
	done, err = svc.CancelIntent(ctx, 0)
	require.NoError(t, err)
	terminal := <-done
	assert.Equal(t, models.StatusFailed, terminal.Status)
	assert.True(t, clienterrors.IsKind(terminal.Err, clienterrors.KindRejected))

	require.NoError(t, svc.Refresh(ctx))
	intent, _ := svc.GetIntent(0)
	assert.False(t, intent.Active)
}

func TestSecondActionWhilePendingIsRefused(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Begin an action but do not resolve it: Begin succeeds, and before the
	// submission resolves a competing action must be refused
	require.NoError(t, svc.tracker.Begin(models.ActionCreateIntent, testAccount))

	_, err := svc.ExecuteChunk(ctx, 0, big.NewInt(100))
	require.Error(t, err)
	assert.True(t, clienterrors.IsKind(err, clienterrors.KindValidation))
}

func TestOwnedIntentsFollowSigningAccount(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)

	owned := svc.OwnedIntents()
	require.Len(t, owned, 1)
	assert.Equal(t, testAccount, owned[0].Owner)

	// Intents created by other accounts are visible but not owned
	fake.mu.Lock()
	fake.intents = append(fake.intents, models.Intent{
		ID:                1,
		Owner:             common.HexToAddress("0x2222222222222222222222222222222222222222"),
		TotalLiquidity:    big.NewInt(500),
		ExecutedLiquidity: big.NewInt(0),
		MaxChunk:          big.NewInt(100),
		Active:            true,
	})
	fake.mu.Unlock()
	require.NoError(t, svc.Refresh(ctx))

	assert.Len(t, svc.AllIntents(), 2)
	assert.Len(t, svc.OwnedIntents(), 1)
	assert.Len(t, svc.ExecutableIntents(), 2)
}

func TestActionHistory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	done, err := svc.CreateIntent(ctx, createParams(1000, 250))
	mustConfirm(t, done, err)

	done, err = svc.ExecuteChunk(ctx, 0, big.NewInt(800))
	require.NoError(t, err)
	<-done

	history := svc.ActionHistory()
	require.Len(t, history, 2)
	assert.Equal(t, models.ActionCreateIntent, history[0].Kind)
	assert.Equal(t, models.StatusConfirmed, history[0].Status)
	assert.Equal(t, models.ActionExecuteChunk, history[1].Kind)
	assert.Equal(t, models.StatusFailed, history[1].Status)
}
