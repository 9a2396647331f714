package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
)

// Well-known test key, never funded
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewKeyedProvider(t *testing.T) {
	provider, err := NewKeyedProvider(testPrivateKey, big.NewInt(11155111))
	require.NoError(t, err)

	// Address derived from the well-known hardhat key
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", provider.Account().Hex())
	assert.Equal(t, big.NewInt(11155111), provider.ChainID())
}

func TestNewKeyedProviderEmptyKey(t *testing.T) {
	_, err := NewKeyedProvider("", big.NewInt(1))
	require.Error(t, err)
	assert.True(t, clienterrors.IsKind(err, clienterrors.KindNoWallet))
}

func TestNewKeyedProviderInvalidKey(t *testing.T) {
	_, err := NewKeyedProvider("not-a-key", big.NewInt(1))
	require.Error(t, err)
	assert.True(t, clienterrors.IsKind(err, clienterrors.KindNoWallet))
}

func TestTransactOptsBindsContext(t *testing.T) {
	provider, err := NewKeyedProvider(testPrivateKey, big.NewInt(11155111))
	require.NoError(t, err)

	ctx := context.Background()
	opts, err := provider.TransactOpts(ctx)
	require.NoError(t, err)
	assert.Equal(t, ctx, opts.Context)
	assert.Equal(t, provider.Account(), opts.From)

	// Each call returns a fresh copy so callers cannot race on shared opts
	opts2, err := provider.TransactOpts(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, opts, opts2)
}
