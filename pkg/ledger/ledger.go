// Package ledger provides typed read/write access to the IntentManager and
// ChunkExecutor contracts. It is the only package that talks to the chain;
// everything above it works with models and classified errors.
package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
	"github.com/lip-protocol/lip-coordinator/pkg/contracts"
	"github.com/lip-protocol/lip-coordinator/pkg/logger"
	"github.com/lip-protocol/lip-coordinator/pkg/models"
	"github.com/lip-protocol/lip-coordinator/pkg/wallet"
)

const (
	// DefaultConfirmationTimeout bounds how long a confirmation watch waits
	// before surfacing a timeout. The transaction may still confirm later.
	DefaultConfirmationTimeout = 5 * time.Minute

	// DefaultReceiptPollInterval is how often the confirmation watch polls
	// for a receipt.
	DefaultReceiptPollInterval = 2 * time.Second
)

// CreateParams holds the inputs for a new liquidity intent
type CreateParams struct {
	Pool           models.PoolKey
	TickLower      int32
	TickUpper      int32
	TotalLiquidity *big.Int
	MaxChunk       *big.Int
}

// Validate checks the data-model invariants locally so a doomed call is never
// submitted to the ledger
func (p CreateParams) Validate() error {
	if p.Pool.Currency0 == (common.Address{}) || p.Pool.Currency1 == (common.Address{}) {
		return clienterrors.Validationf("pool currencies must be set")
	}
	if p.Pool.Currency0 == p.Pool.Currency1 {
		return clienterrors.Validationf("pool currencies must differ")
	}
	if p.TickLower >= p.TickUpper {
		return clienterrors.Validationf("tickLower %d must be below tickUpper %d", p.TickLower, p.TickUpper)
	}
	if p.TotalLiquidity == nil || p.TotalLiquidity.Sign() <= 0 {
		return clienterrors.Validationf("totalLiquidity must be positive")
	}
	if p.MaxChunk == nil || p.MaxChunk.Sign() <= 0 {
		return clienterrors.Validationf("maxChunk must be positive")
	}
	if p.MaxChunk.Cmp(p.TotalLiquidity) > 0 {
		return clienterrors.Validationf("maxChunk %s exceeds totalLiquidity %s", p.MaxChunk, p.TotalLiquidity)
	}
	return nil
}

// Client is the ledger access interface consumed by the cache, tracker and
// coordinator. The handle returned by state-changing calls is the transaction
// hash used to poll confirmation.
type Client interface {
	CreateIntent(ctx context.Context, params CreateParams) (common.Hash, error)
	ExecuteChunk(ctx context.Context, intentID uint64, chunkLiquidity *big.Int) (common.Hash, error)
	CancelIntent(ctx context.Context, intentID uint64) (common.Hash, error)
	GetIntent(ctx context.Context, intentID uint64) (models.Intent, error)
	GetIntentCount(ctx context.Context) (uint64, error)
	WaitConfirmation(ctx context.Context, handle common.Hash) error
	Account() common.Address
}

// Narrow contract interfaces so tests can substitute fakes for the bindings

type intentManagerReader interface {
	GetIntent(opts *bind.CallOpts, intentId *big.Int) (contracts.IntentManagerIntent, error)
	NextIntentId(opts *bind.CallOpts) (*big.Int, error)
}

type intentManagerWriter interface {
	CreateIntent(opts *bind.TransactOpts, pool contracts.PoolKey, tickLower, tickUpper, totalLiquidity, maxChunk *big.Int) (*types.Transaction, error)
	CancelIntent(opts *bind.TransactOpts, intentId *big.Int) (*types.Transaction, error)
}

type chunkExecutorWriter interface {
	ExecuteChunk(opts *bind.TransactOpts, intentId, chunkLiquidity *big.Int) (*types.Transaction, error)
}

type receiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// EthClient implements Client against a live RPC endpoint
type EthClient struct {
	manager       intentManagerReader
	managerWriter intentManagerWriter
	executor      chunkExecutorWriter
	receipts      receiptReader
	provider      wallet.Provider
	lg            logger.Logger

	confirmationTimeout time.Duration
	receiptPollInterval time.Duration
}

var _ Client = (*EthClient)(nil)

// New dials the RPC endpoint and binds both contracts. The wallet provider
// may be nil for a read-only client; writes then fail with a no-wallet error.
func New(rpcURL string, intentManagerAddr, chunkExecutorAddr common.Address, provider wallet.Provider, lg logger.Logger) (*EthClient, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, clienterrors.Connectivity("failed to connect to RPC endpoint", err)
	}

	manager, err := contracts.NewIntentManager(intentManagerAddr, client)
	if err != nil {
		return nil, clienterrors.Connectivity("failed to bind IntentManager", err)
	}

	executor, err := contracts.NewChunkExecutor(chunkExecutorAddr, client)
	if err != nil {
		return nil, clienterrors.Connectivity("failed to bind ChunkExecutor", err)
	}

	if lg == nil {
		lg = &logger.EmptyLogger{}
	}

	return &EthClient{
		manager:             &manager.IntentManagerCaller,
		managerWriter:       &manager.IntentManagerTransactor,
		executor:            &executor.ChunkExecutorTransactor,
		receipts:            client,
		provider:            provider,
		lg:                  lg,
		confirmationTimeout: DefaultConfirmationTimeout,
		receiptPollInterval: DefaultReceiptPollInterval,
	}, nil
}

// SetConfirmationTimeout overrides the confirmation watch upper bound
func (c *EthClient) SetConfirmationTimeout(d time.Duration) {
	if d > 0 {
		c.confirmationTimeout = d
	}
}

// Account returns the submitting account, or the zero address for a
// read-only client
func (c *EthClient) Account() common.Address {
	if c.provider == nil {
		return common.Address{}
	}
	return c.provider.Account()
}

// CreateIntent validates params locally, then submits a createIntent call.
// It returns as soon as the ledger accepts the transaction.
func (c *EthClient) CreateIntent(ctx context.Context, params CreateParams) (common.Hash, error) {
	if err := params.Validate(); err != nil {
		return common.Hash{}, err
	}

	opts, err := c.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	pool := contracts.PoolKey{
		Currency0:   params.Pool.Currency0,
		Currency1:   params.Pool.Currency1,
		Fee:         big.NewInt(int64(params.Pool.Fee)),
		TickSpacing: big.NewInt(int64(params.Pool.TickSpacing)),
		Hooks:       params.Pool.Hooks,
	}

	tx, err := c.managerWriter.CreateIntent(
		opts,
		pool,
		big.NewInt(int64(params.TickLower)),
		big.NewInt(int64(params.TickUpper)),
		params.TotalLiquidity,
		params.MaxChunk,
	)
	if err != nil {
		return common.Hash{}, clienterrors.ClassifyRPC(err)
	}

	c.lg.InfoWith(logger.Ledger, "Submitted createIntent tx %s (total: %s, maxChunk: %s)",
		tx.Hash().Hex(), params.TotalLiquidity.String(), params.MaxChunk.String())
	return tx.Hash(), nil
}

// ExecuteChunk submits an executeChunk call. Only chunkLiquidity > 0 is
// checked locally; maxChunk and remaining-liquidity violations depend on
// current ledger state and are rejected asynchronously by the contract.
func (c *EthClient) ExecuteChunk(ctx context.Context, intentID uint64, chunkLiquidity *big.Int) (common.Hash, error) {
	if chunkLiquidity == nil || chunkLiquidity.Sign() <= 0 {
		return common.Hash{}, clienterrors.Validationf("chunkLiquidity must be positive")
	}

	opts, err := c.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := c.executor.ExecuteChunk(opts, new(big.Int).SetUint64(intentID), chunkLiquidity)
	if err != nil {
		return common.Hash{}, clienterrors.ClassifyRPC(err)
	}

	c.lg.InfoWith(logger.Ledger, "Submitted executeChunk tx %s (intent: %d, chunk: %s)",
		tx.Hash().Hex(), intentID, chunkLiquidity.String())
	return tx.Hash(), nil
}

// CancelIntent submits a cancelIntent call. Ownership and active-state checks
// are enforced by the contract.
func (c *EthClient) CancelIntent(ctx context.Context, intentID uint64) (common.Hash, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := c.managerWriter.CancelIntent(opts, new(big.Int).SetUint64(intentID))
	if err != nil {
		return common.Hash{}, clienterrors.ClassifyRPC(err)
	}

	c.lg.InfoWith(logger.Ledger, "Submitted cancelIntent tx %s (intent: %d)", tx.Hash().Hex(), intentID)
	return tx.Hash(), nil
}

// GetIntent reads one intent. Ids at or beyond nextIntentId return a
// not-found error: the contract would hand back a zero-valued struct for
// them, which is indistinguishable from a real record without this check.
func (c *EthClient) GetIntent(ctx context.Context, intentID uint64) (models.Intent, error) {
	count, err := c.GetIntentCount(ctx)
	if err != nil {
		return models.Intent{}, err
	}
	if intentID >= count {
		return models.Intent{}, clienterrors.NotFoundf("intent %d does not exist (next id: %d)", intentID, count)
	}

	raw, err := c.manager.GetIntent(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(intentID))
	if err != nil {
		return models.Intent{}, clienterrors.ClassifyRPC(err)
	}

	return intentFromContract(intentID, raw), nil
}

// GetIntentCount reads the monotonically increasing nextIntentId counter
func (c *EthClient) GetIntentCount(ctx context.Context) (uint64, error) {
	next, err := c.manager.NextIntentId(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, clienterrors.ClassifyRPC(err)
	}
	return next.Uint64(), nil
}

// WaitConfirmation polls for the receipt of a submitted transaction until it
// is included, the watch times out, or ctx is cancelled. A timeout does not
// assert on-chain failure; the transaction may still confirm later.
func (c *EthClient) WaitConfirmation(ctx context.Context, handle common.Hash) error {
	watchCtx, cancel := context.WithTimeout(ctx, c.confirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(c.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.receipts.TransactionReceipt(watchCtx, handle)
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusSuccessful {
				c.lg.InfoWith(logger.Ledger, "Transaction %s confirmed in block %d", handle.Hex(), receipt.BlockNumber.Uint64())
				return nil
			}
			return clienterrors.Rejected("transaction reverted on ledger", nil)
		}

		select {
		case <-watchCtx.Done():
			if ctx.Err() != nil {
				// Caller abandoned the watch; ledger outcome is unaffected
				return ctx.Err()
			}
			return clienterrors.Timeout("confirmation watch expired; refresh to observe the outcome")
		case <-ticker.C:
		}
	}
}

func (c *EthClient) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.provider == nil {
		return nil, clienterrors.NoWallet("no wallet provider configured")
	}
	return c.provider.TransactOpts(ctx)
}

// intentFromContract converts the raw ABI tuple into the client data model
func intentFromContract(id uint64, raw contracts.IntentManagerIntent) models.Intent {
	return models.Intent{
		ID:    id,
		Owner: raw.Lp,
		Pool: models.PoolKey{
			Currency0:   raw.Pool.Currency0,
			Currency1:   raw.Pool.Currency1,
			Fee:         uint32(raw.Pool.Fee.Uint64()),
			TickSpacing: int32(raw.Pool.TickSpacing.Int64()),
			Hooks:       raw.Pool.Hooks,
		},
		TickLower:         int32(raw.TickLower.Int64()),
		TickUpper:         int32(raw.TickUpper.Int64()),
		TotalLiquidity:    raw.TotalLiquidity,
		ExecutedLiquidity: raw.ExecutedLiquidity,
		MaxChunk:          raw.MaxChunk,
		Active:            raw.Active,
	}
}
