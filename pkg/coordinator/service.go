// Package coordinator wires the ledger client, intent cache, action tracker
// and view projections into a single session-scoped service.
package coordinator

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lip-protocol/lip-coordinator/pkg/cache"
	"github.com/lip-protocol/lip-coordinator/pkg/circuitbreaker"
	"github.com/lip-protocol/lip-coordinator/pkg/config"
	"github.com/lip-protocol/lip-coordinator/pkg/health"
	"github.com/lip-protocol/lip-coordinator/pkg/ledger"
	"github.com/lip-protocol/lip-coordinator/pkg/logger"
	"github.com/lip-protocol/lip-coordinator/pkg/models"
	"github.com/lip-protocol/lip-coordinator/pkg/projection"
	"github.com/lip-protocol/lip-coordinator/pkg/tracker"
	"github.com/lip-protocol/lip-coordinator/pkg/wallet"
)

// refreshTimeout bounds the cache refresh triggered by a confirmed action
const refreshTimeout = 30 * time.Second

// Service coordinates intent state between the ledger and the local session
type Service struct {
	cfg     *config.Config
	lg      logger.Logger
	ledger  ledger.Client
	cache   *cache.IntentCache
	tracker *tracker.Tracker
	breaker *circuitbreaker.CircuitBreaker
	health  *health.Server
}

// NewService creates a coordinator service from configuration. A missing
// private key yields a read-only service; writes fail with a no-wallet error.
func NewService(cfg *config.Config) (*Service, error) {
	lg := logger.NewStdLogger(cfg.LoggerConfig.Coloring, cfg.LoggerConfig.Level)

	var provider wallet.Provider
	if cfg.PrivateKey != "" {
		keyed, err := wallet.NewKeyedProvider(cfg.PrivateKey, big.NewInt(cfg.ChainID))
		if err != nil {
			return nil, err
		}
		provider = keyed
		lg.InfoWith(logger.Coordinator, "Signing as %s", keyed.Account().Hex())
	} else {
		lg.NoticeWith(logger.Coordinator, "No private key configured, running read-only")
	}

	ledgerClient, err := ledger.New(
		cfg.RPCURL,
		common.HexToAddress(cfg.IntentManagerAddress),
		common.HexToAddress(cfg.ChunkExecutorAddress),
		provider,
		lg,
	)
	if err != nil {
		return nil, err
	}
	ledgerClient.SetConfirmationTimeout(cfg.ConfirmationTimeout)

	breaker := circuitbreaker.NewCircuitBreaker(
		cfg.CircuitBreaker.Enabled,
		cfg.CircuitBreaker.Threshold,
		cfg.CircuitBreaker.WindowDuration,
		cfg.CircuitBreaker.ResetTimeout,
	)

	svc := newService(cfg, ledgerClient, breaker, lg)
	svc.health = health.NewServer(cfg.MetricsPort, cfg.ChainID, ledgerClient, svc.cache, breaker)
	return svc, nil
}

// newService assembles the service around an already constructed ledger client
func newService(cfg *config.Config, ledgerClient ledger.Client, breaker *circuitbreaker.CircuitBreaker, lg logger.Logger) *Service {
	if lg == nil {
		lg = &logger.EmptyLogger{}
	}

	svc := &Service{
		cfg:     cfg,
		lg:      lg,
		ledger:  ledgerClient,
		breaker: breaker,
		cache:   cache.New(ledgerClient, cfg.RefreshConcurrency, breaker, lg),
	}
	svc.tracker = tracker.New(ledgerClient, svc.refreshAfterConfirmation, lg)
	return svc
}

// refreshAfterConfirmation re-reads ledger state once an action confirmed,
// so derived views reflect the new executed liquidity and active flags
func (s *Service) refreshAfterConfirmation() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.cache.Refresh(ctx); err != nil {
		s.lg.ErrorWith(logger.Coordinator, "Post-confirmation refresh failed: %v", err)
	}
}

// Start runs the service until ctx is cancelled: the health and metrics
// server, an initial cache refresh and the periodic refresh loop.
func (s *Service) Start(ctx context.Context) {
	if s.health != nil {
		go s.health.Start()
	}

	if err := s.cache.Refresh(ctx); err != nil {
		s.lg.ErrorWith(logger.Coordinator, "Initial refresh failed: %v", err)
	}

	s.lg.InfoWith(logger.Coordinator, "Starting refresh loop with interval %v", s.cfg.RefreshInterval)
	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.lg.NoticeWith(logger.Coordinator, "Context cancelled, shutting down service")
			if s.health != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := s.health.Shutdown(shutdownCtx); err != nil {
					s.lg.ErrorWith(logger.Coordinator, "Health server shutdown: %v", err)
				}
				cancel()
			}
			return
		case <-ticker.C:
			if err := s.cache.Refresh(ctx); err != nil {
				s.lg.ErrorWith(logger.Coordinator, "Periodic refresh failed: %v", err)
			}
		}
	}
}

// CreateIntent submits a new liquidity intent. The returned channel delivers
// the terminal action state once the confirmation watch resolves.
func (s *Service) CreateIntent(ctx context.Context, params ledger.CreateParams) (<-chan models.SubmittedAction, error) {
	if err := s.tracker.Begin(models.ActionCreateIntent, s.ledger.Account()); err != nil {
		return nil, err
	}

	handle, err := s.ledger.CreateIntent(ctx, params)
	if err != nil {
		s.tracker.FailSubmission(err)
		return nil, err
	}
	return s.tracker.Submitted(ctx, handle), nil
}

// ExecuteChunk submits a chunk execution against an existing intent
func (s *Service) ExecuteChunk(ctx context.Context, intentID uint64, chunkLiquidity *big.Int) (<-chan models.SubmittedAction, error) {
	if err := s.tracker.Begin(models.ActionExecuteChunk, s.ledger.Account()); err != nil {
		return nil, err
	}

	handle, err := s.ledger.ExecuteChunk(ctx, intentID, chunkLiquidity)
	if err != nil {
		s.tracker.FailSubmission(err)
		return nil, err
	}
	return s.tracker.Submitted(ctx, handle), nil
}

// CancelIntent submits a cancellation of an existing intent
func (s *Service) CancelIntent(ctx context.Context, intentID uint64) (<-chan models.SubmittedAction, error) {
	if err := s.tracker.Begin(models.ActionCancelIntent, s.ledger.Account()); err != nil {
		return nil, err
	}

	handle, err := s.ledger.CancelIntent(ctx, intentID)
	if err != nil {
		s.tracker.FailSubmission(err)
		return nil, err
	}
	return s.tracker.Submitted(ctx, handle), nil
}

// Refresh forces a cache rebuild from the ledger
func (s *Service) Refresh(ctx context.Context) error {
	return s.cache.Refresh(ctx)
}

// GetIntent returns a cached intent by id
func (s *Service) GetIntent(intentID uint64) (models.Intent, bool) {
	return s.cache.Get(intentID)
}

// AllIntents returns every cached intent with derived progress fields
func (s *Service) AllIntents() []projection.IntentView {
	return projection.AllIntents(s.cache.Snapshot())
}

// OwnedIntents returns the cached intents owned by the signing account
func (s *Service) OwnedIntents() []projection.IntentView {
	return projection.OwnedIntents(s.cache.Snapshot(), s.ledger.Account())
}

// ExecutableIntents returns the cached intents still accepting chunks
func (s *Service) ExecutableIntents() []projection.IntentView {
	return projection.ExecutableIntents(s.cache.Snapshot())
}

// ActionStatus returns the state of the current or most recent action
func (s *Service) ActionStatus() models.SubmittedAction {
	return s.tracker.Status()
}

// ActionHistory returns all terminal actions recorded this session
func (s *Service) ActionHistory() []models.SubmittedAction {
	return s.tracker.History()
}

// Account returns the signing account, or the zero address when read-only
func (s *Service) Account() common.Address {
	return s.ledger.Account()
}
