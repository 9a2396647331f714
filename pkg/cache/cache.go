// Package cache maintains the client-side materialized view of all known
// intents. The ledger is the sole source of truth; the cache is a read-only
// projection refreshed wholesale.
package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lip-protocol/lip-coordinator/pkg/circuitbreaker"
	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
	"github.com/lip-protocol/lip-coordinator/pkg/logger"
	"github.com/lip-protocol/lip-coordinator/pkg/metrics"
	"github.com/lip-protocol/lip-coordinator/pkg/models"
)

// DefaultRefreshConcurrency bounds the parallel per-id reads during a refresh
const DefaultRefreshConcurrency = 10

// Reader is the ledger read surface the cache depends on
type Reader interface {
	GetIntent(ctx context.Context, intentID uint64) (models.Intent, error)
	GetIntentCount(ctx context.Context) (uint64, error)
}

// refreshCall tracks one in-flight refresh so concurrent triggers can join it
type refreshCall struct {
	done chan struct{}
	err  error
}

// IntentCache holds the id -> intent mapping for the session
type IntentCache struct {
	reader      Reader
	lg          logger.Logger
	breaker     *circuitbreaker.CircuitBreaker
	concurrency int

	mu          sync.RWMutex
	intents     map[uint64]models.Intent
	lastRefresh time.Time

	flightMu sync.Mutex
	inflight *refreshCall
}

// New creates an empty cache reading through the given ledger reader. The
// circuit breaker may be nil to disable endpoint protection.
func New(reader Reader, concurrency int, breaker *circuitbreaker.CircuitBreaker, lg logger.Logger) *IntentCache {
	if concurrency <= 0 {
		concurrency = DefaultRefreshConcurrency
	}
	if lg == nil {
		lg = &logger.EmptyLogger{}
	}
	return &IntentCache{
		reader:      reader,
		lg:          lg,
		breaker:     breaker,
		concurrency: concurrency,
		intents:     make(map[uint64]models.Intent),
	}
}

// Refresh rebuilds the cache from the ledger. Concurrent callers collapse
// into a single in-flight refresh and all observe its result.
func (c *IntentCache) Refresh(ctx context.Context) error {
	c.flightMu.Lock()
	if c.inflight != nil {
		call := c.inflight
		c.flightMu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	c.inflight = call
	c.flightMu.Unlock()

	call.err = c.doRefresh(ctx)

	c.flightMu.Lock()
	c.inflight = nil
	c.flightMu.Unlock()
	close(call.done)

	return call.err
}

func (c *IntentCache) doRefresh(ctx context.Context) error {
	if c.breaker != nil && c.breaker.IsOpen() {
		return clienterrors.Connectivity("refresh suspended: too many recent provider failures", nil)
	}

	start := time.Now()

	count, err := c.reader.GetIntentCount(ctx)
	if err != nil {
		if c.breaker != nil {
			c.breaker.RecordFailure()
		}
		metrics.RefreshesTotal.WithLabelValues("failed").Inc()
		return err
	}

	fresh := make(map[uint64]models.Intent, count)
	var freshMu sync.Mutex
	var wg sync.WaitGroup

	// Bounded window of concurrent per-id reads
	sem := make(chan struct{}, c.concurrency)
	for id := uint64(0); id < count; id++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(id uint64) {
			defer wg.Done()
			defer func() { <-sem }()

			intent, err := c.reader.GetIntent(ctx, id)
			if err != nil {
				// A single failed read does not fail the refresh; the id is
				// absent this cycle and retried on the next one
				c.lg.DebugWith(logger.Cache, "Skipping intent %d this cycle: %v", id, err)
				metrics.RefreshReadFailures.Inc()
				return
			}

			freshMu.Lock()
			fresh[id] = intent
			freshMu.Unlock()
		}(id)
	}
	wg.Wait()

	if ctx.Err() != nil {
		metrics.RefreshesTotal.WithLabelValues("failed").Inc()
		return ctx.Err()
	}

	c.mu.Lock()
	c.intents = fresh
	c.lastRefresh = time.Now()
	c.mu.Unlock()

	if c.breaker != nil {
		c.breaker.Reset()
	}

	metrics.RefreshesTotal.WithLabelValues("success").Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	metrics.CachedIntents.Set(float64(len(fresh)))

	c.lg.InfoWith(logger.Cache, "Refreshed %d of %d intents in %v", len(fresh), count, time.Since(start))
	return nil
}

// Get returns a cached intent by id
func (c *IntentCache) Get(intentID uint64) (models.Intent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	intent, ok := c.intents[intentID]
	return intent, ok
}

// Snapshot returns all cached intents ordered by id ascending
func (c *IntentCache) Snapshot() []models.Intent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	intents := make([]models.Intent, 0, len(c.intents))
	for _, intent := range c.intents {
		intents = append(intents, intent)
	}
	sort.Slice(intents, func(i, j int) bool {
		return intents[i].ID < intents[j].ID
	})
	return intents
}

// Len returns the number of cached intents
func (c *IntentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.intents)
}

// LastRefresh returns when the cache last completed a refresh
func (c *IntentCache) LastRefresh() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefresh
}
