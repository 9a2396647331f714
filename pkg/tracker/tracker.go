// Package tracker drives the finite-state lifecycle of submitted ledger
// actions: Idle -> Submitting -> PendingConfirmation -> Confirmed | Failed.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
	"github.com/lip-protocol/lip-coordinator/pkg/logger"
	"github.com/lip-protocol/lip-coordinator/pkg/metrics"
	"github.com/lip-protocol/lip-coordinator/pkg/models"
)

// ConfirmationWaiter is the ledger surface the tracker uses to watch a
// submitted transaction until inclusion
type ConfirmationWaiter interface {
	WaitConfirmation(ctx context.Context, handle common.Hash) error
}

// Tracker tracks at most one in-flight action per account. A second
// submission while one is pending is refused locally; the ledger itself
// permits concurrent actions from different accounts.
type Tracker struct {
	waiter      ConfirmationWaiter
	lg          logger.Logger
	onConfirmed func()

	mu      sync.Mutex
	current *models.SubmittedAction
	history []models.SubmittedAction
}

// New creates a tracker. onConfirmed is invoked after every confirmed action
// and is wired to the cache refresh; it may be nil.
func New(waiter ConfirmationWaiter, onConfirmed func(), lg logger.Logger) *Tracker {
	if lg == nil {
		lg = &logger.EmptyLogger{}
	}
	return &Tracker{
		waiter:      waiter,
		lg:          lg,
		onConfirmed: onConfirmed,
	}
}

// Begin transitions Idle -> Submitting for a new action. It fails if another
// action from this account has not reached a terminal state yet.
func (t *Tracker) Begin(kind models.ActionKind, account common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil && !t.current.Status.Terminal() {
		return clienterrors.Validationf("a %s action is still %s; wait for it to complete",
			t.current.Kind, t.current.Status)
	}

	now := time.Now()
	t.current = &models.SubmittedAction{
		Kind:        kind,
		Status:      models.StatusSubmitting,
		Account:     account,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	t.lg.DebugWith(logger.Tracker, "Action %s submitting for %s", kind, account.Hex())
	return nil
}

// FailSubmission transitions Submitting -> Failed when the submission itself
// was rejected (local validation, declined wallet prompt). The action never
// reaches PendingConfirmation.
func (t *Tracker) FailSubmission(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil || t.current.Status != models.StatusSubmitting {
		return
	}

	t.current.Status = models.StatusFailed
	t.current.Err = err
	t.current.UpdatedAt = time.Now()
	t.archiveLocked()

	metrics.ActionsCompleted.WithLabelValues(string(t.current.Kind), "failed").Inc()
	t.lg.ErrorWith(logger.Tracker, "Action %s failed before submission: %v", t.current.Kind, err)
}

// Submitted transitions Submitting -> PendingConfirmation once the ledger
// accepted the action, and starts the confirmation watch. The returned
// channel delivers the terminal action state.
func (t *Tracker) Submitted(ctx context.Context, handle common.Hash) <-chan models.SubmittedAction {
	t.mu.Lock()
	done := make(chan models.SubmittedAction, 1)

	if t.current == nil || t.current.Status != models.StatusSubmitting {
		t.mu.Unlock()
		close(done)
		return done
	}

	t.current.Status = models.StatusPendingConfirmation
	t.current.Handle = handle
	t.current.UpdatedAt = time.Now()
	kind := t.current.Kind
	submittedAt := t.current.SubmittedAt
	t.mu.Unlock()

	metrics.ActionsSubmitted.WithLabelValues(string(kind)).Inc()
	t.lg.InfoWith(logger.Tracker, "Action %s pending confirmation (tx %s)", kind, handle.Hex())

	go t.watch(ctx, handle, kind, submittedAt, done)
	return done
}

// watch suspends on the confirmation result without blocking other work
func (t *Tracker) watch(ctx context.Context, handle common.Hash, kind models.ActionKind, submittedAt time.Time, done chan models.SubmittedAction) {
	err := t.waiter.WaitConfirmation(ctx, handle)

	t.mu.Lock()
	if t.current == nil || t.current.Handle != handle || t.current.Status != models.StatusPendingConfirmation {
		// The watch was superseded; nothing to record
		t.mu.Unlock()
		close(done)
		return
	}

	if err != nil {
		t.current.Status = models.StatusFailed
		t.current.Err = err
		t.current.UpdatedAt = time.Now()
		terminal := *t.current
		t.archiveLocked()
		t.mu.Unlock()

		metrics.ActionsCompleted.WithLabelValues(string(kind), "failed").Inc()
		if ce, ok := err.(*clienterrors.Error); ok {
			metrics.ActionErrors.WithLabelValues(string(kind), string(ce.Kind)).Inc()
		}
		t.lg.ErrorWith(logger.Tracker, "Action %s failed: %v", kind, err)
		done <- terminal
		close(done)
		return
	}

	t.current.Status = models.StatusConfirmed
	t.current.UpdatedAt = time.Now()
	terminal := *t.current
	t.archiveLocked()
	t.mu.Unlock()

	metrics.ActionsCompleted.WithLabelValues(string(kind), "confirmed").Inc()
	metrics.ConfirmationTime.WithLabelValues(string(kind)).Observe(time.Since(submittedAt).Seconds())
	t.lg.NoticeWith(logger.Tracker, "Action %s confirmed (tx %s)", kind, handle.Hex())

	if t.onConfirmed != nil {
		t.onConfirmed()
	}
	done <- terminal
	close(done)
}

// archiveLocked appends the current terminal action to the history.
// Caller holds t.mu.
func (t *Tracker) archiveLocked() {
	t.history = append(t.history, *t.current)
}

// Status returns the current action state, or an idle action if none is
// in flight
func (t *Tracker) Status() models.SubmittedAction {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return models.SubmittedAction{Status: models.StatusIdle}
	}
	return *t.current
}

// Pending reports whether an action is awaiting submission or confirmation
func (t *Tracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current != nil && !t.current.Status.Terminal()
}

// History returns all terminal actions recorded this session, oldest first
func (t *Tracker) History() []models.SubmittedAction {
	t.mu.Lock()
	defer t.mu.Unlock()
	history := make([]models.SubmittedAction, len(t.history))
	copy(history, t.history)
	return history
}
