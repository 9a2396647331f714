package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ActionKind identifies the type of a submitted state-changing action
type ActionKind string

const (
	// ActionCreateIntent creates a new liquidity intent
	ActionCreateIntent ActionKind = "create_intent"
	// ActionExecuteChunk executes one chunk against an existing intent
	ActionExecuteChunk ActionKind = "execute_chunk"
	// ActionCancelIntent deactivates an existing intent
	ActionCancelIntent ActionKind = "cancel_intent"
)

// ActionStatus represents the lifecycle state of a submitted action
type ActionStatus string

const (
	// StatusIdle indicates no action has been started
	StatusIdle ActionStatus = "idle"
	// StatusSubmitting indicates the action is being encoded and signed
	StatusSubmitting ActionStatus = "submitting"
	// StatusPendingConfirmation indicates the ledger accepted the action and
	// the client is awaiting inclusion
	StatusPendingConfirmation ActionStatus = "pending_confirmation"
	// StatusConfirmed is terminal: the action was included successfully
	StatusConfirmed ActionStatus = "confirmed"
	// StatusFailed is terminal: the action failed locally or on the ledger
	StatusFailed ActionStatus = "failed"
)

// Terminal reports whether the status is a terminal state
func (s ActionStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// SubmittedAction records one in-flight client-initiated state change
type SubmittedAction struct {
	Kind        ActionKind     `json:"kind"`
	Status      ActionStatus   `json:"status"`
	Account     common.Address `json:"account"`
	Handle      common.Hash    `json:"handle"`
	Err         error          `json:"-"`
	SubmittedAt time.Time      `json:"submitted_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
