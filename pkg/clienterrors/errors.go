// Package clienterrors defines the error taxonomy shared by the coordination
// layer. Every error surfaced to a caller is one of these kinds so the
// presentation layer can decide between correcting input, retrying, or
// refreshing.
package clienterrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error into one of the coordination-layer categories
type Kind string

const (
	// KindValidation indicates a local pre-submission check failed; the call
	// never reached the ledger and the caller should correct the input
	KindValidation Kind = "validation"
	// KindNoWallet indicates no usable wallet/signer is available
	KindNoWallet Kind = "no_wallet"
	// KindConnectivity indicates the RPC provider was unreachable; retryable
	KindConnectivity Kind = "connectivity"
	// KindRejected indicates the ledger declined the call; not retryable
	// without changing inputs
	KindRejected Kind = "rejected"
	// KindTimeout indicates a confirmation watch expired with the outcome
	// still unknown; recommend a refresh, not a retry
	KindTimeout Kind = "timeout"
	// KindNotFound indicates a read of a nonexistent intent id
	KindNotFound Kind = "not_found"
)

// Error is a classified coordination-layer error
type Error struct {
	Kind   Kind
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// DisplayReason returns the reason string truncated for UI display. The full
// reason must always be used for logging.
func (e *Error) DisplayReason(maxLen int) string {
	if maxLen <= 0 || len(e.Reason) <= maxLen {
		return e.Reason
	}
	return e.Reason[:maxLen] + "..."
}

// Validationf creates a validation error from a format string
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Reason: fmt.Sprintf(format, args...)}
}

// NoWallet creates a no-wallet error
func NoWallet(reason string) error {
	return &Error{Kind: KindNoWallet, Reason: reason}
}

// Connectivity wraps a transport failure
func Connectivity(reason string, cause error) error {
	return &Error{Kind: KindConnectivity, Reason: reason, Cause: cause}
}

// Rejected wraps a ledger rejection, keeping the ledger's reason verbatim
func Rejected(reason string, cause error) error {
	return &Error{Kind: KindRejected, Reason: reason, Cause: cause}
}

// Timeout creates a timeout error for an ambiguous confirmation outcome
func Timeout(reason string) error {
	return &Error{Kind: KindTimeout, Reason: reason}
}

// NotFoundf creates a not-found error from a format string
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a coordination-layer error of the given kind
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// IsRetryable reports whether the error is transient and worth retrying
func IsRetryable(err error) bool {
	return IsKind(err, KindConnectivity)
}

// ClassifyRPC maps a raw go-ethereum/RPC error onto the taxonomy. Reverts and
// contract-side declines become rejections with the reason kept verbatim;
// transport failures become connectivity errors.
func ClassifyRPC(err error) error {
	if err == nil {
		return nil
	}

	var ce *Error
	if errors.As(err, &ce) {
		return err
	}

	errStr := err.Error()

	// Contract-side declines
	if strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "revert") ||
		strings.Contains(errStr, "invalid opcode") ||
		strings.Contains(errStr, "always failing transaction") {
		return Rejected(errStr, err)
	}

	// Signer-side declines
	if strings.Contains(errStr, "user rejected") ||
		strings.Contains(errStr, "user denied") {
		return Rejected(errStr, err)
	}

	// Transport failures
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "timed out") ||
		strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "no response") ||
		strings.Contains(errStr, "EOF") {
		return Connectivity("provider unreachable", err)
	}

	// Anything else from the ledger is treated as a rejection so the reason
	// reaches the user
	return Rejected(errStr, err)
}
