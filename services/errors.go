package services

import (
	"errors"
	"fmt"
)

// Error taxonomy for the bag and checkout path. Everything here is caught at
// the controller boundary and converted to a non-throwing, user-visible
// response; nothing is fatal to browsing.

// RemoteError wraps a failed hosted-platform call (network or platform-side
// fault, including malformed response rows rejected at the gateway).
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("platform call %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ValidationError reports a requested quantity rejected against current
// stock, either by the platform or by the reconciler's own ceiling check.
// Surfaced as a rejected action, not a crash.
type ValidationError struct {
	VariantID int64
	Requested int
	Detail    string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("quantity %d for variant %d exceeds available stock",
		e.Requested, e.VariantID)
}

// ErrWidgetUnavailable is returned by checkout when the payment gateway is
// not configured or cannot be reached. Retryable.
var ErrWidgetUnavailable = errors.New("payment widget unavailable")

// ErrBagNotReady guards the checkout precondition: the bag must be in the
// Ready state and non-empty before a manifest can be handed off.
var ErrBagNotReady = errors.New("bag is not ready for checkout")

// ErrVariantBusy is returned when a mutation is requested for a variant whose
// previous mutation-plus-refetch cycle has not settled yet.
var ErrVariantBusy = errors.New("variant update already in progress")

// IsRemote reports whether err is a platform failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsValidation reports whether err is a stock validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
