package btypes

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a fixed-capacity container has
	// no free bit left for a new name.
	ErrCapacityExceeded = errors.New("collection capacity has been reached")
	// ErrNameNotFound is returned when a name is absent from a container.
	ErrNameNotFound = errors.New("name not found")
	// ErrInvalidPattern is returned for a name pattern without the {n}
	// placeholder or an empty/malformed value pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrPatternExhausted is returned when a non-repeating value pattern
	// holds fewer values than the requested count.
	ErrPatternExhausted = errors.New("value pattern exhausted")
	// ErrInvalidPosition is returned for a bit position outside a fixed
	// container's width.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidOperation is returned by BStr operations with out-of-range
	// or otherwise unusable arguments.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrEncoding is returned when a BStr encoding conversion fails.
	ErrEncoding = errors.New("encoding error")
)

// MassSetError reports a MassSet call that stopped early. Applied is the
// number of assignments that already took effect; they are not rolled
// back. The underlying cause can be inspected via errors.Unwrap.
type MassSetError struct {
	Applied int
	Count   int
	cause   error
}

func (e *MassSetError) Error() string {
	return fmt.Sprintf("mass set aborted after %d of %d assignments: %v", e.Applied, e.Count, e.cause)
}

func (e *MassSetError) Unwrap() error { return e.cause }
