package swiperow

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidSide indicates a side was requested whose action view is not attached.
	ErrInvalidSide = errors.New("side has no attached view")

	// ErrUnknownSide indicates a Side value outside Left, None and Right.
	ErrUnknownSide = errors.New("unknown side")
)

// InvalidSideError is returned when a side is set programmatically but
// cannot be entered. It matches ErrInvalidSide or ErrUnknownSide via errors.Is.
type InvalidSideError struct {
	Side Side   // The side that was requested
	Op   string // Operation that was attempted (e.g., "set_current_side")
	Err  error  // ErrInvalidSide or ErrUnknownSide
}

func (e *InvalidSideError) Error() string {
	return fmt.Sprintf("swiperow: %s %s: %v", e.Op, e.Side, e.Err)
}

func (e *InvalidSideError) Unwrap() error {
	return e.Err
}

// IsInvalidSide checks if an error reports an unusable side.
func IsInvalidSide(err error) bool {
	var sideErr *InvalidSideError
	return errors.As(err, &sideErr)
}

// InfrastructureError represents a failure in the surrounding machinery
// (SDL, input devices, icon decoding, configuration, localization) rather
// than in the swipe interaction itself.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_settings", "open_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swiperow: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swiperow: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
