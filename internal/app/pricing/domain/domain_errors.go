package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Calculation errors
	ErrInvalidInput       = errors.New("invalid pricing input")
	ErrArithmeticOverflow = errors.New("amount exceeds representable range")

	// Booking status errors
	ErrUnknownStatus           = errors.New("unknown booking status")
	ErrInvalidStatusTransition = errors.New("booking status transition not allowed")
	ErrMissingActor            = errors.New("status change requires an actor")
	ErrBookingClosed           = errors.New("booking is closed for repricing")

	// Lookup errors
	ErrCalculationNotFound = errors.New("price calculation not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

// ValidationError describes which field of the input was rejected and why.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OverflowError names the calculation step whose result left the representable range.
// It matches ErrArithmeticOverflow with errors.Is.
type OverflowError struct {
	Step   string
	Amount string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s = %s", ErrArithmeticOverflow, e.Step, e.Amount)
}

func (e *OverflowError) Unwrap() error {
	return ErrArithmeticOverflow
}
