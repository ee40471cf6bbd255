package infra

import (
	"github.com/pkg/errors"
)

// Container misuse errors. They are reported at the call site and never
// recovered inside the containers. Match them with errors.Is.
var (
	// ErrOutOfRange is returned by a missing key lookup, an index beyond the
	// size or front/back on an empty container.
	ErrOutOfRange = errors.New("out of range")
	// ErrLengthError is returned when a requested size exceeds the maximum.
	ErrLengthError = errors.New("length error")
	// ErrInvalidOperation is returned by pop/top on an empty adapter.
	ErrInvalidOperation = errors.New("invalid operation")
)

// OutOfRange wraps ErrOutOfRange with the caller's context.
func OutOfRange(format string, args ...any) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}

// LengthError wraps ErrLengthError with the caller's context.
func LengthError(format string, args ...any) error {
	return errors.Wrapf(ErrLengthError, format, args...)
}

// InvalidOperation wraps ErrInvalidOperation with the caller's context.
func InvalidOperation(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidOperation, format, args...)
}
