package countvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a Vector is created with a size below one
	// or with a base that pushes the last index past the int range.
	ErrInvalidSize = errors.New("invalid size")

	// ErrOutOfMemory is returned when storage for a Vector cannot be reserved.
	// No Vector is constructed when this is returned.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrClosed is returned by Close on an already closed Vector, and is the
	// panic value (wrapped) for any other use after Close.
	ErrClosed = errors.New("vector is closed")

	// ErrOutOfRange is returned by the checked accessors and the streaming
	// writers when the requested range fails the range gate.
	ErrOutOfRange = errors.New("range out of bounds")
)

// SizeError describes a rejected construction request.
//
// errors.Is(err, ErrInvalidSize) reports true for a *SizeError.
type SizeError struct {
	Size   int
	Base   int
	Reason string
	cause  error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid size %d at base %d: %s", e.Size, e.Base, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidSize) work.
func (e *SizeError) Is(target error) bool { return target == ErrInvalidSize }

func (e *SizeError) Unwrap() error { return e.cause }

// RangeError describes a range that failed the range gate.
//
// errors.Is(err, ErrOutOfRange) reports true for a *RangeError.
type RangeError struct {
	From  int
	To    int
	First int
	Last  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d] not within [%d, %d]", e.From, e.To, e.First, e.Last)
}

// Is makes errors.Is(err, ErrOutOfRange) work.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }
