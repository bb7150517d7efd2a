package filter

import (
	"errors"
	"fmt"

	"lexibloom/internal/bitmap"
)

var (
	ErrInvalidArgument     = errors.New("filter: invalid argument")
	ErrMissingHashFunction = errors.New("filter: no secondary hash function for item type")
	ErrNullItem            = errors.New("filter: nil item")

	// ErrIndexOutOfRange is reported if a derived bit index ever falls outside
	// the bit array. Correct modulus arithmetic never produces one.
	ErrIndexOutOfRange = bitmap.ErrIndexOutOfRange
)

// ArgumentError describes a rejected constructor parameter.
// It matches ErrInvalidArgument under errors.Is.
type ArgumentError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("filter: invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
