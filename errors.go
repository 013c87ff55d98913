package lazyseq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is used when an operation is called with an argument it cannot accept,
	// such as a negative count. Sequence constructors panic with an error wrapping it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoElements is returned when an element was required, but the sequence produced none that matched.
	ErrNoElements = errors.New("sequence contains no matching element")

	// ErrMoreThanOneElement is returned when exactly one element was required, but the sequence produced more.
	ErrMoreThanOneElement = errors.New("sequence contains more than one matching element")

	// ErrIndexOutOfRange is returned when an index is beyond the end of the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// A DuplicateKeyError is returned when a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the sequence's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// checkCount panics with ErrInvalidArgument if count is negative.
func checkCount(name string, count int) {
	if count < 0 {
		panic(fmt.Errorf("%w: %s must be 0 or positive, got %d", ErrInvalidArgument, name, count))
	}
}
