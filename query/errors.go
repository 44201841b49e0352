package query

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when an aggregate or element operation
	// that needs at least one element runs over an empty sequence.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrMultipleMatches is returned when a single-element lookup finds more
	// than one matching element.
	ErrMultipleMatches = errors.New("sequence contains more than one matching element")

	// ErrInvalidArgument is returned for nil functions, negative counts and
	// keys that cannot be hashed.
	ErrInvalidArgument = errors.New("invalid argument")
)

func invalidArgument(op, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, op, fmt.Sprintf(format, args...))
}

// checkKey fails instead of panicking when k cannot be a map key, such as
// an any holding a slice.
func checkKey[K comparable](op string, k K) (err error) {
	defer func() {
		if recover() != nil {
			err = invalidArgument(op, "unhashable key of type %T (use FieldKey for row columns)", k)
		}
	}()
	keysEqual(k, k)
	return nil
}

func keysEqual[K comparable](a, b K) bool { return a == b }

func emptySequence(op string) error {
	return fmt.Errorf("%w: %s", ErrEmptySequence, op)
}
