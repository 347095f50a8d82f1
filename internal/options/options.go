// Package options implements the generic functional options shared by the
// configurable varistat operations (capability limits, run length, VIF threshold).
package options

import (
	"fmt"

	"github.com/arloliu/varistat/errs"
)

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build copies defaults, applies opts to the copy and returns it.
//
// The defaults value is never modified, so package-level default
// configurations can be shared between concurrent callers.
func Build[T any](defaults T, opts ...Option[*T]) (T, error) {
	cfg := defaults
	if err := Apply(&cfg, opts...); err != nil {
		var zero T
		return zero, err
	}

	return cfg, nil
}

// Invalid returns an error wrapping errs.ErrInvalidOption for the named option.
func Invalid(name string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", errs.ErrInvalidOption, name, fmt.Sprintf(format, args...))
}
