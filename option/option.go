// Package option provides Option[T], a container that either holds a
// value (Some) or holds nothing (None). It replaces nil checks and
// sentinel values with a type the compiler can see.
package option

import "fmt"

// Option holds either a value of type T or nothing. The zero value is
// None. Options are immutable: every operation returns a new value, so
// an Option may be shared across goroutines freely.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the held value.
// It panics with [*UnwrapError] when o is None; use it only where None
// is a programming error.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&UnwrapError{Msg: "option: Unwrap on None"})
	}

	return o.value
}

// UnwrapOr returns the held value, or def when o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// UnwrapOrElse returns the held value, or the result of fn when o is
// None. fn is not called when a value is present.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}

	return o.value
}

// Expect returns the held value.
// It panics with [*UnwrapError] carrying msg when o is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&UnwrapError{Msg: msg})
	}

	return o.value
}

// Filter returns o unchanged when it holds a value accepted by pred,
// otherwise None. pred is not called on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}

	return None[T]()
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
