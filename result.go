// Package result provides Result[T, E], a container that holds either a
// success value of type T or a failure value of type E. Together with
// the option subpackage it forms a small algebra for composing fallible
// computations as values: failures travel through chains of Map and
// AndThen untouched, and callers decide explicitly where to inspect or
// unwrap them.
//
// The package never logs and never recovers on the caller's behalf; its
// only self-generated failure is the [UnwrapError] panic raised on
// misuse of Unwrap and friends.
package result

import (
	"fmt"

	"github.com/ezavala/result/option"
)

// UnwrapError is the panic value raised on misuse of Unwrap, UnwrapErr,
// Expect and ExpectErr. It is an alias of [option.UnwrapError]; both
// packages raise the same type.
type UnwrapError = option.UnwrapError

// Result holds either a success value of type T or a failure value of
// type E; exactly one of the two is ever populated. The zero value is
// Err holding E's zero value.
//
// Results are immutable: every operation returns a new value, so a
// Result may be shared across goroutines freely. T and E are unrelated
// parameters; in particular E does not have to implement error.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

// Err returns a Result holding the failure value e.
func Err[T, E any](e E) Result[T, E] {
	//nolint:exhaustruct
	return Result[T, E]{
		err: e,
	}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value.
// It panics with [*UnwrapError] carrying the failure value when r is
// Err; use it only where Err is a programming error.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Msg: "result: Unwrap on Err", Payload: r.err})
	}

	return r.value
}

// UnwrapOr returns the success value, or def when r is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}

	return r.value
}

// UnwrapOrElse returns the success value, or the result of applying fn
// to the failure value. fn is not called on Ok.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}

	return r.value
}

// Expect returns the success value.
// It panics with [*UnwrapError] carrying msg and the failure value when
// r is Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Msg: msg, Payload: r.err})
	}

	return r.value
}

// UnwrapErr returns the failure value.
// It panics with [*UnwrapError] carrying the success value when r is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{Msg: "result: UnwrapErr on Ok", Payload: r.value})
	}

	return r.err
}

// ExpectErr returns the failure value.
// It panics with [*UnwrapError] carrying msg and the success value when
// r is Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&UnwrapError{Msg: msg, Payload: r.value})
	}

	return r.err
}

// Ok projects the success channel onto an Option: Some for Ok, None for
// Err. The failure value is discarded.
func (r Result[T, E]) Ok() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}

	return option.Some(r.value)
}

// Err projects the failure channel onto an Option: Some for Err, None
// for Ok.
func (r Result[T, E]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}

	return option.Some(r.err)
}

func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}
