package result

import "github.com/ezavala/result/option"

// Map applies fn to the success value and leaves the failure channel
// untouched. fn is not called on Err.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return Ok[U, E](fn(r.value))
}

// MapErr applies fn to the failure value and leaves the success channel
// untouched. fn is not called on Ok.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}

	return Err[T](fn(r.err))
}

// AndThen chains a fallible step: it returns fn applied to the success
// value, or the original failure unchanged. It sequences fallible
// computations without nesting error checks. fn is not called on Err.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return fn(r.value)
}

// OrElse chains a recovery step on the failure channel: it returns fn
// applied to the failure value, or the original success unchanged.
// fn is not called on Ok.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}

	return fn(r.err)
}

// OkOr converts an Option into a Result, substituting err for absence.
// It lives here rather than on Option because option must not import
// result.
func OkOr[T, E any](o option.Option[T], err E) Result[T, E] {
	v, ok := o.Get()
	if !ok {
		return Err[T](err)
	}

	return Ok[T, E](v)
}

// Of adapts Go's (value, error) return convention: Err when err is
// non-nil, Ok otherwise.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}

	return Ok[T, error](v)
}
