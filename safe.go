package result

import (
	"runtime/debug"

	"github.com/zeebo/errs"
)

// Safe runs fn and captures its outcome as a Result. A returned error
// is wrapped with stack context; a panic is recovered into an Err
// holding a [*Failure] that names op. Safe is the boundary between
// error-returning code and Result-composing code; inside a chain,
// failures stay plain values.
func Safe[T any](op string, fn func() (T, error)) (r Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T, error](&Failure{
				Op:    op,
				Value: v,
				Stack: debug.Stack(),
			})
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T, error](errs.Wrap(err))
	}

	return Ok[T, error](v)
}
