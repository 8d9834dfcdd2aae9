package option

import "fmt"

// UnwrapError is the panic value raised by Unwrap and Expect (and by
// their Result counterparts) when called on the variant that holds no
// matching value. It signals a bug at the call site and is not meant to
// be recovered as control flow.
type UnwrapError struct {
	Msg string
	// Payload is the value held by the non-matching variant, when it
	// carries one: the failure value for Result.Unwrap, the success
	// value for Result.UnwrapErr. Nil for Option misuse.
	Payload any
}

func (e *UnwrapError) Error() string {
	if e.Payload == nil {
		return e.Msg
	}

	return fmt.Sprintf("%s: %v", e.Msg, e.Payload)
}
