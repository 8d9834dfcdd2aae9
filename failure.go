package result

import "fmt"

// Failure describes a panic recovered by [Safe]: the operation that was
// running, the recovered value and the stack captured at the recovery
// point.
type Failure struct {
	// Op names the operation passed to Safe.
	Op string
	// Value is the recovered panic value.
	Value any
	// Stack is the formatted goroutine stack at recovery.
	Stack []byte
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: panic: %v", f.Op, f.Value)
}
