package vcterror

import (
	"errors"
	"fmt"
)

// ErrIncompleteBody is reported for a test body that stopped through
// runtime.Goexit() without failing a check or calling Succeed.
var ErrIncompleteBody = errors.New("test body exited without completing")

// PanicError wraps a value recovered from a panicking test body.
type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(value any, stack []byte) PanicError {
	return PanicError{
		any:   value,
		Stack: stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}

// Value returns the recovered value.
func (pe PanicError) Value() any {
	return pe.any
}

// Unwrap returns the recovered value when it is an error.
func (pe PanicError) Unwrap() error {
	if err, ok := pe.any.(error); ok {
		return err
	}
	return nil
}
