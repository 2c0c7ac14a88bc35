package core

import "runtime/debug"

// Termination describes how a function run through Invoke ended. Exactly one
// of the following holds: Completed, Succeeded, Signal != nil, Panic != nil,
// or none of them when the goroutine was stopped by a bare runtime.Goexit().
type Termination struct {
	// The function returned normally.
	Completed bool
	// The function called T.Succeed().
	Succeeded bool
	// A check failed inside the function.
	Signal *Signal
	// The function panicked with a value that is not a *Signal.
	Panic any
	Stack []byte
}

// Invoke runs fn on its own goroutine and waits for it to end, so that checks
// inside fn can stop it with runtime.Goexit() and panics do not escape.
//
// Whatever signal fn raises is reported in the result and does not leak into
// t, which makes nested invocations safe.
func Invoke(t *T, fn func()) Termination {
	savedSignal, savedSucceeded := t.pending, t.succeeded
	t.pending, t.succeeded = nil, false

	var term Termination
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			// recover() returns nil while unwinding from runtime.Goexit().
			if r := recover(); r != nil {
				if signal, ok := r.(*Signal); ok {
					t.pending = signal
					return
				}

				term.Panic = r
				term.Stack = debug.Stack()
			}
		}()

		fn()
		term.Completed = true
	}()

	<-done

	term.Signal = t.pending
	term.Succeeded = t.succeeded && term.Signal == nil && term.Panic == nil
	t.pending, t.succeeded = savedSignal, savedSucceeded

	return term
}
