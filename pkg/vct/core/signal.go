package core

import "fmt"

type SignalKind int

const (
	// Stops the current test case and the whole run.
	Fatal SignalKind = iota
	// Stops the current test case only.
	NonFatal
	// Anything that went wrong in a test case without a check raising it.
	Unrecognized
)

func (k SignalKind) String() string {
	switch k {
	case Fatal:
		return "fatal"
	case NonFatal:
		return "non-fatal"
	case Unrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Signal is the outcome of a failed check. It lives only until the runner has
// handled the test case that raised it.
type Signal struct {
	Kind    SignalKind
	Message string
}

func NewSignal(kind SignalKind, message string) *Signal {
	return &Signal{Kind: kind, Message: message}
}

func (s *Signal) Error() string {
	return fmt.Sprintf("%s failure: %s", s.Kind, s.Message)
}
