package check

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// A failed check inside fn counts as a panic for all checks in this file, so
// checks can be tested with checks:
//
//	check.ExpectPanics(t, func() { check.AssertEq(t, 1, 2) })

// AssertPanics checks that fn panics or fails a check.
func AssertPanics(t *core.T, fn func()) {
	panics(t, core.Fatal, "AssertPanics", fn)
}

// AssertNotPanics checks that fn returns without panicking or failing a
// check.
func AssertNotPanics(t *core.T, fn func()) {
	notPanics(t, core.Fatal, "AssertNotPanics", fn)
}

// AssertPanicsAs checks that fn panics with a value of type E. An error value
// also matches when errors.As finds an E in its chain.
func AssertPanicsAs[E any](t *core.T, fn func()) {
	panicsAs[E](t, core.Fatal, "AssertPanicsAs", fn)
}

func ExpectPanics(t *core.T, fn func()) {
	panics(t, core.NonFatal, "ExpectPanics", fn)
}

func ExpectNotPanics(t *core.T, fn func()) {
	notPanics(t, core.NonFatal, "ExpectNotPanics", fn)
}

func ExpectPanicsAs[E any](t *core.T, fn func()) {
	panicsAs[E](t, core.NonFatal, "ExpectPanicsAs", fn)
}

// Runs fn and returns the value it panicked with, or the signal it raised.
func capture(t *core.T, fn func()) (any, bool) {
	term := core.Invoke(t, fn)
	switch {
	case term.Signal != nil:
		return term.Signal, true
	case term.Panic != nil:
		return term.Panic, true
	default:
		return nil, false
	}
}

func describe(v any) string {
	if signal, ok := v.(*core.Signal); ok {
		return signal.Message
	}
	return fmt.Sprint(v)
}

func panics(t *core.T, kind core.SignalKind, name string, fn func()) {
	if _, ok := capture(t, fn); ok {
		return
	}
	raise(t, kind, exprs(name, fn)[0]+" did not panic")
}

func notPanics(t *core.T, kind core.SignalKind, name string, fn func()) {
	v, ok := capture(t, fn)
	if !ok {
		return
	}
	raise(t, kind, exprs(name, fn)[0]+" panicked: "+describe(v))
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func matches[E any](v any) bool {
	if _, ok := v.(E); ok {
		return true
	}

	err, ok := v.(error)
	if !ok {
		return false
	}

	// errors.As panics on targets that are neither interfaces nor errors.
	target := reflect.TypeOf((*E)(nil)).Elem()
	if target.Kind() != reflect.Interface && !target.Implements(errorType) {
		return false
	}

	var e E
	return errors.As(err, &e)
}

func panicsAs[E any](t *core.T, kind core.SignalKind, name string, fn func()) {
	v, ok := capture(t, fn)
	if !ok {
		raise(t, kind, exprs(name, fn)[0]+" did not panic")
	}

	if matches[E](v) {
		return
	}

	raise(t, kind, fmt.Sprintf("%s panicked but value did not match %s: %s",
		exprs(name, fn)[0], reflect.TypeOf((*E)(nil)).Elem(), describe(v)))
}
