package check

import "github.com/v-craft/vct-test-unit/pkg/vct/core"

func AssertTrue(t *core.T, condition bool) {
	isTrue(t, core.Fatal, "AssertTrue", condition)
}

func AssertFalse(t *core.T, condition bool) {
	isFalse(t, core.Fatal, "AssertFalse", condition)
}

func ExpectTrue(t *core.T, condition bool) {
	isTrue(t, core.NonFatal, "ExpectTrue", condition)
}

func ExpectFalse(t *core.T, condition bool) {
	isFalse(t, core.NonFatal, "ExpectFalse", condition)
}

func isTrue(t *core.T, kind core.SignalKind, name string, condition bool) {
	if condition {
		return
	}
	raise(t, kind, exprs(name, condition)[0]+" returned false")
}

func isFalse(t *core.T, kind core.SignalKind, name string, condition bool) {
	if !condition {
		return
	}
	raise(t, kind, exprs(name, condition)[0]+" returned true")
}
