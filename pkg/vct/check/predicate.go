package check

import (
	"fmt"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// AssertPred1 checks that pred(a) returns true. A panic inside pred fails the
// check the same way.
func AssertPred1[A any](t *core.T, pred func(A) bool, a A) {
	pred1(t, core.Fatal, "AssertPred1", pred, a)
}

func AssertPred2[A, B any](t *core.T, pred func(A, B) bool, a A, b B) {
	pred2(t, core.Fatal, "AssertPred2", pred, a, b)
}

func ExpectPred1[A any](t *core.T, pred func(A) bool, a A) {
	pred1(t, core.NonFatal, "ExpectPred1", pred, a)
}

func ExpectPred2[A, B any](t *core.T, pred func(A, B) bool, a A, b B) {
	pred2(t, core.NonFatal, "ExpectPred2", pred, a, b)
}

func pred1[A any](t *core.T, kind core.SignalKind, name string, pred func(A) bool, a A) {
	if guard(t, kind, func() bool { return pred(a) }) {
		return
	}
	src := exprs(name, pred, a)
	raise(t, kind, fmt.Sprintf("%s(%s) failed", src[0], src[1]))
}

func pred2[A, B any](t *core.T, kind core.SignalKind, name string, pred func(A, B) bool, a A, b B) {
	if guard(t, kind, func() bool { return pred(a, b) }) {
		return
	}
	src := exprs(name, pred, a, b)
	raise(t, kind, fmt.Sprintf("%s(%s, %s) failed", src[0], src[1], src[2]))
}
