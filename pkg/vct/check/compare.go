package check

import (
	"cmp"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// The failure message of each comparison states the relation that holds
// instead, e.g. a failed Lt reports "a >= b".

func AssertEq[V comparable](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertEq", a == b, "!=", a, b)
}

func AssertNe[V comparable](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertNe", a != b, "==", a, b)
}

func AssertLt[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertLt", a < b, ">=", a, b)
}

func AssertLe[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertLe", a <= b, ">", a, b)
}

func AssertGt[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertGt", a > b, "<=", a, b)
}

func AssertGe[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.Fatal, "AssertGe", a >= b, "<", a, b)
}

func ExpectEq[V comparable](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectEq", a == b, "!=", a, b)
}

func ExpectNe[V comparable](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectNe", a != b, "==", a, b)
}

func ExpectLt[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectLt", a < b, ">=", a, b)
}

func ExpectLe[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectLe", a <= b, ">", a, b)
}

func ExpectGt[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectGt", a > b, "<=", a, b)
}

func ExpectGe[V cmp.Ordered](t *core.T, a, b V) {
	compare(t, core.NonFatal, "ExpectGe", a >= b, "<", a, b)
}

func compare(t *core.T, kind core.SignalKind, name string, ok bool, failOp string, a, b any) {
	if ok {
		return
	}
	raise(t, kind, binaryMessage(exprs(name, a, b), failOp, a, b))
}
