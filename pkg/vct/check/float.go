package check

import (
	"fmt"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type Float interface {
	~float32 | ~float64
}

// Machine epsilon of each precision.
const (
	DoubleEpsilon = 0x1p-52
	FloatEpsilon  = 0x1p-23
)

// Multiplier applied to the epsilon by the *EqDefault checks.
const defaultULPs = 4

// AssertFloatEq checks that |a-b| <= dv.
func AssertFloatEq[F Float](t *core.T, a, b, dv F) {
	near(t, core.Fatal, "AssertFloatEq", a, b, dv)
}

// AssertFloatNe checks that |a-b| > dv.
func AssertFloatNe[F Float](t *core.T, a, b, dv F) {
	far(t, core.Fatal, "AssertFloatNe", a, b, dv)
}

func ExpectFloatEq[F Float](t *core.T, a, b, dv F) {
	near(t, core.NonFatal, "ExpectFloatEq", a, b, dv)
}

func ExpectFloatNe[F Float](t *core.T, a, b, dv F) {
	far(t, core.NonFatal, "ExpectFloatNe", a, b, dv)
}

// AssertDoubleEqDefault checks that a and b are equal within a relative
// tolerance of 4 float64 epsilons.
func AssertDoubleEqDefault(t *core.T, a, b float64) {
	relative(t, core.Fatal, "AssertDoubleEqDefault", a, b, DoubleEpsilon)
}

func ExpectDoubleEqDefault(t *core.T, a, b float64) {
	relative(t, core.NonFatal, "ExpectDoubleEqDefault", a, b, DoubleEpsilon)
}

// AssertFloatEqDefault is AssertDoubleEqDefault in float32 precision.
func AssertFloatEqDefault(t *core.T, a, b float32) {
	relative(t, core.Fatal, "AssertFloatEqDefault", a, b, FloatEpsilon)
}

func ExpectFloatEqDefault(t *core.T, a, b float32) {
	relative(t, core.NonFatal, "ExpectFloatEqDefault", a, b, FloatEpsilon)
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// WithinRelative reports whether |a-b| <= 4*epsilon*max(|a|,|b|), computed in
// the precision of F.
func WithinRelative[F Float](a, b, epsilon F) bool {
	return abs(a-b) <= defaultULPs*epsilon*max(abs(a), abs(b))
}

func near[F Float](t *core.T, kind core.SignalKind, name string, a, b, dv F) {
	if abs(a-b) <= dv {
		return
	}
	src := exprs(name, a, b, dv)
	raise(t, kind, fmt.Sprintf("abs(%s - %s) > %s", src[0], src[1], src[2]))
}

func far[F Float](t *core.T, kind core.SignalKind, name string, a, b, dv F) {
	if abs(a-b) > dv {
		return
	}
	src := exprs(name, a, b, dv)
	raise(t, kind, fmt.Sprintf("abs(%s - %s) <= %s", src[0], src[1], src[2]))
}

func relative[F Float](t *core.T, kind core.SignalKind, name string, a, b, epsilon F) {
	if WithinRelative(a, b, epsilon) {
		return
	}
	src := exprs(name, a, b)
	raise(t, kind, fmt.Sprintf("Expected: %s == %s\nActual: %f vs %f", src[0], src[1], a, b))
}
