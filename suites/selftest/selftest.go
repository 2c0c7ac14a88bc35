// Package selftest registers test cases that exercise every check family,
// including failing checks wrapped in panic expectations. A run of this
// package must pass.
package selftest

import (
	"errors"
	"strings"

	"github.com/v-craft/vct-test-unit/pkg/vct"
	"github.com/v-craft/vct-test-unit/pkg/vct/check"
)

// Panic value that plain errors are told apart from.
type runtimeError struct {
	msg string
}

func (e *runtimeError) Error() string {
	return "runtime error: " + e.msg
}

func fail() {
	panic(errors.New("failure"))
}

func nothing() {}

func init() {
	Register(vct.Default)
}

// Register adds the self test cases to registry.
func Register(registry *vct.Registry) {
	registry.Register("Expect", "Throw", expectThrow)
	registry.Register("Expect", "Eq", expectEq)
	registry.Register("Assert", "Throw", assertThrow)
	registry.Register("Assert", "Eq", assertEq)
	registry.Register("Boolean", "TrueFalse", booleans)
	registry.Register("Float", "Tolerance", floatTolerance)
	registry.Register("Float", "Default", floatDefault)
	registry.Register("String", "Compare", stringCompare)
	registry.Register("Predicate", "Arity", predicates)
	registry.Register("Control", "Fail", control)
	registry.Register("Control", "Succeed", succeed)
}

func expectThrow(t *vct.T) {
	check.ExpectPanicsAs[error](t, fail)
	check.ExpectNotPanics(t, nothing)
	check.ExpectPanics(t, fail)

	check.ExpectPanics(t, func() { check.ExpectPanicsAs[error](t, nothing) })
	check.ExpectPanics(t, func() { check.ExpectPanicsAs[*runtimeError](t, fail) })
	check.ExpectPanics(t, func() { check.ExpectNotPanics(t, fail) })
	check.ExpectPanics(t, func() { check.ExpectPanics(t, nothing) })
}

func expectEq(t *vct.T) {
	check.ExpectEq(t, 1, 1)
	check.ExpectNe(t, 1, 2)
	check.ExpectLt(t, 1, 2)
	check.ExpectLe(t, 1, 2)
	check.ExpectLe(t, 1, 1)
	check.ExpectGt(t, 2, 1)
	check.ExpectGe(t, 2, 1)
	check.ExpectGe(t, 1, 1)

	check.ExpectPanics(t, func() { check.ExpectEq(t, 1, 2) })
	check.ExpectPanics(t, func() { check.ExpectNe(t, 1, 1) })
	check.ExpectPanics(t, func() { check.ExpectLt(t, 2, 1) })
	check.ExpectPanics(t, func() { check.ExpectLt(t, 1, 1) })
	check.ExpectPanics(t, func() { check.ExpectLe(t, 2, 1) })
	check.ExpectPanics(t, func() { check.ExpectGt(t, 1, 2) })
	check.ExpectPanics(t, func() { check.ExpectGt(t, 1, 1) })
	check.ExpectPanics(t, func() { check.ExpectGe(t, 1, 2) })
}

func assertThrow(t *vct.T) {
	check.AssertPanicsAs[error](t, fail)
	check.AssertNotPanics(t, nothing)
	check.AssertPanics(t, fail)

	check.ExpectPanics(t, func() { check.AssertPanicsAs[error](t, nothing) })
	check.ExpectPanics(t, func() { check.AssertPanicsAs[*runtimeError](t, fail) })
	check.ExpectPanics(t, func() { check.AssertNotPanics(t, fail) })
	check.ExpectPanics(t, func() { check.AssertPanics(t, nothing) })
	check.ExpectPanicsAs[error](t, func() { panic(&runtimeError{"wrapped"}) })
}

func assertEq(t *vct.T) {
	check.AssertEq(t, 1, 1)
	check.AssertNe(t, 1, 2)
	check.AssertLt(t, 1, 2)
	check.AssertLe(t, 1, 2)
	check.AssertLe(t, 1, 1)
	check.AssertGt(t, 2, 1)
	check.AssertGe(t, 2, 1)
	check.AssertGe(t, 1, 1)

	check.ExpectPanics(t, func() { check.AssertEq(t, 1, 2) })
	check.ExpectPanics(t, func() { check.AssertNe(t, 1, 1) })
	check.ExpectPanics(t, func() { check.AssertLt(t, 2, 1) })
	check.ExpectPanics(t, func() { check.AssertLt(t, 1, 1) })
	check.ExpectPanics(t, func() { check.AssertLe(t, 2, 1) })
	check.ExpectPanics(t, func() { check.AssertGt(t, 1, 2) })
	check.ExpectPanics(t, func() { check.AssertGt(t, 1, 1) })
	check.ExpectPanics(t, func() { check.AssertGe(t, 1, 2) })
}

func booleans(t *vct.T) {
	check.AssertTrue(t, 1 < 2)
	check.AssertFalse(t, 2 < 1)
	check.ExpectTrue(t, strings.HasPrefix("vct", "v"))
	check.ExpectFalse(t, strings.Contains("vct", "x"))

	check.ExpectPanics(t, func() { check.AssertTrue(t, false) })
	check.ExpectPanics(t, func() { check.ExpectFalse(t, true) })
}

func floatTolerance(t *vct.T) {
	check.AssertFloatEq(t, 0.1+0.2, 0.3, 1e-9)
	check.ExpectFloatNe(t, 1.0, 1.1, 0.05)
	check.ExpectFloatEq[float32](t, 2.5, 2.5, 0)

	check.ExpectPanics(t, func() { check.AssertFloatEq(t, 1.0, 1.1, 0.05) })
	check.ExpectPanics(t, func() { check.ExpectFloatNe(t, 1.0, 1.0, 0.05) })
}

func floatDefault(t *vct.T) {
	check.AssertDoubleEqDefault(t, 1.0, 1.0)
	check.AssertDoubleEqDefault(t, 1.0, 1.0+3*check.DoubleEpsilon)
	check.ExpectFloatEqDefault(t, 1, 1+2*check.FloatEpsilon)

	check.ExpectPanics(t, func() { check.AssertDoubleEqDefault(t, 1.0, 1.0+10*check.DoubleEpsilon) })
	check.ExpectPanics(t, func() { check.ExpectFloatEqDefault(t, 1, 1+8*check.FloatEpsilon) })
}

func stringCompare(t *vct.T) {
	check.AssertStrEq(t, "Hello", "Hello")
	check.AssertStrCaseEq(t, "Hello", "hello")
	check.ExpectStrNe(t, "Hello", "hello")
	check.ExpectStrCaseNe(t, "Hello", "World")

	check.ExpectPanics(t, func() { check.AssertStrEq(t, "Hello", "hello") })
	check.ExpectPanics(t, func() { check.ExpectStrCaseNe(t, "Hello", "HELLO") })
}

func isPositive(n int) bool {
	return n > 0
}

func isMultiple(n, of int) bool {
	return n%of == 0
}

func predicates(t *vct.T) {
	check.AssertPred1(t, isPositive, 3)
	check.ExpectPred2(t, isMultiple, 9, 3)

	check.ExpectPanics(t, func() { check.AssertPred1(t, isPositive, -3) })
	check.ExpectPanics(t, func() { check.ExpectPred2(t, isMultiple, 10, 3) })
	// Division by zero inside the predicate fails the check.
	check.ExpectPanics(t, func() { check.ExpectPred2(t, isMultiple, 1, 0) })
}

func control(t *vct.T) {
	check.ExpectPanics(t, func() { check.AssertFail(t, "fatal") })
	check.ExpectPanics(t, func() { check.ExpectFail(t, "non-fatal") })
}

func succeed(t *vct.T) {
	check.Succeed(t)
	check.AssertFail(t, "not reached after Succeed")
}
