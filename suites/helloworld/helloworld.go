// Package helloworld registers a small suite showing every way a test case
// can end. Running it fails on purpose.
package helloworld

import (
	"fmt"

	"github.com/v-craft/vct-test-unit/pkg/vct"
	"github.com/v-craft/vct-test-unit/pkg/vct/check"
)

func init() {
	Register(vct.Default)
}

func Register(registry *vct.Registry) {
	registry.Register("HelloWorld", "Greets", greets)
	registry.Register("HelloWorld", "ExitsEarly", exitsEarly)
	registry.Register("HelloWorld", "FailsSoftly", failsSoftly)
	registry.Register("HelloWorld", "Panics", panics)
	registry.Register("Goodbye", "FailsHard", failsHard)
	registry.Register("Goodbye", "NeverRuns", neverRuns)
}

func greets(t *vct.T) {
	t.Logger().Infof("Hello from '%s'!", t.Name())
	check.ExpectStrEq(t, fmt.Sprintf("Hello, %s!", "world"), "Hello, world!")
}

func exitsEarly(t *vct.T) {
	check.Succeed(t)
	check.AssertFail(t, "this check is never reached")
}

func failsSoftly(t *vct.T) {
	t.Logger().Info("This message will be logged in the test case!")
	check.ExpectEq(t, len("hello"), 4)
	fmt.Println("This message will never be printed!")
}

func panics(t *vct.T) {
	var greetings map[string]string
	greetings["hello"] = "world"
}

func failsHard(t *vct.T) {
	check.AssertTrue(t, len("goodbye") == 0)
}

func neverRuns(t *vct.T) {
	t.Logger().Error("A fatal failure stops the run before this case")
}
