package check

import "github.com/v-craft/vct-test-unit/pkg/vct/core"

// AssertFail fails the test case and aborts the run.
func AssertFail(t *core.T, msg string) {
	raise(t, core.Fatal, "Assert fail, msg:"+msg)
}

// ExpectFail fails the test case; the run continues.
func ExpectFail(t *core.T, msg string) {
	raise(t, core.NonFatal, "Expect fail, msg: "+msg)
}

// Succeed ends the test case immediately without recording a failure.
func Succeed(t *core.T) {
	t.Succeed()
}
