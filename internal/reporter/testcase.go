package reporter

import (
	"github.com/v-craft/vct-test-unit/internal/testmgr"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

func failureTag(kind core.SignalKind) Tag {
	switch kind {
	case core.Fatal:
		return TagAssert
	case core.NonFatal:
		return TagExpect
	default:
		return TagUnknown
	}
}

// CaseStart prints the RUN line of the case with the given qualified name.
func (r *Reporter) CaseStart(name string) {
	r.line(TagRun, "%s", name)
}

// CaseEnd prints the outcome of a finished case. A failure prints its
// message under the tag of its kind before the FAILED line.
func (r *Reporter) CaseEnd(tc *testmgr.TestCase) {
	if !tc.Status().IsBad() {
		r.line(TagOk, "%s (%d ms)", tc.Name(), millis(tc.RunTime()))
		return
	}

	failure := tc.Failure()
	r.line(failureTag(failure.Kind), "%s", failure.Message)
	r.line(TagFailed, "%s (%d ms)", tc.Name(), millis(tc.RunTime()))

	if r.devops != nil {
		r.devops.LogError("%s: %s", tc.Name(), failure.Message)
	}
}
