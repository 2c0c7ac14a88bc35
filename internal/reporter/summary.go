package reporter

import (
	"fmt"
	"strings"

	"github.com/v-craft/vct-test-unit/internal/testmgr"
)

// Summary prints the tear-down line and the aggregate summary of a run that
// was not aborted.
func (r *Reporter) Summary(m *testmgr.Manager) {
	r.line(TagSeparator, "Global test environment tear-down")
	r.line(TagBanner, "%s from %s ran. (%d ms total)",
		tests(m.TotalCases()), testSuites(m.TotalSuites()), millis(m.RunTime()))
	r.line(TagPassed, "%s.", tests(m.Passed()))

	failed := m.FailedNames()
	if len(failed) == 0 {
		return
	}

	r.line(TagFailed, "%s, listed below:", tests(len(failed)))
	for _, name := range failed {
		r.line(TagFailed, "%s", name)
	}

	r.blank()
	fmt.Fprintf(r.out, " %s\n", strings.ToUpper(plural(len(failed), "FAILED TEST")))
}
