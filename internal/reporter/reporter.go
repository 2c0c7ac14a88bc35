// Package reporter renders the console report of a run in the GTest layout.
//
//	[==========] Running 3 tests from 2 test suites.
//	[----------] Global test environment set-up.
//	[----------] 2 tests from A
//	[ RUN ] A.One
//	[ OK ] A.One (0 ms)
//	...
//
// Only the bracketed tag of a line is colored.
package reporter

import (
	"fmt"
	"io"

	"github.com/v-craft/vct-test-unit/internal/devops"
	"github.com/v-craft/vct-test-unit/internal/testmgr"
)

type Reporter struct {
	out    io.Writer
	color  bool
	devops *devops.Printer
	group  *devops.Group
}

// New creates a reporter writing to out. When azureDevops is true, suites are
// folded into log groups and failures are raised as pipeline issues.
func New(out io.Writer, color bool, azureDevops bool) *Reporter {
	r := &Reporter{
		out:   out,
		color: color,
	}

	if azureDevops {
		r.devops = devops.NewPrinter(out)
	}

	return r
}

func (r *Reporter) line(tag Tag, format string, a ...any) {
	fmt.Fprintf(r.out, "%s %s\n", tag.StringColor(r.color), fmt.Sprintf(format, a...))
}

func (r *Reporter) blank() {
	fmt.Fprintln(r.out)
}

// RunHeader prints the banner and the set-up line.
func (r *Reporter) RunHeader(m *testmgr.Manager) {
	r.line(TagBanner, "Running %s from %s.", tests(m.TotalCases()), testSuites(m.TotalSuites()))
	r.line(TagSeparator, "Global test environment set-up.")
}

func (r *Reporter) SuiteStart(name string, cases int) {
	if r.devops != nil {
		r.group = r.devops.OpenGroup(name)
	}
	r.line(TagSeparator, "%s from %s", tests(cases), name)
}

// SuiteEnd prints the suite summary followed by a blank line.
func (r *Reporter) SuiteEnd(s *testmgr.SuiteRecord) {
	r.line(TagSeparator, "%s from %s (%d ms total)", tests(s.Cases()), s.Name(), millis(s.RunTime()))
	r.closeGroup()
	r.blank()
}

// Abort closes the log group left open by a fatal failure.
func (r *Reporter) Abort() {
	r.closeGroup()
}

func (r *Reporter) closeGroup() {
	if r.group != nil {
		r.group.Close()
		r.group = nil
	}
}
