// Package runner executes the test cases of a registry one at a time and
// reports them as they run.
package runner

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/v-craft/vct-test-unit/internal/reporter"
	"github.com/v-craft/vct-test-unit/internal/testmgr"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type Options struct {
	// Report output. Defaults to os.Stdout.
	Out io.Writer
	// Color the report tags.
	Color bool
	// Run logger. Defaults to a logger on os.Stderr at warning level.
	Logger *logrus.Logger
	// Fold suites into Azure DevOps log groups and raise failures as issues.
	AzureDevops bool
	// Clock used for all timings. Defaults to time.Now.
	Now func() time.Time
}

type Runner struct {
	registry *core.Registry
	log      *logrus.Logger
	now      func() time.Time
	reporter *reporter.Reporter
}

func New(registry *core.Registry, opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(os.Stderr)
		opts.Logger.SetLevel(logrus.WarnLevel)
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		registry: registry,
		log:      opts.Logger,
		now:      opts.Now,
		reporter: reporter.New(opts.Out, opts.Color, opts.AzureDevops),
	}
}

// Run freezes the registry and executes every case in registration order.
//
// It returns the number of cases that failed a non-fatal check or raised an
// unrecognized failure. When a case fails a fatal check the run stops right
// after reporting it, and the result is the number of registered cases that
// did not pass, counting the ones that never ran.
func (r *Runner) Run() int {
	r.registry.Freeze()
	return r.run(r.registry.Suites())
}

func (r *Runner) run(suites []core.Suite) int {
	mgr := testmgr.NewManager(suites, r.log, r.now)
	r.log.Debugf("Running %d cases from %d suites", mgr.TotalCases(), mgr.TotalSuites())
	r.reporter.RunHeader(mgr)

	for _, suite := range suites {
		if len(suite.Cases) == 0 {
			r.log.Debugf("Skipping empty suite '%s'", suite.Name)
			continue
		}

		if !r.runSuite(mgr, suite) {
			mgr.Close()
			r.reporter.Abort()
			result := mgr.Result()
			r.log.Errorf("Run aborted by a fatal failure; %d of %d cases did not pass", result, mgr.TotalCases())
			return result
		}
	}

	mgr.Close()
	r.reporter.Summary(mgr)
	return mgr.Result()
}

// Runs the cases of one suite. Returns false when the run must stop.
func (r *Runner) runSuite(mgr *testmgr.Manager, suite core.Suite) bool {
	// Clocks start once the header lines are out.
	r.reporter.SuiteStart(suite.Name, len(suite.Cases))
	record := mgr.StartSuite(suite.Name, len(suite.Cases))

	for _, testCase := range suite.Cases {
		r.reporter.CaseStart(core.QualifiedName(suite.Name, testCase.Name))
		tc := mgr.NewTestCase(suite.Name, testCase.Name)

		executeTestCase(tc, testCase.Body, r.log)
		r.reporter.CaseEnd(tc)

		if tc.Status() == testmgr.CaseStatusAborted {
			return false
		}
	}

	record.Close()
	r.reporter.SuiteEnd(record)
	return true
}

// Runs the body on its own goroutine so that checks can stop it with
// runtime.Goexit(), then records how it ended.
func executeTestCase(tc *testmgr.TestCase, body core.Body, log *logrus.Logger) {
	t := core.NewT(tc.Suite(), tc.Case(), log)
	tc.Finish(core.Invoke(t, func() { body(t) }))
}
