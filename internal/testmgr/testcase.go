package testmgr

import (
	"time"

	"github.com/v-craft/vct-test-unit/internal/vcterror"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// TestCase is the record of one executed test case.
type TestCase struct {
	suite     string
	name      string
	parent    *Manager
	startTime time.Time
	endTime   time.Time
	status    CaseStatus
	failure   *core.Signal
}

func newTestCase(suite, name string, parent *Manager) *TestCase {
	return &TestCase{
		suite:     suite,
		name:      name,
		parent:    parent,
		startTime: parent.now(),
		status:    CaseStatusRunning,
	}
}

// Name returns the qualified name, "Suite.Case".
func (tc *TestCase) Name() string {
	return core.QualifiedName(tc.suite, tc.name)
}

func (tc *TestCase) Suite() string {
	return tc.suite
}

func (tc *TestCase) Case() string {
	return tc.name
}

func (tc *TestCase) Status() CaseStatus {
	return tc.status
}

// Failure returns the signal that failed the case, or nil.
func (tc *TestCase) Failure() *core.Signal {
	return tc.failure
}

func (tc *TestCase) RunTime() time.Duration {
	if tc.status == CaseStatusRunning {
		return tc.parent.now().Sub(tc.startTime)
	}

	return tc.endTime.Sub(tc.startTime)
}

// Finish classifies how the body ended and closes the record:
//   - a recorded signal decides the status by its kind;
//   - any other panic is an unrecognized failure;
//   - returning normally or calling Succeed passes;
//   - stopping through a bare runtime.Goexit() is an unrecognized failure.
func (tc *TestCase) Finish(term core.Termination) {
	switch {
	case term.Signal != nil:
		tc.close(statusForSignal(term.Signal.Kind), term.Signal)
	case term.Panic != nil:
		err := vcterror.NewPanicError(term.Panic, term.Stack)
		tc.parent.log.WithField("testCase", tc.Name()).Debugf("%s\n%s", err, err.Stack)
		tc.close(CaseStatusErrored, core.NewSignal(core.Unrecognized, err.Error()))
	case term.Completed || term.Succeeded:
		tc.close(CaseStatusPassed, nil)
	default:
		tc.close(CaseStatusErrored, core.NewSignal(core.Unrecognized, vcterror.ErrIncompleteBody.Error()))
	}
}

func (tc *TestCase) close(status CaseStatus, failure *core.Signal) {
	if tc.status != CaseStatusRunning {
		tc.parent.log.Warnf(
			"Attempted to close test case '%s' with status '%s', but it was already closed with status '%s'. Ignoring.",
			tc.Name(),
			status.String(),
			tc.status.String(),
		)
		return
	}

	if status == CaseStatusRunning {
		panic("cannot close test case with status running")
	}

	tc.status = status
	tc.failure = failure
	tc.endTime = tc.parent.now()

	entry := tc.parent.log.
		WithField("testCase", tc.Name()).
		WithField("status", tc.status.String())
	if failure != nil {
		entry = entry.WithField("reason", failure.Message)
	}
	entry.Logf(tc.status.logLevel(), "%s: %s", tc.Name(), tc.status.String())
}
