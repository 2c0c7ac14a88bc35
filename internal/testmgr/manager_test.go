package testmgr

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// Clock that advances by step on every read.
func steppingClock(step time.Duration) func() time.Time {
	current := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func suites() []core.Suite {
	body := func(t *core.T) {}
	return []core.Suite{
		{Name: "A", Cases: []core.TestCase{{Name: "One", Body: body}, {Name: "Two", Body: body}}},
		{Name: "B", Cases: []core.TestCase{{Name: "Three", Body: body}}},
	}
}

func run(fn func(t *core.T)) core.Termination {
	t := core.NewT("S", "C", nil)
	return core.Invoke(t, func() { fn(t) })
}

func TestTotals(t *testing.T) {
	m := NewManager(suites(), nil, nil)
	assert.Equal(t, 3, m.TotalCases())
	assert.Equal(t, 2, m.TotalSuites())
	assert.Equal(t, 0, m.Passed())
	assert.Empty(t, m.FailedNames())
	assert.Equal(t, 0, m.Result())

	empty := NewManager(nil, nil, nil)
	assert.Equal(t, 0, empty.TotalCases())
	assert.Equal(t, 0, empty.TotalSuites())
}

func TestFinishClassification(t *testing.T) {
	tests := []struct {
		name    string
		body    func(t *core.T)
		status  CaseStatus
		kind    core.SignalKind
		message string
	}{
		{"returns", func(t *core.T) {}, CaseStatusPassed, 0, ""},
		{"succeed", func(t *core.T) { t.Succeed() }, CaseStatusPassed, 0, ""},
		{"non-fatal", func(t *core.T) { t.NonFatal("x") }, CaseStatusFailed, core.NonFatal, "x"},
		{"fatal", func(t *core.T) { t.Fatal("y") }, CaseStatusAborted, core.Fatal, "y"},
		{"unrecognized signal", func(t *core.T) { t.Raise(core.NewSignal(core.Unrecognized, "z")) }, CaseStatusErrored, core.Unrecognized, "z"},
		{"panic", func(t *core.T) { panic(errors.New("boom")) }, CaseStatusErrored, core.Unrecognized, "panic occurred: boom"},
		{"goexit", func(t *core.T) { runtime.Goexit() }, CaseStatusErrored, core.Unrecognized, "test body exited without completing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(suites(), nil, steppingClock(time.Millisecond))
			tc := m.NewTestCase("S", "C")
			assert.True(t, tc.Status().IsRunning())

			tc.Finish(run(tt.body))

			require.Equal(t, tt.status, tc.Status())
			if tt.message == "" {
				assert.Nil(t, tc.Failure())
				return
			}
			require.NotNil(t, tc.Failure())
			assert.Equal(t, tt.kind, tc.Failure().Kind)
			assert.Equal(t, tt.message, tc.Failure().Message)
		})
	}
}

func TestTimings(t *testing.T) {
	m := NewManager(suites(), nil, steppingClock(2*time.Millisecond))
	s := m.StartSuite("A", 2)
	tc := m.NewTestCase("A", "One")
	tc.Finish(run(func(t *core.T) {}))
	s.Close()
	m.Close()

	assert.Equal(t, 2*time.Millisecond, tc.RunTime())
	assert.Equal(t, 6*time.Millisecond, s.RunTime())
	assert.Equal(t, 10*time.Millisecond, m.RunTime())

	// Closed clocks do not move.
	s.Close()
	m.Close()
	assert.Equal(t, 6*time.Millisecond, s.RunTime())
	assert.Equal(t, 10*time.Millisecond, m.RunTime())
}

func TestResultFormulas(t *testing.T) {
	t.Run("completed run counts failed names", func(t *testing.T) {
		m := NewManager(suites(), nil, nil)
		m.NewTestCase("A", "One").Finish(run(func(t *core.T) {}))
		m.NewTestCase("A", "Two").Finish(run(func(t *core.T) { t.NonFatal("x") }))
		m.NewTestCase("B", "Three").Finish(run(func(t *core.T) {}))

		assert.Equal(t, 2, m.Passed())
		assert.Equal(t, []string{"A.Two"}, m.FailedNames())
		assert.False(t, m.Aborted())
		assert.Equal(t, 1, m.Result())
	})

	t.Run("aborted run counts cases not passed", func(t *testing.T) {
		m := NewManager(suites(), nil, nil)
		m.NewTestCase("A", "One").Finish(run(func(t *core.T) { panic("p") }))
		m.NewTestCase("A", "Two").Finish(run(func(t *core.T) { t.Fatal("x") }))

		assert.Equal(t, 0, m.Passed())
		assert.Equal(t, []string{"A.One"}, m.FailedNames())
		assert.True(t, m.Aborted())
		assert.Equal(t, 3, m.Result())
	})
}

func TestCloseTwiceIsIgnored(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)

	m := NewManager(suites(), log, nil)
	tc := m.NewTestCase("A", "One")
	tc.Finish(run(func(t *core.T) {}))
	tc.Finish(run(func(t *core.T) { t.NonFatal("late") }))

	assert.Equal(t, CaseStatusPassed, tc.Status())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestNewTestCaseWhileRunningPanics(t *testing.T) {
	m := NewManager(suites(), nil, nil)
	m.NewTestCase("A", "One")
	assert.Panics(t, func() { m.NewTestCase("A", "Two") })
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "PASSED", CaseStatusPassed.String())
	assert.Equal(t, "ABORTED", CaseStatusAborted.String())
	assert.True(t, CaseStatusErrored.IsBad())
	assert.False(t, CaseStatusPassed.IsBad())
	assert.Equal(t, logrus.ErrorLevel, CaseStatusAborted.logLevel())
}
