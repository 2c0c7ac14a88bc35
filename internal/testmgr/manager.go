// Package testmgr keeps the statistics of one run: the record of every
// executed test case, suite timings and the totals the report is built from.
package testmgr

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// Manager is owned by the runner for the duration of one run. It is not safe
// for concurrent use.
type Manager struct {
	log         *logrus.Logger
	now         func() time.Time
	totalCases  int
	totalSuites int
	startTime   time.Time
	endTime     time.Time
	closed      bool
	testCases   []*TestCase
}

// NewManager starts the run clock. Totals are computed from the snapshot of
// suites about to run. A nil log discards messages and a nil now uses
// time.Now.
func NewManager(suites []core.Suite, log *logrus.Logger, now func() time.Time) *Manager {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if now == nil {
		now = time.Now
	}

	m := &Manager{
		log:         log,
		now:         now,
		totalSuites: len(suites),
	}

	for _, suite := range suites {
		m.totalCases += len(suite.Cases)
	}

	m.startTime = now()
	return m
}

// StartSuite opens the record of a suite and starts its clock.
func (m *Manager) StartSuite(name string, cases int) *SuiteRecord {
	m.log.Debugf("Starting suite '%s' (%d cases)", name, cases)
	s := &SuiteRecord{
		name:      name,
		cases:     cases,
		parent:    m,
		startTime: m.now(),
	}
	return s
}

// NewTestCase opens the record of a case and starts its clock.
func (m *Manager) NewTestCase(suite, name string) *TestCase {
	if len(m.testCases) > 0 {
		last := m.testCases[len(m.testCases)-1]
		if last.status.IsRunning() {
			panic("previous test case '" + last.Name() + "' is still running")
		}
	}

	tc := newTestCase(suite, name, m)
	m.testCases = append(m.testCases, tc)
	m.log.Tracef("%s (started)", tc.Name())
	return tc
}

// Close stops the run clock. Later calls do nothing.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.endTime = m.now()
	m.log.Debugf("Run finished: %d passed, %d failed", m.Passed(), len(m.FailedNames()))
}

func (m *Manager) TotalCases() int {
	return m.totalCases
}

func (m *Manager) TotalSuites() int {
	return m.totalSuites
}

// Passed returns the number of cases that passed so far.
func (m *Manager) Passed() int {
	passed := 0
	for _, tc := range m.testCases {
		if tc.status.Passed() {
			passed++
		}
	}
	return passed
}

// FailedNames returns the qualified names of the cases that failed a
// non-fatal check or raised an unrecognized failure, in run order.
func (m *Manager) FailedNames() []string {
	names := make([]string, 0)
	for _, tc := range m.testCases {
		if tc.status == CaseStatusFailed || tc.status == CaseStatusErrored {
			names = append(names, tc.Name())
		}
	}
	return names
}

// Aborted reports whether a case failed a fatal check.
func (m *Manager) Aborted() bool {
	for _, tc := range m.testCases {
		if tc.status == CaseStatusAborted {
			return true
		}
	}
	return false
}

// Result is the value a run returns: the number of failed cases, or, after
// an abort, the number of cases that did not pass including those that never
// ran.
func (m *Manager) Result() int {
	if m.Aborted() {
		return m.totalCases - m.Passed()
	}
	return len(m.FailedNames())
}

func (m *Manager) RunTime() time.Duration {
	if !m.closed {
		return m.now().Sub(m.startTime)
	}
	return m.endTime.Sub(m.startTime)
}

// SuiteRecord times one suite.
type SuiteRecord struct {
	name      string
	cases     int
	parent    *Manager
	startTime time.Time
	endTime   time.Time
	closed    bool
}

func (s *SuiteRecord) Name() string {
	return s.name
}

// Cases returns the number of cases registered in the suite.
func (s *SuiteRecord) Cases() int {
	return s.cases
}

// Close stops the suite clock. Later calls do nothing.
func (s *SuiteRecord) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.endTime = s.parent.now()
	s.parent.log.Debugf("Finished suite '%s' in %s", s.name, s.RunTime())
}

func (s *SuiteRecord) RunTime() time.Duration {
	if !s.closed {
		return s.parent.now().Sub(s.startTime)
	}
	return s.endTime.Sub(s.startTime)
}
