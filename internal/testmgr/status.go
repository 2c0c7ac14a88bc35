package testmgr

import (
	"github.com/sirupsen/logrus"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type CaseStatus int

const (
	CaseStatusRunning CaseStatus = iota
	// The body returned or called Succeed.
	CaseStatusPassed
	// A non-fatal check failed.
	CaseStatusFailed
	// A fatal check failed; the run stops.
	CaseStatusAborted
	// The body panicked or stopped without a signal.
	CaseStatusErrored
)

func statusForSignal(kind core.SignalKind) CaseStatus {
	switch kind {
	case core.Fatal:
		return CaseStatusAborted
	case core.NonFatal:
		return CaseStatusFailed
	default:
		return CaseStatusErrored
	}
}

func (cs CaseStatus) String() string {
	switch cs {
	case CaseStatusRunning:
		return "RUNNING"
	case CaseStatusPassed:
		return "PASSED"
	case CaseStatusFailed:
		return "FAILED"
	case CaseStatusAborted:
		return "ABORTED"
	case CaseStatusErrored:
		return "ERRORED"
	default:
		return "UNKNOWN"
	}
}

func (cs CaseStatus) logLevel() logrus.Level {
	switch cs {
	case CaseStatusPassed:
		return logrus.InfoLevel
	case CaseStatusFailed, CaseStatusErrored:
		return logrus.WarnLevel
	case CaseStatusAborted:
		return logrus.ErrorLevel
	default:
		return logrus.DebugLevel
	}
}

func (cs CaseStatus) IsRunning() bool {
	return cs == CaseStatusRunning
}

func (cs CaseStatus) Passed() bool {
	return cs == CaseStatusPassed
}

// IsBad returns true if the case ended in any way other than passing.
func (cs CaseStatus) IsBad() bool {
	return cs == CaseStatusFailed || cs == CaseStatusAborted || cs == CaseStatusErrored
}
