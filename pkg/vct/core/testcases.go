package core

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// T is the handle a test case body receives. Checks use it to report a
// failure to the runner.
//
// Fatal, NonFatal and Succeed stop execution by calling runtime.Goexit(),
// which runs all deferred calls in the current goroutine. They must be called
// from the goroutine running the test case body.
type T struct {
	suite     string
	name      string
	pending   *Signal
	succeeded bool
	log       *logrus.Logger
}

var (
	_ Named          = (*T)(nil)
	_ LoggerProvider = (*T)(nil)
)

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the run logger
type testCaseLogTee struct {
	runLogger  *logrus.Logger
	testCaseId string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	newEntry := tee.runLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

// NewT creates the handle for one execution of a test case. Messages logged
// through T.Logger() are forwarded to runLogger. A nil runLogger discards
// them.
func NewT(suite, name string, runLogger *logrus.Logger) *T {
	t := &T{
		suite: suite,
		name:  name,
		log:   logrus.New(),
	}

	t.log.SetOutput(io.Discard)
	t.log.SetLevel(logrus.TraceLevel)
	if runLogger != nil {
		t.log.SetLevel(runLogger.GetLevel())
		t.log.AddHook(testCaseLogTee{
			runLogger:  runLogger,
			testCaseId: t.Name(),
		})
	}

	return t
}

// Name returns the qualified name of the test case, "Suite.Case".
func (t *T) Name() string {
	return QualifiedName(t.suite, t.name)
}

func (t *T) Suite() string {
	return t.suite
}

func (t *T) Case() string {
	return t.name
}

func (t *T) Logger() *logrus.Logger {
	return t.log
}

// Fatal fails the test case and aborts the whole run.
func (t *T) Fatal(msg string) {
	t.raise(Fatal, msg)
}

func (t *T) Fatalf(format string, args ...any) {
	t.raise(Fatal, fmt.Sprintf(format, args...))
}

// NonFatal fails the test case. The rest of the body is skipped but the run
// continues with the next test case.
func (t *T) NonFatal(msg string) {
	t.raise(NonFatal, msg)
}

func (t *T) NonFatalf(format string, args ...any) {
	t.raise(NonFatal, fmt.Sprintf(format, args...))
}

// Succeed ends the test case immediately. It is recorded as passed.
func (t *T) Succeed() {
	t.succeeded = true
	runtime.Goexit()
}

// Raise records a signal of the given kind and stops the test case.
func (t *T) Raise(signal *Signal) {
	t.pending = signal
	t.log.Tracef("raising %s", signal.Kind)
	runtime.Goexit()
}

func (t *T) raise(kind SignalKind, msg string) {
	t.Raise(NewSignal(kind, msg))
}
