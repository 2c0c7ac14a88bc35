// Package check provides the assertion families used inside test case
// bodies. Every family comes in two flavors:
//
//   - Assert* raises a fatal signal: the test case stops and the run is
//     aborted.
//   - Expect* raises a non-fatal signal: the test case stops, it is recorded
//     as failed, and the run continues with the next test case.
//
// Failure messages quote the arguments as they appear in the caller's source
// file. When the source is not available, the formatted values are used.
package check

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"

	"github.com/v-craft/vct-test-unit/internal/source"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

const pkgPath = "github.com/v-craft/vct-test-unit/pkg/vct/check"

// Returns the source text of the arguments following t in the call to the
// exported check funcName.
func exprs(funcName string, values ...any) []string {
	if file, line, ok := source.Caller(pkgPath); ok {
		args, err := source.CallArgs(file, line, funcName)
		if err == nil && len(args) > len(values) {
			return args[1 : len(values)+1]
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "nil"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return fn.Name()
		}
	}

	return fmt.Sprintf("%v", v)
}

func raise(t *core.T, kind core.SignalKind, msg string) {
	t.Raise(core.NewSignal(kind, msg))
}

// Builds "<a> op <b>" and appends the runtime values when they read
// differently from the expressions.
func binaryMessage(src []string, op string, a, b any) string {
	msg := src[0] + " " + op + " " + src[1]

	va, vb := formatValue(a), formatValue(b)
	if va != src[0] || vb != src[1] {
		msg += "\nActual: " + va + " vs " + vb
	}

	return msg
}

// Runs f so that a panic or a nested failed check inside it fails the
// enclosing check with the given kind.
func guard(t *core.T, kind core.SignalKind, f func() bool) bool {
	var result bool
	term := core.Invoke(t, func() { result = f() })

	switch {
	case term.Signal != nil:
		raise(t, kind, term.Signal.Message)
	case term.Panic != nil:
		raise(t, kind, fmt.Sprint(term.Panic))
	}

	return term.Completed && result
}
