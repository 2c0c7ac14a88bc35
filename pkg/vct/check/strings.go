package check

import (
	"fmt"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type Text interface {
	~string | ~[]byte
}

func AssertStrEq[A, B Text](t *core.T, a A, b B) {
	strEq(t, core.Fatal, "AssertStrEq", string(a), string(b), false)
}

func AssertStrNe[A, B Text](t *core.T, a A, b B) {
	strNe(t, core.Fatal, "AssertStrNe", string(a), string(b), false)
}

// AssertStrCaseEq compares a and b ignoring ASCII case.
func AssertStrCaseEq[A, B Text](t *core.T, a A, b B) {
	strEq(t, core.Fatal, "AssertStrCaseEq", string(a), string(b), true)
}

func AssertStrCaseNe[A, B Text](t *core.T, a A, b B) {
	strNe(t, core.Fatal, "AssertStrCaseNe", string(a), string(b), true)
}

func ExpectStrEq[A, B Text](t *core.T, a A, b B) {
	strEq(t, core.NonFatal, "ExpectStrEq", string(a), string(b), false)
}

func ExpectStrNe[A, B Text](t *core.T, a A, b B) {
	strNe(t, core.NonFatal, "ExpectStrNe", string(a), string(b), false)
}

func ExpectStrCaseEq[A, B Text](t *core.T, a A, b B) {
	strEq(t, core.NonFatal, "ExpectStrCaseEq", string(a), string(b), true)
}

func ExpectStrCaseNe[A, B Text](t *core.T, a A, b B) {
	strNe(t, core.NonFatal, "ExpectStrCaseNe", string(a), string(b), true)
}

// ASCIILower maps 'A'-'Z' to 'a'-'z' and leaves every other byte alone,
// whatever the locale.
func ASCIILower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func equalStrings(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return ASCIILower(a) == ASCIILower(b)
	}
	return a == b
}

func caseSuffix(ignoreCase bool) string {
	if ignoreCase {
		return " (ignoring case)"
	}
	return ""
}

func strEq(t *core.T, kind core.SignalKind, name, a, b string, ignoreCase bool) {
	if equalStrings(a, b, ignoreCase) {
		return
	}
	src := exprs(name, a, b)
	raise(t, kind, fmt.Sprintf("Expected: %s == %s%s\nActual: \"%s\" vs \"%s\"",
		src[0], src[1], caseSuffix(ignoreCase), a, b))
}

func strNe(t *core.T, kind core.SignalKind, name, a, b string, ignoreCase bool) {
	if !equalStrings(a, b, ignoreCase) {
		return
	}
	src := exprs(name, a, b)
	raise(t, kind, fmt.Sprintf("Expected: %s != %s%s\nActual: both are \"%s\"",
		src[0], src[1], caseSuffix(ignoreCase), a))
}
