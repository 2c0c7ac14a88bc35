package check

import (
	"github.com/google/go-cmp/cmp"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// AssertDeepEq compares a and b with cmp.Equal. The failure message carries
// cmp.Diff. Comparing structs with unexported fields requires an option such
// as cmp.AllowUnexported, otherwise the check fails with cmp's panic message.
func AssertDeepEq(t *core.T, a, b any, opts ...cmp.Option) {
	deepEq(t, core.Fatal, "AssertDeepEq", a, b, opts)
}

func ExpectDeepEq(t *core.T, a, b any, opts ...cmp.Option) {
	deepEq(t, core.NonFatal, "ExpectDeepEq", a, b, opts)
}

func deepEq(t *core.T, kind core.SignalKind, name string, a, b any, opts []cmp.Option) {
	if guard(t, kind, func() bool { return cmp.Equal(a, b, opts...) }) {
		return
	}
	src := exprs(name, a, b)
	raise(t, kind, src[0]+" != "+src[1]+"\nDiff (-a +b):\n"+cmp.Diff(a, b, opts...))
}
