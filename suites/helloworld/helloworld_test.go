package helloworld

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/v-craft/vct-test-unit/pkg/vct"
)

func TestHelloWorldReport(t *testing.T) {
	registry := vct.NewRegistry()
	Register(registry)

	var out bytes.Buffer
	log, _ := test.NewNullLogger()
	now := func() time.Time { return time.Unix(0, 0) }
	result := vct.Run(registry, vct.Options{Out: &out, Logger: log, Now: now})

	// Six cases, two passed before the fatal failure.
	assert.Equal(t, 4, result)
	assert.Equal(t, ""+
		"[==========] Running 6 tests from 2 test suites.\n"+
		"[----------] Global test environment set-up.\n"+
		"[----------] 4 tests from HelloWorld\n"+
		"[ RUN ] HelloWorld.Greets\n"+
		"[ OK ] HelloWorld.Greets (0 ms)\n"+
		"[ RUN ] HelloWorld.ExitsEarly\n"+
		"[ OK ] HelloWorld.ExitsEarly (0 ms)\n"+
		"[ RUN ] HelloWorld.FailsSoftly\n"+
		"[ EXPECT ] len(\"hello\") != 4\n"+
		"Actual: 5 vs 4\n"+
		"[ FAILED ] HelloWorld.FailsSoftly (0 ms)\n"+
		"[ RUN ] HelloWorld.Panics\n"+
		"[ UNKNOWN ] panic occurred: assignment to entry in nil map\n"+
		"[ FAILED ] HelloWorld.Panics (0 ms)\n"+
		"[----------] 4 tests from HelloWorld (0 ms total)\n"+
		"\n"+
		"[----------] 2 tests from Goodbye\n"+
		"[ RUN ] Goodbye.FailsHard\n"+
		"[ ASSERT ] len(\"goodbye\") == 0 returned false\n"+
		"[ FAILED ] Goodbye.FailsHard (0 ms)\n",
		out.String())
}
