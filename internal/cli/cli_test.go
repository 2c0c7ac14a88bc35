package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func execute(t *testing.T, reg *core.Registry, vars map[string]string, args ...string) (int, *output) {
	t.Helper()
	// No implicit config file.
	chdir(t, t.TempDir())

	out := &output{}
	code := Execute("vct-test", reg, args, Env{
		Stdout: &out.stdout,
		Stderr: &out.stderr,
		Getenv: func(key string) string { return vars[key] },
	})
	return code, out
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func registry() *core.Registry {
	reg := core.NewRegistry()
	reg.Register("A", "One", func(t *core.T) {})
	reg.Register("A", "Two", func(t *core.T) { t.NonFatal("bad") })
	reg.Register("B", "Three", func(t *core.T) {})
	return reg
}

func TestRunIsDefault(t *testing.T) {
	code, out := execute(t, registry(), nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.stdout.String(), "[==========] Running 3 tests from 2 test suites.\n")
	assert.Contains(t, out.stdout.String(), "\n 1 FAILED TEST\n")
	// Not a terminal: no colors in auto mode.
	assert.NotContains(t, out.stdout.String(), "\x1b[")
}

func TestRunCommand(t *testing.T) {
	reg := core.NewRegistry()
	reg.Register("A", "One", func(t *core.T) {})

	code, out := execute(t, reg, nil, "run")
	assert.Equal(t, 0, code)
	assert.Contains(t, out.stdout.String(), "[ PASSED ] 1 test.\n")
}

func TestList(t *testing.T) {
	reg := registry()
	code, out := execute(t, reg, nil, "list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "A.One\nA.Two\nB.Three\n", out.stdout.String())
	assert.False(t, reg.Frozen())
}

func TestVersion(t *testing.T) {
	code, out := execute(t, registry(), nil, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out.stdout.String(), "vct-test dev"))
	assert.NotContains(t, out.stdout.String(), "[==========]")
}

func TestColorFlag(t *testing.T) {
	_, out := execute(t, registry(), nil, "--color", "always")
	assert.Contains(t, out.stdout.String(), "\x1b[32m[ RUN ]\x1b[0m A.One\n")

	// The flag wins over the environment.
	_, out = execute(t, registry(), map[string]string{"VCT_COLOR": "always"}, "--color=never")
	assert.NotContains(t, out.stdout.String(), "\x1b[")
}

func TestColorFromEnv(t *testing.T) {
	_, out := execute(t, registry(), map[string]string{"VCT_COLOR": "always"})
	assert.Contains(t, out.stdout.String(), "\x1b[31m[ FAILED ]\x1b[0m A.Two")
}

func TestAzureDevopsFlag(t *testing.T) {
	_, out := execute(t, registry(), nil, "-a")
	assert.Contains(t, out.stdout.String(), "##[group]A\n")
	assert.Contains(t, out.stdout.String(), "##vso[task.logissue type=error]A.Two: bad\n")
}

func TestVerbosity(t *testing.T) {
	_, out := execute(t, registry(), nil, "-v", "debug")
	assert.Contains(t, out.stderr.String(), "Running 3 cases from 2 suites")

	_, out = execute(t, registry(), nil)
	assert.NotContains(t, out.stderr.String(), "Running 3 cases from 2 suites")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vct.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\nazure_devops: true\n"), 0o644))

	_, out := execute(t, registry(), nil, "--config", path)
	assert.Contains(t, out.stdout.String(), "##[group]A\n")
	assert.Contains(t, out.stdout.String(), "\x1b[32m[ OK ]\x1b[0m")
}

func TestInvalidConfiguration(t *testing.T) {
	code, out := execute(t, registry(), nil, "--color", "purple")
	assert.Equal(t, 1, code)
	assert.Contains(t, out.stderr.String(), "invalid color mode 'purple'")
	assert.Empty(t, out.stdout.String())

	code, out = execute(t, registry(), nil, "--config", "missing.yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, out.stderr.String(), "failed to read config file")
}

func TestUnknownFlag(t *testing.T) {
	code, out := execute(t, registry(), nil, "--frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, out.stderr.String(), "frobnicate")
}

func TestExitCodeIsClamped(t *testing.T) {
	reg := core.NewRegistry()
	for i := 0; i < 300; i++ {
		reg.Register("Many", "Fails", func(t *core.T) { t.NonFatal("x") })
	}

	code, _ := execute(t, reg, nil)
	assert.Equal(t, MaxExitCode, code)
}

func TestColorFlagIgnoresCase(t *testing.T) {
	_, out := execute(t, registry(), nil, "--color", "ALWAYS")
	assert.Contains(t, out.stdout.String(), "\x1b[32m[ RUN ]\x1b[0m A.One\n")

	_, out = execute(t, registry(), map[string]string{"VCT_COLOR": "always"}, "--color", "Never")
	assert.NotContains(t, out.stdout.String(), "\x1b[")
}
