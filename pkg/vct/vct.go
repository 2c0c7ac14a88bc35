// Package vct registers and runs unit tests.
//
// Test cases are registered from init functions and run by a test binary:
//
//	func init() {
//		vct.Register("Math", "Add", func(t *vct.T) {
//			check.ExpectEq(t, 1+1, 2)
//		})
//	}
//
//	func main() {
//		vct.Main("math-tests")
//	}
package vct

import (
	"os"

	"github.com/v-craft/vct-test-unit/internal/cli"
	"github.com/v-craft/vct-test-unit/internal/runner"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type T = core.T
type Body = core.Body
type TestCase = core.TestCase
type Suite = core.Suite
type Registry = core.Registry
type Signal = core.Signal

type Options = runner.Options

// Default is the registry Register adds to and RunAll runs.
var Default = core.NewRegistry()

// NewRegistry returns an empty registry to run with Run.
func NewRegistry() *Registry {
	return core.NewRegistry()
}

// Register adds a test case to the Default registry. It panics when the
// registry is already frozen or the names are not identifiers.
func Register(suite, name string, body Body) {
	Default.Register(suite, name, body)
}

// RunAll runs the Default registry with default options. See Run.
func RunAll() int {
	return Run(Default, Options{})
}

// Run executes every case of registry in registration order and returns 0 if
// they all passed. Otherwise it returns the number of failed cases, or, after
// a fatal failure stopped the run, the number of registered cases that did
// not pass.
func Run(registry *Registry, opts Options) int {
	return runner.New(registry, opts).Run()
}

// Main runs the command line of a test binary over the Default registry and
// exits with the result.
func Main(name string) {
	os.Exit(cli.Execute(name, Default, os.Args[1:], cli.Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}))
}
