package run

import (
	"github.com/v-craft/vct-test-unit/internal/runner"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// Result receives the value returned by the run.
type Result struct {
	Code int
}

type RunCmd struct {
}

func (cmd *RunCmd) Run(registry *core.Registry, opts runner.Options, result *Result) error {
	opts.Logger.Infof("Running %d test cases", registry.Len())
	result.Code = runner.New(registry, opts).Run()
	return nil
}
