// Package cli implements the command line of test binaries.
package cli

import (
	"io"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/v-craft/vct-test-unit/internal/cli/list"
	"github.com/v-craft/vct-test-unit/internal/cli/run"
	"github.com/v-craft/vct-test-unit/internal/config"
	"github.com/v-craft/vct-test-unit/internal/runner"
	"github.com/v-craft/vct-test-unit/internal/version"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

// Flags left empty fall back to the environment, then to the config file.
type GlobalOpts struct {
	Verbosity   string `short:"v" help:"Set log level (trace, debug, info, warning, error). Default: warning."`
	AzureDevops bool   `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Color       string `help:"Color the report tags (auto, always, never). Default: auto."`
	Config      string `short:"c" help:"Path to configuration file." type:"path"`
}

type cli struct {
	Global  GlobalOpts       `embed:""`
	Version kong.VersionFlag `help:"Print version information and quit."`
	Run     run.RunCmd       `cmd:"" default:"1" help:"Run all registered test cases (default)"`
	List    list.ListCmd     `cmd:"" help:"List registered test cases"`
}

// MaxExitCode is the largest value a process can report.
const MaxExitCode = 255

// Streams and environment a command line runs with.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

type exitCode int

// Execute parses args, runs the selected command over registry and returns
// the process exit code. The run result is clamped to MaxExitCode.
func Execute(name string, registry *core.Registry, args []string, env Env) (code int) {
	// Kong exits after printing help or the version.
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	cli := cli{}
	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description("Runs the unit tests registered in this binary."),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Vars{"version": version.String(name)},
		kong.UsageOnError(),
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	cfg, err := resolveConfig(cli.Global, env.Getenv)
	if err != nil {
		logger := newLogger(env.Stderr, log.WarnLevel, false)
		logger.WithError(err).Error("Invalid configuration")
		return 1
	}

	colored := cfg.UseColor(env.Stdout)
	logger := newLogger(env.Stderr, cfg.Level(), colored)
	logger.Debugf("Configuration: %+v", cfg)

	result := &run.Result{}
	ctx.Bind(registry, logger, result, runner.Options{
		Out:         env.Stdout,
		Color:       colored,
		Logger:      logger,
		AzureDevops: cfg.AzureDevops,
	})
	ctx.BindTo(env.Stdout, (*io.Writer)(nil))

	if err := ctx.Run(); err != nil {
		logger.WithError(err).Errorf("Command '%s' failed", ctx.Command())
		return 1
	}

	return min(result.Code, MaxExitCode)
}

// Applies the command line on top of the environment and config file.
func resolveConfig(global GlobalOpts, getenv func(string) string) (config.Config, error) {
	cfg, err := config.Load(global.Config, getenv)
	if err != nil {
		return cfg, err
	}

	if global.Verbosity != "" {
		cfg.LogLevel = global.Verbosity
	}

	if global.Color != "" {
		mode, err := config.ParseColorMode(global.Color)
		if err != nil {
			return cfg, err
		}
		cfg.Color = mode
	}

	if global.AzureDevops {
		cfg.AzureDevops = true
	}

	return cfg, cfg.Validate()
}

func newLogger(out io.Writer, level log.Level, colored bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		ForceColors:   colored,
		DisableColors: !colored,
	})
	return logger
}
