// Package config loads the run settings. Sources are applied in increasing
// order of precedence: defaults, YAML file, environment, command line.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	// Implicit config file, read when present in the working directory.
	DefaultFile = ".vct.yaml"

	EnvConfig   = "VCT_CONFIG"
	EnvColor    = "VCT_COLOR"
	EnvNoColor  = "NO_COLOR"
	EnvLogLevel = "VCT_LOG_LEVEL"
	// Set by Azure Pipelines on every agent.
	EnvAzureDevops = "TF_BUILD"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", errors.Errorf("invalid color mode '%s', expected one of auto, always, never", s)
	}
}

// UnmarshalYAML accepts the modes in any case and stores them normalized.
func (m *ColorMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	mode, err := ParseColorMode(s)
	if err != nil {
		return err
	}

	*m = mode
	return nil
}

type Config struct {
	Color       ColorMode `yaml:"color"`
	LogLevel    string    `yaml:"log_level"`
	AzureDevops bool      `yaml:"azure_devops"`
}

func Default() Config {
	return Config{
		Color:    ColorAuto,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// Load builds the configuration from the defaults, the config file and the
// environment read through getenv.
//
// The file is path when it is not empty, otherwise $VCT_CONFIG, otherwise
// ./.vct.yaml. An explicitly named file must exist; the implicit one is
// skipped when missing.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return Config{}, errors.Wrapf(err, "failed to parse config file '%s'", path)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	if err == io.EOF {
		// Empty file.
		return nil
	}
	return err
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvColor); v != "" {
		mode, err := ParseColorMode(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvColor)
		}
		c.Color = mode
	}

	// https://no-color.org: any non-empty value disables color.
	if getenv(EnvNoColor) != "" {
		c.Color = ColorNever
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if isTruthy(getenv(EnvAzureDevops)) {
		c.AzureDevops = true
	}

	return nil
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func (c Config) Validate() error {
	if _, err := ParseColorMode(string(c.Color)); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	return nil
}

// Level returns the parsed log level. The config must be valid.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// UseColor decides whether the report written to out is colored. In auto
// mode only a terminal gets colors.
func (c Config) UseColor(out io.Writer) bool {
	mode, _ := ParseColorMode(string(c.Color))
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
