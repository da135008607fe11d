package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Settings are the runtime settings of the mapgen command. Command-line flags take precedence.
type Settings struct {
	// Workers bounds the goroutines computing rows of a step. 0 uses GOMAXPROCS.
	Workers   int    `env:"MAPGEN_WORKERS" envDefault:"0"`
	LogLevel  string `env:"MAPGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MAPGEN_LOG_FORMAT" envDefault:"text"`
	// DOTFile receives the lineage graph of the run when set.
	DOTFile   string `env:"MAPGEN_DOT_FILE"`
	Preflight bool   `env:"MAPGEN_PREFLIGHT" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	err := env.Parse(target)
	if err != nil {
		return errors.Wrap(err, "parse env")
	}

	return nil
}

// ParseEnvFrom loads configuration from the given variables instead of the process environment.
func ParseEnvFrom(target any, environment map[string]string) error {
	err := env.ParseWithOptions(target, env.Options{Environment: environment})
	if err != nil {
		return errors.Wrap(err, "parse env")
	}

	return nil
}

// Validate normalises and checks the settings.
func (s *Settings) Validate() error {
	if s.Workers < 0 {
		return errors.Errorf("invalid workers %d: must not be negative", s.Workers)
	}

	s.LogLevel = strings.ToLower(s.LogLevel)
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}

	s.LogFormat = strings.ToLower(s.LogFormat)
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return errors.Errorf("invalid log format %q: must be 'text' or 'json'", s.LogFormat)
	}

	return nil
}
