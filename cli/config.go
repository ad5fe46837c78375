// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/report"
)

// Environment variables read when the matching flag is not set.
const (
	EnvFormat   = "ASSIGN_FORMAT"
	EnvMethod   = "ASSIGN_METHOD"
	EnvMaxSize  = "ASSIGN_MAX_SIZE"
	EnvLogLevel = "ASSIGN_LOG_LEVEL"
)

const (
	flagFormat    = "format"
	flagMethod    = "method"
	flagMaxSize   = "max-size"
	flagLogLevel  = "log-level"
	flagEnvFile   = "env-file"
	flagInput     = "input"
	flagOutput    = "output"
	flagDirection = "direction"
	flagSave      = "save"

	defaultEnvFile  = ".env"
	defaultLogLevel = "info"
)

// Config is the resolved solver and output configuration of one command.
type Config struct {
	Format  report.Format
	Method  hungarian.Method
	MaxSize int
}

// Options converts c into solver options.
func (c Config) Options(log zerolog.Logger) []hungarian.Option {
	return []hungarian.Option{
		hungarian.WithMethod(c.Method),
		hungarian.WithMaxSize(c.MaxSize),
		hungarian.WithLogger(log),
	}
}

// resolve returns the flag value when the user set it, otherwise the
// environment value when non-empty, otherwise the flag default.
func resolve(flags *pflag.FlagSet, name, env string) string {
	f := flags.Lookup(name)
	if f == nil {
		return os.Getenv(env)
	}
	if f.Changed {
		return f.Value.String()
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}

	return f.DefValue
}

// loadConfig resolves format, method and max-size for a command.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Format, err = report.ParseFormat(resolve(flags, flagFormat, EnvFormat)); err != nil {
		return Config{}, err
	}
	if cfg.Method, err = hungarian.ParseMethod(resolve(flags, flagMethod, EnvMethod)); err != nil {
		return Config{}, err
	}
	raw := resolve(flags, flagMaxSize, EnvMaxSize)
	if cfg.MaxSize, err = strconv.Atoi(raw); err != nil || cfg.MaxSize < 0 {
		return Config{}, fmt.Errorf("invalid max size %q: must be a non-negative integer", raw)
	}

	return cfg, nil
}

// loadEnvFile loads KEY=VALUE pairs from path without overriding variables
// already set. A missing file or an empty path is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// addSolverFlags registers the flags shared by solve and example.
func addSolverFlags(flags *pflag.FlagSet) {
	flags.String(flagFormat, report.FormatTable.String(), "output format: table, csv or json")
	flags.String(flagMethod, hungarian.CoverMethod.String(), "algorithm: cover or potentials")
	flags.Int(flagMaxSize, hungarian.DefaultMaxSize, "largest accepted max(rows, cols); 0 disables the limit")
}
