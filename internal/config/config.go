// Package config loads the wstr command-line configuration.
//
// Sources, highest priority first: explicitly set command-line flags,
// WSTR_* environment variables, the YAML file given with --config, and the
// defaults in this package. Nested keys map to environment variables by
// replacing "." with "_": parse.tolerance ⇒ WSTR_PARSE_TOLERANCE.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/wstr/wsio"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Parse  ParseConfig  `mapstructure:"parse" yaml:"parse"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// ParseConfig selects the store strategy and the per-call parse modes.
type ParseConfig struct {
	// Strict rejects positions that do not sum to one within Tolerance.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// Gap turns on the gap convention: the last alphabet symbol is the gap.
	Gap bool `mapstructure:"gap" yaml:"gap"`

	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance" validate:"gte=0"`

	// DNA stores positions densely over the nucleotide alphabet and answers
	// ambiguity codes. With Gap, the alphabet includes '-'.
	DNA bool `mapstructure:"dna" yaml:"dna"`

	// Collection reads the collection layout instead of single sequences.
	Collection bool `mapstructure:"collection" yaml:"collection"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
}

// LogConfig controls the diagnostic logger, which writes to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsInf(c.Parse.Tolerance, 0) {
		return fmt.Errorf("%w: parse.tolerance must be finite", ErrInvalidConfig)
	}

	return nil
}

// Options translates the parse section into decoder options.
func (p ParseConfig) Options() []wsio.Option {
	return []wsio.Option{
		wsio.WithStrictness(p.Strict),
		wsio.WithGapConvention(p.Gap),
		wsio.WithTolerance(p.Tolerance),
	}
}
