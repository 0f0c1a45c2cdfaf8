// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the echelon command: what to
// compute, whether to trace, how to print and how large a matrix may grow.
// Values come from Default(), optionally overlaid by a YAML file; command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/echelon/matrix"
	"github.com/katalvlaran/echelon/render"
)

// Reduction modes.
const (
	ModeReduced = "reduced"
	ModeEchelon = "echelon"
	ModeRank    = "rank"
)

// Input formats.
const (
	InputText = "text"
	InputYAML = "yaml"
)

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Capacity bounds the matrix store.
type Capacity struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Config is the full run configuration.
type Config struct {
	Mode     string   `yaml:"mode"`
	Trace    bool     `yaml:"trace"`
	Digits   int      `yaml:"digits"`
	Input    string   `yaml:"input"`
	Capacity Capacity `yaml:"capacity"`
}

// Default returns the reference behavior: reduced echelon form with tracing
// on, two significant digits, text input and a 64×64 store.
func Default() Config {
	return Config{
		Mode:   ModeReduced,
		Trace:  true,
		Digits: render.DefaultDigits,
		Input:  InputText,
		Capacity: Capacity{
			Rows: matrix.DefaultRowCapacity,
			Cols: matrix.DefaultColCapacity,
		},
	}
}

// Load reads a YAML file over Default(); keys absent from the file keep
// their default values and an empty file yields the defaults. Unknown keys
// are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeReduced, ModeEchelon, ModeRank:
	default:
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalidConfig)
	}
	switch c.Input {
	case InputText, InputYAML:
	default:
		return fmt.Errorf("input %q: %w", c.Input, ErrInvalidConfig)
	}
	if c.Digits <= 0 || c.Digits > 17 {
		return fmt.Errorf("digits %d: %w", c.Digits, ErrInvalidConfig)
	}
	if c.Capacity.Rows <= 0 || c.Capacity.Cols <= 0 {
		return fmt.Errorf("capacity %dx%d: %w", c.Capacity.Rows, c.Capacity.Cols, ErrInvalidConfig)
	}

	return nil
}

// MatrixOptions translates the configuration into store options.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithCapacity(c.Capacity.Rows, c.Capacity.Cols)}
}
