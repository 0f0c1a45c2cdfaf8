// SPDX-License-Identifier: MIT

// Package cli implements the echelon command: read a matrix, reduce it and
// print the result (optionally with a step-by-step trace).
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/echelon/config"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds the command flags. Values are only applied over the
// configuration when the flag was set explicitly.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	Mode    string
	Trace   bool
	Digits  int
	Input   string
	RowsCap int
	ColsCap int
}

// NewRootCommand creates the echelon command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "echelon [file]",
		Short: "Reduce a matrix to (reduced) row-echelon form",
		Long: `Read a matrix and reduce it with Gaussian elimination.

Text input is the row count, the column count and then every value in
row-major order, separated by any whitespace. YAML input is a document
of the form "rows: [[1, 2], [3, 4]]". The matrix is read from file, or
from stdin when file is omitted or "-".

Every row operation is printed as it happens unless --trace=false.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				f := &OutputFormatter{Format: FormatText, Writer: cmd.ErrOrStderr()}
				return f.fail(ExitCommandError, ErrCodeConfig,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := stdinSource
			if len(args) == 1 {
				source = args[0]
			}
			return runReduce(cmd, opts, source)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
	flags.StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.Mode, "mode", def.Mode, "reduction (reduced|echelon|rank)")
	flags.BoolVar(&opts.Trace, "trace", def.Trace, "print every row operation")
	flags.IntVar(&opts.Digits, "digits", def.Digits, "significant digits per printed value")
	flags.StringVar(&opts.Input, "input", def.Input, "input format (text|yaml)")
	flags.IntVar(&opts.RowsCap, "rows-cap", def.Capacity.Rows, "maximum number of rows")
	flags.IntVar(&opts.ColsCap, "cols-cap", def.Capacity.Cols, "maximum number of columns")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or the
// defaults when no file is given) and validates the result.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = opts.Mode
	}
	if flags.Changed("trace") {
		cfg.Trace = opts.Trace
	}
	if flags.Changed("digits") {
		cfg.Digits = opts.Digits
	}
	if flags.Changed("input") {
		cfg.Input = opts.Input
	}
	if flags.Changed("rows-cap") {
		cfg.Capacity.Rows = opts.RowsCap
	}
	if flags.Changed("cols-cap") {
		cfg.Capacity.Cols = opts.ColsCap
	}

	return cfg, cfg.Validate()
}

// newLogger returns a text logger on w. Only warnings and errors are logged
// unless verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
