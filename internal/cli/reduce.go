// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/echelon/config"
	"github.com/katalvlaran/echelon/matrix"
	"github.com/katalvlaran/echelon/render"
	"github.com/katalvlaran/echelon/scan"
)

// stdinSource names standard input as the matrix source.
const stdinSource = "-"

// Result is the JSON payload of a successful run.
type Result struct {
	RunID  string      `json:"run_id"`
	Rows   int         `json:"rows"`
	Cols   int         `json:"cols"`
	Mode   string      `json:"mode"`
	Rank   int         `json:"rank"`
	Result [][]float64 `json:"result,omitempty"` // absent in rank mode
}

func runReduce(cmd *cobra.Command, opts *RootOptions, source string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // trace and logs go to stderr in json format
		Verbose:   opts.Verbose,
	}
	runID := uuid.Must(uuid.NewV7()).String()
	logger := newLogger(formatter.GetErrWriter(), opts.Verbose).With("run_id", runID)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		logger.Error("configuration rejected", "error", err)
		return formatter.fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}
	logger.Debug("configuration resolved",
		"mode", cfg.Mode,
		"trace", cfg.Trace,
		"input", cfg.Input,
		"digits", cfg.Digits,
		"rows_cap", cfg.Capacity.Rows,
		"cols_cap", cfg.Capacity.Cols)

	src, err := openSource(cmd.InOrStdin(), source)
	if err != nil {
		logger.Error("input source unavailable", "source", source, "error", err)
		return formatter.fail(ExitCommandError, ErrCodeSource, "cannot open input", err)
	}
	m, err := readMatrix(src, cfg)
	_ = src.Close()
	if err != nil {
		logger.Error("matrix rejected", "source", source, "error", err)
		return formatter.fail(ExitFailure, ErrCodeInput, "cannot read matrix", err)
	}
	rows, cols := m.Shape()
	logger.Info("matrix loaded", "source", source, "rows", rows, "cols", cols)

	out := formatter.Writer
	if formatter.Format == FormatText {
		if err = render.Matrix(out, m, cfg.Digits); err != nil {
			return formatter.fail(ExitFailure, ErrCodeOutput, "cannot write output", err)
		}
	}

	start := time.Now()
	rank, tracer, err := reduce(m, cfg, traceWriter(formatter))
	if err != nil {
		logger.Error("reduction failed", "mode", cfg.Mode, "error", err)
		return formatter.fail(ExitFailure, ErrCodeReduce, "cannot reduce matrix", err)
	}
	if tracer != nil && tracer.Err() != nil {
		return formatter.fail(ExitFailure, ErrCodeOutput, "cannot write trace", tracer.Err())
	}
	logger.Info("reduction finished", "mode", cfg.Mode, "rank", rank, "elapsed", time.Since(start))

	switch {
	case formatter.Format == FormatJSON:
		res := Result{RunID: runID, Rows: rows, Cols: cols, Mode: cfg.Mode, Rank: rank}
		if cfg.Mode != config.ModeRank {
			res.Result = m.RowsData()
		}
		err = formatter.Success(res)
	case cfg.Mode == config.ModeRank:
		err = formatter.Success(fmt.Sprintf("rank: %d", rank))
	default:
		err = render.Matrix(out, m, cfg.Digits)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "cannot write output", err)
	}

	return nil
}

// reduce computes the rank of m and, unless cfg asks for the rank only,
// transforms m in place. With tracing on, every row operation is written to
// traceOut; the returned tracer holds its first write error.
func reduce(m *matrix.Matrix, cfg config.Config, traceOut io.Writer) (int, *render.Tracer, error) {
	rank, err := matrix.Rank(m)
	if err != nil || cfg.Mode == config.ModeRank {
		return rank, nil, err
	}

	var tracer *render.Tracer
	if cfg.Trace {
		tracer = render.NewTracer(traceOut, cfg.Digits)
		m.SetRowOpHook(tracer.Hook)
		defer m.SetRowOpHook(nil)
	}
	if cfg.Mode == config.ModeEchelon {
		err = m.ToEchelon()
	} else {
		err = m.ToReducedEchelon()
	}

	return rank, tracer, err
}

// traceWriter keeps the trace out of a JSON document on stdout.
func traceWriter(f *OutputFormatter) io.Writer {
	if f.Format == FormatJSON {
		return f.GetErrWriter()
	}
	return f.Writer
}

func openSource(stdin io.Reader, source string) (io.ReadCloser, error) {
	if source == stdinSource {
		return io.NopCloser(stdin), nil
	}
	return os.Open(source)
}

func readMatrix(r io.Reader, cfg config.Config) (*matrix.Matrix, error) {
	if cfg.Input == config.InputYAML {
		return scan.YAML(r, cfg.MatrixOptions()...)
	}
	return scan.Text(r, cfg.MatrixOptions()...)
}
