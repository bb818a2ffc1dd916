// SPDX-License-Identifier: MIT

// Command lusolve reads a linear system from an HCL file, solves it with a
// no-pivot LU factorization and prints x, one component per line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/doolittle/internal/ctxlog"
	"github.com/katalvlaran/doolittle/internal/system"
	"github.com/katalvlaran/doolittle/lu"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	path      string
	name      string
	tol       float64
	tolSet    bool
	logLevel  string
	logFormat string
}

// parseFlags returns shouldExit=true when usage was printed on request.
func parseFlags(args []string, outW io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("lusolve", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.Usage = func() {
		fmt.Fprint(outW, `
lusolve - solve A·x = b with a Doolittle LU factorization (no pivoting).

Usage:
  lusolve [options] FILE.hcl

Options:
`)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.StringVar(&cfg.name, "system", "", "Name of the system block to solve. May be omitted when the file has one.")
	fs.Float64Var(&cfg.tol, "tol", lu.DefaultPivotTolerance, "Pivot tolerance; overrides pivot_tolerance from the file.")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tol" {
			cfg.tolSet = true
		}
	})

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: "exactly one system file is required"}
	}
	cfg.path = fs.Arg(0)

	if cfg.tolSet && (cfg.tol < 0 || math.IsNaN(cfg.tol) || math.IsInf(cfg.tol, 0)) {
		return nil, false, &ExitError{Code: 2, Message: "invalid tol: must be finite and non-negative"}
	}
	cfg.logFormat = strings.ToLower(cfg.logFormat)
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.logLevel = strings.ToLower(cfg.logLevel)
	switch cfg.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}

// run is main without the process exit, so tests can drive it.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseFlags(args, outW)
	if err != nil || shouldExit {
		return err
	}

	logger := newLogger(cfg.logLevel, cfg.logFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	systems, err := system.Load(ctx, cfg.path)
	if err != nil {
		return err
	}
	sys, err := system.Select(systems, cfg.name)
	if err != nil {
		return err
	}

	opts := sys.Options()
	if cfg.tolSet {
		opts = []lu.Option{lu.WithPivotTolerance(cfg.tol)}
	}

	logger.Debug("Solving system.", "name", sys.Name, "n", sys.A.Rows(), "tol_override", cfg.tolSet)
	x, err := lu.Solve(sys.A, sys.B, opts...)
	if err != nil {
		logger.Error("Solve failed.", "name", sys.Name, "error", err)
		return err
	}
	res, err := lu.Residual(sys.A, x, sys.B)
	if err != nil {
		return err
	}
	logger.Info("Solved system.", "name", sys.Name, "n", len(x), "residual", res)

	var b strings.Builder
	for _, v := range x {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('\n')
	}
	_, err = io.WriteString(outW, b.String())

	return err
}

// newLogger builds an isolated logger; it does not touch slog.Default.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
