package lox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/parser"
	"github.com/leapstack-labs/lox/pkg/scanner"
)

// FileReport is the outcome of checking one script.
type FileReport struct {
	Path        string       `json:"path" yaml:"path"`
	Diagnostics []diag.Entry `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	// Trailing counts tokens left after the expression.
	Trailing int    `json:"trailing,omitempty" yaml:"trailing,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`

	readErr error
}

// OK reports whether the file was read and compiled without diagnostics.
func (r FileReport) OK() bool {
	return r.readErr == nil && len(r.Diagnostics) == 0
}

// CheckSource scans and parses source with its own Diagnostics.
func CheckSource(path, source string) FileReport {
	d := diag.New()
	p := parser.New(scanner.Scan(source, d), d)

	report := FileReport{Path: path}
	if _, err := p.Parse(); err == nil {
		report.Trailing = p.Remaining()
	}
	report.Diagnostics = d.Entries()
	return report
}

// CheckFiles checks every path concurrently. Each file gets its own scanner,
// parser and Diagnostics. Reports are returned in the order of paths.
func CheckFiles(ctx context.Context, paths []string, logger *slog.Logger) ([]FileReport, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reports := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			source, err := ReadSource(path, nil)
			if err != nil {
				reports[i] = FileReport{Path: path, Error: err.Error(), readErr: err}
				logger.Warn("failed to read script", "path", path, "error", err)
				return nil
			}
			reports[i] = CheckSource(path, source)
			logger.Debug("checked script", "path", path, "diagnostics", len(reports[i].Diagnostics))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}
	return reports, nil
}

// CheckExit maps reports to an exit error: ExitIOError if any file could not
// be read, ExitDataError if any reported diagnostics, nil otherwise.
func CheckExit(reports []FileReport) error {
	var (
		readErrs []error
		failed   bool
	)
	for _, r := range reports {
		if r.readErr != nil {
			readErrs = append(readErrs, r.readErr)
		}
		if len(r.Diagnostics) > 0 {
			failed = true
		}
	}
	switch {
	case len(readErrs) > 0:
		return &ExitError{Code: ExitIOError, Err: errors.Join(readErrs...)}
	case failed:
		return &ExitError{Code: ExitDataError}
	default:
		return nil
	}
}
