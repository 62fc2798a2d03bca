// Package lox drives one compilation of Lox source through the front-end:
// scan, parse and print. It also provides the file runner and the
// interactive prompt used by the CLI.
package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/format"
	"github.com/leapstack-labs/lox/pkg/parser"
	"github.com/leapstack-labs/lox/pkg/scanner"
	"github.com/leapstack-labs/lox/pkg/token"
)

// Mode selects what Run prints.
type Mode int

// Run modes.
const (
	ModeAST    Mode = iota // pretty-printed expression
	ModeTokens             // one token per line
)

func (m Mode) String() string {
	switch m {
	case ModeTokens:
		return "tokens"
	default:
		return "ast"
	}
}

// Result is the outcome of a single Run.
type Result struct {
	ID          string
	Tokens      []token.Token
	Expr        ast.Expr // nil when parsing failed
	Err         error    // first parse error, if any
	Diagnostics *diag.Diagnostics
}

// HadError reports whether scanning or parsing reported an error.
func (r Result) HadError() bool {
	return r.Diagnostics != nil && r.Diagnostics.HadError()
}

// Runner runs compilations and writes their output.
type Runner struct {
	out     io.Writer
	diagOut io.Writer
	logger  *slog.Logger
	mode    Mode
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMode sets what Run prints.
func WithMode(m Mode) Option {
	return func(r *Runner) {
		r.mode = m
	}
}

// WithDiagnosticsWriter sets where diagnostics are echoed. The default is
// os.Stderr.
func WithDiagnosticsWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.diagOut = w
	}
}

// NewRunner creates a Runner that prints results to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:     out,
		diagOut: os.Stderr,
		logger:  slog.New(slog.DiscardHandler),
		mode:    ModeAST,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the current run mode.
func (r *Runner) Mode() Mode {
	return r.mode
}

// SetMode changes the run mode for subsequent runs.
func (r *Runner) SetMode(m Mode) {
	r.mode = m
}

// Compile scans and parses source with a fresh Diagnostics and prints
// nothing.
func (r *Runner) Compile(source string) Result {
	id := uuid.NewString()
	logger := r.logger.With("run_id", id)

	opts := []diag.Option{diag.WithLogger(logger)}
	if r.diagOut != nil {
		opts = append(opts, diag.WithWriter(r.diagOut))
	}
	d := diag.New(opts...)

	tokens := scanner.Scan(source, d)
	logger.Debug("scanned source", "bytes", len(source), "tokens", len(tokens))

	expr, err := parser.New(tokens, d).Parse()
	if err != nil {
		logger.Debug("parse failed", "error", err)
	}

	return Result{
		ID:          id,
		Tokens:      tokens,
		Expr:        expr,
		Err:         err,
		Diagnostics: d,
	}
}

// Run compiles source and prints the result in the current mode. The token
// dump is always printed; the expression only when nothing was reported.
func (r *Runner) Run(source string) Result {
	res := r.Compile(source)

	switch r.mode {
	case ModeTokens:
		for _, tok := range res.Tokens {
			_, _ = fmt.Fprintln(r.out, tok.String())
		}
	default:
		if !res.HadError() && res.Expr != nil {
			_, _ = fmt.Fprintln(r.out, format.Print(res.Expr))
		}
	}

	return res
}

// ReadSource reads a script. The path "-" reads stdin, or os.Stdin when
// stdin is nil.
func ReadSource(path string, stdin io.Reader) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path comes from the user
	}
	if err != nil {
		return "", &ExitError{Code: ExitIOError, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	return string(data), nil
}

// RunFile runs the script at path. It returns an *ExitError with
// ExitIOError when the file cannot be read and ExitDataError when the
// source reported diagnostics.
func (r *Runner) RunFile(path string) error {
	source, err := ReadSource(path, os.Stdin)
	if err != nil {
		return err
	}

	res := r.Run(source)
	r.logger.Info("ran file", "path", path, "run_id", res.ID, "errors", res.Diagnostics.Len())
	if res.HadError() {
		return &ExitError{Code: ExitDataError}
	}
	return nil
}

// LineReader is the part of *readline.Instance the prompt needs.
type LineReader interface {
	Readline() (string, error)
}

// promptHelp is printed by the .help command.
const promptHelp = `Enter an expression to see its syntax tree.

Commands:
  .help     Show this help
  .tokens   Print tokens instead of the syntax tree
  .ast      Print the syntax tree (default)
  .quit     Leave the prompt

An empty line also ends the session.`

// RunPrompt reads and runs lines until an empty line, EOF or .quit. Each
// line is its own compilation, so an error on one line never affects the
// next. Interrupting a line discards it.
func (r *Runner) RunPrompt(rl LineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		if strings.HasPrefix(line, ".") {
			if quit := r.command(line); quit {
				return nil
			}
			continue
		}

		r.Run(line)
	}
}

// command handles a prompt dot-command and reports whether to quit.
func (r *Runner) command(line string) bool {
	switch strings.ToLower(line) {
	case ".quit", ".exit":
		return true
	case ".help":
		_, _ = fmt.Fprintln(r.out, promptHelp)
	case ".tokens":
		r.SetMode(ModeTokens)
		_, _ = fmt.Fprintln(r.out, "Printing tokens.")
	case ".ast":
		r.SetMode(ModeAST)
		_, _ = fmt.Fprintln(r.out, "Printing syntax trees.")
	default:
		_, _ = fmt.Fprintf(r.out, "Unknown command: %s (try .help)\n", line)
	}
	return false
}
