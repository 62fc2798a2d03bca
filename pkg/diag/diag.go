// Package diag provides the diagnostics sink shared by the scanner and parser.
//
// A Diagnostics value is scoped to a single compilation: the caller creates
// it, hands it to the scanner and parser, and inspects HadError afterwards.
// Nothing here is global, so independent compilations never observe each
// other's errors.
package diag

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/lox/pkg/token"
)

// Phase identifies which stage of the front-end reported a diagnostic.
type Phase string

// Phases.
const (
	PhaseScan  Phase = "scan"
	PhaseParse Phase = "parse"
)

// Entry is a single reported error.
type Entry struct {
	Phase   Phase  `json:"phase" yaml:"phase"`
	Line    int    `json:"line" yaml:"line"`
	Where   string `json:"where,omitempty" yaml:"where,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// String renders the entry as "[line N] Error<where>: <message>".
func (e Entry) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Diagnostics records errors and the has-error flag for one compilation.
// It is not safe for concurrent use; give each compilation its own.
type Diagnostics struct {
	entries  []Entry
	hadError bool

	out    io.Writer    // optional, receives each entry as it is reported
	logger *slog.Logger // optional
}

// Option configures a Diagnostics.
type Option func(*Diagnostics)

// WithWriter echoes every entry to w as it is reported.
func WithWriter(w io.Writer) Option {
	return func(d *Diagnostics) {
		d.out = w
	}
}

// WithLogger mirrors every entry to the logger at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Diagnostics) {
		d.logger = l
	}
}

// New creates an empty Diagnostics.
func New(opts ...Option) *Diagnostics {
	d := &Diagnostics{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Report records a diagnostic for phase at line. where is appended directly
// after "Error" when rendering and is usually empty or " at 'x'".
func (d *Diagnostics) Report(phase Phase, line int, where, message string) {
	e := Entry{Phase: phase, Line: line, Where: where, Message: message}
	d.entries = append(d.entries, e)
	d.hadError = true

	if d.out != nil {
		_, _ = fmt.Fprintln(d.out, e.String())
	}
	if d.logger != nil {
		d.logger.Debug("diagnostic reported",
			"phase", string(phase),
			"line", line,
			"message", message,
		)
	}
}

// Error records a scan diagnostic without a location.
func (d *Diagnostics) Error(line int, message string) {
	d.Report(PhaseScan, line, "", message)
}

// TokenError records a parse diagnostic located at tok.
func (d *Diagnostics) TokenError(tok token.Token, message string) {
	d.Report(PhaseParse, tok.Line, Where(tok), message)
}

// Where returns the location suffix for a diagnostic at tok.
func Where(tok token.Token) string {
	if tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// HadError reports whether any diagnostic was recorded since the last Reset.
func (d *Diagnostics) HadError() bool {
	return d.hadError
}

// Reset clears the has-error flag and recorded entries.
func (d *Diagnostics) Reset() {
	d.entries = nil
	d.hadError = false
}

// Entries returns a copy of the recorded entries in report order.
func (d *Diagnostics) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of recorded entries.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}
