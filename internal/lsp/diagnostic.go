package lsp

import (
	"fmt"

	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/parser"
	"github.com/leapstack-labs/lox/pkg/scanner"
)

const diagnosticSource = "lox"

// compileResult is the outcome of compiling one document.
type compileResult struct {
	Expr     ast.Expr
	Entries  []diag.Entry
	Trailing int
	// TrailingLine is the line of the first token after the expression.
	TrailingLine int
}

// compile scans and parses content with a Diagnostics of its own.
func compile(content string) compileResult {
	d := diag.New()
	p := parser.New(scanner.Scan(content, d), d)

	var res compileResult
	if expr, err := p.Parse(); err == nil {
		res.Expr = expr
		if n := p.Remaining(); n > 0 {
			res.Trailing = n
			res.TrailingLine = p.Peek().Line
		}
	}
	res.Entries = d.Entries()
	return res
}

// Diagnose compiles a document and converts the result to LSP diagnostics.
// Every diagnostics entry covers its whole source line.
func Diagnose(doc *Document) []Diagnostic {
	if doc == nil {
		return []Diagnostic{}
	}
	return diagnosticsFor(doc, compile(doc.Content))
}

func diagnosticsFor(doc *Document, res compileResult) []Diagnostic {
	out := make([]Diagnostic, 0, len(res.Entries)+1)
	for _, e := range res.Entries {
		out = append(out, Diagnostic{
			Range:    doc.LineRange(e.Line),
			Severity: DiagnosticSeverityError,
			Code:     string(e.Phase),
			Source:   diagnosticSource,
			Message:  entryMessage(e),
		})
	}

	if res.Trailing > 0 {
		out = append(out, Diagnostic{
			Range:    doc.LineRange(res.TrailingLine),
			Severity: DiagnosticSeverityWarning,
			Code:     "trailing",
			Source:   diagnosticSource,
			Message:  fmt.Sprintf("%d token(s) after the expression are ignored.", res.Trailing),
		})
	}
	return out
}

func entryMessage(e diag.Entry) string {
	if e.Where == "" {
		return e.Message
	}
	return "Error" + e.Where + ": " + e.Message
}

// publishDiagnostics compiles the document and publishes the result.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	diagnostics := Diagnose(doc)
	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})
	s.logger.Debug("published diagnostics", "uri", uri, "count", len(diagnostics))
}
