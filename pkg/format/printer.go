package format

import (
	"strings"

	"github.com/leapstack-labs/lox/pkg/ast"
)

// PrettyPrinter renders an expression in fully parenthesized prefix form.
// Binary and unary nodes print as (op operands...), groupings as
// (group expr) and literals in their canonical textual form.
type PrettyPrinter struct{}

var _ ast.Visitor[string] = PrettyPrinter{}

// Print renders expr.
func (p PrettyPrinter) Print(expr ast.Expr) string {
	return ast.Accept[string](expr, p)
}

func (p PrettyPrinter) VisitBinary(e *ast.Binary) string {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p PrettyPrinter) VisitGrouping(e *ast.Grouping) string {
	return p.parenthesize("group", e.Expression)
}

func (p PrettyPrinter) VisitLiteral(e *ast.Literal) string {
	if e.Value == nil {
		return "nil"
	}
	return e.Value.String()
}

func (p PrettyPrinter) VisitUnary(e *ast.Unary) string {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p PrettyPrinter) parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(ast.Accept[string](e, p))
	}
	b.WriteByte(')')
	return b.String()
}
