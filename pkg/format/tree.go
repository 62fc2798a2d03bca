package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/token"
)

// TreePrinter renders an expression as an indented tree, one node per line.
type TreePrinter struct {
	style list.Style
	w     list.Writer
}

var _ ast.Visitor[struct{}] = (*TreePrinter)(nil)

// NewTreePrinter creates a TreePrinter. A nil style uses rounded connectors.
func NewTreePrinter(style *list.Style) *TreePrinter {
	t := &TreePrinter{style: list.StyleConnectedRounded}
	if style != nil {
		t.style = *style
	}
	return t
}

// Tree renders expr with the default style.
func Tree(expr ast.Expr) string {
	return NewTreePrinter(nil).Render(expr)
}

// Render renders expr. Each call starts a fresh list, so a printer can be
// reused.
func (t *TreePrinter) Render(expr ast.Expr) string {
	t.w = list.NewWriter()
	t.w.SetStyle(t.style)
	ast.Accept[struct{}](expr, t)
	return t.w.Render()
}

func (t *TreePrinter) VisitBinary(e *ast.Binary) struct{} {
	return t.node(fmt.Sprintf("binary %s", e.Operator.Lexeme), e.Left, e.Right)
}

func (t *TreePrinter) VisitGrouping(e *ast.Grouping) struct{} {
	return t.node("group", e.Expression)
}

func (t *TreePrinter) VisitLiteral(e *ast.Literal) struct{} {
	return t.node(fmt.Sprintf("literal %s", literalText(e)))
}

func (t *TreePrinter) VisitUnary(e *ast.Unary) struct{} {
	return t.node(fmt.Sprintf("unary %s", e.Operator.Lexeme), e.Right)
}

func (t *TreePrinter) node(label string, children ...ast.Expr) struct{} {
	t.w.AppendItem(label)
	if len(children) == 0 {
		return struct{}{}
	}
	t.w.Indent()
	for _, c := range children {
		ast.Accept[struct{}](c, t)
	}
	t.w.UnIndent()
	return struct{}{}
}

// literalText quotes text literals so "1" and 1 stay distinguishable.
func literalText(e *ast.Literal) string {
	if e.Value == nil {
		return "nil"
	}
	if _, ok := e.Value.(token.Text); ok {
		return fmt.Sprintf("%q", e.Value.String())
	}
	return e.Value.String()
}
