package format

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/token"
)

// Node kinds.
const (
	KindBinary   = "binary"
	KindGrouping = "grouping"
	KindLiteral  = "literal"
	KindUnary    = "unary"
)

// Node is a serializable view of an expression tree.
type Node struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Operator string      `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value    token.Value `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Node      `json:"children,omitempty" yaml:"children,omitempty"`
}

// Encoder converts an expression tree into a Node document.
type Encoder struct{}

var _ ast.Visitor[Node] = Encoder{}

// Encode converts expr into a Node document.
func Encode(expr ast.Expr) Node {
	return ast.Accept[Node](expr, Encoder{})
}

func (e Encoder) VisitBinary(b *ast.Binary) Node {
	return Node{
		Kind:     KindBinary,
		Operator: b.Operator.Lexeme,
		Children: []Node{ast.Accept[Node](b.Left, e), ast.Accept[Node](b.Right, e)},
	}
}

func (e Encoder) VisitGrouping(g *ast.Grouping) Node {
	return Node{
		Kind:     KindGrouping,
		Children: []Node{ast.Accept[Node](g.Expression, e)},
	}
}

func (e Encoder) VisitLiteral(l *ast.Literal) Node {
	v := l.Value
	if v == nil {
		v = token.Null{}
	}
	return Node{Kind: KindLiteral, Value: v}
}

func (e Encoder) VisitUnary(u *ast.Unary) Node {
	return Node{
		Kind:     KindUnary,
		Operator: u.Operator.Lexeme,
		Children: []Node{ast.Accept[Node](u.Right, e)},
	}
}

// WriteJSON writes expr as an indented JSON document.
func WriteJSON(w io.Writer, expr ast.Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Encode(expr)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteYAML writes expr as a YAML document.
func WriteYAML(w io.Writer, expr ast.Expr) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Encode(expr)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
