// Package ast defines the expression tree produced by the parser.
//
// The node set is closed: Expr carries an unexported marker method, so only
// the four node kinds declared here can satisfy it. Traversals are written as
// Visitor implementations and dispatched with Accept; a visitor that forgets
// a node kind does not compile.
package ast

import "github.com/leapstack-labs/lox/pkg/token"

// Expr is an expression node.
type Expr interface {
	// Accept dispatches to the visitor method for the node's kind. Use the
	// package-level Accept for a typed result.
	Accept(v Visitor[any]) any
	exprNode()
}

// Binary is an infix operation such as "a + b".
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Literal is a number, string, boolean or nil literal.
type Literal struct {
	Value token.Value
}

// Unary is a prefix operation such as "-a" or "!a".
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}

// Compile-time checks that every node implements Expr.
var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
)

// NewBinary creates a Binary node.
func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: op, Right: right}
}

// NewGrouping creates a Grouping node.
func NewGrouping(expr Expr) *Grouping {
	return &Grouping{Expression: expr}
}

// NewLiteral creates a Literal node. A nil value is stored as token.Null.
func NewLiteral(v token.Value) *Literal {
	if v == nil {
		v = token.Null{}
	}
	return &Literal{Value: v}
}

// NewUnary creates a Unary node.
func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{Operator: op, Right: right}
}

// Equal reports whether a and b are structurally equivalent trees. Operators
// compare by type and lexeme; source lines are ignored.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Binary:
		y, ok := b.(*Binary)
		return ok && sameOperator(x.Operator, y.Operator) &&
			Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Grouping:
		y, ok := b.(*Grouping)
		return ok && Equal(x.Expression, y.Expression)
	case *Literal:
		y, ok := b.(*Literal)
		return ok && token.Equal(x.Value, y.Value)
	case *Unary:
		y, ok := b.(*Unary)
		return ok && sameOperator(x.Operator, y.Operator) && Equal(x.Right, y.Right)
	case nil:
		return b == nil
	default:
		return false
	}
}

func sameOperator(a, b token.Token) bool {
	return a.Type == b.Type && a.Lexeme == b.Lexeme
}
