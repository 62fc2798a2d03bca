package ast

// Visitor is implemented by every traversal over the expression tree. R is
// the result type the traversal produces for each node.
type Visitor[R any] interface {
	VisitBinary(e *Binary) R
	VisitGrouping(e *Grouping) R
	VisitLiteral(e *Literal) R
	VisitUnary(e *Unary) R
}

// Accept dispatches e to the matching method of v and returns its result.
// Accept has no side effects of its own. It panics on a nil expression.
func Accept[R any](e Expr, v Visitor[R]) R {
	switch n := e.(type) {
	case *Binary:
		return v.VisitBinary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Unary:
		return v.VisitUnary(n)
	}
	// Unreachable: Expr is sealed to the four kinds above.
	panic("ast: Accept called with a nil expression")
}

func (e *Binary) Accept(v Visitor[any]) any   { return v.VisitBinary(e) }
func (e *Grouping) Accept(v Visitor[any]) any { return v.VisitGrouping(e) }
func (e *Literal) Accept(v Visitor[any]) any  { return v.VisitLiteral(e) }
func (e *Unary) Accept(v Visitor[any]) any    { return v.VisitUnary(e) }
