package parser

import (
	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/token"
)

// Binary precedence levels, lowest first. Each level's operands are parsed
// by the next level.
var (
	equalityOps   = []token.TokenType{token.BANG_EQUAL, token.EQUAL_EQUAL}
	comparisonOps = []token.TokenType{token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL}
	termOps       = []token.TokenType{token.MINUS, token.PLUS}
	factorOps     = []token.TokenType{token.SLASH, token.STAR}
	unaryOps      = []token.TokenType{token.BANG, token.MINUS}
)

// expression → equality
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssoc(p.comparison, equalityOps)
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssoc(p.term, comparisonOps)
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssoc(p.factor, termOps)
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssoc(p.unary, factorOps)
}

// leftAssoc parses one operand, then folds each following operator and
// operand into a new Binary whose left side is everything parsed so far.
func (p *Parser) leftAssoc(operand func() (ast.Expr, error), ops []token.TokenType) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.matchAny(ops...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}

	return expr, nil
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.matchAny(unaryOps...) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	}
	return p.primary()
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.matchAny(token.FALSE):
		return ast.NewLiteral(token.Boolean(false)), nil
	case p.matchAny(token.TRUE):
		return ast.NewLiteral(token.Boolean(true)), nil
	case p.matchAny(token.NIL):
		return ast.NewLiteral(token.Null{}), nil
	case p.matchAny(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.matchAny(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, ErrExpectRightParen); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	return nil, p.error(p.peek(), ErrExpectExpression)
}
