package parser

import (
	"fmt"

	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/token"
)

// ParseError is returned when the token stream does not match the grammar.
// It is also recorded in the diagnostics sink at the offending token's line.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d%s: %s", e.Token.Line, diag.Where(e.Token), e.Message)
}

// Line returns the line of the offending token.
func (e *ParseError) Line() int {
	return e.Token.Line
}

// Error messages reported by the parser.
const (
	ErrExpectExpression = "Expected expression."
	ErrExpectRightParen = "Expected ')' after expression."
)
