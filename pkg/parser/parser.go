// Package parser builds an expression tree from a Lox token stream.
//
// # Grammar
//
// The parser is a recursive descent parser with one function per precedence
// level, lowest first. Every binary level is left-associative and parsed
// iteratively:
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// # Usage
//
//	d := diag.New()
//	expr, err := parser.ParseExpression("-123 * (12.5)", d)
//	if err != nil {
//	    // d.Entries() holds the report
//	}
package parser

import (
	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/scanner"
	"github.com/leapstack-labs/lox/pkg/token"
)

// Parser parses a token stream into an AST.
type Parser struct {
	tokens  []token.Token
	current int // index of the upcoming token
	diags   *diag.Diagnostics
}

// New creates a parser over tokens. The stream should end with an EOF
// token; one is appended if it is missing. Errors are reported to d.
func New(tokens []token.Token, d *diag.Diagnostics) *Parser {
	if d == nil {
		d = diag.New()
	}
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], token.New(token.EOF, "", nil, line))
	}
	return &Parser{tokens: tokens, diags: d}
}

// ParseExpression scans and parses source as a single expression.
func ParseExpression(source string, d *diag.Diagnostics) (ast.Expr, error) {
	if d == nil {
		d = diag.New()
	}
	return New(scanner.Scan(source, d), d).Parse()
}

// Parse parses one expression. On failure it returns the first ParseError;
// the error has already been recorded in the diagnostics sink.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.expression()
}

// Remaining returns the number of tokens before EOF that have not been
// consumed.
func (p *Parser) Remaining() int {
	return len(p.tokens) - 1 - p.current
}

// Synchronize discards tokens after a parse error until a likely statement
// boundary: just after a semicolon, before a statement keyword, or at EOF.
func (p *Parser) Synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}

// Peek returns the upcoming token without consuming it.
func (p *Parser) Peek() token.Token {
	return p.peek()
}

// ---------- Token Helpers ----------

// peek returns the upcoming token.
func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// isAtEnd reports whether the upcoming token is EOF.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// advance consumes the upcoming token and returns it. It never moves past EOF.
func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check returns true if the upcoming token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// matchAny consumes the upcoming token if it matches any of the given types.
func (p *Parser) matchAny(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the upcoming token to be of type t.
func (p *Parser) consume(t token.TokenType, message string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.error(p.peek(), message)
}

// error reports message at tok and returns the matching ParseError.
func (p *Parser) error(tok token.Token, message string) *ParseError {
	p.diags.TokenError(tok, message)
	return &ParseError{Token: tok, Message: message}
}
