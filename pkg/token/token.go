// Package token defines the lexical vocabulary of the Lox expression language.
//
// Token types are a closed set of constants. Keywords are resolved through a
// single package-level table that is never mutated after initialization, so
// any number of scanners may share it.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType reads clearly at call sites
type TokenType int

//nolint:revive // ALL_CAPS mirrors the grammar's terminal names
const (
	// Single-character tokens
	LEFT_PAREN  TokenType = iota // (
	RIGHT_PAREN                  // )
	LEFT_BRACE                   // {
	RIGHT_BRACE                  // }
	COMMA                        // ,
	DOT                          // .
	MINUS                        // -
	PLUS                         // +
	SEMICOLON                    // ;
	SLASH                        // /
	STAR                         // *

	// One or two character tokens
	BANG          // !
	BANG_EQUAL    // !=
	EQUAL         // =
	EQUAL_EQUAL   // ==
	GREATER       // >
	GREATER_EQUAL // >=
	LESS          // <
	LESS_EQUAL    // <=

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords (alphabetical)
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

// String returns the upper-snake name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// MarshalText encodes the token type by name, so token dumps stay readable
// in JSON and YAML.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	LEFT_BRACE:  "LEFT_BRACE",
	RIGHT_BRACE: "RIGHT_BRACE",
	COMMA:       "COMMA",
	DOT:         "DOT",
	MINUS:       "MINUS",
	PLUS:        "PLUS",
	SEMICOLON:   "SEMICOLON",
	SLASH:       "SLASH",
	STAR:        "STAR",

	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",

	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	NUMBER:     "NUMBER",

	AND:    "AND",
	CLASS:  "CLASS",
	ELSE:   "ELSE",
	FALSE:  "FALSE",
	FUN:    "FUN",
	FOR:    "FOR",
	IF:     "IF",
	NIL:    "NIL",
	OR:     "OR",
	PRINT:  "PRINT",
	RETURN: "RETURN",
	SUPER:  "SUPER",
	THIS:   "THIS",
	TRUE:   "TRUE",
	VAR:    "VAR",
	WHILE:  "WHILE",

	EOF: "EOF",
}

// keywords maps reserved words to their token types.
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENTIFIER is returned. Keywords are case-sensitive.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// IsKeyword returns true if the token type is a reserved word.
func IsKeyword(t TokenType) bool {
	return t >= AND && t <= WHILE
}

// IsOperator returns true if the token type is a single or double character
// punctuation or operator token.
func IsOperator(t TokenType) bool {
	return t >= LEFT_PAREN && t <= LESS_EQUAL
}

// Token represents a lexical token. Tokens are values and are never mutated
// after the scanner produces them.
type Token struct {
	Type    TokenType `json:"type" yaml:"type"`
	Lexeme  string    `json:"lexeme" yaml:"lexeme"`
	Literal Value     `json:"literal" yaml:"literal"`
	Line    int       `json:"line" yaml:"line"`
}

// New creates a token. A nil literal is stored as Null.
func New(t TokenType, lexeme string, literal Value, line int) Token {
	if literal == nil {
		literal = Null{}
	}
	return Token{Type: t, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token in its debug form: "TYPE lexeme literal".
func (t Token) String() string {
	lit := t.Literal
	if lit == nil {
		lit = Null{}
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, lit)
}
