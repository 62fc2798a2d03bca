// Package scanner converts Lox source text into a token stream.
//
// The scanner is eager and single pass: ScanTokens consumes the whole source
// and returns a slice terminated by exactly one EOF token. Lexical errors are
// reported to the diagnostics sink and scanning continues, so one bad
// character never hides the rest of the input.
package scanner

import (
	"strconv"
	"unicode/utf8"

	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/token"
)

// Error messages reported by the scanner.
const (
	ErrUnexpectedCharacter = "Unexpected character."
	ErrUnterminatedString  = "Unterminated string."
)

// Scanner tokenizes Lox source.
type Scanner struct {
	source string
	diags  *diag.Diagnostics

	tokens []token.Token
	done   bool

	start   int // offset of the first byte of the lexeme being scanned
	current int // offset of the byte about to be consumed
	line    int // current line number (1-based)
}

// New creates a Scanner for source. Errors are reported to d.
func New(source string, d *diag.Diagnostics) *Scanner {
	if d == nil {
		d = diag.New()
	}
	return &Scanner{
		source: source,
		diags:  d,
		line:   1,
	}
}

// Scan is a convenience wrapper around New(source, d).ScanTokens().
func Scan(source string, d *diag.Diagnostics) []token.Token {
	return New(source, d).ScanTokens()
}

// ScanTokens scans the entire source. The scanner is not restartable:
// subsequent calls return the tokens produced by the first call.
func (s *Scanner) ScanTokens() []token.Token {
	if s.done {
		return s.tokens
	}

	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, s.line))
	s.done = true
	return s.tokens
}

// scanToken classifies the next character and emits zero or one token.
func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addToken(s.pick('=', token.BANG_EQUAL, token.BANG))
	case '=':
		s.addToken(s.pick('=', token.EQUAL_EQUAL, token.EQUAL))
	case '<':
		s.addToken(s.pick('=', token.LESS_EQUAL, token.LESS))
	case '>':
		s.addToken(s.pick('=', token.GREATER_EQUAL, token.GREATER))
	case '/':
		if s.match('/') {
			s.skipComment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		s.line++
	case '"':
		s.readString()
	default:
		switch {
		case isDigit(c):
			s.readNumber()
		case isAlpha(c):
			s.readIdentifier()
		default:
			s.skipInvalid()
			s.diags.Error(s.line, ErrUnexpectedCharacter)
		}
	}
}

// isAtEnd reports whether every byte has been consumed.
func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// advance consumes and returns the next byte.
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the next byte only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// pick resolves a one-or-two character operator with one byte of lookahead.
func (s *Scanner) pick(next byte, double, single token.TokenType) token.TokenType {
	if s.match(next) {
		return double
	}
	return single
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the byte after the next one, or 0 past end of input.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// lexeme returns the source text of the token being scanned.
func (s *Scanner) lexeme() string {
	return s.source[s.start:s.current]
}

func (s *Scanner) addToken(t token.TokenType) {
	s.addLiteralToken(t, nil)
}

func (s *Scanner) addLiteralToken(t token.TokenType, literal token.Value) {
	s.tokens = append(s.tokens, token.New(t, s.lexeme(), literal, s.line))
}

// skipComment discards a line comment up to, but not including, the newline.
func (s *Scanner) skipComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.current++
	}
}

// skipInvalid consumes the remaining bytes of a multi-byte character so that
// it is reported once rather than once per byte.
func (s *Scanner) skipInvalid() {
	if s.source[s.start] < utf8.RuneSelf {
		return
	}
	_, size := utf8.DecodeRuneInString(s.source[s.start:])
	if size > 1 {
		s.current = s.start + size
	}
}

// readString scans a string literal. The opening quote has been consumed.
func (s *Scanner) readString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.isAtEnd() {
		s.diags.Error(s.line, ErrUnterminatedString)
		return
	}

	// The closing quote
	s.current++

	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(token.STRING, token.Text(value))
}

// readNumber scans a number literal. The first digit has been consumed.
// A fractional part is only consumed when a digit follows the dot.
func (s *Scanner) readNumber() {
	for isDigit(s.peek()) {
		s.current++
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		// Consume the "."
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	// The lexeme is always well formed. A literal beyond the float64 range
	// fails only with ErrRange and keeps the +Inf value ParseFloat returns.
	value, _ := strconv.ParseFloat(s.lexeme(), 64)
	s.addLiteralToken(token.NUMBER, token.Number(value))
}

// readIdentifier scans an identifier or keyword. The first character has
// been consumed.
func (s *Scanner) readIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	s.addToken(token.LookupIdent(s.lexeme()))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
