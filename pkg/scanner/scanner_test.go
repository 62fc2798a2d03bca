package scanner

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/token"
)

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanner_Arithmetic(t *testing.T) {
	d := diag.New()
	toks := Scan("(1+2)*3", d)

	require.False(t, d.HadError())
	assert.Equal(t, []token.TokenType{
		token.LEFT_PAREN, token.NUMBER, token.PLUS, token.NUMBER,
		token.RIGHT_PAREN, token.STAR, token.NUMBER, token.EOF,
	}, types(toks))

	assert.Equal(t, token.Number(1), toks[1].Literal)
	assert.Equal(t, token.Number(2), toks[3].Literal)
	assert.Equal(t, token.Number(3), toks[6].Literal)
}

func TestScanner_Empty(t *testing.T) {
	d := diag.New()
	toks := Scan("", d)

	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, "", toks[0].Lexeme)
	assert.False(t, d.HadError())
}

func TestScanner_SingleCharacterTokens(t *testing.T) {
	toks := Scan("(){},.-+;*/", diag.New())

	assert.Equal(t, []token.TokenType{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH, token.EOF,
	}, types(toks))
}

func TestScanner_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.TokenType
	}{
		{"!", []token.TokenType{token.BANG, token.EOF}},
		{"!=", []token.TokenType{token.BANG_EQUAL, token.EOF}},
		{"=", []token.TokenType{token.EQUAL, token.EOF}},
		{"==", []token.TokenType{token.EQUAL_EQUAL, token.EOF}},
		{"<", []token.TokenType{token.LESS, token.EOF}},
		{"<=", []token.TokenType{token.LESS_EQUAL, token.EOF}},
		{">", []token.TokenType{token.GREATER, token.EOF}},
		{">=", []token.TokenType{token.GREATER_EQUAL, token.EOF}},
		{"===", []token.TokenType{token.EQUAL_EQUAL, token.EQUAL, token.EOF}},
		{"! =", []token.TokenType{token.BANG, token.EQUAL, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := Scan(tt.input, diag.New())
			assert.Equal(t, tt.want, types(toks))
		})
	}
}

func TestScanner_Lexemes(t *testing.T) {
	toks := Scan("a >= 10", diag.New())
	require.Len(t, toks, 4)
	assert.Equal(t, "a", toks[0].Lexeme)
	assert.Equal(t, ">=", toks[1].Lexeme)
	assert.Equal(t, "10", toks[2].Lexeme)
}

func TestScanner_Comments(t *testing.T) {
	d := diag.New()
	toks := Scan("1 // the rest is ignored ( \" \n/ 2", d)

	require.False(t, d.HadError())
	assert.Equal(t, []token.TokenType{
		token.NUMBER, token.SLASH, token.NUMBER, token.EOF,
	}, types(toks))
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanner_CommentAtEnd(t *testing.T) {
	toks := Scan("// only a comment", diag.New())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestScanner_Lines(t *testing.T) {
	toks := Scan("1\n2\r\n\t3\n", diag.New())

	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
	assert.Equal(t, 4, toks[3].Line, "EOF carries the final line")
}

func TestScanner_String(t *testing.T) {
	d := diag.New()
	toks := Scan(`"hello world"`, d)

	require.False(t, d.HadError())
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `"hello world"`, toks[0].Lexeme)
	assert.Equal(t, token.Text("hello world"), toks[0].Literal)
}

func TestScanner_MultilineString(t *testing.T) {
	d := diag.New()
	toks := Scan("\"one\ntwo\" 1", d)

	require.False(t, d.HadError())
	require.Len(t, toks, 3)
	assert.Equal(t, token.Text("one\ntwo"), toks[0].Literal)
	assert.Equal(t, 2, toks[0].Line, "string token is stamped with the line it ends on")
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanner_UnterminatedString(t *testing.T) {
	d := diag.New()
	toks := Scan(`"abc`, d)

	require.True(t, d.HadError())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, ErrUnterminatedString, entries[0].Message)
	assert.Equal(t, diag.PhaseScan, entries[0].Phase)
}

func TestScanner_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  []token.TokenType
		lit   token.Number
	}{
		{"123", []token.TokenType{token.NUMBER, token.EOF}, 123},
		{"12.5", []token.TokenType{token.NUMBER, token.EOF}, 12.5},
		{"0.25", []token.TokenType{token.NUMBER, token.EOF}, 0.25},
		{"1.", []token.TokenType{token.NUMBER, token.DOT, token.EOF}, 1},
		{"1.a", []token.TokenType{token.NUMBER, token.DOT, token.IDENTIFIER, token.EOF}, 1},
		{"1.2.3", []token.TokenType{token.NUMBER, token.DOT, token.NUMBER, token.EOF}, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := diag.New()
			toks := Scan(tt.input, d)
			require.False(t, d.HadError())
			assert.Equal(t, tt.want, types(toks))
			assert.Equal(t, tt.lit, toks[0].Literal)
		})
	}
}

func TestScanner_NumberOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Number
	}{
		{"overflow", "1" + strings.Repeat("0", 400), token.Number(math.Inf(1))},
		{"overflow with fraction", "9" + strings.Repeat("9", 400) + ".5", token.Number(math.Inf(1))},
		{"underflow", "0." + strings.Repeat("0", 400) + "1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diag.New()
			toks := Scan(tt.input+" + 1", d)

			require.False(t, d.HadError(), "entries: %v", d.Entries())
			assert.Equal(t, []token.TokenType{
				token.NUMBER, token.PLUS, token.NUMBER, token.EOF,
			}, types(toks))
			assert.Equal(t, tt.input, toks[0].Lexeme)
			assert.Equal(t, tt.want, toks[0].Literal)
		})
	}
}

func TestScanner_LeadingDot(t *testing.T) {
	toks := Scan(".5", diag.New())
	assert.Equal(t, []token.TokenType{token.DOT, token.NUMBER, token.EOF}, types(toks))
}

func TestScanner_IdentifiersAndKeywords(t *testing.T) {
	toks := Scan("var _x1 = nil and orchid", diag.New())

	assert.Equal(t, []token.TokenType{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.NIL,
		token.AND, token.IDENTIFIER, token.EOF,
	}, types(toks))
	assert.Equal(t, "_x1", toks[1].Lexeme)
	assert.Equal(t, "orchid", toks[5].Lexeme)
	assert.Equal(t, token.Null{}, toks[1].Literal)
}

func TestScanner_AllKeywords(t *testing.T) {
	src := "and class else false for fun if nil or print return super this true var while"
	toks := Scan(src, diag.New())

	require.Len(t, toks, 17)
	for _, tok := range toks[:16] {
		assert.True(t, token.IsKeyword(tok.Type), "%q should be a keyword", tok.Lexeme)
	}
}

func TestScanner_UnexpectedCharacter(t *testing.T) {
	d := diag.New()
	toks := Scan("1 @ 2 # 3", d)

	assert.Equal(t, []token.TokenType{
		token.NUMBER, token.NUMBER, token.NUMBER, token.EOF,
	}, types(toks))

	require.Equal(t, 2, d.Len(), "every bad character is reported and scanning continues")
	for _, e := range d.Entries() {
		assert.Equal(t, ErrUnexpectedCharacter, e.Message)
		assert.Equal(t, 1, e.Line)
	}
}

func TestScanner_MultiByteCharacterReportedOnce(t *testing.T) {
	d := diag.New()
	toks := Scan("1 é 2", d)

	assert.Equal(t, []token.TokenType{token.NUMBER, token.NUMBER, token.EOF}, types(toks))
	assert.Equal(t, 1, d.Len())
}

func TestScanner_NotRestartable(t *testing.T) {
	d := diag.New()
	s := New("1 + @", d)

	first := s.ScanTokens()
	second := s.ScanTokens()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, d.Len(), "a second call must not rescan and re-report")
}

func TestScanner_SingleEOF(t *testing.T) {
	inputs := []string{"", "1", "\"open", "(((", strings.Repeat("\n", 5)}

	for _, input := range inputs {
		toks := Scan(input, diag.New())
		eofs := 0
		for _, tok := range toks {
			if tok.Type == token.EOF {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, "input %q", input)
		assert.Equal(t, token.EOF, toks[len(toks)-1].Type, "input %q", input)
	}
}

func TestScanner_NilDiagnostics(t *testing.T) {
	toks := New("@", nil).ScanTokens()
	require.Len(t, toks, 1)
}
