package token

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenType
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"for", FOR},
		{"fun", FUN},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
		{"orchid", IDENTIFIER},
		{"True", IDENTIFIER},
		{"_var", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.ident))
		})
	}
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", LEFT_PAREN.String())
	assert.Equal(t, "BANG_EQUAL", BANG_EQUAL.String())
	assert.Equal(t, "WHILE", WHILE.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "TOKEN(999)", TokenType(999).String())
}

func TestTokenType_Classification(t *testing.T) {
	assert.True(t, IsKeyword(AND))
	assert.True(t, IsKeyword(WHILE))
	assert.False(t, IsKeyword(IDENTIFIER))
	assert.False(t, IsKeyword(EOF))

	assert.True(t, IsOperator(LEFT_PAREN))
	assert.True(t, IsOperator(LESS_EQUAL))
	assert.False(t, IsOperator(NUMBER))
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"integral number", Number(123), "123"},
		{"fractional number", Number(12.5), "12.5"},
		{"zero", Number(0), "0"},
		{"infinite number", Number(math.Inf(1)), "+Inf"},
		{"text", Text("hello world"), "hello world"},
		{"empty text", Text(""), ""},
		{"true", Boolean(true), "true"},
		{"false", Boolean(false), "false"},
		{"null", Null{}, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Number
		want  string
	}{
		{"integral", Number(123), `123`},
		{"fractional", Number(12.5), `12.5`},
		{"positive infinity", Number(math.Inf(1)), `"+Inf"`},
		{"negative infinity", Number(math.Inf(-1)), `"-Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.False(t, Equal(Number(1), Text("1")))
	assert.True(t, Equal(Null{}, nil))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Boolean(false), nil))
}

func TestToken_String(t *testing.T) {
	tok := New(NUMBER, "12.5", Number(12.5), 3)
	assert.Equal(t, "NUMBER 12.5 12.5", tok.String())

	paren := New(LEFT_PAREN, "(", nil, 1)
	assert.Equal(t, Null{}, paren.Literal)
	assert.Equal(t, "LEFT_PAREN ( nil", paren.String())

	var zero Token
	assert.Equal(t, "LEFT_PAREN  nil", zero.String())
}

func TestToken_Marshal(t *testing.T) {
	toks := []Token{
		New(STRING, `"hi"`, Text("hi"), 1),
		New(EOF, "", nil, 2),
	}

	data, err := json.Marshal(toks)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"STRING","lexeme":"\"hi\"","literal":"hi","line":1},
		{"type":"EOF","lexeme":"","literal":null,"line":2}
	]`, string(data))

	out, err := yaml.Marshal(toks[1])
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: EOF")
	assert.Contains(t, string(out), "literal: null")
}
