package format

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/lox/pkg/ast"
	"github.com/leapstack-labs/lox/pkg/token"
)

func op(t token.TokenType, lexeme string) token.Token {
	return token.New(t, lexeme, nil, 1)
}

// sample builds -123 * (12.5) by hand.
func sample() ast.Expr {
	return ast.NewBinary(
		ast.NewUnary(op(token.MINUS, "-"), ast.NewLiteral(token.Number(123))),
		op(token.STAR, "*"),
		ast.NewGrouping(ast.NewLiteral(token.Number(12.5))),
	)
}

// ---------- PrettyPrinter Tests ----------

func TestPrint_HandBuiltTree(t *testing.T) {
	assert.Equal(t, "(* (- 123) (group 12.5))", Print(sample()))
	assert.Equal(t, "(* (- 123) (group 12.5))", PrettyPrinter{}.Print(sample()))
}

func TestPrint_Nodes(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{name: "number", expr: ast.NewLiteral(token.Number(1)), expected: "1"},
		{name: "fraction", expr: ast.NewLiteral(token.Number(0.25)), expected: "0.25"},
		{name: "text", expr: ast.NewLiteral(token.Text("hello world")), expected: "hello world"},
		{name: "true", expr: ast.NewLiteral(token.Boolean(true)), expected: "true"},
		{name: "nil", expr: ast.NewLiteral(nil), expected: "nil"},
		{name: "zero literal", expr: &ast.Literal{}, expected: "nil"},
		{
			name:     "unary not",
			expr:     ast.NewUnary(op(token.BANG, "!"), ast.NewLiteral(token.Boolean(false))),
			expected: "(! false)",
		},
		{
			name: "comparison",
			expr: ast.NewBinary(
				ast.NewLiteral(token.Number(1)),
				op(token.LESS_EQUAL, "<="),
				ast.NewLiteral(token.Number(2)),
			),
			expected: "(<= 1 2)",
		},
		{
			name:     "nested groups",
			expr:     ast.NewGrouping(ast.NewGrouping(ast.NewLiteral(nil))),
			expected: "(group (group nil))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Print(tt.expr))
		})
	}
}

func TestPrint_UntypedAccept(t *testing.T) {
	// The untyped entry point returns the same text through Visitor[any].
	v := anyPrinter{}
	assert.Equal(t, "(* (- 123) (group 12.5))", sample().Accept(v))
}

type anyPrinter struct{}

func (anyPrinter) VisitBinary(e *ast.Binary) any     { return PrettyPrinter{}.VisitBinary(e) }
func (anyPrinter) VisitGrouping(e *ast.Grouping) any { return PrettyPrinter{}.VisitGrouping(e) }
func (anyPrinter) VisitLiteral(e *ast.Literal) any   { return PrettyPrinter{}.VisitLiteral(e) }
func (anyPrinter) VisitUnary(e *ast.Unary) any       { return PrettyPrinter{}.VisitUnary(e) }

// ---------- TreePrinter Tests ----------

func TestTree(t *testing.T) {
	out := Tree(sample())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "binary *")
	assert.Contains(t, lines[1], "unary -")
	assert.Contains(t, lines[2], "literal 123")
	assert.Contains(t, lines[3], "group")
	assert.Contains(t, lines[4], "literal 12.5")
}

func TestTree_QuotesText(t *testing.T) {
	out := Tree(ast.NewLiteral(token.Text("1")))
	assert.Contains(t, out, `literal "1"`)
}

func TestTreePrinter_Reuse(t *testing.T) {
	style := list.StyleDefault
	p := NewTreePrinter(&style)
	first := p.Render(ast.NewLiteral(token.Number(1)))
	second := p.Render(ast.NewLiteral(token.Number(1)))
	assert.Equal(t, first, second)
}

// ---------- Encoder Tests ----------

func TestEncode(t *testing.T) {
	node := Encode(sample())

	assert.Equal(t, KindBinary, node.Kind)
	assert.Equal(t, "*", node.Operator)
	require.Len(t, node.Children, 2)

	neg := node.Children[0]
	assert.Equal(t, KindUnary, neg.Kind)
	require.Len(t, neg.Children, 1)
	assert.Equal(t, token.Number(123), neg.Children[0].Value)

	group := node.Children[1]
	assert.Equal(t, KindGrouping, group.Kind)
	require.Len(t, group.Children, 1)
	assert.Equal(t, KindLiteral, group.Children[0].Kind)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	expected := `{
  "kind": "binary",
  "operator": "*",
  "children": [
    {
      "kind": "unary",
      "operator": "-",
      "children": [
        {
          "kind": "literal",
          "value": 123
        }
      ]
    },
    {
      "kind": "grouping",
      "children": [
        {
          "kind": "literal",
          "value": 12.5
        }
      ]
    }
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSON_Literals(t *testing.T) {
	tests := []struct {
		name     string
		value    token.Value
		expected string
	}{
		{name: "text", value: token.Text("hi"), expected: `"value": "hi"`},
		{name: "boolean", value: token.Boolean(false), expected: `"value": false`},
		{name: "nil", value: token.Null{}, expected: `"value": null`},
		{name: "number", value: token.Number(12.5), expected: `"value": 12.5`},
		{name: "infinite number", value: token.Number(math.Inf(1)), expected: `"value": "+Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteJSON(&buf, ast.NewLiteral(tt.value)))
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sample()))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "binary", doc["kind"])
	assert.Equal(t, "*", doc["operator"])

	children, ok := doc["children"].([]any)
	require.True(t, ok)
	assert.Len(t, children, 2)
}
