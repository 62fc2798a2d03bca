package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/lox/pkg/token"
)

const grammar = `expression → equality ;
equality   → comparison ( ( "!=" | "==" ) comparison )* ;
comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
term       → factor ( ( "-" | "+" ) factor )* ;
factor     → unary ( ( "/" | "*" ) unary )* ;
unary      → ( "!" | "-" ) unary | primary ;
primary    → NUMBER | STRING | "true" | "false" | "nil"
           | "(" expression ")" ;`

// generateGrammarDocs generates the language reference page.
func generateGrammarDocs(outDir string) error {
	log.Printf("Generating grammar docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Grammar", "Lox expression grammar and tokens")
	w.GeneratedMarker()

	w.Header(1, "Grammar")
	w.Paragraph("Binary operators are left-associative. Precedence increases from equality down to unary.")
	w.CodeBlock("ebnf", grammar)

	w.Header(2, "Keywords")
	w.Paragraph("Keywords are case-sensitive. All of them are reserved even though only " +
		InlineCode("true") + ", " + InlineCode("false") + " and " + InlineCode("nil") + " appear in expressions.")
	var keywords []string
	for _, t := range tokenTypes() {
		if token.IsKeyword(t) {
			keywords = append(keywords, InlineCode(strings.ToLower(t.String())))
		}
	}
	w.Paragraph(strings.Join(keywords, " "))

	w.Header(2, "Token Types")
	var rows [][]string
	for _, t := range tokenTypes() {
		rows = append(rows, []string{InlineCode(t.String()), tokenCategory(t)})
	}
	w.Table([]string{"Type", "Category"}, rows)

	filename := filepath.Join(outDir, "grammar.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated grammar.md")
	return nil
}

func tokenTypes() []token.TokenType {
	var out []token.TokenType
	for t := token.LEFT_PAREN; t <= token.EOF; t++ {
		out = append(out, t)
	}
	return out
}

func tokenCategory(t token.TokenType) string {
	switch {
	case token.IsOperator(t):
		return "punctuation"
	case token.IsKeyword(t):
		return "keyword"
	case t == token.EOF:
		return "end of input"
	default:
		return "literal"
	}
}
