package lsp

import (
	"strings"

	"github.com/leapstack-labs/lox/pkg/format"
)

// getHover renders the document's syntax tree in prefix form. A document
// that does not compile shows its first error instead.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	res := compile(doc.Content)
	var b strings.Builder
	switch {
	case len(res.Entries) > 0:
		b.WriteString("**Syntax error**\n\n")
		b.WriteString(res.Entries[0].String())
	case res.Expr != nil:
		b.WriteString("```lox\n")
		b.WriteString(format.Print(res.Expr))
		b.WriteString("\n```")
	default:
		return nil
	}

	return &Hover{
		Contents: MarkupContent{
			Kind:  MarkupKindMarkdown,
			Value: b.String(),
		},
	}
}
