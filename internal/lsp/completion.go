package lsp

import "strings"

var literalCompletions = []CompletionItem{
	{Label: "true", Kind: CompletionItemKindConstant, Detail: "boolean literal"},
	{Label: "false", Kind: CompletionItemKindConstant, Detail: "boolean literal"},
	{Label: "nil", Kind: CompletionItemKindConstant, Detail: "nil literal"},
}

// getCompletions offers the expression keywords that match the word being
// typed at the cursor.
func (s *Server) getCompletions(params CompletionParams) []CompletionItem {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return []CompletionItem{}
	}

	prefix := wordBefore(doc.GetLine(int(params.Position.Line)), int(params.Position.Character))
	items := make([]CompletionItem, 0, len(literalCompletions))
	for _, item := range literalCompletions {
		if strings.HasPrefix(item.Label, prefix) {
			items = append(items, item)
		}
	}
	return items
}

// wordBefore returns the identifier characters ending at col.
func wordBefore(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	start := col
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	return line[start:col]
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
