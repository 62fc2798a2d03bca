package lsp

import (
	"net/url"
	"strings"
	"sync"
)

// Document is an open text document.
type Document struct {
	URI     string
	Content string
	Version int
	Lines   []int // byte offsets of line starts
}

// DocumentStore manages open documents in memory.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates a new document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*Document),
	}
}

// Open adds or replaces a document.
func (s *DocumentStore) Open(uri, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[uri] = newDocument(uri, content, version)
}

// Update replaces the content of an open document. It reports false if the
// document is not open.
func (s *DocumentStore) Update(uri, content string, version int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[uri]; !ok {
		return false
	}
	s.documents[uri] = newDocument(uri, content, version)
	return true
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.documents, uri)
}

// Get retrieves a document by URI. Documents are replaced, never mutated,
// so the result is safe to read without holding the lock.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.documents[uri]
}

// Len returns the number of open documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.documents)
}

func newDocument(uri, content string, version int) *Document {
	return &Document{
		URI:     uri,
		Content: content,
		Version: version,
		Lines:   computeLineOffsets(content),
	}
}

// computeLineOffsets calculates byte offsets for each line start.
func computeLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// GetLine returns the content of a zero-based line without its newline.
func (d *Document) GetLine(line int) string {
	if d == nil || line < 0 || line >= len(d.Lines) {
		return ""
	}

	start := d.Lines[line]
	end := len(d.Content)
	if line+1 < len(d.Lines) {
		end = d.Lines[line+1] - 1
	}
	return strings.TrimSuffix(d.Content[start:end], "\r")
}

// LineRange returns the range covering a whole one-based source line.
// Lines past the end of the document map to the last line.
func (d *Document) LineRange(line int) Range {
	idx := line - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(d.Lines) {
		idx = len(d.Lines) - 1
	}
	line32 := uint32(idx)                //nolint:gosec // non-negative line index
	width := uint32(len(d.GetLine(idx))) //nolint:gosec // line length fits in uint32
	return Range{
		Start: Position{Line: line32},
		End:   Position{Line: line32, Character: width},
	}
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return strings.TrimPrefix(uri, "file://")
	}
	return u.Path
}
