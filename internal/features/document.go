// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"strings"

	"github.com/pdiddy/research-clusters/internal/textproc"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// documentKeywords is the number of keywords kept on each Document.
const documentKeywords = 10

// Document is the text representation of one Record.
type Document struct {
	RecordID string
	Text     string
	Tokens   []string
	Keywords []types.Keyword
}

// buildDocument concatenates title, abstract, terms, and authors and
// tokenizes the result.
func buildDocument(r types.Record, tok textproc.Tokenizer) *Document {
	parts := make([]string, 0, 2+len(r.Terms)+len(r.Authors))
	parts = append(parts, r.Title, r.Abstract)
	parts = append(parts, r.Terms...)
	parts = append(parts, r.Authors...)
	text := strings.Join(parts, " ")

	tokens := tok.Tokenize(text)
	return &Document{
		RecordID: r.ID,
		Text:     text,
		Tokens:   tokens,
		Keywords: textproc.RankTokens(tokens, documentKeywords),
	}
}
