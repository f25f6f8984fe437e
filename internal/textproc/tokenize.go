// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textproc tokenizes free text and ranks keywords by frequency.
// Implements: tokenizer and keyword extractor;
//
//	docs/ARCHITECTURE § Feature Engineering.
package textproc

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// Tokenizer splits text into lowercase word tokens. The zero value keeps
// every token of length 1 or more and keeps stopwords.
type Tokenizer struct {
	// MinLength drops tokens shorter than this many runes.
	MinLength int

	// RemoveStopwords drops general English and research stopwords.
	RemoveStopwords bool
}

// NewTokenizer returns a Tokenizer configured from cfg.
func NewTokenizer(cfg types.TextConfig) Tokenizer {
	return Tokenizer{MinLength: cfg.MinTokenLength, RemoveStopwords: cfg.RemoveStopwords}
}

// Tokenize lowercases text, replaces punctuation with whitespace, and
// returns the remaining tokens in order.
func (t Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(clean(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < t.MinLength {
			continue
		}
		if t.RemoveStopwords && IsStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// ExtractKeywords ranks the tokens of text by frequency normalized by the
// token count and returns the topK highest, descending. Ties keep
// first-seen order. topK <= 0 returns every term.
func (t Tokenizer) ExtractKeywords(text string, topK int) []types.Keyword {
	return RankTokens(t.Tokenize(text), topK)
}

// RankTokens is ExtractKeywords over already tokenized text.
func RankTokens(tokens []string, topK int) []types.Keyword {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			order = append(order, tok)
		}
		counts[tok]++
	}

	total := float64(len(tokens))
	ranked := make([]types.Keyword, len(order))
	for i, term := range order {
		ranked[i] = types.Keyword{Term: term, Score: float64(counts[term]) / total}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// NormalizeTitle returns a lowercased, punctuation-stripped version of the
// title with runs of whitespace collapsed.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// WordSet returns the distinct words of the normalized title.
func WordSet(title string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(NormalizeTitle(title)) {
		set[w] = struct{}{}
	}
	return set
}

// clean lowercases s and maps every rune that is not a letter or digit to
// a space.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
}
