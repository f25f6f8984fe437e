// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		tok  Tokenizer
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			tok:  Tokenizer{},
			text: "Deep-Learning, for  NLP!",
			want: []string{"deep", "learning", "for", "nlp"},
		},
		{
			name: "drops short tokens",
			tok:  Tokenizer{MinLength: 4},
			text: "a big neural net model",
			want: []string{"neural", "model"},
		},
		{
			name: "removes general and research stopwords",
			tok:  Tokenizer{MinLength: 1, RemoveStopwords: true},
			text: "The study of patients with significant tumor growth",
			want: []string{"tumor", "growth"},
		},
		{
			name: "empty text",
			tok:  Tokenizer{MinLength: 3, RemoveStopwords: true},
			text: "   ",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.Tokenize(tt.text))
		})
	}
}

func TestExtractKeywordsRanksByFrequency(t *testing.T) {
	tok := Tokenizer{MinLength: 3, RemoveStopwords: true}

	got := tok.ExtractKeywords("graph neural graph network graph network", 2)
	require.Len(t, got, 2)

	assert.Equal(t, "graph", got[0].Term)
	assert.InDelta(t, 0.5, got[0].Score, 1e-9)
	assert.Equal(t, "network", got[1].Term)
	assert.InDelta(t, 2.0/6.0, got[1].Score, 1e-9)
}

func TestExtractKeywordsTiesKeepFirstSeenOrder(t *testing.T) {
	tok := Tokenizer{MinLength: 3}

	got := tok.ExtractKeywords("zebra apple mango", 0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"zebra", "apple", "mango"},
		[]string{got[0].Term, got[1].Term, got[2].Term})
}

func TestExtractKeywordsEmpty(t *testing.T) {
	tok := Tokenizer{MinLength: 3, RemoveStopwords: true}
	assert.Empty(t, tok.ExtractKeywords("the of and", 5))
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "attention is all you need", NormalizeTitle("  Attention Is All You Need!  "))
	assert.Equal(t, "covid19 outcomes", NormalizeTitle("COVID-19: Outcomes"))
}

func TestWordSet(t *testing.T) {
	set := WordSet("Graph graph Networks")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "graph")
	assert.Contains(t, set, "networks")
}
