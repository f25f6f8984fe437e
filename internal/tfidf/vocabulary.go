// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tfidf fits a bounded vocabulary with inverse document
// frequencies and transforms token sequences into dense TF-IDF vectors.
package tfidf

import (
	"math"
	"sort"
)

// Vocabulary maps retained terms to vector positions and IDF weights. A
// Vocabulary is immutable after Fit; refit to change the corpus.
type Vocabulary struct {
	index map[string]int
	terms []string
	idf   []float64
	docs  int
}

// Fit counts, for every term, the number of documents containing it and
// keeps the maxSize most document-frequent terms. Ties on document
// frequency are broken alphabetically so indexes are stable for a given
// corpus. Each document is a token sequence. maxSize <= 0 keeps every term.
func Fit(docs [][]string, maxSize int) *Vocabulary {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxSize > 0 && len(terms) > maxSize {
		terms = terms[:maxSize]
	}

	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
		docs:  len(docs),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log(n / float64(df[term]))
	}
	return v
}

// Len returns the number of retained terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Documents returns the number of documents the vocabulary was fit on.
func (v *Vocabulary) Documents() int {
	if v == nil {
		return 0
	}
	return v.docs
}

// Index returns the vector position of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at position i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// IDF returns the inverse document frequency of term, or 0 if the term is
// not retained.
func (v *Vocabulary) IDF(term string) float64 {
	i, ok := v.Index(term)
	if !ok {
		return 0
	}
	return v.idf[i]
}

// Transform returns a vector of length Len. Each retained term present in
// tokens has value (count / len(tokens)) * IDF; every other position is 0.
func (v *Vocabulary) Transform(tokens []string) []float64 {
	vec := make([]float64, v.Len())
	if len(tokens) == 0 || v.Len() == 0 {
		return vec
	}
	for _, tok := range tokens {
		if i, ok := v.index[tok]; ok {
			vec[i]++
		}
	}
	total := float64(len(tokens))
	for i, count := range vec {
		if count > 0 {
			vec[i] = count / total * v.idf[i]
		}
	}
	return vec
}
