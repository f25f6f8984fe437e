// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus() [][]string {
	return [][]string{
		{"neural", "network", "training"},
		{"neural", "network", "pruning", "network"},
		{"climate", "policy"},
		{"climate", "policy", "carbon"},
	}
}

func TestFitComputesIDF(t *testing.T) {
	v := Fit(corpus(), 0)

	assert.Equal(t, 7, v.Len())
	assert.Equal(t, 4, v.Documents())
	assert.InDelta(t, math.Log(4.0/2.0), v.IDF("neural"), 1e-12)
	assert.InDelta(t, math.Log(4.0/1.0), v.IDF("carbon"), 1e-12)
	assert.Equal(t, 0.0, v.IDF("unknown"))
}

func TestFitBoundsVocabularyByDocumentFrequency(t *testing.T) {
	v := Fit(corpus(), 4)
	require.Equal(t, 4, v.Len())

	// The four terms with document frequency 2, alphabetically.
	for i, want := range []string{"climate", "network", "neural", "policy"} {
		assert.Equal(t, want, v.Term(i))
	}
	_, ok := v.Index("carbon")
	assert.False(t, ok)
}

func TestTransform(t *testing.T) {
	v := Fit(corpus(), 0)
	doc := []string{"neural", "network", "pruning", "network"}

	vec := v.Transform(doc)
	require.Len(t, vec, v.Len())

	i, _ := v.Index("network")
	assert.InDelta(t, 2.0/4.0*math.Log(2), vec[i], 1e-12)
	j, _ := v.Index("climate")
	assert.Equal(t, 0.0, vec[j])
}

func TestTransformIsDeterministic(t *testing.T) {
	v := Fit(corpus(), 5)
	doc := corpus()[1]
	assert.Equal(t, v.Transform(doc), v.Transform(doc))
	assert.LessOrEqual(t, v.Len(), 5)
}

func TestTransformEmptyDocument(t *testing.T) {
	v := Fit(corpus(), 0)
	vec := v.Transform(nil)
	assert.Len(t, vec, v.Len())
	for _, x := range vec {
		assert.Equal(t, 0.0, x)
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	v := Fit(nil, 10)
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Transform([]string{"anything"}))
}
