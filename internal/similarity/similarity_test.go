// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-clusters/pkg/types"
)

func TestMismatchedLengthsAreInvalidInput(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}

	_, err := Cosine(a, b)
	assert.True(t, errors.Is(err, types.ErrInvalidInput), "cosine: %v", err)

	_, err = Euclidean(a, b)
	assert.True(t, errors.Is(err, types.ErrInvalidInput), "euclidean: %v", err)

	_, err = SquaredEuclidean(a, b)
	assert.True(t, errors.Is(err, types.ErrInvalidInput), "squared: %v", err)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 1}, []float64{-1, -1}, -1},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	got, err := Euclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)

	sq, err := SquaredEuclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, sq, 1e-12)

	assert.InDelta(t, 5.0, MustEuclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
}

func TestJaccard(t *testing.T) {
	set := func(words ...string) map[string]struct{} {
		m := make(map[string]struct{})
		for _, w := range words {
			m[w] = struct{}{}
		}
		return m
	}

	assert.Equal(t, 0.0, Jaccard(set(), set()))
	assert.Equal(t, 1.0, Jaccard(set("a", "b"), set("b", "a")))
	assert.InDelta(t, 1.0/3.0, Jaccard(set("a", "b"), set("b", "c")), 1e-12)
	assert.Equal(t, 0.0, Jaccard(set("a"), set()))
}
