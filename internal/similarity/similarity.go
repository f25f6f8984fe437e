// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity provides the distance and similarity primitives used
// by every clustering algorithm.
package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// Cosine returns the cosine similarity of a and b. A zero vector yields 0.
func Cosine(a, b []float64) (float64, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return floats.Dot(a, b) / (na * nb), nil
}

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b []float64) (float64, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean returns the squared Euclidean distance between a and b.
func SquaredEuclidean(a, b []float64) (float64, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}
	return squared(a, b), nil
}

// MustEuclidean is Euclidean for callers that guarantee equal lengths,
// such as rows of one feature matrix.
func MustEuclidean(a, b []float64) float64 {
	return math.Sqrt(squared(a, b))
}

// MustSquaredEuclidean is SquaredEuclidean for callers that guarantee
// equal lengths.
func MustSquaredEuclidean(a, b []float64) float64 {
	return squared(a, b)
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets yield 0.
func Jaccard[T comparable](a, b map[T]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func squared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func sameLength(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: vector lengths %d and %d differ", types.ErrInvalidInput, len(a), len(b))
	}
	return nil
}
