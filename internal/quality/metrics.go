// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality scores clustering results and assigns cluster colors and
// identifiers.
// Implements: inertia (WCSS), sampled silhouette, modularity, palette,
//
//	cluster ID generation; docs/ARCHITECTURE § Quality Metrics.
package quality

import (
	"math"
	"math/rand"

	"github.com/pdiddy/research-clusters/internal/network"
	"github.com/pdiddy/research-clusters/internal/similarity"
)

// Default silhouette bounds.
const (
	DefaultSilhouetteSample = 800
	DefaultMaxComparisons   = 200
)

// Inertia returns the within-cluster sum of squared distances from each
// point to its assigned centroid.
func Inertia(points [][]float64, assignments []int, centroids [][]float64) float64 {
	var sum float64
	for i, p := range points {
		sum += similarity.MustSquaredEuclidean(p, centroids[assignments[i]])
	}
	return sum
}

// SilhouetteOptions bounds the silhouette estimate.
type SilhouetteOptions struct {
	// Sample is the maximum number of points scored.
	Sample int

	// MaxComparisons caps the distances computed per scored point; the
	// rest of the corpus is visited with a stride to stay under it.
	MaxComparisons int
}

// Silhouette estimates the mean silhouette coefficient of a partition. It
// scores a random sample of points and compares each against a strided
// subset of the corpus, so it is a biased approximation rather than the
// exact score. Points whose own cluster has no other compared member, or
// with no other cluster compared, are skipped. It returns 0 for one point
// or fewer, for a single cluster, or when no point could be scored.
func Silhouette(points [][]float64, assignments []int, opts SilhouetteOptions, rng *rand.Rand) float64 {
	n := len(points)
	if n <= 1 || countLabels(assignments) < 2 {
		return 0
	}
	if opts.Sample <= 0 {
		opts.Sample = DefaultSilhouetteSample
	}
	if opts.MaxComparisons <= 0 {
		opts.MaxComparisons = DefaultMaxComparisons
	}

	sample := make([]int, n)
	for i := range sample {
		sample[i] = i
	}
	if n > opts.Sample {
		sample = rng.Perm(n)[:opts.Sample]
	}

	stride := 1
	if n > opts.MaxComparisons {
		stride = int(math.Ceil(float64(n) / float64(opts.MaxComparisons)))
	}

	var total float64
	scored := 0
	for _, i := range sample {
		s, ok := pointSilhouette(points, assignments, i, stride)
		if !ok {
			continue
		}
		total += s
		scored++
	}
	if scored == 0 {
		return 0
	}
	return clamp(total/float64(scored), -1, 1)
}

func pointSilhouette(points [][]float64, assignments []int, i, stride int) (float64, bool) {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	own := assignments[i]
	for j := 0; j < len(points); j += stride {
		if j == i {
			continue
		}
		c := assignments[j]
		sums[c] += similarity.MustEuclidean(points[i], points[j])
		counts[c]++
	}

	if counts[own] == 0 {
		return 0, false
	}
	a := sums[own] / float64(counts[own])

	b := math.Inf(1)
	for c, cnt := range counts {
		if c == own || cnt == 0 {
			continue
		}
		if mean := sums[c] / float64(cnt); mean < b {
			b = mean
		}
	}
	if math.IsInf(b, 1) {
		return 0, false
	}

	denom := math.Max(a, b)
	if denom == 0 {
		return 0, true
	}
	return (b - a) / denom, true
}

// Modularity returns Q = (1/2m) Σ_ij [A_ij − k_i k_j / 2m] δ(c_i, c_j) for
// the partition membership, indexed by node. A graph without edges scores 0.
func Modularity(g *network.Graph, membership []int) float64 {
	m := g.TotalWeight()
	if m == 0 {
		return 0
	}
	twoM := 2 * m

	internal := make(map[int]float64)
	degree := make(map[int]float64)
	for i := 0; i < g.Len(); i++ {
		c := membership[i]
		degree[c] += g.Degree(i)
		for j, w := range g.Neighbors(i) {
			if membership[j] == c {
				internal[c] += w
			}
		}
	}

	var q float64
	for c, tot := range degree {
		q += internal[c] - tot*tot/twoM
	}
	return clamp(q/twoM, -1, 1)
}

func countLabels(assignments []int) int {
	seen := make(map[int]struct{})
	for _, a := range assignments {
		seen[a] = struct{}{}
	}
	return len(seen)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
