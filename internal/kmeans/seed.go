// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kmeans

import (
	"math"
	"math/rand"

	"github.com/pdiddy/research-clusters/internal/similarity"
)

// seed chooses k initial centroids with k-means++: the first uniformly at
// random, each next one with probability proportional to the squared
// distance from a point to its nearest chosen centroid. When every
// remaining point coincides with a chosen centroid the next one is drawn
// uniformly.
func seed(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(points[rng.Intn(n)]))

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		var total float64
		for i, p := range points {
			if d := similarity.MustSquaredEuclidean(p, last); d < dist[i] {
				dist[i] = d
			}
			total += dist[i]
		}

		next := rng.Intn(n)
		if total > 0 {
			target := rng.Float64() * total
			var acc float64
			for i, d := range dist {
				acc += d
				if acc >= target && d > 0 {
					next = i
					break
				}
			}
		}
		centroids = append(centroids, clone(points[next]))
	}
	return centroids
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
