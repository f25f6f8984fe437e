// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobs() [][]float64 {
	return [][]float64{
		{0, 0}, {0.1, 0.2}, {0.2, 0.1}, {0.15, 0.05},
		{10, 10}, {10.1, 9.9}, {9.8, 10.2}, {10.05, 10.1},
	}
}

func TestClusterSeparatesBlobs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		res := Cluster(blobs(), 2, Options{MaxIterations: 50, Tolerance: 1e-6}, rand.New(rand.NewSource(seed)))

		require.Len(t, res.Assignments, 8)
		require.Len(t, res.Centroids, 2)
		for i := 1; i < 4; i++ {
			assert.Equal(t, res.Assignments[0], res.Assignments[i], "seed %d point %d", seed, i)
		}
		for i := 5; i < 8; i++ {
			assert.Equal(t, res.Assignments[4], res.Assignments[i], "seed %d point %d", seed, i)
		}
		assert.NotEqual(t, res.Assignments[0], res.Assignments[4], "seed %d", seed)
		assert.Equal(t, Converged, res.State)
	}
}

func TestInertiaIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([][]float64, 60)
	for i := range points {
		points[i] = []float64{rng.NormFloat64() + float64(i%3)*4, rng.NormFloat64()}
	}

	for seed := int64(1); seed <= 5; seed++ {
		res := Cluster(points, 3, Options{MaxIterations: 100}, rand.New(rand.NewSource(seed)))
		require.NotEmpty(t, res.Inertia)
		first, last := res.Inertia[0], res.Inertia[len(res.Inertia)-1]
		assert.LessOrEqual(t, last, first+1e-9, "seed %d", seed)
		for i := 1; i < len(res.Inertia); i++ {
			assert.LessOrEqual(t, res.Inertia[i], res.Inertia[i-1]+1e-9, "seed %d iteration %d", seed, i)
		}
	}
}

func TestMaxIterationsReached(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := make([][]float64, 40)
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64()}
	}
	res := Cluster(points, 4, Options{MaxIterations: 1}, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, MaxIterationsReached, res.State)
}

func TestClusterClampsK(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}}

	res := Cluster(points, 10, Options{}, rand.New(rand.NewSource(1)))
	assert.Len(t, res.Centroids, 3)

	res = Cluster(points, 0, Options{}, rand.New(rand.NewSource(1)))
	assert.Len(t, res.Centroids, 1)
	assert.Equal(t, []int{0, 0, 0}, res.Assignments)
}

func TestClusterEmpty(t *testing.T) {
	res := Cluster(nil, 3, Options{}, rand.New(rand.NewSource(1)))
	assert.Empty(t, res.Assignments)
	assert.Equal(t, Converged, res.State)
}

func TestEmptyCentroidKeepsPosition(t *testing.T) {
	m := &machine{
		points:      [][]float64{{0, 0}, {2, 2}},
		centroids:   [][]float64{{1, 1}, {50, 50}},
		assignments: []int{0, 0},
	}
	m.update()
	assert.Equal(t, []float64{1, 1}, m.centroids[0])
	assert.Equal(t, []float64{50, 50}, m.centroids[1])
}

func TestNearestBreaksTiesByIndex(t *testing.T) {
	assert.Equal(t, 0, nearest([]float64{0}, [][]float64{{-1}, {1}}))
}

func TestSeedSpreadsCentroids(t *testing.T) {
	points := [][]float64{{0}, {0}, {0}, {100}}
	for s := int64(1); s <= 10; s++ {
		c := seed(points, 2, rand.New(rand.NewSource(s)))
		require.Len(t, c, 2)
		assert.NotEqual(t, c[0][0], c[1][0], "seed %d picked two coincident centroids", s)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "converged", Converged.String())
	assert.Equal(t, "max-iterations-reached", MaxIterationsReached.String())
}
