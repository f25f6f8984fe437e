// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/research-clusters/internal/network"
	"github.com/pdiddy/research-clusters/pkg/types"
)

func TestInertia(t *testing.T) {
	points := [][]float64{{0, 0}, {2, 0}, {10, 10}}
	centroids := [][]float64{{1, 0}, {10, 10}}
	assert.InDelta(t, 2.0, Inertia(points, []int{0, 0, 1}, centroids), 1e-12)
}

func TestSilhouetteSeparated(t *testing.T) {
	points := [][]float64{{0}, {0.1}, {0.2}, {10}, {10.1}, {10.2}}
	got := Silhouette(points, []int{0, 0, 0, 1, 1, 1}, SilhouetteOptions{}, rand.New(rand.NewSource(1)))
	assert.Greater(t, got, 0.9)
	assert.LessOrEqual(t, got, 1.0)
}

func TestSilhouetteDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 0.0, Silhouette(nil, nil, SilhouetteOptions{}, rng))
	assert.Equal(t, 0.0, Silhouette([][]float64{{1}}, []int{0}, SilhouetteOptions{}, rng))
	assert.Equal(t, 0.0, Silhouette([][]float64{{1}, {2}, {3}}, []int{4, 4, 4}, SilhouetteOptions{}, rng),
		"single cluster")
	assert.Equal(t, 0.0, Silhouette([][]float64{{1}, {2}}, []int{0, 1}, SilhouetteOptions{}, rng),
		"only singleton clusters")
}

func TestSilhouetteBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([][]float64, 1200)
	assignments := make([]int, len(points))
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64()}
		assignments[i] = rng.Intn(4)
	}
	got := Silhouette(points, assignments, SilhouetteOptions{Sample: 100, MaxComparisons: 50}, rng)
	assert.GreaterOrEqual(t, got, -1.0)
	assert.LessOrEqual(t, got, 1.0)
}

func twoTriangles() *network.Graph {
	return network.New(types.Graph{Edges: []types.Edge{
		{Source: "a", Target: "b"}, {Source: "b", Target: "c"}, {Source: "c", Target: "a"},
		{Source: "x", Target: "y"}, {Source: "y", Target: "z"}, {Source: "z", Target: "x"},
	}})
}

func TestModularity(t *testing.T) {
	g := twoTriangles()

	assert.InDelta(t, 0.5, Modularity(g, []int{0, 0, 0, 1, 1, 1}), 1e-12)
	assert.InDelta(t, -1.0/6.0, Modularity(g, []int{0, 1, 2, 3, 4, 5}), 1e-12)
	assert.InDelta(t, 0.0, Modularity(g, []int{0, 0, 0, 0, 0, 0}), 1e-12)
}

func TestModularityBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var edges []types.Edge
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i < 20; i++ {
		edges = append(edges, types.Edge{Source: ids[rng.Intn(8)], Target: ids[rng.Intn(8)], Weight: rng.Float64() * 3})
	}
	g := network.New(types.Graph{Nodes: ids, Edges: edges})
	for trial := 0; trial < 20; trial++ {
		membership := make([]int, g.Len())
		for i := range membership {
			membership[i] = rng.Intn(3)
		}
		q := Modularity(g, membership)
		assert.GreaterOrEqual(t, q, -1.0)
		assert.LessOrEqual(t, q, 1.0)
	}
}

func TestModularityNoEdges(t *testing.T) {
	g := network.New(types.Graph{Nodes: []string{"a", "b"}})
	assert.Equal(t, 0.0, Modularity(g, []int{0, 1}))
}

func TestColorCycles(t *testing.T) {
	assert.Equal(t, Color(0), Color(PaletteSize()))
	assert.NotEqual(t, Color(0), Color(1))
}

func TestIDGeneratorUnique(t *testing.T) {
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	gen := NewIDGenerator(clock)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen()
		assert.Contains(t, id, "cluster_1700000000000_")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
