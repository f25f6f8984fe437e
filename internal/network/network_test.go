// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-clusters/pkg/types"
)

func TestNewBuildsWeightedAdjacency(t *testing.T) {
	g := New(types.Graph{
		Nodes: []string{"a"},
		Edges: []types.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "a", Weight: 2},
			{Source: "b", Target: "c", Weight: 0.5},
			{Source: "c", Target: "c", Weight: 9},
		},
	}, "d", "a")

	require.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{g.ID(0), g.ID(1), g.ID(2), g.ID(3)})

	a, _ := g.Index("a")
	b, _ := g.Index("b")
	c, _ := g.Index("c")
	d, _ := g.Index("d")
	assert.Equal(t, 3.0, g.Weight(a, b), "duplicate edges accumulate; missing weight counts as 1")
	assert.Equal(t, 3.0, g.Weight(b, a))
	assert.Equal(t, 0.0, g.Weight(c, c), "self loops are ignored")
	assert.Equal(t, 3.5, g.Degree(b))
	assert.Equal(t, 0.0, g.Degree(d))
	assert.Equal(t, 3.5, g.TotalWeight())
}

func TestAnalyzePathGraph(t *testing.T) {
	g := New(types.Graph{Edges: []types.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}}, "isolated")

	signals := Analyze(g)
	require.Len(t, signals, 4)

	assert.Equal(t, 2.0, signals["b"].Degree)
	assert.Greater(t, signals["b"].Betweenness, 0.0)
	assert.Equal(t, 0.0, signals["a"].Betweenness)
	assert.Greater(t, signals["b"].Closeness, signals["a"].Closeness)
	assert.Equal(t, 0.0, signals["isolated"].Closeness)
	assert.Equal(t, 0.0, signals["b"].ClusteringCoefficient)
}

func TestAnalyzeTriangleClustering(t *testing.T) {
	g := New(types.Graph{Edges: []types.Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
		{Source: "c", Target: "a"},
		{Source: "c", Target: "d"},
	}})

	signals := Analyze(g)
	assert.Equal(t, 1.0, signals["a"].ClusteringCoefficient)
	assert.InDelta(t, 1.0/3.0, signals["c"].ClusteringCoefficient, 1e-12)
	assert.Equal(t, 0.0, signals["d"].ClusteringCoefficient)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Empty(t, Analyze(New(types.Graph{})))
}
