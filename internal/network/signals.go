// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import (
	"math"

	gnetwork "gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// Analyze computes network signals for every node of g: weighted degree,
// betweenness and closeness over unweighted shortest paths, and the local
// clustering coefficient. Closeness of an isolated node is 0.
func Analyze(g *Graph) map[string]types.NetworkSignals {
	out := make(map[string]types.NetworkSignals, g.Len())
	if g.Len() == 0 {
		return out
	}

	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.Len(); i++ {
		ug.AddNode(simple.Node(i))
	}
	for i := 0; i < g.Len(); i++ {
		for j := range g.adj[i] {
			if i < j {
				ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	betweenness := gnetwork.Betweenness(ug)
	closeness := gnetwork.Closeness(ug, path.DijkstraAllPaths(ug))

	for i := 0; i < g.Len(); i++ {
		out[g.ids[i]] = types.NetworkSignals{
			Degree:                g.deg[i],
			Betweenness:           finite(betweenness[int64(i)]),
			Closeness:             finite(closeness[int64(i)]),
			ClusteringCoefficient: g.localClustering(i),
		}
	}
	return out
}

// localClustering returns the fraction of neighbor pairs of i that are
// themselves connected. Nodes with fewer than two neighbors score 0.
func (g *Graph) localClustering(i int) float64 {
	neighbors := make([]int, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		neighbors = append(neighbors, j)
	}
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	links := 0
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if _, ok := g.adj[neighbors[a]][neighbors[b]]; ok {
				links++
			}
		}
	}
	return float64(links) / float64(k*(k-1)/2)
}

func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
