// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds the weighted, undirected citation graph used by
// community detection and derives per-node network signals from it.
package network

import (
	"github.com/pdiddy/research-clusters/pkg/types"
)

// Graph is a weighted undirected graph over string node IDs. Nodes are
// indexed densely in insertion order.
type Graph struct {
	ids   []string
	index map[string]int
	adj   []map[int]float64
	deg   []float64
	total float64
}

// New builds a Graph from g. Nodes come from g.Nodes, then from edge
// endpoints, then from extra, in that order and without duplicates. Self
// loops are ignored, duplicate edges accumulate weight, and weights of
// zero or less count as 1.
func New(g types.Graph, extra ...string) *Graph {
	out := &Graph{index: make(map[string]int)}
	for _, id := range g.Nodes {
		out.add(id)
	}
	for _, e := range g.Edges {
		out.add(e.Source)
		out.add(e.Target)
	}
	for _, id := range extra {
		out.add(id)
	}

	for _, e := range g.Edges {
		i, j := out.index[e.Source], out.index[e.Target]
		if i == j {
			continue
		}
		w := e.EffectiveWeight()
		out.adj[i][j] += w
		out.adj[j][i] += w
		out.deg[i] += w
		out.deg[j] += w
		out.total += w
	}
	return out
}

func (g *Graph) add(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, make(map[int]float64))
	g.deg = append(g.deg, 0)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// ID returns the identifier of node i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Index returns the position of node id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Neighbors returns the neighbors of node i with edge weights. The map
// must not be modified.
func (g *Graph) Neighbors(i int) map[int]float64 { return g.adj[i] }

// Weight returns the weight of edge (i, j), or 0 if there is none.
func (g *Graph) Weight(i, j int) float64 { return g.adj[i][j] }

// Degree returns the weighted degree of node i.
func (g *Graph) Degree(i int) float64 { return g.deg[i] }

// TotalWeight returns m, the sum of all edge weights.
func (g *Graph) TotalWeight() float64 { return g.total }
