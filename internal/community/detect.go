// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package community partitions a weighted undirected graph by greedy
// modularity optimization.
//
// Each sweep visits every node and evaluates moving it into each
// neighboring community, which is O(n²) per sweep in the worst case. It is
// not intended for graphs beyond a few hundred nodes.
package community

import (
	"sort"

	"github.com/pdiddy/research-clusters/internal/network"
	"github.com/pdiddy/research-clusters/internal/quality"
)

// Options bounds the local search.
type Options struct {
	// MaxSweeps caps the number of full sweeps (default 100).
	MaxSweeps int
}

// Result is the outcome of community detection.
type Result struct {
	// Membership holds the community of each node, indexed like the graph.
	// Community IDs are dense and ordered by each community's first node.
	Membership []int

	// Modularity is the modularity of Membership.
	Modularity float64

	// Sweeps is the number of full sweeps performed.
	Sweeps int

	// Moves is the number of node moves applied.
	Moves int

	// Converged is false when MaxSweeps was reached with moves still improving.
	Converged bool
}

// minGain guards against moves whose gain is floating-point noise.
const minGain = 1e-12

// Detect starts from singleton communities and repeatedly applies, for
// each node, the single best move into a neighboring community when it
// strictly increases modularity. It stops after a sweep with no move.
func Detect(g *network.Graph, opts Options) Result {
	n := g.Len()
	if opts.MaxSweeps <= 0 {
		opts.MaxSweeps = 100
	}

	membership := make([]int, n)
	tot := make([]float64, n)
	for i := range membership {
		membership[i] = i
		tot[i] = g.Degree(i)
	}

	m := g.TotalWeight()
	res := Result{Converged: true}
	if m == 0 {
		res.Membership = relabel(membership)
		return res
	}

	for res.Sweeps < opts.MaxSweeps {
		res.Sweeps++
		moved := false
		for i := 0; i < n; i++ {
			if moveNode(g, i, membership, tot, m) {
				moved = true
				res.Moves++
			}
		}
		if !moved {
			break
		}
		if res.Sweeps == opts.MaxSweeps {
			res.Converged = false
		}
	}

	res.Membership = relabel(membership)
	res.Modularity = quality.Modularity(g, res.Membership)
	return res
}

// moveNode applies the best strictly improving move of node i, if any.
//
// Moving i from community a to b changes modularity by
//
//	ΔQ = (k_i,b − k_i,a) / m − k_i (Σ_b − (Σ_a − k_i)) / 2m²
//
// where k_i,c is the weight from i into c (excluding i itself) and Σ_c is
// the total degree of c.
func moveNode(g *network.Graph, i int, membership []int, tot []float64, m float64) bool {
	from := membership[i]
	ki := g.Degree(i)

	links := make(map[int]float64)
	var order []int
	for j, w := range g.Neighbors(i) {
		c := membership[j]
		if _, ok := links[c]; !ok && c != from {
			order = append(order, c)
		}
		links[c] += w
	}
	sort.Ints(order)

	best, bestGain := from, minGain
	for _, c := range order {
		gain := (links[c]-links[from])/m - ki*(tot[c]-(tot[from]-ki))/(2*m*m)
		if gain > bestGain {
			best, bestGain = c, gain
		}
	}
	if best == from {
		return false
	}

	tot[from] -= ki
	tot[best] += ki
	membership[i] = best
	return true
}

// relabel renumbers communities densely in order of first appearance.
func relabel(membership []int) []int {
	ids := make(map[int]int)
	out := make([]int, len(membership))
	for i, c := range membership {
		id, ok := ids[c]
		if !ok {
			id = len(ids)
			ids[c] = id
		}
		out[i] = id
	}
	return out
}
