// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hierarchy implements bottom-up agglomerative clustering with
// single, complete, or average linkage.
//
// The pairwise distance matrix is computed once, O(n²) in time and space,
// and every merge search rescans all cluster pairs, so a run costs roughly
// O(n³). Inputs beyond the low thousands of points get slow.
package hierarchy

import (
	"fmt"
	"math"

	"github.com/pdiddy/research-clusters/internal/similarity"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// Merge is one dendrogram step: two clusters, given as point indexes, were
// merged at Distance into a cluster of Size points.
type Merge struct {
	Left     []int
	Right    []int
	Distance float64
	Size     int
}

// Result is the outcome of one agglomerative run.
type Result struct {
	// Assignments holds the cluster index of each point, in input order.
	// Cluster indexes follow the order of each cluster's lowest point index.
	Assignments []int

	// Dendrogram lists merges in the order they were made.
	Dendrogram []Merge
}

// Cluster merges points until k clusters remain. k is clamped to
// [1, len(points)].
func Cluster(points [][]float64, k int, linkage types.Linkage) (Result, error) {
	linkFn, err := linkageFunc(linkage)
	if err != nil {
		return Result{}, err
	}

	n := len(points)
	if n == 0 {
		return Result{}, nil
	}
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	dist := distanceMatrix(points)

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	var dendrogram []Merge
	for len(clusters) > k {
		bestI, bestJ := -1, -1
		best := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				if d := linkFn(dist, clusters[i], clusters[j]); d < best {
					best = d
					bestI, bestJ = i, j
				}
			}
		}

		merged := make([]int, 0, len(clusters[bestI])+len(clusters[bestJ]))
		merged = append(merged, clusters[bestI]...)
		merged = append(merged, clusters[bestJ]...)
		dendrogram = append(dendrogram, Merge{
			Left:     clusters[bestI],
			Right:    clusters[bestJ],
			Distance: best,
			Size:     len(merged),
		})

		clusters[bestI] = merged
		clusters = append(clusters[:bestJ], clusters[bestJ+1:]...)
	}

	return Result{Assignments: label(clusters, n), Dendrogram: dendrogram}, nil
}

// label assigns cluster indexes ordered by each cluster's lowest member.
// Merges always keep the lower slot, so slot order already is that order.
func label(clusters [][]int, n int) []int {
	assignments := make([]int, n)
	for c, members := range clusters {
		for _, p := range members {
			assignments[p] = c
		}
	}
	return assignments
}

func distanceMatrix(points [][]float64) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := similarity.MustEuclidean(points[i], points[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return dist
}

type linkFunc func(dist [][]float64, a, b []int) float64

func linkageFunc(l types.Linkage) (linkFunc, error) {
	switch l {
	case types.LinkageSingle:
		return singleLink, nil
	case types.LinkageComplete:
		return completeLink, nil
	case types.LinkageAverage, "":
		return averageLink, nil
	}
	return nil, fmt.Errorf("%w: unsupported linkage %q", types.ErrInvalidInput, l)
}

func singleLink(dist [][]float64, a, b []int) float64 {
	min := math.Inf(1)
	for _, i := range a {
		for _, j := range b {
			if dist[i][j] < min {
				min = dist[i][j]
			}
		}
	}
	return min
}

func completeLink(dist [][]float64, a, b []int) float64 {
	max := math.Inf(-1)
	for _, i := range a {
		for _, j := range b {
			if dist[i][j] > max {
				max = dist[i][j]
			}
		}
	}
	return max
}

func averageLink(dist [][]float64, a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}
