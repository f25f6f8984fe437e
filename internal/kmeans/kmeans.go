// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kmeans implements k-means clustering with k-means++ seeding and
// Lloyd iterations.
package kmeans

import (
	"math"
	"math/rand"

	"github.com/pdiddy/research-clusters/internal/similarity"
)

// State is a phase of the k-means state machine.
type State int

const (
	Initializing State = iota
	Assigning
	Updating
	Converged
	MaxIterationsReached
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Assigning:
		return "assigning"
	case Updating:
		return "updating"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	}
	return "unknown"
}

// Options bounds the iteration.
type Options struct {
	// MaxIterations caps the number of assignment passes (default 100).
	MaxIterations int

	// Tolerance stops iteration once the largest centroid shift falls
	// below it.
	Tolerance float64
}

// Result is the outcome of one k-means run.
type Result struct {
	// Assignments holds the cluster index of each point, in input order.
	Assignments []int

	// Centroids holds the final centroid positions.
	Centroids [][]float64

	// Iterations is the number of assignment passes used.
	Iterations int

	// State is Converged or MaxIterationsReached.
	State State

	// Inertia holds the within-cluster sum of squares after each update.
	Inertia []float64
}

// Cluster partitions points, which must all have the same length, into k
// clusters. k is clamped to [1, len(points)]. A centroid that loses all of
// its points keeps its previous position.
func Cluster(points [][]float64, k int, opts Options, rng *rand.Rand) Result {
	n := len(points)
	if n == 0 {
		return Result{State: Converged}
	}
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 100
	}

	m := &machine{
		points:      points,
		centroids:   seed(points, k, rng),
		assignments: make([]int, n),
		state:       Initializing,
	}
	for i := range m.assignments {
		m.assignments[i] = -1
	}

	for iter := 1; ; iter++ {
		m.state = Assigning
		changed := m.assign()
		if !changed {
			m.state = Converged
			m.iterations = iter
			break
		}

		m.state = Updating
		shift := m.update()
		m.inertia = append(m.inertia, m.wcss())

		if shift < opts.Tolerance {
			m.state = Converged
			m.iterations = iter
			break
		}
		if iter >= opts.MaxIterations {
			m.state = MaxIterationsReached
			m.iterations = iter
			break
		}
	}

	return Result{
		Assignments: m.assignments,
		Centroids:   m.centroids,
		Iterations:  m.iterations,
		State:       m.state,
		Inertia:     m.inertia,
	}
}

type machine struct {
	points      [][]float64
	centroids   [][]float64
	assignments []int
	state       State
	iterations  int
	inertia     []float64
}

// assign moves every point to its nearest centroid and reports whether any
// point changed cluster. Ties go to the lowest centroid index.
func (m *machine) assign() bool {
	changed := false
	for i, p := range m.points {
		best := nearest(p, m.centroids)
		if m.assignments[i] != best {
			m.assignments[i] = best
			changed = true
		}
	}
	return changed
}

// update moves each centroid to the mean of its points and returns the
// largest shift.
func (m *machine) update() float64 {
	k := len(m.centroids)
	dims := len(m.points[0])
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, dims)
	}
	counts := make([]int, k)
	for i, p := range m.points {
		c := m.assignments[i]
		counts[c]++
		for d, v := range p {
			sums[c][d] += v
		}
	}

	var maxShift float64
	for c := range m.centroids {
		if counts[c] == 0 {
			continue
		}
		for d := range sums[c] {
			sums[c][d] /= float64(counts[c])
		}
		if shift := similarity.MustEuclidean(m.centroids[c], sums[c]); shift > maxShift {
			maxShift = shift
		}
		m.centroids[c] = sums[c]
	}
	return maxShift
}

func (m *machine) wcss() float64 {
	var sum float64
	for i, p := range m.points {
		sum += similarity.MustSquaredEuclidean(p, m.centroids[m.assignments[i]])
	}
	return sum
}

func nearest(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := similarity.MustSquaredEuclidean(p, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
