// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-clusters/pkg/types"
)

func linePoints() [][]float64 {
	return [][]float64{{0}, {1}, {10}, {11}, {30}, {31.5}}
}

func distinct(assignments []int) int {
	seen := make(map[int]struct{})
	for _, a := range assignments {
		seen[a] = struct{}{}
	}
	return len(seen)
}

func TestClusterYieldsRequestedCount(t *testing.T) {
	points := linePoints()
	for _, linkage := range []types.Linkage{types.LinkageSingle, types.LinkageComplete, types.LinkageAverage} {
		for k := 1; k <= len(points); k++ {
			res, err := Cluster(points, k, linkage)
			require.NoError(t, err)
			assert.Equal(t, k, distinct(res.Assignments), "linkage %s k=%d", linkage, k)
			assert.Len(t, res.Dendrogram, len(points)-k)
		}
	}
}

func TestClusterGroupsNeighbors(t *testing.T) {
	res, err := Cluster(linePoints(), 3, types.LinkageAverage)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, res.Assignments)
}

func TestDendrogramRecordsMerges(t *testing.T) {
	res, err := Cluster(linePoints(), 1, types.LinkageSingle)
	require.NoError(t, err)
	require.Len(t, res.Dendrogram, 5)

	first := res.Dendrogram[0]
	assert.Equal(t, []int{0}, first.Left)
	assert.Equal(t, []int{1}, first.Right)
	assert.InDelta(t, 1.0, first.Distance, 1e-12)
	assert.Equal(t, 2, first.Size)

	last := res.Dendrogram[4]
	assert.Equal(t, 6, last.Size)
	// Single linkage joins {30, 31.5} to {10, 11} at 19.
	assert.InDelta(t, 19.0, last.Distance, 1e-12)
}

func TestLinkageDistances(t *testing.T) {
	dist := distanceMatrix([][]float64{{0}, {1}, {4}, {6}})
	a, b := []int{0, 1}, []int{2, 3}

	assert.InDelta(t, 3.0, singleLink(dist, a, b), 1e-12)
	assert.InDelta(t, 6.0, completeLink(dist, a, b), 1e-12)
	assert.InDelta(t, (4.0+6.0+3.0+5.0)/4.0, averageLink(dist, a, b), 1e-12)
}

func TestClusterClampsK(t *testing.T) {
	res, err := Cluster(linePoints(), 99, types.LinkageComplete)
	require.NoError(t, err)
	assert.Equal(t, 6, distinct(res.Assignments))
	assert.Empty(t, res.Dendrogram)

	res, err = Cluster(linePoints(), 0, types.LinkageComplete)
	require.NoError(t, err)
	assert.Equal(t, 1, distinct(res.Assignments))
}

func TestClusterUnknownLinkage(t *testing.T) {
	_, err := Cluster(linePoints(), 2, types.Linkage("ward"))
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}

func TestClusterEmpty(t *testing.T) {
	res, err := Cluster(nil, 2, types.LinkageAverage)
	require.NoError(t, err)
	assert.Empty(t, res.Assignments)
}
