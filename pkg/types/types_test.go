// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFillsDefaults(t *testing.T) {
	var cfg ClusteringConfig
	require.NoError(t, cfg.Validate())

	def := DefaultClusteringConfig()
	assert.Equal(t, AlgorithmKMeans, cfg.Algorithm)
	assert.Equal(t, def.NumClusters, cfg.NumClusters)
	assert.Equal(t, ScalingZScore, cfg.Scaling)
	assert.Equal(t, LinkageAverage, cfg.Hierarchical.Linkage)
	assert.Equal(t, def.Text.MaxVocabulary, cfg.Text.MaxVocabulary)
	assert.Equal(t, def.KMeans.MaxIterations, cfg.KMeans.MaxIterations)
	assert.Equal(t, def.Quality, cfg.Quality)
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := DefaultClusteringConfig()
	cfg.Algorithm = AlgorithmCommunity
	cfg.NumClusters = 9
	cfg.Timeout = 5 * time.Second
	require.NoError(t, cfg.Validate())
	assert.Equal(t, AlgorithmCommunity, cfg.Algorithm)
	assert.Equal(t, 9, cfg.NumClusters)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClusteringConfig)
		want   error
	}{
		{"algorithm", func(c *ClusteringConfig) { c.Algorithm = "spectral" }, ErrUnknownAlgorithm},
		{"scaling", func(c *ClusteringConfig) { c.Scaling = "log" }, ErrInvalidInput},
		{"linkage", func(c *ClusteringConfig) { c.Hierarchical.Linkage = "ward" }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultClusteringConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestDefaultWeights(t *testing.T) {
	f := DefaultClusteringConfig().Features
	want := map[FeatureGroup]float64{
		GroupText: 1.0, GroupNetwork: 0.5, GroupTemporal: 0.3, GroupCategorical: 0.2,
	}
	for _, g := range FeatureGroups {
		assert.True(t, f.Toggle(g).Enabled, g.String())
		assert.Equal(t, want[g], f.Toggle(g).Weight, g.String())
	}
	assert.Equal(t, "group(9)", FeatureGroup(9).String())
}

func TestClusterAssignmentMembers(t *testing.T) {
	a := ClusterAssignment{"a": "c1", "b": "c2", "c": "c1"}
	assert.Equal(t, []string{"a", "c"}, a.Members("c1", []string{"a", "b", "c"}))
	assert.Nil(t, a.Members("c3", []string{"a", "b", "c"}))
}

func TestRecordAndEdgeDefaults(t *testing.T) {
	n := 4
	assert.Equal(t, 0, Record{}.Citations())
	assert.Equal(t, 4, Record{CitationCount: &n}.Citations())
	assert.Equal(t, 1.0, Edge{}.EffectiveWeight())
	assert.Equal(t, 1.0, Edge{Weight: -2}.EffectiveWeight())
	assert.Equal(t, 0.5, Edge{Weight: 0.5}.EffectiveWeight())
	assert.True(t, Graph{}.IsEmpty())

	r := ClusteringResult{Clusters: []ClusterInfo{{ID: "x"}, {ID: "y"}}}
	assert.Equal(t, []string{"x", "y"}, r.ClusterIDs())
}
