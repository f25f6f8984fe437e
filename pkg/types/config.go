// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Algorithm selects the clustering algorithm.
type Algorithm string

const (
	AlgorithmKMeans       Algorithm = "kmeans"
	AlgorithmHierarchical Algorithm = "hierarchical"
	AlgorithmCommunity    Algorithm = "community"
	AlgorithmHybrid       Algorithm = "hybrid"
)

// Linkage selects how inter-cluster distance is measured during
// agglomerative merging.
type Linkage string

const (
	LinkageSingle   Linkage = "single"
	LinkageComplete Linkage = "complete"
	LinkageAverage  Linkage = "average"
)

// ScalingMode selects per-dimension feature normalization.
type ScalingMode string

const (
	ScalingZScore ScalingMode = "zscore"
	ScalingMinMax ScalingMode = "minmax"
)

// FeatureGroup names one of the four independently scaled feature groups.
// The order of the constants is the concatenation order.
type FeatureGroup int

const (
	GroupText FeatureGroup = iota
	GroupNetwork
	GroupTemporal
	GroupCategorical
)

// FeatureGroups lists every group in concatenation order.
var FeatureGroups = []FeatureGroup{GroupText, GroupNetwork, GroupTemporal, GroupCategorical}

func (g FeatureGroup) String() string {
	switch g {
	case GroupText:
		return "text"
	case GroupNetwork:
		return "network"
	case GroupTemporal:
		return "temporal"
	case GroupCategorical:
		return "categorical"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// FeatureToggle enables a feature group and sets its weight.
type FeatureToggle struct {
	Enabled bool    `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Weight  float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// FeatureConfig holds the per-group toggles.
type FeatureConfig struct {
	Text        FeatureToggle `json:"text" yaml:"text" mapstructure:"text"`
	Network     FeatureToggle `json:"network" yaml:"network" mapstructure:"network"`
	Temporal    FeatureToggle `json:"temporal" yaml:"temporal" mapstructure:"temporal"`
	Categorical FeatureToggle `json:"categorical" yaml:"categorical" mapstructure:"categorical"`
}

// Toggle returns the toggle for group g.
func (f FeatureConfig) Toggle(g FeatureGroup) FeatureToggle {
	switch g {
	case GroupText:
		return f.Text
	case GroupNetwork:
		return f.Network
	case GroupTemporal:
		return f.Temporal
	case GroupCategorical:
		return f.Categorical
	}
	return FeatureToggle{}
}

// TextConfig controls tokenization and vocabulary fitting.
type TextConfig struct {
	// MaxVocabulary bounds the fitted vocabulary (default 1000).
	MaxVocabulary int `json:"max_vocabulary" yaml:"max_vocabulary" mapstructure:"max_vocabulary"`

	// MinTokenLength drops shorter tokens (default 3).
	MinTokenLength int `json:"min_token_length" yaml:"min_token_length" mapstructure:"min_token_length"`

	// RemoveStopwords drops general and research stopwords (default true).
	RemoveStopwords bool `json:"remove_stopwords" yaml:"remove_stopwords" mapstructure:"remove_stopwords"`

	// KeywordsPerCluster is the number of ranked keywords kept per cluster (default 10).
	KeywordsPerCluster int `json:"keywords_per_cluster" yaml:"keywords_per_cluster" mapstructure:"keywords_per_cluster"`
}

// KMeansConfig holds k-means parameters.
type KMeansConfig struct {
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" mapstructure:"max_iterations"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`
}

// HierarchicalConfig holds agglomerative clustering parameters.
type HierarchicalConfig struct {
	Linkage Linkage `json:"linkage" yaml:"linkage" mapstructure:"linkage"`
}

// CommunityConfig holds community detection parameters.
type CommunityConfig struct {
	// MaxSweeps caps the number of full local-search sweeps (default 100).
	MaxSweeps int `json:"max_sweeps" yaml:"max_sweeps" mapstructure:"max_sweeps"`
}

// QualityConfig bounds quality-metric computation.
type QualityConfig struct {
	// SilhouetteSample is the maximum number of sampled points (default 800).
	SilhouetteSample int `json:"silhouette_sample" yaml:"silhouette_sample" mapstructure:"silhouette_sample"`

	// MaxComparisons caps distance computations per sampled point (default 200).
	MaxComparisons int `json:"max_comparisons" yaml:"max_comparisons" mapstructure:"max_comparisons"`
}

// ClusteringConfig is the full configuration surface of one clustering run.
type ClusteringConfig struct {
	Algorithm    Algorithm          `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm"`
	NumClusters  int                `json:"num_clusters" yaml:"num_clusters" mapstructure:"num_clusters"`
	Features     FeatureConfig      `json:"features" yaml:"features" mapstructure:"features"`
	Scaling      ScalingMode        `json:"scaling" yaml:"scaling" mapstructure:"scaling"`
	Text         TextConfig         `json:"text" yaml:"text" mapstructure:"text"`
	KMeans       KMeansConfig       `json:"kmeans" yaml:"kmeans" mapstructure:"kmeans"`
	Hierarchical HierarchicalConfig `json:"hierarchical" yaml:"hierarchical" mapstructure:"hierarchical"`
	Community    CommunityConfig    `json:"community" yaml:"community" mapstructure:"community"`
	Quality      QualityConfig      `json:"quality" yaml:"quality" mapstructure:"quality"`

	// Timeout is advisory: callers use it to cancel the run externally.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// Seed seeds the random source. Zero seeds from the clock.
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`

	// DeriveNetworkSignals computes network signals from graph edges when
	// the graph carries none.
	DeriveNetworkSignals bool `json:"derive_network_signals" yaml:"derive_network_signals" mapstructure:"derive_network_signals"`
}

const (
	defaultNumClusters      = 5
	defaultMaxVocabulary    = 1000
	defaultMinTokenLength   = 3
	defaultKeywords         = 10
	defaultMaxIterations    = 100
	defaultTolerance        = 1e-4
	defaultMaxSweeps        = 100
	defaultSilhouetteSample = 800
	defaultMaxComparisons   = 200
	defaultTimeout          = 60 * time.Second
)

// DefaultClusteringConfig returns the configuration used when no file or
// flag overrides a value.
func DefaultClusteringConfig() ClusteringConfig {
	return ClusteringConfig{
		Algorithm:   AlgorithmKMeans,
		NumClusters: defaultNumClusters,
		Features: FeatureConfig{
			Text:        FeatureToggle{Enabled: true, Weight: 1.0},
			Network:     FeatureToggle{Enabled: true, Weight: 0.5},
			Temporal:    FeatureToggle{Enabled: true, Weight: 0.3},
			Categorical: FeatureToggle{Enabled: true, Weight: 0.2},
		},
		Scaling: ScalingZScore,
		Text: TextConfig{
			MaxVocabulary:      defaultMaxVocabulary,
			MinTokenLength:     defaultMinTokenLength,
			RemoveStopwords:    true,
			KeywordsPerCluster: defaultKeywords,
		},
		KMeans:       KMeansConfig{MaxIterations: defaultMaxIterations, Tolerance: defaultTolerance},
		Hierarchical: HierarchicalConfig{Linkage: LinkageAverage},
		Community:    CommunityConfig{MaxSweeps: defaultMaxSweeps},
		Quality: QualityConfig{
			SilhouetteSample: defaultSilhouetteSample,
			MaxComparisons:   defaultMaxComparisons,
		},
		Timeout:              defaultTimeout,
		DeriveNetworkSignals: true,
	}
}

// Validate fills zero or out-of-range numeric values with defaults and
// rejects unknown enumerated values. Unknown algorithms are reported as
// ErrUnknownAlgorithm.
func (c *ClusteringConfig) Validate() error {
	switch c.Algorithm {
	case AlgorithmKMeans, AlgorithmHierarchical, AlgorithmCommunity, AlgorithmHybrid:
	case "":
		c.Algorithm = AlgorithmKMeans
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}

	switch c.Scaling {
	case ScalingZScore, ScalingMinMax:
	case "":
		c.Scaling = ScalingZScore
	default:
		return fmt.Errorf("%w: unsupported scaling %q", ErrInvalidInput, c.Scaling)
	}

	switch c.Hierarchical.Linkage {
	case LinkageSingle, LinkageComplete, LinkageAverage:
	case "":
		c.Hierarchical.Linkage = LinkageAverage
	default:
		return fmt.Errorf("%w: unsupported linkage %q", ErrInvalidInput, c.Hierarchical.Linkage)
	}

	if c.NumClusters <= 0 {
		c.NumClusters = defaultNumClusters
	}
	if c.Text.MaxVocabulary <= 0 {
		c.Text.MaxVocabulary = defaultMaxVocabulary
	}
	if c.Text.MinTokenLength <= 0 {
		c.Text.MinTokenLength = defaultMinTokenLength
	}
	if c.Text.KeywordsPerCluster <= 0 {
		c.Text.KeywordsPerCluster = defaultKeywords
	}
	if c.KMeans.MaxIterations <= 0 {
		c.KMeans.MaxIterations = defaultMaxIterations
	}
	if c.KMeans.Tolerance < 0 {
		c.KMeans.Tolerance = defaultTolerance
	}
	if c.Community.MaxSweeps <= 0 {
		c.Community.MaxSweeps = defaultMaxSweeps
	}
	if c.Quality.SilhouetteSample <= 0 {
		c.Quality.SilhouetteSample = defaultSilhouetteSample
	}
	if c.Quality.MaxComparisons <= 0 {
		c.Quality.MaxComparisons = defaultMaxComparisons
	}
	if c.Timeout < 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}

// StoreConfig holds settings for the SQLite corpus store.
type StoreConfig struct {
	// Path is the database file (default "corpus/index/corpus.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// AppConfig groups the configuration read from research-clusters.yaml.
type AppConfig struct {
	Store      StoreConfig      `json:"store" yaml:"store" mapstructure:"store"`
	Clustering ClusteringConfig `json:"clustering" yaml:"clustering" mapstructure:"clustering"`
}
