// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine orchestrates one clustering run: feature extraction,
// feature combination, algorithm dispatch, quality metrics, and cluster
// metadata.
// Implements: clustering engine; docs/ARCHITECTURE § Clustering Engine.
//
// A run is synchronous and single-threaded. The context is checked between
// phases only; callers enforce ClusteringConfig.Timeout by cancelling it.
// An Engine keeps its feature Extractor across runs, so concurrent runs
// need separate Engines.
package engine

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pdiddy/research-clusters/internal/community"
	"github.com/pdiddy/research-clusters/internal/features"
	"github.com/pdiddy/research-clusters/internal/hierarchy"
	"github.com/pdiddy/research-clusters/internal/kmeans"
	"github.com/pdiddy/research-clusters/internal/network"
	"github.com/pdiddy/research-clusters/internal/quality"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// Engine runs clustering over records and their citation graph.
type Engine struct {
	out       io.Writer
	now       func() time.Time
	rng       *rand.Rand
	newID     quality.IDGenerator
	extractor *features.Extractor
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput sets the writer for progress lines (default io.Discard).
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithClock sets the clock used for timestamps and citation age.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand sets the random source for every randomized step. Without it
// each run seeds from ClusteringConfig.Seed, or from the clock when the
// seed is zero.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithIDGenerator sets the cluster ID generator.
func WithIDGenerator(gen quality.IDGenerator) Option {
	return func(e *Engine) { e.newID = gen }
}

// New returns an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{out: io.Discard, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.newID == nil {
		e.newID = quality.NewIDGenerator(e.now)
	}
	return e
}

// partition is the algorithm output projected onto records: labels[i] is
// the cluster of records[i].
type partition struct {
	labels     []int
	community  []int
	dendrogram []hierarchy.Merge
	metrics    types.QualityMetrics
	iterations int
	converged  bool
}

// PerformClustering clusters records per cfg. Zero records yield an empty
// result, not an error. An unknown algorithm fails with
// types.ErrUnknownAlgorithm and no partial result.
func (e *Engine) PerformClustering(ctx context.Context, records []types.Record, graph types.Graph, cfg types.ClusteringConfig) (*types.ClusteringResult, error) {
	start := e.now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := uniqueIDs(records); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		fmt.Fprintln(e.out, "no records: returning empty result")
		return &types.ClusteringResult{
			Algorithm:      cfg.Algorithm,
			Config:         cfg,
			Clusters:       []types.ClusterInfo{},
			Assignments:    types.ClusterAssignment{},
			Converged:      true,
			CreatedAt:      start,
			ProcessingTime: e.now().Sub(start),
		}, nil
	}

	rng := e.random(cfg)
	x := e.extractorFor(cfg.Text)

	x.Fit(records)
	fmt.Fprintf(e.out, "fitting features: %d records, vocabulary %d terms\n", len(records), x.Vocabulary().Len())
	if err := checkpoint(ctx, "feature extraction"); err != nil {
		return nil, err
	}

	signals := e.networkSignals(graph, cfg)
	vectors := make([]features.FeatureVector, len(records))
	for i, r := range records {
		var sig *types.NetworkSignals
		if s, ok := signals[r.ID]; ok {
			sig = &s
		}
		vectors[i] = x.ExtractFeatures(r, sig)
	}
	matrix := Combine(vectors, cfg.Features, cfg.Scaling)
	fmt.Fprintf(e.out, "feature matrix: %d x %d\n", len(matrix), width(matrix))
	if err := checkpoint(ctx, "feature combination"); err != nil {
		return nil, err
	}

	part, err := e.dispatch(records, graph, matrix, cfg, rng)
	if err != nil {
		return nil, err
	}
	if err := checkpoint(ctx, string(cfg.Algorithm)); err != nil {
		return nil, err
	}

	clusters, assignments := buildClusters(records, part.labels, x, cfg.Text.KeywordsPerCluster, e.newID)
	result := &types.ClusteringResult{
		Algorithm:   cfg.Algorithm,
		Config:      cfg,
		Clusters:    clusters,
		Assignments: assignments,
		Quality:     part.metrics,
		Iterations:  part.iterations,
		Converged:   part.converged,
		CreatedAt:   start,
	}
	if part.community != nil {
		result.CommunityClusters, result.CommunityAssignments = buildClusters(records, part.community, x, cfg.Text.KeywordsPerCluster, e.newID)
	}
	for _, m := range part.dendrogram {
		result.Dendrogram = append(result.Dendrogram, mergeStep(records, m))
	}
	result.ProcessingTime = e.now().Sub(start)

	fmt.Fprintf(e.out, "%s: %d clusters in %v\n", cfg.Algorithm, len(clusters), result.ProcessingTime)
	return result, nil
}

func (e *Engine) dispatch(records []types.Record, graph types.Graph, matrix [][]float64, cfg types.ClusteringConfig, rng *rand.Rand) (partition, error) {
	silhouetteOpts := quality.SilhouetteOptions{
		Sample:         cfg.Quality.SilhouetteSample,
		MaxComparisons: cfg.Quality.MaxComparisons,
	}

	var part partition
	switch cfg.Algorithm {
	case types.AlgorithmKMeans:
		km := runKMeans(matrix, cfg, rng)
		part.labels = km.Assignments
		part.iterations = km.Iterations
		part.converged = km.State == kmeans.Converged
		part.metrics.Silhouette = ptr(quality.Silhouette(matrix, km.Assignments, silhouetteOpts, rng))
		part.metrics.Inertia = ptr(quality.Inertia(matrix, km.Assignments, km.Centroids))

	case types.AlgorithmHierarchical:
		h, err := hierarchy.Cluster(matrix, cfg.NumClusters, cfg.Hierarchical.Linkage)
		if err != nil {
			return part, fmt.Errorf("hierarchical clustering: %w", err)
		}
		part.labels = h.Assignments
		part.dendrogram = h.Dendrogram
		part.converged = true
		part.metrics.Silhouette = ptr(quality.Silhouette(matrix, h.Assignments, silhouetteOpts, rng))

	case types.AlgorithmCommunity:
		labels, res := runCommunity(records, graph, cfg)
		part.labels = labels
		part.iterations = res.Sweeps
		part.converged = res.Converged
		part.metrics.Modularity = ptr(res.Modularity)
		part.metrics.Silhouette = ptr(quality.Silhouette(matrix, labels, silhouetteOpts, rng))

	case types.AlgorithmHybrid:
		km := runKMeans(matrix, cfg, rng)
		labels, res := runCommunity(records, graph, cfg)
		part.labels = km.Assignments
		part.community = labels
		part.iterations = km.Iterations
		part.converged = km.State == kmeans.Converged && res.Converged
		part.metrics.Silhouette = ptr(quality.Silhouette(matrix, km.Assignments, silhouetteOpts, rng))
		part.metrics.Modularity = ptr(res.Modularity)

	default:
		return part, fmt.Errorf("%w: %q", types.ErrUnknownAlgorithm, cfg.Algorithm)
	}
	return part, nil
}

func runKMeans(matrix [][]float64, cfg types.ClusteringConfig, rng *rand.Rand) kmeans.Result {
	return kmeans.Cluster(matrix, cfg.NumClusters, kmeans.Options{
		MaxIterations: cfg.KMeans.MaxIterations,
		Tolerance:     cfg.KMeans.Tolerance,
	}, rng)
}

// runCommunity detects communities over the whole graph and projects them
// onto records. Records absent from the graph become isolated nodes and so
// form singleton communities.
func runCommunity(records []types.Record, graph types.Graph, cfg types.ClusteringConfig) ([]int, community.Result) {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	g := network.New(graph, ids...)
	res := community.Detect(g, community.Options{MaxSweeps: cfg.Community.MaxSweeps})

	labels := make([]int, len(records))
	for i, id := range ids {
		node, _ := g.Index(id)
		labels[i] = res.Membership[node]
	}
	return labels, res
}

// networkSignals returns the graph's precomputed signals, or derives them
// when allowed and the network group is enabled.
func (e *Engine) networkSignals(graph types.Graph, cfg types.ClusteringConfig) map[string]types.NetworkSignals {
	if graph.Signals != nil {
		return graph.Signals
	}
	if !cfg.DeriveNetworkSignals || !cfg.Features.Network.Enabled || len(graph.Edges) == 0 {
		return nil
	}
	signals := network.Analyze(network.New(graph))
	fmt.Fprintf(e.out, "derived network signals for %d nodes\n", len(signals))
	return signals
}

func (e *Engine) random(cfg types.ClusteringConfig) *rand.Rand {
	if e.rng != nil {
		return e.rng
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = e.now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// extractorFor reuses the Engine's Extractor while the text configuration
// is unchanged.
func (e *Engine) extractorFor(cfg types.TextConfig) *features.Extractor {
	if e.extractor == nil || e.extractor.Config() != cfg {
		e.extractor = features.NewExtractor(cfg, features.WithClock(e.now))
	}
	return e.extractor
}

func mergeStep(records []types.Record, m hierarchy.Merge) types.MergeStep {
	ids := func(idx []int) []string {
		out := make([]string, len(idx))
		for i, p := range idx {
			out[i] = records[p].ID
		}
		return out
	}
	return types.MergeStep{Left: ids(m.Left), Right: ids(m.Right), Distance: m.Distance, Size: m.Size}
}

func uniqueIDs(records []types.Record) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: duplicate record id %q", types.ErrInvalidInput, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func checkpoint(ctx context.Context, phase string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("clustering cancelled after %s: %w", phase, err)
	}
	return nil
}

func width(matrix [][]float64) int {
	if len(matrix) == 0 {
		return 0
	}
	return len(matrix[0])
}

func ptr(v float64) *float64 { return &v }
