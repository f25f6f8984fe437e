// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ClusterAssignment maps every input record ID to exactly one cluster ID.
type ClusterAssignment map[string]string

// Members returns the record IDs assigned to clusterID, in the order given
// by ids. Pass the input record IDs to get input order.
func (a ClusterAssignment) Members(clusterID string, ids []string) []string {
	var out []string
	for _, id := range ids {
		if a[id] == clusterID {
			out = append(out, id)
		}
	}
	return out
}

// Keyword is a ranked term with its normalized frequency score.
type Keyword struct {
	Term  string  `json:"term" yaml:"term"`
	Score float64 `json:"score" yaml:"score"`
}

// ClusterInfo describes one cluster of a clustering result.
type ClusterInfo struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Size        int    `json:"size" yaml:"size"`

	// Color is a hex color from the fixed palette, by cluster order.
	Color string `json:"color" yaml:"color"`

	// Keywords are ranked by score, descending.
	Keywords []Keyword `json:"keywords" yaml:"keywords"`

	// PaperIDs lists the member record IDs in input order.
	PaperIDs []string `json:"paper_ids" yaml:"paper_ids"`

	// Representative is the member with the highest citation count. Ties
	// go to the member that appears first in the input, so the choice is
	// only stable when input order is.
	Representative string `json:"representative" yaml:"representative"`

	// Coherence is the mean pairwise Jaccard similarity of member title
	// words (1.0 for singletons).
	Coherence float64 `json:"coherence" yaml:"coherence"`
}

// QualityMetrics holds the metrics applicable to the algorithm used. Nil
// fields were not computed.
type QualityMetrics struct {
	Silhouette *float64 `json:"silhouette,omitempty" yaml:"silhouette,omitempty"`
	Inertia    *float64 `json:"inertia,omitempty" yaml:"inertia,omitempty"`
	Modularity *float64 `json:"modularity,omitempty" yaml:"modularity,omitempty"`
}

// MergeStep records one agglomerative merge.
type MergeStep struct {
	Left     []string `json:"left" yaml:"left"`
	Right    []string `json:"right" yaml:"right"`
	Distance float64  `json:"distance" yaml:"distance"`
	Size     int      `json:"size" yaml:"size"`
}

// ClusteringResult is the immutable output of one clustering run.
type ClusteringResult struct {
	Algorithm   Algorithm         `json:"algorithm" yaml:"algorithm"`
	Config      ClusteringConfig  `json:"config" yaml:"config"`
	Clusters    []ClusterInfo     `json:"clusters" yaml:"clusters"`
	Assignments ClusterAssignment `json:"assignments" yaml:"assignments"`

	// CommunityClusters and CommunityAssignments describe the graph
	// partition of a hybrid run, reported alongside the k-means clusters.
	// Both are nil for other algorithms.
	CommunityClusters    []ClusterInfo     `json:"community_clusters,omitempty" yaml:"community_clusters,omitempty"`
	CommunityAssignments ClusterAssignment `json:"community_assignments,omitempty" yaml:"community_assignments,omitempty"`

	Quality QualityMetrics `json:"quality" yaml:"quality"`

	// Dendrogram holds the merge steps of a hierarchical run.
	Dendrogram []MergeStep `json:"dendrogram,omitempty" yaml:"dendrogram,omitempty"`

	// Iterations is the number of k-means iterations or community sweeps used.
	Iterations int `json:"iterations,omitempty" yaml:"iterations,omitempty"`

	// Converged is false when an iteration or sweep cap was reached.
	Converged bool `json:"converged" yaml:"converged"`

	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	ProcessingTime time.Duration `json:"processing_time" yaml:"processing_time"`
}

// ClusterIDs returns the cluster IDs in result order.
func (r ClusteringResult) ClusterIDs() []string {
	ids := make([]string, len(r.Clusters))
	for i, c := range r.Clusters {
		ids[i] = c.ID
	}
	return ids
}
