// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the clustering pipeline.
// Implements: records and citation graph input (Record, Graph, Edge,
//
//	NetworkSignals); clustering configuration (ClusteringConfig);
//	clustering output (ClusterAssignment, ClusterInfo, ClusteringResult).
//
// See docs/ARCHITECTURE § Data Model.
package types

import "time"

// Record is a bibliographic record supplied by the caller. The clustering
// pipeline only reads it.
type Record struct {
	// ID uniquely identifies the record within one clustering run.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the free-text abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the journal, conference, or publisher.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Date is the publication date. The zero value means unknown.
	Date time.Time `json:"date" yaml:"date"`

	// CitationCount is the number of times the paper has been cited, when known.
	CitationCount *int `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`

	// Terms holds controlled-vocabulary terms (e.g. MeSH headings).
	Terms []string `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// Citations returns the citation count, or 0 when it is unknown.
func (r Record) Citations() int {
	if r.CitationCount == nil {
		return 0
	}
	return *r.CitationCount
}

// Edge is a citation link between two records. A Weight of zero or less
// means unspecified and is treated as 1.
type Edge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// EffectiveWeight returns the edge weight, defaulting to 1.
func (e Edge) EffectiveWeight() float64 {
	if e.Weight <= 0 {
		return 1
	}
	return e.Weight
}

// NetworkSignals holds per-record centrality values computed over the
// citation graph.
type NetworkSignals struct {
	Degree                float64 `json:"degree" yaml:"degree"`
	Betweenness           float64 `json:"betweenness" yaml:"betweenness"`
	Closeness             float64 `json:"closeness" yaml:"closeness"`
	ClusteringCoefficient float64 `json:"clustering_coefficient" yaml:"clustering_coefficient"`
}

// Graph describes the citation network around a set of records.
type Graph struct {
	// Nodes lists node identifiers. Nodes referenced only by edges are
	// added implicitly.
	Nodes []string `json:"nodes,omitempty" yaml:"nodes,omitempty"`

	// Edges lists citation links; direction is ignored.
	Edges []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`

	// Signals holds precomputed network signals keyed by record ID. When
	// nil the engine may derive them from Edges.
	Signals map[string]NetworkSignals `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// IsEmpty reports whether the graph has neither nodes nor edges.
func (g Graph) IsEmpty() bool {
	return len(g.Nodes) == 0 && len(g.Edges) == 0
}
