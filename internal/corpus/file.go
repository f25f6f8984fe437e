// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus supplies records and citation graphs to the clustering
// engine and writes clustering results back out.
// Implements: YAML corpus files; SQLite corpus store (papers, citations);
//
//	result export (YAML, JSON, summary table).
//
// See docs/ARCHITECTURE § Corpus.
package corpus

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// File is the on-disk representation of a corpus: records plus the
// citation edges between them. A researcher can hand-edit one or export
// it from the store and cluster it later.
type File struct {
	Records []types.Record                  `yaml:"records"`
	Edges   []types.Edge                    `yaml:"edges,omitempty"`
	Signals map[string]types.NetworkSignals `yaml:"signals,omitempty"`
}

// Graph returns the citation graph described by the file. Every record is
// a node, so records without edges still appear.
func (f *File) Graph() types.Graph {
	nodes := make([]string, len(f.Records))
	for i, r := range f.Records {
		nodes[i] = r.ID
	}
	return types.Graph{Nodes: nodes, Edges: f.Edges, Signals: f.Signals}
}

// ReadFile loads a corpus file from disk. Records without an ID are
// rejected.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing corpus file: %w", err)
	}
	for i, r := range f.Records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d in %s has no id", types.ErrInvalidInput, i, path)
		}
	}
	return &f, nil
}

// WriteFile saves a corpus file to disk.
func WriteFile(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling corpus file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
