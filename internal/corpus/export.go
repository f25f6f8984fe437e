// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// WriteResultYAML writes result to w as YAML.
func WriteResultYAML(w io.Writer, result *types.ClusteringResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteResultJSON writes result to w as indented JSON.
func WriteResultJSON(w io.Writer, result *types.ClusteringResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// FormatSummary writes a fixed-width table of the clusters in result
// followed by the quality metrics that apply to its algorithm.
func FormatSummary(w io.Writer, result *types.ClusteringResult) {
	if len(result.Clusters) == 0 {
		fmt.Fprintln(w, "No clusters.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-5s  %-9s  %-20s  %s\n",
		"#", "Name", "Size", "Coherence", "Representative", "Keywords")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, c := range result.Clusters {
		terms := make([]string, 0, 3)
		for _, k := range c.Keywords {
			if len(terms) == 3 {
				break
			}
			terms = append(terms, k.Term)
		}
		fmt.Fprintf(w, "%-4d  %-40s  %-5d  %-9.3f  %-20s  %s\n",
			i+1, Truncate(c.Name, 40), c.Size, c.Coherence,
			Truncate(c.Representative, 20), strings.Join(terms, ", "))
	}

	fmt.Fprintf(w, "\n%s: %d clusters, %d records, %v\n",
		result.Algorithm, len(result.Clusters), len(result.Assignments), result.ProcessingTime)
	q := result.Quality
	if q.Silhouette != nil {
		fmt.Fprintf(w, "silhouette: %.4f\n", *q.Silhouette)
	}
	if q.Inertia != nil {
		fmt.Fprintf(w, "inertia:    %.4f\n", *q.Inertia)
	}
	if q.Modularity != nil {
		fmt.Fprintf(w, "modularity: %.4f\n", *q.Modularity)
	}
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
