// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/research-clusters/internal/features"
	"github.com/pdiddy/research-clusters/internal/quality"
	"github.com/pdiddy/research-clusters/internal/similarity"
	"github.com/pdiddy/research-clusters/internal/textproc"
	"github.com/pdiddy/research-clusters/pkg/types"
)

const uncategorized = "Uncategorized"

// buildClusters groups records by label and describes each group. Clusters
// are ordered by the first appearance of their label in records; members
// keep input order.
func buildClusters(records []types.Record, labels []int, x *features.Extractor, keywords int, newID quality.IDGenerator) ([]types.ClusterInfo, types.ClusterAssignment) {
	var order []int
	groups := make(map[int][]types.Record)
	for i, label := range labels {
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], records[i])
	}

	clusters := make([]types.ClusterInfo, 0, len(order))
	assignments := make(types.ClusterAssignment, len(records))
	for n, label := range order {
		members := groups[label]
		info := describe(members, x, keywords)
		info.ID = newID()
		info.Color = quality.Color(n)
		for _, r := range members {
			assignments[r.ID] = info.ID
		}
		clusters = append(clusters, info)
	}
	return clusters, assignments
}

func describe(members []types.Record, x *features.Extractor, keywords int) types.ClusterInfo {
	themes := x.ExtractThemes(members, keywords)
	ids := make([]string, len(members))
	for i, r := range members {
		ids[i] = r.ID
	}

	terms := make([]string, len(themes))
	for i, k := range themes {
		terms[i] = k.Term
	}
	description := fmt.Sprintf("%d papers", len(members))
	if len(terms) > 0 {
		description += "; key themes: " + strings.Join(terms[:min(3, len(terms))], ", ")
	}

	return types.ClusterInfo{
		Name:           clusterName(terms),
		Description:    description,
		Size:           len(members),
		Keywords:       themes,
		PaperIDs:       ids,
		Representative: representative(members),
		Coherence:      coherence(members),
	}
}

// clusterName title-cases the top two keywords, e.g. "Neural & Network
// Research".
func clusterName(terms []string) string {
	if len(terms) == 0 {
		return uncategorized
	}
	top := terms[:min(2, len(terms))]
	caser := cases.Title(language.English)
	return caser.String(strings.Join(top, " & ")) + " Research"
}

// representative returns the most cited member; ties go to the earliest.
func representative(members []types.Record) string {
	best := 0
	for i, r := range members {
		if r.Citations() > members[best].Citations() {
			best = i
		}
	}
	return members[best].ID
}

// coherence is the mean pairwise Jaccard similarity of member title word
// sets. A single member is fully coherent.
func coherence(members []types.Record) float64 {
	if len(members) < 2 {
		return 1
	}
	sets := make([]map[string]struct{}, len(members))
	for i, r := range members {
		sets[i] = textproc.WordSet(r.Title)
	}
	var sum float64
	var pairs int
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			sum += similarity.Jaccard(sets[i], sets[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
