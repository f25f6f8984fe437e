// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"github.com/pdiddy/research-clusters/internal/features"
	"github.com/pdiddy/research-clusters/internal/scale"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// Combine builds the clustering matrix from feature vectors. Each enabled
// group is scaled independently under mode, multiplied by its weight, and
// appended in the order text, network, temporal, categorical. Disabled
// groups contribute no columns.
func Combine(vectors []features.FeatureVector, cfg types.FeatureConfig, mode types.ScalingMode) [][]float64 {
	matrix := make([][]float64, len(vectors))
	for _, g := range types.FeatureGroups {
		toggle := cfg.Toggle(g)
		if !toggle.Enabled {
			continue
		}

		rows := make([][]float64, len(vectors))
		for i, v := range vectors {
			rows[i] = v.Group(g)
		}
		s := scale.Fit(rows, mode)
		for i, row := range rows {
			scaled := s.Apply(row)
			for d := range scaled {
				scaled[d] *= toggle.Weight
			}
			matrix[i] = append(matrix[i], scaled...)
		}
	}
	for i := range matrix {
		if matrix[i] == nil {
			matrix[i] = []float64{}
		}
	}
	return matrix
}
