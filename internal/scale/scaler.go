// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scale normalizes feature dimensions with z-score or min-max
// scaling. Each feature group is fit with its own Scaler.
package scale

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// Params holds the fitted statistics of one dimension. Mean and Std are
// used for z-score scaling; Min and Max for min-max scaling.
type Params struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Scaler applies per-dimension normalization fitted over a set of rows.
type Scaler struct {
	mode   types.ScalingMode
	params []Params
}

// Fit computes per-dimension parameters over rows, which must all have
// the same length. A standard deviation of 0 is stored as 1, and
// min == max is stored as max = min + 1, so constant dimensions scale
// to 0.
func Fit(rows [][]float64, mode types.ScalingMode) *Scaler {
	s := &Scaler{mode: mode}
	if len(rows) == 0 {
		return s
	}

	dims := len(rows[0])
	s.params = make([]Params, dims)
	column := make([]float64, len(rows))
	for d := 0; d < dims; d++ {
		for i, row := range rows {
			column[i] = row[d]
		}
		s.params[d] = fitColumn(column)
	}
	return s
}

func fitColumn(values []float64) Params {
	mean, std := stat.PopMeanStdDev(values, nil)
	if std == 0 {
		std = 1
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		hi = lo + 1
	}
	return Params{Mean: mean, Std: std, Min: lo, Max: hi}
}

// Dims returns the number of fitted dimensions.
func (s *Scaler) Dims() int {
	return len(s.params)
}

// Params returns the fitted parameters of dimension d.
func (s *Scaler) Params(d int) Params {
	return s.params[d]
}

// Apply returns a scaled copy of row.
func (s *Scaler) Apply(row []float64) []float64 {
	out := make([]float64, len(row))
	for d, v := range row {
		if d >= len(s.params) {
			out[d] = v
			continue
		}
		out[d] = Value(v, s.params[d], s.mode)
	}
	return out
}

// Value scales a single value under mode.
func Value(v float64, p Params, mode types.ScalingMode) float64 {
	if mode == types.ScalingMinMax {
		return (v - p.Min) / (p.Max - p.Min)
	}
	return (v - p.Mean) / p.Std
}
