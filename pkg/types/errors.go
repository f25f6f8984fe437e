// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors shared across the pipeline. Components wrap them with
// context; callers match with errors.Is.
var (
	// ErrInvalidInput reports malformed arguments, such as vectors of
	// different lengths passed to a similarity function.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAlgorithm reports an unrecognized ClusteringConfig.Algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
