// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var palette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
	"#1F77B4", "#2CA02C",
}

// Color returns the palette color for the i-th cluster, cycling when i
// exceeds the palette size.
func Color(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// PaletteSize returns the number of distinct colors.
func PaletteSize() int { return len(palette) }

// IDGenerator produces cluster identifiers.
type IDGenerator func() string

var idCounter atomic.Uint64

// NewIDGenerator returns a generator of IDs in the form
// "cluster_<unix-millis>_<counter>_<random>". The process-wide counter
// makes IDs unique within a process; the random suffix is not meant to be
// cryptographically unique.
func NewIDGenerator(now func() time.Time) IDGenerator {
	if now == nil {
		now = time.Now
	}
	return func() string {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		return fmt.Sprintf("cluster_%d_%d_%s", now().UnixMilli(), idCounter.Add(1), suffix)
	}
}
