// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catstat

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// ViolinScale selects how violin widths compare across groups.
type ViolinScale int

const (
	// ScaleArea gives every violin the same area: densities are
	// normalized by the maximum density over all groups.
	ScaleArea ViolinScale = iota

	// ScaleWidth gives every violin the same maximum width.
	ScaleWidth

	// ScaleCount scales widths by the number of observations in
	// each group, relative to the largest group.
	ScaleCount
)

// Violin configures kernel density profiles for violin plots. All
// fields have reasonable default zero values.
type Violin struct {
	// N is the number of grid points to sample the density at.
	// If zero, 100 is used.
	N int

	// Bandwidth is the KDE bandwidth; if zero, Scott's rule is
	// applied per group.
	Bandwidth float64

	// Cut widens each group's grid beyond the data range by
	// Cut*bandwidth on both sides. If zero, 2 is used; negative
	// values clip the grid to the data range.
	Cut float64

	// Scale selects the cross-group width normalization.
	Scale ViolinScale
}

// ViolinStats is one group's density profile. Width holds the
// renderer-facing half-widths in [0, 1], scaled across groups
// according to the configured ViolinScale.
type ViolinStats struct {
	N             int
	Grid, Density []float64
	Width         []float64
}

// Stats computes the density profile of every group. Scaling is a
// cross-group concern, so all groups of a plotting call must be
// passed in a single invocation. Empty groups produce zero entries;
// single-observation groups produce a single spike of unit width.
func (v Violin) Stats(groups ...[]float64) []ViolinStats {
	n := v.N
	if n == 0 {
		n = 100
	}
	cut := v.Cut
	if cut == 0 {
		cut = 2
	} else if cut < 0 {
		cut = 0
	}

	out := make([]ViolinStats, len(groups))
	maxN := 0
	for _, g := range groups {
		if len(g) > maxN {
			maxN = len(g)
		}
	}
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(g) == 1 {
			out[i] = ViolinStats{N: 1, Grid: []float64{g[0]}, Density: []float64{1}}
			continue
		}
		sample := stats.Sample{Xs: g}
		bw := v.Bandwidth
		if bw == 0 {
			bw = stats.BandwidthScott(sample)
		}
		kde := stats.KDE{Sample: sample, Bandwidth: bw}
		min, max := sample.Bounds()
		min, max = min-cut*bw, max+cut*bw
		grid := vec.Linspace(min, max, n)
		out[i] = ViolinStats{
			N:       len(g),
			Grid:    grid,
			Density: vec.Map(kde.PDF, grid),
		}
	}

	v.scale(out, maxN)
	return out
}

func (v Violin) scale(out []ViolinStats, maxN int) {
	globalMax := 0.0
	for _, st := range out {
		for _, d := range st.Density {
			if d > globalMax {
				globalMax = d
			}
		}
	}
	for i, st := range out {
		if st.N == 0 {
			continue
		}
		norm := globalMax
		if v.Scale == ScaleWidth {
			norm = 0
			for _, d := range st.Density {
				if d > norm {
					norm = d
				}
			}
		}
		if norm == 0 {
			continue
		}
		factor := 1 / norm
		if v.Scale == ScaleCount && maxN > 0 {
			factor *= float64(st.N) / float64(maxN)
		}
		w := make([]float64, len(st.Density))
		for j, d := range st.Density {
			w[j] = d * factor
		}
		out[i].Width = w
	}
}
