// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catplot composes the data resolver, the statistical
// summaries, and the beeswarm layout engine into renderer-ready mark
// sets for the categorical plot kinds.
//
// Each plot kind is a small immutable configuration value with a Plot
// method; there is no shared state between calls. Categories sit at
// integer positions 0, 1, 2, … along the categorical axis, and every
// mark carries its final categorical-axis coordinate, so a renderer
// draws marks without re-deriving any layout.
package catplot

import "github.com/rserran/catplot/catdata"

// Marks is a point-mark layout: one entry per drawn point, plus the
// category and hue orders a renderer needs for ticks and legends.
type Marks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Points     []Mark
}

// Mark is a single drawn point. Cat is its final category-axis
// coordinate (category center plus any dodge and layout offset) and
// Val its untouched value-axis coordinate.
type Mark struct {
	Cat float64
	Val float64

	// Group and Hue index into Categories and HueLevels; Hue is
	// -1 when the plot has no hue grouping.
	Group int
	Hue   int
}

// dodgeGap shrinks dodged hue slots so adjacent levels do not touch.
const dodgeGap = 0.98

// cell is one drawable unit: a whole category, or one hue level
// within a category when dodging.
type cell struct {
	center     float64
	width      float64
	group, hue int
	values     []float64
	units      []string
}

// cells enumerates the drawable cells of a resolved dataset in
// display order. With a hue grouping and dodge enabled, each hue
// level occupies its own slot of width width/len(hue), shrunk by 2%
// to leave a visible gap between adjacent levels; without dodge, hue
// levels overlap at the category center.
func cells(r *catdata.Resolved, width float64, dodge bool) []cell {
	var cs []cell
	nh := len(r.HueLevels)
	offsets := hueOffsets(nh, width)
	for gi, g := range r.Groups {
		center := float64(gi)
		if g.Hues == nil {
			cs = append(cs, cell{center, width, gi, -1, g.Values, g.Units})
			continue
		}
		for hi, sub := range g.Hues {
			c := cell{center, width, gi, hi, sub.Values, sub.Units}
			if dodge && nh > 0 {
				c.center += offsets[hi]
				c.width = width / float64(nh) * dodgeGap
			}
			cs = append(cs, c)
		}
	}
	return cs
}

// hueOffsets returns the category-axis displacement of each hue level
// when dodging: evenly spaced slots centered on the category.
func hueOffsets(n int, width float64) []float64 {
	if n == 0 {
		return nil
	}
	step := width / float64(n)
	off := make([]float64, n)
	for i := range off {
		off[i] = step*float64(i) - step*float64(n-1)/2
	}
	return off
}

func defaultWidth(w float64) float64 {
	if w == 0 {
		return 0.8
	}
	return w
}
