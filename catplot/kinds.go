// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catplot

import (
	"github.com/rserran/catplot/catdata"
	"github.com/rserran/catplot/catstat"
)

// BoxMarks is a box-plot layout: one box per non-empty cell.
type BoxMarks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Boxes      []BoxMark
}

// BoxMark positions one box summary on the category axis.
type BoxMark struct {
	Center, Width float64
	Group, Hue    int
	Stats         catstat.BoxStats
}

// BoxPlot is the box-plot kind.
type BoxPlot struct {
	// Width is the category slot width. If zero, 0.8 is used.
	Width float64

	// Whis is the whisker reach in IQRs. If zero, 1.5 is used.
	Whis float64

	// Dodge separates hue levels side by side within each
	// category.
	Dodge bool
}

// Plot resolves in and summarizes each cell. Empty cells draw no box
// but their category still appears in Categories for tick placement.
func (b BoxPlot) Plot(in catdata.Input) (*BoxMarks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	m := &BoxMarks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, defaultWidth(b.Width), b.Dodge) {
		if len(c.values) == 0 {
			continue
		}
		m.Boxes = append(m.Boxes, BoxMark{
			Center: c.center, Width: c.width,
			Group: c.group, Hue: c.hue,
			Stats: catstat.Box(c.values, b.Whis),
		})
	}
	return m, nil
}

// BoxenMarks is a letter-value plot layout.
type BoxenMarks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Boxes      []BoxenMark
}

// BoxenMark positions one letter-value summary on the category axis.
type BoxenMark struct {
	Center, Width float64
	Group, Hue    int
	Stats         catstat.LetterValueStats
}

// BoxenPlot is the letter-value ("boxen") plot kind.
type BoxenPlot struct {
	Width float64
	Dodge bool
}

func (b BoxenPlot) Plot(in catdata.Input) (*BoxenMarks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	m := &BoxenMarks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, defaultWidth(b.Width), b.Dodge) {
		if len(c.values) == 0 {
			continue
		}
		m.Boxes = append(m.Boxes, BoxenMark{
			Center: c.center, Width: c.width,
			Group: c.group, Hue: c.hue,
			Stats: catstat.LetterValues(c.values),
		})
	}
	return m, nil
}

// ViolinMarks is a violin-plot layout.
type ViolinMarks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Violins    []ViolinMark
}

// ViolinMark positions one density profile on the category axis. The
// drawn half-width at grid point i is Width/2 * Stats.Width[i].
type ViolinMark struct {
	Center, Width float64
	Group, Hue    int
	Stats         catstat.ViolinStats
}

// ViolinPlot is the violin-plot kind.
type ViolinPlot struct {
	Width  float64
	Dodge  bool
	Violin catstat.Violin // density configuration
}

// Plot resolves in and computes density profiles for all cells in one
// pass, since width scaling compares groups against each other.
func (v ViolinPlot) Plot(in catdata.Input) (*ViolinMarks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	cs := cells(r, defaultWidth(v.Width), v.Dodge)
	groups := make([][]float64, len(cs))
	for i, c := range cs {
		groups[i] = c.values
	}
	stats := v.Violin.Stats(groups...)

	m := &ViolinMarks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for i, c := range cs {
		if stats[i].N == 0 {
			continue
		}
		m.Violins = append(m.Violins, ViolinMark{
			Center: c.center, Width: c.width,
			Group: c.group, Hue: c.hue,
			Stats: stats[i],
		})
	}
	return m, nil
}

// AggMarks is a bar- or point-plot layout: one aggregated statistic
// per non-empty cell.
type AggMarks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Stats      []AggMark
}

// AggMark positions one aggregate on the category axis.
type AggMark struct {
	Center, Width float64
	Group, Hue    int
	Stats         catstat.AggResult
}

// BarPlot is the bar-plot kind: a pluggable estimator with an error
// interval per cell.
type BarPlot struct {
	Width float64
	Dodge bool

	// Estimator reduces each cell; nil means the mean.
	Estimator catstat.Estimator

	// Error computes the interval; nil means +-1 standard
	// deviation, catstat.NoError omits it.
	Error catstat.ErrorFn
}

func (b BarPlot) Plot(in catdata.Input) (*AggMarks, error) {
	return aggPlot(in, defaultWidth(b.Width), b.Dodge, b.Estimator, b.Error)
}

// PointPlot is the point-plot kind; it shares the bar-plot statistic
// and differs only in rendering.
type PointPlot struct {
	Width     float64
	Dodge     bool
	Estimator catstat.Estimator
	Error     catstat.ErrorFn
}

func (p PointPlot) Plot(in catdata.Input) (*AggMarks, error) {
	return aggPlot(in, defaultWidth(p.Width), p.Dodge, p.Estimator, p.Error)
}

func aggPlot(in catdata.Input, width float64, dodge bool, est catstat.Estimator, errFn catstat.ErrorFn) (*AggMarks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	m := &AggMarks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, width, dodge) {
		if len(c.values) == 0 {
			continue
		}
		m.Stats = append(m.Stats, AggMark{
			Center: c.center, Width: c.width,
			Group: c.group, Hue: c.hue,
			Stats: catstat.Aggregate(c.values, est, errFn),
		})
	}
	return m, nil
}

// CountMarks is a count-plot layout.
type CountMarks struct {
	Orient     catdata.Orient
	Categories []string
	HueLevels  []string
	Counts     []CountMark
}

// CountMark is the observation count of one cell. Empty cells are
// included with Count == 0 so bars line up with category ticks.
type CountMark struct {
	Center, Width float64
	Group, Hue    int
	Count         int
}

// CountPlot is the count-plot kind.
type CountPlot struct {
	Width float64
	Dodge bool
}

func (cp CountPlot) Plot(in catdata.Input) (*CountMarks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	m := &CountMarks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, defaultWidth(cp.Width), cp.Dodge) {
		m.Counts = append(m.Counts, CountMark{
			Center: c.center, Width: c.width,
			Group: c.group, Hue: c.hue,
			Count: len(c.values),
		})
	}
	return m, nil
}
