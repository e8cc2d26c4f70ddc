// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catplot

import (
	"math/rand"

	"github.com/rserran/catplot/beeswarm"
	"github.com/rserran/catplot/catdata"
)

// Strip is the strip-plot kind: points at their category center with
// optional uniform jitter.
type Strip struct {
	// Jitter is the jitter span as a fraction of the cell width:
	// offsets are uniform in +-Jitter*width/2. Zero draws aligned
	// points.
	Jitter float64

	// Seed seeds the jitter source. Equal seeds give identical
	// layouts; there is no process-wide random state.
	Seed int64

	// Width is the category slot width. If zero, 0.8 is used.
	Width float64

	// Dodge separates hue levels side by side within each
	// category instead of overlaying them.
	Dodge bool
}

// Plot resolves in and lays out one mark per observation.
func (s Strip) Plot(in catdata.Input) (*Marks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	width := defaultWidth(s.Width)
	rng := rand.New(rand.NewSource(s.Seed))

	m := &Marks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, width, s.Dodge) {
		for _, v := range c.values {
			off := 0.0
			if s.Jitter != 0 {
				off = (rng.Float64()*2 - 1) * s.Jitter * c.width / 2
			}
			m.Points = append(m.Points, Mark{
				Cat: c.center + off, Val: v,
				Group: c.group, Hue: c.hue,
			})
		}
	}
	return m, nil
}

// SwarmPlot is the swarm-plot kind: non-overlapping points arranged
// by the beeswarm engine.
type SwarmPlot struct {
	// Radius is the footprint radius of every point in data
	// units. If zero, 0.05 is used.
	Radius float64

	// Width is the category slot width. If zero, 0.8 is used.
	Width float64

	// Dodge separates hue levels side by side within each
	// category.
	Dodge bool

	// Warnf receives the gutter-clamping advisory from the layout
	// engine. If nil, the advisory is dropped.
	Warnf func(format string, args ...interface{})
}

// Plot resolves in and computes a beeswarm arrangement per cell. The
// value coordinate of every mark equals its observation exactly; only
// the category coordinate is displaced.
func (s SwarmPlot) Plot(in catdata.Input) (*Marks, error) {
	r, err := catdata.Resolve(in)
	if err != nil {
		return nil, err
	}
	width := defaultWidth(s.Width)
	radius := s.Radius
	if radius == 0 {
		radius = 0.05
	}

	m := &Marks{Orient: r.Orient, Categories: r.Labels(), HueLevels: r.HueLevels}
	for _, c := range cells(r, width, s.Dodge) {
		radii := make([]float64, len(c.values))
		for i := range radii {
			radii[i] = radius
		}
		sw := beeswarm.Swarm{Width: c.width, Warnf: s.Warnf}
		lay := sw.Arrange(c.values, radii)
		for _, p := range lay.Points {
			m.Points = append(m.Points, Mark{
				Cat: c.center + p.Offset, Val: p.Value,
				Group: c.group, Hue: c.hue,
			})
		}
	}
	return m, nil
}
