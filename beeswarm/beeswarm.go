// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package beeswarm places points along a single category position so
// that overlapping footprints are displaced sideways into the classic
// beeswarm cluster.
//
// The engine is a pure function of its input: points are processed in
// ascending value order, each one greedily taking the feasible
// category-axis offset closest to the center. Every point keeps its
// exact value-axis coordinate. After placement the cluster is shrunk,
// if needed, so its spread fits the configured width, and any stray
// points are clamped at the gutter.
package beeswarm

import (
	"math"
	"sort"
)

// candidateEps inflates pairwise contact offsets to guard against
// floating-point false touching.
const candidateEps = 1.05

// Point is a placed mark: its value-axis coordinate, its offset along
// the category axis relative to the category center, and its
// footprint radius in data units.
type Point struct {
	Value  float64
	Offset float64
	Radius float64
}

// Swarm configures the layout engine. The zero value is usable.
type Swarm struct {
	// Width is the full category-axis span allowed for the
	// cluster, analogous to a box width; offsets are confined to
	// +-Width/2. If zero, 0.8 is used.
	Width float64

	// WarnFraction is the fraction of gutter-clamped points above
	// which the advisory warning fires. If zero, 0.05 is used.
	WarnFraction float64

	// Warnf receives the clamping advisory. If nil, the advisory
	// is dropped. Layout always completes regardless.
	Warnf func(format string, args ...interface{})
}

// Layout is the result of Arrange. Points are ordered by ascending
// value; Index maps each one back to its input position.
type Layout struct {
	Points []Point
	Index  []int

	// Clamped is the fraction of points that had to be clamped at
	// the gutter after rescaling.
	Clamped float64
}

func (s *Swarm) width() float64 {
	if s.Width == 0 {
		return 0.8
	}
	return s.Width
}

func (s *Swarm) warnFraction() float64 {
	if s.WarnFraction == 0 {
		return 0.05
	}
	return s.WarnFraction
}

// Arrange computes non-overlapping offsets for the given values.
// radii gives each point's footprint radius and must have the same
// length as values. The input slices are not modified.
//
// Arrange is deterministic: equal inputs produce identical layouts.
// Ties in value keep their input order.
func (s *Swarm) Arrange(values, radii []float64) Layout {
	if len(values) != len(radii) {
		panic("beeswarm: values and radii lengths differ")
	}
	n := len(values)
	lay := Layout{Points: make([]Point, 0, n), Index: make([]int, n)}
	if n == 0 {
		return lay
	}

	for i := range lay.Index {
		lay.Index[i] = i
	}
	sort.SliceStable(lay.Index, func(i, j int) bool {
		return values[lay.Index[i]] < values[lay.Index[j]]
	})

	for _, i := range lay.Index {
		p := Point{Value: values[i], Radius: radii[i]}
		neighbors := couldOverlap(p, lay.Points)
		cands := positionCandidates(p, neighbors)
		p.Offset = firstFit(p, cands, neighbors)
		lay.Points = append(lay.Points, p)
	}

	s.rescale(lay.Points)
	lay.Clamped = s.gutter(lay.Points)
	return lay
}

// couldOverlap selects the already-placed points close enough along
// the value axis to possibly collide with p after displacement. The
// placed slice is in ascending value order, so the scan walks
// backwards and stops at the first point too far below p. This is a
// necessary, not sufficient, filter.
func couldOverlap(p Point, placed []Point) []Point {
	var neighbors []Point
	for j := len(placed) - 1; j >= 0; j-- {
		q := placed[j]
		if p.Value-q.Value >= p.Radius+q.Radius {
			break
		}
		neighbors = append(neighbors, q)
	}
	// Restore placement order.
	for i, j := 0, len(neighbors)-1; i < j; i, j = i+1, j-1 {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	}
	return neighbors
}

// positionCandidates generates candidate offsets for p: zero first,
// then for each neighbor the two offsets at which p would just touch
// it, inflated by candidateEps. Candidates are ordered by absolute
// distance from the center, ties keeping generation order, which
// alternates sides per neighbor.
func positionCandidates(p Point, neighbors []Point) []float64 {
	cands := make([]float64, 1, 1+2*len(neighbors))
	cands[0] = 0

	leftFirst := true
	for _, q := range neighbors {
		rsum := p.Radius + q.Radius
		if rsum <= 0 {
			// Zero footprints cannot collide.
			continue
		}
		dy := p.Value - q.Value
		dx := math.Sqrt(math.Max(rsum*rsum-dy*dy, 0)) * candidateEps
		cl, cr := q.Offset-dx, q.Offset+dx
		if leftFirst {
			cands = append(cands, cl, cr)
		} else {
			cands = append(cands, cr, cl)
		}
		leftFirst = !leftFirst
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return math.Abs(cands[i]) < math.Abs(cands[j])
	})
	return cands
}

// firstFit returns the first candidate that clears every neighbor.
// If none does, the offset is recomputed from the closest-in-value
// neighbor alone; that fallback can leave residual overlap with other
// neighbors under pathological radius mixes, but it always returns a
// finite offset and never fails.
func firstFit(p Point, cands []float64, neighbors []Point) float64 {
	for _, c := range cands {
		ok := true
		for _, q := range neighbors {
			dx, dy := c-q.Offset, p.Value-q.Value
			rsum := p.Radius + q.Radius
			if dx*dx+dy*dy < rsum*rsum {
				ok = false
				break
			}
		}
		if ok {
			return c
		}
	}

	// Rare path: extremely tight packing.
	best, bestDy := 0, math.Inf(1)
	for j, q := range neighbors {
		if dy := math.Abs(p.Value - q.Value); dy < bestDy {
			best, bestDy = j, dy
		}
	}
	q := neighbors[best]
	rsum := p.Radius + q.Radius
	dy := p.Value - q.Value
	dx := math.Sqrt(math.Max(rsum*rsum-dy*dy, 0)) * candidateEps
	if l, r := q.Offset-dx, q.Offset+dx; math.Abs(l) < math.Abs(r) {
		return l
	}
	return q.Offset + dx
}

// rescale shrinks all offsets by a common factor when the cluster
// spread exceeds the half-width limit, so the maximum absolute offset
// equals the limit exactly. It never expands.
func (s *Swarm) rescale(points []Point) {
	half := s.width() / 2
	max := 0.0
	for _, p := range points {
		if a := math.Abs(p.Offset); a > max {
			max = a
		}
	}
	if max <= half || max == 0 {
		return
	}
	for i := range points {
		// Divide before multiplying so the widest point lands
		// on the limit exactly.
		points[i].Offset = points[i].Offset / max * half
	}
}

// gutter clamps offsets that still exceed the half-width limit and
// returns the fraction of points affected, surfacing the advisory
// through Warnf when the fraction passes the threshold.
func (s *Swarm) gutter(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	half := s.width() / 2
	clamped := 0
	for i := range points {
		switch {
		case points[i].Offset < -half:
			points[i].Offset = -half
			clamped++
		case points[i].Offset > half:
			points[i].Offset = half
			clamped++
		}
	}
	frac := float64(clamped) / float64(len(points))
	if frac > s.warnFraction() && s.Warnf != nil {
		s.Warnf("%.1f%% of the points cannot be placed; you may want to decrease the size of the markers or use stripplot", frac*100)
	}
	return frac
}
