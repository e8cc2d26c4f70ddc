// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beeswarm

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestCouldOverlap(t *testing.T) {
	placed := []Point{
		{Value: 0, Offset: 0, Radius: 0.5},
		{Value: 0.1, Offset: 1, Radius: 0.2},
		{Value: 0.5, Offset: 0.5, Radius: 0.5},
	}
	got := couldOverlap(Point{Value: 1, Offset: 1, Radius: 0.5}, placed)
	want := []Point{{Value: 0.5, Offset: 0.5, Radius: 0.5}}
	if !de(got, want) {
		t.Errorf("neighbors should be %v; got %v", want, got)
	}
}

func TestPositionCandidates(t *testing.T) {
	p := Point{Value: 1, Offset: 0, Radius: 0.5}
	neighbors := []Point{
		{Value: 1, Offset: 0, Radius: 0.5},
		{Value: 1.5, Offset: 0, Radius: 0.5},
	}
	got := positionCandidates(p, neighbors)

	dx1 := 1.05
	dx2 := math.Sqrt(1-0.5*0.5) * 1.05
	// Ordered by absolute distance from the center, zero first;
	// ties keep generation order.
	want := []float64{0, dx2, -dx2, -dx1, dx1}
	if !de(got, want) {
		t.Errorf("candidates should be %v; got %v", want, got)
	}
}

func TestFirstFit(t *testing.T) {
	p := Point{Value: 1, Radius: 0.5}
	neighbors := []Point{{Value: 1, Offset: 0, Radius: 0.5}}
	got := firstFit(p, []float64{0.5, 1, 1.5}, neighbors)
	if got != 1 {
		t.Errorf("first non-overlapping candidate should be 1; got %v", got)
	}
}

func TestArrangeEmpty(t *testing.T) {
	var s Swarm
	lay := s.Arrange(nil, nil)
	if len(lay.Points) != 0 || len(lay.Index) != 0 {
		t.Errorf("empty input should give an empty layout; got %+v", lay)
	}
}

func TestArrangeSingle(t *testing.T) {
	var s Swarm
	lay := s.Arrange([]float64{3}, []float64{0.5})
	if lay.Points[0].Offset != 0 {
		t.Errorf("a single point should not be displaced; got %v", lay.Points[0].Offset)
	}
	if lay.Points[0].Value != 3 {
		t.Errorf("value coordinate should be preserved; got %v", lay.Points[0].Value)
	}
}

func TestArrangeZeroRadius(t *testing.T) {
	var s Swarm
	lay := s.Arrange([]float64{1, 1, 1, 1}, []float64{0, 0, 0, 0})
	for i, p := range lay.Points {
		if p.Offset != 0 {
			t.Errorf("point %d: zero footprints need no displacement; got offset %v", i, p.Offset)
		}
	}
}

func uniform(n int, r float64) []float64 {
	rs := make([]float64, n)
	for i := range rs {
		rs[i] = r
	}
	return rs
}

func TestArrangeNonOverlap(t *testing.T) {
	// Dense values with a generous width: every pair of placed
	// points must respect the combined footprint.
	values := []float64{0, 0.1, 0.15, 0.3, 0.3, 0.42, 0.5, 0.5, 0.5, 0.77, 0.9, 1.0}
	radii := uniform(len(values), 0.25)
	s := Swarm{Width: 100}
	lay := s.Arrange(values, radii)

	const tol = 1e-9
	for i := range lay.Points {
		for j := i + 1; j < len(lay.Points); j++ {
			p, q := lay.Points[i], lay.Points[j]
			dx, dy := p.Offset-q.Offset, p.Value-q.Value
			if dist := math.Hypot(dx, dy); dist < p.Radius+q.Radius-tol {
				t.Errorf("points %d and %d overlap: distance %v < %v", i, j, dist, p.Radius+q.Radius)
			}
		}
	}
}

func TestArrangeValuePreservation(t *testing.T) {
	values := []float64{5, 1, 3, 3, 2, 4}
	s := Swarm{Width: 100}
	lay := s.Arrange(values, uniform(len(values), 0.6))

	for i, p := range lay.Points {
		if p.Value != values[lay.Index[i]] {
			t.Errorf("point %d: value %v does not match input %v", i, p.Value, values[lay.Index[i]])
		}
	}
	// Sorted ascending with stable ties.
	for i := 1; i < len(lay.Points); i++ {
		if lay.Points[i].Value < lay.Points[i-1].Value {
			t.Errorf("output not sorted at %d: %v < %v", i, lay.Points[i].Value, lay.Points[i-1].Value)
		}
		if lay.Points[i].Value == lay.Points[i-1].Value && lay.Index[i] < lay.Index[i-1] {
			t.Errorf("tie at %d broke input order", i)
		}
	}
}

func TestArrangeDeterminism(t *testing.T) {
	values := []float64{0.2, 0.2, 0.21, 0.4, 0.4, 0.4, 0.6, 0.8}
	radii := uniform(len(values), 0.3)
	var s Swarm
	a := s.Arrange(values, radii)
	b := s.Arrange(values, radii)
	if !de(a, b) {
		t.Errorf("identical inputs gave different layouts:\n%+v\n%+v", a, b)
	}
}

func TestArrangeRescaleBound(t *testing.T) {
	// Colliding values with a narrow width: the cluster must be
	// shrunk so the widest point sits on the half-width exactly.
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	radii := uniform(len(values), 0.55)
	s := Swarm{Width: 0.8}
	lay := s.Arrange(values, radii)

	max := 0.0
	displaced := 0
	for _, p := range lay.Points {
		if a := math.Abs(p.Offset); a > max {
			max = a
		}
		if p.Offset != 0 {
			displaced++
		}
	}
	if max != 0.4 {
		t.Errorf("max absolute offset should be exactly 0.4; got %v", max)
	}
	if displaced == 0 {
		t.Errorf("colliding points should be displaced into a second row")
	}
	for i, p := range lay.Points {
		if p.Value != values[lay.Index[i]] {
			t.Errorf("rescale must not touch value coordinates; point %d got %v", i, p.Value)
		}
	}
}

func TestIdenticalValues(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5}
	s := Swarm{Width: 0.8}
	lay := s.Arrange(values, uniform(len(values), 0.5))

	max := 0.0
	for _, p := range lay.Points {
		if a := math.Abs(p.Offset); a > max {
			max = a
		}
	}
	if max != 0.4 {
		t.Errorf("identical values should fan out to the half-width; got max %v", max)
	}
}

func TestGutter(t *testing.T) {
	var warned string
	s := Swarm{Width: 1, Warnf: func(format string, args ...interface{}) {
		warned = fmt.Sprintf(format, args...)
	}}

	// No clamping, no warning.
	points := []Point{{Offset: 0}, {Offset: 0}, {Offset: 0}}
	if frac := s.gutter(points); frac != 0 || warned != "" {
		t.Errorf("zero offsets should not clamp; got frac %v, warning %q", frac, warned)
	}

	points = []Point{{Offset: 0}, {Offset: -1}, {Offset: 0.4}, {Offset: 0.8}}
	frac := s.gutter(points)
	got := []float64{points[0].Offset, points[1].Offset, points[2].Offset, points[3].Offset}
	if want := []float64{0, -0.5, 0.4, 0.5}; !de(got, want) {
		t.Errorf("clamped offsets should be %v; got %v", want, got)
	}
	if frac != 0.5 {
		t.Errorf("clamped fraction should be 0.5; got %v", frac)
	}
	if want := "50.0% of the points cannot be placed"; len(warned) == 0 || warned[:len(want)] != want {
		t.Errorf("warning should start with %q; got %q", want, warned)
	}
}
