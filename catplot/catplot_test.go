// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catplot

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/rserran/catplot/catdata"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestHueOffsets(t *testing.T) {
	if got := hueOffsets(0, 0.8); got != nil {
		t.Errorf("no hue levels should give no offsets; got %v", got)
	}
	if got, want := hueOffsets(2, 0.8), []float64{-0.2, 0.2}; !de(got, want) {
		t.Errorf("two levels should dodge to %v; got %v", want, got)
	}
	got := hueOffsets(3, 0.6)
	if got[1] != 0 {
		t.Errorf("middle of three levels should sit on the center; got %v", got[1])
	}
	if got[0] != -got[2] {
		t.Errorf("outer levels should be symmetric; got %v and %v", got[0], got[2])
	}
}

func TestCellsDodge(t *testing.T) {
	r := &catdata.Resolved{
		Orient:    catdata.Vertical,
		HueLevels: []string{"h", "i"},
		Groups: []catdata.Group{{
			Label: "a",
			Hues: []catdata.Subgroup{
				{Label: "h", Values: []float64{1}},
				{Label: "i", Values: []float64{2}},
			},
		}},
	}

	cs := cells(r, 0.8, true)
	if len(cs) != 2 {
		t.Fatalf("should have one cell per hue level; got %d", len(cs))
	}
	if cs[0].center != -0.2 || cs[1].center != 0.2 {
		t.Errorf("dodged centers should be -0.2 and 0.2; got %v and %v", cs[0].center, cs[1].center)
	}
	// Each level gets half the slot, shrunk by the 2% gap.
	width := 0.8
	want := width / float64(2) * 0.98
	if cs[0].width != want || cs[1].width != want {
		t.Errorf("dodged cells should have width %v; got %v and %v", want, cs[0].width, cs[1].width)
	}

	// Without dodge, hue levels overlap at the category center.
	cs = cells(r, 0.8, false)
	for i, c := range cs {
		if c.center != 0 || c.width != 0.8 {
			t.Errorf("cell %d: undodged hue should keep the full slot; got center %v width %v", i, c.center, c.width)
		}
	}
}

func wideInput(vals ...[]float64) catdata.Wide {
	w := catdata.Wide{}
	for i, v := range vals {
		w.Columns = append(w.Columns, catdata.Floats(v))
		w.Names = append(w.Names, string(rune('a'+i)))
	}
	return w
}

func TestStripAligned(t *testing.T) {
	m, err := Strip{}.Plot(wideInput([]float64{1, 2}, []float64{3}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !de(m.Categories, want) {
		t.Errorf("categories should be %v; got %v", want, m.Categories)
	}
	for i, pt := range m.Points {
		if pt.Cat != float64(pt.Group) {
			t.Errorf("point %d: without jitter Cat should equal the group position; got %v for group %d", i, pt.Cat, pt.Group)
		}
		if pt.Hue != -1 {
			t.Errorf("point %d: no hue grouping should mark Hue as -1; got %d", i, pt.Hue)
		}
	}
}

func TestStripJitter(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	in := wideInput(vals)

	s := Strip{Jitter: 0.5, Seed: 1}
	m, err := s.Plot(in)
	if err != nil {
		t.Fatal(err)
	}
	// Jitter 0.5 of the default 0.8 slot keeps offsets in +-0.2.
	for i, pt := range m.Points {
		if off := math.Abs(pt.Cat); off > 0.2 {
			t.Errorf("point %d: jitter offset %v exceeds the jitter span", i, off)
		}
		if pt.Val != vals[i] {
			t.Errorf("point %d: value coordinate should be untouched; got %v", i, pt.Val)
		}
	}

	m2, err := s.Plot(in)
	if err != nil {
		t.Fatal(err)
	}
	if !de(m, m2) {
		t.Errorf("equal seeds should give identical layouts")
	}
	m3, err := Strip{Jitter: 0.5, Seed: 2}.Plot(in)
	if err != nil {
		t.Fatal(err)
	}
	if de(m, m3) {
		t.Errorf("different seeds should give different layouts")
	}
}

func TestSwarmPlot(t *testing.T) {
	vals := []float64{1, 1, 1, 1.05, 1.1, 2, 2, 3}
	m, err := SwarmPlot{Radius: 0.2}.Plot(wideInput(vals))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Points) != len(vals) {
		t.Fatalf("should lay out every observation; got %d of %d", len(m.Points), len(vals))
	}
	var got []float64
	for i, pt := range m.Points {
		if off := math.Abs(pt.Cat); off > 0.4 {
			t.Errorf("point %d: offset %v escapes the half-width", i, off)
		}
		got = append(got, pt.Val)
	}
	want := append([]float64(nil), vals...)
	sort.Float64s(got)
	sort.Float64s(want)
	if !de(got, want) {
		t.Errorf("value coordinates should be the input multiset; got %v", got)
	}
}

func TestCountPlotEmptyCategory(t *testing.T) {
	in := catdata.Wide{
		Columns: []catdata.Series{catdata.Floats([]float64{1, 2})},
		Names:   []string{"a"},
		Order:   []string{"a", "b"},
	}
	m, err := CountPlot{}.Plot(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !de(m.Categories, want) {
		t.Errorf("categories should be %v; got %v", want, m.Categories)
	}
	if len(m.Counts) != 2 {
		t.Fatalf("count plots keep empty cells; got %d marks", len(m.Counts))
	}
	if m.Counts[0].Count != 2 || m.Counts[1].Count != 0 {
		t.Errorf("counts should be 2 and 0; got %d and %d", m.Counts[0].Count, m.Counts[1].Count)
	}
}

func TestBarPlot(t *testing.T) {
	m, err := BarPlot{}.Plot(wideInput([]float64{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Stats) != 1 {
		t.Fatalf("should have one aggregate; got %d", len(m.Stats))
	}
	st := m.Stats[0]
	if st.Center != 0 || st.Width != 0.8 {
		t.Errorf("aggregate should fill the category slot; got center %v width %v", st.Center, st.Width)
	}
	if st.Stats.N != 3 || st.Stats.Value != 2 {
		t.Errorf("default estimator should be the mean; got %+v", st.Stats)
	}
}

func TestBoxPlotDodge(t *testing.T) {
	in := catdata.Long{
		X:   catdata.Vals(catdata.Strings([]string{"a", "a", "a", "a"})),
		Y:   catdata.Vals(catdata.Floats([]float64{1, 2, 3, 4})),
		Hue: catdata.Vals(catdata.Strings([]string{"h", "i", "h", "i"})),
	}
	m, err := BoxPlot{Dodge: true}.Plot(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"h", "i"}; !de(m.HueLevels, want) {
		t.Fatalf("hue levels should be %v; got %v", want, m.HueLevels)
	}
	if len(m.Boxes) != 2 {
		t.Fatalf("should have one box per hue level; got %d", len(m.Boxes))
	}
	if m.Boxes[0].Center != -0.2 || m.Boxes[1].Center != 0.2 {
		t.Errorf("dodged boxes should sit at -0.2 and 0.2; got %v and %v", m.Boxes[0].Center, m.Boxes[1].Center)
	}
	width := 0.8
	if want := width / float64(2) * 0.98; m.Boxes[0].Width != want {
		t.Errorf("dodged boxes should have width %v; got %v", want, m.Boxes[0].Width)
	}
	if m.Boxes[0].Stats.Median != 2 || m.Boxes[1].Stats.Median != 3 {
		t.Errorf("medians should be 2 and 3; got %v and %v", m.Boxes[0].Stats.Median, m.Boxes[1].Stats.Median)
	}
}
