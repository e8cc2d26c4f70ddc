// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catdata

import (
	"math"
	"strconv"
)

// Resolved is the output of Resolve: the orientation, the ordered
// category groups, and the global hue level order. It is built once
// per plotting call and must be treated as read-only afterwards so
// every layout pass sees identical category positions.
type Resolved struct {
	// Orient is the resolved orientation; never OrientInfer.
	Orient Orient

	// Groups holds one entry per category label, in display
	// order. A group may be empty if an explicit order named a
	// label with no observations.
	Groups []Group

	// HueLevels is the hue display order, computed once across
	// all categories. It is empty when no hue variable was given.
	HueLevels []string
}

// Labels returns the category labels in display order.
func (r *Resolved) Labels() []string {
	ls := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		ls[i] = g.Label
	}
	return ls
}

// Group is one category: its label and the aligned subsequences of
// values and units whose grouping key equals the label. Values with
// missing (NaN) measurements are excluded, but the group itself is
// kept; only a missing label drops rows entirely.
type Group struct {
	Label  string
	Values []float64
	Units  []string

	// Hues partitions the group by hue level, one entry per
	// Resolved.HueLevels in the same order. It is nil when no hue
	// variable was given.
	Hues []Subgroup
}

// Subgroup is a hue level within one category group.
type Subgroup struct {
	Label  string
	Values []float64
	Units  []string
}

// Resolve normalizes a classified input into ordered per-group value
// sequences. It is all-or-nothing: on a configuration error no
// partial result is returned.
func Resolve(in Input) (*Resolved, error) {
	if in == nil {
		return nil, configErrorf("data", "no input given")
	}
	return in.resolve()
}

func (w Wide) resolve() (*Resolved, error) {
	if !w.Hue.isZero() {
		return nil, configErrorf("hue", "cannot use hue with wide-form data")
	}

	names, lookup, err := w.columns()
	if err != nil {
		return nil, err
	}
	order := w.Order
	if order == nil {
		order = names
	}

	r := &Resolved{Orient: Vertical}
	for _, label := range order {
		g := Group{Label: label}
		if col, ok := lookup[label]; ok {
			for _, v := range col.values {
				if math.IsNaN(v) {
					continue
				}
				g.Values = append(g.Values, v)
			}
		}
		r.Groups = append(r.Groups, g)
	}
	return r, nil
}

// columns materializes the wide columns under their labels.
func (w Wide) columns() ([]string, map[string]*column, error) {
	var names []string
	lookup := make(map[string]*column)
	add := func(name string, s Series) error {
		col, err := materialize(name, s)
		if err != nil {
			return err
		}
		if !col.numeric {
			return configErrorf(name, "wide-form column %q is not numeric", name)
		}
		names = append(names, name)
		lookup[name] = col
		return nil
	}

	if w.Data != nil {
		for _, name := range w.Data.Columns() {
			if err := add(name, Series{Data: w.Data.Column(name)}); err != nil {
				return nil, nil, err
			}
		}
		return names, lookup, nil
	}
	if w.Names != nil && len(w.Names) != len(w.Columns) {
		return nil, nil, configErrorf("data", "have %d column names for %d columns", len(w.Names), len(w.Columns))
	}
	for i, s := range w.Columns {
		name := strconv.Itoa(i)
		if w.Names != nil {
			name = w.Names[i]
		}
		if err := add(name, s); err != nil {
			return nil, nil, err
		}
	}
	return names, lookup, nil
}

func (f Flat) resolve() (*Resolved, error) {
	col, err := materialize("data", f.Values)
	if err != nil {
		return nil, err
	}
	orient := f.Orient
	if orient == OrientInfer {
		orient = Vertical
	}
	g := Group{Label: ""}
	for _, v := range col.values {
		if math.IsNaN(v) {
			continue
		}
		g.Values = append(g.Values, v)
	}
	return &Resolved{Orient: orient, Groups: []Group{g}}, nil
}

func (l Long) resolve() (*Resolved, error) {
	xcol, err := l.varColumn("x", l.X)
	if err != nil {
		return nil, err
	}
	ycol, err := l.varColumn("y", l.Y)
	if err != nil {
		return nil, err
	}
	huecol, err := l.varColumn("hue", l.Hue)
	if err != nil {
		return nil, err
	}
	unitcol, err := l.varColumn("units", l.Unit)
	if err != nil {
		return nil, err
	}
	if xcol == nil && ycol == nil {
		return nil, configErrorf("x", "at least one of x and y is required")
	}

	orient := l.Orient
	if orient == OrientInfer {
		orient, err = l.inferOrient(xcol, ycol)
		if err != nil {
			return nil, err
		}
	}

	// With both axes present the orientation picks the grouping
	// column; with one axis the lone variable is always the value
	// axis.
	var catcol, valcol *column
	switch {
	case xcol == nil:
		valcol = ycol
	case ycol == nil:
		valcol = xcol
	case orient == Horizontal:
		catcol, valcol = ycol, xcol
	default:
		catcol, valcol = xcol, ycol
	}

	if err := align("data", catcol, valcol, huecol, unitcol); err != nil {
		return nil, err
	}

	r := &Resolved{Orient: orient}
	if huecol != nil {
		r.HueLevels = levelOrder(huecol, l.HueOrder)
	}

	if catcol == nil {
		all := make([]int, valcol.len())
		for i := range all {
			all[i] = i
		}
		r.Groups = []Group{gatherGroup("", all, valcol, unitcol, huecol, r.HueLevels)}
		return r, nil
	}

	for _, label := range levelOrder(catcol, l.Order) {
		var rows []int
		for i, key := range catcol.labels {
			if key == label && key != missingLabel {
				rows = append(rows, i)
			}
		}
		r.Groups = append(r.Groups, gatherGroup(label, rows, valcol, unitcol, huecol, r.HueLevels))
	}
	return r, nil
}

// varColumn materializes a variable, resolving column references
// against the backing table.
func (l Long) varColumn(param string, v Var) (*column, error) {
	if v.isZero() {
		return nil, nil
	}
	if v.Name != "" {
		if l.Data == nil {
			return nil, configErrorf(param, "column %q referenced but no table was given", v.Name)
		}
		data := l.Data.Column(v.Name)
		if data == nil {
			return nil, configErrorf(param, "could not interpret value %q as a column name", v.Name)
		}
		return materialize(param, Series{Data: data})
	}
	return materialize(param, v.Series)
}

// inferOrient decides which axis is categorical when no explicit hint
// was given.
func (l Long) inferOrient(xcol, ycol *column) (Orient, error) {
	switch {
	case ycol == nil:
		// Only x: it is the value axis.
		return Horizontal, nil
	case xcol == nil:
		return Vertical, nil
	case !xcol.numeric && ycol.numeric:
		return Vertical, nil
	case xcol.numeric && !ycol.numeric:
		return Horizontal, nil
	case !xcol.numeric && !ycol.numeric:
		// Both categorical: y keeps the value axis.
		return Vertical, nil
	}
	// Both numeric. A raw sequence, unlike a column reference,
	// typically carries repeated grouping keys, so a lone raw
	// sequence is taken as the grouping variable.
	xraw, yraw := l.X.Name == "", l.Y.Name == ""
	if xraw != yraw {
		if xraw {
			return Vertical, nil
		}
		return Horizontal, nil
	}
	return 0, configErrorf("orient", "cannot infer orientation from two numeric variables; pass an explicit orient")
}

// levelOrder fixes the display order of a grouping column: an
// explicit order verbatim, else the column's declared level order,
// else first appearance. Missing keys never form a level.
func levelOrder(col *column, explicit []string) []string {
	if explicit != nil {
		return explicit
	}
	if col.levels != nil {
		return col.levels
	}
	var order []string
	seen := make(map[string]bool)
	for _, l := range col.labels {
		if l == missingLabel || seen[l] {
			continue
		}
		seen[l] = true
		order = append(order, l)
	}
	return order
}

// gatherGroup extracts the aligned value/unit subsequences at the
// given rows, partitioned by hue level when a hue column exists. An
// empty row set gives an empty group.
func gatherGroup(label string, rows []int, valcol, unitcol, huecol *column, hueLevels []string) Group {
	g := Group{Label: label}
	g.Values, g.Units = gather(rows, valcol, unitcol)
	if huecol == nil {
		return g
	}
	g.Hues = make([]Subgroup, len(hueLevels))
	for hi, hl := range hueLevels {
		var sub []int
		for _, r := range rows {
			if huecol.labels[r] == hl && hl != missingLabel {
				sub = append(sub, r)
			}
		}
		vals, units := gather(sub, valcol, unitcol)
		g.Hues[hi] = Subgroup{Label: hl, Values: vals, Units: units}
	}
	return g
}

// gather collects non-missing values (and their units) at the given
// rows. A NaN value drops that row's measurement but not the group.
func gather(rows []int, valcol, unitcol *column) ([]float64, []string) {
	var vals []float64
	var units []string
	for _, r := range rows {
		v := valcol.values[r]
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
		if unitcol != nil {
			units = append(units, unitcol.labels[r])
		}
	}
	return vals, units
}
