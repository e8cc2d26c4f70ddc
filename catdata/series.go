// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catdata

import (
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
)

// Series is an ordered sequence of observations. Data must be a slice
// of a numeric type or of strings, or a Factor.
//
// A nil Index aligns the series with its peers by position. A non-nil
// Index aligns it by index value instead: two indexed series are
// paired wherever their index values match, regardless of row order,
// so reordering one series never changes the pairing.
type Series struct {
	Index []int
	Data  interface{}
}

// Floats returns a positional Series over xs.
func Floats(xs []float64) Series { return Series{Data: xs} }

// Strings returns a positional Series over ss.
func Strings(ss []string) Series { return Series{Data: ss} }

func (s Series) isZero() bool { return s.Data == nil }

// Factor is a categorical sequence with a declared level order.
// Levels lists every level in display order and may include levels
// with no observations; those resolve to empty groups so a renderer
// can still draw their ticks.
type Factor struct {
	Labels []string
	Levels []string
}

// Var names a column of a long-form table or supplies values
// directly. The zero Var means the variable was not given.
type Var struct {
	Name   string
	Series Series
}

// Col references the named column of the input table.
func Col(name string) Var { return Var{Name: name} }

// Vals supplies a variable's values directly.
func Vals(s Series) Var { return Var{Series: s} }

func (v Var) isZero() bool { return v.Name == "" && v.Series.isZero() }

// missingLabel marks a missing grouping key: NaN for numeric keys,
// the empty string for string keys. Rows whose key is missing are
// dropped from every group.
const missingLabel = ""

// column is a materialized series: a label view for grouping, a
// numeric view for measuring, and an optional explicit index for
// alignment.
type column struct {
	labels  []string
	values  []float64
	numeric bool     // natural kind is numeric
	levels  []string // declared level order, if any
	index   []int    // explicit index; nil for positional
}

// materialize converts a series into its label and numeric views.
// String data that does not parse as numbers is assigned level codes
// (by declared order for a Factor, by first appearance otherwise) so
// it can still serve as a value axis.
func materialize(param string, s Series) (*column, error) {
	if s.Index != nil && s.Data != nil {
		if n := reflectLen(s.Data); n != len(s.Index) {
			return nil, configErrorf(param, "index length %d does not match data length %d", len(s.Index), n)
		}
	}
	switch d := s.Data.(type) {
	case Factor:
		c := &column{
			labels: append([]string(nil), d.Labels...),
			levels: append([]string(nil), d.Levels...),
			index:  s.Index,
		}
		c.values = labelCodes(c.labels, c.levels)
		return c, nil
	case []string:
		c := &column{labels: append([]string(nil), d...), index: s.Index}
		c.values = stringValues(c.labels)
		return c, nil
	case []float64:
		return floatColumn(d, s.Index), nil
	}
	rv := reflect.ValueOf(s.Data)
	if rv.Kind() != reflect.Slice {
		return nil, configErrorf(param, "unsupported data type %T", s.Data)
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		var xs []float64
		slice.Convert(&xs, s.Data)
		return floatColumn(xs, s.Index), nil
	case reflect.String:
		labels := make([]string, rv.Len())
		for i := range labels {
			labels[i] = rv.Index(i).String()
		}
		c := &column{labels: labels, index: s.Index}
		c.values = stringValues(c.labels)
		return c, nil
	}
	return nil, configErrorf(param, "unsupported data type %T", s.Data)
}

func floatColumn(xs []float64, index []int) *column {
	c := &column{
		values:  append([]float64(nil), xs...),
		labels:  make([]string, len(xs)),
		numeric: true,
		index:   index,
	}
	for i, x := range xs {
		if math.IsNaN(x) {
			c.labels[i] = missingLabel
			continue
		}
		c.labels[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return c
}

// stringValues derives a numeric view for string labels: the parsed
// number where every non-missing label parses, level codes by first
// appearance otherwise.
func stringValues(labels []string) []float64 {
	vals := make([]float64, len(labels))
	parsed := true
	for i, l := range labels {
		if l == missingLabel {
			vals[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(l, 64)
		if err != nil {
			parsed = false
			break
		}
		vals[i] = x
	}
	if parsed {
		return vals
	}
	return labelCodes(labels, nil)
}

// labelCodes maps labels to float codes in the given level order, or
// by first appearance when levels is nil.
func labelCodes(labels, levels []string) []float64 {
	code := make(map[string]int, len(levels))
	for i, l := range levels {
		code[l] = i
	}
	vals := make([]float64, len(labels))
	for i, l := range labels {
		if l == missingLabel {
			vals[i] = math.NaN()
			continue
		}
		c, ok := code[l]
		if !ok {
			if levels != nil {
				vals[i] = math.NaN()
				continue
			}
			c = len(code)
			code[l] = c
		}
		vals[i] = float64(c)
	}
	return vals
}

func (c *column) len() int { return len(c.labels) }

// take rewrites the column to the given row positions.
func (c *column) take(rows []int) {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = c.labels[r]
		values[i] = c.values[r]
	}
	c.labels, c.values, c.index = labels, values, nil
}

// align joins the non-nil columns. Without explicit indexes the
// columns must simply agree on length. With any explicit index, every
// column is keyed (positionally-aligned columns get the identity
// index), the rows are restricted to index values present in every
// column, and all columns are rewritten in ascending index order.
// Pairing is therefore by index value, not by position.
func align(param string, cols ...*column) error {
	live := cols[:0]
	for _, c := range cols {
		if c != nil {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return nil
	}

	indexed := false
	for _, c := range live {
		if c.index != nil {
			indexed = true
		}
	}
	if !indexed {
		n := live[0].len()
		for _, c := range live[1:] {
			if c.len() != n {
				return configErrorf(param, "sequence lengths differ: %d vs %d", n, c.len())
			}
		}
		return nil
	}

	// Key every column, then intersect the key sets.
	pos := make([]map[int]int, len(live))
	for i, c := range live {
		idx := c.index
		if idx == nil {
			idx = make([]int, c.len())
			for j := range idx {
				idx[j] = j
			}
		}
		m := make(map[int]int, len(idx))
		for j, k := range idx {
			if _, dup := m[k]; !dup {
				m[k] = j
			}
		}
		pos[i] = m
	}
	keys := make([]int, 0, len(pos[0]))
	for k := range pos[0] {
		shared := true
		for _, m := range pos[1:] {
			if _, ok := m[k]; !ok {
				shared = false
				break
			}
		}
		if shared {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	for i, c := range live {
		rows := make([]int, len(keys))
		for j, k := range keys {
			rows[j] = pos[i][k]
		}
		c.take(rows)
	}
	return nil
}

func reflectLen(data interface{}) int {
	if f, ok := data.(Factor); ok {
		return len(f.Labels)
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		return 0
	}
	return rv.Len()
}
