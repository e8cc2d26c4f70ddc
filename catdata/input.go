// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catdata

import (
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// Input is a classified plot input. The concrete types are Wide,
// Flat, and Long. Classification happens once, at the API boundary,
// either by constructing one of those directly or through FromData.
type Input interface {
	resolve() (*Resolved, error)
}

// Wide is wide-form input: a rectangular set of columns, each of
// which becomes one category. The column name is the category label
// and column order is preserved unless Order is given.
type Wide struct {
	// Data holds the columns. Ragged column sets, which a
	// *table.Table cannot represent, may be given via Columns
	// instead.
	Data *table.Table

	// Columns is the column set used when Data is nil. Names
	// labels the columns; if Names is nil, positions are used.
	Columns []Series
	Names   []string

	// Order is an optional explicit category order. Labels in
	// Order that are absent from the data resolve to empty
	// groups; data columns absent from Order are dropped.
	Order []string

	// Hue is accepted so callers can thread a hue variable
	// without inspecting the input form. Wide-form data cannot be
	// sub-grouped, so resolving fails if it is set.
	Hue Var
}

// Flat is a single unlabeled sequence: one category with a blank
// label.
type Flat struct {
	Values Series
	Orient Orient
}

// Long is long-form input: row-per-observation data with axis
// variables given as column references into Data or as raw series.
type Long struct {
	// Data is the backing table for column references. It may be
	// nil when every variable supplies its values directly.
	Data *table.Table

	// X and Y are the axis variables. At least one must be set;
	// which one is categorical is decided by Orient, or inferred.
	X, Y Var

	// Hue is an optional secondary grouping nested inside each
	// category.
	Hue Var

	// Unit optionally identifies the sampling unit of each row
	// for paired designs.
	Unit Var

	// Order and HueOrder are optional explicit level orders.
	Order    []string
	HueOrder []string

	// Orient is an optional explicit orientation hint.
	Orient Orient
}

// FromData classifies arbitrary data by shape: a *table.Table or a
// matrix is wide form and a flat slice is a single unlabeled
// sequence. Slices of three or more dimensions are rejected.
func FromData(data interface{}) (Input, error) {
	switch d := data.(type) {
	case nil:
		return nil, configErrorf("data", "no data given")
	case Input:
		return d, nil
	case *table.Table:
		return Wide{Data: d}, nil
	case Series:
		return Flat{Values: d}, nil
	case Factor:
		return Flat{Values: Series{Data: d}}, nil
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		return nil, configErrorf("data", "unsupported data type %T", data)
	}
	switch depth := sliceDepth(rv); depth {
	case 1:
		return Flat{Values: Series{Data: data}}, nil
	case 2:
		cols := make([]Series, rv.Len())
		names := make([]string, rv.Len())
		for i := range cols {
			cols[i] = Series{Data: rv.Index(i).Interface()}
			names[i] = strconv.Itoa(i)
		}
		return Wide{Columns: cols, Names: names}, nil
	default:
		return nil, configErrorf("data", "%d-dimensional data is not supported", depth)
	}
}

// sliceDepth reports the slice nesting depth of v. Interface-typed
// elements are inspected dynamically so []interface{} wrapping slices
// counts the inner dimensions too.
func sliceDepth(v reflect.Value) int {
	t := v.Type()
	depth := 0
	for t.Kind() == reflect.Slice {
		depth++
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface && v.Len() > 0 {
		// Descend through the first element.
		e := v
		for i := 0; i < depth; i++ {
			if e.Len() == 0 {
				return depth
			}
			e = e.Index(0)
		}
		if e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		if e.IsValid() && e.Kind() == reflect.Slice {
			depth += sliceDepth(e)
		}
	}
	return depth
}
