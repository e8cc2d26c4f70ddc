// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catdata resolves heterogeneous plot input into ordered
// per-category value sequences.
//
// Categorical plots accept data in several shapes: a rectangular table
// whose columns are the categories ("wide" form), a single unlabeled
// sequence ("flat" form), or row-per-observation data with grouping
// variables ("long" form). This package classifies the shape once, at
// the API boundary, into a Wide, Flat, or Long input value, and then
// resolves it: it infers which plot axis is categorical, fixes the
// display order of the categories (and of the hue levels, if any), and
// extracts the aligned value and unit subsequence for every group.
//
// Resolution is a pure computation. The Resolved output is built once
// per plotting call and treated as read-only afterwards so that every
// layout pass sees identical category positions.
package catdata

import "fmt"

// Orient selects which plot axis carries the categories.
type Orient int

const (
	// OrientInfer derives the orientation from the data.
	OrientInfer Orient = iota

	// Vertical places categories on the x axis and values on the
	// y axis.
	Vertical

	// Horizontal places categories on the y axis and values on
	// the x axis.
	Horizontal
)

func (o Orient) String() string {
	switch o {
	case OrientInfer:
		return "infer"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orient(%d)", int(o))
}

// A ConfigError reports a problem with how a plot was specified, such
// as a reference to a column that does not exist. Resolution fails as
// a whole on a ConfigError; no partial result is returned.
type ConfigError struct {
	// Param is the name of the offending parameter.
	Param string

	// Detail describes the problem.
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catdata: %s: %s", e.Param, e.Detail)
}

func configErrorf(param, format string, args ...interface{}) error {
	return &ConfigError{Param: param, Detail: fmt.Sprintf(format, args...)}
}
