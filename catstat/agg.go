// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catstat

import (
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/rserran/catplot/catdata"
)

// Estimator reduces a group's values to a single statistic.
type Estimator func(xs []float64) float64

// ErrorFn computes an error interval around a group's statistic.
type ErrorFn func(xs []float64) (lo, hi float64)

// AggResult is one group's aggregated statistic for bar and point
// plots. Lo and Hi are NaN when no error interval was requested.
type AggResult struct {
	N      int
	Value  float64
	Lo, Hi float64
}

// Aggregate reduces values with the given estimator (mean if nil) and
// error function (+-1 standard deviation if nil; use NoError to omit
// the interval). An empty group returns N == 0 with NaN fields.
func Aggregate(values []float64, est Estimator, errFn ErrorFn) AggResult {
	if est == nil {
		est = stats.Mean
	}
	if errFn == nil {
		errFn = StdDevError
	}
	if len(values) == 0 {
		nan := math.NaN()
		return AggResult{Value: nan, Lo: nan, Hi: nan}
	}
	r := AggResult{N: len(values), Value: est(values)}
	r.Lo, r.Hi = errFn(values)
	return r
}

// StdDevError is the default ErrorFn: the estimator-independent
// interval mean +- one sample standard deviation. A single
// observation has no spread, so its interval collapses to the mean.
func StdDevError(xs []float64) (lo, hi float64) {
	m := stats.Mean(xs)
	sd := 0.0
	if len(xs) >= 2 {
		sd = stats.StdDev(xs)
	}
	return m - sd, m + sd
}

// NoError omits the error interval.
func NoError(xs []float64) (lo, hi float64) {
	return math.NaN(), math.NaN()
}

// SummaryTable flattens resolved groups into a go-gg table and
// aggregates the mean, minimum, and maximum value per category. The
// result has columns "category", "mean value", "min value", and
// "max value", one row per non-empty category in display order.
func SummaryTable(r *catdata.Resolved) table.Grouping {
	var cats []string
	var vals []float64
	for _, g := range r.Groups {
		for _, v := range g.Values {
			cats = append(cats, g.Label)
			vals = append(vals, v)
		}
	}
	t := new(table.Builder).Add("category", cats).Add("value", vals).Done()
	return ggstat.Agg("category")(
		ggstat.AggMean("value"), ggstat.AggMin("value"), ggstat.AggMax("value"),
	).F(t)
}
