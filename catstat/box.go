// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catstat computes the per-group statistical summaries behind
// the non-scatter categorical plot kinds: box and letter-value
// summaries, violin density profiles, and pluggable aggregation.
//
// Every function here is a pure computation over one group's values;
// cross-group concerns (ordering, positioning) live in the caller.
package catstat

import (
	"math"
	"sort"
)

// BoxStats is a five-number box summary: quartiles, whiskers at the
// most extreme data points within Whis IQRs of the box, and the
// observations beyond the whiskers.
type BoxStats struct {
	N              int
	Q1, Median, Q3 float64
	Lo, Hi         float64 // whisker ends
	Outliers       []float64
}

// Box summarizes values for a box plot. whis is the whisker reach in
// IQRs; 0 means the conventional 1.5. An empty group returns a zero
// summary with N == 0.
func Box(values []float64, whis float64) BoxStats {
	if whis == 0 {
		whis = 1.5
	}
	if len(values) == 0 {
		return BoxStats{}
	}
	xs := sorted(values)
	st := BoxStats{
		N:      len(xs),
		Q1:     quantile(xs, 0.25),
		Median: quantile(xs, 0.5),
		Q3:     quantile(xs, 0.75),
	}
	iqr := st.Q3 - st.Q1
	lo, hi := st.Q1-whis*iqr, st.Q3+whis*iqr

	// Whiskers reach the most extreme data inside the fences.
	st.Lo, st.Hi = st.Median, st.Median
	for _, x := range xs {
		if x >= lo {
			st.Lo = x
			break
		}
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] <= hi {
			st.Hi = xs[i]
			break
		}
	}
	for _, x := range xs {
		if x < st.Lo || x > st.Hi {
			st.Outliers = append(st.Outliers, x)
		}
	}
	return st
}

func sorted(values []float64) []float64 {
	xs := append([]float64(nil), values...)
	sort.Float64s(xs)
	return xs
}

// quantile returns the linearly interpolated q-th quantile of the
// sorted sample xs.
func quantile(xs []float64, q float64) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	pos := q * float64(len(xs)-1)
	i := int(math.Floor(pos))
	if i >= len(xs)-1 {
		return xs[len(xs)-1]
	}
	frac := pos - float64(i)
	return xs[i] + frac*(xs[i+1]-xs[i])
}
