// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catstat

import "math"

// LetterValueStats is a letter-value ("boxen") summary: a run of
// successively narrower quantile boxes around the median, plus the
// observations beyond the deepest box.
type LetterValueStats struct {
	N      int
	K      int // number of letter-value depths
	Median float64

	// Boxes holds the [lower, upper] bounds of each letter-value
	// box, fourths first; each deeper box spans a wider quantile
	// range.
	Boxes [][2]float64

	Outliers []float64
}

// LetterValues summarizes values for a letter-value plot. The depth
// follows the trustworthiness rule k = ceil(log2 n) - ceil(log2
// (2*sqrt n)) + 1, at least 1, so deeper boxes only appear where the
// sample supports estimating them.
func LetterValues(values []float64) LetterValueStats {
	if len(values) == 0 {
		return LetterValueStats{}
	}
	xs := sorted(values)
	n := len(xs)

	k := 1
	if n > 1 {
		k = int(math.Ceil(math.Log2(float64(n)))) - int(math.Ceil(math.Log2(2*math.Sqrt(float64(n))))) + 1
		if k < 1 {
			k = 1
		}
	}

	st := LetterValueStats{N: n, K: k, Median: quantile(xs, 0.5)}
	for d := 1; d <= k; d++ {
		p := math.Pow(2, -float64(d+1))
		st.Boxes = append(st.Boxes, [2]float64{quantile(xs, p), quantile(xs, 1-p)})
	}
	deepest := st.Boxes[len(st.Boxes)-1]
	for _, x := range xs {
		if x < deepest[0] || x > deepest[1] {
			st.Outliers = append(st.Outliers, x)
		}
	}
	return st
}
