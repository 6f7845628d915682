// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocstat

import (
	"math"
	"sort"
)

// PercentileOf returns the fraction of sample lying at or below v,
// estimated by linear interpolation on the mid-point ranks of the
// sorted sample: the i-th of L sorted values (counting from 1)
// anchors cumulative probability (i-0.5)/L. A run of equal values
// keeps only its last element as an anchor, so interpolation never
// crosses the interior of a flat run. Outside the anchored range the
// outermost segment extrapolates linearly, and the result is clamped
// to [0, 1].
//
// A constant sample short-circuits to an indicator: 1 if v equals the
// repeated value and 0 otherwise. This is no percentile in the usual
// sense, but the bootstrap p-value for a degenerate null distribution
// depends on exactly this behavior, so it must not be smoothed over.
//
// An empty sample yields NaN, as does any interpolation failure.
// PercentileOf does not modify sample.
func PercentileOf(sample []float64, v float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}

	constant := true
	for _, s := range sample[1:] {
		if s != sample[0] {
			constant = false
			break
		}
	}
	if constant {
		if v == sample[0] {
			return 1
		}
		return 0
	}

	xs := append([]float64(nil), sample...)
	sort.Float64s(xs)

	// Anchor the last element of each run at its mid-point rank.
	l := float64(len(xs))
	var ax, ap []float64
	for i, x := range xs {
		if i+1 < len(xs) && xs[i+1] == x {
			continue
		}
		ax = append(ax, x)
		ap = append(ap, (float64(i)+0.5)/l)
	}
	if len(ax) < 2 {
		return math.NaN()
	}

	// Pick the anchor pair bracketing v, reusing the outermost
	// pair beyond either end so the segment extrapolates.
	j := sort.SearchFloat64s(ax, v)
	if j == 0 {
		j = 1
	} else if j == len(ax) {
		j = len(ax) - 1
	}
	p := ap[j-1] + (v-ax[j-1])*(ap[j]-ap[j-1])/(ax[j]-ax[j-1])
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
