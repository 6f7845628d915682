// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rocstat estimates the area under the receiver operating
// characteristic (ROC) curve of two numeric samples and assesses its
// significance with a bootstrap test.
//
// The ROC area D is a nonparametric measure of how well a threshold
// on the measured value separates two samples. D is 0.5 when the
// samples are statistically indistinguishable and approaches 1 (or 0,
// for separation in the other direction) as discrimination becomes
// perfect. The estimate is built from a histogram binning shared by
// both samples, the empirical CDF of each sample over those bins, and
// the trapezoidal integral of one CDF against the other.
//
// The bootstrap test redraws the pooled values into resampled pairs
// of the original sizes, recomputes D for each resample over the same
// bins, and locates the observed D within the resulting null
// distribution to obtain a p-value and the distribution's spread.
//
// Degenerate inputs (an empty sample, or pooled values with no
// spread) yield NaN statistics rather than errors. Callers that need
// to reject such inputs must do so before calling into this package.
package rocstat

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// A Transform is a presentation transform applied to the reported ROC
// area. It never affects the bootstrap distribution or the p-value,
// which are always computed from the untransformed statistic.
type Transform int

const (
	// TransformNone reports D unchanged, in [0, 1].
	TransformNone Transform = iota

	// TransformSwap folds D around 0.5 into [0.5, 1], keeping the
	// degree of discrimination but discarding its direction.
	TransformSwap

	// TransformScale maps D from [0, 1] onto [-1, 1], making it
	// read like a correlation coefficient.
	TransformScale
)

// ParseTransform parses the command-line form of a Transform: "none",
// "swap", or "scale".
func ParseTransform(s string) (Transform, error) {
	switch s {
	case "none":
		return TransformNone, nil
	case "swap":
		return TransformSwap, nil
	case "scale":
		return TransformScale, nil
	}
	return TransformNone, fmt.Errorf("unknown transform %q (want none, swap, or scale)", s)
}

func (t Transform) String() string {
	switch t {
	case TransformNone:
		return "none"
	case TransformSwap:
		return "swap"
	case TransformScale:
		return "scale"
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// apply transforms a raw ROC area for reporting.
func (t Transform) apply(d float64) float64 {
	switch t {
	case TransformSwap:
		return math.Abs(d-0.5) + 0.5
	case TransformScale:
		return 2 * (d - 0.5)
	}
	return d
}

// Options configures Compute. The zero value computes the ROC area
// with no bootstrap test.
type Options struct {
	// Bootstrap is the number of bootstrap resamples used to build
	// the null distribution of D. If it is zero or negative, no
	// significance test runs and Result.P and Result.SEM are NaN.
	Bootstrap int

	// Transform is applied to the reported D.
	Transform Transform

	// Rand is the source of resampling randomness. If it is nil,
	// Compute seeds a generator from the process-global source and
	// results vary from run to run. A fixed Rand makes Compute
	// deterministic regardless of Workers.
	Rand *rand.Rand

	// Workers bounds the number of goroutines resampling
	// concurrently. Zero or negative means GOMAXPROCS. Workers
	// affects scheduling only, never the computed Result.
	Workers int
}

// A Result holds the ROC area of two samples and, if a bootstrap test
// was run, its significance.
type Result struct {
	// D is the area under the ROC curve, after Options.Transform.
	// Without a transform it is 0.5 for indistinguishable samples
	// and approaches 1 (or 0) for perfect separation, depending on
	// direction. D is NaN if either sample was empty or the pooled
	// values had no spread.
	D float64

	// P is the bootstrap p-value for the null hypothesis that both
	// samples were drawn from the same distribution. It is NaN
	// unless Options.Bootstrap was positive.
	P float64

	// SEM is the standard deviation of the bootstrap distribution
	// of D. It is NaN unless Options.Bootstrap was positive.
	SEM float64

	// CDFX and CDFY are the empirical CDFs of the two samples over
	// the shared binning, one value per bin. Each is non-decreasing
	// and ends at 1 for a non-empty sample. They are nil if the
	// binning collapsed.
	CDFX, CDFY []float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int
}

// Compute estimates the ROC area of samples x and y and, if
// opts.Bootstrap is positive, bootstraps its significance. It does
// not modify x or y.
func Compute(x, y []float64, opts Options) Result {
	est := newEstimator(x, y)
	d, cdfX, cdfY := est.auc(x, y)

	res := Result{
		D:    opts.Transform.apply(d),
		P:    math.NaN(),
		SEM:  math.NaN(),
		CDFX: cdfX,
		CDFY: cdfY,
		N1:   len(x),
		N2:   len(y),
	}
	if opts.Bootstrap > 0 {
		// The test sees the raw statistic. The transform is
		// cosmetic and applies only to the reported D.
		dist := est.bootstrap(x, y, opts.Bootstrap, opts.Rand, opts.Workers)
		res.P, res.SEM = significance(dist, d)
	}
	return res
}
