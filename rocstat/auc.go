// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocstat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// An estimator computes ROC areas over a fixed shared binning, so the
// observed statistic and every bootstrap resample are measured on the
// same scale.
type estimator struct {
	// edges holds the histogram bin edges shared by both samples,
	// uniformly spaced and padded by one bin width beyond the
	// pooled range so every value lands in an interior bin. edges
	// is nil if the pooled values were empty or had no spread;
	// every statistic is NaN then.
	edges []float64
}

// newEstimator derives the shared binning from the pooled values of x
// and y. The bin count is 1.2 times the larger sample size, rounded
// up, and the bin width divides the pooled range evenly across that
// count.
func newEstimator(x, y []float64) *estimator {
	pooled := make([]float64, 0, len(x)+len(y))
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)
	if len(pooled) == 0 {
		return &estimator{}
	}
	nbin := int(math.Ceil(math.Max(1.2*float64(len(x)), 1.2*float64(len(y)))))
	lo, hi := floats.Min(pooled), floats.Max(pooled)
	w := (hi - lo) / float64(nbin)
	if w <= 0 {
		return &estimator{}
	}
	return &estimator{edges: vec.Linspace(lo-w, hi+w, nbin+3)}
}

// nbins returns the number of histogram bins, one less than the
// number of edges.
func (e *estimator) nbins() int {
	if len(e.edges) == 0 {
		return 0
	}
	return len(e.edges) - 1
}

// cdf returns the empirical CDF of sample over the shared edges, or
// nil if the binning collapsed.
func (e *estimator) cdf(sample []float64) []float64 {
	if len(e.edges) == 0 {
		return nil
	}
	out := make([]float64, e.nbins())
	e.cdfInto(sample, out)
	return out
}

// cdfInto fills out, which must have nbins elements, with the
// empirical CDF of sample: the count of each bin, accumulated and
// normalized by the sample length. Bin i spans [edges[i], edges[i+1]).
// A value equal to the final edge would land beyond the last bin and
// is dropped, as are values outside the edges entirely; the padding
// in newEstimator keeps both cases unreachable for the samples the
// binning was derived from. An empty sample divides 0 by 0 and yields
// an all-NaN CDF, which poisons the area into NaN.
func (e *estimator) cdfInto(sample []float64, out []float64) {
	for i := range out {
		out[i] = 0
	}
	for _, v := range sample {
		i := sort.SearchFloat64s(e.edges, v)
		if i == len(e.edges) {
			continue
		}
		if e.edges[i] != v {
			if i == 0 {
				continue
			}
			i--
		}
		if i < len(out) {
			out[i]++
		}
	}
	l := float64(len(sample))
	sum := 0.0
	for i, c := range out {
		sum += c
		out[i] = sum / l
	}
}

// auc returns the ROC area of x and y over the shared edges, along
// with both empirical CDFs.
func (e *estimator) auc(x, y []float64) (d float64, cdfX, cdfY []float64) {
	cdfX = e.cdf(x)
	cdfY = e.cdf(y)
	return area(cdfX, cdfY), cdfX, cdfY
}

// area integrates cdfX against cdfY with the trapezoidal rule. Taking
// cdfY as the abscissa orients the statistic so that a sample x lying
// entirely below y scores 1: by the time y's mass starts arriving,
// cdfX has already saturated at 1. The complementary ordering scores
// 0, and area(x, y) + area(y, x) is always 1 for non-empty samples.
func area(cdfX, cdfY []float64) float64 {
	if len(cdfX) < 2 || len(cdfY) < 2 {
		return math.NaN()
	}
	return integrate.Trapezoidal(cdfY, cdfX)
}

// AUC estimates the area under the ROC curve of samples x and y and
// returns it along with the empirical CDFs of each sample over their
// shared binning. It is Compute without the bootstrap machinery; see
// Result for the meaning of the return values.
func AUC(x, y []float64) (d float64, cdfX, cdfY []float64) {
	e := newEstimator(x, y)
	return e.auc(x, y)
}
