// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocstat

import (
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/sync/errgroup"
)

// bootChunk is the number of resampling iterations seeded and
// scheduled as a unit. Chunk seeds are drawn from the caller's
// generator in chunk order before any worker starts, so the bootstrap
// distribution depends only on the seed sequence, never on worker
// count or scheduling.
const bootChunk = 64

// bootstrap builds the null distribution of the ROC area: n resamples
// of the pooled values of x and y, split back into the original
// sample sizes and measured over the shared edges.
func (e *estimator) bootstrap(x, y []float64, n int, rng *rand.Rand, workers int) []float64 {
	dist := make([]float64, n)
	if len(e.edges) == 0 {
		// The binning collapsed, so every resample would score
		// NaN. Skip the draws and report the distribution a
		// degenerate resampling run would have produced.
		for i := range dist {
			dist[i] = math.NaN()
		}
		return dist
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pooled := make([]float64, 0, len(x)+len(y))
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += bootChunk {
		hi := min(lo+bootChunk, n)
		out := dist[lo:hi]
		crng := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		g.Go(func() error {
			e.resample(pooled, len(x), len(y), out, crng)
			return nil
		})
	}
	g.Wait()
	return dist
}

// resample fills out with one ROC area per iteration. Each iteration
// redraws len(pooled) values from pooled with replacement and splits
// them into pseudo-samples of lx and ly values. Workers share nothing
// but pooled, which they only read, and disjoint subslices of the
// output, so no locking is needed.
func (e *estimator) resample(pooled []float64, lx, ly int, out []float64, rng *rand.Rand) {
	rx := make([]float64, lx)
	ry := make([]float64, ly)
	cdfX := make([]float64, e.nbins())
	cdfY := make([]float64, e.nbins())
	for i := range out {
		for j := range rx {
			rx[j] = pooled[rng.IntN(len(pooled))]
		}
		for j := range ry {
			ry[j] = pooled[rng.IntN(len(pooled))]
		}
		e.cdfInto(rx, cdfX)
		e.cdfInto(ry, cdfY)
		out[i] = area(cdfX, cdfY)
	}
}

// significance locates the observed area within the bootstrap
// distribution. The raw percentile gives the lower-tail probability;
// when the observation sits above the distribution's mean, the upper
// tail is reported instead, so p is small exactly when the
// observation is extreme in either direction. The second return is
// the distribution's sample standard deviation.
func significance(dist []float64, d float64) (p, sem float64) {
	p = PercentileOf(dist, d)
	samp := stats.Sample{Xs: dist}
	if d > samp.Mean() {
		p = 1 - p
	}
	return p, samp.StdDev()
}
