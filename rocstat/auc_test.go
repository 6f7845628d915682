// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocstat

import (
	"math"
	"math/rand/v2"
	"testing"
)

// aeq reports whether want and got agree to within 1e-9, treating
// NaNs as equal.
func aeq(want, got float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	return math.Abs(want-got) <= 1e-9
}

func TestAUC(t *testing.T) {
	check := func(wantD float64, x, y []float64) {
		t.Helper()
		d, _, _ := AUC(x, y)
		if !aeq(wantD, d) {
			t.Errorf("AUC(%v, %v) = %v, want %v", x, y, d, wantD)
		}
	}

	low := []float64{1, 2, 3, 4, 5}
	high := []float64{6, 7, 8, 9, 10}

	// Perfectly separated samples score 1 or 0, depending on which
	// side of the other each sample lies.
	check(1, low, high)
	check(0, high, low)

	// Identical samples are indistinguishable. These bin widths
	// are exactly representable, so the area is exactly 0.5.
	check(0.5, []float64{1, 2, 2, 3, 4}, []float64{1, 2, 2, 3, 4})
	check(0.5, []float64{0, 3, 7, 10}, []float64{0, 3, 7, 10})

	// Here the bin width is not exactly representable and the
	// pooled minimum may round across a bin edge, so only a loose
	// bound holds.
	if d, _, _ := AUC(low, low); math.Abs(d-0.5) > 0.05 {
		t.Errorf("AUC(low, low) = %v, want near 0.5", d)
	}

	// A partially overlapping pair, small enough to check by hand.
	check(0.5625, []float64{0, 2, 3, 5}, []float64{1, 2, 4, 5})
	check(0.4375, []float64{1, 2, 4, 5}, []float64{0, 2, 3, 5})

	// Degenerate inputs.
	check(math.NaN(), nil, nil)
	check(math.NaN(), nil, low)
	check(math.NaN(), low, nil)
	check(math.NaN(), []float64{2, 2}, []float64{2, 2})
}

func TestAUCCDFs(t *testing.T) {
	x := []float64{0, 2, 3, 5}
	y := []float64{1, 2, 4, 5}
	d, cdfX, cdfY := AUC(x, y)

	// Pooled range [0, 5] with five bins plus one padding bin on
	// either side gives unit-width bins over [-1, 6].
	wantX := []float64{0, 0.25, 0.25, 0.5, 0.75, 0.75, 1}
	wantY := []float64{0, 0, 0.25, 0.5, 0.5, 0.75, 1}
	if len(cdfX) != len(wantX) || len(cdfY) != len(wantY) {
		t.Fatalf("got CDF lengths %d, %d, want %d", len(cdfX), len(cdfY), len(wantX))
	}
	for i := range wantX {
		if !aeq(wantX[i], cdfX[i]) || !aeq(wantY[i], cdfY[i]) {
			t.Fatalf("got CDFs %v, %v, want %v, %v", cdfX, cdfY, wantX, wantY)
		}
	}
	if !aeq(0.5625, d) {
		t.Errorf("got D %v, want 0.5625", d)
	}

	// Swapping the samples complements the area.
	dRev, _, _ := AUC(y, x)
	if !aeq(1, d+dRev) {
		t.Errorf("D(x,y) + D(y,x) = %v, want 1", d+dRev)
	}
}

func TestAUCEmptySample(t *testing.T) {
	// One empty sample still gets a binning from the other, but
	// its CDF is all NaN and so is the area.
	d, cdfX, cdfY := AUC(nil, []float64{1, 2, 3})
	if !math.IsNaN(d) {
		t.Errorf("got D %v, want NaN", d)
	}
	if len(cdfX) != len(cdfY) || len(cdfX) == 0 {
		t.Fatalf("got CDF lengths %d, %d, want equal and non-zero", len(cdfX), len(cdfY))
	}
	for i, v := range cdfX {
		if !math.IsNaN(v) {
			t.Errorf("cdfX[%d] = %v, want NaN", i, v)
		}
	}
	if cdfY[0] != 0 || cdfY[len(cdfY)-1] != 1 {
		t.Errorf("cdfY = %v, want first 0 and last 1", cdfY)
	}
}

func TestAUCProperties(t *testing.T) {
	// Area and symmetry invariants on arbitrary overlapping
	// samples.
	rng := rand.New(rand.NewPCG(17, 29))
	for trial := 0; trial < 20; trial++ {
		x := make([]float64, 30)
		y := make([]float64, 40)
		for i := range x {
			x[i] = rng.Float64() * 10
		}
		for i := range y {
			y[i] = rng.Float64()*10 + 2
		}

		d, cdfX, cdfY := AUC(x, y)
		if !(d >= -1e-9 && d <= 1+1e-9) {
			t.Fatalf("D = %v, want in [0, 1]", d)
		}
		dRev, _, _ := AUC(y, x)
		if !aeq(1, d+dRev) {
			t.Fatalf("D(x,y) + D(y,x) = %v, want 1", d+dRev)
		}
		for i := 1; i < len(cdfX); i++ {
			if cdfX[i] < cdfX[i-1] || cdfY[i] < cdfY[i-1] {
				t.Fatalf("CDF not monotone: %v, %v", cdfX, cdfY)
			}
		}
		if !aeq(1, cdfX[len(cdfX)-1]) || !aeq(1, cdfY[len(cdfY)-1]) {
			t.Fatalf("CDFs do not end at 1: %v, %v", cdfX, cdfY)
		}
	}
}
