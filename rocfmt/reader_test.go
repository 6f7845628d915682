// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocfmt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// scanAll reads data to the end, separating good values from value
// errors.
func scanAll(t *testing.T, data string) ([]float64, []error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var vals []float64
	var errs []error
	for r.Scan() {
		v, err := r.Value()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected I/O error: %v", err)
	}
	return vals, errs
}

func TestReader(t *testing.T) {
	tests := []struct {
		name, input string
		want        []float64
	}{
		{"empty", "", nil},
		{"single", "1.5\n", []float64{1.5}},
		{"one-per-line", "1\n2.5\n-3e2\n", []float64{1, 2.5, -300}},
		{"several-per-line", "1 2\t3\n4\n", []float64{1, 2, 3, 4}},
		{"no-final-newline", "1 2", []float64{1, 2}},
		{"blank-lines", "\n1\n\n\n2\n", []float64{1, 2}},
		{"leading-space", "  1\n\t2\n", []float64{1, 2}},
		{"comments", "# header\n1 # trailing\n#2\n3\n", []float64{1, 3}},
		{"comment-only", "# nothing\n", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, errs := scanAll(t, test.input)
			if len(errs) > 0 {
				t.Fatalf("unexpected value errors: %v", errs)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	// Parse errors are non-fatal; scanning continues past them.
	vals, errs := scanAll(t, "1\nbogus\n2\n")
	if !reflect.DeepEqual(vals, []float64{1, 2}) {
		t.Errorf("got values %v, want [1 2]", vals)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if want := `test:2: malformed value "bogus"`; errs[0].Error() != want {
		t.Errorf("got error %q, want %q", errs[0], want)
	}
	var syn *SyntaxError
	if !errors.As(errs[0], &syn) || syn.Line != 2 {
		t.Errorf("got %#v, want a SyntaxError on line 2", errs[0])
	}

	// Non-finite values are rejected even though the float parser
	// accepts their spellings.
	for _, input := range []string{"NaN\n", "+Inf\n", "-inf\n", "Infinity\n"} {
		vals, errs := scanAll(t, input)
		if len(vals) != 0 || len(errs) != 1 {
			t.Errorf("%q: got values %v, errors %v, want exactly one error", input, vals, errs)
			continue
		}
		if !strings.Contains(errs[0].Error(), "non-finite") {
			t.Errorf("%q: got error %q, want non-finite", input, errs[0])
		}
	}
}

func TestReaderReset(t *testing.T) {
	var r Reader
	r.Reset(strings.NewReader("5\n"), "a")
	if _, err := r.Value(); err == nil {
		t.Errorf("Value before Scan succeeded, want error")
	}
	if !r.Scan() {
		t.Fatalf("Scan failed: %v", r.Err())
	}
	if v, err := r.Value(); err != nil || v != 5 {
		t.Errorf("got %v, %v, want 5", v, err)
	}

	// Reset must fully discard the previous input.
	r.Reset(strings.NewReader(" 6\t7 "), "b")
	var vals []float64
	for r.Scan() {
		v, err := r.Value()
		if err != nil {
			t.Fatal(err)
		}
		vals = append(vals, v)
	}
	if !reflect.DeepEqual(vals, []float64{6, 7}) {
		t.Errorf("got %v, want [6 7]", vals)
	}
}
