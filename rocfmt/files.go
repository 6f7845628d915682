// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rocfmt

import (
	"io"
	"os"
)

// ReadAll reads every value from ior. Unlike the streaming Reader,
// ReadAll treats a malformed value as fatal and returns the first
// error it hits. fileName is used in error messages; it is purely
// diagnostic.
func ReadAll(ior io.Reader, fileName string) ([]float64, error) {
	r := NewReader(ior, fileName)
	var vals []float64
	for r.Scan() {
		v, err := r.Value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}

// ReadFile reads every value from the named file. The name "-" reads
// from standard input.
//
// This is generally the desired behavior when the name comes from
// command-line flags.
func ReadFile(path string) ([]float64, error) {
	if path == "-" {
		return ReadAll(os.Stdin, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, path)
}
