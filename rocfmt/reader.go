// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rocfmt reads whitespace-separated numeric sample files.
//
// A sample file holds one sample: finite decimal numbers separated by
// spaces, tabs, or line breaks, in any arrangement. A "#" starts a
// comment that runs to the end of the line. Blank lines are ignored.
// Values must be finite; NaN and infinities are rejected so that they
// cannot masquerade as the NaN sentinels the statistics report for
// degenerate inputs.
package rocfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads numeric values from a sample file.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next
// value, Value returns it, and Err reports any I/O error once Scan
// returns false.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	rest []byte // unconsumed fields of the current line

	value    float64
	valueErr error
}

// SyntaxError represents a malformed value on a particular line of a
// sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noValue = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse sample values from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.rest = nil
	r.value = 0
	r.valueErr = noValue
}

// Scan advances the reader to the next value and returns true if one
// was found. The caller should use the Value method to get the value.
// If an I/O error occurs, or this reaches the end of the file, it
// returns false and the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for {
		// Consume the next field of the current line, if any.
		// rest aliases the Scanner's buffer, so it must be
		// drained before the next line is read.
		var f []byte
		f, r.rest = splitField(r.rest)
		if len(f) > 0 {
			r.value, r.valueErr = r.parseValue(f)
			return true
		}
		if len(r.rest) > 0 {
			// Leading whitespace; keep consuming this line.
			continue
		}

		if !r.s.Scan() {
			break
		}
		r.lineNum++
		line := r.s.Bytes()
		if i := bytes.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		r.rest = line
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
	}
	return false
}

// parseValue parses one whitespace-delimited field as a finite
// float64.
func (r *Reader) parseValue(f []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("malformed value %q", f)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("non-finite value %q", f)}
	}
	return v, nil
}

// Value returns the last value read, or an error if the value was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Value() (float64, error) {
	if r.valueErr != nil {
		return 0, r.valueErr
	}
	return r.value, nil
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

const isSpace uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	// Collect non-whitespace into field.
	var i int
	for i = 0; i < len(x); {
		if x[i] < 128 {
			// Fast path for ASCII
			if (isSpace>>x[i])&1 != 0 {
				rest = x[i+1:]
				break
			}
			i++
		} else {
			// Slow path for Unicode
			r, n := utf8.DecodeRune(x[i:])
			if unicode.IsSpace(r) {
				rest = x[i+n:]
				break
			}
			i += n
		}
	}
	field = x[:i]

	// Strip whitespace from rest.
	for len(rest) > 0 {
		if rest[0] < 128 {
			if (isSpace>>rest[0])&1 == 0 {
				break
			}
			rest = rest[1:]
		} else {
			r, n := utf8.DecodeRune(rest)
			if !unicode.IsSpace(r) {
				break
			}
			rest = rest[n:]
		}
	}
	return
}
