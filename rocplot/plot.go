// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rocplot renders ROC curves as standalone SVG images.
//
// The drawing is deliberately plain: a square frame with quarter
// ticks, a dashed no-discrimination diagonal, and the curve itself.
// The area under the drawn polyline is the D statistic shown in the
// figure title.
package rocplot

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Options configures Render. The zero value produces a 400x400 image
// titled with the D statistic alone.
type Options struct {
	// Title is prefixed to the "D = ..." figure title.
	Title string

	// Width and Height are the image dimensions in pixels. Values
	// of zero or less choose 400.
	Width, Height int
}

const (
	marginTop    = 28
	marginRight  = 12
	marginBottom = 36
	marginLeft   = 44

	titleFontSize = 14
	tickFontSize  = 10
	tickLen       = 5
)

// Render writes the ROC curve of the two CDFs to w as SVG. The curve
// passes through (cdfY[i], cdfX[i]), so integrating it recovers d,
// which appears in the figure title. Mismatched or too-short CDFs and
// a NaN d are errors.
func Render(w io.Writer, cdfX, cdfY []float64, d float64, opts Options) error {
	if len(cdfX) != len(cdfY) {
		return fmt.Errorf("mismatched CDF lengths %d and %d", len(cdfX), len(cdfY))
	}
	if len(cdfX) < 2 {
		return fmt.Errorf("curve needs at least 2 points, have %d", len(cdfX))
	}
	if math.IsNaN(d) {
		return fmt.Errorf("cannot render degenerate curve (D is NaN)")
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 400
	}
	if height <= 0 {
		height = 400
	}

	// Map the unit square onto the plot frame. SVG y grows down,
	// so the y output scale is inverted.
	xIn := scale.Linear{Min: 0, Max: 1}
	yIn := scale.Linear{Min: 0, Max: 1}
	xOut := scale.Linear{Min: marginLeft, Max: float64(width) - marginRight}
	yOut := scale.Linear{Min: float64(height) - marginBottom, Max: marginTop}
	x := scale.QQ{Src: &xIn, Dest: &xOut}
	y := scale.QQ{Src: &yIn, Dest: &yOut}

	svg := new(bytes.Buffer)
	fmt.Fprintf(svg, `<svg version="1.1" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)

	// Title.
	title := fmt.Sprintf("D = %.4f", d)
	if opts.Title != "" {
		title = opts.Title + ": " + title
	}
	fmt.Fprintf(svg, `  <text x="%f" y="%d" font-size="%d" text-anchor="middle">%s</text>`+"\n",
		(x.Map(0)+x.Map(1))/2, titleFontSize+4, titleFontSize, escape(title))

	// Frame.
	fmt.Fprintf(svg, `  <path d="M%f %fH%fV%fH%fz" fill="none" stroke="black" stroke-width="1px" />`+"\n",
		x.Map(0), y.Map(1), x.Map(1), y.Map(0), x.Map(0))

	// Quarter ticks on both axes.
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		label := strconv.FormatFloat(t, 'g', -1, 64)
		fmt.Fprintf(svg, `  <path d="M%f %fV%f" stroke="black" stroke-width="1px" />`+"\n",
			x.Map(t), y.Map(0), y.Map(0)+tickLen)
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%d" text-anchor="middle">%s</text>`+"\n",
			x.Map(t), y.Map(0)+tickLen+tickFontSize+2, tickFontSize, label)
		fmt.Fprintf(svg, `  <path d="M%f %fH%f" stroke="black" stroke-width="1px" />`+"\n",
			x.Map(0), y.Map(t), x.Map(0)-tickLen)
		fmt.Fprintf(svg, `  <text x="%f" y="%f" font-size="%d" text-anchor="end" dy=".32em">%s</text>`+"\n",
			x.Map(0)-tickLen-3, y.Map(t), tickFontSize, label)
	}

	// No-discrimination reference.
	fmt.Fprintf(svg, `  <path d="M%f %fL%f %f" stroke="gray" stroke-width="1px" stroke-dasharray="4 3" />`+"\n",
		x.Map(0), y.Map(0), x.Map(1), y.Map(1))

	// The curve itself. The CDFs' padding bins put its endpoints
	// at (0,0) and (1,1) already.
	var path bytes.Buffer
	for i := range cdfX {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&path, "%c%f %f", cmd, x.Map(cdfY[i]), y.Map(cdfX[i]))
	}
	fmt.Fprintf(svg, `  <path d="%s" fill="none" stroke="#1b9e77" stroke-width="2px" />`+"\n", path.Bytes())

	fmt.Fprintf(svg, "</svg>\n")
	_, err := w.Write(svg.Bytes())
	return err
}

// WriteCSV writes the curve's points to w as x,y records with a
// header row. The x column holds the cdfY values (the abscissa of the
// rendered curve) and the y column the cdfX values.
func WriteCSV(w io.Writer, cdfX, cdfY []float64) error {
	if len(cdfX) != len(cdfY) {
		return fmt.Errorf("mismatched CDF lengths %d and %d", len(cdfX), len(cdfY))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	rec := make([]string, 2)
	for i := range cdfX {
		rec[0] = strconv.FormatFloat(cdfY[i], 'g', -1, 64)
		rec[1] = strconv.FormatFloat(cdfX[i], 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// escape escapes title text for embedding in SVG.
func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
