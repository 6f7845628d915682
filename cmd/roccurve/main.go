// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roccurve draws the ROC curve of two numeric samples.
//
// Each input file holds one sample: whitespace-separated numbers,
// with "#" comments. The name "-" reads a sample from stdin.
//
// The default output is a standalone SVG image on stdout. The curve
// passes through one point per histogram bin of the samples' shared
// binning; the area under it is the D separation statistic, shown in
// the image title. With -csv, the curve's points are written as CSV
// records instead, for external plotting tools.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/detcurve/roc/rocfmt"
	"github.com/detcurve/roc/rocplot"
	"github.com/detcurve/roc/rocstat"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flagOut := flag.String("o", "", "write output to `file` instead of stdout")
	flagCSV := flag.Bool("csv", false, "write the curve's points as CSV instead of SVG")
	flagTitle := flag.String("title", "", "use `title` in the image (default: the input file names)")
	flagSize := flag.String("size", "400x400", "render a `WxH` pixel image")
	flag.Usage = func() {
		// Note: Keep this in sync with the package doc.
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] x.txt y.txt

roccurve draws the ROC curve of two numeric samples.

Each input file holds one sample: whitespace-separated numbers, with
"#" comments. The name "-" reads a sample from stdin.

The default output is a standalone SVG image on stdout. The curve
passes through one point per histogram bin of the samples' shared
binning; the area under it is the D separation statistic, shown in
the image title. With -csv, the curve's points are written as CSV
records instead, for external plotting tools.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	width, height, err := parseSize(*flagSize)
	if err != nil {
		log.Fatal(err)
	}

	x := readSample(flag.Arg(0))
	y := readSample(flag.Arg(1))

	d, cdfX, cdfY := rocstat.AUC(x, y)
	if math.IsNaN(d) {
		log.Fatalf("%s and %s have no spread; the curve is degenerate", flag.Arg(0), flag.Arg(1))
	}

	var out io.Writer = os.Stdout
	var f *os.File
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		out = f
	}

	if *flagCSV {
		err = rocplot.WriteCSV(out, cdfX, cdfY)
	} else {
		title := *flagTitle
		if title == "" {
			title = flag.Arg(0) + " vs " + flag.Arg(1)
		}
		err = rocplot.Render(out, cdfX, cdfY, d, rocplot.Options{
			Title:  title,
			Width:  width,
			Height: height,
		})
	}
	if err != nil {
		log.Fatal("writing output: ", err)
	}
	if f != nil {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// parseSize parses a pixel specification like "640x480".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH, like 640x480)", s)
	}
	return w, h, nil
}

// readSample loads one sample file. An unreadable, malformed, or
// empty sample is fatal.
func readSample(path string) []float64 {
	vals, err := rocfmt.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if len(vals) == 0 {
		log.Fatalf("%s: no values", path)
	}
	return vals
}
