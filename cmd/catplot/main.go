// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command catplot draws a categorical scatter plot from CSV input.
//
// catplot reads row-per-observation CSV data with a header row,
// groups it by the -x (or -y) column, and writes a strip or swarm
// plot as SVG. With -table it prints a per-category summary instead.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/rserran/catplot/catdata"
	"github.com/rserran/catplot/catplot"
	"github.com/rserran/catplot/catstat"
)

func main() {
	log.SetPrefix("catplot: ")
	log.SetFlags(0)

	var (
		flagX      = flag.String("x", "", "`column` to plot on the x axis")
		flagY      = flag.String("y", "", "`column` to plot on the y axis")
		flagHue    = flag.String("hue", "", "`column` for hue sub-grouping")
		flagKind   = flag.String("kind", "strip", "plot `kind`: strip or swarm")
		flagJitter = flag.Float64("jitter", 0.1, "strip jitter as a fraction of the slot width")
		flagRadius = flag.Float64("radius", 0.05, "swarm point radius in data units")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable  = flag.Bool("table", false, "output a summary table instead of a plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	tab := readCSV(flag.Arg(0))
	in := catdata.Long{
		Data: tab,
		X:    catdata.Col(*flagX),
		Y:    catdata.Col(*flagY),
		Hue:  catdata.Col(*flagHue),
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		r, err := catdata.Resolve(in)
		if err != nil {
			log.Fatal(err)
		}
		table.Fprint(f, catstat.SummaryTable(r))
		return
	}

	var marks *catplot.Marks
	var err error
	switch *flagKind {
	case "strip":
		marks, err = catplot.Strip{Jitter: *flagJitter}.Plot(in)
	case "swarm":
		marks, err = catplot.SwarmPlot{Radius: *flagRadius, Warnf: log.Printf}.Plot(in)
	default:
		log.Fatalf("unknown plot kind %q", *flagKind)
	}
	if err != nil {
		log.Fatal(err)
	}

	p := gg.NewPlot(marksTable(marks))
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: hueCol(marks)})
	p.Add(gg.AxisLabel("x", *flagX), gg.AxisLabel("y", *flagY))
	if err := p.WriteSVG(f, 600, 400); err != nil {
		log.Fatal(err)
	}
}

func readCSV(path string) *table.Table {
	f := os.Stdin
	if path != "" && path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) < 2 {
		log.Fatal("CSV input needs a header row and at least one data row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true)
}

// marksTable flattens a mark layout into plot coordinates, honoring
// the resolved orientation.
func marksTable(m *catplot.Marks) *table.Table {
	xs := make([]float64, len(m.Points))
	ys := make([]float64, len(m.Points))
	hues := make([]string, len(m.Points))
	for i, pt := range m.Points {
		if m.Orient == catdata.Horizontal {
			xs[i], ys[i] = pt.Val, pt.Cat
		} else {
			xs[i], ys[i] = pt.Cat, pt.Val
		}
		if pt.Hue >= 0 {
			hues[i] = m.HueLevels[pt.Hue]
		}
	}
	b := new(table.Builder).Add("x", xs).Add("y", ys)
	if len(m.HueLevels) > 0 {
		b.Add("hue", hues)
	}
	return b.Done()
}

func hueCol(m *catplot.Marks) string {
	if len(m.HueLevels) > 0 {
		return "hue"
	}
	return ""
}
