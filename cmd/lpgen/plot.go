// SPDX-License-Identifier: MIT
// Package: lpgen/cmd/lpgen

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lpgen/search"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func readTrace(path string) ([]search.Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var trace []search.Step
	if err = json.Unmarshal(data, &trace); err != nil {
		return nil, fmt.Errorf("trace %s: %w", path, err)
	}
	return trace, nil
}

// plotTrace renders the incumbent objective as a line and every evaluated
// candidate as a point.
func plotTrace(trace []search.Step, title, path string) error {
	if len(trace) == 0 {
		return errors.New("empty trace")
	}
	best := make(plotter.XYs, len(trace))
	cand := make(plotter.XYs, len(trace))
	for i, s := range trace {
		best[i].X, best[i].Y = float64(s.Index), s.Objective
		cand[i].X, cand[i].Y = float64(s.Index), s.Candidate
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "step"
	p.Y.Label.Text = "objective"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(best)
	if err != nil {
		return err
	}
	points, err := plotter.NewScatter(cand)
	if err != nil {
		return err
	}
	points.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(line, points)
	p.Legend.Add("best", line)
	p.Legend.Add("candidate", points)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func runPlot(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	tracePath := fs.String("trace", "search/trace.json", "trace JSON written by search")
	out := fs.String("out", "trace.png", "output image (png, svg or pdf)")
	title := fs.String("title", "search trace", "plot title")
	if err := fs.Parse(args); err != nil {
		return err
	}
	trace, err := readTrace(*tracePath)
	if err != nil {
		return err
	}
	return plotTrace(trace, *title, *out)
}
