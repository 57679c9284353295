// SPDX-License-Identifier: MIT
// Package: lpgen/cmd/lpgen

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lpgen/builder"
	"github.com/katalvlaran/lpgen/features"
	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/neighbour"
	"github.com/katalvlaran/lpgen/performance"
	"github.com/katalvlaran/lpgen/search"
	"github.com/katalvlaran/lpgen/simplex"
	"github.com/katalvlaran/lpgen/store"
)

// targetMetric is the distance of (rhs_mean, obj_mean) from (-100, 100),
// used to pick search start points from a reference dataset and as a
// built-in search objective.
const targetMetric = "target"

// referenceDraws is the number of reference samples considered when
// picking a start instance.
const referenceDraws = 20

type searchFlags struct {
	start     string
	startKind string
	reference string
	refDir    string
	operators string
	steps     int
	seed      int64
	sense     string
	metric    string
	out       string
	clpBin    string
}

func targetScore(rhsMean, objMean float64) float64 {
	return (rhsMean+100)*(rhsMean+100) + (objMean-100)*(objMean-100)
}

// objective maps a metric name onto a search objective.
func objective(ctx context.Context, metric, clpBin string) search.Objective {
	switch {
	case metric == targetMetric:
		return func(in *instance.Instance) (float64, error) {
			data, err := features.CoeffFeatures(in)
			if err != nil {
				return 0, err
			}
			in.Annotate(data)
			rhs, _ := in.Float("rhs_mean")
			obj, _ := in.Float("obj_mean")
			return targetScore(rhs, obj), nil
		}
	case strings.HasPrefix(metric, "clp_"):
		return features.Metric(performance.ClpSimplexPerformance(ctx, performance.Clp{Binary: clpBin}), metric)
	case strings.HasPrefix(metric, "strbr_"):
		return features.Metric(performance.StrongBranchPerformance(ctx, performance.Scip{}), metric)
	case metric == "solvable" || metric == "binding_constraints" ||
		metric == "fractional_primal" || metric == "total_fractionality":
		return features.Metric(features.SolutionFeatures(ctx, simplex.Solver{}), metric)
	default:
		return features.Metric(features.CoeffFeatures, metric)
	}
}

// startInstance reads the -start archive, or picks the best of
// referenceDraws solvable reference records by the target metric.
func startInstance(f *searchFlags) (*instance.Instance, error) {
	solver := instance.WithSolver(simplex.Solver{})
	path, kind := f.start, f.startKind

	if path == "" {
		if f.reference == "" {
			return nil, errors.New("one of -start or -reference is required")
		}
		ref, err := features.LoadReferenceFile(f.reference)
		if err != nil {
			return nil, err
		}
		rec, err := ref.Best(builder.StreamRand(f.seed, 1), referenceDraws,
			func(r features.Record) bool { return r.Bool("solvable") },
			func(r features.Record) float64 {
				rhs, _ := r.Float("rhs_mean")
				obj, _ := r.Float("obj_mean")
				return targetScore(rhs, obj)
			})
		if err != nil {
			return nil, err
		}
		seed, err := rec.Seed()
		if err != nil {
			return nil, err
		}
		path, kind = filepath.Join(f.refDir, fmt.Sprintf("inst_%d.tar", seed)), "lp"
		log.Infof("search: starting from reference seed %d", seed)
	}

	switch kind {
	case "encoded":
		return store.ReadEncodedFile(path, solver)
	case "lp":
		return store.ReadLPFile(path, solver)
	default:
		return nil, fmt.Errorf("unknown start kind %q", kind)
	}
}

func runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	var f searchFlags
	fs.StringVar(&f.start, "start", "", "start instance archive")
	fs.StringVar(&f.startKind, "start-kind", "encoded", "start archive kind: encoded or lp")
	fs.StringVar(&f.reference, "reference", "", "reference dataset JSON used when -start is empty")
	fs.StringVar(&f.refDir, "reference-dir", ".", "directory holding the reference LP archives")
	fs.StringVar(&f.operators, "operators", "encoded", "neighbourhood: encoded or unsolved")
	fs.IntVar(&f.steps, "steps", 100, "search steps including the start")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.StringVar(&f.sense, "sense", "max", "max or min")
	fs.StringVar(&f.metric, "metric", "clp_primal_iterations", "feature or performance key to optimise, or \"target\"")
	fs.StringVar(&f.out, "out", "search", "output directory")
	fs.StringVar(&f.clpBin, "clp-bin", "clp", "clp binary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sense, err := search.ParseSense(f.sense)
	if err != nil {
		return err
	}
	start, err := startInstance(&f)
	if err != nil {
		return err
	}

	var (
		op    neighbour.Operator
		write func(string, *instance.Instance) error
	)
	switch f.operators {
	case "encoded":
		op, write = neighbour.EncodedDefaults(), store.WriteEncodedFile
		if start, err = start.ToEncoded(); err != nil {
			return err
		}
	case "unsolved":
		op, write = neighbour.UnsolvedDefaults(), store.WriteLPFile
		if start, err = start.ToUnsolved(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown operators %q", f.operators)
	}

	if err = os.MkdirAll(f.out, 0o755); err != nil {
		return err
	}
	save := search.ImprovedOnly(func(step search.Step, in *instance.Instance) error {
		return write(filepath.Join(f.out, fmt.Sprintf("step_%04d.tar", step.Index)), in)
	})

	trace, best, err := search.Run(search.Config{
		Start:     start,
		Objective: objective(ctx, f.metric, f.clpBin),
		Sense:     sense,
		Neighbour: op,
		Steps:     f.steps,
		Rand:      builder.StreamRand(f.seed, 2),
	}, search.WithLogger(glogLogger{}), search.WithObserver(save))
	if werr := writeJSON(filepath.Join(f.out, "trace.json"), trace); werr != nil {
		return errors.Join(err, werr)
	}
	if err != nil {
		return err
	}

	if len(trace) == 0 {
		log.Info("search: no steps requested")
		return nil
	}
	last := trace[len(trace)-1]
	log.Infof("search: %d steps, best %s=%g (%dx%d)", len(trace), f.metric, last.Objective,
		best.Variables(), best.Constraints())
	return nil
}
