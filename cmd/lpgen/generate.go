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

	log "github.com/golang/glog"

	"github.com/katalvlaran/lpgen/builder"
	"github.com/katalvlaran/lpgen/features"
	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/mps"
	"github.com/katalvlaran/lpgen/performance"
	"github.com/katalvlaran/lpgen/simplex"
	"github.com/katalvlaran/lpgen/store"
)

// batchFlags are shared by generate and naive.
type batchFlags struct {
	seeds    int
	seedFile string
	out      string
	config   string
	workers  int
	mps      bool
	clp      bool
	clpBin   string
}

func (b *batchFlags) register(fs *flag.FlagSet, defaultOut string) {
	fs.IntVar(&b.seeds, "seeds", 100, "number of system random seeds")
	fs.StringVar(&b.seedFile, "seed-file", "", "JSON array of seeds (overrides -seeds)")
	fs.StringVar(&b.out, "out", defaultOut, "output directory")
	fs.StringVar(&b.config, "config", "", "YAML parameter file")
	fs.IntVar(&b.workers, "workers", 4, "parallel workers")
	fs.BoolVar(&b.mps, "mps", false, "also write inst_<seed>.mps.gz")
	fs.BoolVar(&b.clp, "clp", false, "measure clp simplex performance")
	fs.StringVar(&b.clpBin, "clp-bin", "clp", "clp binary")
}

// calculators returns the feature (and optional performance) calculators
// attached to every generated instance.
func (b *batchFlags) calculators(ctx context.Context) []instance.Calculator {
	calcs := []instance.Calculator{
		features.CoeffFeatures,
		features.SolutionFeatures(ctx, simplex.Solver{}),
	}
	if b.clp {
		calcs = append(calcs, performance.ClpSimplexPerformance(ctx, performance.Clp{Binary: b.clpBin}))
	}
	return calcs
}

// runBatch generates one instance per seed in parallel, writes each archive
// and the collected data to <out>/<name>.json.
func runBatch(ctx context.Context, b *batchFlags, name string,
	build func(seed int64) (*instance.Instance, error),
	write func(path string, in *instance.Instance) error,
) error {
	seeds, err := loadSeeds(b.seedFile, b.seeds)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(b.out, 0o755); err != nil {
		return err
	}
	calcs := b.calculators(ctx)

	log.Infof("%s: %d seeds, %d workers, output %s", name, len(seeds), b.workers, b.out)
	results := runPool(ctx, seeds, b.workers, func(seed int64) (map[string]any, error) {
		in, err := build(seed)
		if err != nil {
			return nil, err
		}
		in.Set("seed", seed)
		if err = instance.Calculate(in, calcs...); err != nil {
			return nil, err
		}
		base := filepath.Join(b.out, fmt.Sprintf("inst_%d", seed))
		if err = write(base+".tar", in); err != nil {
			return nil, err
		}
		if b.mps {
			if err = mps.WriteFile(base+".mps.gz", in); err != nil {
				return nil, err
			}
		}
		return in.Data(), nil
	})

	data := make([]map[string]any, 0, len(results))
	var errs []error
	for i, r := range results {
		if r.err != nil {
			log.Warningf("%s: seed %d: %v", name, seeds[i], r.err)
			errs = append(errs, fmt.Errorf("seed %d: %w", seeds[i], r.err))
			continue
		}
		data = append(data, r.data)
	}
	if err = writeJSON(filepath.Join(b.out, name+".json"), data); err != nil {
		return err
	}
	log.Infof("%s: wrote %d instances, %d failures", name, len(data), len(errs))

	return errors.Join(errs...)
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var b batchFlags
	b.register(fs, "generated")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(b.config)
	if err != nil {
		return err
	}

	build := func(seed int64) (*instance.Instance, error) {
		rng := builder.NewRand(seed)
		p := cfg.Encoded
		if cfg.Random {
			p = builder.RandomEncodedParams(rng)
		}
		return builder.GenerateEncoded(p, rng)
	}
	return runBatch(ctx, &b, "generate", build, store.WriteEncodedFile)
}

func runNaive(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("naive", flag.ContinueOnError)
	var b batchFlags
	b.register(fs, "naive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(b.config)
	if err != nil {
		return err
	}

	build := func(seed int64) (*instance.Instance, error) {
		rng := builder.NewRand(seed)
		p := cfg.Naive
		if cfg.Random {
			p = builder.RandomNaiveParams(rng)
		}
		return builder.GenerateNaive(p, rng)
	}
	return runBatch(ctx, &b, "naive", build, store.WriteLPFile)
}
