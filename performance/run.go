// SPDX-License-Identifier: MIT
// Package: lpgen/performance

package performance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/mps"
)

// Runner executes a command and returns its stdout. A non-zero exit status
// is not an error for a Runner; solvers exit non-zero on infeasible models
// and the output still carries the answer.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return stdout.Bytes(), nil
}

// ClpMethod selects a clp algorithm.
type ClpMethod string

// Supported clp methods.
const (
	PrimalSimplex ClpMethod = "primalsimplex"
	DualSimplex   ClpMethod = "dualsimplex"
	Barrier       ClpMethod = "barrier"
)

// Clp runs the COIN-OR clp binary.
type Clp struct {
	Binary string // default "clp"
	Run    Runner // default ExecRunner
}

func (c Clp) cmd() (string, Runner) {
	bin, run := c.Binary, c.Run
	if bin == "" {
		bin = "clp"
	}
	if run == nil {
		run = ExecRunner
	}
	return bin, run
}

// SolveFile solves the model in file with method.
func (c Clp) SolveFile(ctx context.Context, file string, method ClpMethod) (ClpResult, error) {
	bin, run := c.cmd()
	out, err := run(ctx, bin, file, "-"+string(method))
	if err != nil {
		return ClpResult{}, fmt.Errorf("Clp.SolveFile: %w", err)
	}
	return ParseClp(string(out)), nil
}

// Scip runs the SCIP binary.
type Scip struct {
	Binary string // default "scip"
	Run    Runner // default ExecRunner
}

// StrongBranchFile forces full strong branching at the root node of file
// and returns the strong branching statistics.
func (s Scip) StrongBranchFile(ctx context.Context, file string) (StrongBranchResult, error) {
	bin, run := s.Binary, s.Run
	if bin == "" {
		bin = "scip"
	}
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, bin,
		"-c", "read "+file,
		"-c", "set limits nodes 1",
		"-c", "set branching allfullstrong priority 1000000",
		"-c", "opt",
		"-c", "display statistics",
		"-c", "quit",
	)
	if err != nil {
		return StrongBranchResult{}, fmt.Errorf("Scip.StrongBranchFile: %w", err)
	}
	return ParseStrongBranch(string(out))
}

// withTempModel writes in to a temporary .mps.gz file, calls fn with its
// path and removes it afterwards.
func withTempModel(in *instance.Instance, fn func(path string) error, opts ...mps.Option) error {
	dir, err := os.MkdirTemp("", "lpgen-perf-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "model.mps.gz")
	if err = mps.WriteFile(path, in, opts...); err != nil {
		return err
	}
	return fn(path)
}

// objectiveValue maps an unsolved run to nil, as the datasets expect.
func objectiveValue(r ClpResult) any {
	if !r.Solved {
		return nil
	}
	return r.Objective
}

// ClpSimplexPerformance returns a Calculator running clp's primal simplex,
// dual simplex and barrier on the LP form of each instance.
func ClpSimplexPerformance(ctx context.Context, c Clp) instance.Calculator {
	return func(in *instance.Instance) (map[string]any, error) {
		results := make(map[ClpMethod]ClpResult, 3)
		err := withTempModel(in, func(path string) error {
			for _, method := range []ClpMethod{PrimalSimplex, DualSimplex, Barrier} {
				res, err := c.SolveFile(ctx, path, method)
				if err != nil {
					return err
				}
				results[method] = res
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("ClpSimplexPerformance: %w", err)
		}

		p, d, b := results[PrimalSimplex], results[DualSimplex], results[Barrier]
		return map[string]any{
			"clp_primal_objective":   objectiveValue(p),
			"clp_primal_iterations":  p.Iterations,
			"clp_primal_time":        p.Time,
			"clp_dual_objective":     objectiveValue(d),
			"clp_dual_iterations":    d.Iterations,
			"clp_dual_time":          d.Time,
			"clp_barrier_objective":  objectiveValue(b),
			"clp_barrier_iterations": b.Iterations,
			"clp_barrier_time":       b.Time,
			"clp_barrier_flops":      b.Flops,
		}, nil
	}
}

// StrongBranchPerformance returns a Calculator writing each instance as a
// pure integer program and reporting SCIP root strong branching effort.
func StrongBranchPerformance(ctx context.Context, s Scip) instance.Calculator {
	return func(in *instance.Instance) (map[string]any, error) {
		var res StrongBranchResult
		err := withTempModel(in, func(path string) error {
			var err error
			res, err = s.StrongBranchFile(ctx, path)
			return err
		}, mps.AllInteger())
		if err != nil {
			return nil, fmt.Errorf("StrongBranchPerformance: %w", err)
		}
		return map[string]any{
			"strbr_time":       res.Time,
			"strbr_calls":      res.Calls,
			"strbr_iterations": res.Iterations,
			"strbr_percall":    res.PerCall,
		}, nil
	}
}
