// SPDX-License-Identifier: MIT
// Package: lpgen/features

package features

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lpgen/instance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Zero thresholds for the relaxation features.
const (
	BindingTol    = 1e-10
	FractionalTol = 1e-10
)

// DegreeSeq returns the nonzero count per column (variables) and per row
// (constraints) of a.
func DegreeSeq(a mat.Matrix) (vars, cons []int) {
	m, n := a.Dims()
	vars, cons = make([]int, n), make([]int, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if a.At(i, j) != 0 {
				vars[j]++
				cons[i]++
			}
		}
	}
	return vars, cons
}

func minMax(v []int) (lo, hi int) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		lo, hi = min(lo, x), max(hi, x)
	}
	return lo, hi
}

// CoeffFeatures summarises the coefficient distributions of in: sizes,
// nonzero count and density, population mean/std of the nonzero lhs entries,
// of b and of c, degree ranges, and b/c means normalised by the mean
// absolute lhs coefficient. The lhs_* and *_normed keys are omitted when A
// has no nonzero entry.
func CoeffFeatures(in *instance.Instance) (map[string]any, error) {
	a := in.Lhs()
	rhs, err := in.Rhs()
	if err != nil {
		return nil, fmt.Errorf("CoeffFeatures: %w", err)
	}
	obj, err := in.Objective()
	if err != nil {
		return nil, fmt.Errorf("CoeffFeatures: %w", err)
	}
	n, m := in.Variables(), in.Constraints()

	var nz, absNz []float64
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				nz = append(nz, v)
				absNz = append(absNz, math.Abs(v))
			}
		}
	}

	rhsMean, rhsStd := stat.PopMeanStdDev(rhs, nil)
	objMean, objStd := stat.PopMeanStdDev(obj, nil)

	vars, cons := DegreeSeq(a)
	varMin, varMax := minMax(vars)
	consMin, consMax := minMax(cons)

	out := map[string]any{
		"variables":           n,
		"constraints":         m,
		"nonzeros":            len(nz),
		"coefficient_density": float64(len(nz)) / float64(n*m),
		"rhs_mean":            rhsMean,
		"rhs_std":             rhsStd,
		"obj_mean":            objMean,
		"obj_std":             objStd,
		"var_degree_min":      varMin,
		"var_degree_max":      varMax,
		"cons_degree_min":     consMin,
		"cons_degree_max":     consMax,
	}
	// lhs statistics are undefined for an all-zero matrix.
	if len(nz) == 0 {
		return out, nil
	}
	lhsMean, lhsStd := stat.PopMeanStdDev(nz, nil)
	absMean := floats.Sum(absNz) / float64(len(absNz))
	out["lhs_mean"] = lhsMean
	out["lhs_std"] = lhsStd
	out["lhs_abs_mean"] = absMean
	out["rhs_mean_normed"] = rhsMean / absMean
	out["obj_mean_normed"] = objMean / absMean

	return out, nil
}

// SolutionFeatures returns a Calculator that solves the LP form of each
// instance with s and reports relaxation features. A non-optimal status is
// data, not an error: it yields {"solvable": false}.
func SolutionFeatures(ctx context.Context, s instance.Solver) instance.Calculator {
	if s == nil {
		panic("features: SolutionFeatures(nil solver)")
	}

	return func(in *instance.Instance) (map[string]any, error) {
		rhs, err := in.Rhs()
		if err != nil {
			return nil, fmt.Errorf("SolutionFeatures: %w", err)
		}
		obj, err := in.Objective()
		if err != nil {
			return nil, fmt.Errorf("SolutionFeatures: %w", err)
		}
		res, err := s.Solve(ctx, instance.Problem{
			N: in.Variables(), M: in.Constraints(), A: in.Lhs(), B: rhs, C: obj,
		})
		if err != nil {
			return nil, fmt.Errorf("SolutionFeatures: %w", err)
		}
		if res.Status != instance.StatusOptimal {
			return map[string]any{"solvable": false}, nil
		}

		binding := 0
		for _, v := range res.Slack {
			if v < BindingTol {
				binding++
			}
		}
		frac := make([]float64, len(res.Primal))
		fractional := 0
		for j, x := range res.Primal {
			frac[j] = math.Abs(x - math.RoundToEven(x))
			if frac[j] > FractionalTol {
				fractional++
			}
		}

		return map[string]any{
			"solvable":            true,
			"binding_constraints": binding,
			"fractional_primal":   fractional,
			"total_fractionality": floats.Sum(frac),
		}, nil
	}
}

// Metric returns a search objective reading key from the output of calc.
// Booleans count as 0/1. A missing or non-numeric key is an error. The full
// calculator output is attached to the scored instance.
func Metric(calc instance.Calculator, key string) func(*instance.Instance) (float64, error) {
	if calc == nil {
		panic("features: Metric(nil calculator)")
	}

	return func(in *instance.Instance) (float64, error) {
		data, err := calc(in)
		if err != nil {
			return 0, err
		}
		v, ok := toFloat(data[key])
		if !ok {
			return 0, fmt.Errorf("Metric %q: %w", key, ErrNotNumeric)
		}
		in.Annotate(data)
		return v, nil
	}
}
