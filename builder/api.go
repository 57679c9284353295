// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - GenerateLHS is the one matrix orchestrator: resolves builderConfig from
//     options, samples the sparsity pattern, fills coefficients.
//   - GenerateEncoded / GenerateNaive compose the samplers into full instances.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and call order ⇒ identical output.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lpgen/instance"
	"gonum.org/v1/gonum/mat"
)

// Edge is one nonzero cell of the constraint matrix: column Variable,
// row Constraint.
type Edge struct {
	Variable   int
	Constraint int
}

// GenerateLHS samples an m×n constraint matrix (n = variables,
// m = constraints) with GenerateEdges and fills each edge, in sorted edge
// order, with one draw of the configured CoeffFn.
//
// Options: WithRand/WithSeed (required), WithDensity, WithSkew, WithCoeffFn,
// WithCoefficients.
//
// Guarantees: every row and every column holds at least one edge (a sampled
// coefficient of exactly 0.0 is possible but has probability zero for
// continuous samplers).
//
// Complexity: O(n·m·(n+m)) dominated by DegreeDist and the pairwise trials.
func GenerateLHS(variables, constraints int, opts ...BuilderOption) (*mat.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodGenerateLHS, "variables", variables, MinDimension); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGenerateLHS, "constraints", constraints, MinDimension); err != nil {
		return nil, err
	}
	if err := validateRand(MethodGenerateLHS, cfg.rng); err != nil {
		return nil, err
	}

	edges, err := GenerateEdges(variables, constraints, cfg.density, cfg.pv, cfg.pc, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateLHS, err)
	}

	a := mat.NewDense(constraints, variables, nil)
	for _, e := range edges {
		a.Set(e.Constraint, e.Variable, cfg.coeffFn(cfg.rng))
	}

	return a, nil
}

// GenerateEncoded builds an encoded instance from p: A first, then alpha,
// then beta, all from rng. The instance's LP has the sampled (alpha, beta)
// as an optimal primal-dual pair by construction.
func GenerateEncoded(p EncodedParams, rng *rand.Rand, opts ...instance.Option) (*instance.Instance, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateRand(MethodGenerateEncoded, rng); err != nil {
		return nil, err
	}

	a, err := GenerateLHS(p.Variables, p.Constraints, append(p.LHSParams.Options(), WithRand(rng))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateEncoded, err)
	}
	alpha, err := GenerateAlpha(p.Variables, p.Constraints, p.Alpha, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateEncoded, err)
	}
	beta, err := GenerateBeta(p.Variables, p.Constraints, p.BasisSplit, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateEncoded, err)
	}

	in, err := instance.NewEncoded(a, alpha, beta, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateEncoded, err)
	}

	return in, nil
}

// GenerateNaive builds an unsolved instance by sampling A, b and c directly.
// Nothing guarantees the LP is feasible or bounded; attach a solver through
// opts to decode it.
func GenerateNaive(p NaiveParams, rng *rand.Rand, opts ...instance.Option) (*instance.Instance, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateRand(MethodGenerateNaive, rng); err != nil {
		return nil, err
	}

	a, err := GenerateLHS(p.Variables, p.Constraints, append(p.LHSParams.Options(), WithRand(rng))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateNaive, err)
	}
	b := normalVector(p.Constraints, p.RhsMean, p.RhsStd, rng)
	c := normalVector(p.Variables, p.ObjMean, p.ObjStd, rng)

	in, err := instance.NewUnsolved(a, b, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerateNaive, err)
	}

	return in, nil
}
