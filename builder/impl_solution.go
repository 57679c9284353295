// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// impl_solution.go — samplers for the encoded solution (alpha, beta).
//
// GenerateBeta:
//   • primal = round(basisSplit·min(n, m)) structural columns are basic,
//     the remaining m − primal basic entries are slacks. Both sets are drawn
//     without replacement, so beta has exactly m ones.
//
// GenerateAlpha:
//   • Primal magnitudes are ceil(LogNormal(MeanPrimal, StdPrimal)), i.e.
//     positive integers. round(FracViolations·n) of them, chosen without
//     replacement, get a Beta(BetaParam, BetaParam) fraction subtracted so the
//     LP optimum is fractional there.
//   • Dual magnitudes are LogNormal(MeanDual, StdDual).
//   • Every entry is strictly positive.
//
// Determinism (draw order):
//   • GenerateBeta: primal positions, then slack positions.
//   • GenerateAlpha: violation positions, fractions, primal values, dual values.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// AlphaParams are the distribution parameters of GenerateAlpha.
type AlphaParams struct {
	// FracViolations is the share of primal entries made fractional, in [0,1].
	FracViolations float64 `yaml:"frac_violations" json:"frac_violations"`
	// BetaParam is the symmetric shape of the Beta distribution of the
	// subtracted fractions (> 0). Small values push fractions towards 0 and 1.
	BetaParam float64 `yaml:"beta_param" json:"beta_param"`

	MeanPrimal float64 `yaml:"mean_primal" json:"mean_primal"`
	StdPrimal  float64 `yaml:"std_primal" json:"std_primal"`
	MeanDual   float64 `yaml:"mean_dual" json:"mean_dual"`
	StdDual    float64 `yaml:"std_dual" json:"std_dual"`
}

// DefaultAlphaParams returns half fractional primals with uniform fractions
// and standard log-normal magnitudes.
func DefaultAlphaParams() AlphaParams {
	return AlphaParams{
		FracViolations: 0.5,
		BetaParam:      1,
		MeanPrimal:     0,
		StdPrimal:      1,
		MeanDual:       0,
		StdDual:        1,
	}
}

// Validate reports the first meaningless parameter.
func (p AlphaParams) Validate() error {
	if err := validateProbability(MethodGenerateAlpha, "FracViolations", p.FracViolations); err != nil {
		return err
	}
	if math.IsNaN(p.BetaParam) || math.IsInf(p.BetaParam, 0) || p.BetaParam <= 0 {
		return builderErrorf(MethodGenerateAlpha, ErrInvalidParameter, "BetaParam must be finite and > 0, got %g", p.BetaParam)
	}
	if err := validateFinite(MethodGenerateAlpha, "MeanPrimal", p.MeanPrimal); err != nil {
		return err
	}
	if err := validateScale(MethodGenerateAlpha, "StdPrimal", p.StdPrimal); err != nil {
		return err
	}
	if err := validateFinite(MethodGenerateAlpha, "MeanDual", p.MeanDual); err != nil {
		return err
	}

	return validateScale(MethodGenerateAlpha, "StdDual", p.StdDual)
}

// GenerateBeta draws a basis indicator of length n+m with exactly m ones.
func GenerateBeta(n, m int, basisSplit float64, rng *rand.Rand) ([]float64, error) {
	if err := validateMin(MethodGenerateBeta, "variables", n, MinDimension); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGenerateBeta, "constraints", m, MinDimension); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodGenerateBeta, "basisSplit", basisSplit); err != nil {
		return nil, err
	}
	if err := validateRand(MethodGenerateBeta, rng); err != nil {
		return nil, err
	}

	primal := int(math.RoundToEven(basisSplit * float64(min(n, m))))
	slack := m - primal

	beta := make([]float64, n+m)
	for _, i := range sampleWithoutReplacement(rng, 0, n, primal) {
		beta[i] = 1
	}
	for _, i := range sampleWithoutReplacement(rng, n, m, slack) {
		beta[i] = 1
	}

	return beta, nil
}

// GenerateAlpha draws a strictly positive magnitude vector of length n+m.
func GenerateAlpha(n, m int, p AlphaParams, rng *rand.Rand) ([]float64, error) {
	if err := validateMin(MethodGenerateAlpha, "variables", n, MinDimension); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGenerateAlpha, "constraints", m, MinDimension); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateRand(MethodGenerateAlpha, rng); err != nil {
		return nil, err
	}

	violations := int(math.RoundToEven(p.FracViolations * float64(n)))
	at := sampleWithoutReplacement(rng, 0, n, violations)

	frac := distuv.Beta{Alpha: p.BetaParam, Beta: p.BetaParam, Src: rng}
	fractions := make([]float64, violations)
	for i := range fractions {
		fractions[i] = frac.Rand()
	}

	alpha := make([]float64, n+m)
	primal := distuv.LogNormal{Mu: p.MeanPrimal, Sigma: p.StdPrimal, Src: rng}
	for i := 0; i < n; i++ {
		alpha[i] = math.Ceil(primal.Rand())
	}
	for k, i := range at {
		alpha[i] -= fractions[k]
	}

	dual := distuv.LogNormal{Mu: p.MeanDual, Sigma: p.StdDual, Src: rng}
	for j := n; j < n+m; j++ {
		alpha[j] = dual.Rand()
	}

	return alpha, nil
}
