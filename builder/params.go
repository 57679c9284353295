// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// params.go — parameter bundles of the end-to-end pipelines and their random
// draws for batch generation.
//
// Parameter structs carry yaml and json tags: the CLI reads them from YAML
// files and records them next to each generated instance.

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// LHSParams controls the constraint matrix sampler.
type LHSParams struct {
	Density    float64 `yaml:"density" json:"density"`
	PV         float64 `yaml:"pv" json:"pv"`
	PC         float64 `yaml:"pc" json:"pc"`
	CoeffLoc   float64 `yaml:"coeff_loc" json:"coeff_loc"`
	CoeffScale float64 `yaml:"coeff_scale" json:"coeff_scale"`
}

// DefaultLHSParams mirrors the builderConfig defaults.
func DefaultLHSParams() LHSParams {
	return LHSParams{
		Density:    DefaultDensity,
		PV:         DefaultSkew,
		PC:         DefaultSkew,
		CoeffLoc:   DefaultCoeffLoc,
		CoeffScale: DefaultCoeffScale,
	}
}

// Validate reports the first out-of-range field.
func (p LHSParams) Validate() error {
	if err := validateProbability(MethodGenerateLHS, "density", p.Density); err != nil {
		return err
	}
	if err := validateProbability(MethodGenerateLHS, "pv", p.PV); err != nil {
		return err
	}
	if err := validateProbability(MethodGenerateLHS, "pc", p.PC); err != nil {
		return err
	}
	if err := validateFinite(MethodGenerateLHS, "coeff_loc", p.CoeffLoc); err != nil {
		return err
	}

	return validateScale(MethodGenerateLHS, "coeff_scale", p.CoeffScale)
}

// Options converts validated parameters into builder options.
// Call Validate first; the option constructors panic on bad values.
func (p LHSParams) Options() []BuilderOption {
	return []BuilderOption{
		WithDensity(p.Density),
		WithSkew(p.PV, p.PC),
		WithCoefficients(p.CoeffLoc, p.CoeffScale),
	}
}

// EncodedParams drives GenerateEncoded.
type EncodedParams struct {
	Variables   int `yaml:"variables" json:"variables"`
	Constraints int `yaml:"constraints" json:"constraints"`

	LHSParams `yaml:",inline"`

	BasisSplit float64     `yaml:"basis_split" json:"basis_split"`
	Alpha      AlphaParams `yaml:"alpha" json:"alpha"`
}

// DefaultEncodedParams returns a 50×50 problem with default samplers.
func DefaultEncodedParams() EncodedParams {
	return EncodedParams{
		Variables:   50,
		Constraints: 50,
		LHSParams:   DefaultLHSParams(),
		BasisSplit:  DefaultBasisSplit,
		Alpha:       DefaultAlphaParams(),
	}
}

// Validate reports the first meaningless field.
func (p EncodedParams) Validate() error {
	if err := validateMin(MethodGenerateEncoded, "variables", p.Variables, MinDimension); err != nil {
		return err
	}
	if err := validateMin(MethodGenerateEncoded, "constraints", p.Constraints, MinDimension); err != nil {
		return err
	}
	if err := p.LHSParams.Validate(); err != nil {
		return err
	}
	if err := validateProbability(MethodGenerateEncoded, "basis_split", p.BasisSplit); err != nil {
		return err
	}

	return p.Alpha.Validate()
}

// NaiveParams drives GenerateNaive.
type NaiveParams struct {
	Variables   int `yaml:"variables" json:"variables"`
	Constraints int `yaml:"constraints" json:"constraints"`

	LHSParams `yaml:",inline"`

	RhsMean float64 `yaml:"rhs_mean" json:"rhs_mean"`
	RhsStd  float64 `yaml:"rhs_std" json:"rhs_std"`
	ObjMean float64 `yaml:"obj_mean" json:"obj_mean"`
	ObjStd  float64 `yaml:"obj_std" json:"obj_std"`
}

// DefaultNaiveParams returns a 50×50 problem with standard normal b and c.
func DefaultNaiveParams() NaiveParams {
	return NaiveParams{
		Variables:   50,
		Constraints: 50,
		LHSParams:   DefaultLHSParams(),
		RhsMean:     0,
		RhsStd:      1,
		ObjMean:     0,
		ObjStd:      1,
	}
}

// Validate reports the first meaningless field.
func (p NaiveParams) Validate() error {
	if err := validateMin(MethodGenerateNaive, "variables", p.Variables, MinDimension); err != nil {
		return err
	}
	if err := validateMin(MethodGenerateNaive, "constraints", p.Constraints, MinDimension); err != nil {
		return err
	}
	if err := p.LHSParams.Validate(); err != nil {
		return err
	}
	if err := validateFinite(MethodGenerateNaive, "rhs_mean", p.RhsMean); err != nil {
		return err
	}
	if err := validateScale(MethodGenerateNaive, "rhs_std", p.RhsStd); err != nil {
		return err
	}
	if err := validateFinite(MethodGenerateNaive, "obj_mean", p.ObjMean); err != nil {
		return err
	}

	return validateScale(MethodGenerateNaive, "obj_std", p.ObjStd)
}

// uniform draws one U[lo, hi) value from rng.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: rng}.Rand()
}

// randomLHSParams draws density ∈ U[dLo, dHi), skews ∈ U[0,1),
// coefficient location ∈ U[-2,2) and scale ∈ U[0.1,1).
func randomLHSParams(rng *rand.Rand, dLo, dHi float64) LHSParams {
	return LHSParams{
		Density:    uniform(rng, dLo, dHi),
		PV:         uniform(rng, 0, 1),
		PC:         uniform(rng, 0, 1),
		CoeffLoc:   uniform(rng, -2, 2),
		CoeffScale: uniform(rng, 0.1, 1),
	}
}

// RandomEncodedParams draws the parameters of one varied batch instance:
// 50–99 variables and constraints, basis split and violation share ∈ U[0,1),
// Beta shape ∈ LogNormal(−0.2, 1.8), density ∈ U[0.3,0.7).
// Draw order is fixed; the same rng state gives the same parameters.
func RandomEncodedParams(rng *rand.Rand) EncodedParams {
	var p EncodedParams
	p.Variables = 50 + rng.Intn(50)
	p.Constraints = 50 + rng.Intn(50)
	p.BasisSplit = uniform(rng, 0, 1)
	p.Alpha = AlphaParams{
		FracViolations: uniform(rng, 0, 1),
		BetaParam:      distuv.LogNormal{Mu: -0.2, Sigma: 1.8, Src: rng}.Rand(),
		MeanPrimal:     0,
		StdPrimal:      1,
		MeanDual:       0,
		StdDual:        1,
	}
	p.LHSParams = randomLHSParams(rng, 0.3, 0.7)

	return p
}

// RandomNaiveParams draws the parameters of one naive batch instance:
// fixed 50×50, rhs mean ∈ U[-100,100) and std ∈ U[1,30), objective mean
// ∈ U[-100,100) and std ∈ U[1,10), density ∈ U[0,1).
func RandomNaiveParams(rng *rand.Rand) NaiveParams {
	var p NaiveParams
	p.Variables, p.Constraints = 50, 50
	p.RhsMean = uniform(rng, -100, 100)
	p.RhsStd = uniform(rng, 1, 30)
	p.ObjMean = uniform(rng, -100, 100)
	p.ObjStd = uniform(rng, 1, 10)
	p.LHSParams = randomLHSParams(rng, 0, 1)

	return p
}
