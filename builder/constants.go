// SPDX-License-Identifier: MIT
// Package: lpgen/builder

// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across all sampling routines.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the routine name for context.
//-----------------------------------------------------------------------------

const (
	// MethodDegreeDist is the canonical name for DegreeDist.
	MethodDegreeDist = "DegreeDist"
	// MethodExpectedBipartiteDegree is the canonical name for ExpectedBipartiteDegree.
	MethodExpectedBipartiteDegree = "ExpectedBipartiteDegree"
	// MethodGenerateByDegree is the canonical name for GenerateByDegree.
	MethodGenerateByDegree = "GenerateByDegree"
	// MethodConnectRemaining is the canonical name for ConnectRemaining.
	MethodConnectRemaining = "ConnectRemaining"
	// MethodGenerateEdges is the canonical name for GenerateEdges.
	MethodGenerateEdges = "GenerateEdges"
	// MethodGenerateLHS is the canonical name for GenerateLHS.
	MethodGenerateLHS = "GenerateLHS"
	// MethodGenerateBeta is the canonical name for GenerateBeta.
	MethodGenerateBeta = "GenerateBeta"
	// MethodGenerateAlpha is the canonical name for GenerateAlpha.
	MethodGenerateAlpha = "GenerateAlpha"
	// MethodGenerateRhs is the canonical name for GenerateRhs.
	MethodGenerateRhs = "GenerateRhs"
	// MethodGenerateObjective is the canonical name for GenerateObjective.
	MethodGenerateObjective = "GenerateObjective"
	// MethodGenerateEncoded is the canonical name for GenerateEncoded.
	MethodGenerateEncoded = "GenerateEncoded"
	// MethodGenerateNaive is the canonical name for GenerateNaive.
	MethodGenerateNaive = "GenerateNaive"
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lowest valid probability/fraction (inclusive).
	MinProbability = 0.0
	// MaxProbability is the highest valid probability/fraction (inclusive).
	MaxProbability = 1.0
)

//-----------------------------------------------------------------------------
// Sampler Tolerances
//-----------------------------------------------------------------------------

const (
	// DegreeWeightFloor is added to every accumulated degree in DegreeDist so
	// that zero-degree vertices keep a positive preferential weight.
	DegreeWeightFloor = 1e-4
	// DegreeBalanceTol bounds |Σd1 − Σd2| in ExpectedBipartiteDegree.
	DegreeBalanceTol = 1e-5
	// MinEdges is the least number of edges GenerateByDegree requests.
	MinEdges = 1
	// MinDimension is the least number of variables or constraints.
	MinDimension = 1
)

//-----------------------------------------------------------------------------
// Generation Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultDensity is the default target fraction of nonzero cells in A.
	DefaultDensity = 0.5
	// DefaultSkew is the default preferential-attachment weight for both sides.
	DefaultSkew = 0.5
	// DefaultCoeffLoc is the default mean of the coefficient normal.
	DefaultCoeffLoc = 0.0
	// DefaultCoeffScale is the default stddev of the coefficient normal.
	DefaultCoeffScale = 1.0
	// DefaultBasisSplit is the default share of primal columns in the basis.
	DefaultBasisSplit = 0.5
)
