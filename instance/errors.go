// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// errors.go — sentinel error set for instance construction and decoding.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites attach context with fmt.Errorf("<Method>: ...: %w", ErrX).
//   • Precondition sentinels mark caller bugs and are never retried.
//   • ErrUnsolvable is the only domain error; callers may skip or regenerate.

package instance

import "errors"

var (
	// ErrNilMatrix is returned when a nil constraint matrix is supplied.
	ErrNilMatrix = errors.New("instance: nil constraint matrix")

	// ErrDimensionMismatch indicates a vector whose length disagrees with the
	// shape of the constraint matrix (alpha/beta of length n+m, b of length m,
	// c of length n, solution vectors, solver results).
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry in instance data.
	ErrNaNInf = errors.New("instance: NaN or Inf encountered")

	// ErrNegativeAlpha signals a negative entry in the alpha vector.
	ErrNegativeAlpha = errors.New("instance: alpha has a negative entry")

	// ErrNonBinaryBeta signals a basis indicator entry outside {0,1}.
	ErrNonBinaryBeta = errors.New("instance: beta is not {0,1}-valued")

	// ErrBasisCardinality signals a basis indicator without exactly m ones
	// and n zeros.
	ErrBasisCardinality = errors.New("instance: beta does not select exactly m basic entries")

	// ErrComplementarity is returned by Solution.CheckComplementary when a
	// primal/dual pair has both members nonzero.
	ErrComplementarity = errors.New("instance: complementary pairing violated")

	// ErrNoSolver is returned when an unsolved instance must be decoded but no
	// Solver was attached with WithSolver.
	ErrNoSolver = errors.New("instance: no solver attached")

	// ErrUnsolvable is returned when the external solver does not report an
	// optimal status (infeasible, unbounded or otherwise unsolved).
	ErrUnsolvable = errors.New("instance: could not be solved to optimality (infeasible or unbounded)")
)
