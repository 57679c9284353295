// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// validators.go — single source of truth for instance precondition checks.
//
// Purpose:
//   - Keep constructors minimal by delegating shape/sign/basis checks here.
//   - Return wrapped sentinels tagged with the validator name so call sites
//     can add their own method prefix and callers can use errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.
//   - Vector checks are O(len); the matrix finiteness check is O(m·n).

package instance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMatrix ensures a is non-nil, non-empty and has finite entries.
// Returns the (m, n) shape on success.
func validateMatrix(a mat.Matrix) (m, n int, err error) {
	if a == nil {
		return 0, 0, validatorErrorf("validateMatrix", ErrNilMatrix)
	}
	m, n = a.Dims()
	if m < 1 || n < 1 {
		return 0, 0, fmt.Errorf("validateMatrix: shape %dx%d: %w", m, n, ErrDimensionMismatch)
	}

	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v = a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("validateMatrix: A[%d,%d]=%g: %w", i, j, v, ErrNaNInf)
			}
		}
	}

	return m, n, nil
}

// validateVecLen ensures x has exactly want entries, all finite.
func validateVecLen(tag string, x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%s: len=%d, want %d: %w", tag, len(x), want, ErrDimensionMismatch)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", tag, i, v, ErrNaNInf)
		}
	}

	return nil
}

// validateAlpha checks length n+m and non-negativity. No clamping is done.
func validateAlpha(alpha []float64, n, m int) error {
	if err := validateVecLen("alpha", alpha, n+m); err != nil {
		return err
	}
	for i, v := range alpha {
		if v < 0 {
			return fmt.Errorf("alpha[%d]=%g: %w", i, v, ErrNegativeAlpha)
		}
	}

	return nil
}

// validateBasis checks length n+m and that every entry is exactly 0 or 1.
// It reports the number of ones so callers can enforce cardinality.
func validateBasis(tag string, beta []float64, n, m int) (ones int, err error) {
	if err = validateVecLen(tag, beta, n+m); err != nil {
		return 0, err
	}
	for i, v := range beta {
		switch v {
		case 0:
		case 1:
			ones++
		default:
			return 0, fmt.Errorf("%s[%d]=%g: %w", tag, i, v, ErrNonBinaryBeta)
		}
	}

	return ones, nil
}

// validateBeta additionally requires exactly m ones (and hence n zeros).
func validateBeta(beta []float64, n, m int) error {
	ones, err := validateBasis("beta", beta, n, m)
	if err != nil {
		return err
	}
	if ones != m {
		return fmt.Errorf("beta: ones=%d zeros=%d, want ones=%d zeros=%d: %w",
			ones, n+m-ones, m, n, ErrBasisCardinality)
	}

	return nil
}

// validateSolution checks the vector lengths of sol against an m×n matrix.
func validateSolution(sol Solution, n, m int) error {
	if err := validateVecLen("x", sol.X, n); err != nil {
		return err
	}
	if err := validateVecLen("r", sol.R, n); err != nil {
		return err
	}
	if err := validateVecLen("y", sol.Y, m); err != nil {
		return err
	}
	if err := validateVecLen("s", sol.S, m); err != nil {
		return err
	}
	_, err := validateBasis("basis", sol.Basis, n, m)

	return err
}
