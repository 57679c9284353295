// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// construct.go — the constructor relation Solution → (b, c).
//
//	b = A·x + s
//	c = Aᵀ·y − r
//
// Given any basis and any non-negative alpha, the decoded (x, y, r, s) is
// primal feasible, dual feasible and complementary for the LP (A, b, c), so
// it is optimal for that LP. Generation therefore runs backwards from a
// chosen solution and never needs a solver.

package instance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const methodConstruct = "Construct"

// Construct derives the right-hand side b and objective c for which sol is an
// optimal primal-dual pair of max cᵀx s.t. Ax + s = b, x, s ≥ 0.
// Complexity: O(m·n).
func Construct(a mat.Matrix, sol Solution) (b, c []float64, err error) {
	if a == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodConstruct, ErrNilMatrix)
	}
	m, n := a.Dims()
	if len(sol.X) != n || len(sol.R) != n || len(sol.Y) != m || len(sol.S) != m {
		return nil, nil, fmt.Errorf("%s: A is %dx%d, |x|=%d |r|=%d |y|=%d |s|=%d: %w",
			methodConstruct, m, n, len(sol.X), len(sol.R), len(sol.Y), len(sol.S), ErrDimensionMismatch)
	}

	// b = A·x + s
	var ax mat.VecDense
	ax.MulVec(a, mat.NewVecDense(n, cloneVec(sol.X)))
	b = make([]float64, m)
	floats.AddTo(b, vecData(&ax), sol.S)

	// c = Aᵀ·y − r
	var aty mat.VecDense
	aty.MulVec(a.T(), mat.NewVecDense(m, cloneVec(sol.Y)))
	c = make([]float64, n)
	floats.SubTo(c, vecData(&aty), sol.R)

	return b, c, nil
}

// vecData copies the logical contents of v into a fresh slice.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}
