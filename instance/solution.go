// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// solution.go — primal-dual solution tuple and the encode/decode relations.
//
// Decode and Encode are exact elementwise formulas. Decode∘Encode is the
// identity on any solution that satisfies complementary pairing; Encode∘Decode
// is the identity on any valid (alpha, beta).

package instance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solution is a primal-dual pair for the canonical LP.
type Solution struct {
	X     []float64 // primal values, length n
	Y     []float64 // constraint duals, length m
	R     []float64 // reduced costs, length n
	S     []float64 // slacks, length m
	Basis []float64 // basis indicator, length n+m, entries in {0,1}
}

// Clone returns a deep copy of s.
func (s Solution) Clone() Solution {
	return Solution{
		X:     cloneVec(s.X),
		Y:     cloneVec(s.Y),
		R:     cloneVec(s.R),
		S:     cloneVec(s.S),
		Basis: cloneVec(s.Basis),
	}
}

// CheckComplementary reports ErrComplementarity when some pair (x_i, r_i) or
// (s_j, y_j) has both members larger than tol in absolute value.
//
// Encode does not call this; it is an opt-in check for callers that build a
// Solution by hand or receive one from an external solver.
func (s Solution) CheckComplementary(tol float64) error {
	for i := range s.X {
		if math.Abs(s.X[i]) > tol && math.Abs(s.R[i]) > tol {
			return fmt.Errorf("CheckComplementary: x[%d]=%g r[%d]=%g: %w", i, s.X[i], i, s.R[i], ErrComplementarity)
		}
	}
	for j := range s.S {
		if math.Abs(s.S[j]) > tol && math.Abs(s.Y[j]) > tol {
			return fmt.Errorf("CheckComplementary: s[%d]=%g y[%d]=%g: %w", j, s.S[j], j, s.Y[j], ErrComplementarity)
		}
	}

	return nil
}

// Decode turns an encoded (alpha, beta) pair into a Solution. n is the number
// of variables; len(alpha) == len(beta) == n+m is assumed (validated by the
// constructors that call it).
//
//	x = β[:n]·α[:n]      r = (1−β[:n])·α[:n]
//	y = (1−β[n:])·α[n:]  s = β[n:]·α[n:]
func Decode(alpha, beta []float64, n int) Solution {
	total := len(alpha)
	m := total - n

	// complement of the basis indicator, 1−β
	nonBasic := make([]float64, total)
	for i, b := range beta {
		nonBasic[i] = 1 - b
	}

	x := make([]float64, n)
	r := make([]float64, n)
	y := make([]float64, m)
	s := make([]float64, m)
	floats.MulTo(x, beta[:n], alpha[:n])
	floats.MulTo(r, nonBasic[:n], alpha[:n])
	floats.MulTo(y, nonBasic[n:], alpha[n:])
	floats.MulTo(s, beta[n:], alpha[n:])

	return Solution{X: x, Y: y, R: r, S: s, Basis: cloneVec(beta)}
}

// Encode recombines a Solution into (alpha, beta):
//
//	α = [x; s] + [r; y]    β = basis
//
// Complementary pairing is the caller's obligation; a solution that violates
// it encodes without error but will not decode back to the same values.
func Encode(sol Solution) (alpha, beta []float64) {
	primal := concat(sol.X, sol.S)
	dual := concat(sol.R, sol.Y)
	alpha = make([]float64, len(primal))
	floats.AddTo(alpha, primal, dual)

	return alpha, cloneVec(sol.Basis)
}

// cloneVec returns a copy of v (nil stays nil).
func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// concat returns a fresh slice holding a followed by b.
func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
