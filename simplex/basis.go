// SPDX-License-Identifier: MIT
// Package: lpgen/simplex

package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// independentSet grows an orthonormal basis of column vectors by modified
// Gram-Schmidt and rejects vectors already in its span.
type independentSet struct {
	q   [][]float64
	tol float64
}

// add reports whether v is independent of the set and, if so, adds it.
func (s *independentSet) add(v []float64) bool {
	w := append([]float64(nil), v...)
	scale := floats.Norm(w, 2)
	if scale == 0 {
		return false
	}
	for _, q := range s.q {
		floats.AddScaled(w, -floats.Dot(q, w), q)
	}
	norm := floats.Norm(w, 2)
	if norm <= s.tol*math.Max(1, scale) {
		return false
	}
	floats.Scale(1/norm, w)
	s.q = append(s.q, w)

	return true
}

// column returns column j of [A I] (length m).
func column(a mat.Matrix, n, m, j int) []float64 {
	v := make([]float64, m)
	if j >= n {
		v[j-n] = 1
		return v
	}
	for i := 0; i < m; i++ {
		v[i] = a.At(i, j)
	}
	return v
}

// completeBasis returns a {0,1} indicator over [x; s] with exactly m ones.
//
// Order of admission:
//  1. entries with a positive primal value;
//  2. slacks, then structurals, whose dual partner is zero;
//  3. any remaining slack, then structural.
//
// Each admitted column must be independent of those already chosen.
func completeBasis(a mat.Matrix, x, slack, y, reduced []float64, tol float64) ([]float64, error) {
	n, m := len(x), len(slack)
	basis := make([]float64, n+m)
	set := &independentSet{tol: 1e-7}
	chosen := 0

	try := func(j int) {
		if chosen == m || basis[j] == 1 {
			return
		}
		if set.add(column(a, n, m, j)) {
			basis[j] = 1
			chosen++
		}
	}

	for j, v := range x {
		if v > tol {
			try(j)
		}
	}
	for i, v := range slack {
		if v > tol {
			try(n + i)
		}
	}
	for i, v := range y {
		if math.Abs(v) <= tol {
			try(n + i)
		}
	}
	for j, v := range reduced {
		if math.Abs(v) <= tol {
			try(j)
		}
	}
	for j := n; j < n+m; j++ {
		try(j)
	}
	for j := 0; j < n; j++ {
		try(j)
	}

	if chosen != m {
		return nil, fmt.Errorf("completeBasis: %d of %d columns: %w", chosen, m, ErrBasis)
	}

	return basis, nil
}
