// SPDX-License-Identifier: MIT
// Package: lpgen/simplex
//
// simplex.go — instance.Solver over gonum lp.Simplex.
//
// Contract:
//   • Problem is read-only; A is never modified.
//   • lp.ErrInfeasible → StatusInfeasible, lp.ErrUnbounded → StatusUnbounded,
//     other lp errors are returned as errors.
//   • All-zero columns of A are removed before the primal solve; all-zero rows
//     before the dual solve. gonum rejects zero columns.
//
// Complexity: two simplex solves plus O(m²·(n+m)) for basis completion.

package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lpgen/instance"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	methodSolve = "Solve"

	// DefaultTolerance separates zero from nonzero in the recovered solution.
	DefaultTolerance = 1e-9
)

// Solver implements instance.Solver. The zero value is ready to use.
type Solver struct {
	// Tol is the zero threshold used for basis recovery; 0 means
	// DefaultTolerance.
	Tol float64
}

var _ instance.Solver = Solver{}

// New returns a Solver with tolerance tol (0 selects DefaultTolerance).
// Panics on a negative or NaN tolerance.
func New(tol float64) Solver {
	if tol < 0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("simplex: invalid tolerance %g", tol))
	}
	return Solver{Tol: tol}
}

func (s Solver) tol() float64 {
	if s.Tol == 0 {
		return DefaultTolerance
	}
	return s.Tol
}

// Solve solves p to optimality or reports why it could not.
func (s Solver) Solve(ctx context.Context, p instance.Problem) (instance.Result, error) {
	if err := ctx.Err(); err != nil {
		return instance.Result{}, err
	}
	if p.A == nil {
		return instance.Result{}, fmt.Errorf("%s: %w", methodSolve, instance.ErrNilMatrix)
	}
	if r, c := p.A.Dims(); r != p.M || c != p.N || len(p.B) != p.M || len(p.C) != p.N {
		return instance.Result{}, fmt.Errorf("%s: A %dx%d, b %d, c %d for n=%d m=%d: %w",
			methodSolve, r, c, len(p.B), len(p.C), p.N, p.M, instance.ErrDimensionMismatch)
	}
	tol := s.tol()

	x, slack, status, err := solvePrimal(p)
	if err != nil || status != instance.StatusOptimal {
		return instance.Result{Status: status}, err
	}
	if err = ctx.Err(); err != nil {
		return instance.Result{}, err
	}

	y, reduced, status, err := solveDual(p)
	if err != nil {
		return instance.Result{}, err
	}
	if status != instance.StatusOptimal {
		// primal optimal implies dual optimal; anything else is numerical
		return instance.Result{Status: instance.StatusOther}, nil
	}

	basis, err := completeBasis(p.A, x, slack, y, reduced, tol)
	if err != nil {
		return instance.Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}

	return instance.Result{
		Status:      instance.StatusOptimal,
		Primal:      x,
		Slack:       slack,
		Dual:        y,
		ReducedCost: reduced,
		Basis:       basis,
	}, nil
}

// statusOf maps lp errors onto solver statuses.
func statusOf(err error) (instance.Status, error) {
	switch {
	case err == nil:
		return instance.StatusOptimal, nil
	case errors.Is(err, lp.ErrInfeasible):
		return instance.StatusInfeasible, nil
	case errors.Is(err, lp.ErrUnbounded):
		return instance.StatusUnbounded, nil
	default:
		return instance.StatusOther, fmt.Errorf("%s: lp: %w", methodSolve, err)
	}
}

// nonzeroCols returns the indices of columns of a with a nonzero entry.
func nonzeroCols(a mat.Matrix) []int {
	r, c := a.Dims()
	out := make([]int, 0, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if a.At(i, j) != 0 {
				out = append(out, j)
				break
			}
		}
	}
	return out
}

// solvePrimal solves min −cᵀx over [A_keep I] and returns x (length N) and
// s = b − Ax (length M).
func solvePrimal(p instance.Problem) (x, slack []float64, status instance.Status, err error) {
	keep := nonzeroCols(p.A)
	k := len(keep)

	std := mat.NewDense(p.M, k+p.M, nil)
	cost := make([]float64, k+p.M)
	for jj, j := range keep {
		cost[jj] = -p.C[j]
		for i := 0; i < p.M; i++ {
			std.Set(i, jj, p.A.At(i, j))
		}
	}
	for i := 0; i < p.M; i++ {
		std.Set(i, k+i, 1)
	}

	_, z, lpErr := lp.Simplex(cost, std, p.B, 0, nil)
	if status, err = statusOf(lpErr); status != instance.StatusOptimal {
		return nil, nil, status, err
	}

	// a dropped column with positive profit can grow without limit
	kept := make(map[int]bool, k)
	for _, j := range keep {
		kept[j] = true
	}
	for j := 0; j < p.N; j++ {
		if !kept[j] && p.C[j] > 0 {
			return nil, nil, instance.StatusUnbounded, nil
		}
	}

	x = make([]float64, p.N)
	for jj, j := range keep {
		x[j] = z[jj]
	}
	slack = make([]float64, p.M)
	copy(slack, z[k:])

	return x, slack, instance.StatusOptimal, nil
}

// solveDual solves min bᵀy over [Aᵀ_keep −I] and returns y (length M) and
// r = Aᵀy − c (length N).
func solveDual(p instance.Problem) (y, reduced []float64, status instance.Status, err error) {
	at := p.A.T()
	keep := nonzeroCols(at) // nonzero rows of A
	k := len(keep)

	std := mat.NewDense(p.N, k+p.N, nil)
	cost := make([]float64, k+p.N)
	for ii, i := range keep {
		cost[ii] = p.B[i]
		for j := 0; j < p.N; j++ {
			std.Set(j, ii, at.At(j, i))
		}
	}
	for j := 0; j < p.N; j++ {
		std.Set(j, k+j, -1)
	}

	_, z, lpErr := lp.Simplex(cost, std, p.C, 0, nil)
	if status, err = statusOf(lpErr); status != instance.StatusOptimal {
		return nil, nil, status, err
	}

	y = make([]float64, p.M)
	for ii, i := range keep {
		y[i] = z[ii]
	}
	reduced = make([]float64, p.N)
	copy(reduced, z[k:])

	return y, reduced, instance.StatusOptimal, nil
}
