// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// solver.go — contract of the external LP solver collaborator.
//
// The solver receives a dense canonical problem
//
//	max cᵀx  s.t.  Ax ≤ b,  x ≥ 0
//
// and returns a status plus, on StatusOptimal, primal values, slacks, duals,
// reduced costs and a basis indicator of length n+m. The result is consumed
// as-is; the only check applied here is on vector lengths.

package instance

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Status is the solver outcome code. Zero means optimal.
type Status int

const (
	// StatusOptimal reports an optimal basic solution.
	StatusOptimal Status = iota
	// StatusInfeasible reports a primal infeasible LP.
	StatusInfeasible
	// StatusUnbounded reports a primal unbounded LP.
	StatusUnbounded
	// StatusOther covers every other non-optimal termination.
	StatusOther
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Problem is the dense canonical LP handed to a Solver. Solvers must treat it
// as read-only.
type Problem struct {
	N int        // variables
	M int        // constraints
	A *mat.Dense // M×N constraint matrix
	B []float64  // right-hand side, length M
	C []float64  // objective, length N (maximised)
}

// Result is the solver response. Vectors are only meaningful when Status is
// StatusOptimal.
type Result struct {
	Status      Status
	Primal      []float64 // x, length N
	Slack       []float64 // s = b − Ax, length M
	Dual        []float64 // y, length M
	ReducedCost []float64 // r = Aᵀy − c, length N
	Basis       []float64 // basis indicator, length N+M
}

// Solver solves canonical LPs. Implementations may block (for example on a
// subprocess) and should honour ctx cancellation.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Result, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(ctx context.Context, p Problem) (Result, error)

// Solve calls f(ctx, p).
func (f SolverFunc) Solve(ctx context.Context, p Problem) (Result, error) {
	return f(ctx, p)
}

// resultSolution maps an optimal Result onto a Solution after length checks.
func resultSolution(res Result, n, m int) (Solution, error) {
	sol := Solution{
		X:     cloneVec(res.Primal),
		Y:     cloneVec(res.Dual),
		R:     cloneVec(res.ReducedCost),
		S:     cloneVec(res.Slack),
		Basis: cloneVec(res.Basis),
	}
	if err := validateSolution(sol, n, m); err != nil {
		return Solution{}, fmt.Errorf("solver result: %w", err)
	}

	return sol, nil
}
