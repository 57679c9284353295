// SPDX-License-Identifier: MIT
// Package: lpgen/instance
//
// instance.go — the Instance value type and its three constructors.
//
// Design contract:
//   - One struct, tagged by Kind. No embedding, no per-kind subtypes.
//   - Constructors deep-copy every input and validate before returning.
//   - Accessors deep-copy every output; an *Instance is never mutated after
//     construction except for its annotation map.
//   - Derivations a kind cannot perform locally are computed on demand and
//     fail explicitly (ErrNoSolver / ErrUnsolvable).

package instance

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Method tags used as error prefixes.
const (
	methodNewEncoded  = "NewEncoded"
	methodNewSolved   = "NewSolved"
	methodNewUnsolved = "NewUnsolved"
	methodSolution    = "Solution"
)

// Kind selects which fields an Instance stores natively.
type Kind int

const (
	// KindEncoded stores (A, alpha, beta).
	KindEncoded Kind = iota
	// KindSolved stores (A, Solution).
	KindSolved
	// KindUnsolved stores (A, b, c).
	KindUnsolved
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindEncoded:
		return "encoded"
	case KindSolved:
		return "solved"
	case KindUnsolved:
		return "unsolved"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Instance is a canonical-form LP in one of three representations.
type Instance struct {
	kind Kind
	n, m int
	lhs  *mat.Dense

	// KindEncoded
	alpha, beta []float64
	// KindSolved
	sol Solution
	// KindUnsolved
	rhs, obj []float64
	solver   Solver

	data map[string]any
}

// Option customises an Instance at construction time.
type Option func(*Instance)

// WithSolver attaches the external solver used to decode an unsolved
// instance. It is ignored by the other kinds. Panics on nil.
func WithSolver(s Solver) Option {
	if s == nil {
		panic("instance: WithSolver(nil)")
	}
	return func(in *Instance) {
		in.solver = s
	}
}

// NewEncoded builds a KindEncoded instance from A (m×n), alpha (n+m) and
// beta (n+m).
//
// Preconditions (violations are caller bugs and fail immediately, nothing is
// clamped):
//   - A non-nil with finite entries;
//   - len(alpha) == len(beta) == n+m;
//   - alpha ≥ 0 elementwise;
//   - beta ∈ {0,1} elementwise with exactly m ones and n zeros.
func NewEncoded(a mat.Matrix, alpha, beta []float64, opts ...Option) (*Instance, error) {
	m, n, err := validateMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewEncoded, err)
	}
	if err = validateAlpha(alpha, n, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewEncoded, err)
	}
	if err = validateBeta(beta, n, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewEncoded, err)
	}

	in := &Instance{
		kind:  KindEncoded,
		n:     n,
		m:     m,
		lhs:   mat.DenseCopyOf(a),
		alpha: cloneVec(alpha),
		beta:  cloneVec(beta),
	}
	applyOptions(in, opts)

	return in, nil
}

// MustEncoded is like NewEncoded but panics on error. Intended for fixtures
// and call sites whose inputs are known valid.
func MustEncoded(a mat.Matrix, alpha, beta []float64, opts ...Option) *Instance {
	in, err := NewEncoded(a, alpha, beta, opts...)
	if err != nil {
		panic(err)
	}

	return in
}

// NewSolved builds a KindSolved instance from A and a full Solution.
// Vector lengths and the {0,1} basis domain are validated; complementary
// pairing is not (see Solution.CheckComplementary).
func NewSolved(a mat.Matrix, sol Solution, opts ...Option) (*Instance, error) {
	m, n, err := validateMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSolved, err)
	}
	if err = validateSolution(sol, n, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSolved, err)
	}

	in := &Instance{
		kind: KindSolved,
		n:    n,
		m:    m,
		lhs:  mat.DenseCopyOf(a),
		sol:  sol.Clone(),
	}
	applyOptions(in, opts)

	return in, nil
}

// NewUnsolved builds a KindUnsolved instance from A (m×n), b (m) and c (n).
// Attach a solver with WithSolver to make Solution/Alpha/Beta available.
func NewUnsolved(a mat.Matrix, rhs, objective []float64, opts ...Option) (*Instance, error) {
	m, n, err := validateMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUnsolved, err)
	}
	if err = validateVecLen("rhs", rhs, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUnsolved, err)
	}
	if err = validateVecLen("objective", objective, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUnsolved, err)
	}

	in := &Instance{
		kind: KindUnsolved,
		n:    n,
		m:    m,
		lhs:  mat.DenseCopyOf(a),
		rhs:  cloneVec(rhs),
		obj:  cloneVec(objective),
	}
	applyOptions(in, opts)

	return in, nil
}

func applyOptions(in *Instance, opts []Option) {
	for _, opt := range opts {
		opt(in)
	}
}

// Kind reports the native representation.
func (in *Instance) Kind() Kind { return in.kind }

// Variables is n, the number of columns of A.
func (in *Instance) Variables() int { return in.n }

// Constraints is m, the number of rows of A.
func (in *Instance) Constraints() int { return in.m }

// Solver returns the attached solver, or nil.
func (in *Instance) Solver() Solver { return in.solver }

// Lhs returns a copy of the m×n constraint matrix.
func (in *Instance) Lhs() *mat.Dense {
	return mat.DenseCopyOf(in.lhs)
}

// Solution returns the primal-dual solution. See SolutionContext.
func (in *Instance) Solution() (Solution, error) {
	return in.SolutionContext(context.Background())
}

// SolutionContext returns the primal-dual solution:
//   - KindEncoded:  decoded from (alpha, beta), never fails;
//   - KindSolved:   a copy of the stored solution;
//   - KindUnsolved: delegated to the attached Solver. Fails with ErrNoSolver
//     when none is attached and ErrUnsolvable on a non-optimal status.
func (in *Instance) SolutionContext(ctx context.Context) (Solution, error) {
	switch in.kind {
	case KindEncoded:
		return Decode(in.alpha, in.beta, in.n), nil
	case KindSolved:
		return in.sol.Clone(), nil
	}

	if in.solver == nil {
		return Solution{}, fmt.Errorf("%s: %w", methodSolution, ErrNoSolver)
	}
	res, err := in.solver.Solve(ctx, Problem{
		N: in.n,
		M: in.m,
		A: mat.DenseCopyOf(in.lhs),
		B: cloneVec(in.rhs),
		C: cloneVec(in.obj),
	})
	if err != nil {
		return Solution{}, fmt.Errorf("%s: %w", methodSolution, err)
	}
	if res.Status != StatusOptimal {
		return Solution{}, fmt.Errorf("%s: solver status %v: %w", methodSolution, res.Status, ErrUnsolvable)
	}
	sol, err := resultSolution(res, in.n, in.m)
	if err != nil {
		return Solution{}, fmt.Errorf("%s: %w", methodSolution, err)
	}

	return sol, nil
}

// Alpha returns the length n+m magnitude vector.
func (in *Instance) Alpha() ([]float64, error) {
	if in.kind == KindEncoded {
		return cloneVec(in.alpha), nil
	}
	sol, err := in.Solution()
	if err != nil {
		return nil, err
	}
	alpha, _ := Encode(sol)

	return alpha, nil
}

// Beta returns the length n+m basis indicator.
func (in *Instance) Beta() ([]float64, error) {
	if in.kind == KindEncoded {
		return cloneVec(in.beta), nil
	}
	sol, err := in.Solution()
	if err != nil {
		return nil, err
	}

	return sol.Basis, nil
}

// Rhs returns b. Encoded and solved instances derive it via Construct.
func (in *Instance) Rhs() ([]float64, error) {
	if in.kind == KindUnsolved {
		return cloneVec(in.rhs), nil
	}
	b, _, err := in.construct()

	return b, err
}

// Objective returns c. Encoded and solved instances derive it via Construct.
func (in *Instance) Objective() ([]float64, error) {
	if in.kind == KindUnsolved {
		return cloneVec(in.obj), nil
	}
	_, c, err := in.construct()

	return c, err
}

func (in *Instance) construct() (b, c []float64, err error) {
	sol, err := in.Solution()
	if err != nil {
		return nil, nil, err
	}

	return Construct(in.lhs, sol)
}

// ToEncoded returns the KindEncoded form of in (a fresh copy when in is
// already encoded). Unsolved instances are decoded through their solver.
func (in *Instance) ToEncoded() (*Instance, error) {
	alpha, err := in.Alpha()
	if err != nil {
		return nil, err
	}
	beta, err := in.Beta()
	if err != nil {
		return nil, err
	}

	return NewEncoded(in.lhs, alpha, beta, WithSolverIfAny(in.solver))
}

// ToUnsolved returns the KindUnsolved form of in, keeping any attached solver.
func (in *Instance) ToUnsolved() (*Instance, error) {
	b, err := in.Rhs()
	if err != nil {
		return nil, err
	}
	c, err := in.Objective()
	if err != nil {
		return nil, err
	}

	return NewUnsolved(in.lhs, b, c, WithSolverIfAny(in.solver))
}

// WithSolverIfAny is WithSolver that tolerates nil (no-op). Used when
// carrying a possibly-absent solver across conversions.
func WithSolverIfAny(s Solver) Option {
	return func(in *Instance) {
		if s != nil {
			in.solver = s
		}
	}
}
