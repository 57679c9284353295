// Package instance stores a canonical-form linear program together with a
// primal-dual solution that is consistent with it by construction.
//
// Canonical form:
//
//	max cᵀx  s.t.  Ax + s = b,  x ≥ 0, s ≥ 0
//
// with n variables (columns of A) and m constraints (rows of A).
//
// One Instance value covers three interchangeable representations, selected
// by its Kind:
//
//   - KindEncoded  — stores (A, alpha, beta). The solution is decoded
//     algebraically; no solve is ever needed.
//   - KindSolved   — stores (A, Solution). alpha/beta are recombined from it.
//   - KindUnsolved — stores (A, b, c). Deriving a Solution delegates to an
//     external Solver and can fail with ErrUnsolvable.
//
// The uniform accessors (Lhs, Rhs, Objective, Alpha, Beta, Solution) work for
// every kind; a derivation that needs a solver and has none fails with
// ErrNoSolver instead of being silently unavailable.
//
// Derivation formulas (free functions, shared by all kinds):
//
//	Decode:    x = β[:n]·α[:n]   r = (1−β[:n])·α[:n]
//	           y = (1−β[n:])·α[n:]   s = β[n:]·α[n:]
//	Encode:    α = [x; s] + [r; y]   β = basis
//	Construct: b = A·x + s           c = Aᵀ·y − r
//
// Choosing any basis β with exactly m ones and any α ≥ 0 therefore yields an
// LP whose optimal primal-dual pair is known in advance.
//
// Immutability: every accessor returns a deep copy. Instances never share
// backing arrays with callers or with each other. The annotation map (Data)
// is the only mutable part and is not covered by structural invariants.
//
// Errors: sentinel errors only (errors.go); callers branch with errors.Is.
// Precondition violations (ErrNegativeAlpha, ErrNonBinaryBeta,
// ErrBasisCardinality, ErrDimensionMismatch, ErrNaNInf, ErrNilMatrix) signal
// caller bugs. ErrUnsolvable is the domain error of the solver path.
package instance
