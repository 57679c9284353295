// Package simplex is an in-process instance.Solver built on gonum's
// optimize/convex/lp simplex method.
//
// The canonical LP  max cᵀx, Ax ≤ b, x ≥ 0  is solved twice in standard form:
//
//	primal:  min −cᵀx        s.t. [A  I][x; s] = b,  x, s ≥ 0
//	dual:    min  bᵀy        s.t. [Aᵀ −I][y; r] = c,  y, r ≥ 0
//
// Any optimal pair of these satisfies complementary slackness, so the
// returned (x, s, y, r) can be re-encoded directly. The basis indicator marks
// the positive primal entries and is completed to m independent columns of
// [A I], preferring columns whose dual partner is zero.
package simplex
