// Package mps writes instances in MPS format for external solvers.
//
// The canonical LP  max cᵀx, Ax ≤ b, x ≥ 0  is written as the minimisation
// of −cᵀx with one L row per constraint. Columns can be marked integer with
// MARKER INTORG/INTEND blocks; integer columns get an explicit PL bound so
// readers do not assume binary bounds.
//
// Rows are named R<i>, columns C<j>, the objective row OBJ. Numbers are
// written with the shortest exact decimal representation.
package mps
