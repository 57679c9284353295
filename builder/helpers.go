// SPDX-License-Identifier: MIT
// Package: lpgen/builder

// Package builder provides internal helper functions used by the generators.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
//   - Determinism: helpers never consume randomness unless they take an rng.
package builder

import (
	"math/rand"
	"slices"
)

// sumInts returns Σd.
// Complexity: O(len(d)).
func sumInts(d []int) int {
	var s, i int
	for i = 0; i < len(d); i++ {
		s += d[i]
	}

	return s
}

// edgeDegrees counts, for each side, how many edges touch every vertex.
// Complexity: O(len(edges) + n1 + n2).
func edgeDegrees(n1, n2 int, edges []Edge) (d1, d2 []int) {
	d1 = make([]int, n1)
	d2 = make([]int, n2)
	for _, e := range edges {
		d1[e.Variable]++
		d2[e.Constraint]++
	}

	return d1, d2
}

// zeroIndices lists the positions of d holding 0, ascending.
func zeroIndices(d []int) []int {
	out := make([]int, 0, len(d))
	for i, v := range d {
		if v == 0 {
			out = append(out, i)
		}
	}

	return out
}

// belowCapacity lists the positions of d strictly below limit, ascending.
func belowCapacity(d []int, limit int) []int {
	out := make([]int, 0, len(d))
	for i, v := range d {
		if v < limit {
			out = append(out, i)
		}
	}

	return out
}

// sampleWithoutReplacement returns k distinct values drawn uniformly from
// [lo, lo+n). The returned slice is in draw order.
// Complexity: O(n) time and space.
func sampleWithoutReplacement(rng *rand.Rand, lo, n, k int) []int {
	perm := rng.Perm(n)[:k]
	out := make([]int, k)
	for i, p := range perm {
		out[i] = lo + p
	}

	return out
}

// sortedEdges de-duplicates edges and orders them by (Variable, Constraint).
// Complexity: O(E log E).
func sortedEdges(edges []Edge) []Edge {
	out := slices.Clone(edges)
	slices.SortFunc(out, func(a, b Edge) int {
		if a.Variable != b.Variable {
			return a.Variable - b.Variable
		}
		return a.Constraint - b.Constraint
	})

	return slices.Compact(out)
}
