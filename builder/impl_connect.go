// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// impl_connect.go — isolated-vertex repair (ConnectRemaining) and the full
// sparsity-pattern sampler (GenerateEdges).
//
// ConnectRemaining:
//   • Zero-degree vertices of each side are listed ascending, shuffled
//     independently, then paired positionally.
//   • When one list runs out, its partner is drawn uniformly among that side's
//     vertices whose running counter is below capacity (n2 for variables, n1
//     for constraints). Fails with ErrNoEligibleVertex, reporting both
//     counters, when none is left.
//   • After each pair the variable counter advances by 1 and the constraint
//     counter by 2. The asymmetric step is long-standing behaviour that
//     existing seeds depend on; it only affects which constraints remain
//     eligible as fallback partners.
//
// Determinism:
//   • Shuffle of side 1, then side 2, then one Intn per fallback draw.

package builder

import (
	"math/rand"
)

// ConnectRemaining returns extra edges that give every vertex of both sides
// degree ≥ 1 once merged with edges. The returned edges may repeat existing
// ones; GenerateEdges de-duplicates.
func ConnectRemaining(n1, n2 int, edges []Edge, rng *rand.Rand) ([]Edge, error) {
	if err := validateMin(MethodConnectRemaining, "n1", n1, MinDimension); err != nil {
		return nil, err
	}
	if err := validateMin(MethodConnectRemaining, "n2", n2, MinDimension); err != nil {
		return nil, err
	}
	for k, e := range edges {
		if e.Variable < 0 || e.Variable >= n1 || e.Constraint < 0 || e.Constraint >= n2 {
			return nil, builderErrorf(MethodConnectRemaining, ErrBadSize,
				"edge %d (%d,%d) outside %dx%d", k, e.Variable, e.Constraint, n1, n2)
		}
	}
	if err := validateRand(MethodConnectRemaining, rng); err != nil {
		return nil, err
	}

	d1, d2 := edgeDegrees(n1, n2, edges)
	missing1, missing2 := zeroIndices(d1), zeroIndices(d2)
	rng.Shuffle(len(missing1), func(i, j int) { missing1[i], missing1[j] = missing1[j], missing1[i] })
	rng.Shuffle(len(missing2), func(i, j int) { missing2[i], missing2[j] = missing2[j], missing2[i] })

	pairs := max(len(missing1), len(missing2))
	added := make([]Edge, 0, pairs)

	var v1, v2 int
	for k := 0; k < pairs; k++ {
		if k < len(missing1) {
			v1 = missing1[k]
		} else {
			cand := belowCapacity(d1, n2)
			if len(cand) == 0 {
				return nil, builderErrorf(MethodConnectRemaining, ErrNoEligibleVertex,
					"no variable below capacity %d; variable degrees %v, constraint degrees %v", n2, d1, d2)
			}
			v1 = cand[rng.Intn(len(cand))]
		}
		if k < len(missing2) {
			v2 = missing2[k]
		} else {
			cand := belowCapacity(d2, n1)
			if len(cand) == 0 {
				return nil, builderErrorf(MethodConnectRemaining, ErrNoEligibleVertex,
					"no constraint below capacity %d; variable degrees %v, constraint degrees %v", n1, d1, d2)
			}
			v2 = cand[rng.Intn(len(cand))]
		}

		added = append(added, Edge{Variable: v1, Constraint: v2})
		d1[v1]++
		d2[v2] += 2
	}

	return added, nil
}

// GenerateEdges samples the sparsity pattern of an n2×n1 constraint matrix:
// GenerateByDegree followed by ConnectRemaining. The result is de-duplicated
// and sorted by (Variable, Constraint); every vertex has degree ≥ 1.
func GenerateEdges(n1, n2 int, density, p1, p2 float64, rng *rand.Rand) ([]Edge, error) {
	edges, err := GenerateByDegree(n1, n2, density, p1, p2, rng)
	if err != nil {
		return nil, err
	}
	patch, err := ConnectRemaining(n1, n2, edges, rng)
	if err != nil {
		return nil, err
	}

	return sortedEdges(append(edges, patch...)), nil
}
