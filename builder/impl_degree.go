// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// impl_degree.go — degree-sequence sampler DegreeDist and its bipartite
// combination GenerateByDegree.
//
// Model:
//   • Degree is handed out one unit at a time. Each eligible vertex v gets
//       w_v = param·(deg_v+ε)/Σ(deg+ε) + (1−param)·u_v/Σu,   u_v ~ U(0,1)
//     with ε = DegreeWeightFloor, and one vertex is drawn from the
//     categorical distribution over w.
//   • A vertex leaves the eligible pool once it reaches maxDegree.
//   • param → 1 concentrates degree (rich get richer), param → 0 spreads it.
//
// Contract:
//   • vertices ≥ 1, edges ≥ 0, maxDegree ≥ 0 (else ErrBadSize).
//   • param ∈ [0,1] (else ErrInvalidProbability).
//   • edges ≤ vertices·maxDegree (else ErrDegreeCapacity).
//   • rng non-nil (else ErrNeedRandSource).
//   • Σ result == edges; every entry ≤ maxDegree.
//
// Complexity:
//   • Time: O(edges · vertices) (weights recomputed per unit).
//   • Space: O(vertices).
//
// Determinism:
//   • Per unit: one U(0,1) draw per eligible vertex in ascending index order,
//     then one categorical draw.

package builder

import (
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DegreeDist allocates edges units of degree across vertices slots.
func DegreeDist(vertices, edges, maxDegree int, param float64, rng *rand.Rand) ([]int, error) {
	if err := validateMin(MethodDegreeDist, "vertices", vertices, 1); err != nil {
		return nil, err
	}
	if err := validateMin(MethodDegreeDist, "edges", edges, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodDegreeDist, "maxDegree", maxDegree, 0); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodDegreeDist, "param", param); err != nil {
		return nil, err
	}
	if edges > vertices*maxDegree {
		return nil, builderErrorf(MethodDegreeDist, ErrDegreeCapacity,
			"edges=%d > vertices=%d × maxDegree=%d", edges, vertices, maxDegree)
	}
	if err := validateRand(MethodDegreeDist, rng); err != nil {
		return nil, err
	}

	degree := make([]int, vertices)
	eligible := make([]int, vertices)
	for i := range eligible {
		eligible[i] = i
	}

	var (
		det     = make([]float64, vertices) // preferential part
		uni     = make([]float64, vertices) // random part
		weights = make([]float64, vertices)
		unit    = distuv.Uniform{Min: 0, Max: 1, Src: rng}
		k, i, v int
	)
	for e := 0; e < edges; e++ {
		k = len(eligible)
		det, uni, weights = det[:k], uni[:k], weights[:k]

		for i, v = range eligible {
			det[i] = float64(degree[v]) + DegreeWeightFloor
		}
		for i = range uni {
			uni[i] = unit.Rand()
		}
		detSum, uniSum := floats.Sum(det), floats.Sum(uni)
		if uniSum == 0 {
			// all-zero uniform draws: fall back to equal random weights
			for i = range uni {
				uni[i] = 1
			}
			uniSum = float64(k)
		}
		for i = range weights {
			weights[i] = det[i]/detSum*param + uni[i]/uniSum*(1-param)
		}

		pick := int(distuv.NewCategorical(weights, rng).Rand())
		v = eligible[pick]
		degree[v]++
		if degree[v] >= maxDegree {
			eligible = slices.Delete(eligible, pick, pick+1)
		}
	}

	return degree, nil
}

// GenerateByDegree samples the probabilistic part of a bipartite graph with
// n1 variable vertices and n2 constraint vertices.
//
// Steps:
//  1. edges = max(round(n1·n2·density), MinEdges), ties to even.
//  2. d1 = DegreeDist(n1, edges, n2, p1), d2 = DegreeDist(n2, edges, n1, p2).
//  3. Combine with ExpectedBipartiteDegree(d1, d2).
//
// The result may leave vertices isolated; see ConnectRemaining.
func GenerateByDegree(n1, n2 int, density, p1, p2 float64, rng *rand.Rand) ([]Edge, error) {
	if err := validateMin(MethodGenerateByDegree, "n1", n1, MinDimension); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGenerateByDegree, "n2", n2, MinDimension); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodGenerateByDegree, "density", density); err != nil {
		return nil, err
	}

	edges := max(int(math.RoundToEven(float64(n1)*float64(n2)*density)), MinEdges)
	d1, err := DegreeDist(n1, edges, n2, p1, rng)
	if err != nil {
		return nil, err
	}
	d2, err := DegreeDist(n2, edges, n1, p2, rng)
	if err != nil {
		return nil, err
	}

	return ExpectedBipartiteDegree(d1, d2, rng)
}
