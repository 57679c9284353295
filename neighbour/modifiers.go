// SPDX-License-Identifier: MIT
// Package: lpgen/neighbour
//
// modifiers.go — elementary in-place modifications and the Repeat combinator.
//
// Ownership contract:
//   • A Modifier mutates the value it is handed. Callers pass only data they
//     own exclusively (fresh copies from instance accessors); the operators in
//     operators.go never hand a modifier anything aliased by an Instance.
//
// Determinism (draw order per application):
//   • SwapBasisPair:      incoming index, then outgoing index.
//   • ScaleVectorEntry:   index, then factor.
//   • RemoveMatrixEntry:  cell.
//   • AddMatrixEntry:     cell, then value.
//   • ScaleMatrixEntry:   cell, then factor.
//   • No-op branches draw nothing.

package neighbour

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Modifier applies one elementary change to v using rng.
type Modifier[T any] func(v T, rng *rand.Rand)

// Repeat returns a Modifier applying m count times in sequence.
// count == 0 yields a no-op. Panics on nil m or negative count.
func Repeat[T any](m Modifier[T], count int) Modifier[T] {
	if m == nil {
		panic("neighbour: Repeat(nil)")
	}
	if count < 0 {
		panic(fmt.Sprintf("neighbour: Repeat count=%d < 0", count))
	}

	return func(v T, rng *rand.Rand) {
		for i := 0; i < count; i++ {
			m(v, rng)
		}
	}
}

// Dist selects the distribution of a multiplicative factor.
type Dist int

const (
	// Normal draws N(mean, sigma²).
	Normal Dist = iota
	// LogNormal draws exp(N(mean, sigma²)); factors stay positive.
	LogNormal
)

// String implements fmt.Stringer.
func (d Dist) String() string {
	switch d {
	case Normal:
		return "normal"
	case LogNormal:
		return "lognormal"
	default:
		return fmt.Sprintf("dist(%d)", int(d))
	}
}

// sampler returns a draw function for d. Panics on an unknown Dist or on
// non-finite / negative parameters.
func (d Dist) sampler(mean, sigma float64) func(rng *rand.Rand) float64 {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(fmt.Sprintf("neighbour: invalid %v parameters mean=%g sigma=%g", d, mean, sigma))
	}
	switch d {
	case Normal:
		return func(rng *rand.Rand) float64 {
			return distuv.Normal{Mu: mean, Sigma: sigma, Src: rng}.Rand()
		}
	case LogNormal:
		return func(rng *rand.Rand) float64 {
			return distuv.LogNormal{Mu: mean, Sigma: sigma, Src: rng}.Rand()
		}
	default:
		panic(fmt.Sprintf("neighbour: unsupported distribution %v", d))
	}
}

// SwapBasisPair swaps one uniformly chosen 0 entry of a basis indicator with
// one uniformly chosen 1 entry. The number of ones is preserved. No-op when
// either value is absent.
func SwapBasisPair() Modifier[[]float64] {
	return func(beta []float64, rng *rand.Rand) {
		var zeros, ones []int
		for i, b := range beta {
			if b == 0 {
				zeros = append(zeros, i)
			} else {
				ones = append(ones, i)
			}
		}
		if len(zeros) == 0 || len(ones) == 0 {
			return
		}
		incoming := zeros[rng.Intn(len(zeros))]
		outgoing := ones[rng.Intn(len(ones))]
		beta[incoming] = 1
		beta[outgoing] = 0
	}
}

// ScaleVectorEntry multiplies one uniformly chosen entry by a factor drawn
// from dist(mean, sigma). No-op on an empty vector.
// Panics on invalid parameters.
func ScaleVectorEntry(mean, sigma float64, dist Dist) Modifier[[]float64] {
	draw := dist.sampler(mean, sigma)

	return func(v []float64, rng *rand.Rand) {
		if len(v) == 0 {
			return
		}
		i := rng.Intn(len(v))
		v[i] *= draw(rng)
	}
}

// cell is a (row, column) position of a matrix.
type cell struct{ i, j int }

// cells lists the positions of a whose nonzero-ness equals nonzero, in
// row-major order.
// Complexity: O(r·c).
func cells(a *mat.Dense, nonzero bool) []cell {
	r, c := a.Dims()
	out := make([]cell, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if (a.At(i, j) != 0) == nonzero {
				out = append(out, cell{i, j})
			}
		}
	}

	return out
}

// RemoveMatrixEntry zeroes one uniformly chosen nonzero cell.
// No-op when the matrix has no nonzero cell.
func RemoveMatrixEntry() Modifier[*mat.Dense] {
	return func(a *mat.Dense, rng *rand.Rand) {
		nz := cells(a, true)
		if len(nz) == 0 {
			return
		}
		p := nz[rng.Intn(len(nz))]
		a.Set(p.i, p.j, 0)
	}
}

// AddMatrixEntry sets one uniformly chosen zero cell to a N(mean, sigma²)
// draw. No-op when the matrix has no zero cell.
// Panics on invalid parameters.
func AddMatrixEntry(mean, sigma float64) Modifier[*mat.Dense] {
	draw := Normal.sampler(mean, sigma)

	return func(a *mat.Dense, rng *rand.Rand) {
		z := cells(a, false)
		if len(z) == 0 {
			return
		}
		p := z[rng.Intn(len(z))]
		a.Set(p.i, p.j, draw(rng))
	}
}

// ScaleMatrixEntry multiplies one uniformly chosen nonzero cell by a
// N(mean, sigma²) factor. No-op when the matrix has no nonzero cell.
// Panics on invalid parameters.
func ScaleMatrixEntry(mean, sigma float64) Modifier[*mat.Dense] {
	draw := Normal.sampler(mean, sigma)

	return func(a *mat.Dense, rng *rand.Rand) {
		nz := cells(a, true)
		if len(nz) == 0 {
			return
		}
		p := nz[rng.Intn(len(nz))]
		a.Set(p.i, p.j, a.At(p.i, p.j)*draw(rng))
	}
}
