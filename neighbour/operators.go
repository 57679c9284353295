// SPDX-License-Identifier: MIT
// Package: lpgen/neighbour
//
// operators.go — instance-level neighbourhood operators.
//
// Every operator:
//   1. takes fresh copies of the fields it needs through the instance
//      accessors (Lhs/Alpha/Beta or Lhs/Rhs/Objective);
//   2. applies Repeat(modifier, count) to its private copy;
//   3. wraps the copy with instance.NewEncoded / instance.NewUnsolved, which
//      re-validates every invariant.
// The input instance is never modified and shares nothing with the result.
// The attached solver (if any) is carried over; annotations are not.

package neighbour

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lpgen/instance"
	"gonum.org/v1/gonum/mat"
)

// Operator produces a perturbed copy of in using rng.
type Operator func(in *instance.Instance, rng *rand.Rand) (*instance.Instance, error)

// encodedParts is an exclusively owned copy of (A, alpha, beta).
type encodedParts struct {
	lhs         *mat.Dense
	alpha, beta []float64
}

// unsolvedParts is an exclusively owned copy of (A, b, c).
type unsolvedParts struct {
	lhs      *mat.Dense
	rhs, obj []float64
}

// encoded builds an Operator returning KindEncoded instances.
func encoded(name string, apply func(p *encodedParts, rng *rand.Rand)) Operator {
	return func(in *instance.Instance, rng *rand.Rand) (*instance.Instance, error) {
		alpha, err := in.Alpha()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		beta, err := in.Beta()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p := &encodedParts{lhs: in.Lhs(), alpha: alpha, beta: beta}
		apply(p, rng)

		out, err := instance.NewEncoded(p.lhs, p.alpha, p.beta, instance.WithSolverIfAny(in.Solver()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}
}

// unsolved builds an Operator returning KindUnsolved instances.
func unsolved(name string, apply func(p *unsolvedParts, rng *rand.Rand)) Operator {
	return func(in *instance.Instance, rng *rand.Rand) (*instance.Instance, error) {
		rhs, err := in.Rhs()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		obj, err := in.Objective()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p := &unsolvedParts{lhs: in.Lhs(), rhs: rhs, obj: obj}
		apply(p, rng)

		out, err := instance.NewUnsolved(p.lhs, p.rhs, p.obj, instance.WithSolverIfAny(in.Solver()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}
}

// ---- Encoded family ---------------------------------------------------------

// ExchangeBasis swaps count (basic, non-basic) pairs of beta.
func ExchangeBasis(count int) Operator {
	m := Repeat(SwapBasisPair(), count)
	return encoded("ExchangeBasis", func(p *encodedParts, rng *rand.Rand) { m(p.beta, rng) })
}

// ScaleOptValue multiplies count alpha entries by LogNormal(mean, sigma)
// factors. Alpha stays non-negative.
func ScaleOptValue(count int, mean, sigma float64) Operator {
	m := Repeat(ScaleVectorEntry(mean, sigma, LogNormal), count)
	return encoded("ScaleOptValue", func(p *encodedParts, rng *rand.Rand) { m(p.alpha, rng) })
}

// RemoveLhsEntry zeroes count nonzero cells of A, keeping the encoded form.
func RemoveLhsEntry(count int) Operator {
	m := Repeat(RemoveMatrixEntry(), count)
	return encoded("RemoveLhsEntry", func(p *encodedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// AddLhsEntry fills count zero cells of A with N(mean, sigma²) values,
// keeping the encoded form.
func AddLhsEntry(count int, mean, sigma float64) Operator {
	m := Repeat(AddMatrixEntry(mean, sigma), count)
	return encoded("AddLhsEntry", func(p *encodedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// ScaleLhsEntry multiplies count nonzero cells of A by N(mean, sigma²)
// factors, keeping the encoded form.
func ScaleLhsEntry(count int, mean, sigma float64) Operator {
	m := Repeat(ScaleMatrixEntry(mean, sigma), count)
	return encoded("ScaleLhsEntry", func(p *encodedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// ---- Unsolved family --------------------------------------------------------

// ScaleObjEntry multiplies count objective entries by N(mean, sigma²) factors.
func ScaleObjEntry(count int, mean, sigma float64) Operator {
	m := Repeat(ScaleVectorEntry(mean, sigma, Normal), count)
	return unsolved("ScaleObjEntry", func(p *unsolvedParts, rng *rand.Rand) { m(p.obj, rng) })
}

// ScaleRhsEntry multiplies count right-hand-side entries by N(mean, sigma²)
// factors.
func ScaleRhsEntry(count int, mean, sigma float64) Operator {
	m := Repeat(ScaleVectorEntry(mean, sigma, Normal), count)
	return unsolved("ScaleRhsEntry", func(p *unsolvedParts, rng *rand.Rand) { m(p.rhs, rng) })
}

// UnsolvedRemoveLhsEntry zeroes count nonzero cells of A, keeping b and c.
func UnsolvedRemoveLhsEntry(count int) Operator {
	m := Repeat(RemoveMatrixEntry(), count)
	return unsolved("UnsolvedRemoveLhsEntry", func(p *unsolvedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// UnsolvedAddLhsEntry fills count zero cells of A, keeping b and c.
func UnsolvedAddLhsEntry(count int, mean, sigma float64) Operator {
	m := Repeat(AddMatrixEntry(mean, sigma), count)
	return unsolved("UnsolvedAddLhsEntry", func(p *unsolvedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// UnsolvedScaleLhsEntry scales count nonzero cells of A, keeping b and c.
func UnsolvedScaleLhsEntry(count int, mean, sigma float64) Operator {
	m := Repeat(ScaleMatrixEntry(mean, sigma), count)
	return unsolved("UnsolvedScaleLhsEntry", func(p *unsolvedParts, rng *rand.Rand) { m(p.lhs, rng) })
}

// ---- Composition ------------------------------------------------------------

// Choice applies one of ops, chosen uniformly per call with rng.Intn.
// Panics when ops is empty or holds nil.
func Choice(ops ...Operator) Operator {
	if len(ops) == 0 {
		panic("neighbour: Choice()")
	}
	for i, op := range ops {
		if op == nil {
			panic(fmt.Sprintf("neighbour: Choice op %d is nil", i))
		}
	}
	ops = append([]Operator(nil), ops...)

	return func(in *instance.Instance, rng *rand.Rand) (*instance.Instance, error) {
		return ops[rng.Intn(len(ops))](in, rng)
	}
}

// Annotated runs op and then attaches the output of calcs to the new
// instance (instance.Calculate).
func Annotated(op Operator, calcs ...instance.Calculator) Operator {
	if op == nil {
		panic("neighbour: Annotated(nil)")
	}

	return func(in *instance.Instance, rng *rand.Rand) (*instance.Instance, error) {
		out, err := op(in, rng)
		if err != nil {
			return nil, err
		}
		if err = instance.Calculate(out, calcs...); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// EncodedDefaults is the mixed operator used by the search command: one of
// basis exchange (5), alpha scaling (5), and removal, addition and scaling
// of A entries (10 each), all with standard parameters.
func EncodedDefaults() Operator {
	return Choice(
		ExchangeBasis(5),
		ScaleOptValue(5, 0, 1),
		RemoveLhsEntry(10),
		AddLhsEntry(10, 0, 1),
		ScaleLhsEntry(10, 0, 1),
	)
}

// UnsolvedDefaults is the unsolved counterpart of EncodedDefaults: b and c
// entries scaled by N(1, 0.1²), A entries removed, added and scaled.
func UnsolvedDefaults() Operator {
	return Choice(
		ScaleRhsEntry(5, 1, 0.1),
		ScaleObjEntry(5, 1, 0.1),
		UnsolvedRemoveLhsEntry(10),
		UnsolvedAddLhsEntry(10, 0, 1),
		UnsolvedScaleLhsEntry(10, 0, 1),
	)
}
