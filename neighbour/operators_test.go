package neighbour_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpgen/builder"
	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/neighbour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func encodedInstance(t *testing.T, seed int64) *instance.Instance {
	t.Helper()
	p := builder.DefaultEncodedParams()
	p.Variables, p.Constraints = 8, 6
	in, err := builder.GenerateEncoded(p, builder.NewRand(seed))
	require.NoError(t, err)
	return in
}

func unsolvedInstance(t *testing.T, seed int64, opts ...instance.Option) *instance.Instance {
	t.Helper()
	p := builder.DefaultNaiveParams()
	p.Variables, p.Constraints = 8, 6
	in, err := builder.GenerateNaive(p, builder.NewRand(seed), opts...)
	require.NoError(t, err)
	return in
}

func mustVec(t *testing.T) func(v []float64, err error) []float64 {
	return func(v []float64, err error) []float64 {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func TestExchangeBasis_SingleSwap(t *testing.T) {
	in := encodedInstance(t, 1)
	out, err := neighbour.ExchangeBasis(1)(in, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.Equal(t, instance.KindEncoded, out.Kind())

	before := mustVec(t)(in.Beta())
	after := mustVec(t)(out.Beta())
	assert.Equal(t, 2, diffPositions(before, after))
	assert.InDeltaSlice(t, mustVec(t)(in.Alpha()), mustVec(t)(out.Alpha()), 0)
	assert.True(t, mat.Equal(in.Lhs(), out.Lhs()))
}

func TestEncodedFamily_InputUntouched(t *testing.T) {
	ops := map[string]neighbour.Operator{
		"exchange": neighbour.ExchangeBasis(3),
		"optvalue": neighbour.ScaleOptValue(3, 0, 1),
		"remove":   neighbour.RemoveLhsEntry(3),
		"add":      neighbour.AddLhsEntry(3, 0, 1),
		"scale":    neighbour.ScaleLhsEntry(3, 0, 1),
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			in := encodedInstance(t, 9)
			lhs := in.Lhs()
			alpha := mustVec(t)(in.Alpha())
			beta := mustVec(t)(in.Beta())

			out, err := op(in, rand.New(rand.NewSource(2)))
			require.NoError(t, err)
			require.Equal(t, instance.KindEncoded, out.Kind())

			assert.True(t, mat.Equal(lhs, in.Lhs()))
			assert.Equal(t, alpha, mustVec(t)(in.Alpha()))
			assert.Equal(t, beta, mustVec(t)(in.Beta()))

			// still has a verified optimum
			sol, err := out.Solution()
			require.NoError(t, err)
			assert.NoError(t, sol.CheckComplementary(0))
		})
	}
}

func TestScaleOptValue_KeepsAlphaNonNegative(t *testing.T) {
	in := encodedInstance(t, 3)
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 20; i++ {
		var err error
		in, err = neighbour.ScaleOptValue(5, 0, 1)(in, rng)
		require.NoError(t, err)
	}
	for _, a := range mustVec(t)(in.Alpha()) {
		assert.GreaterOrEqual(t, a, 0.0)
	}
}

func TestLhsOperators_Nonzeros(t *testing.T) {
	in := encodedInstance(t, 5)
	before := nonzeros(in.Lhs())

	out, err := neighbour.RemoveLhsEntry(2)(in, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, before-2, nonzeros(out.Lhs()))

	out, err = neighbour.AddLhsEntry(2, 0, 1)(in, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, before+2, nonzeros(out.Lhs()))
}

func TestUnsolvedFamily(t *testing.T) {
	in := unsolvedInstance(t, 4)
	rhs := mustVec(t)(in.Rhs())
	obj := mustVec(t)(in.Objective())

	out, err := neighbour.ScaleRhsEntry(1, 1, 0.1)(in, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	require.Equal(t, instance.KindUnsolved, out.Kind())
	assert.Equal(t, 1, diffPositions(rhs, mustVec(t)(out.Rhs())))
	assert.Equal(t, obj, mustVec(t)(out.Objective()))

	out, err = neighbour.ScaleObjEntry(1, 1, 0.1)(in, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	assert.Equal(t, 1, diffPositions(obj, mustVec(t)(out.Objective())))
	assert.Equal(t, rhs, mustVec(t)(out.Rhs()))

	for _, op := range []neighbour.Operator{
		neighbour.UnsolvedRemoveLhsEntry(2),
		neighbour.UnsolvedAddLhsEntry(2, 0, 1),
		neighbour.UnsolvedScaleLhsEntry(2, 0, 1),
	} {
		out, err = op(in, rand.New(rand.NewSource(6)))
		require.NoError(t, err)
		assert.Equal(t, instance.KindUnsolved, out.Kind())
		assert.Equal(t, rhs, mustVec(t)(out.Rhs()))
	}
}

func TestUnsolvedFamily_CarriesSolver(t *testing.T) {
	solver := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
		return instance.Result{Status: instance.StatusInfeasible}, nil
	})
	in := unsolvedInstance(t, 4, instance.WithSolver(solver))

	out, err := neighbour.ScaleRhsEntry(1, 1, 0.1)(in, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NotNil(t, out.Solver())

	_, err = out.Solution()
	assert.ErrorIs(t, err, instance.ErrUnsolvable)
}

func TestOperators_Deterministic(t *testing.T) {
	op := neighbour.EncodedDefaults()
	in := encodedInstance(t, 12)

	a, err := op(in, rand.New(rand.NewSource(33)))
	require.NoError(t, err)
	b, err := op(in, rand.New(rand.NewSource(33)))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Lhs(), b.Lhs()))
	assert.Equal(t, mustVec(t)(a.Alpha()), mustVec(t)(b.Alpha()))
	assert.Equal(t, mustVec(t)(a.Beta()), mustVec(t)(b.Beta()))
}

func TestChoice(t *testing.T) {
	hits := make([]int, 3)
	mk := func(i int) neighbour.Operator {
		return func(in *instance.Instance, _ *rand.Rand) (*instance.Instance, error) {
			hits[i]++
			return in, nil
		}
	}
	op := neighbour.Choice(mk(0), mk(1), mk(2))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		_, err := op(nil, rng)
		require.NoError(t, err)
	}
	for i, h := range hits {
		assert.Greater(t, h, 50, "operator %d", i)
	}

	assert.Panics(t, func() { neighbour.Choice() })
	assert.Panics(t, func() { neighbour.Choice(mk(0), nil) })
}

func TestAnnotated(t *testing.T) {
	calc := func(in *instance.Instance) (map[string]any, error) {
		return map[string]any{"n": in.Variables()}, nil
	}
	in := encodedInstance(t, 2)
	in.Set("stale", true)

	out, err := neighbour.Annotated(neighbour.ExchangeBasis(1), calc)(in, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	v, ok := out.Get("n")
	require.True(t, ok)
	assert.Equal(t, 8, v)
	_, ok = out.Get("stale")
	assert.False(t, ok, "annotations are not carried over")
}
