package instance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lpgen/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-10

// Known 4×5 problem with a precomputed optimal pair.
var (
	fixtureA = mat.NewDense(4, 5, []float64{
		0.42, 0.61, 0.06, 0.01, 0.49,
		0.74, 0.12, 0.57, 0.23, 0.23,
		0.78, 0.92, 0.67, 0.32, 0.64,
		0.02, 0.67, 0.2, 0.45, 0.39,
	})
	fixtureAlpha = []float64{0.93, 0.99, 0.52, 0.54, 0.12, 0.55, 0.44, 0.13, 0.04}
	fixtureBeta  = []float64{0, 1, 0, 1, 0, 0, 1, 1, 0}
	fixtureRhs   = []float64{0.6093, 0.683, 1.2136, 0.9063}
	fixtureObj   = []float64{-0.6982, 0.3623, -0.479, 0.0235, 0.1651}
	fixtureSol   = instance.Solution{
		X:     []float64{0, 0.99, 0, 0.54, 0},
		R:     []float64{0.93, 0, 0.52, 0, 0.12},
		Y:     []float64{0.55, 0, 0, 0.04},
		S:     []float64{0, 0.44, 0.13, 0},
		Basis: []float64{0, 1, 0, 1, 0, 0, 1, 1, 0},
	}
)

// fixtureSolver answers every solve with the fixture solution.
var fixtureSolver = instance.SolverFunc(func(_ context.Context, p instance.Problem) (instance.Result, error) {
	return instance.Result{
		Status:      instance.StatusOptimal,
		Primal:      fixtureSol.X,
		Slack:       fixtureSol.S,
		Dual:        fixtureSol.Y,
		ReducedCost: fixtureSol.R,
		Basis:       fixtureSol.Basis,
	}, nil
})

func requireSolution(t *testing.T, want, got instance.Solution) {
	t.Helper()
	assert.InDeltaSlice(t, want.X, got.X, tol, "x")
	assert.InDeltaSlice(t, want.Y, got.Y, tol, "y")
	assert.InDeltaSlice(t, want.R, got.R, tol, "r")
	assert.InDeltaSlice(t, want.S, got.S, tol, "s")
	assert.Equal(t, want.Basis, got.Basis, "basis")
}

// requireFixture checks every accessor of in against the fixture problem.
func requireFixture(t *testing.T, in *instance.Instance) {
	t.Helper()
	require.Equal(t, 5, in.Variables())
	require.Equal(t, 4, in.Constraints())
	assert.True(t, mat.EqualApprox(fixtureA, in.Lhs(), tol))

	sol, err := in.Solution()
	require.NoError(t, err)
	requireSolution(t, fixtureSol, sol)

	alpha, err := in.Alpha()
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixtureAlpha, alpha, tol)

	beta, err := in.Beta()
	require.NoError(t, err)
	assert.Equal(t, fixtureBeta, beta)

	rhs, err := in.Rhs()
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixtureRhs, rhs, tol)

	obj, err := in.Objective()
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixtureObj, obj, tol)
}

func TestEncodedInstance_Fixture(t *testing.T) {
	in, err := instance.NewEncoded(fixtureA, fixtureAlpha, fixtureBeta)
	require.NoError(t, err)
	require.Equal(t, instance.KindEncoded, in.Kind())
	requireFixture(t, in)
}

func TestSolvedInstance_Fixture(t *testing.T) {
	in, err := instance.NewSolved(fixtureA, fixtureSol)
	require.NoError(t, err)
	require.Equal(t, instance.KindSolved, in.Kind())
	requireFixture(t, in)
}

func TestUnsolvedInstance_Fixture(t *testing.T) {
	in, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj, instance.WithSolver(fixtureSolver))
	require.NoError(t, err)
	require.Equal(t, instance.KindUnsolved, in.Kind())
	requireFixture(t, in)
}

func TestUnsolvedInstance_NoSolver(t *testing.T) {
	in, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj)
	require.NoError(t, err)

	_, err = in.Solution()
	require.ErrorIs(t, err, instance.ErrNoSolver)
	_, err = in.Alpha()
	require.ErrorIs(t, err, instance.ErrNoSolver)
	_, err = in.Beta()
	require.ErrorIs(t, err, instance.ErrNoSolver)

	// b and c stay available.
	rhs, err := in.Rhs()
	require.NoError(t, err)
	assert.Equal(t, fixtureRhs, rhs)
}

func TestUnsolvedInstance_NonOptimalStatus(t *testing.T) {
	for _, st := range []instance.Status{instance.StatusInfeasible, instance.StatusUnbounded, instance.StatusOther} {
		t.Run(st.String(), func(t *testing.T) {
			solver := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
				return instance.Result{Status: st}, nil
			})
			in, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj, instance.WithSolver(solver))
			require.NoError(t, err)

			_, err = in.Solution()
			require.ErrorIs(t, err, instance.ErrUnsolvable)
			_, err = in.ToEncoded()
			require.ErrorIs(t, err, instance.ErrUnsolvable)
		})
	}
}

func TestUnsolvedInstance_SolverError(t *testing.T) {
	boom := errors.New("boom")
	solver := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
		return instance.Result{}, boom
	})
	in, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj, instance.WithSolver(solver))
	require.NoError(t, err)

	_, err = in.Solution()
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, instance.ErrUnsolvable)
}

func TestUnsolvedInstance_BadSolverResult(t *testing.T) {
	solver := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
		return instance.Result{Status: instance.StatusOptimal, Primal: []float64{1}}, nil
	})
	in, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj, instance.WithSolver(solver))
	require.NoError(t, err)

	_, err = in.Solution()
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
}

func TestNewEncoded_Preconditions(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 0, 2, 0, 1, 1})
	cases := []struct {
		name  string
		a     mat.Matrix
		alpha []float64
		beta  []float64
		want  error
	}{
		{"nil matrix", nil, []float64{1, 1, 1, 1, 1}, []float64{1, 1, 0, 0, 0}, instance.ErrNilMatrix},
		{"short alpha", a, []float64{1, 1, 1, 1}, []float64{1, 1, 0, 0, 0}, instance.ErrDimensionMismatch},
		{"long beta", a, []float64{1, 1, 1, 1, 1}, []float64{1, 1, 0, 0, 0, 0}, instance.ErrDimensionMismatch},
		{"negative alpha", a, []float64{1, -0.5, 1, 1, 1}, []float64{1, 1, 0, 0, 0}, instance.ErrNegativeAlpha},
		{"NaN alpha", a, []float64{1, nan(), 1, 1, 1}, []float64{1, 1, 0, 0, 0}, instance.ErrNaNInf},
		{"fractional beta", a, []float64{1, 1, 1, 1, 1}, []float64{1, 0.5, 0, 0, 1}, instance.ErrNonBinaryBeta},
		{"too many ones", a, []float64{1, 1, 1, 1, 1}, []float64{1, 1, 1, 0, 0}, instance.ErrBasisCardinality},
		{"too few ones", a, []float64{1, 1, 1, 1, 1}, []float64{1, 0, 0, 0, 0}, instance.ErrBasisCardinality},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.NewEncoded(tc.a, tc.alpha, tc.beta)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMustEncoded_Panics(t *testing.T) {
	require.Panics(t, func() {
		instance.MustEncoded(fixtureA, fixtureAlpha, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	})
	require.NotPanics(t, func() {
		instance.MustEncoded(fixtureA, fixtureAlpha, fixtureBeta)
	})
}

func TestNewUnsolved_Preconditions(t *testing.T) {
	_, err := instance.NewUnsolved(fixtureA, fixtureRhs[:3], fixtureObj)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	_, err = instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj[:4])
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	require.Panics(t, func() { instance.WithSolver(nil) })
}

func TestNewSolved_Preconditions(t *testing.T) {
	bad := fixtureSol.Clone()
	bad.Basis[0] = 2
	_, err := instance.NewSolved(fixtureA, bad)
	require.ErrorIs(t, err, instance.ErrNonBinaryBeta)

	bad = fixtureSol.Clone()
	bad.Y = bad.Y[:2]
	_, err = instance.NewSolved(fixtureA, bad)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
}

func TestInstance_AccessorsReturnCopies(t *testing.T) {
	in := instance.MustEncoded(fixtureA, fixtureAlpha, fixtureBeta)

	lhs := in.Lhs()
	lhs.Set(0, 0, 99)
	alpha, _ := in.Alpha()
	alpha[0] = 99
	beta, _ := in.Beta()
	beta[0] = 1
	sol, _ := in.Solution()
	sol.X[1] = 99

	requireFixture(t, in)
}

func TestInstance_InputsAreCopied(t *testing.T) {
	a := mat.DenseCopyOf(fixtureA)
	alpha := append([]float64(nil), fixtureAlpha...)
	in := instance.MustEncoded(a, alpha, fixtureBeta)

	a.Set(0, 0, 99)
	alpha[0] = 99

	requireFixture(t, in)
}

func TestInstance_Conversions(t *testing.T) {
	enc := instance.MustEncoded(fixtureA, fixtureAlpha, fixtureBeta)

	lp, err := enc.ToUnsolved()
	require.NoError(t, err)
	require.Equal(t, instance.KindUnsolved, lp.Kind())
	rhs, err := lp.Rhs()
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixtureRhs, rhs, tol)

	// Without a solver the unsolved form cannot come back.
	_, err = lp.ToEncoded()
	require.ErrorIs(t, err, instance.ErrNoSolver)

	solved, err := instance.NewUnsolved(fixtureA, fixtureRhs, fixtureObj, instance.WithSolver(fixtureSolver))
	require.NoError(t, err)
	back, err := solved.ToEncoded()
	require.NoError(t, err)
	require.Equal(t, instance.KindEncoded, back.Kind())
	require.NotNil(t, back.Solver())
	requireFixture(t, back)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "encoded", instance.KindEncoded.String())
	assert.Equal(t, "solved", instance.KindSolved.String())
	assert.Equal(t, "unsolved", instance.KindUnsolved.String())
	assert.Equal(t, "kind(7)", instance.Kind(7).String())
	assert.Equal(t, "status(9)", instance.Status(9).String())
}
