package features_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/katalvlaran/lpgen/features"
	"github.com/katalvlaran/lpgen/instance"
	"github.com/katalvlaran/lpgen/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-5

func sparseFixture(t *testing.T) *instance.Instance {
	t.Helper()
	in, err := instance.NewUnsolved(
		mat.NewDense(4, 5, []float64{
			0.42, 0.61, 0.06, 0.01, 0.49,
			0.74, 0.12, 0.57, 0, 0.23,
			0.78, 0.92, 0, 0.32, 0.64,
			0.02, 0.67, 0.2, 0.45, 0.39,
		}),
		[]float64{0.6093, 0.683, 1.2136, 0.9063},
		[]float64{-0.6982, 0.3623, -0.479, 0.0235, 0.1651},
	)
	require.NoError(t, err)
	return in
}

func TestCoeffFeatures(t *testing.T) {
	got, err := features.CoeffFeatures(sparseFixture(t))
	require.NoError(t, err)

	assert.Equal(t, 5, got["variables"])
	assert.Equal(t, 4, got["constraints"])
	assert.Equal(t, 18, got["nonzeros"])
	assert.InDelta(t, 0.9, got["coefficient_density"], tol)
	assert.InDelta(t, 0.26874651878308059, got["lhs_std"], tol)
	assert.InDelta(t, 0.42444444444444446, got["lhs_mean"], tol)
	assert.InDelta(t, 0.23513981479111529, got["rhs_std"], tol)
	assert.InDelta(t, 0.85305, got["rhs_mean"], tol)
	assert.InDelta(t, 0.39938589158857379, got["obj_std"], tol)
	assert.InDelta(t, -0.12526, got["obj_mean"], tol)
	assert.Equal(t, 4, got["cons_degree_min"])
	assert.Equal(t, 5, got["cons_degree_max"])
	assert.Equal(t, 3, got["var_degree_min"])
	assert.Equal(t, 4, got["var_degree_max"])
	assert.InDelta(t, 0.85305/0.42444444444444446, got["rhs_mean_normed"], 1e-4)
}

func TestCoeffFeatures_ZeroMatrix(t *testing.T) {
	in, err := instance.NewUnsolved(mat.NewDense(2, 3, nil), []float64{1, 2}, []float64{1, -1, 0})
	require.NoError(t, err)

	got, err := features.CoeffFeatures(in)
	require.NoError(t, err)
	assert.Equal(t, 0, got["nonzeros"])
	assert.Equal(t, 0.0, got["coefficient_density"])
	assert.InDelta(t, 1.5, got["rhs_mean"], tol)
	for _, key := range []string{"lhs_mean", "lhs_std", "lhs_abs_mean", "rhs_mean_normed", "obj_mean_normed"} {
		assert.NotContains(t, got, key)
	}

	_, err = json.Marshal(got)
	require.NoError(t, err)
}

func TestDegreeSeq(t *testing.T) {
	vars, cons := features.DegreeSeq(sparseFixture(t).Lhs())
	assert.Equal(t, []int{4, 4, 3, 3, 4}, vars)
	assert.Equal(t, []int{5, 4, 4, 5}, cons)
}

func TestSolutionFeatures(t *testing.T) {
	in, err := instance.NewUnsolved(
		mat.NewDense(4, 5, []float64{
			0.42, 0.61, 0.06, 0.01, 0.49,
			0.74, 0.12, 0.57, 0.23, 0.23,
			0.78, 0.92, 0.67, 0.32, 0.64,
			0.02, 0.67, 0.2, 0.45, 0.39,
		}),
		[]float64{0.6093, 0.683, 1.2136, 0.9063},
		[]float64{-0.6982, 0.3623, -0.479, 0.0235, 0.1651},
	)
	require.NoError(t, err)

	got, err := features.SolutionFeatures(context.Background(), simplex.Solver{})(in)
	require.NoError(t, err)
	assert.Equal(t, true, got["solvable"])
	assert.Equal(t, 2, got["binding_constraints"])
	assert.Equal(t, 2, got["fractional_primal"])
	assert.InDelta(t, 0.47, got["total_fractionality"], 1e-6)
}

func TestSolutionFeatures_Unsolvable(t *testing.T) {
	infeasible := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
		return instance.Result{Status: instance.StatusInfeasible}, nil
	})
	got, err := features.SolutionFeatures(context.Background(), infeasible)(sparseFixture(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"solvable": false}, got)

	boom := errors.New("boom")
	failing := instance.SolverFunc(func(context.Context, instance.Problem) (instance.Result, error) {
		return instance.Result{}, boom
	})
	_, err = features.SolutionFeatures(context.Background(), failing)(sparseFixture(t))
	assert.ErrorIs(t, err, boom)
}

func TestMetric(t *testing.T) {
	in := sparseFixture(t)
	v, err := features.Metric(features.CoeffFeatures, "nonzeros")(in)
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)

	annotated, ok := in.Float("lhs_mean")
	require.True(t, ok)
	assert.InDelta(t, 0.42444, annotated, tol)

	_, err = features.Metric(features.CoeffFeatures, "missing")(in)
	assert.ErrorIs(t, err, features.ErrNotNumeric)
}
