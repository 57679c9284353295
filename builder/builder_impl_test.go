// Package builder_test contains functional tests for the samplers and
// pipelines of the builder package: sums, capacities, coverage, error classes
// and seed determinism.
package builder_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpgen/builder"
	"github.com/katalvlaran/lpgen/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sum(d []int) int {
	s := 0
	for _, v := range d {
		s += v
	}
	return s
}

func TestDegreeDist_SumAndCapacity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, param := range []float64{0, 0.3, 1} {
		for _, tc := range []struct{ vertices, edges, maxDegree int }{
			{1, 0, 0},
			{1, 3, 3},
			{5, 7, 2},
			{10, 30, 3}, // exactly at capacity
			{20, 57, 10},
		} {
			name := fmt.Sprintf("v%d_e%d_max%d_p%g", tc.vertices, tc.edges, tc.maxDegree, param)
			t.Run(name, func(t *testing.T) {
				d, err := builder.DegreeDist(tc.vertices, tc.edges, tc.maxDegree, param, rng)
				require.NoError(t, err)
				require.Len(t, d, tc.vertices)
				assert.Equal(t, tc.edges, sum(d))
				for _, v := range d {
					assert.LessOrEqual(t, v, tc.maxDegree)
					assert.GreaterOrEqual(t, v, 0)
				}
			})
		}
	}
}

func TestDegreeDist_Errors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	_, err := builder.DegreeDist(3, 7, 2, 0.5, rng)
	require.ErrorIs(t, err, builder.ErrDegreeCapacity)
	_, err = builder.DegreeDist(3, 3, 2, 1.5, rng)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.DegreeDist(0, 0, 2, 0.5, rng)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.DegreeDist(3, 3, 2, 0.5, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestDegreeDist_SkewConcentrates(t *testing.T) {
	t.Parallel()

	// Full preferential attachment concentrates degree far more than the
	// uniform-random mix; compare the largest degree over several runs.
	rng := rand.New(rand.NewSource(3))
	var rich, flat int
	for run := 0; run < 10; run++ {
		a, err := builder.DegreeDist(20, 100, 100, 1, rng)
		require.NoError(t, err)
		b, err := builder.DegreeDist(20, 100, 100, 0, rng)
		require.NoError(t, err)
		rich += maxInt(a)
		flat += maxInt(b)
	}
	assert.Greater(t, rich, flat)
}

func maxInt(d []int) int {
	m := d[0]
	for _, v := range d[1:] {
		m = max(m, v)
	}
	return m
}

func TestExpectedBipartiteDegree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))

	// probabilities ≥ 1 on every pair: complete bipartite graph
	edges, err := builder.ExpectedBipartiteDegree([]int{2, 2, 2}, []int{3, 3}, rng)
	require.NoError(t, err)
	assert.Equal(t, []builder.Edge{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, edges)

	// zero degree never connects
	edges, err = builder.ExpectedBipartiteDegree([]int{0, 4}, []int{2, 2}, rng)
	require.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, 1, e.Variable)
	}

	_, err = builder.ExpectedBipartiteDegree([]int{1, 2}, []int{2, 2}, rng)
	require.ErrorIs(t, err, builder.ErrUnbalancedDegrees)

	edges, err = builder.ExpectedBipartiteDegree([]int{0}, []int{0, 0}, rng)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestConnectRemaining_CoversIsolated(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	// 4 variables, 3 constraints; only variable 0 / constraint 0 connected.
	patch, err := builder.ConnectRemaining(4, 3, []builder.Edge{{0, 0}}, rng)
	require.NoError(t, err)
	// three isolated variables vs two isolated constraints: three pairs
	require.Len(t, patch, 3)

	seen1 := map[int]bool{0: true}
	seen2 := map[int]bool{0: true}
	for _, e := range patch {
		seen1[e.Variable] = true
		seen2[e.Constraint] = true
	}
	assert.Len(t, seen1, 4)
	assert.Len(t, seen2, 3)

	// no isolated vertex: nothing to add
	patch, err = builder.ConnectRemaining(2, 1, []builder.Edge{{0, 0}, {1, 0}}, rng)
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestConnectRemaining_Errors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	_, err := builder.ConnectRemaining(2, 2, []builder.Edge{{5, 0}}, rng)
	require.ErrorIs(t, err, builder.ErrBadSize)

	// Three isolated variables and one isolated constraint. The constraint
	// counter grows by two per pairing, so after two pairings it reaches 4,
	// above the capacity n1=3, and the third fallback finds no partner.
	_, err = builder.ConnectRemaining(3, 1, nil, rng)
	require.ErrorIs(t, err, builder.ErrNoEligibleVertex)
	assert.Contains(t, err.Error(), "constraint degrees")
}

func TestGenerateEdges_CompleteAtFullDensity(t *testing.T) {
	t.Parallel()

	edges, err := builder.GenerateEdges(3, 2, 1.0, 0.5, 0.5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assert.Len(t, edges, 6)
}

func TestGenerateEdges_EveryVertexCovered(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 20; trial++ {
		n1, n2 := 1+rng.Intn(25), 1+rng.Intn(25)
		density := rng.Float64()
		edges, err := builder.GenerateEdges(n1, n2, density, rng.Float64(), rng.Float64(), rng)
		require.NoError(t, err)

		d1 := make([]int, n1)
		d2 := make([]int, n2)
		seen := map[builder.Edge]bool{}
		for k, e := range edges {
			require.False(t, seen[e], "duplicate edge %v", e)
			seen[e] = true
			if k > 0 {
				prev := edges[k-1]
				require.True(t, prev.Variable < e.Variable ||
					(prev.Variable == e.Variable && prev.Constraint < e.Constraint), "edges not sorted")
			}
			d1[e.Variable]++
			d2[e.Constraint]++
		}
		for i, d := range d1 {
			require.GreaterOrEqual(t, d, 1, "variable %d isolated (%dx%d, density %g)", i, n1, n2, density)
		}
		for j, d := range d2 {
			require.GreaterOrEqual(t, d, 1, "constraint %d isolated (%dx%d, density %g)", j, n1, n2, density)
		}
	}
}

func TestGenerateLHS(t *testing.T) {
	t.Parallel()

	a, err := builder.GenerateLHS(6, 4, builder.WithSeed(21), builder.WithDensity(1), builder.WithConstantCoefficient(2))
	require.NoError(t, err)
	r, c := a.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 6, c)
	assert.True(t, mat.Equal(a, constDense(4, 6, 2)))

	_, err = builder.GenerateLHS(6, 4)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.GenerateLHS(0, 4, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)

	// seed determinism
	x, err := builder.GenerateLHS(15, 10, builder.WithSeed(99), builder.WithDensity(0.3), builder.WithSkew(0.8, 0.2))
	require.NoError(t, err)
	y, err := builder.GenerateLHS(15, 10, builder.WithSeed(99), builder.WithDensity(0.3), builder.WithSkew(0.8, 0.2))
	require.NoError(t, err)
	assert.True(t, mat.Equal(x, y))
}

func constDense(r, c int, v float64) *mat.Dense {
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, v)
		}
	}
	return d
}

func TestGenerateBeta(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	for _, tc := range []struct {
		n, m        int
		split       float64
		wantPrimals int
	}{
		{5, 4, 0, 0},
		{5, 4, 1, 4},
		{4, 10, 0.5, 2},
		{10, 4, 0.5, 2},
		{3, 3, 0.5, 2}, // round(1.5) ties to even
	} {
		beta, err := builder.GenerateBeta(tc.n, tc.m, tc.split, rng)
		require.NoError(t, err)
		require.Len(t, beta, tc.n+tc.m)

		primals, ones := 0, 0
		for i, b := range beta {
			require.True(t, b == 0 || b == 1)
			if b == 1 {
				ones++
				if i < tc.n {
					primals++
				}
			}
		}
		assert.Equal(t, tc.m, ones)
		assert.Equal(t, tc.wantPrimals, primals)
	}

	_, err := builder.GenerateBeta(3, 3, -0.1, rng)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestGenerateAlpha(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4))
	p := builder.DefaultAlphaParams()
	p.FracViolations = 0.4

	alpha, err := builder.GenerateAlpha(10, 6, p, rng)
	require.NoError(t, err)
	require.Len(t, alpha, 16)

	fractional := 0
	for i, v := range alpha {
		require.Greater(t, v, 0.0)
		if i < 10 && v != math.Floor(v) {
			fractional++
		}
	}
	assert.Equal(t, 4, fractional)

	p.FracViolations = 0
	alpha, err = builder.GenerateAlpha(10, 6, p, rng)
	require.NoError(t, err)
	for _, v := range alpha[:10] {
		assert.Equal(t, math.Ceil(v), v)
	}

	bad := builder.DefaultAlphaParams()
	bad.BetaParam = 0
	_, err = builder.GenerateAlpha(3, 3, bad, rng)
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestGenerateRhsObjective(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(6))
	b, err := builder.GenerateRhs(7, 10, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 10, 10, 10, 10}, b)

	c, err := builder.GenerateObjective(3, -1, 2, rng)
	require.NoError(t, err)
	assert.Len(t, c, 3)

	_, err = builder.GenerateRhs(3, 0, -1, rng)
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
	_, err = builder.GenerateObjective(3, 0, 1, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestGenerateEncoded_ProducesValidInstance(t *testing.T) {
	t.Parallel()

	p := builder.DefaultEncodedParams()
	p.Variables, p.Constraints = 12, 8

	in, err := builder.GenerateEncoded(p, builder.NewRand(17))
	require.NoError(t, err)
	require.Equal(t, instance.KindEncoded, in.Kind())
	require.Equal(t, 12, in.Variables())
	require.Equal(t, 8, in.Constraints())

	sol, err := in.Solution()
	require.NoError(t, err)
	require.NoError(t, sol.CheckComplementary(0))

	// determinism: same seed, same instance
	again, err := builder.GenerateEncoded(p, builder.NewRand(17))
	require.NoError(t, err)
	assert.True(t, mat.Equal(in.Lhs(), again.Lhs()))
	a1, _ := in.Alpha()
	a2, _ := again.Alpha()
	assert.Equal(t, a1, a2)

	bad := p
	bad.BasisSplit = 2
	_, err = builder.GenerateEncoded(bad, builder.NewRand(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestGenerateNaive(t *testing.T) {
	t.Parallel()

	p := builder.DefaultNaiveParams()
	p.Variables, p.Constraints = 6, 5
	in, err := builder.GenerateNaive(p, builder.NewRand(23))
	require.NoError(t, err)
	require.Equal(t, instance.KindUnsolved, in.Kind())

	_, err = in.Solution()
	require.ErrorIs(t, err, instance.ErrNoSolver)
}

func TestRandomParams_AreValid(t *testing.T) {
	t.Parallel()

	rng := builder.NewRand(31)
	for i := 0; i < 50; i++ {
		e := builder.RandomEncodedParams(rng)
		require.NoError(t, e.Validate())
		require.GreaterOrEqual(t, e.Variables, 50)
		require.Less(t, e.Variables, 100)
		require.GreaterOrEqual(t, e.Density, 0.3)
		require.Less(t, e.Density, 0.7)

		n := builder.RandomNaiveParams(rng)
		require.NoError(t, n.Validate())
		require.Equal(t, 50, n.Variables)
	}
}
