package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/optkit/tabular/lp"
	"github.com/optkit/tabular/simplex"
)

// SolveSuite exercises the solver across methods and terminal statuses.
type SolveSuite struct {
	suite.Suite
}

// danzig is the classic all-≤ fixture:
// max 3x1+5x2 s.t. x1 ≤ 4, 2x2 ≤ 12, 3x1+2x2 ≤ 18 → 36 at (2,6).
func danzig() lp.Problem {
	return lp.Problem{
		Direction: lp.Maximize,
		Objective: []float64{3, 5},
		Constraints: []lp.Constraint{
			lp.LessEqual(4, 1, 0),
			lp.LessEqual(12, 0, 2),
			lp.LessEqual(18, 3, 2),
		},
	}
}

// coverage is a ≥/≤ minimization:
// min 2x1+3x2 s.t. x1+x2 ≥ 4, x1 ≤ 3 → 9 at (3,1).
func coverage() lp.Problem {
	return lp.Problem{
		Direction: lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			lp.GreaterEqual(4, 1, 1),
			lp.LessEqual(3, 1, 0),
		},
	}
}

// disjoint has an empty feasible region: x1+x2 ≤ 1 and x1+x2 ≥ 3.
func disjoint() lp.Problem {
	return lp.Problem{
		Direction: lp.Maximize,
		Objective: []float64{1, 1},
		Constraints: []lp.Constraint{
			lp.LessEqual(1, 1, 1),
			lp.GreaterEqual(3, 1, 1),
		},
	}
}

func (s *SolveSuite) requireOptimal(res simplex.Result, value float64, solution []float64) {
	s.T().Helper()
	require.Equal(s.T(), simplex.Optimal, res.Status)
	require.InDelta(s.T(), value, res.Value, 1e-6)
	require.Len(s.T(), res.Solution, len(solution))
	for i, want := range solution {
		require.InDelta(s.T(), want, res.Solution[i], 1e-6, "x%d", i+1)
	}
}

func (s *SolveSuite) TestDanzigStandard() {
	res, err := simplex.Solve(danzig(), lp.Standard, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 36, []float64{2, 6})
	require.Len(s.T(), res.Steps, 2)
	require.Equal(s.T(), []string{"x1", "x2", "s1", "s2", "s3"}, res.Names)
}

func (s *SolveSuite) TestDanzigBigM() {
	res, err := simplex.Solve(danzig(), lp.BigM, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 36, []float64{2, 6})
}

func (s *SolveSuite) TestDanzigTwoPhase() {
	res, err := simplex.Solve(danzig(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 36, []float64{2, 6})
	// No artificials needed: phase 1 is a no-op, every step is phase 2.
	for _, step := range res.Steps {
		require.Equal(s.T(), 2, step.Phase)
	}
}

func (s *SolveSuite) TestSolveStandardWrapper() {
	res, err := simplex.SolveStandard(danzig(), simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 36, []float64{2, 6})
}

func (s *SolveSuite) TestCoverageTwoPhase() {
	res, err := simplex.Solve(coverage(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 9, []float64{3, 1})
	require.Equal(s.T(), []string{"x1", "x2", "s1", "s2", "a1"}, res.Names)
}

func (s *SolveSuite) TestCoverageBigM() {
	res, err := simplex.Solve(coverage(), lp.BigM, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	s.requireOptimal(res, 9, []float64{3, 1})
}

func (s *SolveSuite) TestEqualityConstraint() {
	// max 3x1+2x2 s.t. x1+x2 = 4, x1 ≤ 2 → 10 at (2,2).
	p := lp.Problem{
		Direction: lp.Maximize,
		Objective: []float64{3, 2},
		Constraints: []lp.Constraint{
			lp.EqualTo(4, 1, 1),
			lp.LessEqual(2, 1, 0),
		},
	}
	for _, method := range []lp.Method{lp.BigM, lp.TwoPhase} {
		res, err := simplex.Solve(p, method, simplex.DefaultOptions())
		require.NoError(s.T(), err, method.String())
		s.requireOptimal(res, 10, []float64{2, 2})
	}
}

func (s *SolveSuite) TestUnbounded() {
	// max x1 s.t. x1 − x2 ≤ 1: x2 lifts the constraint forever.
	p := lp.Problem{
		Direction:   lp.Maximize,
		Objective:   []float64{1, 0},
		Constraints: []lp.Constraint{lp.LessEqual(1, 1, -1)},
	}
	res, err := simplex.Solve(p, lp.Standard, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.Unbounded, res.Status)
	require.Len(s.T(), res.Steps, 1) // one pivot before the empty ratio test
	require.Equal(s.T(), []float64{0, 0}, res.Solution)
	require.Equal(s.T(), 0.0, res.Value)
}

func (s *SolveSuite) TestInfeasibleTwoPhase() {
	res, err := simplex.Solve(disjoint(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.Infeasible, res.Status)
	// Phase 2 never ran.
	for _, step := range res.Steps {
		require.Equal(s.T(), 1, step.Phase)
	}
	require.Equal(s.T(), []float64{0, 0}, res.Solution)
}

func (s *SolveSuite) TestInfeasibleBigM() {
	res, err := simplex.Solve(disjoint(), lp.BigM, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.Infeasible, res.Status)
}

// TestDuality: min c·x and max −c·x over the same constraints must agree
// on the solution vector and report exactly opposite objective values.
func (s *SolveSuite) TestDuality() {
	minP := coverage()
	maxP := coverage()
	maxP.Direction = lp.Maximize
	maxP.Objective = []float64{-2, -3}

	minRes, err := simplex.Solve(minP, lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	maxRes, err := simplex.Solve(maxP, lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), simplex.Optimal, minRes.Status)
	require.Equal(s.T(), simplex.Optimal, maxRes.Status)
	require.InDelta(s.T(), -minRes.Value, maxRes.Value, 1e-9)
	for i := range minRes.Solution {
		require.InDelta(s.T(), minRes.Solution[i], maxRes.Solution[i], 1e-9)
	}
}

// TestRoundTrip re-substitutes the reported solution into the original
// objective and every constraint.
func (s *SolveSuite) TestRoundTrip() {
	problems := map[string]lp.Problem{
		"danzig":   danzig(),
		"coverage": coverage(),
	}
	for name, p := range problems {
		res, err := simplex.Solve(p, lp.TwoPhase, simplex.DefaultOptions())
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), simplex.Optimal, res.Status, name)

		obj := dot(p.Objective, res.Solution)
		require.InDelta(s.T(), res.Value, obj, 1e-6, name)

		for i, c := range p.Constraints {
			lhs := dot(c.Coeffs, res.Solution)
			switch c.Rel {
			case lp.LE:
				require.LessOrEqual(s.T(), lhs, c.RHS+1e-6, "%s row %d", name, i)
			case lp.GE:
				require.GreaterOrEqual(s.T(), lhs, c.RHS-1e-6, "%s row %d", name, i)
			case lp.EQ:
				require.InDelta(s.T(), c.RHS, lhs, 1e-6, "%s row %d", name, i)
			}
		}
	}
}

// TestIdempotence: solving the same problem twice yields identical traces.
func (s *SolveSuite) TestIdempotence() {
	a, err := simplex.Solve(coverage(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)
	b, err := simplex.Solve(coverage(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Status, b.Status)
	require.Equal(s.T(), a.Value, b.Value)
	require.Equal(s.T(), a.Basis, b.Basis)
	require.Equal(s.T(), a.Solution, b.Solution)
	require.Len(s.T(), b.Steps, len(a.Steps))
	for i := range a.Steps {
		require.Equal(s.T(), a.Steps[i].PivotRow, b.Steps[i].PivotRow)
		require.Equal(s.T(), a.Steps[i].PivotCol, b.Steps[i].PivotCol)
		require.Equal(s.T(), a.Steps[i].Basis, b.Steps[i].Basis)
		require.Equal(s.T(), a.Steps[i].Tableau.RawMatrix().Data, b.Steps[i].Tableau.RawMatrix().Data)
	}
}

func (s *SolveSuite) TestIterationLimit() {
	opts := simplex.DefaultOptions()
	opts.MaxIterations = 1
	_, err := simplex.Solve(danzig(), lp.Standard, opts)
	require.ErrorIs(s.T(), err, simplex.ErrIterationLimit)

	// The cap bounds pivots, not optimality checks: exactly two pivots
	// are needed, and a cap of two must still converge.
	opts.MaxIterations = 2
	res, err := simplex.Solve(danzig(), lp.Standard, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), simplex.Optimal, res.Status)
	require.Len(s.T(), res.Steps, 2)
}

func (s *SolveSuite) TestStandardRejectsArtificialNeeds() {
	p := lp.Problem{
		Direction:   lp.Maximize,
		Objective:   []float64{1, 1},
		Constraints: []lp.Constraint{lp.EqualTo(2, 1, 1)},
	}
	_, err := simplex.Solve(p, lp.Standard, simplex.DefaultOptions())
	require.ErrorIs(s.T(), err, simplex.ErrMethodUnsupported)

	_, err = simplex.Solve(disjoint(), lp.Standard, simplex.DefaultOptions())
	require.ErrorIs(s.T(), err, simplex.ErrMethodUnsupported)
}

func (s *SolveSuite) TestInputSentinelsForwarded() {
	bad := danzig()
	bad.Objective = nil
	_, err := simplex.Solve(bad, lp.Standard, simplex.DefaultOptions())
	require.ErrorIs(s.T(), err, lp.ErrNoVariables)

	_, err = simplex.Solve(danzig(), lp.Method(42), simplex.DefaultOptions())
	require.ErrorIs(s.T(), err, lp.ErrBadMethod)
}

func (s *SolveSuite) TestBadOptions() {
	for _, mutate := range []func(*simplex.Options){
		func(o *simplex.Options) { o.Eps = 0 },
		func(o *simplex.Options) { o.FeasTol = -1 },
		func(o *simplex.Options) { o.MaxIterations = 0 },
		func(o *simplex.Options) { o.BigM = 0 },
	} {
		opts := simplex.DefaultOptions()
		mutate(&opts)
		_, err := simplex.Solve(danzig(), lp.Standard, opts)
		require.ErrorIs(s.T(), err, simplex.ErrBadOptions)
	}
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// dot is the plain inner product of equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
