package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/optkit/tabular/lp"
	"github.com/optkit/tabular/simplex"
)

// requireCanonical asserts the canonical-form invariant: each basic column
// holds exactly 1 in its own constraint row and 0 in every other row.
func requireCanonical(t *testing.T, m *mat.Dense, basis []int) {
	t.Helper()
	rows, _ := m.Dims()
	for i, col := range basis {
		for r := 0; r < rows; r++ {
			want := 0.0
			if r == i+1 {
				want = 1.0
			}
			require.InDelta(t, want, m.At(r, col), 1e-9,
				"basic col %d, row %d", col, r)
		}
	}
}

// TestSteps_CanonicalInvariant checks every recorded snapshot and the
// final tableau against the basis they were recorded with.
func TestSteps_CanonicalInvariant(t *testing.T) {
	for _, method := range []lp.Method{lp.Standard, lp.BigM, lp.TwoPhase} {
		res, err := simplex.Solve(danzig(), method, simplex.DefaultOptions())
		require.NoError(t, err, method.String())
		for _, step := range res.Steps {
			requireCanonical(t, step.Tableau, step.Basis)
		}
		requireCanonical(t, res.Tableau, res.Basis)
	}

	res, err := simplex.Solve(coverage(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(t, err)
	for _, step := range res.Steps {
		requireCanonical(t, step.Tableau, step.Basis)
	}
	requireCanonical(t, res.Tableau, res.Basis)
}

// TestSteps_PrePivotSnapshots checks that step 0 captures the tableau as
// built (before any elimination) and that snapshots do not alias the
// final matrix.
func TestSteps_PrePivotSnapshots(t *testing.T) {
	res, err := simplex.Solve(danzig(), lp.Standard, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Steps, 2)

	// Initial objective row: −3, −5 in the decision columns.
	first := res.Steps[0]
	require.Equal(t, -3.0, first.Tableau.At(0, 0))
	require.Equal(t, -5.0, first.Tableau.At(0, 1))
	require.Equal(t, []int{2, 3, 4}, first.Basis) // slacks s1,s2,s3

	// The live matrix has moved on; the snapshot must not have.
	require.Equal(t, 0.0, res.Tableau.At(0, 0))
	require.Equal(t, 0.0, res.Tableau.At(0, 1))
}

// TestSteps_PivotNarration pins the deterministic pivot sequence of the
// danzig fixture: x2 enters first (most negative −5), s2 leaves on the
// 12/2=6 ratio; then x1 enters, s3 leaves on the 6/3=2 ratio.
func TestSteps_PivotNarration(t *testing.T) {
	res, err := simplex.Solve(danzig(), lp.Standard, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Steps, 2)

	require.Equal(t, "x2", res.Steps[0].Entering)
	require.Equal(t, "s2", res.Steps[0].Leaving)
	require.Equal(t, 2, res.Steps[0].PivotRow)
	require.Equal(t, 1, res.Steps[0].PivotCol)
	require.Equal(t, "phase 1: x2 enters, s2 leaves (pivot r2,c1)", res.Steps[0].String())

	require.Equal(t, "x1", res.Steps[1].Entering)
	require.Equal(t, "s3", res.Steps[1].Leaving)
}

// TestSteps_TwoPhaseAppendsAcrossPhases checks phase tagging on a problem
// that genuinely needs phase 1.
func TestSteps_TwoPhaseAppendsAcrossPhases(t *testing.T) {
	res, err := simplex.Solve(coverage(), lp.TwoPhase, simplex.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)

	// Phases appear in order: a block of 1s, then (possibly empty) 2s.
	seenPhase2 := false
	for _, step := range res.Steps {
		switch step.Phase {
		case 1:
			require.False(t, seenPhase2, "phase 1 step after phase 2 began")
		case 2:
			seenPhase2 = true
		default:
			t.Fatalf("unexpected phase %d", step.Phase)
		}
	}
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "optimal", simplex.Optimal.String())
	require.Equal(t, "unbounded", simplex.Unbounded.String())
	require.Equal(t, "infeasible", simplex.Infeasible.String())
}
