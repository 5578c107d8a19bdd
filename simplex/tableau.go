// Package simplex - dense tableau construction and row-level primitives.
//
// The tableau is a gonum mat.Dense with m+1 rows (row 0 = objective,
// rows 1..m = constraints) and numVarCols()+1 columns (last column = RHS).
// Canonical-form invariant: for every constraint row i, column basis[i-1]
// holds exactly 1 in row i and 0 elsewhere; pivoting maintains it.
package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/optkit/tabular/lp"
)

// tableau couples the dense matrix with its basis assignment. One tableau
// is owned by exactly one phase at a time; handoff() transfers ownership
// between phases by value, never by aliasing.
type tableau struct {
	m *mat.Dense

	// basis[i] is the flat variable index basic in constraint row i+1.
	basis []int

	nRows  int // constraint rows (matrix has nRows+1)
	rhsCol int // right-hand-side column index == number of variable columns
}

// newTableau allocates and populates the initial tableau for nf under the
// given method, including the objective row and its canonicalization.
//
// Layout per constraint row, by relation:
//   - LE: +1 in the slack column; slack starts basic.
//   - GE: −1 in the surplus column, +1 in the artificial column;
//     the artificial starts basic.
//   - EQ: +1 in the artificial column; the artificial starts basic.
//
// Objective row (row 0) per method:
//   - Standard: −cᵢ in decision columns.
//   - BigM:     −cᵢ in decision columns, +M in every artificial column.
//   - TwoPhase: +1 in every artificial column (phase-1 artificial sum).
//
// The builder finishes by eliminating every initially-basic column from
// row 0, so the objective row is expressed purely in non-basic variables
// before the first pivot.
//
// Complexity: O(m·cols) time and space.
func newTableau(nf normalForm, method lp.Method, opts Options) *tableau {
	cols := nf.numVarCols() + 1
	t := &tableau{
		m:      mat.NewDense(nf.m+1, cols, nil),
		basis:  make([]int, nf.m),
		nRows:  nf.m,
		rhsCol: cols - 1,
	}

	var (
		i   int     // constraint row index (0-based over nf.rows)
		j   int     // column index
		row rowForm // normalized row being written
	)
	for i, row = range nf.rows {
		for j = 0; j < nf.n; j++ {
			t.m.Set(i+1, j, row.coeffs[j])
		}
		switch row.rel {
		case lp.LE:
			t.m.Set(i+1, row.slackCol, 1)
			t.basis[i] = row.slackCol
		case lp.GE:
			t.m.Set(i+1, row.slackCol, -1)
			t.m.Set(i+1, row.artCol, 1)
			t.basis[i] = row.artCol
		case lp.EQ:
			t.m.Set(i+1, row.artCol, 1)
			t.basis[i] = row.artCol
		}
		t.m.Set(i+1, t.rhsCol, row.rhs)
	}

	switch method {
	case lp.Standard, lp.BigM:
		for j = 0; j < nf.n; j++ {
			t.m.Set(0, j, -nf.cost[j])
		}
		if method == lp.BigM {
			for _, row = range nf.rows {
				if row.artCol >= 0 {
					t.m.Set(0, row.artCol, opts.BigM)
				}
			}
		}
	case lp.TwoPhase:
		for _, row = range nf.rows {
			if row.artCol >= 0 {
				t.m.Set(0, row.artCol, 1)
			}
		}
	}

	t.canonicalizeObjective(opts.Eps)

	return t
}

// rhs reads the right-hand side of the given matrix row (0 = objective).
func (t *tableau) rhs(row int) float64 { return t.m.At(row, t.rhsCol) }

// snapshot deep-copies the matrix for a step record.
func (t *tableau) snapshot() *mat.Dense { return mat.DenseCopyOf(t.m) }

// basisCopy deep-copies the basis assignment.
func (t *tableau) basisCopy() []int {
	out := make([]int, len(t.basis))
	copy(out, t.basis)

	return out
}

// handoff transfers the tableau to the next phase as an owned value:
// the returned tableau shares no storage with the receiver.
func (t *tableau) handoff() *tableau {
	return &tableau{
		m:      mat.DenseCopyOf(t.m),
		basis:  t.basisCopy(),
		nRows:  t.nRows,
		rhsCol: t.rhsCol,
	}
}

// setObjective overwrites row 0 with the true maximize-form cost row
// (−cost in decision columns, 0 elsewhere). Used by the TwoPhase
// coordinator when switching from the artificial sum to the real
// objective; the caller must re-canonicalize afterwards.
func (t *tableau) setObjective(cost []float64) {
	row0 := t.m.RawRowView(0)
	for j := range row0 {
		row0[j] = 0
	}
	for j, c := range cost {
		row0[j] = -c
	}
}

// canonicalizeObjective eliminates every basic column from row 0 by
// subtracting the appropriate multiple of its constraint row. Each basic
// column holds +1 in its own row, so the multiple is row 0's current
// value in that column.
//
// Complexity: O(m·cols).
func (t *tableau) canonicalizeObjective(eps float64) {
	row0 := t.m.RawRowView(0)

	var (
		i, col int
		factor float64
		src    []float64 // constraint row owning the basic column
		j      int
	)
	for i, col = range t.basis {
		factor = row0[col]
		if math.Abs(factor) <= eps {
			continue
		}
		src = t.m.RawRowView(i + 1)
		for j = range row0 {
			row0[j] -= factor * src[j]
		}
		row0[col] = 0 // exact zero, not rounding residue
	}
}
