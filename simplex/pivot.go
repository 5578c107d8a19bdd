// Package simplex - the iterative pivot engine shared by all phases.
//
// One runPhase call drives the loop: optimality test → entering-variable
// selection → ratio test → leaving-variable selection → step record →
// Gauss–Jordan pivot. Both ties break to the lowest index, which keeps
// the whole solve deterministic (and is Bland-flavored enough to help on
// degenerate problems, though cycling protection proper is the iteration
// cap).
package simplex

import "fmt"

// phaseOutcome is the terminal state of one engine run.
type phaseOutcome int

const (
	// phaseOptimal: no entering column improves the objective.
	phaseOptimal phaseOutcome = iota

	// phaseUnbounded: an entering column had no ratio-test row.
	phaseUnbounded
)

// runPhase iterates the engine until optimality or unboundedness, or
// returns ErrIterationLimit after opts.MaxIterations pivots.
//
// Contracts:
//   - phase tags the recorded steps (1 or 2).
//   - enterLimit bounds the entering scan: columns ≥ enterLimit never
//     enter the basis. The TwoPhase coordinator uses this to keep
//     artificial columns out of phase 2; everyone else passes t.rhsCol.
//   - names labels variables for step records; len(names) ≥ enterLimit.
//   - steps is append-only; recorded steps are never mutated afterwards.
//
// Complexity: O(MaxIterations · m · cols) time; each recorded step copies
// the full tableau, so trace storage is O(pivots · m · cols).
func (t *tableau) runPhase(phase, enterLimit int, names []string, opts Options, steps *[]Step) (phaseOutcome, error) {
	var (
		iter int
		col  int
		row  int
		step Step
	)
	for iter = 0; ; iter++ {
		// Optimality test + entering-variable selection.
		col = t.enteringColumn(enterLimit, opts.Eps)
		if col < 0 {
			return phaseOptimal, nil
		}

		// The cap bounds pivots, not optimality checks: a solve that
		// converges on exactly MaxIterations pivots still reports Optimal.
		if iter >= opts.MaxIterations {
			return phaseOptimal, ErrIterationLimit
		}

		// Ratio test + leaving-variable selection.
		row = t.ratioTest(col, opts.Eps)
		if row < 0 {
			return phaseUnbounded, nil
		}

		// Record the pre-pivot state.
		step = Step{
			Phase:    phase,
			Tableau:  t.snapshot(),
			Basis:    t.basisCopy(),
			PivotRow: row,
			PivotCol: col,
			Entering: names[col],
			Leaving:  names[t.basis[row-1]],
		}
		*steps = append(*steps, step)
		if opts.Verbose {
			fmt.Printf("simplex: %s\n", step)
		}

		t.pivot(row, col)
	}
}

// enteringColumn scans row 0 over columns [0, limit) and returns the index
// of the most negative value below −eps, breaking ties toward the lowest
// index. Returns −1 when no column qualifies (phase is optimal).
//
// Complexity: O(limit).
func (t *tableau) enteringColumn(limit int, eps float64) int {
	row0 := t.m.RawRowView(0)

	var (
		best    = -1
		bestVal = -eps
		j       int
	)
	for j = 0; j < limit; j++ {
		// Strict < keeps the first occurrence on exact ties.
		if row0[j] < bestVal {
			best, bestVal = j, row0[j]
		}
	}

	return best
}

// ratioTest returns the constraint row (1-based matrix row) minimizing
// rhs/entry over rows with entry > eps in the pivot column, breaking ties
// toward the lowest row. Returns −1 when no row qualifies (unbounded).
//
// Complexity: O(m).
func (t *tableau) ratioTest(col int, eps float64) int {
	var (
		best      = -1
		bestRatio float64
		r         int
		entry     float64
		ratio     float64
	)
	for r = 1; r <= t.nRows; r++ {
		entry = t.m.At(r, col)
		if entry <= eps {
			continue
		}
		ratio = t.rhs(r) / entry
		if best < 0 || ratio < bestRatio {
			best, bestRatio = r, ratio
		}
	}

	return best
}

// pivot performs Gauss–Jordan elimination on (row, col): normalizes the
// pivot row to a unit pivot, zeroes the pivot column in every other row,
// and installs col as the basic variable of row.
//
// Complexity: O(m · cols).
func (t *tableau) pivot(row, col int) {
	var (
		pivotRow = t.m.RawRowView(row)
		p        = pivotRow[col]
		j        int
	)
	for j = range pivotRow {
		pivotRow[j] /= p
	}
	pivotRow[col] = 1 // exact unit, not p/p rounding residue

	var (
		r      int
		factor float64
		dst    []float64
	)
	for r = 0; r <= t.nRows; r++ {
		if r == row {
			continue
		}
		dst = t.m.RawRowView(r)
		factor = dst[col]
		if factor == 0 {
			continue
		}
		for j = range dst {
			dst[j] -= factor * pivotRow[j]
		}
		dst[col] = 0 // exact zero in the pivot column
	}

	t.basis[row-1] = col
}
