// Package simplex - result types, step records and sentinel errors.
//
// This file defines ONLY package-level value types and sentinels. All
// solver logic lives in normalize.go / tableau.go / pivot.go / solve.go
// and MUST surface failures through these sentinels; tests match them via
// errors.Is. Terminal solver outcomes (optimal, unbounded, infeasible)
// are NOT errors - they travel in Result.Status.
package simplex

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Solve.
var (
	// ErrMethodUnsupported indicates the Standard method was asked to solve
	// a problem it cannot initialize: an "=" constraint, or a "≥" constraint
	// whose sign-flip leaves a negative right-hand side. Use BigM or
	// TwoPhase for such problems.
	ErrMethodUnsupported = errors.New("simplex: standard method cannot initialize this problem")

	// ErrIterationLimit indicates the pivot engine hit Options.MaxIterations
	// before reaching optimality. The problem may be cycling or the cap may
	// simply be too tight; the partial trace is discarded.
	ErrIterationLimit = errors.New("simplex: iteration limit reached before convergence")

	// ErrBadOptions indicates a nonsensical Options value (negative
	// tolerance, non-positive iteration cap or penalty).
	ErrBadOptions = errors.New("simplex: invalid options")
)

// Status is the terminal outcome of a solve.
type Status int

const (
	// Optimal: the engine proved no entering column improves the objective.
	Optimal Status = iota

	// Unbounded: an entering column had no positive ratio-test row; the
	// objective can grow without limit along that direction.
	Unbounded

	// Infeasible: the constraint set admits no solution. Detected by the
	// TwoPhase feasibility check, and by BigM when an artificial variable
	// remains basic at a positive value in the final tableau.
	Infeasible
)

// String returns "optimal" / "unbounded" / "infeasible".
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return "?"
	}
}

// Step is one recorded pivot: an immutable snapshot of the tableau and
// basis as they were BEFORE the pivot was applied, plus the pivot choice.
//
// Snapshots own their storage - the engine never writes into a recorded
// Step, so callers may hold the whole trace while the solve continues.
type Step struct {
	// Phase is 1 or 2 for TwoPhase, always 1 for Standard and BigM.
	Phase int

	// Tableau is a deep copy of the matrix before this pivot.
	Tableau *mat.Dense

	// Basis is a copy of the basic-variable assignment before this pivot;
	// Basis[i] is the flat variable index basic in constraint row i+1.
	Basis []int

	// PivotRow and PivotCol locate the pivot element in Tableau
	// (row ≥ 1; the objective row is never a pivot row).
	PivotRow, PivotCol int

	// Entering and Leaving are the human-readable names of the variable
	// entering and leaving the basis (e.g. "x2", "s1").
	Entering, Leaving string
}

// String renders the pivot decision for trace output, e.g.
// "phase 1: x2 enters, s1 leaves (pivot r2,c1)".
func (s Step) String() string {
	return fmt.Sprintf("phase %d: %s enters, %s leaves (pivot r%d,c%d)",
		s.Phase, s.Entering, s.Leaving, s.PivotRow, s.PivotCol)
}

// Result is the complete outcome of one solve invocation. Every field is
// freshly allocated per call; nothing is shared with package state or with
// other results.
type Result struct {
	// Status is the terminal outcome.
	Status Status

	// Steps is the ordered pivot trace across all phases actually run.
	Steps []Step

	// Tableau is the final matrix after the last pivot (or the initial
	// matrix when no pivot was needed).
	Tableau *mat.Dense

	// Basis is the final basic-variable assignment (len m).
	Basis []int

	// Solution holds the value of each decision variable x1..xn.
	// Zeroed unless Status == Optimal.
	Solution []float64

	// Value is the objective at Solution, sign-corrected for minimization.
	// Zero unless Status == Optimal.
	Value float64

	// Names labels every tableau column except the right-hand side, in
	// column order (x1..xn, s1..ss, a1..aa). Purely for presentation.
	Names []string
}
