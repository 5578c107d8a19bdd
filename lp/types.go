// Package lp - problem model types, enums and sentinel errors.
//
// This file defines ONLY value types and package-level sentinels. All
// validation lives in validate.go and MUST return these sentinels; tests
// match them via errors.Is. No function here panics on user input.
package lp

import "errors"

// Sentinel errors returned by Problem validation.
var (
	// ErrNoVariables indicates an objective with zero decision variables.
	ErrNoVariables = errors.New("lp: problem must have at least one variable")

	// ErrNoConstraints indicates a problem without any constraint rows.
	ErrNoConstraints = errors.New("lp: problem must have at least one constraint")

	// ErrRowShape indicates a constraint whose coefficient count differs
	// from the number of decision variables.
	ErrRowShape = errors.New("lp: constraint width does not match variable count")

	// ErrNotFinite indicates a NaN or ±Inf coefficient or right-hand side.
	ErrNotFinite = errors.New("lp: coefficients must be finite")

	// ErrBadDirection indicates an unknown optimization direction.
	ErrBadDirection = errors.New("lp: unknown optimization direction")

	// ErrBadRelation indicates an unknown constraint relation.
	ErrBadRelation = errors.New("lp: unknown constraint relation")

	// ErrBadMethod indicates an unknown initialization method.
	ErrBadMethod = errors.New("lp: unknown initialization method")
)

// Direction selects whether the objective is maximized or minimized.
type Direction int

const (
	// Maximize seeks the largest objective value.
	Maximize Direction = iota

	// Minimize seeks the smallest objective value. Internally the solver
	// negates the cost vector and maximizes; the reported optimum is
	// sign-corrected back.
	Minimize
)

// String returns "max" / "min" for known directions, "?" otherwise.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return "?"
	}
}

// Relation is the comparison operator of a single constraint row.
type Relation int

const (
	// LE is "≤": left-hand side at most RHS. Gets a slack variable.
	LE Relation = iota

	// GE is "≥": left-hand side at least RHS. Gets a surplus variable,
	// plus an artificial variable under BigM/TwoPhase.
	GE

	// EQ is "=": left-hand side exactly RHS. Gets an artificial variable
	// under BigM/TwoPhase; Standard cannot initialize it.
	EQ
)

// String returns the operator symbol ("<=", ">=", "=").
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Method selects how the solver obtains an initial basic feasible solution.
//
//   - Standard — no artificial variables. Only valid when every constraint
//     can be brought to ≤ form with a non-negative right-hand side; the
//     solver rejects anything else up front.
//   - BigM     — artificial variables penalized by a large constant M in a
//     single composite objective.
//   - TwoPhase — phase 1 minimizes the sum of artificials to establish
//     feasibility, phase 2 optimizes the true objective.
type Method int

const (
	// Standard runs the pivot engine directly on the slack-augmented tableau.
	Standard Method = iota

	// BigM runs a single pass with M-penalized artificial variables.
	BigM

	// TwoPhase runs an artificial-cost phase before the real objective.
	TwoPhase
)

// String returns "standard" / "bigM" / "twoPhase" for known methods.
func (m Method) String() string {
	switch m {
	case Standard:
		return "standard"
	case BigM:
		return "bigM"
	case TwoPhase:
		return "twoPhase"
	default:
		return "?"
	}
}

// Constraint is one linear constraint row: Coeffs·x  Rel  RHS.
type Constraint struct {
	// Coeffs holds one coefficient per decision variable, in variable order.
	Coeffs []float64

	// Rel is the comparison operator (LE, GE or EQ).
	Rel Relation

	// RHS is the right-hand-side scalar.
	RHS float64
}

// Problem is a complete linear program in user-facing form.
//
// Invariants (enforced by Validate): len(Objective) ≥ 1, len(Constraints) ≥ 1,
// every Constraint.Coeffs has len == len(Objective), all values finite.
type Problem struct {
	Direction   Direction
	Objective   []float64
	Constraints []Constraint
}

// NumVariables returns n, the number of decision variables.
func (p Problem) NumVariables() int { return len(p.Objective) }

// NumConstraints returns m, the number of constraint rows.
func (p Problem) NumConstraints() int { return len(p.Constraints) }

// LessEqual builds the constraint coeffs·x ≤ rhs.
// The right-hand side comes first so call sites read "≤ rhs, of coeffs…".
func LessEqual(rhs float64, coeffs ...float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: LE, RHS: rhs}
}

// GreaterEqual builds the constraint coeffs·x ≥ rhs.
func GreaterEqual(rhs float64, coeffs ...float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: GE, RHS: rhs}
}

// EqualTo builds the constraint coeffs·x = rhs.
func EqualTo(rhs float64, coeffs ...float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: EQ, RHS: rhs}
}
