// Package lp - validation utilities for the problem model.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No panics on user input - only sentinel errors from types.go.
//   - O(m·n) worst case; no allocations on the happy path.
package lp

import "math"

// Validate verifies the structural and numeric contract of a Problem.
//
// Contract (all must hold):
//   - at least one decision variable and one constraint,
//   - every constraint row has exactly n coefficients,
//   - every coefficient and right-hand side is finite (no NaN/±Inf),
//   - Direction and every Relation are known enum values.
//
// Errors: sentinels from types.go, checked in the order above.
//
// Complexity: O(m·n) time, O(1) space.
func (p Problem) Validate() error {
	// Stage 1: shape.
	n := len(p.Objective)
	if n == 0 {
		return ErrNoVariables
	}
	if len(p.Constraints) == 0 {
		return ErrNoConstraints
	}

	// Stage 2: direction legality.
	if p.Direction != Maximize && p.Direction != Minimize {
		return ErrBadDirection
	}

	// Stage 3: objective finiteness.
	var (
		i int     // loop index
		v float64 // scratch value under test
	)
	for i = 0; i < n; i++ {
		v = p.Objective[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}

	// Stage 4: per-row shape, relation legality, finiteness.
	var c Constraint
	for _, c = range p.Constraints {
		if len(c.Coeffs) != n {
			return ErrRowShape
		}
		if c.Rel != LE && c.Rel != GE && c.Rel != EQ {
			return ErrBadRelation
		}
		for i = 0; i < n; i++ {
			v = c.Coeffs[i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return ErrNotFinite
		}
	}

	return nil
}

// ValidateMethod reports whether m is a known initialization method.
//
// Complexity: O(1).
func ValidateMethod(m Method) error {
	switch m {
	case Standard, BigM, TwoPhase:
		return nil
	default:
		return ErrBadMethod
	}
}
