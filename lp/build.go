// Package lp - ergonomic Problem constructors.
//
// A Problem is a plain value and can always be written as a struct
// literal; these constructors are the chaining-friendly alternative for
// call sites that read better as a sentence:
//
//	p := lp.NewMaximize(3, 5).
//	    SubjectTo(lp.LessEqual(4, 1, 0)).
//	    SubjectTo(lp.LessEqual(12, 0, 2)).
//	    SubjectTo(lp.LessEqual(18, 3, 2))
//
// Design principles:
//   - Value semantics: SubjectTo returns a new Problem; the receiver is
//     never mutated, so partially built problems can be shared and forked.
//   - No validation here - Validate (or the solver) reports shape errors.
package lp

// NewMaximize returns a maximization Problem over the given objective
// coefficients, with no constraints yet. Chain SubjectTo to add rows.
func NewMaximize(coeffs ...float64) Problem {
	return Problem{Direction: Maximize, Objective: coeffs}
}

// NewMinimize returns a minimization Problem over the given objective
// coefficients, with no constraints yet. Chain SubjectTo to add rows.
func NewMinimize(coeffs ...float64) Problem {
	return Problem{Direction: Minimize, Objective: coeffs}
}

// SubjectTo returns a copy of p with c appended to its constraints.
// The receiver keeps its own constraint slice: forking a base problem
// into several variants never aliases rows between them.
func (p Problem) SubjectTo(c Constraint) Problem {
	rows := make([]Constraint, 0, len(p.Constraints)+1)
	rows = append(rows, p.Constraints...)
	rows = append(rows, c)
	p.Constraints = rows

	return p
}
