// Package lp defines the user-facing linear-programming problem model
// consumed by the simplex solver.
//
// 🚀 What is lp?
//
//	The value types a caller fills in before solving:
//	  • Direction — Maximize or Minimize
//	  • Relation  — ≤ (LE), ≥ (GE), = (EQ) per constraint
//	  • Method    — Standard, BigM or TwoPhase initialization
//	  • Constraint{Coeffs, Rel, RHS} and Problem{Direction, Objective, Constraints}
//
// ✨ Key guarantees:
//   - Plain values – no hidden state, safe to copy, reusable across solves
//   - Strict validation – Validate returns sentinel errors for every shape
//     or finiteness violation; a validated Problem is safe for the solver
//   - Stable labeling – VariableNames yields x1..xn, s1..ss, a1..aa in the
//     exact column order the solver uses, for presentation layers
//
// ⚙️ Usage:
//
//	p := lp.Problem{
//	    Direction: lp.Maximize,
//	    Objective: []float64{3, 5},
//	    Constraints: []lp.Constraint{
//	        lp.LessEqual(4, 1, 0),      // x1 ≤ 4
//	        lp.LessEqual(12, 0, 2),     // 2·x2 ≤ 12
//	        lp.LessEqual(18, 3, 2),     // 3·x1 + 2·x2 ≤ 18
//	    },
//	}
//	if err := p.Validate(); err != nil {
//	    // handle ErrNoVariables, ErrRowShape, ErrNotFinite, …
//	}
//
// Complexity: Validate is O(m·n); VariableNames is O(n+s+a).
package lp
