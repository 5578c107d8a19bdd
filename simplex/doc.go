// Package simplex solves linear programs with the tabular Simplex method
// and exposes the full sequence of intermediate tableaux, so a caller can
// render a step-by-step trace of every pivot.
//
// 🚀 What is simplex?
//
//	A numerical state machine over a dense tableau (gonum mat.Dense):
//	  • Problem Normalizer — standard maximize form, slack/surplus/
//	    artificial column assignment, non-negative right-hand sides
//	  • Tableau Builder — objective + constraint rows, initial basis,
//	    row-0 canonicalization
//	  • Pivot Engine — Dantzig entering rule, minimum-ratio test,
//	    Gauss–Jordan elimination, pre-pivot step records
//	  • Phase Coordinator — Standard / Big-M / Two-Phase initialization
//
// ✨ Key features:
//   - Full pivot trace: every Step owns a pre-pivot tableau + basis snapshot
//   - Three initializations via lp.Method; shared engine across phases
//   - Honest statuses: Optimal, Unbounded, Infeasible (Two-Phase check and
//     Big-M artificial-basis scan) — never a silently wrong answer
//   - Explicit configuration: tolerances, iteration cap and the M penalty
//     all live in Options, so tests can tighten them at will
//   - Deterministic: lowest-index tie-breaks, no globals, pure function of
//     its input
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/optkit/tabular/lp"
//	    "github.com/optkit/tabular/simplex"
//	)
//
//	p := lp.Problem{
//	    Direction: lp.Maximize,
//	    Objective: []float64{3, 5},
//	    Constraints: []lp.Constraint{
//	        lp.LessEqual(4, 1, 0),
//	        lp.LessEqual(12, 0, 2),
//	        lp.LessEqual(18, 3, 2),
//	    },
//	}
//	res, err := simplex.Solve(p, lp.TwoPhase, simplex.DefaultOptions())
//	if err != nil {
//	    // configuration/shape sentinel, or ErrIterationLimit
//	}
//	for _, step := range res.Steps {
//	    fmt.Println(step) // "phase 2: x2 enters, s2 leaves (pivot r2,c1)"
//	}
//	fmt.Println(res.Status, res.Value, res.Solution)
//
// Performance:
//
//   - Time:   O(pivots · m · cols) per phase, pivots ≤ Options.MaxIterations
//   - Memory: O(pivots · m · cols) — every step stores a full tableau copy,
//     intentional for small, bounded problems (the trace IS the product)
//
// See example_test.go for runnable scenarios and lp for the problem model.
package simplex
