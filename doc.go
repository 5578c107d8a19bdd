// Package tabular is a small, deterministic linear-programming toolkit
// built around the classic tabular Simplex method — with the full pivot
// trace exposed, so every intermediate tableau can be rendered step by step.
//
// 🚀 What is tabular?
//
//	A pure-Go LP core that brings together:
//		• Problem model: maximize/minimize objectives over ≤ / ≥ / = constraints
//		• Three initializations: Standard, Big-M, Two-Phase
//		• A shared pivot engine: Dantzig entering rule, minimum-ratio test,
//		  Gauss–Jordan elimination, canonical-form invariants
//		• Step records: a pre-pivot snapshot of every tableau + basis
//
// ✨ Why choose tabular?
//
//   - Deterministic – lowest-index tie-breaks, no randomness, no globals
//   - Transparent – the entire iteration trace is part of the result
//   - Honest – unboundedness and infeasibility are reported, never swallowed
//   - Pure Go – dense matrices via gonum, no cgo
//
// Everything is organized under two subpackages:
//
//	lp/      — Problem, Constraint, Direction/Relation/Method enums, validation
//	simplex/ — tableau builder, pivot engine, phase coordinator, Result
//
// Quick sketch:
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
//
// Dive into lp/doc.go and simplex/doc.go for contracts, complexity notes
// and worked examples.
//
//	go get github.com/optkit/tabular
package tabular
