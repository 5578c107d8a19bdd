// Package simplex - unified entry point and phase coordinator.
//
// Solve is the canonical call: validate → normalize → build → run the
// pivot engine once (Standard, BigM) or twice (TwoPhase) → extract the
// solution. SolveStandard is the all-≤ convenience wrapper.
//
// Design principles:
//   - Deterministic: lowest-index tie-breaks everywhere, no randomness.
//   - Strict sentinels: configuration/shape failures are errors from
//     types.go and lp; solver outcomes travel in Result.Status.
//   - Explicit ownership: phase 2 receives the phase-1 tableau via
//     handoff(), never an aliased reference; recorded steps own their
//     snapshots.
package simplex

import (
	"math"

	"github.com/optkit/tabular/lp"
)

// Solve runs the tabular Simplex method on p with the chosen
// initialization method.
//
// Contracts:
//   - p must pass lp.Problem.Validate (its sentinels are forwarded as-is).
//   - method must be a known lp.Method; Standard additionally requires a
//     problem it can initialize (see ErrMethodUnsupported).
//   - opts must pass validation (ErrBadOptions) — use DefaultOptions().
//
// Outcomes:
//   - Optimal:    Result carries solution vector, objective value
//     (sign-corrected for minimization), final tableau/basis and the full
//     pivot trace.
//   - Unbounded:  trace and final tableau are kept; solution fields zeroed.
//   - Infeasible: reported by TwoPhase (nonzero minimized artificial sum)
//     and by BigM (artificial basic above FeasTol in the final tableau).
//
// Errors: lp validation sentinels, ErrBadOptions, ErrMethodUnsupported,
// ErrIterationLimit.
//
// Complexity: O(MaxIterations · m · cols) per phase; trace storage
// O(pivots · m · cols) (each step snapshots the full tableau — fine for
// the small, bounded problems this package targets).
func Solve(p lp.Problem, method lp.Method, opts Options) (Result, error) {
	// Stage 1: contracts.
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := lp.ValidateMethod(method); err != nil {
		return Result{}, err
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2: normalize and build.
	nf, err := normalize(p, method)
	if err != nil {
		return Result{}, err
	}
	names := lp.VariableNames(nf.n, nf.s, nf.a)
	t := newTableau(nf, method, opts)

	// Stage 3: coordinate phases.
	var (
		steps   []Step
		outcome phaseOutcome
	)
	switch method {
	case lp.Standard, lp.BigM:
		outcome, err = t.runPhase(1, t.rhsCol, names, opts, &steps)
		if err != nil {
			return Result{}, err
		}
		if outcome == phaseUnbounded {
			return finish(t, nf, names, steps, Unbounded), nil
		}
		// BigM feasibility: an artificial variable still basic at a
		// positive level means the artificial could not be driven out —
		// the original constraints admit no solution.
		if method == lp.BigM && t.hasBasicArtificial(nf, opts.FeasTol) {
			return finish(t, nf, names, steps, Infeasible), nil
		}

	case lp.TwoPhase:
		// Phase 1: minimize the artificial sum (as a maximization of its
		// negation). All columns may enter.
		outcome, err = t.runPhase(1, t.rhsCol, names, opts, &steps)
		if err != nil {
			return Result{}, err
		}
		if outcome == phaseUnbounded {
			return finish(t, nf, names, steps, Unbounded), nil
		}
		// Feasibility check: the phase-1 optimum sits in row 0's RHS.
		if math.Abs(t.rhs(0)) > opts.FeasTol {
			return finish(t, nf, names, steps, Infeasible), nil
		}

		// Phase 2: hand the tableau over by value, install the true cost
		// row, re-canonicalize, and optimize. Artificial columns are
		// barred from entering the basis again.
		t = t.handoff()
		t.setObjective(nf.cost)
		t.canonicalizeObjective(opts.Eps)
		outcome, err = t.runPhase(2, nf.n+nf.s, names, opts, &steps)
		if err != nil {
			return Result{}, err
		}
		if outcome == phaseUnbounded {
			return finish(t, nf, names, steps, Unbounded), nil
		}
	}

	// Stage 4: extraction.
	return finish(t, nf, names, steps, Optimal), nil
}

// SolveStandard solves an all-≤ problem with the Standard method — the
// simpler entry variant for callers that never use ≥/= relations.
func SolveStandard(p lp.Problem, opts Options) (Result, error) {
	return Solve(p, lp.Standard, opts)
}

// hasBasicArtificial reports whether any artificial variable is basic at
// a value above tol in the final tableau.
//
// Complexity: O(m).
func (t *tableau) hasBasicArtificial(nf normalForm, tol float64) bool {
	var (
		i, b int
	)
	for i, b = range t.basis {
		if b >= nf.n+nf.s && t.rhs(i+1) > tol {
			return true
		}
	}

	return false
}

// finish assembles the Result. Solution and Value are populated only for
// Optimal: basic decision variables read their row's RHS, everything else
// stays 0; the objective is row 0's RHS, negated back for minimization.
//
// Complexity: O(m + n).
func finish(t *tableau, nf normalForm, names []string, steps []Step, status Status) Result {
	res := Result{
		Status:   status,
		Steps:    steps,
		Tableau:  t.m,
		Basis:    t.basisCopy(),
		Solution: make([]float64, nf.n),
		Names:    names,
	}
	if status != Optimal {
		return res
	}

	var (
		i, b int
	)
	for i, b = range t.basis {
		if b < nf.n {
			res.Solution[b] = t.rhs(i + 1)
		}
	}
	res.Value = t.rhs(0)
	if nf.minimize {
		res.Value = -res.Value
	}

	return res
}
