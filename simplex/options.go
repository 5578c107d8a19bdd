// Package simplex - solver configuration.
//
// This file defines the Options struct, its documented default constants,
// and DefaultOptions(). Every tolerance, cap and penalty the pivot engine
// or phase coordinator consults lives here - no numeric literal is
// embedded in the solver loops, so tests can tighten any knob at will.
//
// Design principles:
//   - Single source of truth: the Default* constants MUST match what
//     DefaultOptions returns.
//   - Plain struct, value semantics: copy, tweak a field, pass along.
//   - Nonsensical configurations fail fast with ErrBadOptions.
package simplex

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultEps is the numeric tolerance of the pivot engine: row-0 values
	// above -DefaultEps count as non-negative (optimality test), and
	// pivot-column entries below +DefaultEps are excluded from the ratio
	// test. Guards against rounding noise driving endless pivots.
	DefaultEps = 1e-9

	// DefaultFeasTol is the feasibility tolerance of the phase
	// coordinator: TwoPhase reports Infeasible when the minimized
	// artificial sum exceeds it, BigM when an artificial variable stays
	// basic above it. Looser than DefaultEps because it compares
	// accumulated objective values, not single cells.
	DefaultFeasTol = 1e-5

	// DefaultMaxIterations caps the number of pivots per phase. A safety
	// valve against cycling on degenerate problems, not a correctness
	// bound; hitting it surfaces ErrIterationLimit.
	DefaultMaxIterations = 100

	// DefaultBigM is the artificial-variable penalty of the BigM method.
	// Large enough to dominate any reasonable cost vector on the small
	// problems this package targets.
	DefaultBigM = 1e5
)

// Options configures the pivot engine and phase coordinator.
//   - Eps:           numeric tolerance for optimality and ratio tests (> 0).
//   - FeasTol:       feasibility tolerance for artificial-variable checks (> 0).
//   - MaxIterations: pivot cap per phase (≥ 1); exceeding it is ErrIterationLimit.
//   - BigM:          artificial penalty for the BigM method (> 0).
//   - Verbose:       if true, print one line per pivot via fmt.Printf.
type Options struct {
	Eps           float64
	FeasTol       float64
	MaxIterations int
	BigM          float64
	Verbose       bool
}

// DefaultOptions returns the documented defaults. Use this as a starting
// point and override single fields as needed:
//
//	opts := simplex.DefaultOptions()
//	opts.MaxIterations = 10 // tighten the cap for a degeneracy test
func DefaultOptions() Options {
	return Options{
		Eps:           DefaultEps,
		FeasTol:       DefaultFeasTol,
		MaxIterations: DefaultMaxIterations,
		BigM:          DefaultBigM,
	}
}

// validate rejects nonsensical configurations with ErrBadOptions.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.Eps <= 0 || o.FeasTol <= 0 {
		return ErrBadOptions
	}
	if o.MaxIterations < 1 {
		return ErrBadOptions
	}
	if o.BigM <= 0 {
		return ErrBadOptions
	}

	return nil
}
