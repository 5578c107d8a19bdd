// Package simplex - problem normalization into standard maximize form.
//
// This file converts a validated lp.Problem into the internal normalForm:
// maximize-only cost vector, per-row slack/surplus/artificial column
// assignment, and non-negative right-hand sides wherever the chosen method
// can guarantee them.
//
// Design principles:
//   - Deterministic single pass over the constraints; column indices are
//     assigned in row order.
//   - Sentinel-only failures (ErrMethodUnsupported); no silent invalid bases.
package simplex

import "github.com/optkit/tabular/lp"

// rowForm is one normalized constraint row.
type rowForm struct {
	// coeffs are the decision-variable coefficients, sign-flipped as needed.
	coeffs []float64

	// rhs is the (non-negative, post-normalization) right-hand side.
	rhs float64

	// rel is the relation after normalization (LE, GE or EQ).
	rel lp.Relation

	// slackCol is the flat index of this row's slack (LE, coefficient +1)
	// or surplus (GE, coefficient −1) column; −1 when the row has neither.
	slackCol int

	// artCol is the flat index of this row's artificial column; −1 when
	// the method materializes none for this row.
	artCol int
}

// normalForm is the standard maximize-form of a Problem, ready for the
// tableau builder. All index bookkeeping of the flat variable space
// (decision 0..n−1, slack/surplus n..n+s−1, artificial n+s..n+s+a−1)
// happens here and nowhere else.
type normalForm struct {
	n, m int // decision variables, constraint rows
	s, a int // slack/surplus and artificial column counts

	// minimize records the original direction so the reported optimum can
	// be sign-corrected after solving the negated maximization.
	minimize bool

	// cost is the maximize-form objective (cᵢ negated when minimizing).
	cost []float64

	rows []rowForm
}

// normalize converts p into normalForm for the given method.
//
// Contract: p must already satisfy lp.Problem.Validate.
//
// Stages:
//  1. Copy each row, flipping the sign of any row with a negative
//     right-hand side (LE↔GE swap; EQ stays EQ). After this stage every
//     rhs is ≥ 0.
//  2. Standard method only: a remaining GE row is flipped into LE form.
//     That flip re-negates the rhs, so it is only admissible when the rhs
//     is zero; a positive-rhs GE row - or any EQ row - would require an
//     artificial variable Standard does not have, and is rejected with
//     ErrMethodUnsupported.
//  3. Assign slack/surplus columns (one per LE/GE row), then artificial
//     columns (one per GE/EQ row, BigM/TwoPhase only), in row order.
//  4. Negate the cost vector when minimizing.
//
// Complexity: O(m·n) time, O(m·n) space (rows own their coefficient copies).
func normalize(p lp.Problem, method lp.Method) (normalForm, error) {
	nf := normalForm{
		n:        p.NumVariables(),
		m:        p.NumConstraints(),
		minimize: p.Direction == lp.Minimize,
		rows:     make([]rowForm, 0, p.NumConstraints()),
	}

	var (
		c   lp.Constraint // source constraint under normalization
		row rowForm       // normalized row being built
		j   int           // coefficient index
	)
	for _, c = range p.Constraints {
		row = rowForm{
			coeffs:   make([]float64, nf.n),
			rhs:      c.RHS,
			rel:      c.Rel,
			slackCol: -1,
			artCol:   -1,
		}
		copy(row.coeffs, c.Coeffs)

		// Stage 1: non-negative right-hand side.
		if row.rhs < 0 {
			flipRow(&row)
		}

		// Stage 2: Standard-method accommodation of GE, rejection of EQ.
		if method == lp.Standard {
			switch row.rel {
			case lp.GE:
				// Flipping negates the rhs again; only rhs == 0 survives
				// with a valid slack basis.
				if row.rhs > 0 {
					return normalForm{}, ErrMethodUnsupported
				}
				flipRow(&row)
			case lp.EQ:
				return normalForm{}, ErrMethodUnsupported
			}
		}

		nf.rows = append(nf.rows, row)
	}

	// Stage 3: column assignment. Slack/surplus first, then artificials,
	// both in row order, matching the flat variable index space.
	for j = range nf.rows {
		if nf.rows[j].rel == lp.LE || nf.rows[j].rel == lp.GE {
			nf.rows[j].slackCol = nf.n + nf.s
			nf.s++
		}
	}
	if method != lp.Standard {
		for j = range nf.rows {
			if nf.rows[j].rel == lp.GE || nf.rows[j].rel == lp.EQ {
				nf.rows[j].artCol = nf.n + nf.s + nf.a
				nf.a++
			}
		}
	}

	// Stage 4: maximize-form cost vector.
	nf.cost = make([]float64, nf.n)
	copy(nf.cost, p.Objective)
	if nf.minimize {
		for j = 0; j < nf.n; j++ {
			nf.cost[j] = -nf.cost[j]
		}
	}

	return nf, nil
}

// flipRow multiplies a whole row by −1 and swaps LE↔GE (EQ is unchanged).
func flipRow(row *rowForm) {
	for j := range row.coeffs {
		row.coeffs[j] = -row.coeffs[j]
	}
	row.rhs = -row.rhs
	switch row.rel {
	case lp.LE:
		row.rel = lp.GE
	case lp.GE:
		row.rel = lp.LE
	}
}

// numVarCols returns the number of variable columns (everything except
// the right-hand-side column).
func (nf normalForm) numVarCols() int { return nf.n + nf.s + nf.a }
