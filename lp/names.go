// Package lp - variable labeling for presentation layers.
//
// The solver works purely on flat column indices; this file is the one
// place those indices are given their conventional x/s/a names.
package lp

import "strconv"

// VariableNames returns the human-readable labels of the flat variable
// index space, in solver column order: x1..xn (decision), s1..ss
// (slack/surplus), a1..aa (artificial, when the method materialized any).
//
// The labels exist purely so a presentation layer can narrate pivots
// ("x2 enters, s1 leaves"); the solver itself works on indices.
//
// Complexity: O(n+s+a) time and space.
func VariableNames(n, s, a int) []string {
	names := make([]string, 0, n+s+a)

	var i int
	for i = 1; i <= n; i++ {
		names = append(names, "x"+strconv.Itoa(i))
	}
	for i = 1; i <= s; i++ {
		names = append(names, "s"+strconv.Itoa(i))
	}
	for i = 1; i <= a; i++ {
		names = append(names, "a"+strconv.Itoa(i))
	}

	return names
}
