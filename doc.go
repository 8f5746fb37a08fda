// Package dpll implements a DPLL-based decision procedure for propositional
// satisfiability. It reads formulas in DIMACS CNF, applies unit propagation
// to a fixpoint, and branches using one of three pluggable heuristics
// (first-unassigned, MOM, two-sided Jeroslow-Wang) until it finds a model or
// proves the formula unsatisfiable.
//
// The package does not implement conflict-driven clause learning,
// non-chronological backtracking, watched literals, or restarts. Clauses
// are kept in a simplifying store: each recursion frame simplifies the
// store under its own assignment and discards the result on backtrack.
package dpll
