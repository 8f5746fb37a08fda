package dpll

// A Heuristic picks the next branching variable and its first phase from a
// (store, assignment) pair. Implementations must be pure functions of
// their arguments: no mutable state carried between calls, so a Solver can
// be constructed once with a chosen Heuristic and reused across an entire
// search.
type Heuristic interface {
	// Choose returns the next decision variable and the phase to try
	// first. ok is false when no unassigned variable remains in the
	// store, which the driver treats as a satisfied formula.
	Choose(store *ClauseStore, a *Assignment) (variable int, firstPhase bool, ok bool)
}

// FirstUnassigned implements strategy S1: scan clauses in store order,
// literals within a clause in order, and return the first variable not yet
// assigned. Ties are broken by encounter order, which makes runs
// reproducible given a fixed store traversal.
type FirstUnassigned struct{}

func (FirstUnassigned) Choose(store *ClauseStore, a *Assignment) (int, bool, bool) {
	for _, c := range store.Clauses() {
		for _, lit := range c.Lits {
			if _, assigned := a.Value(lit.Var()); !assigned {
				return lit.Var(), true, true
			}
		}
	}
	return 0, false, false
}
