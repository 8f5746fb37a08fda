package dpll

// Propagate first simplifies store under a, then repeatedly finds a unit
// clause, in store order, assigns its single unassigned literal to satisfy
// the clause, and re-simplifies, until no unit clause remains (fixpoint) or
// simplification finds an empty clause (conflict). The assignment is
// extended in place; the returned store reflects every simplification made
// along the way, so none of its clauses is satisfied under a.
//
// Propagate is atomic at the call level: on conflict the caller must
// discard both the returned store and undo the assignment back to its
// trail mark from before the call, since some of the forced assignments
// that led to the conflict may already have been recorded.
func Propagate(store *ClauseStore, a *Assignment) (next *ClauseStore, conflict bool) {
	current, conflict := store.Simplify(a)
	if conflict {
		return nil, true
	}
	for {
		if current.Len() == 0 {
			return current, false
		}
		unitLit, idx := findUnit(current, a)
		if idx == -1 {
			return current, false
		}
		a.Assign(unitLit.Var(), unitLit.Positive(), Propagation)
		simplified, conflict := current.Simplify(a)
		if conflict {
			return nil, true
		}
		current = simplified
	}
}

// findUnit scans store in order for the first unit clause, returning its
// forced literal and its index, or (0, -1) if none exists.
func findUnit(store *ClauseStore, a *Assignment) (Literal, int) {
	for i, c := range store.clauses {
		status, forced := c.Status(a)
		if status == Unit {
			return forced, i
		}
	}
	return 0, -1
}
