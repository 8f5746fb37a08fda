package dpll

// ClauseStore is a multiset of clauses representing the remaining formula.
// Across any call into the propagator or driver, the invariant is: no
// clause in the store is satisfied under the current assignment, and no
// clause is empty. Clauses are kept in insertion order, and that order is
// preserved through Simplify, so heuristics and the propagator see a
// deterministic, reproducible traversal.
type ClauseStore struct {
	clauses []Clause
}

// NewClauseStore builds a store from already-constructed clauses.
func NewClauseStore(clauses []Clause) *ClauseStore {
	cs := make([]Clause, len(clauses))
	copy(cs, clauses)
	return &ClauseStore{clauses: cs}
}

// FromLiterals builds a store from raw literal lists, dropping tautologies
// and de-duplicating literals within each clause.
func FromLiterals(raw [][]int) *ClauseStore {
	clauses := make([]Clause, 0, len(raw))
	for _, lits := range raw {
		converted := make([]Literal, len(lits))
		for i, n := range lits {
			converted[i] = Literal(n)
		}
		c, tautology := NewClause(converted)
		if tautology {
			continue
		}
		clauses = append(clauses, c)
	}
	return &ClauseStore{clauses: clauses}
}

// Len reports the number of clauses currently in the store.
func (s *ClauseStore) Len() int {
	return len(s.clauses)
}

// Clauses returns the store's clauses in insertion order. The returned
// slice must not be mutated.
func (s *ClauseStore) Clauses() []Clause {
	return s.clauses
}

// Simplify returns a new store obtained by dropping every clause already
// satisfied by a and stripping every literal falsified by a from the
// clauses that remain. It reports conflict=true if any resulting clause
// would be empty.
func (s *ClauseStore) Simplify(a *Assignment) (simplified *ClauseStore, conflict bool) {
	out := make([]Clause, 0, len(s.clauses))
	for _, c := range s.clauses {
		status, _ := c.Status(a)
		switch status {
		case Satisfied:
			continue
		case Falsified:
			return nil, true
		}
		kept := make([]Literal, 0, len(c.Lits))
		for _, lit := range c.Lits {
			if a.Falsifies(lit) {
				continue
			}
			kept = append(kept, lit)
		}
		if len(kept) == 0 {
			return nil, true
		}
		out = append(out, Clause{Lits: kept})
	}
	return &ClauseStore{clauses: out}, false
}

// UnassignedVars returns, in first-encountered store order, every variable
// that appears in some clause and is not yet assigned.
func (s *ClauseStore) UnassignedVars(a *Assignment) []int {
	seen := make(map[int]bool)
	var vars []int
	for _, c := range s.clauses {
		for _, lit := range c.Lits {
			v := lit.Var()
			if seen[v] {
				continue
			}
			if _, assigned := a.Value(v); assigned {
				continue
			}
			seen[v] = true
			vars = append(vars, v)
		}
	}
	return vars
}
