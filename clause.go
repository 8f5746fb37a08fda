package dpll

// A Clause is a non-empty, ordered disjunction of literals with no
// duplicate variable. Clauses are immutable once constructed; Simplify
// produces new clauses rather than mutating existing ones.
type Clause struct {
	Lits []Literal
}

// NewClause builds a clause from raw literals, dropping duplicate literals
// and reporting whether the clause is a tautology (contains both a
// variable and its negation). Tautological clauses carry no information
// and callers should discard them.
func NewClause(lits []Literal) (c Clause, tautology bool) {
	seen := make(map[Literal]bool, len(lits))
	polarity := make(map[int]Literal, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, lit := range lits {
		if seen[lit] {
			continue
		}
		seen[lit] = true
		if other, ok := polarity[lit.Var()]; ok && other != lit {
			tautology = true
		}
		polarity[lit.Var()] = lit
		out = append(out, lit)
	}
	return Clause{Lits: out}, tautology
}

// Status describes how a clause relates to a partial assignment.
type Status int

const (
	// Unresolved means the clause is neither satisfied nor falsified and
	// has more than one unassigned literal.
	Unresolved Status = iota
	// Satisfied means at least one literal is assigned true.
	Satisfied
	// Falsified means every literal is assigned false (a conflict).
	Falsified
	// Unit means exactly one literal is unassigned and the rest are false.
	Unit
)

// Status evaluates c against a, returning its status and, when Unit, the
// single unassigned literal that must be set to satisfy the clause.
func (c Clause) Status(a *Assignment) (Status, Literal) {
	unassignedCount := 0
	var forced Literal
	for _, lit := range c.Lits {
		v, assigned := a.Value(lit.Var())
		if !assigned {
			unassignedCount++
			forced = lit
			continue
		}
		if v == lit.Positive() {
			return Satisfied, 0
		}
	}
	switch unassignedCount {
	case 0:
		return Falsified, 0
	case 1:
		return Unit, forced
	default:
		return Unresolved, 0
	}
}

// Len reports the number of literals remaining in the clause.
func (c Clause) Len() int {
	return len(c.Lits)
}

// Equal reports whether c and other hold the same literals in the same
// order.
func (c Clause) Equal(other Clause) bool {
	return litsEqual(c.Lits, other.Lits)
}
