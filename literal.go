package dpll

import "fmt"

// A Literal is a signed, non-zero variable reference. Its absolute value is
// the variable id (in [1, numVars]); its sign is the polarity.
type Literal int

// Var returns the variable id referenced by l, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

// Positive reports whether l is an unnegated occurrence of its variable.
func (l Literal) Positive() bool {
	return l > 0
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

func litsEqual(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
