package dpll

import "testing"

func TestNewClauseDedup(t *testing.T) {
	c, tautology := NewClause([]Literal{1, 2, 1, 2})
	if tautology {
		t.Fatal("got tautology=true, want false")
	}
	if len(c.Lits) != 2 {
		t.Fatalf("got %d literals, want 2: %v", len(c.Lits), c.Lits)
	}
}

func TestNewClauseTautology(t *testing.T) {
	_, tautology := NewClause([]Literal{1, -1, 2})
	if !tautology {
		t.Fatal("got tautology=false, want true")
	}
}

func TestClauseStatus(t *testing.T) {
	for _, tt := range []struct {
		name   string
		lits   []Literal
		assign map[int]bool
		want   Status
	}{
		{"unresolved empty assignment", []Literal{1, 2}, nil, Unresolved},
		{"satisfied", []Literal{1, -2}, map[int]bool{1: true}, Satisfied},
		{"falsified", []Literal{1, -2}, map[int]bool{1: false, 2: true}, Falsified},
		{"unit", []Literal{1, -2}, map[int]bool{1: false}, Unit},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := NewClause(tt.lits)
			a := NewAssignment(2)
			for v, val := range tt.assign {
				a.Assign(v, val, Decision)
			}
			status, _ := c.Status(a)
			if status != tt.want {
				t.Errorf("Status() = %v, want %v", status, tt.want)
			}
		})
	}
}

func TestClauseEqual(t *testing.T) {
	a, _ := NewClause([]Literal{1, -2, 3})
	b, _ := NewClause([]Literal{1, -2, 3})
	if !a.Equal(b) {
		t.Error("Equal() = false for two clauses built from identical literals")
	}
	c, _ := NewClause([]Literal{1, -2})
	if a.Equal(c) {
		t.Error("Equal() = true for clauses of different length")
	}
	d, _ := NewClause([]Literal{-2, 1, 3})
	if a.Equal(d) {
		t.Error("Equal() = true for clauses with the same literals in a different order")
	}
}

func TestClauseStatusUnitForcedLiteral(t *testing.T) {
	c, _ := NewClause([]Literal{1, -2, 3})
	a := NewAssignment(3)
	a.Assign(1, false, Decision)
	a.Assign(2, true, Decision)
	status, forced := c.Status(a)
	if status != Unit {
		t.Fatalf("Status() = %v, want Unit", status)
	}
	if forced != 3 {
		t.Errorf("forced literal = %d, want 3", forced)
	}
}
