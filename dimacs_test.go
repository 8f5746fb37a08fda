package dpll

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDIMACSBasic(t *testing.T) {
	in := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	clauses, numVars, numClauses, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDIMACS() error = %v", err)
	}
	want := [][]int{{1, -2}, {2, 3}}
	if diff := cmp.Diff(want, clauses, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ParseDIMACS clauses (-want +got):\n%s", diff)
	}
	if numVars != 3 || numClauses != 2 {
		t.Errorf("numVars, numClauses = %d, %d, want 3, 2", numVars, numClauses)
	}
}

func TestParseDIMACSCommentsAnywhere(t *testing.T) {
	in := "p cnf 2 2\n1 2 0\nc mid-file comment\n-1 -2 0\n"
	clauses, _, _, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDIMACS() error = %v", err)
	}
	if len(clauses) != 2 {
		t.Fatalf("len(clauses) = %d, want 2", len(clauses))
	}
}

func TestParseDIMACSMissingProblemLine(t *testing.T) {
	in := "1 2 0\n-1 3 0\n"
	clauses, numVars, numClauses, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDIMACS() error = %v", err)
	}
	if numVars != 3 {
		t.Errorf("inferred numVars = %d, want 3", numVars)
	}
	if numClauses != 2 || len(clauses) != 2 {
		t.Errorf("numClauses, len(clauses) = %d, %d, want 2, 2", numClauses, len(clauses))
	}
}

func TestParseDIMACSPercentTrailer(t *testing.T) {
	in := "p cnf 1 1\n1 0\n%\nthis is trailer garbage\n"
	clauses, _, _, err := ParseDIMACS(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDIMACS() error = %v", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("len(clauses) = %d, want 1", len(clauses))
	}
}

func TestParseDIMACSMismatchedClauseCount(t *testing.T) {
	in := "p cnf 1 2\n1 0\n"
	_, _, _, err := ParseDIMACS(strings.NewReader(in))
	if err == nil {
		t.Fatal("ParseDIMACS() error = nil, want mismatched clause count error")
	}
	if _, ok := err.(*InputError); !ok {
		t.Errorf("error type = %T, want *InputError", err)
	}
}

func TestParseDIMACSVarExceedsDeclared(t *testing.T) {
	in := "p cnf 1 1\n1 2 0\n"
	_, _, _, err := ParseDIMACS(strings.NewReader(in))
	if err == nil {
		t.Fatal("ParseDIMACS() error = nil, want var-exceeds-declared error")
	}
}

func TestParseDIMACSUnterminatedClause(t *testing.T) {
	in := "p cnf 2 1\n1 2\n"
	_, _, _, err := ParseDIMACS(strings.NewReader(in))
	if err == nil {
		t.Fatal("ParseDIMACS() error = nil, want missing-terminator error")
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	clauses := [][]int{{1, -2}, {2, 3}}
	var buf strings.Builder
	if err := WriteDIMACS(&buf, clauses); err != nil {
		t.Fatalf("WriteDIMACS() error = %v", err)
	}

	got, _, _, err := ParseDIMACS(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseDIMACS() on written output error = %v", err)
	}
	if diff := cmp.Diff(clauses, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round-tripped clauses (-want +got):\n%s", diff)
	}
}

func TestWriteDIMACSEmptyClause(t *testing.T) {
	var buf strings.Builder
	if err := WriteDIMACS(&buf, [][]int{{}}); err != nil {
		t.Fatalf("WriteDIMACS() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n0\n") {
		t.Errorf("output = %q, want a bare \"0\" line for the empty clause", buf.String())
	}
}

func TestCombineDIMACS(t *testing.T) {
	rules := "p cnf 2 1\n1 2 0\n"
	puzzle := "c puzzle\n-1 0\n"
	clauses, numVars, err := CombineDIMACS(strings.NewReader(rules), strings.NewReader(puzzle))
	if err != nil {
		t.Fatalf("CombineDIMACS() error = %v", err)
	}
	want := [][]int{{1, 2}, {-1}}
	if diff := cmp.Diff(want, clauses, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("CombineDIMACS clauses (-want +got):\n%s", diff)
	}
	if numVars != 2 {
		t.Errorf("numVars = %d, want 2", numVars)
	}
}
