package sudoku_test

import (
	"testing"

	dpll "github.com/dpllsat/dpllsat"
	"github.com/dpllsat/dpllsat/sudoku"
)

// TestSolveFourByFourPuzzle exercises the full Sudoku round trip: generate
// rules, encode a partially-filled 4x4 puzzle as unit clauses, solve the
// combined formula, decode the model, and validate the result.
func TestSolveFourByFourPuzzle(t *testing.T) {
	rules, err := sudoku.GenerateRules(4)
	if err != nil {
		t.Fatalf("GenerateRules(4) error = %v", err)
	}
	givens, err := sudoku.EncodeGrid([]string{
		"1...",
		"...2",
		"....",
		"...4",
	}, 4)
	if err != nil {
		t.Fatalf("EncodeGrid() error = %v", err)
	}

	clauses := append(append([][]int{}, rules...), givens...)
	numVars := sudoku.Var(4, 4, 4)

	sv := &dpll.Solver{Strategy: dpll.S1}
	result, err := sv.SolveClauses(clauses, numVars)
	if err != nil {
		t.Fatalf("SolveClauses() error = %v", err)
	}
	if result.Outcome != dpll.SAT {
		t.Fatal("4x4 puzzle with a valid partial assignment reported UNSAT")
	}

	grid := sudoku.DecodeGrid(result.Model, 4)
	if grid[0][0] != 1 {
		t.Errorf("grid[0][0] = %d, want 1 (a given)", grid[0][0])
	}
	if grid[1][3] != 2 {
		t.Errorf("grid[1][3] = %d, want 2 (a given)", grid[1][3])
	}
	if grid[3][3] != 4 {
		t.Errorf("grid[3][3] = %d, want 4 (a given)", grid[3][3])
	}
	if !sudoku.Validate(grid) {
		t.Error("Validate() = false for a solved grid")
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if grid[r][c] == 0 {
				t.Fatalf("cell (%d,%d) left unfilled in a supposedly solved grid", r, c)
			}
		}
	}
}
