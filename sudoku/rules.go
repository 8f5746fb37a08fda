// Package sudoku encodes and decodes 9x9 Sudoku puzzles as CNF formulas
// for the dpll solver: variable 100*r + 10*c + v (r, c, v in 1..9) means
// cell (r, c) holds value v. The core solver treats these as opaque
// integers; this package is the only place that interprets them.
//
// It is a DIMACS consumer/producer sitting outside the search engine
// itself, not part of the core solver.
package sudoku

import "fmt"

// MaxGridSize is the largest grid this package's variable encoding
// supports: each of row, column, and value must fit in a single decimal
// digit.
const MaxGridSize = 9

// Var returns the DIMACS variable for cell (row, col) holding value,
// using the 100*r + 10*c + v encoding (1-indexed).
func Var(row, col, value int) int {
	return row*100 + col*10 + value
}

// GenerateRules produces the static constraint clauses for a gridSize x
// gridSize Sudoku: every cell holds exactly one value, every row and
// column and box contains every value at least once. gridSize must be a
// perfect square in [1, MaxGridSize].
func GenerateRules(gridSize int) ([][]int, error) {
	boxSize := isqrt(gridSize)
	if boxSize*boxSize != gridSize || gridSize < 1 || gridSize > MaxGridSize {
		return nil, fmt.Errorf("sudoku: grid size %d is not a perfect square in [1, %d]", gridSize, MaxGridSize)
	}

	var clauses [][]int

	// Every cell holds at least one value, and at most one.
	for r := 1; r <= gridSize; r++ {
		for c := 1; c <= gridSize; c++ {
			atLeast := make([]int, gridSize)
			for v := 1; v <= gridSize; v++ {
				atLeast[v-1] = Var(r, c, v)
			}
			clauses = append(clauses, atLeast)
			for v1 := 1; v1 <= gridSize; v1++ {
				for v2 := v1 + 1; v2 <= gridSize; v2++ {
					clauses = append(clauses, []int{-Var(r, c, v1), -Var(r, c, v2)})
				}
			}
		}
	}

	// Every row contains every value at least once.
	for r := 1; r <= gridSize; r++ {
		for v := 1; v <= gridSize; v++ {
			clause := make([]int, gridSize)
			for c := 1; c <= gridSize; c++ {
				clause[c-1] = Var(r, c, v)
			}
			clauses = append(clauses, clause)
		}
	}

	// Every column contains every value at least once.
	for c := 1; c <= gridSize; c++ {
		for v := 1; v <= gridSize; v++ {
			clause := make([]int, gridSize)
			for r := 1; r <= gridSize; r++ {
				clause[r-1] = Var(r, c, v)
			}
			clauses = append(clauses, clause)
		}
	}

	// Every box contains every value at least once.
	for boxRow := 0; boxRow < boxSize; boxRow++ {
		for boxCol := 0; boxCol < boxSize; boxCol++ {
			for v := 1; v <= gridSize; v++ {
				clause := make([]int, 0, gridSize)
				for dr := 1; dr <= boxSize; dr++ {
					for dc := 1; dc <= boxSize; dc++ {
						clause = append(clause, Var(boxRow*boxSize+dr, boxCol*boxSize+dc, v))
					}
				}
				clauses = append(clauses, clause)
			}
		}
	}

	return clauses, nil
}

func isqrt(n int) int {
	for i := 1; i*i <= n; i++ {
		if i*i == n {
			return i
		}
	}
	return 0
}
