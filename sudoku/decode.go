package sudoku

import dpll "github.com/dpllsat/dpllsat"

// DecodeGrid reads the true variables out of m and arranges them into a
// gridSize x gridSize grid (0 meaning the cell was never pinned down, which
// should not happen for a fully solved puzzle).
func DecodeGrid(m *dpll.Model, gridSize int) [][]int {
	grid := make([][]int, gridSize)
	for i := range grid {
		grid[i] = make([]int, gridSize)
	}
	for v := 1; v <= m.NumVars(); v++ {
		value, assigned := m.Get(v)
		if !assigned || !value {
			continue
		}
		val := v % 10
		col := (v / 10) % 10
		row := v / 100
		if row < 1 || row > gridSize || col < 1 || col > gridSize || val < 1 || val > gridSize {
			continue
		}
		grid[row-1][col-1] = val
	}
	return grid
}

// Validate reports whether grid satisfies Sudoku's row, column, and
// subgrid uniqueness constraints. Empty cells (0) are ignored, so a
// partially-filled grid can still pass.
func Validate(grid [][]int) bool {
	size := len(grid)
	boxSize := isqrt(size)
	if boxSize == 0 {
		return false
	}

	for i := 0; i < size; i++ {
		if hasDuplicate(grid[i]) {
			return false
		}
		col := make([]int, size)
		for j := 0; j < size; j++ {
			col[j] = grid[j][i]
		}
		if hasDuplicate(col) {
			return false
		}
	}

	for br := 0; br < size; br += boxSize {
		for bc := 0; bc < size; bc += boxSize {
			var box []int
			for dr := 0; dr < boxSize; dr++ {
				for dc := 0; dc < boxSize; dc++ {
					box = append(box, grid[br+dr][bc+dc])
				}
			}
			if hasDuplicate(box) {
				return false
			}
		}
	}
	return true
}

func hasDuplicate(values []int) bool {
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v == 0 {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
