package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EncodeGrid encodes a Sudoku puzzle given as gridSize lines, each
// gridSize characters of '1'-'9' for a given cell or '.' for a blank, into
// unit clauses for its givens.
func EncodeGrid(rows []string, gridSize int) ([][]int, error) {
	if len(rows) != gridSize {
		return nil, fmt.Errorf("sudoku: puzzle has %d rows, expected %d", len(rows), gridSize)
	}
	var clauses [][]int
	for r, row := range rows {
		if len(row) != gridSize {
			return nil, fmt.Errorf("sudoku: row %d has %d characters, expected %d", r+1, len(row), gridSize)
		}
		for c, ch := range row {
			if ch == '.' || ch == '0' {
				continue
			}
			v := int(ch - '0')
			if v < 1 || v > gridSize {
				return nil, fmt.Errorf("sudoku: invalid digit %q at row %d col %d", ch, r+1, c+1)
			}
			clauses = append(clauses, []int{Var(r+1, c+1, v)})
		}
	}
	return clauses, nil
}

// EncodeGridReader reads gridSize non-blank lines from r and encodes them
// with EncodeGrid.
func EncodeGridReader(r io.Reader, gridSize int) ([][]int, error) {
	var rows []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return EncodeGrid(rows, gridSize)
}

// EncodeLine encodes a single puzzle written as one gridSize*gridSize
// character line (row-major, '.' or '0' for blanks), into unit clauses.
func EncodeLine(line string, gridSize int) ([][]int, error) {
	want := gridSize * gridSize
	if len(line) != want {
		return nil, fmt.Errorf("sudoku: puzzle line has %d characters, expected %d", len(line), want)
	}
	var clauses [][]int
	for idx, ch := range line {
		if ch == '.' || ch == '0' {
			continue
		}
		if ch < '1' || ch > '9' {
			return nil, fmt.Errorf("sudoku: invalid character %q at position %d", ch, idx)
		}
		row := idx/gridSize + 1
		col := idx%gridSize + 1
		v := int(ch - '0')
		clauses = append(clauses, []int{Var(row, col, v)})
	}
	return clauses, nil
}
