package sudoku

import (
	"fmt"
	"io"
	"strings"
)

// PrintGrid renders grid as a boxed ASCII table, 0 cells shown as '.'.
func PrintGrid(w io.Writer, grid [][]int) {
	size := len(grid)
	boxSize := isqrt(size)
	rule := "  " + strings.Repeat("-", size*2+boxSize+1)
	fmt.Fprintln(w, rule)
	for r, row := range grid {
		fmt.Fprint(w, "| ")
		for c, val := range row {
			if val == 0 {
				fmt.Fprint(w, ". ")
			} else {
				fmt.Fprintf(w, "%d ", val)
			}
			if boxSize > 0 && (c+1)%boxSize == 0 {
				fmt.Fprint(w, "| ")
			}
		}
		fmt.Fprintln(w)
		if boxSize > 0 && (r+1)%boxSize == 0 {
			fmt.Fprintln(w, rule)
		}
	}
}
