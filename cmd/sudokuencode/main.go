// Command sudokuencode converts a Sudoku puzzle into a DIMACS CNF file,
// either from a 9-line grid or a single 81-character line, optionally
// combined with a generated rule set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	dpll "github.com/dpllsat/dpllsat"
	"github.com/dpllsat/dpllsat/sudoku"
)

func main() {
	log.SetFlags(0)

	line := flag.Bool("line", false, "read the puzzle as a single 81-character line instead of a 9-line grid")
	withRules := flag.Bool("with-rules", true, "prepend the generated 9x9 rule set to the output")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `sudokuencode: convert a Sudoku puzzle to DIMACS CNF.

Usage:

  sudokuencode [-line] [-with-rules=false] <puzzle_file> <output.cnf>
`)
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	puzzleFile, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
	defer puzzleFile.Close()

	const gridSize = 9
	var givens [][]int
	if *line {
		var raw string
		if _, err := fmt.Fscan(puzzleFile, &raw); err != nil {
			log.Println("error reading puzzle line:", err)
			os.Exit(1)
		}
		givens, err = sudoku.EncodeLine(raw, gridSize)
	} else {
		givens, err = sudoku.EncodeGridReader(puzzleFile, gridSize)
	}
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}

	clauses := givens
	if *withRules {
		rules, err := sudoku.GenerateRules(gridSize)
		if err != nil {
			log.Println("error:", err)
			os.Exit(1)
		}
		clauses = append(rules, givens...)
	}

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := dpll.WriteDIMACS(out, clauses); err != nil {
		log.Println("error writing output:", err)
		os.Exit(1)
	}
	fmt.Printf("encoded %d puzzle clauses (%d total) to %s\n", len(givens), len(clauses), flag.Arg(1))
}
