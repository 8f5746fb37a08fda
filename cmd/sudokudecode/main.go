// Command sudokudecode renders a solved model file as a Sudoku grid and
// validates it.
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

	numVars := flag.Int("vars", 999, "variable count the model file was written for")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `sudokudecode: render a solved Sudoku model file.

Usage:

  sudokudecode [-vars N] <model.out>
`)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
	defer f.Close()

	model, err := dpll.ReadModel(f, *numVars)
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}

	const gridSize = 9
	grid := sudoku.DecodeGrid(model, gridSize)
	sudoku.PrintGrid(os.Stdout, grid)
	if sudoku.Validate(grid) {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid")
		os.Exit(1)
	}
}
