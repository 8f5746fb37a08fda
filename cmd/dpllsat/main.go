// Command dpllsat reads a DIMACS CNF (or, with -rules, a Sudoku puzzle
// paired with a rules file) and runs the DPLL solver with the chosen
// branching strategy, writing the model next to the input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	dpll "github.com/dpllsat/dpllsat"
)

// parseStrategy resolves the -S1/-S2/-S3 flag trio to a single Strategy,
// rejecting zero or more than one set.
func parseStrategy(s1, s2, s3 bool) (dpll.Strategy, error) {
	switch {
	case s1 && !s2 && !s3:
		return dpll.S1, nil
	case s2 && !s1 && !s3:
		return dpll.S2, nil
	case s3 && !s1 && !s2:
		return dpll.S3, nil
	default:
		return 0, errors.New("exactly one of -S1, -S2, -S3 must be given")
	}
}

func main() {
	log.SetFlags(0)

	s1 := flag.Bool("S1", false, "branching strategy: first-unassigned")
	s2 := flag.Bool("S2", false, "branching strategy: MOM")
	s3 := flag.Bool("S3", false, "branching strategy: two-sided Jeroslow-Wang")
	rulesPath := flag.String("rules", "", "Sudoku rules file to concatenate with the puzzle before solving")
	verbose := flag.Bool("v", false, "verbose decision trace")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `dpllsat: a DPLL CNF-SAT solver.

Usage:

  dpllsat -S{1|2|3} [-rules rules.cnf] <puzzle_path>

Reads a DIMACS CNF file (or, with -rules, a Sudoku puzzle plus a rules
file) and writes <puzzle_path>.out: the model on SAT, an empty file on
UNSAT.
`)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	strategy, err := parseStrategy(*s1, *s2, *s3)
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}

	sv := &dpll.Solver{Strategy: strategy, Verbose: *verbose}

	var result *dpll.Result
	if *rulesPath != "" {
		result, err = sv.SolveSudoku(*rulesPath, flag.Arg(0))
	} else {
		result, err = sv.SolveFile(flag.Arg(0))
	}
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}

	if result.Outcome == dpll.SAT {
		fmt.Println("SAT")
	} else {
		fmt.Println("UNSAT")
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "backtracks: %d\n", result.Metrics.Backtracks)
		fmt.Fprintf(os.Stderr, "max depth: %d\n", result.Metrics.MaxDepth)
		fmt.Fprintf(os.Stderr, "recursive calls: %d\n", result.Metrics.RecursiveCalls)
	}
}
