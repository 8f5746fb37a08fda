package dpll

import (
	"fmt"
	"os"
)

// Strategy selects one of the three branching heuristics.
type Strategy int

const (
	// S1 is first-unassigned.
	S1 Strategy = iota + 1
	// S2 is MOM.
	S2
	// S3 is two-sided Jeroslow-Wang.
	S3
)

func (s Strategy) String() string {
	switch s {
	case S1:
		return "S1"
	case S2:
		return "S2"
	case S3:
		return "S3"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// heuristic resolves a Strategy to its Heuristic implementation.
func (s Strategy) heuristic() (Heuristic, error) {
	switch s {
	case S1:
		return FirstUnassigned{}, nil
	case S2:
		return MOM{}, nil
	case S3:
		return JeroslowWang{}, nil
	default:
		return nil, fmt.Errorf("dpll: unknown strategy %v", s)
	}
}

// Result is the outcome of one Solver run.
type Result struct {
	Outcome Outcome
	Model   *Model
	NumVars int
	Metrics Metrics
}

// Solver reads a DIMACS problem, runs the DPLL driver with a chosen
// strategy, and (optionally) writes the resulting model to a file.
type Solver struct {
	Strategy Strategy
	Verbose  bool
}

// SolveClauses runs the driver directly on an in-memory formula. This is
// the core entry point every other Solve* method funnels through.
func (sv *Solver) SolveClauses(rawClauses [][]int, numVars int) (*Result, error) {
	h, err := sv.Strategy.heuristic()
	if err != nil {
		return nil, err
	}
	store := FromLiterals(rawClauses)
	a := NewAssignment(numVars)
	d := &Driver{Heuristic: h, Verbose: sv.Verbose, Trace: os.Stderr}

	outcome, model, err := d.Solve(store, a, 0)
	if err != nil {
		return nil, err
	}
	return &Result{Outcome: outcome, Model: model, NumVars: numVars, Metrics: d.Metrics}, nil
}

// SolveFile reads path as a plain DIMACS CNF file and solves it. On SAT it
// writes path+".out" with the model; on UNSAT it writes an empty
// path+".out".
func (sv *Solver) SolveFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open input file", Err: err}
	}
	defer f.Close()

	clauses, numVars, _, err := ParseDIMACS(f)
	if err != nil {
		return nil, err
	}
	result, err := sv.SolveClauses(clauses, numVars)
	if err != nil {
		return nil, err
	}
	if err := sv.writeOutput(path+".out", result); err != nil {
		return nil, err
	}
	return result, nil
}

// SolveSudoku reads a rules file and a puzzle file, concatenates them, and
// solves the combined formula. The output file is puzzlePath+".out",
// matching SolveFile.
func (sv *Solver) SolveSudoku(rulesPath, puzzlePath string) (*Result, error) {
	rules, err := os.Open(rulesPath)
	if err != nil {
		return nil, &IOError{Op: "open rules file", Err: err}
	}
	defer rules.Close()
	puzzle, err := os.Open(puzzlePath)
	if err != nil {
		return nil, &IOError{Op: "open puzzle file", Err: err}
	}
	defer puzzle.Close()

	clauses, numVars, err := CombineDIMACS(rules, puzzle)
	if err != nil {
		return nil, err
	}
	result, err := sv.SolveClauses(clauses, numVars)
	if err != nil {
		return nil, err
	}
	if err := sv.writeOutput(puzzlePath+".out", result); err != nil {
		return nil, err
	}
	return result, nil
}

func (sv *Solver) writeOutput(outPath string, result *Result) error {
	f, err := os.Create(outPath)
	if err != nil {
		return &IOError{Op: "create output file", Err: err}
	}
	defer f.Close()

	if result.Outcome != SAT {
		return nil
	}
	return WriteModel(f, result.Model, result.NumVars)
}
