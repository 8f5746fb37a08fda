package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses a DIMACS CNF document, returning the clauses (as raw
// signed-integer literal lists, suitable for FromLiterals), the variable
// and clause counts declared by the problem line (or, if it is absent, the
// largest variable id seen and the number of clauses read), and an
// *InputError on any malformed input.
//
// A few non-standard variations are tolerated, matching common CNF
// fixtures in the wild: comments may appear anywhere (not just in the
// preamble), the problem line may be missing entirely, and a line
// containing only '%' terminates the clause section (some generators
// append extra trailer data after it).
func ParseDIMACS(r io.Reader) (clauses [][]int, numVars int, numClauses int, err error) {
	var clause []int
	haveProblemLine := false
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, 0, 0, &InputError{Msg: "problem line appears after clauses"}
			}
			if haveProblemLine {
				return nil, 0, 0, &InputError{Msg: "multiple problem lines"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, 0, 0, &InputError{Msg: fmt.Sprintf("malformed problem line %q", line)}
			}
			numVars, err = strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return nil, 0, 0, &InputError{Msg: fmt.Sprintf("malformed #vars in problem line: %q", line)}
			}
			numClauses, err = strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return nil, 0, 0, &InputError{Msg: fmt.Sprintf("malformed #clauses in problem line: %q", line)}
			}
			haveProblemLine = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, 0, &InputError{Msg: fmt.Sprintf("invalid literal %q", field)}
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, 0, 0, &IOError{Op: "read DIMACS input", Err: err}
	}
	if len(clause) > 0 {
		return nil, 0, 0, &InputError{Msg: "clause missing terminating 0"}
	}

	if haveProblemLine {
		for _, c := range clauses {
			for _, lit := range c {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > numVars {
					return nil, 0, 0, &InputError{
						Msg: fmt.Sprintf("formula contains var %d, but problem line asserts %d vars", v, numVars),
					}
				}
			}
		}
		if len(clauses) != numClauses {
			return nil, 0, 0, &InputError{
				Msg: fmt.Sprintf("problem line specifies %d clauses, but there are %d", numClauses, len(clauses)),
			}
		}
	} else {
		numClauses = len(clauses)
		for _, c := range clauses {
			for _, lit := range c {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > numVars {
					numVars = v
				}
			}
		}
	}
	return clauses, numVars, numClauses, nil
}

// WriteDIMACS writes clauses back out in DIMACS CNF form: a problem line
// sized from the data (max variable id seen, clause count), then one line
// per clause, space-separated, terminated by a trailing 0.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	maxVar := 0
	for _, c := range clauses {
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		if len(c) == 0 {
			if _, err := fmt.Fprintln(w, "0"); err != nil {
				return err
			}
			continue
		}
		parts := make([]string, len(c))
		for i, lit := range c {
			parts[i] = strconv.Itoa(lit)
		}
		if _, err := fmt.Fprintf(w, "%s 0\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

// CombineDIMACS concatenates a rules document and a puzzle document before
// parsing them as one formula, matching the Sudoku façade's rules+puzzle
// composition mode. Either document's problem line, if present, is
// ignored; the variable count is always inferred as the maximum absolute
// literal observed across both documents, since a concatenated
// rules+puzzle document commonly omits the header entirely.
func CombineDIMACS(rules, puzzle io.Reader) (clauses [][]int, numVars int, err error) {
	rulesClauses, err := parseBodyIgnoringHeader(rules)
	if err != nil {
		return nil, 0, err
	}
	puzzleClauses, err := parseBodyIgnoringHeader(puzzle)
	if err != nil {
		return nil, 0, err
	}
	clauses = append(rulesClauses, puzzleClauses...)
	for _, c := range clauses {
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
	}
	return clauses, numVars, nil
}

// parseBodyIgnoringHeader reads every clause line, skipping comment and
// problem lines without validating them against the body, since
// CombineDIMACS always recomputes counts itself.
func parseBodyIgnoringHeader(r io.Reader) (clauses [][]int, err error) {
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &InputError{Msg: fmt.Sprintf("invalid literal %q", field)}
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, &IOError{Op: "read DIMACS input", Err: err}
	}
	if len(clause) > 0 {
		return nil, &InputError{Msg: "clause missing terminating 0"}
	}
	return clauses, nil
}
