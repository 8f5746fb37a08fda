package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteModel writes a total assignment over variables 1..numVars, one per
// line, as "v 0" when true or "-v 0" when false. A variable the model
// never assigned (the search neither decided nor propagated it) defaults
// to true: a deliberate, non-semantic convention so the
// output is always total, not a claim about the variable's value.
func WriteModel(w io.Writer, m *Model, numVars int) error {
	bw := bufio.NewWriter(w)
	for v := 1; v <= numVars; v++ {
		value, assigned := m.Get(v)
		if !assigned {
			value = true
		}
		n := v
		if !value {
			n = -v
		}
		if _, err := fmt.Fprintf(bw, "%d 0\n", n); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadModel parses a model file in the format WriteModel produces: lines
// of "v 0"/"-v 0", one per variable. An empty file (the UNSAT case) parses
// to a Model with nothing assigned.
func ReadModel(r io.Reader, numVars int) (*Model, error) {
	m := NewModel(numVars)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[1] != "0" {
			return nil, &InputError{Msg: fmt.Sprintf("malformed model line %q", line)}
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n == 0 {
			return nil, &InputError{Msg: fmt.Sprintf("malformed model line %q", line)}
		}
		v := n
		value := true
		if v < 0 {
			v = -v
			value = false
		}
		m.set1(v, value)
	}
	if err := s.Err(); err != nil {
		return nil, &IOError{Op: "read model file", Err: err}
	}
	return m, nil
}
