package dpll

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Outcome is the terminal result of one driver invocation.
type Outcome int

const (
	// SAT means the frame (and everything above it) found a model.
	SAT Outcome = iota
	// UNSAT means the frame exhausted both phases without success.
	UNSAT
)

func (o Outcome) String() string {
	if o == SAT {
		return "SAT"
	}
	return "UNSAT"
}

// Metrics accumulate over one Driver.Solve call tree. They are purely
// informational: the search result never depends on them.
type Metrics struct {
	Backtracks     int
	MaxDepth       int
	RecursiveCalls int
}

// Driver runs the DPLL search: propagate, check terminal, branch on the
// chosen heuristic's variable, recurse, backtrack. A Driver is single-use
// per Solve call tree but may be reused across independent solves by
// resetting Metrics.
type Driver struct {
	Heuristic Heuristic

	// Verbose, when set, dumps the assignment via github.com/kr/pretty at
	// every decision. Intended for interactive debugging, not normal runs.
	Verbose bool
	Trace   io.Writer

	Metrics Metrics

	// MaxDepth, when non-zero, bounds recursion; exceeding it returns
	// ResourceExhaustion instead of silently reporting UNSAT.
	MaxDepth int
}

// Model is the satisfying assignment produced by a successful search,
// indexed by variable id (index 0 unused).
type Model struct {
	values []bool
	set    []bool
}

// NewModel allocates a model over variables 1..numVars.
func NewModel(numVars int) *Model {
	return &Model{values: make([]bool, numVars+1), set: make([]bool, numVars+1)}
}

// Get reports the value assigned to v and whether v was assigned at all.
func (m *Model) Get(v int) (bool, bool) {
	if v < 0 || v >= len(m.values) {
		return false, false
	}
	return m.values[v], m.set[v]
}

func (m *Model) set1(v int, value bool) {
	m.values[v] = value
	m.set[v] = true
}

// NumVars reports the variable count the model was sized for.
func (m *Model) NumVars() int {
	return len(m.values) - 1
}

// Solve runs the DPLL state machine starting at the given depth, mutating
// d.Metrics as it goes. On SAT it returns a Model snapshot of the
// assignment at the point of success. On return, the assignment passed in
// is restored to exactly the state it was in at call entry, except that a
// SAT return leaves the caller free to read the winning assignment from
// the returned Model before any further mutation happens elsewhere.
func (d *Driver) Solve(store *ClauseStore, a *Assignment, depth int) (Outcome, *Model, error) {
	d.Metrics.RecursiveCalls++
	if depth > d.Metrics.MaxDepth {
		d.Metrics.MaxDepth = depth
	}
	if d.MaxDepth > 0 && depth > d.MaxDepth {
		return UNSAT, nil, &ResourceExhaustionError{Limit: d.MaxDepth}
	}

	mark := a.Mark()

	propagated, conflict := Propagate(store, a)
	if conflict {
		a.Undo(mark)
		return UNSAT, nil, nil
	}

	if propagated.Len() == 0 {
		return SAT, snapshotModel(a), nil
	}

	v, firstPhase, ok := d.Heuristic.Choose(propagated, a)
	if !ok {
		// Every clause is already satisfied under the propagated
		// assignment; nothing left to branch on.
		return SAT, snapshotModel(a), nil
	}

	if d.Verbose {
		fmt.Fprintf(d.traceWriter(), "depth=%d deciding var=%d phase=%v\n", depth, v, firstPhase)
		pretty.Fprintf(d.traceWriter(), "trail: %# v\n", a.Trail())
	}

	branchMark := a.Mark()
	a.Assign(v, firstPhase, Decision)
	outcome, model, err := d.Solve(propagated, a, depth+1)
	if err != nil {
		a.Undo(mark)
		return UNSAT, nil, err
	}
	if outcome == SAT {
		return SAT, model, nil
	}
	a.Undo(branchMark)

	a.Assign(v, !firstPhase, Decision)
	outcome, model, err = d.Solve(propagated, a, depth+1)
	if err != nil {
		a.Undo(mark)
		return UNSAT, nil, err
	}
	if outcome == SAT {
		return SAT, model, nil
	}

	a.Undo(mark)
	d.Metrics.Backtracks++
	return UNSAT, nil, nil
}

func (d *Driver) traceWriter() io.Writer {
	if d.Trace != nil {
		return d.Trace
	}
	return io.Discard
}

func snapshotModel(a *Assignment) *Model {
	m := NewModel(a.NumVars())
	for v := 1; v <= a.NumVars(); v++ {
		if value, assigned := a.Value(v); assigned {
			m.set1(v, value)
		}
	}
	return m
}
