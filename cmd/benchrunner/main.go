// Command benchrunner solves every *.cnf file in a directory with all
// three branching strategies and writes a CSV of runtimes and search
// metrics, one row per (strategy, file) pair. Each (strategy, file) solve
// is fully isolated from the others, so they run concurrently over an
// in-process worker pool.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	dpll "github.com/dpllsat/dpllsat"
)

type job struct {
	strategy dpll.Strategy
	file     string
}

type row struct {
	strategy       dpll.Strategy
	file           string
	runtimeSeconds float64
	outcome        string
	backtracks     int
	maxDepth       int
	recursiveCalls int
	err            error
}

func main() {
	log.SetFlags(0)

	workers := flag.Int("workers", 4, "number of concurrent solves")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `benchrunner: batch-solve a directory of DIMACS CNF files.

Usage:

  benchrunner [-workers N] <puzzles_dir> <results.csv>
`)
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(flag.Arg(0), "*.cnf"))
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
	sort.Strings(files)

	var jobs []job
	for _, f := range files {
		for _, s := range []dpll.Strategy{dpll.S1, dpll.S2, dpll.S3} {
			jobs = append(jobs, job{strategy: s, file: f})
		}
	}

	rows := runAll(jobs, *workers)

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := writeCSV(out, rows); err != nil {
		log.Println("error writing CSV:", err)
		os.Exit(1)
	}
}

func runAll(jobs []job, workers int) []row {
	if workers < 1 {
		workers = 1
	}
	jobCh := make(chan job)
	resultCh := make(chan row, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				resultCh <- runOne(j)
			}
		}()
	}
	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
	}()
	wg.Wait()
	close(resultCh)

	rows := make([]row, 0, len(jobs))
	for r := range resultCh {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].file != rows[j].file {
			return rows[i].file < rows[j].file
		}
		return rows[i].strategy < rows[j].strategy
	})
	return rows
}

func runOne(j job) row {
	sv := &dpll.Solver{Strategy: j.strategy}
	start := time.Now()
	result, err := sv.SolveFile(j.file)
	elapsed := time.Since(start)
	r := row{strategy: j.strategy, file: j.file, runtimeSeconds: elapsed.Seconds(), err: err}
	if err != nil {
		return r
	}
	r.backtracks = result.Metrics.Backtracks
	r.maxDepth = result.Metrics.MaxDepth
	r.recursiveCalls = result.Metrics.RecursiveCalls
	r.outcome = result.Outcome.String()
	return r
}

func writeCSV(w *os.File, rows []row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"strategy", "file", "outcome", "runtime_seconds", "backtracks", "max_depth", "recursive_calls", "error"}); err != nil {
		return err
	}
	for _, r := range rows {
		errMsg := ""
		if r.err != nil {
			errMsg = r.err.Error()
		}
		record := []string{
			r.strategy.String(),
			r.file,
			r.outcome,
			strconv.FormatFloat(r.runtimeSeconds, 'f', 6, 64),
			strconv.Itoa(r.backtracks),
			strconv.Itoa(r.maxDepth),
			strconv.Itoa(r.recursiveCalls),
			errMsg,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}
