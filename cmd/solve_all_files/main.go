// Command solve_all_files solves every DIMACS CNF file in a directory and
// reports the result for each.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cespare-fork/microsat"
)

type args struct {
	Dir     string `arg:"positional,required" help:"directory to search for *.cnf files"`
	Verbose bool   `arg:"-v,--verbose" help:"enable solver diagnostics on stderr"`
}

func (args) Description() string {
	return "solve_all_files enumerates every *.cnf file in a directory and solves each one."
}

func main() {
	log.SetFlags(0)

	var a args
	arg.MustParse(&a)

	if a.Verbose {
		microsat.SetLogLevel(logrus.DebugLevel)
	}

	filenames, err := filepath.Glob(filepath.Join(a.Dir, "*.cnf"))
	if err != nil {
		log.Fatal(errors.Wrap(err, "enumerating *.cnf files"))
	}
	if len(filenames) == 0 {
		log.Fatalf("no *.cnf files found in %s", a.Dir)
	}

	var failed bool
	for _, filename := range filenames {
		if err := solveOne(filename); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func solveOne(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	expr, err := microsat.ParseExpression(f)
	if err != nil {
		return errors.Wrap(err, "parsing DIMACS CNF")
	}

	_, ok := microsat.Solve(expr, true, true)
	if ok {
		fmt.Printf("%s: SAT\n", filename)
	} else {
		fmt.Printf("%s: UNSAT\n", filename)
	}
	return nil
}
