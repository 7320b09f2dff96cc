// Command solve_cnf_file reads a single DIMACS CNF problem and prints
// whether it is satisfiable, and if so, an assignment.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cespare-fork/microsat"
)

type args struct {
	Path    string `arg:"positional" help:"DIMACS CNF file to solve (reads stdin if omitted)"`
	Verbose bool   `arg:"-v,--verbose" help:"enable solver diagnostics on stderr"`
}

func (args) Description() string {
	return "solve_cnf_file reads a single problem specification in the DIMACS CNF format " +
		"and writes SAT (plus a satisfying assignment) or UNSAT."
}

func main() {
	log.SetFlags(0)

	var a args
	arg.MustParse(&a)

	if a.Verbose {
		microsat.SetLogLevel(logrus.DebugLevel)
	}

	var r io.Reader = os.Stdin
	if a.Path != "" {
		f, err := os.Open(a.Path)
		if err != nil {
			log.Fatal(errors.Wrap(err, "opening input file"))
		}
		defer f.Close()
		r = f
	}

	expr, err := microsat.ParseExpression(r)
	if err != nil {
		log.Fatal(errors.Wrap(err, "parsing DIMACS CNF"))
	}

	assignment, ok := microsat.Solve(expr, true, true)
	if !ok {
		fmt.Println("UNSAT")
		return
	}
	fmt.Println("SAT")
	printAssignment(assignment)
}

func printAssignment(assignment microsat.Assignment) {
	vars := make([]microsat.Variable, 0, len(assignment))
	for v := range assignment {
		vars = append(vars, v)
	}
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			if vars[j] < vars[i] {
				vars[i], vars[j] = vars[j], vars[i]
			}
		}
	}
	for i, v := range vars {
		if i > 0 {
			fmt.Print(" ")
		}
		if assignment[v] {
			fmt.Print(int(v))
		} else {
			fmt.Print(-int(v))
		}
	}
	fmt.Println()
}
