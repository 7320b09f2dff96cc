package microsat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing.
//
// Duplicate literals within a single clause are dropped as they're parsed;
// the engine itself does not rely on clauses being duplicate-free, but
// dropping them here keeps clause ids and lengths predictable for callers
// that inspect the raw [][]int form.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	seen := make(map[int]struct{})
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, errors.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, errors.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, errors.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(err, "malformed #vars in problem line")
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(err, "malformed #clauses in problem line")
			}
			if problem.vars < 0 {
				return nil, errors.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, errors.Errorf("invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrap(err, "invalid variable")
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
				seen = make(map[int]struct{})
			} else {
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if problem.vars > 0 {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, errors.Errorf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
						v, problem.vars, problem.vars)
				}
				vars[v] = struct{}{}
			}
		}
		// Allow some vars to be missing.
		if len(vars) > problem.vars {
			return nil, errors.Errorf("problem line specifies %d vars, but there are %d", problem.vars, len(vars))
		}
		if len(clauses) != problem.clauses {
			return nil, errors.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
	}
	return clauses, nil
}

// WriteDIMACS writes problem back out in DIMACS CNF form: a single
// "p cnf <vars> <clauses>" header followed by one "<lits...> 0" line per
// clause. The variable count in the header is the largest magnitude
// appearing in problem.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	maxVar := 0
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(problem)); err != nil {
		return err
	}
	for _, clause := range problem {
		var b strings.Builder
		for _, v := range clause {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// ParseExpression parses DIMACS CNF text and builds an *Expression from it
// directly, feeding each parsed clause through AddClause so the engine's
// indices are populated exactly as if the clauses had been added one by
// one by hand.
func ParseExpression(r io.Reader) (*Expression, error) {
	problem, err := ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	expr := NewExpression()
	for _, ints := range problem {
		c := NewClause()
		for _, v := range ints {
			if v == 0 {
				return nil, errors.New("unexpected zero literal in parsed clause")
			}
			if v > int(MaxVariable) || v < -int(MaxVariable) {
				return nil, errors.Errorf("literal %d is out of range (variables are limited to %d)", v, MaxVariable)
			}
			c.AppendChecked(Literal(v))
		}
		expr.AddClause(c)
	}
	return expr, nil
}
