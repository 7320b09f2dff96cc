package microsat

import (
	"math/rand"
)

// exprFromProblem builds an Expression directly from the [][]int clause
// form used throughout the tests (and accepted by ParseDIMACS), without
// going through DIMACS text.
func exprFromProblem(problem [][]int) *Expression {
	expr := NewExpression()
	for _, ints := range problem {
		c := NewClause()
		for _, v := range ints {
			c.AppendChecked(Literal(v))
		}
		expr.AddClause(c)
	}
	return expr
}

// solutionIsValid reports whether assignment satisfies every clause of
// problem; a variable missing from assignment satisfies none of its
// literals.
func solutionIsValid(problem [][]int, assignment Assignment) bool {
	for _, clause := range problem {
		satisfied := false
		for _, v := range clause {
			variable := Variable(v)
			want := true
			if v < 0 {
				variable = Variable(-v)
				want = false
			}
			if val, ok := assignment[variable]; ok && val == want {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// bruteForceSAT exhaustively checks every assignment of the variables
// mentioned in problem (which must number at most ~20) and reports whether
// any satisfies every clause.
func bruteForceSAT(problem [][]int, vars []int) bool {
	n := len(vars)
	for mask := 0; mask < 1<<uint(n); mask++ {
		assignment := make(Assignment, n)
		for i, v := range vars {
			assignment[Variable(v)] = mask&(1<<uint(i)) != 0
		}
		if solutionIsValid(problem, assignment) {
			return true
		}
	}
	return n == 0 && len(problem) == 0
}

func collectVars(problem [][]int) []int {
	seen := make(map[int]struct{})
	var vars []int
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vars = append(vars, v)
			}
		}
	}
	return vars
}

// makeRandomSAT generates a random satisfiable-by-construction problem,
// following the teacher's randomized-test fixture generator: it first picks
// a hidden satisfying assignment, then builds clauses around it so that
// each clause is guaranteed to contain at least one literal that agrees
// with the hidden assignment.
func makeRandomSAT(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}
	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}

	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(a, b int) {
			vars[a], vars[b] = vars[b], vars[a]
		})
		clauseLen := rng.Intn(numVars) + 1
		problem[i] = make([]int, clauseLen)
		fixed := rng.Intn(clauseLen)
		for j := 0; j < clauseLen; j++ {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else if rng.Intn(2) == 1 {
				v = -v
			}
			problem[i][j] = v
		}
	}
	return problem
}
