package microsat

import (
	"strings"
	"testing"
)

func TestParseExpressionBuildsSolvableEngine(t *testing.T) {
	const in = `p cnf 3 3
1 2 0
-1 3 0
-2 -3 0
`
	expr, err := ParseExpression(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(expr.Clauses()) != 3 {
		t.Fatalf("got %d clauses, want 3", len(expr.Clauses()))
	}

	expr.Optimize()
	assignment, ok := SolveDPLL(expr)
	if !ok {
		t.Fatal("expected SAT")
	}
	if !Verify(expr, assignment) {
		t.Fatalf("verifier rejected assignment %v parsed from DIMACS text", assignment)
	}
}

func TestParseExpressionPropagatesParseError(t *testing.T) {
	if _, err := ParseExpression(strings.NewReader("p cnf 1 1\nabc 0\n")); err == nil {
		t.Fatal("expected an error for a malformed literal")
	}
}
