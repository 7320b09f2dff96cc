package microsat

// Verify checks that assignment satisfies every clause of expr's clause
// set as currently recorded. On a pristine, never-branched Expression (the
// one the portfolio coordinator retains read-only for this purpose) that
// is the clause set as originally added; on an Expression the solver has
// mutated, each clause lacks the literals its assignments falsified.
//
// An unassigned variable counts as unsatisfying for the literal it
// appears as, but does not short-circuit the clause: another literal may
// still satisfy it.
func Verify(expr *Expression, assignment Assignment) bool {
	for i := range expr.clauses {
		c := &expr.clauses[i]
		satisfied := false
		for _, l := range c.Literals() {
			value, ok := assignment[ToVariable(l)]
			if !ok {
				continue
			}
			if value == Sign(l) {
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
