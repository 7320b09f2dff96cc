package microsat

// This file holds the reversible mutation primitives of Expression: the
// forward operations (assignVariable and its helpers) and the restore
// routine that exactly inverts them by replaying the action log backwards.
//
// Note on literal_to_clause bookkeeping: a clause id is removed from
// literalToClause[L] for every literal L it contains at the moment the
// clause is soft-removed (removeClause), and a literal is removed from
// literalToClause[L] for every clause it's stripped from
// (removeLiteralFromClauses). Restoring reinserts exactly those entries.
// Keeping the index this precise is what lets invariants 1 and 2 hold for
// every active clause at every quiescent point.

// checkPureLiteral re-evaluates the pure-literal status of l's variable
// given the current contents of literalToClause[l] and literalToClause[-l].
func (e *Expression) checkPureLiteral(l Literal) {
	neg := Negate(l)
	hasPos := len(e.literalToClause[l]) > 0
	hasNeg := len(e.literalToClause[neg]) > 0

	switch {
	case hasPos && !hasNeg:
		e.pureLiterals[l] = struct{}{}
		delete(e.pureLiterals, neg)
	case !hasPos && hasNeg:
		e.pureLiterals[neg] = struct{}{}
		delete(e.pureLiterals, l)
	default:
		delete(e.pureLiterals, l)
		delete(e.pureLiterals, neg)
	}
}

// removeClause soft-removes clause id: it drops id from every literal's
// index (re-evaluating pure-literal status wherever an index becomes
// empty), decrements the active count, drops it from unitClauses if
// present, and logs the mutation so it can be reversed by enableClause.
func (e *Expression) removeClause(id ClauseID) {
	c := &e.clauses[id]
	for i := 0; i < c.Len(); i++ {
		m := c.At(i)
		set := e.literalToClause[m]
		set.remove(id)
		if len(set) == 0 {
			e.checkPureLiteral(m)
		}
	}

	e.numActiveClauses--
	e.unitClauses.remove(id)
	e.actions.push(action{kind: actRemoveClause, clause: id})
}

// enableClause reverses removeClause: it reinserts id into every literal's
// index and re-evaluates pure-literal status wherever an index transitions
// from empty to non-empty.
func (e *Expression) enableClause(id ClauseID) {
	e.numActiveClauses++

	c := &e.clauses[id]
	if c.Len() == 1 {
		e.unitClauses.add(id)
	}

	for i := 0; i < c.Len(); i++ {
		m := c.At(i)
		set := e.literalToClause[m]
		wasEmpty := len(set) == 0
		set.add(id)
		if wasEmpty {
			e.checkPureLiteral(m)
		}
	}
}

// removeClausesWithLiteral soft-removes every currently active clause
// containing l. The id set is snapshotted first since removeClause mutates
// the very index being ranged over.
func (e *Expression) removeClausesWithLiteral(l Literal) {
	set, ok := e.literalToClause[l]
	if !ok || len(set) == 0 {
		return
	}
	for _, id := range set.snapshot() {
		e.removeClause(id)
	}
}

// removeLiteralFromClauses strips l out of every clause that currently
// contains it (falsifying those occurrences), logging a
// Start/InClause.../End group so the whole batch can be replayed in one
// nested loop during restore.
func (e *Expression) removeLiteralFromClauses(l Literal) {
	set, ok := e.literalToClause[l]
	if !ok || len(set) == 0 {
		return
	}

	ids := set.snapshot()
	e.actions.push(action{kind: actRemoveLiteralFromClausesStart})

	for _, id := range ids {
		c := &e.clauses[id]
		c.Remove(l)
		set.remove(id)

		if c.Len() == 1 {
			e.unitClauses.add(id)
		}
		if c.Empty() {
			e.numEmptyClauses++
			e.unitClauses.remove(id)
		}

		e.actions.push(action{kind: actRemoveLiteralFromClause, clause: id})
	}

	e.actions.push(action{kind: actRemoveLiteralFromClausesEnd, lit: l})
}

// assignVariable binds v to value: it records the assignment, soft-removes
// every clause the now-satisfied literal appears in, strips the falsified
// literal out of every clause it still appears in, and drops both
// polarities from pureLiterals (the variable is no longer unassigned, so
// neither polarity is a candidate branch literal anymore).
func (e *Expression) assignVariable(v Variable, value bool) {
	e.assignments[v] = value
	e.actions.push(action{kind: actAssignVariable, v: v})

	l := literalFor(v, value)
	negL := Negate(l)

	e.removeClausesWithLiteral(l)
	e.removeLiteralFromClauses(negL)

	delete(e.pureLiterals, l)
	delete(e.pureLiterals, negL)
}

func (e *Expression) unassignVariable(v Variable) {
	delete(e.assignments, v)
}

// RemoveUnitClause assigns the sole literal of an arbitrary unit clause, if
// any exist, and returns that clause's id.
func (e *Expression) RemoveUnitClause() (ClauseID, bool) {
	if len(e.unitClauses) == 0 {
		return 0, false
	}
	var id ClauseID
	for cid := range e.unitClauses {
		id = cid
		break
	}
	l := e.clauses[id].At(0)
	e.assignVariable(ToVariable(l), Sign(l))
	return id, true
}

// RemovePureLiteral assigns an arbitrary pure literal's variable so the
// literal is satisfied, if any pure literal exists.
func (e *Expression) RemovePureLiteral() (Literal, bool) {
	if len(e.pureLiterals) == 0 {
		return 0, false
	}
	var l Literal
	for lit := range e.pureLiterals {
		l = lit
		break
	}
	e.assignVariable(ToVariable(l), Sign(l))
	return l, true
}

// BranchVariable assigns v to value as a decision. It is logged identically
// to a propagated assignment: only AssignVariable is recorded.
func (e *Expression) BranchVariable(v Variable, value bool) {
	e.assignVariable(v, value)
}

// GetBranchVariable chooses the next decision variable and polarity
// according to the configured heuristic. It panics if every variable is
// already assigned, which should never happen when called from the DPLL
// driver (that only branches when neither satisfied nor unsatisfiable).
func (e *Expression) GetBranchVariable() (Variable, bool) {
	switch e.heuristic {
	case MostLiteralOccurrences:
		return e.mostLiteralOccurrences()
	case MostVariableOccurrences:
		return e.mostVariableOccurrences()
	case MinimizeClauseLength:
		return e.minimizeClauseLength()
	default:
		invariantViolation("unknown heuristic %d", e.heuristic)
		panic("unreachable")
	}
}

// RestoreActionState pops and inverts actions until the log's depth matches
// mark, re-establishing every Expression invariant at that depth exactly as
// it was before the intervening mutations.
func (e *Expression) RestoreActionState(mark int) {
	for e.actions.depth() > mark {
		a := e.actions.pop()
		switch a.kind {
		case actRemoveClause:
			e.enableClause(a.clause)

		case actRemoveLiteralFromClausesEnd:
			l := a.lit
			set := e.literalToClause[l]
			for {
				next := e.actions.pop()
				if next.kind == actRemoveLiteralFromClausesStart {
					break
				}
				if next.kind != actRemoveLiteralFromClause {
					invariantViolation("expected RemoveLiteralFromClause or Start, got %d", next.kind)
				}

				id := next.clause
				c := &e.clauses[id]
				c.Append(l)
				switch c.Len() {
				case 1:
					e.numEmptyClauses--
					e.unitClauses.add(id)
				case 2:
					e.unitClauses.remove(id)
				}
				set.add(id)
			}

		case actAssignVariable:
			e.unassignVariable(a.v)

		default:
			invariantViolation("unexpected action kind %d at top level of restore", a.kind)
		}
	}
}
