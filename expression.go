package microsat

import "github.com/kr/pretty"

// Assignment maps a variable to the boolean it has been bound to.
type Assignment map[Variable]bool

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// SolverHeuristic selects the strategy Expression.GetBranchVariable uses to
// pick the next decision variable and polarity.
type SolverHeuristic int

const (
	// MostLiteralOccurrences picks the literal appearing in the most
	// currently-active clauses and branches on its polarity. Default.
	MostLiteralOccurrences SolverHeuristic = iota
	// MostVariableOccurrences picks the variable with the most combined
	// occurrences of both polarities and always branches true first.
	MostVariableOccurrences
	// MinimizeClauseLength runs a lexicographic filter over clauses of
	// length 2, 3, 4, narrowing the candidate set at each round.
	MinimizeClauseLength
)

type clauseSet map[ClauseID]struct{}

func (s clauseSet) add(id ClauseID)      { s[id] = struct{}{} }
func (s clauseSet) remove(id ClauseID)   { delete(s, id) }
func (s clauseSet) has(id ClauseID) bool { _, ok := s[id]; return ok }

// snapshot returns the current members as a slice, safe to range over while
// the set itself is mutated.
func (s clauseSet) snapshot() []ClauseID {
	out := make([]ClauseID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// Expression is the indexed CNF engine: a clause set plus the secondary
// indices (literal->clause, unit clauses, pure literals) that make
// propagation cheap, and the action log that makes branching reversible
// without copying the formula.
type Expression struct {
	clauses   []Clause
	variables map[Variable]struct{}

	literalToClause map[Literal]clauseSet
	unitClauses     clauseSet
	pureLiterals    map[Literal]struct{}
	assignments     Assignment

	numActiveClauses int
	numEmptyClauses  int
	maxClauseLength  int

	heuristic SolverHeuristic
	actions   *actionLog
}

// NewExpression returns an empty Expression ready to receive clauses via
// AddClause.
func NewExpression() *Expression {
	return &Expression{
		variables:       make(map[Variable]struct{}),
		literalToClause: make(map[Literal]clauseSet),
		unitClauses:     make(clauseSet),
		pureLiterals:    make(map[Literal]struct{}),
		assignments:     make(Assignment),
		heuristic:       MostLiteralOccurrences,
		actions:         newActionLog(0, 0),
	}
}

// SetHeuristic selects the branching strategy used by GetBranchVariable.
func (e *Expression) SetHeuristic(h SolverHeuristic) {
	e.heuristic = h
}

// Heuristic reports the currently configured branching strategy.
func (e *Expression) Heuristic() SolverHeuristic {
	return e.heuristic
}

// Clauses returns the clauses as currently recorded, including soft-removed
// ones. Literals falsified by an assignment are stripped from a clause in
// place, so the clauses equal the ones added only while the Expression has
// not been solved or branched on.
func (e *Expression) Clauses() []Clause {
	return e.clauses
}

func (e *Expression) ensureLiteralEntry(l Literal) {
	if _, ok := e.literalToClause[l]; !ok {
		e.literalToClause[l] = make(clauseSet)
	}
}

// AddClause appends a clause and updates all indices. Only valid during
// construction (before any inference/branching has occurred); it is never
// logged and cannot be undone.
func (e *Expression) AddClause(c Clause) {
	id := ClauseID(len(e.clauses))

	for _, l := range c.lits {
		v := ToVariable(l)
		if v > MaxVariable {
			invariantViolation("variable %d exceeds MaxVariable", v)
		}
		e.variables[v] = struct{}{}

		// Both polarities are keyed at add time, even when only one is
		// ever observed, so MostVariableOccurrences can look up either
		// side unconditionally.
		e.ensureLiteralEntry(l)
		e.ensureLiteralEntry(Negate(l))
		e.literalToClause[l].add(id)

		e.checkPureLiteral(l)
	}

	if c.Len() == 1 {
		e.unitClauses.add(id)
	}
	if c.Len() > e.maxClauseLength {
		e.maxClauseLength = c.Len()
	}

	e.clauses = append(e.clauses, c)
	e.numActiveClauses++
}

// Clone rebuilds an independent Expression by replaying AddClause for every
// clause currently recorded, in insertion order. It must only be called on
// a pristine Expression (before any branching/inference), which is the only
// time the portfolio solver clones.
func (e *Expression) Clone() *Expression {
	clone := NewExpression()
	clone.heuristic = e.heuristic
	for _, c := range e.clauses {
		cc := Clause{lits: append([]Literal(nil), c.lits...)}
		clone.AddClause(cc)
	}
	return clone
}

// Optimize reinitializes the action log, pre-sizing it to the expected
// worst case for a single branch of search. It performs no other
// simplification.
func (e *Expression) Optimize() {
	e.actions = newActionLog(len(e.clauses), e.maxClauseLength)
}

// IsSatisfied reports whether every clause has been soft-removed.
func (e *Expression) IsSatisfied() bool {
	return e.numActiveClauses == 0
}

// IsUnsatisfiable reports whether some active clause has become empty.
func (e *Expression) IsUnsatisfiable() bool {
	return e.numEmptyClauses > 0
}

// IsInferencePossible reports whether unit propagation or pure-literal
// elimination can still make progress.
func (e *Expression) IsInferencePossible() bool {
	return e.numEmptyClauses == 0 && e.numActiveClauses > 0 &&
		(len(e.pureLiterals) > 0 || len(e.unitClauses) > 0)
}

// GetActionState returns a mark that RestoreActionState can later rewind to.
func (e *Expression) GetActionState() int {
	return e.actions.depth()
}

// debugState formats the engine's secondary indices for -v/test-failure
// diagnostics. Not used on any success path.
func (e *Expression) debugState() string {
	return pretty.Sprintf("active=%d empty=%d unit=%# v pure=%# v",
		e.numActiveClauses, e.numEmptyClauses, e.unitClauses, e.pureLiterals)
}

// ConstructAssignment returns a full assignment: the current partial
// assignment with every remaining unassigned variable defaulted to true
// (valid since every active clause has already been removed when this is
// called from the DPLL driver).
func (e *Expression) ConstructAssignment() Assignment {
	out := e.assignments.Clone()
	for v := range e.variables {
		if _, ok := out[v]; !ok {
			out[v] = true
		}
	}
	return out
}
