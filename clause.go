package microsat

// ClauseID is a dense index assigned to a clause in insertion order. It is
// stable for the lifetime of an Expression; clauses are never physically
// deleted, only soft-removed.
type ClauseID uint16

// Clause is an ordered sequence of literals representing their disjunction.
// Removal is O(1) via swap-with-last and does not preserve order; only the
// literal at index 0 is meaningful on its own, and only when Len() == 1 (the
// unit literal).
type Clause struct {
	lits []Literal
}

// NewClause returns an empty clause.
func NewClause() Clause {
	return Clause{}
}

// Append adds a literal unconditionally.
func (c *Clause) Append(l Literal) {
	c.lits = append(c.lits, l)
}

// AppendChecked adds a literal only if it is not already present. Used by
// the parser to deduplicate literals within a clause; the engine itself
// does not rely on clauses being duplicate-free.
func (c *Clause) AppendChecked(l Literal) {
	if c.Contains(l) {
		return
	}
	c.lits = append(c.lits, l)
}

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Empty reports whether the clause has no literals (unsatisfiable under the
// current partial assignment).
func (c *Clause) Empty() bool {
	return len(c.lits) == 0
}

// Contains reports whether l appears in the clause.
func (c *Clause) Contains(l Literal) bool {
	for _, x := range c.lits {
		if x == l {
			return true
		}
	}
	return false
}

// At returns the literal at index i.
func (c *Clause) At(i int) Literal {
	return c.lits[i]
}

// Literals returns the clause's backing slice. Callers must not retain it
// across a mutation of the clause.
func (c *Clause) Literals() []Literal {
	return c.lits
}

// Remove deletes l from the clause in O(1) by swapping it with the last
// literal. Order is not preserved.
func (c *Clause) Remove(l Literal) {
	for i, x := range c.lits {
		if x == l {
			last := len(c.lits) - 1
			c.lits[i] = c.lits[last]
			c.lits = c.lits[:last]
			return
		}
	}
}
