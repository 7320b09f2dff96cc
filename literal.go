// Package microsat implements a DPLL SAT solver over CNF formulas: unit
// propagation and pure-literal elimination to a fixed point, then branching
// on an unassigned variable with backtracking driven by a reversible action
// log. It does not implement CDCL (no learned clauses, no VSIDS, no watched
// literals, no restarts).
package microsat

import "fmt"

// Literal is a nonzero signed literal. Its magnitude identifies the
// Variable; its sign encodes polarity (positive means the variable is
// asserted true, negative means asserted false).
type Literal int16

// Variable is a positive variable identifier. The universe of variables is
// the set of magnitudes observed in added clauses.
type Variable uint16

// MaxVariable is the largest variable identifier this solver can represent
// without overflowing Literal's 16-bit range.
const MaxVariable = Variable(1<<15 - 1)

// ToVariable returns the variable a literal refers to, i.e. its magnitude.
func ToVariable(l Literal) Variable {
	if l == 0 {
		panic("microsat: literal 0 has no variable")
	}
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Negate returns the complementary literal.
func Negate(l Literal) Literal {
	return -l
}

// Sign reports the polarity of l: true if l asserts its variable true.
func Sign(l Literal) bool {
	return l > 0
}

func literalFor(v Variable, value bool) Literal {
	lit := Literal(v)
	if value {
		return lit
	}
	return -lit
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int16(l))
}
