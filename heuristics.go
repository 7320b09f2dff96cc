package microsat

// heuristicAlpha and heuristicBeta weight the max/min occurrence counts in
// MinimizeClauseLength's scoring function H_k(v) = alpha*max(p,n) +
// beta*min(p,n).
const (
	heuristicAlpha = 1
	heuristicBeta  = 1
)

// mostLiteralOccurrences scans literalToClause for the unassigned literal
// appearing in the largest number of active clauses.
func (e *Expression) mostLiteralOccurrences() (Variable, bool) {
	var bestLiteral Literal
	maxOccurrences := 0

	for l, set := range e.literalToClause {
		if len(set) == 0 {
			continue
		}
		if _, assigned := e.assignments[ToVariable(l)]; assigned {
			continue
		}
		if len(set) > maxOccurrences {
			maxOccurrences = len(set)
			bestLiteral = l
		}
	}

	if bestLiteral != 0 {
		return ToVariable(bestLiteral), Sign(bestLiteral)
	}
	invariantViolation("no branch variable found")
	panic("unreachable")
}

// mostVariableOccurrences picks the unassigned variable with the largest
// combined count of both polarities, always branching true first.
func (e *Expression) mostVariableOccurrences() (Variable, bool) {
	maxOccurrences := 0
	var best Variable

	for v := range e.variables {
		if _, assigned := e.assignments[v]; assigned {
			continue
		}
		pos := Literal(v)
		neg := Negate(pos)
		occurrences := len(e.literalToClause[pos]) + len(e.literalToClause[neg])
		if occurrences > maxOccurrences {
			maxOccurrences = occurrences
			best = v
		}
	}

	if best != 0 {
		return best, true
	}
	invariantViolation("no branch variable found")
	panic("unreachable")
}

// minimizeClauseLength runs a lexicographic filter over clause sizes 2, 3,
// 4: at each round it keeps only the unassigned variables achieving the
// maximum H_k score for that clause size, stopping early once a single
// candidate survives.
func (e *Expression) minimizeClauseLength() (Variable, bool) {
	var candidates []Variable
	for v := range e.variables {
		if _, assigned := e.assignments[v]; !assigned {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		invariantViolation("no branch variable found")
	}

	for size := 2; size <= 4; size++ {
		bestScore := 0
		var next []Variable

		for _, v := range candidates {
			pos := Literal(v)
			neg := Negate(pos)
			p := e.countClausesOfLength(pos, size)
			n := e.countClausesOfLength(neg, size)
			score := heuristicAlpha*max(p, n) + heuristicBeta*min(p, n)

			switch {
			case score > bestScore:
				bestScore = score
				next = []Variable{v}
			case score == bestScore:
				next = append(next, v)
			}
		}

		candidates = next
		if len(candidates) == 1 {
			break
		}
	}

	v := candidates[0]
	pos := Literal(v)
	neg := Negate(pos)
	p := len(e.literalToClause[pos])
	n := len(e.literalToClause[neg])
	return v, p > n
}

func (e *Expression) countClausesOfLength(l Literal, size int) int {
	count := 0
	for id := range e.literalToClause[l] {
		if e.clauses[id].Len() == size {
			count++
		}
	}
	return count
}
