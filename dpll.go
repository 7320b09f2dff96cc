package microsat

import "github.com/sirupsen/logrus"

// SolveDPLL runs the classical DPLL procedure against expr: it infers to a
// fixed point (unit propagation, then pure-literal elimination, repeated
// until neither makes progress), checks for a decided outcome, and
// otherwise branches on a heuristically-chosen variable, recursing on each
// polarity with backtracking driven by the action log.
//
// On success the returned Assignment reflects the state at the depth where
// satisfiability was found; the action log is deliberately left
// un-restored in that case so the caller can still read it off expr. On
// failure expr is fully restored to the mark it had on entry.
func SolveDPLL(expr *Expression) (Assignment, bool) {
	mark := expr.GetActionState()

	for expr.IsInferencePossible() {
		for {
			if _, ok := expr.RemoveUnitClause(); !ok {
				break
			}
		}
		if expr.IsUnsatisfiable() {
			expr.RestoreActionState(mark)
			return nil, false
		}
		for {
			if _, ok := expr.RemovePureLiteral(); !ok {
				break
			}
		}
	}

	if expr.IsSatisfied() {
		return expr.ConstructAssignment(), true
	}

	if expr.IsUnsatisfiable() {
		expr.RestoreActionState(mark)
		return nil, false
	}

	branchMark := expr.GetActionState()
	v, value := expr.GetBranchVariable()

	if log.IsLevelEnabled(logrus.TraceLevel) {
		log.WithFields(logrus.Fields{"var": v, "value": value}).Trace("branching: " + expr.debugState())
	}

	expr.BranchVariable(v, value)
	if result, ok := SolveDPLL(expr); ok {
		return result, true
	}

	expr.RestoreActionState(branchMark)
	expr.BranchVariable(v, !value)
	if result, ok := SolveDPLL(expr); ok {
		return result, true
	}

	expr.RestoreActionState(mark)
	return nil, false
}
