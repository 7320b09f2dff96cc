package microsat

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// solveResult is one worker's answer, sent over the portfolio's completion
// channel.
type solveResult struct {
	assignment Assignment
	ok         bool
}

// Solve races up to two independent DPLL searches over clones of expr and
// returns whichever finishes first. The MostLiteralOccurrences heuristic
// always runs; MinimizeClauseLength additionally runs when
// useMultipleThreads is set. expr itself is never mutated: it is cloned
// once per worker and retained read-only by the coordinator so that verify
// (when requested) checks the untouched original.
//
// There is no cooperative cancellation: a losing worker keeps running to
// completion after the race is decided. A worker goroutine is supervised
// by an errgroup so a panic deep inside the engine (an invariant
// violation) is recovered and, if it happens before any worker has
// answered, re-raised from the coordinator instead of terminating the
// process from an unsupervised goroutine; a panic in a losing worker after
// the race is decided is logged.
func Solve(expr *Expression, useMultipleThreads, verify bool) (Assignment, bool) {
	results := make(chan solveResult, 2)
	failures := make(chan error, 2)

	var g errgroup.Group
	spawn := func(heuristic SolverHeuristic) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("microsat: portfolio worker (heuristic=%v) panicked: %v", heuristic, r)
					failures <- err
				}
			}()

			worker := expr.Clone()
			worker.SetHeuristic(heuristic)
			worker.Optimize()

			assignment, ok := SolveDPLL(worker)
			log.WithFields(logrus.Fields{
				"heuristic": heuristic,
				"sat":       ok,
			}).Debug("portfolio worker finished")

			results <- solveResult{assignment: assignment, ok: ok}
			return nil
		})
	}

	spawn(MostLiteralOccurrences)
	if useMultipleThreads {
		spawn(MinimizeClauseLength)
	}

	var result solveResult
	select {
	case result = <-results:
	case err := <-failures:
		panic(err)
	}

	// The loser (if any) keeps running; supervise it asynchronously so a
	// panic surfaces instead of vanishing in a detached goroutine.
	go func() {
		if err := g.Wait(); err != nil {
			log.WithError(err).Error("portfolio worker failed after race was decided")
		}
	}()

	if result.ok && verify {
		if !Verify(expr, result.assignment) {
			panic("microsat: portfolio returned an assignment that failed verification")
		}
	}

	return result.assignment, result.ok
}
