package microsat

import "fmt"

// invariantViolation panics with a diagnostic naming the violated
// invariant. Encountering one means the engine's bookkeeping has diverged
// from the action log it is supposed to mirror exactly — a bug, not a
// recoverable condition.
func invariantViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("microsat: invariant violation: "+format, args...))
}
