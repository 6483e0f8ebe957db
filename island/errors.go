// errors.go — sentinel error and panic policy for package island.
//
// Policy, mirrored from lvlath/matrix's documented convention:
//   - The one user-reachable, recoverable condition (spec §7 tier 1,
//     arena exhaustion during allocation) is a package-level sentinel,
//     ErrArenaExhausted, checked via errors.Is.
//   - The four tier-2 conditions (spec §7) cannot happen on well-formed
//     input; they are programmer errors and are signalled by panicking
//     with *InternalError rather than returned as an error value, the
//     same way lvlath/builder's option constructors panic on meaningless
//     input instead of returning one.
package island

import (
	"errors"
	"fmt"
)

// ErrArenaExhausted is returned by Build when an allocation — scratch or
// output — would overrun the arena's byte budget. Build rolls back to its
// entry watermark before returning it; see rollback.go (C6).
var ErrArenaExhausted = errors.New("island: arena exhausted")

// InternalError wraps one of the spec §7 tier-2 invariant violations.
// Build panics with a *InternalError rather than returning one, since by
// construction these can only happen on malformed input the engine's own
// upstream passes should have precluded.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "island: internal error: " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

var (
	errDoubleStaticEdge    = errors.New("edge with both endpoints at the static tree")
	errEdgeBudgetOverflow  = errors.New("edge record count exceeds the estimated budget")
	errIslandCountMismatch = errors.New("DoF-sweep island count disagrees with flood-fill island count")
	errRowHasNoTree        = errors.New("active constraint row's Jacobian incidence names no tree")
)

// fatal panics with an *InternalError wrapping cause, annotated with a
// formatted message. It never returns.
func fatal(cause error, format string, args ...any) {
	panic(&InternalError{Err: fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, args...))})
}
