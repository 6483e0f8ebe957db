package island

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/islandpart/arena"
)

// rollback implements C6: restore the arena to the watermark taken on
// entry to Build, emit exactly one WarnConstraintBufferFull warning naming
// the arena's current byte budget, and hand back an empty, unset Result.
// It is the single recoverable-error exit used by every allocation call
// site in Build — scratch or output — since the watermark-restore and
// warning are identical regardless of which allocation failed.
func rollback(a *arena.Arena, mark arena.Watermark, cfg *config, span trace.Span) (*Result, error) {
	a.Reset(mark)
	cfg.warn(WarnConstraintBufferFull, a.BudgetBytes())
	span.SetAttributes(attribute.Bool("island.rolled_back", true))
	return &Result{}, ErrArenaExhausted
}
