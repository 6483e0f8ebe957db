package island

import (
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// WarnCode identifies a warning kind. Exactly one is defined (spec §6):
// this package emits no other warning.
type WarnCode int32

// WarnConstraintBufferFull is emitted when arena allocation fails and
// Build rolls back to an empty island set.
const WarnConstraintBufferFull WarnCode = 0

// WarnFunc receives a bounded warning naming the arena's current byte
// budget. The host is responsible for making it safe to call from
// whichever goroutine Build happens to run on, per spec §5.
type WarnFunc func(code WarnCode, budgetBytes int64)

// Option configures a Build call.
type Option func(*config)

type config struct {
	warn   WarnFunc
	tracer trace.Tracer
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		warn:   func(WarnCode, int64) {},
		tracer: noop.NewTracerProvider().Tracer("island"),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWarnFunc sets the callback invoked on recoverable allocation
// failure. Panics on nil, the same way lvlath/builder's WithX option
// constructors fail fast on a meaningless argument.
func WithWarnFunc(fn WarnFunc) Option {
	if fn == nil {
		panic("island: WithWarnFunc(nil)")
	}
	return func(c *config) { c.warn = fn }
}

// WithTracerProvider sets the OpenTelemetry tracer provider backing
// Build's diagnostic span. Defaults to a no-op provider, so a caller
// that never wires tracing pays no cost beyond a vtable call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("island: WithTracerProvider(nil)")
	}
	return func(c *config) { c.tracer = tp.Tracer("island") }
}

// Result holds one call's island-discovery outputs (spec §3). The zero
// Result — as returned on the nefc==0 short-circuit and on rollback — has
// NIsland 0 and every slice nil.
type Result struct {
	NIsland int32

	DofIsland     []int32
	DofIslandNext []int32
	EFCIsland     []int32
	EFCIslandNext []int32

	IslandDofAdr []int32
	IslandEFCAdr []int32
}
