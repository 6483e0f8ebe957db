// Package arena provides a minimal bump allocator over a fixed byte
// budget, standing in for the engine's per-step arena that island.Build
// allocates its scratch and output tables from. Each allocation is an
// ordinary Go slice whose size is charged against the budget; there is no
// preallocated backing buffer.
//
// The budget never grows: once it is used up, further allocations return
// ErrExhausted so callers can exercise the recoverable rollback path (see
// island's arena-rollback component) instead of panicking. Mark/Reset give callers
// a watermark they can checkpoint and restore, mirroring how a bump arena
// is rewound between simulation steps.
package arena
