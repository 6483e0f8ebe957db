package arena

import "errors"

// ErrExhausted is returned when an allocation would overrun the arena's
// byte budget. Callers that can tolerate a degraded result (island.Build
// can) should roll back to a prior Watermark instead of treating this as
// fatal.
var ErrExhausted = errors.New("arena: allocation would exceed capacity")

// ErrInvalidSize is returned when a negative element count is
// requested. A well-formed caller never triggers this; it exists so
// Alloc* never silently wraps around on a negative length.
var ErrInvalidSize = errors.New("arena: invalid allocation size")
