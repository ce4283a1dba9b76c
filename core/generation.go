package piano

import "sync/atomic"

// generation is a monotonic counter that tells continuations whether the
// symphony they belong to is still the one being played.
//
// A continuation captures Current() when it is scheduled. If the value no
// longer matches when it fires, the continuation is dropped without any side
// effect.
type generation struct {
	seq atomic.Int64
}

// Bump advances the generation and returns the new value.
func (g *generation) Bump() int64 {
	return g.seq.Add(1)
}

// Current returns the latest generation without advancing it.
func (g *generation) Current() int64 {
	return g.seq.Load()
}

// IsCurrent reports whether captured is still the latest generation.
func (g *generation) IsCurrent(captured int64) bool {
	return g.seq.Load() == captured
}
