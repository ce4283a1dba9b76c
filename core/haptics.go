package piano

import "sync"

// hapticSession keeps track of whether the renderer's haptic generators are
// warm and which symphony warmed them.
//
// The lifecycle hooks are called with the session lock held, so WarmHaptics
// and IdleHaptics must not call back into the Piano.
type hapticSession struct {
	mu       sync.Mutex
	renderer Renderer
	warm     bool
	owner    int64
}

// ensureWarm warms the generators for gen unless they already are. A warm
// session is handed over to gen without another WarmHaptics call.
func (h *hapticSession) ensureWarm(gen int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.owner = gen
	if h.warm {
		return
	}
	h.warm = true
	h.renderer.WarmHaptics()
}

// release idles the generators if gen is the symphony that owns them.
func (h *hapticSession) release(gen int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.warm || h.owner != gen {
		return
	}
	h.warm = false
	h.renderer.IdleHaptics()
}

// wrap returns a completion that runs completion and then idles the
// generators warmed for gen.
func (h *hapticSession) wrap(gen int64, completion func()) func() {
	return func() {
		if completion != nil {
			completion()
		}
		h.release(gen)
	}
}
