package piano

import (
	"reflect"

	"github.com/koscakluka/piano/core/notes"
)

// Renderer performs notes on the host's audio and haptic hardware.
//
// Every Render call must eventually call done exactly once, with a non-nil
// error when playback could not be constructed or failed midway. done may be
// called from any goroutine, including synchronously from within the Render
// call. A renderer that never calls done stalls the branch waiting on it.
type Renderer interface {
	RenderSound(source notes.Source, done func(error))
	// RenderVibration plays a standard vibration or a taptic pulse.
	RenderVibration(id notes.SystemSoundID, done func(error))
	RenderHapticFeedback(kind notes.FeedbackKind, done func(error))

	// WarmHaptics prepares the haptic generators so the first feedback
	// plays without latency. IdleHaptics lets them sleep again.
	WarmHaptics()
	IdleHaptics()
}

// RendererWithClear is implemented by renderers that hold on to buffered
// output. Clear drops it when the symphony that produced it is superseded or
// cancelled; pending done callbacks may be dropped too.
type RendererWithClear interface {
	Renderer
	Clear()
}

// silentRenderer completes every note immediately. It stands in when a Piano
// is created without a renderer.
type silentRenderer struct{}

func (silentRenderer) RenderSound(_ notes.Source, done func(error))            { done(nil) }
func (silentRenderer) RenderVibration(_ notes.SystemSoundID, done func(error)) { done(nil) }
func (silentRenderer) RenderHapticFeedback(_ notes.FeedbackKind, done func(error)) {
	done(nil)
}
func (silentRenderer) WarmHaptics() {}
func (silentRenderer) IdleHaptics() {}

// isNilValue detects nil and typed-nil interface values so options do not
// store unusable wrappers as configured clients.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// render dispatches note to the matching Renderer call.
func render(renderer Renderer, note notes.Note, done func(error)) {
	switch n := note.(type) {
	case notes.Sound:
		renderer.RenderSound(n.Source, done)
	case notes.Vibration:
		renderer.RenderVibration(n.Pattern.ID(), done)
	case notes.TapticPulse:
		renderer.RenderVibration(n.Pulse.ID(), done)
	case notes.HapticFeedback:
		renderer.RenderHapticFeedback(n.Feedback, done)
	case notes.Wait, notes.WaitUntilFinished:
		done(nil)
	default:
		done(errUnsupportedNote(note))
	}
}
