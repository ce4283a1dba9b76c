package piano

import (
	"log/slog"
	"time"

	"github.com/koscakluka/piano/core/audio"
	"github.com/koscakluka/piano/core/clock"
	"github.com/koscakluka/piano/core/notes"
)

type PianoOption func(*Piano)

// WithRenderer sets the renderer notes are played through. Nil and typed-nil
// renderers leave the Piano silent: every note completes immediately.
func WithRenderer(renderer Renderer) PianoOption {
	return func(p *Piano) {
		if isNilValue(renderer) {
			p.renderer = silentRenderer{}
			return
		}
		p.renderer = renderer
	}
}

// WithClock replaces the real clock. The Piano does not stop clocks it did
// not create.
func WithClock(clock clock.Clock) PianoOption {
	return func(p *Piano) {
		if clock != nil {
			p.clock = clock
		}
	}
}

func WithLogger(logger *slog.Logger) PianoOption {
	return func(p *Piano) {
		if logger != nil {
			p.logger = logger
		}
	}
}

type RendererOption func(*DefaultRenderer)

// AudioOutput is a PCM sink that can report when playback passes a mark.
// Both the miniaudio and the portaudio clients satisfy it.
type AudioOutput interface {
	EncodingInfo() audio.EncodingInfo
	SendAudio(audio []byte) error
	Mark(mark string, callback func(string)) error
	ClearBuffer()
}

func WithAudioOutput(output AudioOutput) RendererOption {
	return func(r *DefaultRenderer) {
		r.output.Set(output)
	}
}

// HapticDevice performs vibrations, system sounds and haptic feedback. The
// websocket device.Client satisfies it.
type HapticDevice interface {
	Vibrate(id notes.SystemSoundID, done func(error))
	PlaySystemSound(id notes.SystemSoundID, done func(error))
	Haptic(kind notes.FeedbackKind, done func(error))
	Prepare(done func(error))
	Release(done func(error))
}

func WithHapticDevice(device HapticDevice) RendererOption {
	return func(r *DefaultRenderer) {
		if isNilValue(device) {
			r.device = nil
			return
		}
		r.device = device
	}
}

func WithLocator(locator *audio.Locator) RendererOption {
	return func(r *DefaultRenderer) {
		if locator != nil {
			r.locator = locator
		}
	}
}

// WithRendererClock sets the clock used for fixed-duration completions.
func WithRendererClock(clock clock.Clock) RendererOption {
	return func(r *DefaultRenderer) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithVibrationDuration overrides how long the vibration or taptic pulse id
// is considered to be playing.
func WithVibrationDuration(id notes.SystemSoundID, duration time.Duration) RendererOption {
	return func(r *DefaultRenderer) {
		r.vibrationDurations[id] = max(0, duration)
	}
}

// WithHapticDuration overrides how long the feedback kind is considered to
// be playing.
func WithHapticDuration(kind notes.FeedbackKind, duration time.Duration) RendererOption {
	return func(r *DefaultRenderer) {
		r.hapticDurations[kind] = max(0, duration)
	}
}
