package piano

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/koscakluka/piano/core/audio"
	"github.com/koscakluka/piano/core/clock"
	"github.com/koscakluka/piano/core/device"
	"github.com/koscakluka/piano/core/notes"
)

var (
	errNoOutput = errors.New("no audio output configured")
	errNoDevice = errors.New("no haptic device configured")
)

var defaultVibrationDurations = map[notes.SystemSoundID]time.Duration{
	notes.DefaultVibration.ID(): 400 * time.Millisecond,
	notes.AlertVibration.ID():   400 * time.Millisecond,
	notes.Peek.ID():             50 * time.Millisecond,
	notes.Pop.ID():              80 * time.Millisecond,
	notes.Cancelled.ID():        300 * time.Millisecond,
	notes.TryAgain.ID():         300 * time.Millisecond,
	notes.Failed.ID():           400 * time.Millisecond,
}

// fallbackVibrationDuration applies to ids missing from the table.
const fallbackVibrationDuration = 100 * time.Millisecond

var defaultHapticDurations = map[notes.FeedbackKind]time.Duration{
	notes.NotificationSuccess: 250 * time.Millisecond,
	notes.NotificationWarning: 250 * time.Millisecond,
	notes.NotificationFailure: 250 * time.Millisecond,
	notes.ImpactLight:         80 * time.Millisecond,
	notes.ImpactMedium:        100 * time.Millisecond,
	notes.ImpactHeavy:         120 * time.Millisecond,
	notes.Selection:           50 * time.Millisecond,
}

// DefaultRenderer renders sounds through an AudioOutput and everything else
// through a HapticDevice.
//
// Sounds are located, decoded to the output's encoding and finish when the
// output plays past the end of them. Only one sound plays at a time: starting
// a sound interrupts the previous one, which then counts as finished.
// Vibrations, taptic pulses and haptic feedback finish a fixed duration after
// the device has accepted them.
type DefaultRenderer struct {
	output   *audioOutput
	locator  *audio.Locator
	device   HapticDevice
	clock    clock.Clock
	ownClock *clock.Real
	// ownDevice is set when the renderer dialed the device itself.
	ownDevice *device.Client

	vibrationDurations map[notes.SystemSoundID]time.Duration
	hapticDurations    map[notes.FeedbackKind]time.Duration

	mu      sync.Mutex
	session *soundSession
}

// soundSession is one sound between RenderSound and its end mark.
type soundSession struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc

	once sync.Once
	done func(error)
}

func (s *soundSession) finish(err error) {
	s.once.Do(func() {
		s.cancel()
		s.done(err)
	})
}

func NewRenderer(opts ...RendererOption) *DefaultRenderer {
	r := &DefaultRenderer{
		output:             newAudioOutput(nil),
		vibrationDurations: maps.Clone(defaultVibrationDurations),
		hapticDurations:    maps.Clone(defaultHapticDurations),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.locator == nil {
		r.locator = audio.NewLocator()
	}
	if r.clock == nil {
		r.ownClock = clock.NewReal()
		r.clock = r.ownClock
	}

	return r
}

// Close interrupts the playing sound and stops the clock and device the
// renderer created. Outputs and devices passed in as options stay open; they
// belong to the caller.
func (r *DefaultRenderer) Close() error {
	r.Clear()
	if r.ownClock != nil {
		r.ownClock.Stop()
		r.ownClock.AwaitDone()
	}
	if r.ownDevice != nil {
		if err := r.ownDevice.Close(); err != nil {
			return fmt.Errorf("failed to close haptic device: %w", err)
		}
	}
	return nil
}

func (r *DefaultRenderer) RenderSound(source notes.Source, done func(error)) {
	if source == nil {
		done(audio.NotFound("<nil>"))
		return
	}
	if system, ok := source.(notes.System); ok {
		if r.device == nil {
			done(audio.RenderFailed(source.Name(), errNoDevice))
			return
		}
		r.device.PlaySystemSound(system.Sound.ID(), done)
		return
	}

	if !r.output.isConfigured() {
		done(audio.RenderFailed(source.Name(), errNoOutput))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := &soundSession{id: uuid.NewString(), ctx: ctx, cancel: cancel, done: done}

	r.mu.Lock()
	previous := r.session
	r.session = session
	r.mu.Unlock()

	if previous != nil {
		r.output.Clear()
		previous.finish(nil)
	}

	go r.playSound(session, source)
}

func (r *DefaultRenderer) playSound(session *soundSession, source notes.Source) {
	resource, err := r.locator.Locate(session.ctx, source)
	if err != nil {
		r.endSession(session, err)
		return
	}

	encodingInfo := r.output.EncodingInfo()
	pcm, err := audio.Decode(resource, encodingInfo)
	if err != nil {
		r.endSession(session, err)
		return
	}
	logger.Debug("playing sound", "name", resource.Name, "duration", encodingInfo.Duration(pcm))

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session != session {
		// Interrupted while loading.
		return
	}

	if err := r.output.SendAudio(pcm); err != nil {
		r.session = nil
		go session.finish(audio.RenderFailed(source.Name(), err))
		return
	}
	if err := r.output.Mark(session.id, func(string) { r.endSession(session, nil) }); err != nil {
		r.session = nil
		go session.finish(audio.RenderFailed(source.Name(), fmt.Errorf("failed to mark end of sound: %w", err)))
	}
}

func (r *DefaultRenderer) endSession(session *soundSession, err error) {
	r.mu.Lock()
	if r.session == session {
		r.session = nil
	}
	r.mu.Unlock()

	session.finish(err)
}

// Clear interrupts the playing sound and drops buffered audio.
func (r *DefaultRenderer) Clear() {
	r.mu.Lock()
	session := r.session
	r.session = nil
	r.mu.Unlock()

	r.output.Clear()
	if session != nil {
		session.finish(nil)
	}
}

func (r *DefaultRenderer) RenderVibration(id notes.SystemSoundID, done func(error)) {
	if r.device == nil {
		done(audio.RenderFailed(fmt.Sprintf("vibration %d", id), errNoDevice))
		return
	}

	duration, ok := r.vibrationDurations[id]
	if !ok {
		duration = fallbackVibrationDuration
	}
	r.device.Vibrate(id, r.finishAfter(duration, done))
}

func (r *DefaultRenderer) RenderHapticFeedback(kind notes.FeedbackKind, done func(error)) {
	if r.device == nil {
		done(audio.RenderFailed(kind.String(), errNoDevice))
		return
	}

	r.device.Haptic(kind, r.finishAfter(r.hapticDurations[kind], done))
}

func (r *DefaultRenderer) WarmHaptics() {
	if r.device == nil {
		return
	}
	r.device.Prepare(func(err error) {
		if err != nil {
			logger.Warn("failed to warm haptics", "error", err)
		}
	})
}

func (r *DefaultRenderer) IdleHaptics() {
	if r.device == nil {
		return
	}
	r.device.Release(func(err error) {
		if err != nil {
			logger.Warn("failed to idle haptics", "error", err)
		}
	})
}

// finishAfter returns a device callback that completes done once duration
// has passed after the device accepted the command.
func (r *DefaultRenderer) finishAfter(duration time.Duration, done func(error)) func(error) {
	return func(err error) {
		if err != nil {
			done(err)
			return
		}
		r.clock.AfterFunc(duration, func() { done(nil) })
	}
}
