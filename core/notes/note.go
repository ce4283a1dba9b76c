package notes

import (
	"fmt"
	"time"
)

type Kind string

const (
	// KindSound identifies an audio cue.
	KindSound Kind = "sound"
	// KindVibration identifies a standard device vibration.
	KindVibration Kind = "vibration"
	// KindTapticPulse identifies a first generation taptic engine pulse.
	KindTapticPulse Kind = "taptic_pulse"
	// KindHapticFeedback identifies second generation haptic feedback.
	KindHapticFeedback Kind = "haptic_feedback"
	// KindWaitUntilFinished identifies a completion barrier.
	KindWaitUntilFinished Kind = "wait_until_finished"
	// KindWait identifies a fixed delay.
	KindWait Kind = "wait"
)

// Note is one playable or structural event of a symphony.
//
// The set of variants is closed: Sound, Vibration, TapticPulse,
// HapticFeedback, WaitUntilFinished and Wait. Notes are plain values and can
// be copied and shared freely.
type Note interface {
	Kind() Kind
	note()
}

// Sound plays audio from Source.
type Sound struct {
	Source Source
}

// NewSound creates a sound note.
func NewSound(source Source) Sound { return Sound{Source: source} }

func (Sound) Kind() Kind { return KindSound }
func (Sound) note()      {}

func (s Sound) String() string {
	if s.Source == nil {
		return "sound(<nil>)"
	}
	return fmt.Sprintf("sound(%s)", s.Source.Name())
}

// Vibration plays one of the standard vibrations available on every device.
type Vibration struct {
	Pattern VibrationPattern
}

// NewVibration creates a vibration note.
func NewVibration(pattern VibrationPattern) Vibration { return Vibration{Pattern: pattern} }

func (Vibration) Kind() Kind       { return KindVibration }
func (Vibration) note()            {}
func (v Vibration) String() string { return fmt.Sprintf("vibration(%s)", v.Pattern) }

// TapticPulse plays a first generation taptic engine pulse.
type TapticPulse struct {
	Pulse TapticPulseKind
}

// NewTapticPulse creates a taptic pulse note.
func NewTapticPulse(pulse TapticPulseKind) TapticPulse { return TapticPulse{Pulse: pulse} }

func (TapticPulse) Kind() Kind       { return KindTapticPulse }
func (TapticPulse) note()            {}
func (t TapticPulse) String() string { return fmt.Sprintf("taptic(%s)", t.Pulse) }

// HapticFeedback plays second generation haptic feedback. Haptic generators
// are warmed before the first one fires.
type HapticFeedback struct {
	Feedback FeedbackKind
}

// NewHapticFeedback creates a haptic feedback note.
func NewHapticFeedback(feedback FeedbackKind) HapticFeedback {
	return HapticFeedback{Feedback: feedback}
}

func (HapticFeedback) Kind() Kind       { return KindHapticFeedback }
func (HapticFeedback) note()            {}
func (h HapticFeedback) String() string { return fmt.Sprintf("haptic(%s)", h.Feedback) }

// WaitUntilFinished holds the rest of the symphony back until the note before
// it has finished rendering.
type WaitUntilFinished struct{}

// NewWaitUntilFinished creates a completion barrier.
func NewWaitUntilFinished() WaitUntilFinished { return WaitUntilFinished{} }

func (WaitUntilFinished) Kind() Kind     { return KindWaitUntilFinished }
func (WaitUntilFinished) note()          {}
func (WaitUntilFinished) String() string { return "wait_until_finished" }

// Wait delays every following note of the same segment by Duration.
type Wait struct {
	Duration time.Duration
}

// NewWait creates a delay note. Negative durations are treated as zero.
func NewWait(duration time.Duration) Wait {
	if duration < 0 {
		duration = 0
	}
	return Wait{Duration: duration}
}

func (Wait) Kind() Kind       { return KindWait }
func (Wait) note()            {}
func (w Wait) String() string { return fmt.Sprintf("wait(%s)", w.Duration) }

// Delay returns the non-negative delay this note adds.
func (w Wait) Delay() time.Duration {
	if w.Duration < 0 {
		return 0
	}
	return w.Duration
}

// IsPlayable reports whether the note is rendered, as opposed to a
// structural Wait or WaitUntilFinished.
func IsPlayable(note Note) bool {
	switch note.(type) {
	case Sound, Vibration, TapticPulse, HapticFeedback:
		return true
	default:
		return false
	}
}

// IsBarrier reports whether the note is a WaitUntilFinished barrier.
func IsBarrier(note Note) bool {
	_, ok := note.(WaitUntilFinished)
	return ok
}

// ContainsHapticFeedback reports whether any note is HapticFeedback.
func ContainsHapticFeedback(symphony []Note) bool {
	for _, note := range symphony {
		if _, ok := note.(HapticFeedback); ok {
			return true
		}
	}
	return false
}
