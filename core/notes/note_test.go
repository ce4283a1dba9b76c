package notes

import (
	"testing"
	"time"
)

func TestConstructorsReportExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		note     Note
		expected Kind
		playable bool
	}{
		{name: "sound", note: NewSound(System{Sound: SoundTink}), expected: KindSound, playable: true},
		{name: "vibration", note: NewVibration(DefaultVibration), expected: KindVibration, playable: true},
		{name: "taptic pulse", note: NewTapticPulse(Peek), expected: KindTapticPulse, playable: true},
		{name: "haptic feedback", note: NewHapticFeedback(ImpactHeavy), expected: KindHapticFeedback, playable: true},
		{name: "barrier", note: NewWaitUntilFinished(), expected: KindWaitUntilFinished},
		{name: "wait", note: NewWait(time.Second), expected: KindWait},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.note.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
			if got := IsPlayable(testCase.note); got != testCase.playable {
				t.Fatalf("expected playable=%t, got %t", testCase.playable, got)
			}
		})
	}
}

func TestNewWaitClampsNegativeDurations(t *testing.T) {
	if got := NewWait(-time.Second).Duration; got != 0 {
		t.Fatalf("expected negative wait to clamp to 0, got %s", got)
	}
	if got := (Wait{Duration: -time.Second}).Delay(); got != 0 {
		t.Fatalf("expected literal negative wait to delay 0, got %s", got)
	}
}

func TestSourceNames(t *testing.T) {
	testCases := []struct {
		source   Source
		expected string
	}{
		{source: Asset{AssetName: "chime"}, expected: "chime"},
		{source: File{FileName: "chime", Type: AudioTypeMP3}, expected: "chime.mp3"},
		{source: File{FileName: "chime", Type: AudioTypeOther}, expected: "chime"},
		{source: URL{URL: "https://example.com/sounds/chime.wav?v=2"}, expected: "chime.wav"},
		{source: System{Sound: SoundTockQuiet}, expected: "tockQuiet"},
	}

	for _, testCase := range testCases {
		if got := testCase.source.Name(); got != testCase.expected {
			t.Fatalf("expected name %q, got %q", testCase.expected, got)
		}
	}
}

func TestParseAudioType(t *testing.T) {
	if got := ParseAudioType(".wav"); got != AudioTypeWAV {
		t.Fatalf("expected wav, got %q", got)
	}
	if got := ParseAudioType("bwf").Container(); got != AudioTypeWAV {
		t.Fatalf("expected bwf to share the wav container, got %q", got)
	}
	if got := ParseAudioType("flac"); got != AudioTypeOther {
		t.Fatalf("expected unknown extension to map to other, got %q", got)
	}
}

func TestFeedbackFamilies(t *testing.T) {
	if NotificationWarning.Family() != FeedbackFamilyNotification {
		t.Fatalf("expected warning to be a notification")
	}
	if ImpactMedium.Family() != FeedbackFamilyImpact {
		t.Fatalf("expected medium to be an impact")
	}
	if Selection.Family() != FeedbackFamilySelection {
		t.Fatalf("expected selection family")
	}
}

func TestContainsHapticFeedback(t *testing.T) {
	if ContainsHapticFeedback([]Note{NewVibration(AlertVibration), NewWait(time.Second)}) {
		t.Fatalf("expected no haptic feedback")
	}
	if !ContainsHapticFeedback([]Note{NewWait(time.Second), NewHapticFeedback(Selection)}) {
		t.Fatalf("expected haptic feedback to be found")
	}
}
