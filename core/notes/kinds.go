package notes

// VibrationPattern is a standard vibration available on every device.
type VibrationPattern SystemSoundID

const (
	// DefaultVibration is the basic one second vibration.
	DefaultVibration VibrationPattern = 4095
	// AlertVibration is two short consecutive vibrations.
	AlertVibration VibrationPattern = 1011
)

func (v VibrationPattern) ID() SystemSoundID { return SystemSoundID(v) }

func (v VibrationPattern) String() string {
	switch v {
	case DefaultVibration:
		return "default"
	case AlertVibration:
		return "alert"
	}
	return "unknown"
}

// TapticPulseKind is a first generation taptic engine pulse.
type TapticPulseKind SystemSoundID

const (
	// Peek is a weak boom.
	Peek TapticPulseKind = 1519
	// Pop is a strong boom.
	Pop TapticPulseKind = 1520
	// Cancelled is three sequential weak booms.
	Cancelled TapticPulseKind = 1521
	// TryAgain is a weak boom followed by a strong boom.
	TryAgain TapticPulseKind = 1102
	// Failed is three sequential strong booms.
	Failed TapticPulseKind = 1107
)

func (t TapticPulseKind) ID() SystemSoundID { return SystemSoundID(t) }

func (t TapticPulseKind) String() string {
	switch t {
	case Peek:
		return "peek"
	case Pop:
		return "pop"
	case Cancelled:
		return "cancelled"
	case TryAgain:
		return "try_again"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FeedbackKind is a second generation haptic feedback.
type FeedbackKind int

const (
	// NotificationSuccess indicates that a task or action has completed.
	NotificationSuccess FeedbackKind = iota + 1
	// NotificationWarning indicates that a task or action produced a warning.
	NotificationWarning
	// NotificationFailure indicates that a task or action has failed.
	NotificationFailure
	// ImpactLight is a collision between small, light elements.
	ImpactLight
	// ImpactMedium is a collision between moderately sized elements.
	ImpactMedium
	// ImpactHeavy is a collision between large, heavy elements.
	ImpactHeavy
	// Selection indicates that a selection is actively changing.
	Selection
)

// FeedbackFamily groups feedback kinds that share one haptic generator.
type FeedbackFamily string

const (
	FeedbackFamilyNotification FeedbackFamily = "notification"
	FeedbackFamilyImpact       FeedbackFamily = "impact"
	FeedbackFamilySelection    FeedbackFamily = "selection"
)

func (f FeedbackKind) Family() FeedbackFamily {
	switch f {
	case NotificationSuccess, NotificationWarning, NotificationFailure:
		return FeedbackFamilyNotification
	case ImpactLight, ImpactMedium, ImpactHeavy:
		return FeedbackFamilyImpact
	case Selection:
		return FeedbackFamilySelection
	}
	return ""
}

func (f FeedbackKind) String() string {
	switch f {
	case NotificationSuccess:
		return "notification_success"
	case NotificationWarning:
		return "notification_warning"
	case NotificationFailure:
		return "notification_failure"
	case ImpactLight:
		return "impact_light"
	case ImpactMedium:
		return "impact_medium"
	case ImpactHeavy:
		return "impact_heavy"
	case Selection:
		return "selection"
	}
	return "unknown"
}
