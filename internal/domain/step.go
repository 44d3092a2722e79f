package domain

// Step identifies the current state of the booking dialogue.
type Step string

const (
	StepNeedName     Step = "need-name"
	StepNeedEmail    Step = "need-email"
	StepNeedPurpose  Step = "need-purpose"
	StepNeedDuration Step = "need-duration"
	StepNeedDate     Step = "need-date"
	StepNeedTime     Step = "need-time"
	StepNeedTimezone Step = "need-timezone"
	StepConfirming   Step = "confirming"
	StepConfirmed    Step = "confirmed"
)

// Valid returns true if the step is one of the known dialogue states.
func (s Step) Valid() bool {
	switch s {
	case StepNeedName, StepNeedEmail, StepNeedPurpose, StepNeedDuration,
		StepNeedDate, StepNeedTime, StepNeedTimezone, StepConfirming, StepConfirmed:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the step.
func (s Step) String() string {
	return string(s)
}
