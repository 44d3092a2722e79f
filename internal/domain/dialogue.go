package domain

// DialogueState is the full state of one booking conversation. It is a plain
// value: the turn-processing use case takes the current state and returns the
// next one, so a session owns exactly one instance and no ambient state exists.
type DialogueState struct {
	Step           Step
	Draft          AppointmentDraft
	PendingSlot    *Slot  // slot awaiting explicit yes/no confirmation
	SuggestedSlots []Slot // most recent alternatives shown to the user
}

// NewDialogueState returns the initial state of a fresh conversation.
func NewDialogueState() DialogueState {
	return DialogueState{Step: StepNeedName}
}
