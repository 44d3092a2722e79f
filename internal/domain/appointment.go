package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// AppointmentDraft is the partially filled booking record owned by the
// dialogue state machine. Fields are populated strictly in step order; an
// empty string (or zero duration) means "not collected yet".
type AppointmentDraft struct {
	Name            string
	Email           string
	Purpose         string
	DurationMinutes int
	PreferredDate   string           // ISO date "YYYY-MM-DD"
	PreferredTime   types.TimeString // "HH:MM", 24-hour
	Timezone        string           // free-text label, never converted
}

// HasSchedule returns true if both the preferred date and time are set.
func (d *AppointmentDraft) HasSchedule() bool {
	return d.PreferredDate != "" && !d.PreferredTime.IsZero()
}

// Reset clears every collected field, preparing the draft for a new booking.
func (d *AppointmentDraft) Reset() {
	*d = AppointmentDraft{}
}

// ConfirmedAppointment is a finalized booking. Never mutated after creation.
type ConfirmedAppointment struct {
	Name            string
	Email           string
	Purpose         string
	DurationMinutes int
	Timezone        string
	Slot            Slot
	Summary         string // human-readable slot rendering shown at confirmation
	ConfirmedAt     time.Time
}

// Key returns the identity of the appointment for display/dedup purposes.
func (a *ConfirmedAppointment) Key() string {
	return fmt.Sprintf("%s|%s|%s", a.Slot.Date, a.Slot.Time, a.Email)
}
