package domain

import "github.com/m04kA/SMC-AssistantService/pkg/types"

// Slot is a bookable point in the calendar. Slots carry no timezone: the
// draft's timezone is a display-only label.
type Slot struct {
	Date string           // ISO date "YYYY-MM-DD"
	Time types.TimeString // "HH:MM", 24-hour
}

// Equal compares slots by structural equality of both fields.
func (s Slot) Equal(other Slot) bool {
	return s.Date == other.Date && s.Time == other.Time
}

// IsZero returns true if neither field is set.
func (s Slot) IsZero() bool {
	return s.Date == "" && s.Time.IsZero()
}
