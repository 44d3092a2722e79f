package domain

import (
	"sort"

	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// AvailabilityCalendar maps ISO dates to the ordered list of bookable times
// for that date. Generated once at service start and immutable afterwards:
// read-only sharing between sessions needs no locking.
type AvailabilityCalendar struct {
	days  map[string][]types.TimeString
	dates []string // ascending ISO order
}

// NewAvailabilityCalendar builds a calendar from a date -> times mapping.
// The mapping is copied; per-day time order is preserved.
func NewAvailabilityCalendar(days map[string][]types.TimeString) *AvailabilityCalendar {
	copied := make(map[string][]types.TimeString, len(days))
	dates := make([]string, 0, len(days))
	for date, times := range days {
		copied[date] = append([]types.TimeString(nil), times...)
		dates = append(dates, date)
	}
	// ISO dates sort chronologically as plain strings
	sort.Strings(dates)

	return &AvailabilityCalendar{days: copied, dates: dates}
}

// Dates returns all calendar dates in ascending order. Callers must not
// mutate the returned slice.
func (c *AvailabilityCalendar) Dates() []string {
	return c.dates
}

// TimesFor returns the bookable times for a date in calendar order, or nil
// if the date is not part of the calendar. Callers must not mutate the
// returned slice.
func (c *AvailabilityCalendar) TimesFor(date string) []types.TimeString {
	return c.days[date]
}

// HasDate returns true if the date is part of the calendar.
func (c *AvailabilityCalendar) HasDate(date string) bool {
	_, ok := c.days[date]
	return ok
}

// Len returns the number of calendar days.
func (c *AvailabilityCalendar) Len() int {
	return len(c.days)
}
