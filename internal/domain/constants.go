package domain

import "github.com/m04kA/SMC-AssistantService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default scheduling parameters
const (
	DefaultHorizonBusinessDays = 21
	DefaultMaxAlternatives     = 3
)

// DefaultDailySlotTimes is the canonical per-day slot list offered on every
// business day of the availability window.
var DefaultDailySlotTimes = []types.TimeString{"09:00", "11:30", "14:00", "16:00"}

// Parsing heuristics. These are deliberately lossy and documented as such:
// changing them changes observable dialogue behavior.
const (
	// MinNameLength is the minimum accepted name length in runes.
	MinNameLength = 2

	// BareNumberHoursMax: a duration given as a bare number without a unit
	// is read as hours when it does not exceed this value ("2" -> 120 min),
	// and as minutes otherwise ("90" -> 90 min).
	BareNumberHoursMax = 6

	// AfternoonHourCutoff: a time given without an am/pm marker and with an
	// hour below this value is assumed to mean the afternoon/evening
	// ("2" -> 14:00, never 02:00).
	AfternoonHourCutoff = 8
)
