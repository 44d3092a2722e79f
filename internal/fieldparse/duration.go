package fieldparse

import (
	"math"
	"regexp"
	"strconv"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

var (
	durationNumberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	hourUnitPattern       = regexp.MustCompile(`(?i)\b(?:hours?|hrs?|h)\b`)
	minuteUnitPattern     = regexp.MustCompile(`(?i)\b(?:minutes?|mins?|m)\b`)
)

// ParseDuration извлекает длительность встречи в минутах из первого числа в
// тексте (целого или десятичного). Возвращает ok=false, если числа нет или
// значение неположительное.
//
// Разрешение единиц:
//   - упомянуты часы и не упомянуты минуты — число умножается на 60;
//   - единица не упомянута вовсе и число не больше domain.BareNumberHoursMax —
//     число трактуется как часы ("2" -> 120);
//   - иначе число трактуется как минуты ("90" -> 90).
//
// Результат округляется до ближайшей целой минуты.
func ParseDuration(text string) (int, bool) {
	numberToken := durationNumberPattern.FindString(text)
	if numberToken == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(numberToken, 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	hasHourUnit := hourUnitPattern.MatchString(text)
	hasMinuteUnit := minuteUnitPattern.MatchString(text)

	switch {
	case hasHourUnit && !hasMinuteUnit:
		value *= 60
	case !hasHourUnit && !hasMinuteUnit && value <= domain.BareNumberHoursMax:
		// Короткое число без единицы скорее означает часы, чем минуты
		value *= 60
	}

	minutes := int(math.Round(value))
	if minutes <= 0 {
		return 0, false
	}

	return minutes, true
}
