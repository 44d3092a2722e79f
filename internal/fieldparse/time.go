package fieldparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// timePattern ищет H[:MM] с необязательным маркером am/pm (с точками или без)
var timePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?`)

// ParseTime извлекает время дня из текста и нормализует его в 24-часовой
// формат "HH:MM". Возвращает ok=false, если время не распознано.
//
// Правила разрешения:
//   - час > 24 или минуты >= 60 — отказ;
//   - "pm" при часе < 12 добавляет 12; "am" при часе 12 даёт 0;
//   - без маркера am/pm час меньше domain.AfternoonHourCutoff трактуется как
//     время после полудня ("2" -> 14:00, а не 02:00);
//   - итог >= 24:00 — отказ.
func ParseTime(text string) (types.TimeString, bool) {
	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return "", false
	}

	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil {
			return "", false
		}
	}

	if hour > 24 || minute >= 60 {
		return "", false
	}

	meridiem := strings.ToLower(strings.ReplaceAll(match[3], ".", ""))
	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		if hour < domain.AfternoonHourCutoff {
			hour += 12
		}
	}

	if hour >= 24 {
		return "", false
	}

	return types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), true
}
