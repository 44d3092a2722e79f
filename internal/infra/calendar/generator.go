// Package calendar строит календарь доступности: фиксированное окно будущих
// рабочих дней, каждому дню назначается один и тот же список канонических
// времён. Календарь генерируется один раз при старте сервиса и далее не
// изменяется.
package calendar

import (
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// Generator генератор календаря доступности
type Generator struct {
	horizonBusinessDays int
	dailyTimes          []types.TimeString
}

// NewGenerator создает генератор. Нулевые параметры заменяются значениями по
// умолчанию (domain.DefaultHorizonBusinessDays, domain.DefaultDailySlotTimes).
func NewGenerator(horizonBusinessDays int, dailyTimes []types.TimeString) *Generator {
	if horizonBusinessDays <= 0 {
		horizonBusinessDays = domain.DefaultHorizonBusinessDays
	}
	if len(dailyTimes) == 0 {
		dailyTimes = domain.DefaultDailySlotTimes
	}
	return &Generator{
		horizonBusinessDays: horizonBusinessDays,
		dailyTimes:          append([]types.TimeString(nil), dailyTimes...),
	}
}

// Generate строит календарь на ближайшие horizonBusinessDays рабочих дней
// начиная с today (выходные пропускаются, сегодняшний день включается, если
// он рабочий). Для фиксированного today результат детерминирован.
func (g *Generator) Generate(today time.Time) *domain.AvailabilityCalendar {
	days := make(map[string][]types.TimeString, g.horizonBusinessDays)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for added := 0; added < g.horizonBusinessDays; day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		days[day.Format(domain.DateFormat)] = append([]types.TimeString(nil), g.dailyTimes...)
		added++
	}

	return domain.NewAvailabilityCalendar(days)
}
