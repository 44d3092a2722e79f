package process_turn

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// freeTimesFor возвращает свободные времена на дату: времена календаря минус
// уже занятые в журнале, в порядке календаря
func (uc *UseCase) freeTimesFor(ctx context.Context, date string) []types.TimeString {
	calendarTimes := uc.calendar.TimesFor(date)
	if len(calendarTimes) == 0 {
		return nil
	}

	booked := make(map[types.TimeString]bool)
	for _, t := range uc.ledger.TimesForDate(ctx, date) {
		booked[t] = true
	}

	free := make([]types.TimeString, 0, len(calendarTimes))
	for _, t := range calendarTimes {
		if !booked[t] {
			free = append(free, t)
		}
	}
	return free
}

// findAlternativeSlots подбирает ближайшие свободные слоты вместо занятого.
// Сначала исчерпываются свободные времена запрошенной даты (в порядке
// календаря), затем даты календаря сканируются по возрастанию, пропуская даты
// строго раньше запрошенной, пока не наберётся limit слотов. Результат
// детерминирован: та же дата всегда предпочитается более поздним.
func (uc *UseCase) findAlternativeSlots(ctx context.Context, requestedDate string, limit int) []domain.Slot {
	if limit <= 0 {
		limit = domain.DefaultMaxAlternatives
	}

	alternatives := make([]domain.Slot, 0, limit)
	seen := make(map[domain.Slot]bool)

	add := func(slot domain.Slot) {
		if !seen[slot] {
			seen[slot] = true
			alternatives = append(alternatives, slot)
		}
	}

	// Шаг 1: свободные времена того же дня
	if requestedDate != "" {
		for _, t := range uc.freeTimesFor(ctx, requestedDate) {
			add(domain.Slot{Date: requestedDate, Time: t})
			if len(alternatives) == limit {
				return alternatives
			}
		}
	}

	// Шаг 2: остальные даты по возрастанию, даты раньше запрошенной пропускаются
	// (ISO даты сравниваются как строки)
	for _, date := range uc.calendar.Dates() {
		if requestedDate != "" && date < requestedDate {
			continue
		}
		for _, t := range uc.freeTimesFor(ctx, date) {
			add(domain.Slot{Date: date, Time: t})
			if len(alternatives) == limit {
				return alternatives
			}
		}
	}

	return alternatives
}
