// Package get_available_slots отдаёт свободные слоты: времена календаря
// доступности за вычетом уже занятых в журнале бронирований.
package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// UseCase use case получения свободных слотов
type UseCase struct {
	calendar Calendar
	ledger   Ledger
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar Calendar, ledger Ledger, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		ledger:   ledger,
		logger:   logger,
	}
}

// Execute возвращает свободные слоты. С указанной датой — только этот день
// (дата обязана попадать в окно календаря); без даты — всё окно, включая дни
// без свободных времён.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date != nil {
		date := *req.Date
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			uc.logger.Warn("GetAvailableSlots: invalid date %q", date)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		if !uc.calendar.HasDate(date) {
			uc.logger.Warn("GetAvailableSlots: date %s outside booking window", date)
			return nil, ErrDateOutOfRange
		}

		uc.logger.Info("GetAvailableSlots: date=%s", date)
		return &Response{Days: []Day{{Date: date, Times: uc.freeTimesFor(ctx, date)}}}, nil
	}

	dates := uc.calendar.Dates()
	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, Day{Date: date, Times: uc.freeTimesFor(ctx, date)})
	}

	uc.logger.Info("GetAvailableSlots: full window, %d days", len(days))
	return &Response{Days: days}, nil
}

// freeTimesFor возвращает времена календаря за вычетом занятых
func (uc *UseCase) freeTimesFor(ctx context.Context, date string) []types.TimeString {
	booked := make(map[types.TimeString]bool)
	for _, t := range uc.ledger.TimesForDate(ctx, date) {
		booked[t] = true
	}

	calendarTimes := uc.calendar.TimesFor(date)
	free := make([]types.TimeString, 0, len(calendarTimes))
	for _, t := range calendarTimes {
		if !booked[t] {
			free = append(free, t)
		}
	}
	return free
}
