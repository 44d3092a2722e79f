package process_turn

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// Calendar интерфейс календаря доступности (только чтение)
type Calendar interface {
	// Dates возвращает все даты календаря по возрастанию
	Dates() []string
	// TimesFor возвращает времена дня для даты в порядке календаря
	TimesFor(date string) []types.TimeString
	// HasDate сообщает, входит ли дата в окно календаря
	HasDate(date string) bool
}

// Ledger интерфейс журнала подтверждённых бронирований
type Ledger interface {
	Append(ctx context.Context, appointment domain.ConfirmedAppointment) (domain.ConfirmedAppointment, error)
	TimesForDate(ctx context.Context, date string) []types.TimeString
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
