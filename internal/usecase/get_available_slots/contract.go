package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// Calendar интерфейс календаря доступности (только чтение)
type Calendar interface {
	Dates() []string
	TimesFor(date string) []types.TimeString
	HasDate(date string) bool
}

// Ledger интерфейс журнала подтверждённых бронирований
type Ledger interface {
	TimesForDate(ctx context.Context, date string) []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
