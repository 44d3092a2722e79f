package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	processTurn "github.com/m04kA/SMC-AssistantService/internal/usecase/process_turn"
	startSession "github.com/m04kA/SMC-AssistantService/internal/usecase/start_session"
)

// StartSessionUseCase интерфейс use case создания диалога
type StartSessionUseCase interface {
	Execute(ctx context.Context) *startSession.Response
}

// ProcessTurnUseCase интерфейс use case обработки реплики
type ProcessTurnUseCase interface {
	Execute(ctx context.Context, req *processTurn.Request) (*processTurn.Response, error)
}

// LedgerReader интерфейс чтения журнала бронирований
type LedgerReader interface {
	List(ctx context.Context) []domain.ConfirmedAppointment
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
