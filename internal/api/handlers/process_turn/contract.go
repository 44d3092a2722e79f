package process_turn

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	ProcessTurn(ctx context.Context, sessionID, text string) (*models.TurnResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
