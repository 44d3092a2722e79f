package get_messages

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	Messages(ctx context.Context, sessionID string) ([]models.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
