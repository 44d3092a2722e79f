package create_session

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
)

// SessionService интерфейс сервиса сессий
type SessionService interface {
	Create(ctx context.Context) (*models.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
