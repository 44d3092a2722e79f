// Package start_session инициализирует новый диалог бронирования: чистое
// состояние машины диалога плюс приветственное сообщение ассистента.
package start_session

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	processTurn "github.com/m04kA/SMC-AssistantService/internal/usecase/process_turn"
)

// UseCase use case создания нового диалога
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute возвращает начальное состояние диалога и приветствие. Приветствие
// эмитится ровно один раз, до приёма первой реплики пользователя.
func (uc *UseCase) Execute(ctx context.Context) *Response {
	uc.logger.Info("StartSession: initializing dialogue state")

	return &Response{
		State:    domain.NewDialogueState(),
		Greeting: processTurn.GreetingMessages(),
	}
}
