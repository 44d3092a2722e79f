package process_turn

import "github.com/m04kA/SMC-AssistantService/internal/domain"

// Request модель запроса на обработку одной реплики пользователя
type Request struct {
	SessionID string               // ID сессии (для логирования, на результат не влияет)
	State     domain.DialogueState // состояние диалога до реплики
	Text      string               // текст реплики; ожидается непустым после trim
}

// Response модель результата обработки реплики
type Response struct {
	State   domain.DialogueState // состояние диалога после реплики
	Replies []string             // ответы ассистента, показываются по порядку отдельными сообщениями

	// Confirmed заполняется только на переходе подтверждения брони
	Confirmed *domain.ConfirmedAppointment
}
