package start_session

import "github.com/m04kA/SMC-AssistantService/internal/domain"

// Response модель результата создания диалога
type Response struct {
	State    domain.DialogueState // начальное состояние (need-name, пустой черновик)
	Greeting []string             // приветствие ассистента, ровно до первой реплики пользователя
}
