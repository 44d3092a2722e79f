package get_available_slots

import "github.com/m04kA/SMC-AssistantService/pkg/types"

// Request модель запроса доступных слотов
type Request struct {
	Date *string // ISO дата; nil — всё окно календаря
}

// Response модель ответа со свободными слотами по дням
type Response struct {
	Days []Day
}

// Day свободные времена одного дня в порядке календаря
type Day struct {
	Date  string
	Times []types.TimeString
}
