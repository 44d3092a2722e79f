package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AssistantService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Days []Day `json:"days"`
}

// Day свободные времена одного дня
type Day struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		times := make([]string, len(day.Times))
		for j, t := range day.Times {
			times[j] = t.String()
		}
		days[i] = Day{Date: day.Date, Times: times}
	}
	return &AvailableSlotsResponse{Days: days}
}
