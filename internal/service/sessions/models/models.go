package models

import (
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// Отправители сообщений в транскрипте
const (
	SenderAssistant = "assistant"
	SenderUser      = "user"
)

// Message одно сообщение транскрипта. Идентификатор и отметка времени
// назначаются презентационным слоем; ядро диалога их не читает.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResponse ответ на создание сессии
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Step      string    `json:"step"`
	Messages  []Message `json:"messages"`
}

// TurnResponse ответ на обработку реплики
type TurnResponse struct {
	Step    string   `json:"step"`
	Replies []string `json:"replies"`
	// Messages содержит сообщения, добавленные этой репликой (реплика
	// пользователя и ответы ассистента), в порядке добавления
	Messages []Message `json:"messages"`
}

// AppointmentResponse подтверждённая бронь для бокового списка
type AppointmentResponse struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Purpose         string    `json:"purpose"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Timezone        string    `json:"timezone,omitempty"`
	Summary         string    `json:"summary"`
	ConfirmedAt     time.Time `json:"confirmedAt"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a domain.ConfirmedAppointment) AppointmentResponse {
	return AppointmentResponse{
		Name:            a.Name,
		Email:           a.Email,
		Purpose:         a.Purpose,
		DurationMinutes: a.DurationMinutes,
		Date:            a.Slot.Date,
		Time:            a.Slot.Time.String(),
		Timezone:        a.Timezone,
		Summary:         a.Summary,
		ConfirmedAt:     a.ConfirmedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей
func FromDomainAppointmentList(appointments []domain.ConfirmedAppointment) []AppointmentResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}
	return result
}
