package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions.service: session not found")

	// ErrEmptyText возвращается на пустую реплику; презентационный слой
	// отклоняет такой ввод до вызова ядра диалога
	ErrEmptyText = errors.New("sessions.service: empty turn text")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions.service: internal error")
)
