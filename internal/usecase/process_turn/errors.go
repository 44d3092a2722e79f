package process_turn

import "errors"

var (
	// ErrEmptyInput возвращается, когда текст реплики пуст после trim.
	// Презентационный слой обязан отфильтровать пустой ввод до вызова
	ErrEmptyInput = errors.New("process_turn: empty input text")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_turn: internal error")
)
