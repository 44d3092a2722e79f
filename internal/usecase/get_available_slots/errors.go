package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_available_slots: invalid date format")

	// ErrDateOutOfRange возвращается, когда дата вне окна календаря
	ErrDateOutOfRange = errors.New("get_available_slots: date is outside the booking window")
)
