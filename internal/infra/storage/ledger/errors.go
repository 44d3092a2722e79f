package ledger

import "errors"

var (
	// ErrSlotTaken возвращается при попытке добавить бронь на уже занятый слот
	ErrSlotTaken = errors.New("ledger.repository: slot already booked")
)
