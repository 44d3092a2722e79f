// Package ledger хранит журнал подтверждённых бронирований. Журнал строго
// append-only: путей обновления или удаления нет, поэтому помимо мьютекса
// никакой транзакционной дисциплины не требуется. Данные живут в памяти в
// пределах жизни процесса.
package ledger

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

// Repository репозиторий журнала бронирований
type Repository struct {
	mu           sync.RWMutex
	appointments []domain.ConfirmedAppointment
}

// NewRepository создает пустой журнал
func NewRepository() *Repository {
	return &Repository{}
}

// Append добавляет подтверждённую бронь в конец журнала.
// Возвращает ErrSlotTaken, если слот уже занят — защита от гонки двух сессий,
// подтверждающих один слот одновременно.
func (r *Repository) Append(ctx context.Context, appointment domain.ConfirmedAppointment) (domain.ConfirmedAppointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].Slot.Equal(appointment.Slot) {
			return domain.ConfirmedAppointment{}, ErrSlotTaken
		}
	}

	r.appointments = append(r.appointments, appointment)
	return appointment, nil
}

// List возвращает все брони в порядке подтверждения (confirmationTime по
// возрастанию — журнал append-only, порядок вставки совпадает с порядком
// подтверждения)
func (r *Repository) List(ctx context.Context) []domain.ConfirmedAppointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.ConfirmedAppointment(nil), r.appointments...)
}

// TimesForDate возвращает занятые времена на указанную дату
func (r *Repository) TimesForDate(ctx context.Context, date string) []types.TimeString {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var times []types.TimeString
	for i := range r.appointments {
		if r.appointments[i].Slot.Date == date {
			times = append(times, r.appointments[i].Slot.Time)
		}
	}
	return times
}

// IsBooked возвращает true, если слот уже занят
func (r *Repository) IsBooked(ctx context.Context, slot domain.Slot) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appointments {
		if r.appointments[i].Slot.Equal(slot) {
			return true
		}
	}
	return false
}

// Len возвращает количество броней в журнале
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appointments)
}
