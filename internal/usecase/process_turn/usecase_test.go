package process_turn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-AssistantService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Понедельник, начало тестового окна
var testToday = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func testCalendar() *domain.AvailabilityCalendar {
	times := []types.TimeString{"09:00", "11:30", "14:00", "16:00"}
	return domain.NewAvailabilityCalendar(map[string][]types.TimeString{
		"2026-03-05": times,
		"2026-03-06": times,
		"2026-03-09": times,
	})
}

func newTestUseCase(t *testing.T, ledger *ledgerRepo.Repository) *UseCase {
	t.Helper()
	uc := NewUseCase(testCalendar(), ledger, 3, nopLogger{})
	uc.timeProvider = fixedClock{now: testToday}
	return uc
}

func turn(t *testing.T, uc *UseCase, state domain.DialogueState, text string) *Response {
	t.Helper()
	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "test-session",
		State:     state,
		Text:      text,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

func TestUseCase_Execute_EmptyInput(t *testing.T) {
	uc := newTestUseCase(t, ledgerRepo.NewRepository())

	_, err := uc.Execute(context.Background(), &Request{
		State: domain.NewDialogueState(),
		Text:  "   ",
	})

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestUseCase_Execute_HappyPath(t *testing.T) {
	ledger := ledgerRepo.NewRepository()
	uc := newTestUseCase(t, ledger)

	state := domain.NewDialogueState()

	// Имя
	resp := turn(t, uc, state, "jane doe")
	assert.Equal(t, domain.StepNeedEmail, resp.State.Step)
	assert.Equal(t, "Jane Doe", resp.State.Draft.Name)
	require.Len(t, resp.Replies, 1)
	assert.Contains(t, resp.Replies[0], "Jane")

	// Email извлекается из свободного текста и нормализуется
	resp = turn(t, uc, resp.State, "reach me at JANE@Example.com please")
	assert.Equal(t, domain.StepNeedPurpose, resp.State.Step)
	assert.Equal(t, "jane@example.com", resp.State.Draft.Email)

	// Цель принимается как есть
	resp = turn(t, uc, resp.State, "project kickoff")
	assert.Equal(t, domain.StepNeedDuration, resp.State.Step)
	assert.Equal(t, "project kickoff", resp.State.Draft.Purpose)

	// Длительность
	resp = turn(t, uc, resp.State, "1 hour")
	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	assert.Equal(t, 60, resp.State.Draft.DurationMinutes)

	// Дата без года достраивается из текущего
	resp = turn(t, uc, resp.State, "March 5")
	assert.Equal(t, domain.StepNeedTime, resp.State.Step)
	assert.Equal(t, "2026-03-05", resp.State.Draft.PreferredDate)

	// Короткое число трактуется как послеполуденное время
	resp = turn(t, uc, resp.State, "2")
	assert.Equal(t, domain.StepNeedTimezone, resp.State.Step)
	assert.Equal(t, types.TimeString("14:00"), resp.State.Draft.PreferredTime)

	// Таймзона — свободный текст; слот свободен, показывается сводка
	resp = turn(t, uc, resp.State, "CET")
	assert.Equal(t, domain.StepConfirming, resp.State.Step)
	require.NotNil(t, resp.State.PendingSlot)
	assert.Equal(t, domain.Slot{Date: "2026-03-05", Time: "14:00"}, *resp.State.PendingSlot)
	require.Len(t, resp.Replies, 3)
	assert.Contains(t, resp.Replies[1], "Jane Doe")
	assert.Contains(t, resp.Replies[1], "jane@example.com")
	assert.Contains(t, resp.Replies[1], "project kickoff")
	assert.Contains(t, resp.Replies[1], "60 minutes")
	assert.Contains(t, resp.Replies[1], "Thursday, March 5 at 2:00 PM (CET)")

	// Подтверждение фиксирует бронь
	resp = turn(t, uc, resp.State, "yes")
	assert.Equal(t, domain.StepConfirmed, resp.State.Step)
	require.NotNil(t, resp.Confirmed)
	assert.Equal(t, domain.Slot{Date: "2026-03-05", Time: "14:00"}, resp.Confirmed.Slot)
	assert.Equal(t, "jane@example.com", resp.Confirmed.Email)
	assert.Equal(t, testToday, resp.Confirmed.ConfirmedAt)
	assert.Equal(t, 1, ledger.Len())

	// Черновик сброшен
	assert.Equal(t, domain.AppointmentDraft{}, resp.State.Draft)
	assert.Nil(t, resp.State.PendingSlot)

	// Следующая реплика начинает новый цикл с имени
	resp = turn(t, uc, resp.State, "hello again")
	assert.Equal(t, domain.StepNeedName, resp.State.Step)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, promptName, resp.Replies[0])
}

func TestUseCase_Execute_RetryInPlace(t *testing.T) {
	tests := []struct {
		name      string
		step      domain.Step
		input     string
		wantReply string
	}{
		{
			name:      "name too short",
			step:      domain.StepNeedName,
			input:     "j",
			wantReply: retryName,
		},
		{
			name:      "no email in text",
			step:      domain.StepNeedEmail,
			input:     "call me instead",
			wantReply: retryEmail,
		},
		{
			name:      "no duration in text",
			step:      domain.StepNeedDuration,
			input:     "not too long",
			wantReply: retryDuration,
		},
		{
			name:      "past date",
			step:      domain.StepNeedDate,
			input:     "2026-02-27",
			wantReply: retryDate,
		},
		{
			name:      "unreadable time",
			step:      domain.StepNeedTime,
			input:     "whenever suits",
			wantReply: retryTime,
		},
		{
			name:      "unclear confirmation",
			step:      domain.StepConfirming,
			input:     "hmm let me think",
			wantReply: retryConfirm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, ledgerRepo.NewRepository())

			state := domain.NewDialogueState()
			state.Step = tt.step

			resp := turn(t, uc, state, tt.input)

			// Диалог остаётся на том же шаге и переспрашивает
			assert.Equal(t, tt.step, resp.State.Step)
			require.Len(t, resp.Replies, 1)
			assert.Equal(t, tt.wantReply, resp.Replies[0])
		})
	}
}

func TestUseCase_Execute_UnknownStepResets(t *testing.T) {
	uc := newTestUseCase(t, ledgerRepo.NewRepository())

	state := domain.DialogueState{Step: domain.Step("bogus")}
	resp := turn(t, uc, state, "jane doe")

	// Защитный сброс: реплика обработана как имя
	assert.Equal(t, domain.StepNeedEmail, resp.State.Step)
	assert.Equal(t, "Jane Doe", resp.State.Draft.Name)
}

func confirmingState(date string, slotTime types.TimeString) domain.DialogueState {
	state := domain.NewDialogueState()
	state.Draft = domain.AppointmentDraft{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Purpose:         "project kickoff",
		DurationMinutes: 60,
		PreferredDate:   date,
		PreferredTime:   slotTime,
		Timezone:        "CET",
	}
	state.PendingSlot = &domain.Slot{Date: date, Time: slotTime}
	state.Step = domain.StepConfirming
	return state
}

func TestUseCase_Execute_ChangeRequestRewindsToDate(t *testing.T) {
	uc := newTestUseCase(t, ledgerRepo.NewRepository())

	resp := turn(t, uc, confirmingState("2026-03-05", "14:00"), "no, let's change the date")

	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	assert.Empty(t, resp.State.Draft.PreferredDate)
	assert.True(t, resp.State.Draft.PreferredTime.IsZero())
	assert.Nil(t, resp.State.PendingSlot)
	// Остальные поля сохраняются
	assert.Equal(t, "Jane Doe", resp.State.Draft.Name)
	assert.Equal(t, 60, resp.State.Draft.DurationMinutes)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, changeAck, resp.Replies[0])
}

func TestUseCase_Execute_AffirmativeVariants(t *testing.T) {
	for _, input := range []string{"yes", "Yes please", "sounds good", "that works", "confirm", "locked in"} {
		t.Run(input, func(t *testing.T) {
			ledger := ledgerRepo.NewRepository()
			uc := newTestUseCase(t, ledger)

			resp := turn(t, uc, confirmingState("2026-03-05", "14:00"), input)

			assert.Equal(t, domain.StepConfirmed, resp.State.Step)
			require.NotNil(t, resp.Confirmed)
			assert.Equal(t, 1, ledger.Len())
		})
	}
}

func TestUseCase_Execute_SlotUnavailableOffersAlternatives(t *testing.T) {
	ledger := ledgerRepo.NewRepository()
	_, err := ledger.Append(context.Background(), domain.ConfirmedAppointment{
		Email: "other@example.com",
		Slot:  domain.Slot{Date: "2026-03-05", Time: "14:00"},
	})
	require.NoError(t, err)

	uc := newTestUseCase(t, ledger)

	state := confirmingState("2026-03-05", "14:00")
	state.PendingSlot = nil
	state.Step = domain.StepNeedTimezone
	state.Draft.Timezone = ""

	resp := turn(t, uc, state, "CET")

	// Слот занят — предлагаются альтернативы того же дня, время запрашивается заново
	assert.Equal(t, domain.StepNeedTime, resp.State.Step)
	assert.True(t, resp.State.Draft.PreferredTime.IsZero())
	assert.Equal(t, "2026-03-05", resp.State.Draft.PreferredDate)
	assert.Equal(t, []domain.Slot{
		{Date: "2026-03-05", Time: "09:00"},
		{Date: "2026-03-05", Time: "11:30"},
		{Date: "2026-03-05", Time: "16:00"},
	}, resp.State.SuggestedSlots)

	require.Len(t, resp.Replies, 3)
	assert.Equal(t, slotTakenIntro, resp.Replies[0])
	assert.Contains(t, resp.Replies[1], "1. Thursday, March 5 at 9:00 AM")
	assert.Equal(t, slotTakenOutro, resp.Replies[2])
}

func TestUseCase_Execute_NoAlternativesRewindsToDate(t *testing.T) {
	ctx := context.Background()
	ledger := ledgerRepo.NewRepository()

	// Весь календарь занят
	cal := domain.NewAvailabilityCalendar(map[string][]types.TimeString{
		"2026-03-05": {"09:00", "11:30"},
	})
	for _, slotTime := range []types.TimeString{"09:00", "11:30"} {
		_, err := ledger.Append(ctx, domain.ConfirmedAppointment{
			Email: "other@example.com",
			Slot:  domain.Slot{Date: "2026-03-05", Time: slotTime},
		})
		require.NoError(t, err)
	}

	uc := NewUseCase(cal, ledger, 3, nopLogger{})
	uc.timeProvider = fixedClock{now: testToday}

	state := confirmingState("2026-03-05", "09:00")
	state.PendingSlot = nil
	state.Step = domain.StepNeedTimezone

	resp := turn(t, uc, state, "CET")

	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	assert.Empty(t, resp.State.Draft.PreferredDate)
	assert.True(t, resp.State.Draft.PreferredTime.IsZero())
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, noAlternatives, resp.Replies[0])
}

func TestUseCase_Execute_DoubleBookingAcrossSessions(t *testing.T) {
	ledger := ledgerRepo.NewRepository()
	uc := newTestUseCase(t, ledger)

	// Две сессии дошли до сводки на один и тот же слот
	first := confirmingState("2026-03-05", "14:00")
	second := confirmingState("2026-03-05", "14:00")
	second.Draft.Email = "bob@example.com"

	resp := turn(t, uc, first, "yes")
	require.NotNil(t, resp.Confirmed)
	assert.Equal(t, 1, ledger.Len())

	// Вторая сессия получает отказ и возврат к выбору даты
	resp = turn(t, uc, second, "yes")
	assert.Nil(t, resp.Confirmed)
	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	assert.Nil(t, resp.State.PendingSlot)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, slotLost, resp.Replies[0])
	assert.Equal(t, 1, ledger.Len())
}

func TestUseCase_Execute_AffirmativeWithoutPendingSlot(t *testing.T) {
	uc := newTestUseCase(t, ledgerRepo.NewRepository())

	state := confirmingState("2026-03-05", "14:00")
	state.PendingSlot = nil

	resp := turn(t, uc, state, "yes")

	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, slotLost, resp.Replies[0])
}

func TestUseCase_Execute_TimezoneWithoutScheduleRewinds(t *testing.T) {
	uc := newTestUseCase(t, ledgerRepo.NewRepository())

	state := domain.NewDialogueState()
	state.Draft.Name = "Jane Doe"
	state.Step = domain.StepNeedTimezone

	resp := turn(t, uc, state, "CET")

	assert.Equal(t, domain.StepNeedDate, resp.State.Step)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, scheduleLost, resp.Replies[0])
}
