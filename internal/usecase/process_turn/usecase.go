package process_turn

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/fieldparse"
	ledgerRepo "github.com/m04kA/SMC-AssistantService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-AssistantService/pkg/types"
)

var (
	// Подтверждение и просьба об изменении распознаются по целым словам,
	// без учёта регистра
	affirmativePattern = regexp.MustCompile(`(?i)\b(?:yes|y|confirm|sounds\s+good|works|locked\s+in)\b`)
	changePattern      = regexp.MustCompile(`(?i)\b(?:no|change|different|adjust|update|another)\b`)
)

// UseCase use case обработки одной реплики пользователя: машина состояний
// диалога бронирования. Каждый вызов — чистый переход
// (state, input) -> (newState, replies); состояние между вызовами хранит
// презентационный слой.
type UseCase struct {
	calendar        Calendar
	ledger          Ledger
	maxAlternatives int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar Calendar,
	ledger Ledger,
	maxAlternatives int,
	logger Logger,
) *UseCase {
	if maxAlternatives <= 0 {
		maxAlternatives = domain.DefaultMaxAlternatives
	}
	return &UseCase{
		calendar:        calendar,
		ledger:          ledger,
		maxAlternatives: maxAlternatives,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute обрабатывает одну реплику пользователя и возвращает новое состояние
// диалога вместе со списком ответов ассистента. Нераспознанный ввод никогда
// не является ошибкой: диалог остаётся в текущем шаге и переспрашивает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	state := req.State
	// Неизвестное или неинициализированное состояние — защитный откат к началу
	if !state.Step.Valid() {
		uc.logger.Warn("ProcessTurn: session=%s, unknown step %q, resetting to %s",
			req.SessionID, state.Step, domain.StepNeedName)
		state = domain.NewDialogueState()
	}

	uc.logger.Info("ProcessTurn: session=%s, step=%s", req.SessionID, state.Step)

	switch state.Step {
	case domain.StepNeedName:
		return uc.handleNeedName(state, text), nil
	case domain.StepNeedEmail:
		return uc.handleNeedEmail(state, text), nil
	case domain.StepNeedPurpose:
		return uc.handleNeedPurpose(state, text), nil
	case domain.StepNeedDuration:
		return uc.handleNeedDuration(state, text), nil
	case domain.StepNeedDate:
		return uc.handleNeedDate(state, text), nil
	case domain.StepNeedTime:
		return uc.handleNeedTime(state, text), nil
	case domain.StepNeedTimezone:
		return uc.handleNeedTimezone(ctx, state, text), nil
	case domain.StepConfirming:
		return uc.handleConfirming(ctx, state, text)
	case domain.StepConfirmed:
		return uc.handleConfirmed(state), nil
	default:
		return nil, fmt.Errorf("%w: unhandled step %q", ErrInternal, state.Step)
	}
}

func (uc *UseCase) handleNeedName(state domain.DialogueState, text string) *Response {
	name, ok := fieldparse.ParseName(text)
	if !ok {
		return retry(state, retryName)
	}

	state.Draft.Name = name
	state.Step = domain.StepNeedEmail
	return reply(state, fmt.Sprintf(promptEmail, fieldparse.FirstName(name)))
}

func (uc *UseCase) handleNeedEmail(state domain.DialogueState, text string) *Response {
	email, ok := fieldparse.ParseEmail(text)
	if !ok {
		return retry(state, retryEmail)
	}

	state.Draft.Email = email
	state.Step = domain.StepNeedPurpose
	return reply(state, promptPurpose)
}

func (uc *UseCase) handleNeedPurpose(state domain.DialogueState, text string) *Response {
	// Цель встречи не валидируется: любой непустой текст принимается как есть
	state.Draft.Purpose = text
	state.Step = domain.StepNeedDuration
	return reply(state, promptDuration)
}

func (uc *UseCase) handleNeedDuration(state domain.DialogueState, text string) *Response {
	minutes, ok := fieldparse.ParseDuration(text)
	if !ok {
		return retry(state, retryDuration)
	}

	state.Draft.DurationMinutes = minutes
	state.Step = domain.StepNeedDate
	return reply(state, promptDate)
}

func (uc *UseCase) handleNeedDate(state domain.DialogueState, text string) *Response {
	date, ok := fieldparse.ParseDate(text, uc.timeProvider.Now())
	if !ok {
		return retry(state, retryDate)
	}

	state.Draft.PreferredDate = date
	state.Step = domain.StepNeedTime
	return reply(state, promptTime)
}

func (uc *UseCase) handleNeedTime(state domain.DialogueState, text string) *Response {
	timeOfDay, ok := fieldparse.ParseTime(text)
	if !ok {
		return retry(state, retryTime)
	}

	state.Draft.PreferredTime = timeOfDay
	state.Step = domain.StepNeedTimezone
	return reply(state, promptTimezone)
}

// handleNeedTimezone принимает любой непустой текст как метку таймзоны и сразу
// сверяет запрошенный слот с календарём доступности
func (uc *UseCase) handleNeedTimezone(ctx context.Context, state domain.DialogueState, text string) *Response {
	state.Draft.Timezone = text

	// Защитный случай: дошли до таймзоны без даты или времени — откат к дате
	if !state.Draft.HasSchedule() {
		uc.logger.Warn("ProcessTurn: timezone step reached with incomplete schedule, rewinding to %s",
			domain.StepNeedDate)
		state.SuggestedSlots = nil
		state.PendingSlot = nil
		state.Step = domain.StepNeedDate
		return reply(state, scheduleLost)
	}

	requested := domain.Slot{Date: state.Draft.PreferredDate, Time: state.Draft.PreferredTime}

	if containsTime(uc.freeTimesFor(ctx, requested.Date), requested.Time) {
		// Слот свободен — показываем сводку и ждём явного подтверждения
		state.PendingSlot = &requested
		state.Step = domain.StepConfirming
		return reply(state,
			recapHeader,
			fmt.Sprintf(recapFields,
				state.Draft.Name,
				state.Draft.Email,
				state.Draft.Purpose,
				state.Draft.DurationMinutes,
				formatSlot(requested, state.Draft.Timezone),
			),
			recapConfirm,
		)
	}

	uc.logger.Info("ProcessTurn: slot %s %s not available, searching alternatives",
		requested.Date, requested.Time)

	alternatives := uc.findAlternativeSlots(ctx, requested.Date, uc.maxAlternatives)
	if len(alternatives) == 0 {
		// Предложить нечего — сбрасываем дату и время и начинаем с даты
		state.Draft.PreferredDate = ""
		state.Draft.PreferredTime = ""
		state.SuggestedSlots = nil
		state.Step = domain.StepNeedDate
		return reply(state, noAlternatives)
	}

	// Пользователь должен назвать конкретное время заново, а не номер из списка
	state.SuggestedSlots = alternatives
	state.Draft.PreferredTime = ""
	state.Step = domain.StepNeedTime
	return reply(state, slotTakenIntro, formatAlternatives(alternatives), slotTakenOutro)
}

func (uc *UseCase) handleConfirming(ctx context.Context, state domain.DialogueState, text string) (*Response, error) {
	switch {
	case affirmativePattern.MatchString(text):
		if state.PendingSlot == nil {
			// Защитный случай: подтверждать нечего — откат к дате
			uc.logger.Warn("ProcessTurn: affirmative answer without pending slot, rewinding to %s",
				domain.StepNeedDate)
			state.Draft.PreferredDate = ""
			state.Draft.PreferredTime = ""
			state.SuggestedSlots = nil
			state.Step = domain.StepNeedDate
			return reply(state, slotLost), nil
		}
		return uc.confirmBooking(ctx, state)

	case changePattern.MatchString(text):
		state.Draft.PreferredDate = ""
		state.Draft.PreferredTime = ""
		state.PendingSlot = nil
		state.Step = domain.StepNeedDate
		return reply(state, changeAck), nil

	default:
		return retry(state, retryConfirm), nil
	}
}

// confirmBooking фиксирует бронь в журнале и завершает цикл бронирования
func (uc *UseCase) confirmBooking(ctx context.Context, state domain.DialogueState) (*Response, error) {
	slot := *state.PendingSlot

	appointment := domain.ConfirmedAppointment{
		Name:            state.Draft.Name,
		Email:           state.Draft.Email,
		Purpose:         state.Draft.Purpose,
		DurationMinutes: state.Draft.DurationMinutes,
		Timezone:        state.Draft.Timezone,
		Slot:            slot,
		Summary:         formatSlot(slot, state.Draft.Timezone),
		ConfirmedAt:     uc.timeProvider.Now(),
	}

	created, err := uc.ledger.Append(ctx, appointment)
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrSlotTaken) {
			// Слот перехватила другая сессия между сводкой и подтверждением
			uc.logger.Warn("ProcessTurn: slot %s %s taken during confirmation", slot.Date, slot.Time)
			state.Draft.PreferredDate = ""
			state.Draft.PreferredTime = ""
			state.PendingSlot = nil
			state.SuggestedSlots = nil
			state.Step = domain.StepNeedDate
			return reply(state, slotLost), nil
		}
		uc.logger.Error("ProcessTurn: failed to append booking: %v", err)
		return nil, fmt.Errorf("%w: failed to append booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessTurn: booking confirmed %s %s for %s", slot.Date, slot.Time, created.Email)

	firstName := fieldparse.FirstName(created.Name)
	resp := reply(state,
		fmt.Sprintf(confirmedMessage, firstName, created.Summary, created.Email),
		confirmedFollow,
	)

	// Бронь закрыта: черновик сбрасывается сразу, следующая реплика начнёт
	// новый цикл с имени
	resp.State.Draft.Reset()
	resp.State.PendingSlot = nil
	resp.State.SuggestedSlots = nil
	resp.State.Step = domain.StepConfirmed
	resp.Confirmed = &created
	return resp, nil
}

// handleConfirmed — повторно входимое терминальное состояние: любая реплика
// начинает новый цикл бронирования с чистым черновиком
func (uc *UseCase) handleConfirmed(state domain.DialogueState) *Response {
	state = domain.NewDialogueState()
	return reply(state, promptName)
}

// retry переспрашивает, не продвигая диалог
func retry(state domain.DialogueState, message string) *Response {
	return &Response{State: state, Replies: []string{message}}
}

// reply возвращает новое состояние с ответами ассистента
func reply(state domain.DialogueState, messages ...string) *Response {
	return &Response{State: state, Replies: messages}
}

func containsTime(times []types.TimeString, target types.TimeString) bool {
	for _, t := range times {
		if t == target {
			return true
		}
	}
	return false
}
