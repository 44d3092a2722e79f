// Package sessions — презентационный партнёр диалогового ядра: реестр живых
// сессий, транскрипт сообщений и список подтверждённых броней. Именно этот
// слой назначает сообщениям идентификаторы и отметки времени и сериализует
// обработку реплик: одна реплика обрабатывается до конца, прежде чем
// состояние станет видно снаружи.
package sessions

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
	processTurn "github.com/m04kA/SMC-AssistantService/internal/usecase/process_turn"
	"github.com/m04kA/SMC-AssistantService/pkg/metrics"
)

// Session одна живая сессия диалога
type Session struct {
	ID        string
	CreatedAt time.Time

	// mu сериализует реплики внутри сессии: следующая реплика не начинается,
	// пока не применено состояние предыдущей
	mu       sync.Mutex
	state    domain.DialogueState
	messages []models.Message
}

// Service сервис управления сессиями диалога
type Service struct {
	startUC      StartSessionUseCase
	turnUC       ProcessTurnUseCase
	ledger       LedgerReader
	timeProvider TimeProvider
	collector    *metrics.Metrics // nil, если метрики выключены
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService создает новый экземпляр сервиса сессий.
// collector может быть nil — тогда метрики не записываются.
func NewService(
	startUC StartSessionUseCase,
	turnUC ProcessTurnUseCase,
	ledger LedgerReader,
	collector *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		startUC:      startUC,
		turnUC:       turnUC,
		ledger:       ledger,
		timeProvider: &RealTimeProvider{},
		collector:    collector,
		logger:       logger,
		sessions:     make(map[string]*Session),
	}
}

// Create создает новую сессию: свежее состояние диалога и приветствие
// ассистента в транскрипте
func (s *Service) Create(ctx context.Context) (*models.SessionResponse, error) {
	boot := s.startUC.Execute(ctx)

	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.timeProvider.Now(),
		state:     boot.State,
	}

	for _, text := range boot.Greeting {
		session.messages = append(session.messages, s.newMessage(models.SenderAssistant, text))
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	total := len(s.sessions)
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.ActiveSessions.Set(float64(total))
	}

	s.logger.Info("CreateSession: session=%s created, active=%d", session.ID, total)

	return &models.SessionResponse{
		SessionID: session.ID,
		Step:      session.state.Step.String(),
		Messages:  append([]models.Message(nil), session.messages...),
	}, nil
}

// ProcessTurn обрабатывает одну реплику пользователя: дописывает её в
// транскрипт, прогоняет через машину диалога и дописывает ответы ассистента
func (s *Service) ProcessTurn(ctx context.Context, sessionID, text string) (*models.TurnResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.logger.Warn("ProcessTurn: session=%s, rejected empty text", sessionID)
		return nil, ErrEmptyText
	}

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	stepBefore := session.state.Step

	result, err := s.turnUC.Execute(ctx, &processTurn.Request{
		SessionID: session.ID,
		State:     session.state,
		Text:      trimmed,
	})
	if err != nil {
		s.logger.Error("ProcessTurn: session=%s, usecase error: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	turnMessages := make([]models.Message, 0, len(result.Replies)+1)
	turnMessages = append(turnMessages, s.newMessage(models.SenderUser, trimmed))
	for _, replyText := range result.Replies {
		turnMessages = append(turnMessages, s.newMessage(models.SenderAssistant, replyText))
	}

	session.state = result.State
	session.messages = append(session.messages, turnMessages...)

	if s.collector != nil {
		s.collector.TurnsTotal.WithLabelValues(stepBefore.String()).Inc()
		if result.State.Step == stepBefore && result.State.Step != domain.StepConfirming {
			s.collector.ParseMissesTotal.WithLabelValues(stepBefore.String()).Inc()
		}
		if result.Confirmed != nil {
			s.collector.BookingsConfirmedTotal.Inc()
		}
	}

	s.logger.Info("ProcessTurn: session=%s, %s -> %s, replies=%d",
		sessionID, stepBefore, result.State.Step, len(result.Replies))

	return &models.TurnResponse{
		Step:     result.State.Step.String(),
		Replies:  result.Replies,
		Messages: turnMessages,
	}, nil
}

// Messages возвращает транскрипт сессии в порядке добавления
func (s *Service) Messages(ctx context.Context, sessionID string) ([]models.Message, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	return append([]models.Message(nil), session.messages...), nil
}

// Appointments возвращает все подтверждённые брони, отсортированные по
// времени подтверждения по возрастанию
func (s *Service) Appointments(ctx context.Context) []models.AppointmentResponse {
	return models.FromDomainAppointmentList(s.ledger.List(ctx))
}

func (s *Service) lookup(sessionID string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("Sessions: session=%s not found", sessionID)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *Service) newMessage(sender, text string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: s.timeProvider.Now(),
	}
}
