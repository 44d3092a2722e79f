package process_turn

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyText          = "turn text must not be empty"
	msgSessionNotFound    = "session not found"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/turns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req TurnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/turns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ProcessTurn(r.Context(), sessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrEmptyText):
			h.logger.Warn("POST /sessions/{id}/turns - Empty text: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyText)

		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/turns - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/turns - Failed to process turn: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/turns - Turn processed: session_id=%s, step=%s",
		sessionID, result.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}
