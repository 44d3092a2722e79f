package get_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
)

const msgSessionNotFound = "session not found"

// MessagesResponse HTTP response model
type MessagesResponse struct {
	Messages []models.Message `json:"messages"`
}

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

// Handle GET /api/v1/sessions/{sessionId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	messages, err := h.service.Messages(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/messages - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/messages - Failed to get messages: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id}/messages - Retrieved: session_id=%s, count=%d",
		sessionID, len(messages))
	handlers.RespondJSON(w, http.StatusOK, MessagesResponse{Messages: messages})
}
