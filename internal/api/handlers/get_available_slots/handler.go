package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AssistantService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AssistantService/pkg/ptr"
)

const (
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgDateOutOfRange = "date is outside the booking window"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (optional, YYYY-MM-DD; без неё возвращается всё окно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		req.Date = ptr.Ptr(dateStr)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateOutOfRange):
			h.logger.Warn("GET /available-slots - Date out of range: %v", err)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
