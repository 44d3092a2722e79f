package get_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions/models"
)

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Appointments []models.AppointmentResponse `json:"appointments"`
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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointments := h.service.Appointments(r.Context())

	h.logger.Info("GET /appointments - Retrieved: count=%d", len(appointments))
	handlers.RespondJSON(w, http.StatusOK, AppointmentsResponse{Appointments: appointments})
}
