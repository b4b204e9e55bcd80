package get_schedule_template

import (
	"net/http"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetTemplate(r.Context())

	h.logger.Info("GET /schedule/template - Template retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
