package get_upcoming_sessions

import (
	"net/http"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/sessions/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /sessions/upcoming - Failed to get upcoming sessions: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/upcoming - Upcoming sessions retrieved successfully: count=%d",
		len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
