package get_day_sessions

import (
	"net/http"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/sessions/day
// Query params: date (опционально, YYYY-MM-DD; по умолчанию сегодня),
// clientId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	// Без даты отдаем сегодняшние сессии
	if dateStr == "" {
		result, err := h.service.GetTodaySessions(r.Context())
		if err != nil {
			h.logger.Error("GET /sessions/day - Failed to get today sessions: error=%v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /sessions/day - Today sessions retrieved successfully: count=%d", len(result.Sessions))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sessions/day - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем clientId из query параметров (опционально)
	var clientID *string
	if id := r.URL.Query().Get("clientId"); id != "" {
		clientID = &id
	}

	result, err := h.service.GetSessionsForDate(r.Context(), &models.GetDaySessionsRequest{
		Date:     date,
		ClientID: clientID,
	})
	if err != nil {
		h.logger.Error("GET /sessions/day - Failed to get sessions: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/day - Sessions retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
