package get_slot_occupancy

import (
	"net/http"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала обязательно"
	msgInvalidStartTime = "некорректный формат времени начала, ожидается HH:MM"
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

// Handle GET /api/v1/schedule/occupancy
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/occupancy - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем startTime из query параметров
	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /schedule/occupancy - Missing start time")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		h.logger.Warn("GET /schedule/occupancy - Invalid start time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.service.GetOccupancy(r.Context(), domain.SlotRef{Date: date, StartTime: startTime})
	if err != nil {
		h.logger.Error("GET /schedule/occupancy - Failed to get occupancy: date=%s, time=%s, error=%v",
			dateStr, startTimeStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/occupancy - Occupancy retrieved successfully: date=%s, time=%s, occupancy=%d",
		dateStr, startTimeStr, result.Occupancy)
	handlers.RespondJSON(w, http.StatusOK, result)
}
