package cancel_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions"
)

const (
	msgNotFound     = "сессия не найдена"
	msgCannotCancel = "завершенная сессия не может быть отменена"
)

type Handler struct {
	service SessionService
	metrics Metrics
	logger  Logger
}

func NewHandler(service SessionService, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем sessionId из URL
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	// Отменяем сессию (повторная отмена - идемпотентный no-op)
	err := h.service.Cancel(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrCannotCancel):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Cannot cancel: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncCancelled()
	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
