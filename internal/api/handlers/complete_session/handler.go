package complete_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions"
)

const (
	msgNotFound       = "сессия не найдена"
	msgCannotComplete = "отмененная сессия не может быть завершена"
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

// Handle PATCH /api/v1/sessions/{sessionId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем sessionId из URL
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	err := h.service.Complete(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/complete - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrCannotComplete):
			h.logger.Warn("PATCH /sessions/{id}/complete - Cannot complete: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgCannotComplete)

		default:
			h.logger.Error("PATCH /sessions/{id}/complete - Failed to complete session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncCompleted()
	h.logger.Info("PATCH /sessions/{id}/complete - Session completed successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
