package get_client_sessions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
)

const (
	msgClientNotFound = "клиент не найден"
	msgInvalidStatus  = "некорректный статус сессии"
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

// Handle GET /api/v1/clients/{clientId}/sessions
// Query params: status (опционально: scheduled | completed | cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clientId из URL
	vars := mux.Vars(r)
	clientID := vars["clientId"]

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetClientSessionsRequest{
		ClientID: clientID,
		Status:   statusPtr,
	}

	result, err := h.service.GetClientSessions(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrClientNotFound):
			h.logger.Warn("GET /clients/{clientId}/sessions - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /clients/{clientId}/sessions - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{clientId}/sessions - Failed to get sessions: client_id=%s, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{clientId}/sessions - Sessions retrieved successfully: client_id=%s, count=%d",
		clientID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
