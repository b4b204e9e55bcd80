package book_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/FitClub-BookingService/internal/api/handlers"
	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgClientNotFound     = "клиент не найден"
	msgSlotUnavailable    = "в этот день нет доступных слотов"
	msgUnknownSlot        = "время начала не соответствует расписанию"
	msgSlotFull           = "все места в слоте заняты"
	msgDuplicateBooking   = "клиент уже записан на этот слот"
	msgInvalidDate        = "некорректная дата бронирования"
)

type Handler struct {
	useCase BookSessionUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookSession.ErrSlotFull):
			h.logger.Warn("POST /sessions - Slot full: client_id=%s, date=%s, time=%s",
				req.ClientID, req.Date, req.StartTime)
			h.metrics.IncSlotFullRejection()
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, bookSession.ErrDuplicateBooking):
			h.logger.Warn("POST /sessions - Duplicate booking: client_id=%s, date=%s, time=%s",
				req.ClientID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, bookSession.ErrClientNotFound):
			h.logger.Warn("POST /sessions - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookSession.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions - Slot unavailable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, bookSession.ErrUnknownSlot):
			h.logger.Warn("POST /sessions - Unknown slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, bookSession.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions - Failed to book session: client_id=%s, error=%v",
				req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.metrics.IncBooked()
	h.logger.Info("POST /sessions - Session booked successfully: session_id=%s, client_id=%s",
		result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
