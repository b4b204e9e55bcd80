package book_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

// UseCase use case бронирования тренировочной сессии
//
// Инвариант вместимости: для любого слота число активных сессий никогда не
// превышает вместимость окна расписания. Проверка занятости и создание
// сессии выполняются внутри одной критической секции.
type UseCase struct {
	sessionStore SessionStore
	roster       ClientRoster
	template     domain.WeeklyTemplate
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionStore SessionStore,
	roster ClientRoster,
	template domain.WeeklyTemplate,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionStore: sessionStore,
		roster:       roster,
		template:     template,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: client=%s, date=%s, time=%s",
		req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("BookSession: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем клиента в ростере
	if !uc.roster.Exists(req.ClientID) {
		uc.logger.Warn("BookSession: client id=%s not found", req.ClientID)
		return nil, ErrClientNotFound
	}

	// 5. Разрешаем слот через недельное расписание
	weekday := req.Date.Weekday()
	if uc.template.IsClosed(weekday) {
		uc.logger.Warn("BookSession: no schedule windows on %s", weekday)
		return nil, ErrSlotUnavailable
	}

	window, ok := uc.template.WindowAt(weekday, req.StartTime)
	if !ok {
		uc.logger.Warn("BookSession: no window at %s on %s", req.StartTime, weekday)
		return nil, ErrUnknownSlot
	}

	var result *domain.Session
	var booked int

	// 6. Проверка занятости и создание сессии в критической секции
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		// 6.1. Считаем занятость слота
		occupancy := uc.sessionStore.CountActive(req.Date, req.StartTime)
		if occupancy >= window.Capacity {
			uc.logger.Warn("BookSession: slot full, %d/%d seats taken", occupancy, window.Capacity)
			return ErrSlotFull
		}

		// 6.2. Клиент не может занять два места в одном слоте
		if uc.sessionStore.HasActiveForClient(req.ClientID, req.Date, req.StartTime) {
			uc.logger.Warn("BookSession: client id=%s already booked %s %s",
				req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrDuplicateBooking
		}

		// 6.3. Создаем сессию
		sess := &domain.Session{
			ID:             uuid.NewString(),
			ClientID:       req.ClientID,
			Date:           dateOnly(req.Date),
			StartTime:      window.StartTime,
			EndTime:        window.EndTime,
			Status:         domain.StatusScheduled,
			Notes:          req.Notes,
			TrainingPlanID: req.TrainingPlanID,
		}

		result = uc.sessionStore.Create(sess, now)
		booked = occupancy + 1
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: created session id=%s, slot occupancy %d/%d",
		result.ID, booked, window.Capacity)

	return &Response{
		ID:             result.ID,
		ClientID:       result.ClientID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		Notes:          result.Notes,
		TrainingPlanID: result.TrainingPlanID,
		BookedSpots:    booked,
		TotalSpots:     window.Capacity,
		CreatedAt:      result.CreatedAt,
	}, nil
}
