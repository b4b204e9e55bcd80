package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

// UseCase use case получения доступных слотов.
// Доступность каждого слота выводится из недельного расписания и реальной
// занятости хранилища сессий. Ничего не кэшируется.
type UseCase struct {
	sessionStore SessionStore
	template     domain.WeeklyTemplate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionStore SessionStore,
	template domain.WeeklyTemplate,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionStore: sessionStore,
		template:     template,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет получение доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Определяем диапазон дат
	var dates []time.Time
	if req.Date != nil {
		if isDateInPast(*req.Date, now) {
			uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
			return nil, ErrInvalidDate
		}
		dates = []time.Time{dateOnly(*req.Date)}
	} else {
		days := req.Days
		if days == 0 {
			days = domain.DefaultScheduleHorizonDays
		}
		start := dateOnly(now)
		for i := 0; i < days; i++ {
			dates = append(dates, start.AddDate(0, 0, i))
		}
	}

	// 3. Для каждой даты инстанцируем окна расписания и считаем занятость
	result := make([]DaySlots, 0, len(dates))
	for _, date := range dates {
		windows := uc.template.DayWindows(date.Weekday())
		if len(windows) == 0 {
			// Выходной - зал закрыт
			continue
		}

		slots := make([]Slot, len(windows))
		for i, w := range windows {
			booked := uc.sessionStore.CountActive(date, w.StartTime)

			available := w.Capacity - booked
			if available < 0 {
				available = 0
			}

			slots[i] = Slot{
				StartTime:      w.StartTime,
				EndTime:        w.EndTime,
				BookedSpots:    booked,
				AvailableSpots: available,
				TotalSpots:     w.Capacity,
			}
		}

		result = append(result, DaySlots{Date: date, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlots: generated slots for %d days", len(result))

	return &Response{Days: result}, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// dateOnly обнуляет компонент времени
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
