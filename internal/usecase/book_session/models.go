package book_session

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// Request модель запроса на бронирование сессии
type Request struct {
	ClientID       string           // ID клиента из ростера
	Date           time.Time        // Дата сессии (без времени)
	StartTime      types.TimeString // Время начала окна расписания (например, "08:00")
	Notes          *string          // Заметки тренера (опционально)
	TrainingPlanID *string          // Привязка к плану тренировок (опционально)
}

// Response модель ответа с созданной сессией
type Response struct {
	ID             string           // ID созданной сессии
	ClientID       string           // ID клиента
	Date           time.Time        // Дата сессии
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания
	Status         string           // Статус сессии (всегда scheduled)
	Notes          *string          // Заметки
	TrainingPlanID *string          // План тренировок

	BookedSpots int // Занятость слота после бронирования
	TotalSpots  int // Вместимость слота

	CreatedAt time.Time // Время создания
}
