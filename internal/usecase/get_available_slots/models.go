package get_available_slots

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
// Если Date задана, возвращаются слоты только на эту дату
// Иначе - скользящее окно на Days дней от сегодняшнего (по умолчанию 14)
type Request struct {
	Date *time.Time // Конкретная дата (опционально)
	Days int        // Горизонт в днях (0 = значение по умолчанию)
}

// Response модель ответа со слотами по дням
type Response struct {
	Days []DaySlots // Дни с хотя бы одним окном расписания (выходные пропущены)
}

// DaySlots слоты одного календарного дня
type DaySlots struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель доступности одного слота
type Slot struct {
	StartTime      types.TimeString // Время начала окна
	EndTime        types.TimeString // Время окончания окна
	BookedSpots    int              // Занятые места
	AvailableSpots int              // Свободные места
	TotalSpots     int              // Вместимость окна
}
