package get_available_slots

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	CountActive(date time.Time, startTime types.TimeString) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
