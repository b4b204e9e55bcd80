package book_session

import (
	"context"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(sess *domain.Session, now time.Time) *domain.Session
	CountActive(date time.Time, startTime types.TimeString) int
	HasActiveForClient(clientID string, date time.Time, startTime types.TimeString) bool
}

// ClientRoster интерфейс ростера клиентов
type ClientRoster interface {
	Exists(id string) bool
}

// TransactionManager интерфейс критической секции
// Проверка вместимости и добавление сессии должны выполняться атомарно
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
