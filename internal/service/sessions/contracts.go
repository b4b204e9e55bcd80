package sessions

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	GetByID(id string) (*domain.Session, error)
	List(filter domain.SessionsFilter) []*domain.Session
	CountActive(date time.Time, startTime types.TimeString) int
	HasActiveForClient(clientID string, date time.Time, startTime types.TimeString) bool
	UpdateStatus(id string, status domain.SessionStatus, now time.Time) error
	Cancel(id string, now time.Time) error
}

// ClientRoster интерфейс ростера клиентов
type ClientRoster interface {
	GetByID(id string) (*domain.Client, error)
	Exists(id string) bool
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
