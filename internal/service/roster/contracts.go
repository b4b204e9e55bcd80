package roster

import "github.com/m04kA/FitClub-BookingService/internal/domain"

// ClientStore интерфейс хранилища клиентов
type ClientStore interface {
	GetByID(id string) (*domain.Client, error)
	List() []*domain.Client
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
