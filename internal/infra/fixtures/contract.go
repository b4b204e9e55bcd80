package fixtures

import (
	"context"

	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
)

// BookSessionUseCase интерфейс use case бронирования
// Демо-сессии создаются через движок бронирования, а не напрямую в хранилище,
// чтобы засеянные данные тоже подчинялись инварианту вместимости
type BookSessionUseCase interface {
	Execute(ctx context.Context, req *bookSession.Request) (*bookSession.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
