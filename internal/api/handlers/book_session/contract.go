package book_session

import (
	"context"

	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
)

type BookSessionUseCase interface {
	Execute(ctx context.Context, req *bookSession.Request) (*bookSession.Response, error)
}

// Metrics интерфейс доменных счетчиков бронирования
type Metrics interface {
	IncBooked()
	IncSlotFullRejection()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
