package list_clients

import (
	"context"

	"github.com/m04kA/FitClub-BookingService/internal/service/roster"
)

type RosterService interface {
	List(ctx context.Context) (*roster.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
