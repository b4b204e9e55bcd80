package get_upcoming_sessions

import (
	"context"

	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetUpcoming(ctx context.Context) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
