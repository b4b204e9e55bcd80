package get_slot_occupancy

import (
	"context"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetOccupancy(ctx context.Context, slot domain.SlotRef) (*models.OccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
