package get_schedule_template

import (
	"context"

	"github.com/m04kA/FitClub-BookingService/internal/service/schedule"
)

type ScheduleService interface {
	GetTemplate(ctx context.Context) *schedule.TemplateResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
