package schedule

import (
	"context"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service read-only сервис недельного расписания.
// Расписание статично: оно задается при старте процесса и не меняется,
// поэтому сервис не имеет операций записи.
type Service struct {
	template domain.WeeklyTemplate
	logger   Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(template domain.WeeklyTemplate, logger Logger) *Service {
	return &Service{
		template: template,
		logger:   logger,
	}
}

// WindowResponse окно недельного расписания
type WindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
}

// DayResponse расписание одного дня недели
type DayResponse struct {
	Weekday string           `json:"weekday"`
	Windows []WindowResponse `json:"windows"`
}

// TemplateResponse недельное расписание целиком
type TemplateResponse struct {
	Days []DayResponse `json:"days"`
}

// GetTemplate возвращает недельное расписание, начиная с понедельника
// Выходные дни включаются с пустым списком окон
func (s *Service) GetTemplate(ctx context.Context) *TemplateResponse {
	order := []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	}

	resp := &TemplateResponse{
		Days: make([]DayResponse, 0, len(order)),
	}

	for _, weekday := range order {
		windows := s.template.DayWindows(weekday)

		day := DayResponse{
			Weekday: weekday.String(),
			Windows: make([]WindowResponse, len(windows)),
		}
		for i, w := range windows {
			day.Windows[i] = WindowResponse{
				StartTime: w.StartTime.String(),
				EndTime:   w.EndTime.String(),
				Capacity:  w.Capacity,
			}
		}

		resp.Days = append(resp.Days, day)
	}

	return resp
}
