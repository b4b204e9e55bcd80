package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_GetTemplate(t *testing.T) {
	svc := NewService(domain.DefaultWeeklyTemplate(), nopLogger{})

	resp := svc.GetTemplate(context.Background())
	require.Len(t, resp.Days, 7)

	// Неделя начинается с понедельника
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	assert.Len(t, resp.Days[0].Windows, 7)
	assert.Equal(t, "08:00", resp.Days[0].Windows[0].StartTime)
	assert.Equal(t, 6, resp.Days[0].Windows[0].Capacity)

	// Сокращенные дни
	assert.Equal(t, "Thursday", resp.Days[3].Weekday)
	assert.Len(t, resp.Days[3].Windows, 4)

	// Выходные присутствуют с пустым списком окон
	assert.Equal(t, "Saturday", resp.Days[5].Weekday)
	assert.Empty(t, resp.Days[5].Windows)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)
	assert.Empty(t, resp.Days[6].Windows)
}
