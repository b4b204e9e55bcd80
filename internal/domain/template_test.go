package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklyTemplate(t *testing.T) {
	tmpl := DefaultWeeklyTemplate()

	// Пн-Ср - полный день
	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday} {
		windows := tmpl.DayWindows(wd)
		require.Len(t, windows, 7, "weekday %s", wd)
		assert.Equal(t, "08:00", windows[0].StartTime.String())
		assert.Equal(t, "21:00", windows[len(windows)-1].EndTime.String())
	}

	// Чт-Пт - сокращенный день
	for _, wd := range []time.Weekday{time.Thursday, time.Friday} {
		windows := tmpl.DayWindows(wd)
		require.Len(t, windows, 4, "weekday %s", wd)
	}

	// Выходные закрыты
	assert.True(t, tmpl.IsClosed(time.Saturday))
	assert.True(t, tmpl.IsClosed(time.Sunday))
	assert.False(t, tmpl.IsClosed(time.Monday))
}

// Каждое окно длится 90 минут, окна не пересекаются и у всех вместимость 6
func TestDefaultWeeklyTemplate_WindowInvariants(t *testing.T) {
	tmpl := DefaultWeeklyTemplate()

	for wd, windows := range tmpl {
		for i, w := range windows {
			start, err := w.StartTime.Minutes()
			require.NoError(t, err)
			end, err := w.EndTime.Minutes()
			require.NoError(t, err)

			assert.Equal(t, 90, end-start, "%s window %s", wd, w.StartTime)
			assert.Equal(t, DefaultSlotCapacity, w.Capacity)

			if i > 0 {
				assert.False(t, w.StartTime.IsBefore(windows[i-1].EndTime),
					"%s: window %s overlaps previous", wd, w.StartTime)
			}
		}
	}
}

func TestWeeklyTemplate_WindowAt(t *testing.T) {
	tmpl := DefaultWeeklyTemplate()

	w, ok := tmpl.WindowAt(time.Monday, "15:00")
	require.True(t, ok)
	assert.Equal(t, "16:30", w.EndTime.String())

	// В сокращенный день окна 08:00 нет
	_, ok = tmpl.WindowAt(time.Thursday, "08:00")
	assert.False(t, ok)

	// Время между окнами не является слотом
	_, ok = tmpl.WindowAt(time.Monday, "08:30")
	assert.False(t, ok)

	_, ok = tmpl.WindowAt(time.Saturday, "08:00")
	assert.False(t, ok)
}

func TestSession_StatusPredicates(t *testing.T) {
	scheduled := &Session{Status: StatusScheduled}
	completed := &Session{Status: StatusCompleted}
	cancelled := &Session{Status: StatusCancelled}

	// Занятость держат запланированные и завершенные сессии
	assert.True(t, scheduled.IsActive())
	assert.True(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.False(t, scheduled.IsTerminal())
	assert.True(t, completed.IsTerminal())
	assert.True(t, cancelled.IsTerminal())

	assert.True(t, scheduled.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, scheduled.CanBeCompleted())
	assert.False(t, completed.CanBeCompleted())
	assert.False(t, cancelled.CanBeCompleted())
}
