package domain

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// TemplateWindow represents one bookable time window in the weekly schedule
type TemplateWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
}

// WeeklyTemplate is the static weekly schedule: weekday -> ordered list of
// bookable windows. It is the single source of truth for which slots exist
// and for their maximum occupancy. Weekdays with no windows (weekends) are
// not bookable at all.
type WeeklyTemplate map[time.Weekday][]TemplateWindow

// DefaultWeeklyTemplate возвращает стандартное недельное расписание зала:
// Пн-Ср - семь 90-минутных окон на 6 мест, Чт-Пт - сокращенный набор из
// четырех окон, суббота и воскресенье - выходные
func DefaultWeeklyTemplate() WeeklyTemplate {
	fullDay := []TemplateWindow{
		{StartTime: "08:00", EndTime: "09:30", Capacity: DefaultSlotCapacity},
		{StartTime: "09:30", EndTime: "11:00", Capacity: DefaultSlotCapacity},
		{StartTime: "11:00", EndTime: "12:30", Capacity: DefaultSlotCapacity},
		{StartTime: "15:00", EndTime: "16:30", Capacity: DefaultSlotCapacity},
		{StartTime: "16:30", EndTime: "18:00", Capacity: DefaultSlotCapacity},
		{StartTime: "18:00", EndTime: "19:30", Capacity: DefaultSlotCapacity},
		{StartTime: "19:30", EndTime: "21:00", Capacity: DefaultSlotCapacity},
	}

	reducedDay := []TemplateWindow{
		{StartTime: "09:30", EndTime: "11:00", Capacity: DefaultSlotCapacity},
		{StartTime: "11:00", EndTime: "12:30", Capacity: DefaultSlotCapacity},
		{StartTime: "16:30", EndTime: "18:00", Capacity: DefaultSlotCapacity},
		{StartTime: "18:00", EndTime: "19:30", Capacity: DefaultSlotCapacity},
	}

	return WeeklyTemplate{
		time.Monday:    fullDay,
		time.Tuesday:   fullDay,
		time.Wednesday: fullDay,
		time.Thursday:  reducedDay,
		time.Friday:    reducedDay,
		// Суббота и воскресенье отсутствуют - зал закрыт
	}
}

// DayWindows возвращает окна расписания для дня недели
// Для выходных возвращает пустой список
func (t WeeklyTemplate) DayWindows(weekday time.Weekday) []TemplateWindow {
	return t[weekday]
}

// IsClosed возвращает true, если в этот день недели нет ни одного окна
func (t WeeklyTemplate) IsClosed(weekday time.Weekday) bool {
	return len(t[weekday]) == 0
}

// WindowAt ищет окно с указанным временем начала в расписании дня недели
func (t WeeklyTemplate) WindowAt(weekday time.Weekday, startTime types.TimeString) (TemplateWindow, bool) {
	for _, w := range t[weekday] {
		if w.StartTime == startTime {
			return w, true
		}
	}
	return TemplateWindow{}, false
}
