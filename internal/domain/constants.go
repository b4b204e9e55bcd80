package domain

// Default schedule values
const (
	DefaultSlotCapacity        = 6
	DefaultScheduleHorizonDays = 14
)

// DateFormat формат дат в API и логах (YYYY-MM-DD)
const DateFormat = "2006-01-02"
