package get_available_slots

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/FitClub-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Days []DaySlots `json:"days"`
}

// DaySlots слоты одного календарного дня
type DaySlots struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Slots   []Slot `json:"slots"`
}

// Slot модель доступности слота
type Slot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BookedSpots    int    `json:"bookedSpots"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string, days int) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Days: days}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]Slot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = Slot{
				StartTime:      slot.StartTime.String(),
				EndTime:        slot.EndTime.String(),
				BookedSpots:    slot.BookedSpots,
				AvailableSpots: slot.AvailableSpots,
				TotalSpots:     slot.TotalSpots,
			}
		}

		days[i] = DaySlots{
			Date:    day.Date.Format(domain.DateFormat),
			Weekday: day.Date.Weekday().String(),
			Slots:   slots,
		}
	}

	return &AvailableSlotsResponse{Days: days}
}
