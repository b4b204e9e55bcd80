package book_session

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	ClientID       string  `json:"clientId"`
	Date           string  `json:"date"`      // "2026-09-07"
	StartTime      string  `json:"startTime"` // "08:00"
	Notes          *string `json:"notes,omitempty"`
	TrainingPlanID *string `json:"trainingPlanId,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"clientId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	TrainingPlanID *string `json:"trainingPlanId,omitempty"`
	BookedSpots    int     `json:"bookedSpots"`
	TotalSpots     int     `json:"totalSpots"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSessionRequest) ToUseCaseRequest() (*bookSession.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookSession.Request{
		ClientID:       r.ClientID,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
		TrainingPlanID: r.TrainingPlanID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		Notes:          resp.Notes,
		TrainingPlanID: resp.TrainingPlanID,
		BookedSpots:    resp.BookedSpots,
		TotalSpots:     resp.TotalSpots,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
