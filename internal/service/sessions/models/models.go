package models

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

// Request модели

// GetClientSessionsRequest запрос на получение сессий клиента
type GetClientSessionsRequest struct {
	ClientID string  `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetDaySessionsRequest запрос на получение сессий на дату
type GetDaySessionsRequest struct {
	Date     time.Time `json:"date"`
	ClientID *string   `json:"clientId,omitempty"` // Фильтр по клиенту (опционально)
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"clientId"`
	Date           string  `json:"date"`      // "2026-09-07"
	StartTime      string  `json:"startTime"` // "08:00"
	EndTime        string  `json:"endTime"`   // "09:30"
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	TrainingPlanID *string `json:"trainingPlanId,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// OccupancyResponse ответ с занятостью слота
type OccupancyResponse struct {
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	Occupancy int      `json:"occupancy"` // Число активных сессий в слоте
	Capacity  int      `json:"capacity"`  // Вместимость по расписанию (0 = слота нет)
	Occupants []string `json:"occupants"` // Имена клиентов, занявших места
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		Date:           s.Date.Format(domain.DateFormat),
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		Status:         string(s.Status),
		Notes:          s.Notes,
		TrainingPlanID: s.TrainingPlanID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if s.CancelledAt != nil {
		cancelledStr := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(list []*domain.Session) *SessionListResponse {
	if list == nil {
		return &SessionListResponse{
			Sessions: []SessionResponse{},
		}
	}

	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, len(list)),
	}

	for i, sess := range list {
		if sessResp := FromDomainSession(sess); sessResp != nil {
			resp.Sessions[i] = *sessResp
		}
	}

	return resp
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus с валидацией
func ToDomainSessionStatus(status string) (domain.SessionStatus, bool) {
	s := domain.SessionStatus(status)

	switch s {
	case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled:
		return s, true
	}

	return "", false
}
