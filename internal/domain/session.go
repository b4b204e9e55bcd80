package domain

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// SessionStatus represents the status of a scheduled training session
type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Session represents one client's reservation of one seat within a slot.
// Sessions are never deleted: cancelled and completed records are kept for
// history and reporting. The only allowed transitions are
// scheduled -> completed and scheduled -> cancelled.
type Session struct {
	ID             string
	ClientID       string
	Date           time.Time // дата сессии, без времени
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         SessionStatus
	Notes          *string
	TrainingPlanID *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the session occupies a seat (counts towards slot capacity)
func (s *Session) IsActive() bool {
	return s.Status != StatusCancelled
}

// IsTerminal returns true if the session is in a terminal state
func (s *Session) IsTerminal() bool {
	return s.Status == StatusCancelled || s.Status == StatusCompleted
}

// CanBeCancelled returns true if the session can be cancelled
func (s *Session) CanBeCancelled() bool {
	return s.Status == StatusScheduled
}

// CanBeCompleted returns true if the session can be marked as completed
func (s *Session) CanBeCompleted() bool {
	return s.Status == StatusScheduled
}

// SessionsFilter фильтр для выборки сессий из хранилища
type SessionsFilter struct {
	ClientID         *string           // Фильтр по клиенту (опционально)
	StartDate        *time.Time        // Начало периода (опционально)
	EndDate          *time.Time        // Конец периода (опционально)
	StartTime        *types.TimeString // Фильтр по времени начала слота (опционально)
	Status           *SessionStatus    // Фильтр по статусу (опционально)
	IncludeCancelled bool              // Включать ли отмененные сессии
}
