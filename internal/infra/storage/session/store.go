package session

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// Store is the authoritative in-memory collection of scheduled sessions.
// One record per reserved seat. Records are never deleted - cancellation and
// completion only flip the status, so history survives for reporting.
//
// The store lives for the lifetime of the process: it is seeded with fixture
// data at startup and discarded on shutdown, nothing is persisted.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Session
	ordered []*domain.Session // в порядке создания
}

// NewStore создает пустое хранилище сессий
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*domain.Session),
	}
}

// Create сохраняет новую сессию
// Проставляет CreatedAt/UpdatedAt, возвращает сохраненную копию
func (s *Store) Create(sess *domain.Session, now time.Time) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sess
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.byID[stored.ID] = &stored
	s.ordered = append(s.ordered, &stored)

	result := stored
	return &result
}

// GetByID возвращает сессию по ID
func (s *Store) GetByID(id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	result := *sess
	return &result, nil
}

// List возвращает сессии по фильтру
//
// Правила сортировки (как в выдаче календаря):
// - выборка на конкретную дату сортируется по времени начала (ASC)
// - выборка за период или без периода - по дате и времени начала (ASC)
func (s *Store) List(filter domain.SessionsFilter) []*domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Session, 0)

	for _, sess := range s.ordered {
		if !matchesFilter(sess, filter) {
			continue
		}
		copied := *sess
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result
}

// CountActive возвращает количество активных (не отмененных) сессий слота
// Это и есть занятость слота из инварианта вместимости
func (s *Store) CountActive(date time.Time, startTime types.TimeString) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, sess := range s.ordered {
		if sess.IsActive() && sameDate(sess.Date, date) && sess.StartTime == startTime {
			count++
		}
	}
	return count
}

// HasActiveForClient проверяет, держит ли клиент активную сессию в слоте
func (s *Store) HasActiveForClient(clientID string, date time.Time, startTime types.TimeString) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.ordered {
		if sess.ClientID == clientID && sess.IsActive() && sameDate(sess.Date, date) && sess.StartTime == startTime {
			return true
		}
	}
	return false
}

// UpdateStatus обновляет статус сессии
func (s *Store) UpdateStatus(id string, status domain.SessionStatus, now time.Time) error {
	switch status {
	case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled:
	default:
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.Status = status
	sess.UpdatedAt = now
	return nil
}

// Cancel переводит сессию в статус cancelled и фиксирует время отмены
func (s *Store) Cancel(id string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if !ok {
		return ErrSessionNotFound
	}

	cancelledAt := now
	sess.Status = domain.StatusCancelled
	sess.CancelledAt = &cancelledAt
	sess.UpdatedAt = now
	return nil
}

// Len возвращает общее число записей в хранилище (включая отмененные)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}

// matchesFilter проверяет сессию на соответствие фильтру
func matchesFilter(sess *domain.Session, filter domain.SessionsFilter) bool {
	if filter.ClientID != nil && sess.ClientID != *filter.ClientID {
		return false
	}

	if filter.StartDate != nil && dateOnly(sess.Date).Before(dateOnly(*filter.StartDate)) {
		return false
	}
	if filter.EndDate != nil && dateOnly(sess.Date).After(dateOnly(*filter.EndDate)) {
		return false
	}

	if filter.StartTime != nil && sess.StartTime != *filter.StartTime {
		return false
	}

	if filter.Status != nil {
		return sess.Status == *filter.Status
	}

	if !filter.IncludeCancelled && sess.Status == domain.StatusCancelled {
		return false
	}

	return true
}

// sameDate проверяет, что две даты относятся к одному календарному дню
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет компонент времени
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
