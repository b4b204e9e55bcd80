package roster

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

// Store is the in-memory client roster. The booking core treats the roster
// as an upstream collaborator: it only looks clients up by id and never
// mutates their profiles.
type Store struct {
	mu   sync.RWMutex
	byID map[string]*domain.Client
}

// NewStore создает пустой ростер
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*domain.Client),
	}
}

// Create добавляет клиента в ростер
func (s *Store) Create(client *domain.Client, now time.Time) *domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *client
	stored.CreatedAt = now
	s.byID[stored.ID] = &stored

	result := stored
	return &result
}

// GetByID возвращает клиента по ID
func (s *Store) GetByID(id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.byID[id]
	if !ok {
		return nil, ErrClientNotFound
	}

	result := *client
	return &result, nil
}

// Exists проверяет наличие клиента в ростере
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok
}

// List возвращает всех клиентов, отсортированных по имени
func (s *Store) List() []*domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0, len(s.byID))
	for _, client := range s.byID {
		copied := *client
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
