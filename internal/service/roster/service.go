package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	rosterStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/roster"
)

// Service read-only сервис ростера клиентов для presentation-слоя
type Service struct {
	store  ClientStore
	logger Logger
}

// NewService создает новый экземпляр сервиса ростера
func NewService(store ClientStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Goal      string          `json:"goal"`
	StartDate string          `json:"startDate"` // "2026-01-15"
	HeightCm  *int            `json:"heightCm,omitempty"`
	Progress  []ProgressEntry `json:"progress"`
}

// ProgressEntry запись прогресса клиента
type ProgressEntry struct {
	Date         string   `json:"date"`
	WeightKg     float64  `json:"weightKg"`
	BodyFatPct   *float64 `json:"bodyFatPct,omitempty"`
	MuscleMassKg *float64 `json:"muscleMassKg,omitempty"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*ClientResponse, error) {
	client, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, rosterStore.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: store error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return fromDomainClient(client), nil
}

// List получает всех клиентов ростера
func (s *Service) List(ctx context.Context) (*ClientListResponse, error) {
	clients := s.store.List()

	resp := &ClientListResponse{
		Clients: make([]ClientResponse, len(clients)),
	}
	for i, client := range clients {
		resp.Clients[i] = *fromDomainClient(client)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return resp, nil
}

// fromDomainClient конвертирует domain модель в DTO
func fromDomainClient(c *domain.Client) *ClientResponse {
	progress := make([]ProgressEntry, len(c.Progress))
	for i, p := range c.Progress {
		progress[i] = ProgressEntry{
			Date:         p.Date.Format(domain.DateFormat),
			WeightKg:     p.WeightKg,
			BodyFatPct:   p.BodyFatPct,
			MuscleMassKg: p.MuscleMassKg,
		}
	}

	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Contact:   c.Contact,
		Goal:      c.Goal,
		StartDate: c.StartDate.Format(domain.DateFormat),
		HeightCm:  c.HeightCm,
		Progress:  progress,
	}
}
