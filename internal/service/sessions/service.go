package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	sessionStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/session"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
	"github.com/m04kA/FitClub-BookingService/pkg/ptr"
)

// Service сервис работы с сессиями: отмена, завершение и read-only выборки
// для календаря и дашборда. Все выборки вычисляются по текущему состоянию
// хранилища, без кэширования.
type Service struct {
	store        SessionStore
	roster       ClientRoster
	template     domain.WeeklyTemplate
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	store SessionStore,
	roster ClientRoster,
	template domain.WeeklyTemplate,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		roster:       roster,
		template:     template,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает сессию по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SessionResponse, error) {
	sess, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: store error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(sess), nil
}

// GetClientSessions получает историю сессий клиента
// Опционально фильтрует по статусу; без фильтра отдает и отмененные - это
// история клиента, а не календарь
func (s *Service) GetClientSessions(ctx context.Context, req *models.GetClientSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetClientSessions: client=%s, status=%v", req.ClientID, req.Status)

	if !s.roster.Exists(req.ClientID) {
		s.logger.Warn("GetClientSessions: client id=%s not found", req.ClientID)
		return nil, ErrClientNotFound
	}

	filter := domain.SessionsFilter{
		ClientID:         &req.ClientID,
		IncludeCancelled: true,
	}

	if req.Status != nil {
		status, ok := models.ToDomainSessionStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetClientSessions: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list := s.store.List(filter)

	s.logger.Info("GetClientSessions: fetched %d sessions for client=%s", len(list), req.ClientID)
	return models.FromDomainSessionList(list), nil
}

// GetSessionsForDate получает сессии на дату, отсортированные по времени начала
// Отмененные сессии исключаются - выборка питает календарь, где отмена
// освобождает место
func (s *Service) GetSessionsForDate(ctx context.Context, req *models.GetDaySessionsRequest) (*models.SessionListResponse, error) {
	date := dateOnly(req.Date)
	filter := domain.SessionsFilter{
		ClientID:  req.ClientID,
		StartDate: &date,
		EndDate:   &date,
	}

	list := s.store.List(filter)

	s.logger.Info("GetSessionsForDate: fetched %d sessions for date=%s", len(list), date.Format(domain.DateFormat))
	return models.FromDomainSessionList(list), nil
}

// GetTodaySessions получает сегодняшние сессии, отсортированные по времени начала
func (s *Service) GetTodaySessions(ctx context.Context) (*models.SessionListResponse, error) {
	today := dateOnly(s.timeProvider.Now())
	return s.GetSessionsForDate(ctx, &models.GetDaySessionsRequest{Date: today})
}

// GetUpcoming получает будущие запланированные сессии
// Сортировка: по дате, затем по времени начала
func (s *Service) GetUpcoming(ctx context.Context) (*models.SessionListResponse, error) {
	tomorrow := dateOnly(s.timeProvider.Now()).AddDate(0, 0, 1)

	filter := domain.SessionsFilter{
		StartDate: &tomorrow,
		Status:    ptr.Ptr(domain.StatusScheduled),
	}

	list := s.store.List(filter)

	s.logger.Info("GetUpcoming: fetched %d upcoming sessions", len(list))
	return models.FromDomainSessionList(list), nil
}

// GetOccupancy возвращает занятость слота и имена занявших его клиентов
func (s *Service) GetOccupancy(ctx context.Context, slot domain.SlotRef) (*models.OccupancyResponse, error) {
	date := dateOnly(slot.Date)

	capacity := 0
	if window, ok := s.template.WindowAt(date.Weekday(), slot.StartTime); ok {
		capacity = window.Capacity
	}

	filter := domain.SessionsFilter{
		StartDate: &date,
		EndDate:   &date,
		StartTime: &slot.StartTime,
	}

	occupants := make([]string, 0)
	for _, sess := range s.store.List(filter) {
		client, err := s.roster.GetByID(sess.ClientID)
		if err != nil {
			// Сессия ссылается на клиента вне ростера - показываем ID вместо имени
			s.logger.Warn("GetOccupancy: client id=%s not in roster", sess.ClientID)
			occupants = append(occupants, sess.ClientID)
			continue
		}
		occupants = append(occupants, client.Name)
	}

	return &models.OccupancyResponse{
		Date:      date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		Occupancy: len(occupants),
		Capacity:  capacity,
		Occupants: occupants,
	}, nil
}

// HasBooking проверяет, держит ли клиент активную сессию в слоте
func (s *Service) HasBooking(ctx context.Context, clientID string, slot domain.SlotRef) bool {
	return s.store.HasActiveForClient(clientID, dateOnly(slot.Date), slot.StartTime)
}

// Cancel отменяет сессию
// Повторная отмена уже отмененной сессии - no-op: операция идемпотентна,
// занятость слота при этом не меняется
func (s *Service) Cancel(ctx context.Context, sessionID string) error {
	s.logger.Info("Cancel: cancelling session id=%s", sessionID)

	sess, err := s.store.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("Cancel: session id=%s not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	if sess.Status == domain.StatusCancelled {
		s.logger.Info("Cancel: session id=%s already cancelled, no-op", sessionID)
		return nil
	}

	if !sess.CanBeCancelled() {
		s.logger.Warn("Cancel: session id=%s cannot be cancelled, status=%s", sessionID, sess.Status)
		return ErrCannotCancel
	}

	if err := s.store.Cancel(sessionID, s.timeProvider.Now()); err != nil {
		s.logger.Error("Cancel: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled session id=%s", sessionID)
	return nil
}

// Complete переводит сессию в статус completed
// Допустим только переход scheduled -> completed
func (s *Service) Complete(ctx context.Context, sessionID string) error {
	s.logger.Info("Complete: completing session id=%s", sessionID)

	sess, err := s.store.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("Complete: session id=%s not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Complete: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Complete - store error: %v", ErrInternal, err)
	}

	if !sess.CanBeCompleted() {
		s.logger.Warn("Complete: session id=%s cannot be completed, status=%s", sessionID, sess.Status)
		return ErrCannotComplete
	}

	if err := s.store.UpdateStatus(sessionID, domain.StatusCompleted, s.timeProvider.Now()); err != nil {
		s.logger.Error("Complete: store error for session id=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Complete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed session id=%s", sessionID)
	return nil
}

// dateOnly обнуляет компонент времени
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
