package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	rosterStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/roster"
	sessionStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/session"
	"github.com/m04kA/FitClub-BookingService/internal/service/sessions/models"
	"github.com/m04kA/FitClub-BookingService/pkg/ptr"
	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// 2026-09-07 - понедельник
var testNow = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	svc      *Service
	sessions *sessionStore.Store
	roster   *rosterStore.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sessions := sessionStore.NewStore()
	roster := rosterStore.NewStore()

	svc := NewService(sessions, roster, domain.DefaultWeeklyTemplate(), nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}

	return &testEnv{svc: svc, sessions: sessions, roster: roster}
}

func (e *testEnv) addClient(id, name string) {
	e.roster.Create(&domain.Client{ID: id, Name: name}, testNow)
}

func (e *testEnv) addSession(id, clientID string, date time.Time, startTime types.TimeString, status domain.SessionStatus) {
	end, _ := startTime.AddMinutes(90)
	e.sessions.Create(&domain.Session{
		ID:        id,
		ClientID:  clientID,
		Date:      date,
		StartTime: startTime,
		EndTime:   end,
		Status:    status,
	}, testNow)
}

func TestService_GetByID(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)

	resp, err := env.svc.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.ID)
	assert.Equal(t, "client-1", resp.ClientID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "08:00", resp.StartTime)

	_, err = env.svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Cancel(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)

	require.NoError(t, env.svc.Cancel(context.Background(), "s1"))

	sess, err := env.sessions.GetByID("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, sess.Status)
	require.NotNil(t, sess.CancelledAt)
	assert.Equal(t, testNow, *sess.CancelledAt)
}

// Повторная отмена - no-op без ошибки, время отмены не перезаписывается
func TestService_Cancel_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)

	require.NoError(t, env.svc.Cancel(context.Background(), "s1"))

	first, err := env.sessions.GetByID("s1")
	require.NoError(t, err)

	require.NoError(t, env.svc.Cancel(context.Background(), "s1"))

	second, err := env.sessions.GetByID("s1")
	require.NoError(t, err)
	assert.Equal(t, *first.CancelledAt, *second.CancelledAt)
	assert.Equal(t, 1, env.sessions.Len())
}

func TestService_Cancel_CompletedRejected(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusCompleted)

	err := env.svc.Cancel(context.Background(), "s1")
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.Cancel(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Complete(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)

	require.NoError(t, env.svc.Complete(context.Background(), "s1"))

	sess, err := env.sessions.GetByID("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, sess.Status)

	// Завершенная сессия продолжает занимать место
	assert.Equal(t, 1, env.sessions.CountActive(testNow, "08:00"))
}

// Статусы терминальны: отмененную нельзя завершить, завершенную - отменить
func TestService_Complete_CancelledRejected(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusCancelled)

	err := env.svc.Complete(context.Background(), "s1")
	require.ErrorIs(t, err, ErrCannotComplete)
}

// Отмененные сессии не попадают в выдачу дня - отмена освобождает место в календаре
func TestService_GetTodaySessions_ExcludesCancelled(t *testing.T) {
	env := newTestEnv(t)

	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s2", "client-2", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s3", "client-3", testNow, "09:30", domain.StatusScheduled)
	// Вчерашняя сессия в выдачу не попадает
	env.addSession("s4", "client-1", testNow.AddDate(0, 0, -1), "08:00", domain.StatusScheduled)

	require.NoError(t, env.svc.Cancel(context.Background(), "s2"))

	resp, err := env.svc.GetTodaySessions(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 2)

	assert.Equal(t, "s1", resp.Sessions[0].ID)
	assert.Equal(t, "s3", resp.Sessions[1].ID)
}

func TestService_GetSessionsForDate_SortedByStartTime(t *testing.T) {
	env := newTestEnv(t)

	env.addSession("late", "client-1", testNow, "19:30", domain.StatusScheduled)
	env.addSession("early", "client-2", testNow, "08:00", domain.StatusScheduled)
	env.addSession("mid", "client-3", testNow, "11:00", domain.StatusScheduled)

	resp, err := env.svc.GetSessionsForDate(context.Background(), &models.GetDaySessionsRequest{Date: testNow})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 3)

	assert.Equal(t, "early", resp.Sessions[0].ID)
	assert.Equal(t, "mid", resp.Sessions[1].ID)
	assert.Equal(t, "late", resp.Sessions[2].ID)
}

func TestService_GetUpcoming(t *testing.T) {
	env := newTestEnv(t)

	// Сегодняшние и прошедшие сессии в "будущие" не попадают
	env.addSession("today", "client-1", testNow, "08:00", domain.StatusScheduled)
	env.addSession("past", "client-1", testNow.AddDate(0, 0, -3), "08:00", domain.StatusScheduled)

	env.addSession("wed", "client-1", testNow.AddDate(0, 0, 2), "09:30", domain.StatusScheduled)
	env.addSession("tue", "client-2", testNow.AddDate(0, 0, 1), "15:00", domain.StatusScheduled)
	env.addSession("tue-cancelled", "client-3", testNow.AddDate(0, 0, 1), "15:00", domain.StatusCancelled)

	resp, err := env.svc.GetUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 2)

	// Сортировка: по дате, затем по времени начала
	assert.Equal(t, "tue", resp.Sessions[0].ID)
	assert.Equal(t, "wed", resp.Sessions[1].ID)
}

func TestService_GetClientSessions(t *testing.T) {
	env := newTestEnv(t)
	env.addClient("client-1", "Anna")

	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s2", "client-1", testNow.AddDate(0, 0, -7), "09:30", domain.StatusCompleted)
	env.addSession("s3", "client-1", testNow.AddDate(0, 0, -7), "11:00", domain.StatusCancelled)
	env.addSession("other", "client-2", testNow, "08:00", domain.StatusScheduled)

	// История клиента включает отмененные сессии
	resp, err := env.svc.GetClientSessions(context.Background(), &models.GetClientSessionsRequest{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Sessions, 3)

	// Фильтр по статусу
	resp, err = env.svc.GetClientSessions(context.Background(), &models.GetClientSessionsRequest{
		ClientID: "client-1",
		Status:   ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "s2", resp.Sessions[0].ID)

	// Некорректный статус
	_, err = env.svc.GetClientSessions(context.Background(), &models.GetClientSessionsRequest{
		ClientID: "client-1",
		Status:   ptr.Ptr("paused"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetClientSessions_ClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetClientSessions(context.Background(), &models.GetClientSessionsRequest{ClientID: "ghost"})
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_GetOccupancy(t *testing.T) {
	env := newTestEnv(t)
	env.addClient("client-1", "Anna")
	env.addClient("client-2", "Boris")

	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s2", "client-2", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s3", "client-1", testNow, "09:30", domain.StatusScheduled)

	resp, err := env.svc.GetOccupancy(context.Background(), domain.SlotRef{Date: testNow, StartTime: "08:00"})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, 2, resp.Occupancy)
	assert.Equal(t, 6, resp.Capacity)
	assert.ElementsMatch(t, []string{"Anna", "Boris"}, resp.Occupants)
}

func TestService_GetOccupancy_UnknownClientFallsBackToID(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "orphan-client", testNow, "08:00", domain.StatusScheduled)

	resp, err := env.svc.GetOccupancy(context.Background(), domain.SlotRef{Date: testNow, StartTime: "08:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"orphan-client"}, resp.Occupants)
}

func TestService_HasBooking(t *testing.T) {
	env := newTestEnv(t)
	env.addSession("s1", "client-1", testNow, "08:00", domain.StatusScheduled)
	env.addSession("s2", "client-2", testNow, "08:00", domain.StatusCancelled)

	assert.True(t, env.svc.HasBooking(context.Background(), "client-1", domain.SlotRef{Date: testNow, StartTime: "08:00"}))
	// Отмененная сессия места не держит
	assert.False(t, env.svc.HasBooking(context.Background(), "client-2", domain.SlotRef{Date: testNow, StartTime: "08:00"}))
	assert.False(t, env.svc.HasBooking(context.Background(), "client-1", domain.SlotRef{Date: testNow, StartTime: "09:30"}))
}

func TestService_SeatReleaseRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	// Слот занят до отказа
	for i := 0; i < 6; i++ {
		env.addSession(fmt.Sprintf("s%d", i+1), fmt.Sprintf("client-%d", i+1), testNow, "16:30", domain.StatusScheduled)
	}
	assert.Equal(t, 0, 6-env.sessions.CountActive(testNow, "16:30"))

	// Отмена освобождает ровно одно место
	require.NoError(t, env.svc.Cancel(context.Background(), "s4"))
	assert.Equal(t, 5, env.sessions.CountActive(testNow, "16:30"))

	// Завершение места не освобождает
	require.NoError(t, env.svc.Complete(context.Background(), "s1"))
	assert.Equal(t, 5, env.sessions.CountActive(testNow, "16:30"))
}
