package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	rosterStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/roster"
	sessionStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/session"
	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
	"github.com/m04kA/FitClub-BookingService/pkg/memtx"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type seededEnv struct {
	seeder   *Seeder
	sessions *sessionStore.Store
	roster   *rosterStore.Store
	template domain.WeeklyTemplate
}

func newSeededEnv(t *testing.T) *seededEnv {
	t.Helper()

	sessions := sessionStore.NewStore()
	roster := rosterStore.NewStore()
	template := domain.DefaultWeeklyTemplate()

	uc := bookSession.NewUseCase(sessions, roster, template, memtx.NewTransactionManager(), nopLogger{})

	return &seededEnv{
		seeder:   NewSeeder(roster, uc, template, nopLogger{}),
		sessions: sessions,
		roster:   roster,
		template: template,
	}
}

func TestSeeder_SeedClients(t *testing.T) {
	env := newSeededEnv(t)
	now := time.Now()

	clients := env.seeder.SeedClients(42, 12, now)
	require.Len(t, clients, 12)

	for _, c := range clients {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Contact)
		assert.Contains(t, trainingGoals, c.Goal)
		assert.NotEmpty(t, c.Progress, "client %s has no progress history", c.Name)
		assert.True(t, env.roster.Exists(c.ID))
	}
}

// Один и тот же seed дает один и тот же набор клиентов
func TestSeeder_SeedClients_Deterministic(t *testing.T) {
	now := time.Now()

	first := newSeededEnv(t).seeder.SeedClients(7, 10, now)
	second := newSeededEnv(t).seeder.SeedClients(7, 10, now)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Contact, second[i].Contact)
		assert.Equal(t, first[i].Goal, second[i].Goal)
	}
}

func TestSeeder_SeedSessions(t *testing.T) {
	env := newSeededEnv(t)
	now := time.Now()

	clients := env.seeder.SeedClients(42, 12, now)
	require.NoError(t, env.seeder.SeedSessions(context.Background(), 42, 0.5, 7, clients, now))

	assert.Greater(t, env.sessions.Len(), 0)

	// Инвариант вместимости держится для засеянных данных
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		for _, w := range env.template.DayWindows(date.Weekday()) {
			occupancy := env.sessions.CountActive(date, w.StartTime)
			assert.LessOrEqual(t, occupancy, w.Capacity,
				"%s %s overbooked", date.Format(domain.DateFormat), w.StartTime)
		}
	}
}

// Один и тот же seed дает одинаковую картину занятости
func TestSeeder_SeedSessions_Deterministic(t *testing.T) {
	now := time.Now()

	first := newSeededEnv(t)
	second := newSeededEnv(t)

	firstClients := first.seeder.SeedClients(42, 12, now)
	secondClients := second.seeder.SeedClients(42, 12, now)

	require.NoError(t, first.seeder.SeedSessions(context.Background(), 42, 0.4, 7, firstClients, now))
	require.NoError(t, second.seeder.SeedSessions(context.Background(), 42, 0.4, 7, secondClients, now))

	assert.Equal(t, first.sessions.Len(), second.sessions.Len())

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		for _, w := range first.template.DayWindows(date.Weekday()) {
			assert.Equal(t,
				first.sessions.CountActive(date, w.StartTime),
				second.sessions.CountActive(date, w.StartTime),
				"%s %s occupancy differs", date.Format(domain.DateFormat), w.StartTime)
		}
	}
}

func TestSeeder_SeedSessions_EmptyRoster(t *testing.T) {
	env := newSeededEnv(t)

	err := env.seeder.SeedSessions(context.Background(), 42, 0.5, 7, nil, time.Now())
	require.Error(t, err)
}
