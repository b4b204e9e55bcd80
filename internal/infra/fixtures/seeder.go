package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	rosterStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/roster"
	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
	"github.com/m04kA/FitClub-BookingService/pkg/ptr"
)

// Seeder загружает демо-данные при старте процесса: фикстурный ростер
// клиентов и частично занятое расписание. Генерация детерминирована:
// один и тот же seed дает один и тот же набор клиентов и сессий.
type Seeder struct {
	roster   *rosterStore.Store
	bookUC   BookSessionUseCase
	template domain.WeeklyTemplate
	logger   Logger
}

// NewSeeder создает новый экземпляр загрузчика демо-данных
func NewSeeder(
	roster *rosterStore.Store,
	bookUC BookSessionUseCase,
	template domain.WeeklyTemplate,
	logger Logger,
) *Seeder {
	return &Seeder{
		roster:   roster,
		bookUC:   bookUC,
		template: template,
		logger:   logger,
	}
}

// trainingGoals типовые цели клиентов для фикстур
var trainingGoals = []string{
	"weight loss",
	"muscle gain",
	"general fitness",
	"endurance",
	"rehabilitation",
	"competition prep",
}

// SeedClients наполняет ростер фикстурными клиентами
// Возвращает созданных клиентов в порядке добавления
func (s *Seeder) SeedClients(seed int64, count int, now time.Time) []*domain.Client {
	faker := gofakeit.New(seed)
	rng := rand.New(rand.NewSource(seed))

	clients := make([]*domain.Client, 0, count)

	for i := 0; i < count; i++ {
		startDate := now.AddDate(0, 0, -rng.Intn(365))

		client := &domain.Client{
			ID:        uuid.NewString(),
			Name:      faker.Name(),
			Contact:   faker.Email(),
			Goal:      trainingGoals[rng.Intn(len(trainingGoals))],
			StartDate: startDate,
			HeightCm:  ptr.Ptr(155 + rng.Intn(45)),
			Progress:  s.seedProgress(rng, startDate, now),
		}

		clients = append(clients, s.roster.Create(client, now))
	}

	s.logger.Info("SeedClients: seeded %d fixture clients", len(clients))
	return clients
}

// seedProgress генерирует историю измерений клиента с момента начала тренировок
func (s *Seeder) seedProgress(rng *rand.Rand, startDate, now time.Time) []domain.ProgressEntry {
	entries := make([]domain.ProgressEntry, 0)

	weight := 60.0 + rng.Float64()*50.0
	bodyFat := 15.0 + rng.Float64()*20.0

	// Одно измерение в месяц от начала тренировок до текущего момента
	for date := startDate; date.Before(now); date = date.AddDate(0, 1, 0) {
		entries = append(entries, domain.ProgressEntry{
			Date:       date,
			WeightKg:   roundTenth(weight),
			BodyFatPct: ptr.Ptr(roundTenth(bodyFat)),
		})

		weight += rng.Float64()*2.0 - 1.2
		bodyFat += rng.Float64()*1.0 - 0.6
		if bodyFat < 8.0 {
			bodyFat = 8.0
		}
	}

	return entries
}

// SeedSessions частично занимает расписание демо-бронированиями
// Для каждого окна на горизонте с вероятностью takenRatio бронируется
// случайное число мест случайными клиентами из ростера
func (s *Seeder) SeedSessions(ctx context.Context, seed int64, takenRatio float64, horizonDays int, clients []*domain.Client, now time.Time) error {
	if len(clients) == 0 {
		return fmt.Errorf("fixtures: cannot seed sessions with an empty roster")
	}

	rng := rand.New(rand.NewSource(seed))
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	booked := 0
	for day := 0; day < horizonDays; day++ {
		date := start.AddDate(0, 0, day)

		for _, window := range s.template.DayWindows(date.Weekday()) {
			if rng.Float64() >= takenRatio {
				continue
			}

			seats := 1 + rng.Intn(window.Capacity)
			for _, client := range pickClients(rng, clients, seats) {
				_, err := s.bookUC.Execute(ctx, &bookSession.Request{
					ClientID:  client.ID,
					Date:      date,
					StartTime: window.StartTime,
				})
				if err != nil {
					// Засев идет через движок на пустом хранилище, отказы здесь - баг
					return fmt.Errorf("fixtures: seed booking failed for %s %s: %w",
						date.Format(domain.DateFormat), window.StartTime, err)
				}
				booked++
			}
		}
	}

	s.logger.Info("SeedSessions: seeded %d demo sessions over %d days", booked, horizonDays)
	return nil
}

// pickClients выбирает n различных клиентов случайным образом
func pickClients(rng *rand.Rand, clients []*domain.Client, n int) []*domain.Client {
	if n > len(clients) {
		n = len(clients)
	}

	indexes := rng.Perm(len(clients))

	picked := make([]*domain.Client, n)
	for i := 0; i < n; i++ {
		picked[i] = clients[indexes[i]]
	}
	return picked
}

// roundTenth округляет до одного знака после запятой
func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
