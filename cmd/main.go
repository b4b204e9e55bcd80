package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSessionHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/book_session"
	cancelSessionHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/complete_session"
	getAvailableSlotsHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_available_slots"
	getClientSessionsHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_client_sessions"
	getDaySessionsHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_day_sessions"
	getScheduleTemplateHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_schedule_template"
	getSessionHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_session"
	getSlotOccupancyHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_slot_occupancy"
	getUpcomingSessionsHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/get_upcoming_sessions"
	listClientsHandler "github.com/m04kA/FitClub-BookingService/internal/api/handlers/list_clients"
	"github.com/m04kA/FitClub-BookingService/internal/api/middleware"
	"github.com/m04kA/FitClub-BookingService/internal/config"
	"github.com/m04kA/FitClub-BookingService/internal/domain"
	"github.com/m04kA/FitClub-BookingService/internal/infra/fixtures"
	rosterStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/roster"
	sessionStore "github.com/m04kA/FitClub-BookingService/internal/infra/storage/session"
	rosterService "github.com/m04kA/FitClub-BookingService/internal/service/roster"
	scheduleService "github.com/m04kA/FitClub-BookingService/internal/service/schedule"
	sessionsService "github.com/m04kA/FitClub-BookingService/internal/service/sessions"
	bookSessionUC "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
	getAvailableSlotsUC "github.com/m04kA/FitClub-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/FitClub-BookingService/pkg/logger"
	"github.com/m04kA/FitClub-BookingService/pkg/memtx"
	"github.com/m04kA/FitClub-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FitClub-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Недельное расписание - единственный источник правды о слотах и вместимости
	// Состояние живет в памяти процесса: стартуем с фикстур, ничего не персистим
	template := domain.DefaultWeeklyTemplate()

	// Инициализируем хранилища
	sessions := sessionStore.NewStore()
	roster := rosterStore.NewStore()

	// Критическая секция для бронирования (проверка вместимости + запись)
	txManager := memtx.NewTransactionManager()

	// Инициализируем сервисы
	sessionsSvc := sessionsService.NewService(sessions, roster, template, log)
	rosterSvc := rosterService.NewService(roster, log)
	scheduleSvc := scheduleService.NewService(template, log)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		sessions,
		roster,
		template,
		txManager,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		sessions,
		template,
		log,
	)

	// Засеваем демо-данные (если включено)
	if cfg.Demo.Enabled {
		seeder := fixtures.NewSeeder(roster, bookSessionUseCase, template, log)

		now := time.Now()
		clients := seeder.SeedClients(cfg.Demo.Seed, cfg.Demo.ClientCount, now)

		if err := seeder.SeedSessions(
			context.Background(),
			cfg.Demo.Seed,
			cfg.Demo.TakenRatio,
			cfg.Schedule.HorizonDays,
			clients,
			now,
		); err != nil {
			log.Fatal("Failed to seed demo sessions: %v", err)
		}
		log.Info("Demo data seeded (seed=%d, clients=%d)", cfg.Demo.Seed, cfg.Demo.ClientCount)
	}

	// Инициализируем handlers
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, metricsCollector, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionsSvc, metricsCollector, log)
	completeSession := completeSessionHandler.NewHandler(sessionsSvc, metricsCollector, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getScheduleTemplate := getScheduleTemplateHandler.NewHandler(scheduleSvc, log)
	getSlotOccupancy := getSlotOccupancyHandler.NewHandler(sessionsSvc, log)
	getDaySessions := getDaySessionsHandler.NewHandler(sessionsSvc, log)
	getUpcomingSessions := getUpcomingSessionsHandler.NewHandler(sessionsSvc, log)
	getClientSessions := getClientSessionsHandler.NewHandler(sessionsSvc, log)
	listClients := listClientsHandler.NewHandler(rosterSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации)
	// ============================================================

	// Недельное расписание
	api.HandleFunc("/schedule/template", getScheduleTemplate.Handle).Methods(http.MethodGet)

	// Доступные слоты (конкретная дата или скользящее окно)
	api.HandleFunc("/schedule/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Trainer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии ---
	// Бронирование сессии
	protected.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)

	// Сессии на дату (по умолчанию сегодня) и будущие сессии
	// Регистрируются до /sessions/{sessionId}, чтобы не конфликтовать с ним
	protected.HandleFunc("/sessions/day", getDaySessions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/upcoming", getUpcomingSessions.Handle).Methods(http.MethodGet)

	// Получение сессии по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Отмена и завершение сессии
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPatch)

	// --- Занятость слота ---
	protected.HandleFunc("/schedule/occupancy", getSlotOccupancy.Handle).Methods(http.MethodGet)

	// --- Ростер клиентов ---
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/sessions", getClientSessions.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Состояние не персистится - при остановке процесса оно теряется
	log.Info("Server stopped gracefully")
}
