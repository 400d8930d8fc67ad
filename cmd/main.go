package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	changeDateHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/change_date"
	closeSessionHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/close_session"
	createBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/create_booking"
	deselectSlotHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/deselect_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_available_slots"
	getQuoteHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_quote"
	getSessionHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_session"
	selectSlotHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/select_slot"
	setRecurrenceHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/set_recurrence"
	startSessionHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/start_session"
	"github.com/m04kA/SMC-CourtBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBooking/internal/config"
	scheduleRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/schedule"
	sessionRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/session"
	bookingAPIClient "github.com/m04kA/SMC-CourtBooking/internal/integrations/bookingapi"
	sessionService "github.com/m04kA/SMC-CourtBooking/internal/service/session"
	createBookingUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
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

	log.Info("Starting SMC-CourtBooking...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Engine.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Engine.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         metrics.Recorder = metrics.NopRecorder{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (хранилище сессий бронирования)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		cfg.BookingAPI.RateLimit,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds rate_limit=%d/s)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.BookingAPI.RateLimit)

	// Инициализируем репозитории (с метриками или без)
	var scheduleRepository *scheduleRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB, err := dbmetrics.Wrap(db, metricsCollector, cfg.Database.DBName)
		if err != nil {
			log.Fatal("Failed to register database metrics: %v", err)
		}
		log.Info("Database metrics collection started")
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB, cfg.Engine.SlotDuration(), log)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db, cfg.Engine.SlotDuration(), log)
	}
	sessionRepository := sessionRepo.NewRepository(rdb, loc)

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(
		sessionRepository,
		cfg.Engine.TTL(),
		loc,
		recorder,
		&sessionService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingClient,
		sessionRepository,
		recorder,
		cfg.Engine.TTL(),
		loc,
		cfg.Engine.FetchConcurrency,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		sessionRepository,
		bookingClient,
		recorder,
		cfg.Engine.TTL(),
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startSession := startSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	closeSession := closeSessionHandler.NewHandler(sessionSvc, log)
	changeDate := changeDateHandler.NewHandler(sessionSvc, log)
	setRecurrence := setRecurrenceHandler.NewHandler(sessionSvc, log)
	selectSlot := selectSlotHandler.NewHandler(sessionSvc, log)
	deselectSlot := deselectSlotHandler.NewHandler(sessionSvc, log)
	getQuote := getQuoteHandler.NewHandler(sessionSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и эндпоинт (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/arenas/{arenaId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Сессия бронирования ---
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/date", changeDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/recurrence", setRecurrence.Handle).Methods(http.MethodPut)

	// Выбор слотов
	api.HandleFunc("/sessions/{sessionId}/slots", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slots/{courtId}/{startTime}", deselectSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// Отправка бронирования
	api.HandleFunc("/sessions/{sessionId}/booking", createBooking.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
