package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	createBookingHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/create_booking"
	createStadiumHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/create_stadium"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_booking"
	getStadiumHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_stadium"
	getStadiumBookingsHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_stadium_bookings"
	getUserHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/health"
	listStadiumsHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/list_stadiums"
	updateBookingHandler "github.com/m04kA/SMC-StadiumRental/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-StadiumRental/internal/api/middleware"
	"github.com/m04kA/SMC-StadiumRental/internal/config"
	"github.com/m04kA/SMC-StadiumRental/internal/infra/broker/rabbitmq"
	stadiumCache "github.com/m04kA/SMC-StadiumRental/internal/infra/cache/stadium"
	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StadiumRental/internal/infra/storage/migrations"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	userRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-StadiumRental/internal/service/bookings"
	stadiumsService "github.com/m04kA/SMC-StadiumRental/internal/service/stadiums"
	usersService "github.com/m04kA/SMC-StadiumRental/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_booking"
	createStadiumUC "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_stadium"
	getAvailableSlotsUC "github.com/m04kA/SMC-StadiumRental/internal/usecase/get_available_slots"
	updateBookingUC "github.com/m04kA/SMC-StadiumRental/internal/usecase/update_booking"
	"github.com/m04kA/SMC-StadiumRental/pkg/dbmetrics"
	"github.com/m04kA/SMC-StadiumRental/pkg/logger"
	"github.com/m04kA/SMC-StadiumRental/pkg/metrics"
	"github.com/m04kA/SMC-StadiumRental/pkg/txmanager"
	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

const configPath = "config.toml"

// eventPublisher общий интерфейс RabbitMQ и no-op публикатора
type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-StadiumRental...")
	log.Info("Configuration loaded from %s", configPath)
	log.Debug("Configuration: http_port=%d, auto_migrate=%t, redis=%t, rabbitmq=%t, operation_timeout=%ds",
		cfg.Server.HTTPPort, cfg.Database.AutoMigrate, cfg.Redis.Enabled, cfg.RabbitMQ.Enabled, cfg.Booking.OperationTimeout)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics означает, что метрики отключены
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции до открытия пула
	if cfg.Database.AutoMigrate {
		version, err := migrations.Up(cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is at version %d", version)
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

	// Обёртка собирает метрики запросов; без метрик работает как прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	stadiumStore := stadiumRepo.NewRepository(wrappedDB)

	// Чтения стадионов идут через кэш, регистрация пишет в БД и сбрасывает ключ
	var stadiumRepository stadiumCache.Repository = stadiumStore
	var stadiumInvalidator createStadiumUC.StadiumCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кэш необязателен: ошибки Redis на чтении пропускаются к БД
			log.Warn("Redis is unavailable at %s, stadium lookups will fall through: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cached := stadiumCache.NewCachedRepository(
			stadiumStore,
			rdb,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			log.With("component", "stadium_cache"),
		)
		stadiumRepository = cached
		stadiumInvalidator = cached
		log.Info("Stadium cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Публикация событий бронирований
	var publisher eventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		log.With("component", "broker").Info("Publishing booking events to exchange %s", cfg.RabbitMQ.Exchange)
	}
	defer publisher.Close()

	// Часы работы для сетки слотов
	openTime, err := types.NewTimeStringFromString(cfg.Booking.OpenTime)
	if err != nil {
		log.Fatal("Invalid booking.open_time: %v", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Booking.CloseTime)
	if err != nil {
		log.Fatal("Invalid booking.close_time: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	stadiumSvc := stadiumsService.NewService(stadiumRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		stadiumRepository,
		userRepository,
		txManager,
		publisher,
		metricsCollector,
		log,
		createBookingUC.Options{
			Timeout:              cfg.Booking.OperationTimeoutDuration(),
			DefaultPaymentMethod: cfg.Booking.DefaultPaymentMethod,
		},
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txManager,
		publisher,
		metricsCollector,
		log,
		cfg.Booking.OperationTimeoutDuration(),
	)

	createStadiumUseCase := createStadiumUC.NewUseCase(
		stadiumStore,
		userRepository,
		stadiumInvalidator,
		txManager,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		stadiumRepository,
		getAvailableSlotsUC.Hours{
			Open:                openTime,
			Close:               closeTime,
			SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getStadiumBookings := getStadiumBookingsHandler.NewHandler(bookingSvc, log)
	listStadiums := listStadiumsHandler.NewHandler(stadiumSvc, log)
	getStadium := getStadiumHandler.NewHandler(stadiumSvc, log)
	createStadium := createStadiumHandler.NewHandler(createStadiumUseCase, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Metrics endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, X-User-ID необязателен (гость без заголовка)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Identity)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/user/{userId}", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// --- Стадионы ---
	api.HandleFunc("/stadiums", listStadiums.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stadiums", createStadium.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stadiums/{stadiumId}", getStadium.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stadiums/{stadiumId}/bookings", getStadiumBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stadiums/{stadiumId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Сервер и graceful shutdown в одной errgroup: завершение по сигналу или при ошибке сервера
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		// Останавливаем сбор метрик connection pool
		close(stopMetricsCh)

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}
