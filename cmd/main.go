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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getBookingHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/get_booking"
	getPeriodsHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/get_periods"
	getResourceBookingsHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/get_resource_bookings"
	getResourceScheduleHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/get_resource_schedule"
	queryHistoryHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/query_history"
	releasePeriodHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/release_period"
	reserveBookingsHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/reserve_bookings"
	updateResourceScheduleHandler "github.com/campusops/SFR-ReservationService/internal/api/handlers/update_resource_schedule"
	"github.com/campusops/SFR-ReservationService/internal/api/middleware"
	"github.com/campusops/SFR-ReservationService/internal/config"
	bookingRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/booking"
	scheduleRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/schedule"
	bookingsService "github.com/campusops/SFR-ReservationService/internal/service/bookings"
	scheduleService "github.com/campusops/SFR-ReservationService/internal/service/schedule"
	queryHistoryUC "github.com/campusops/SFR-ReservationService/internal/usecase/query_history"
	reserveBookingsUC "github.com/campusops/SFR-ReservationService/internal/usecase/reserve_bookings"
	"github.com/campusops/SFR-ReservationService/pkg/dbmetrics"
	"github.com/campusops/SFR-ReservationService/pkg/logger"
	"github.com/campusops/SFR-ReservationService/pkg/metrics"
	"github.com/campusops/SFR-ReservationService/pkg/simpletxmanager"
	"github.com/campusops/SFR-ReservationService/pkg/txmanager"
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

	log.Info("Starting SFR-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Каталог периодов (из конфига или встроенный)
	catalog, err := cfg.PeriodCatalog()
	if err != nil {
		log.Fatal("Failed to build period catalog: %v", err)
	}
	log.Info("Period catalog loaded: %d periods", len(catalog.Periods()))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		catalog,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		catalog,
		log,
	)

	// Инициализируем use cases
	reserveBookingsUseCase := reserveBookingsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		catalog,
		log,
	)
	queryHistoryUseCase := queryHistoryUC.NewUseCase(
		bookingRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	reserveBookings := reserveBookingsHandler.NewHandler(reserveBookingsUseCase, log)
	queryHistory := queryHistoryHandler.NewHandler(queryHistoryUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getPeriods := getPeriodsHandler.NewHandler(catalog, log)
	getResourceBookings := getResourceBookingsHandler.NewHandler(bookingSvc, log)
	releasePeriod := releasePeriodHandler.NewHandler(bookingSvc, log)
	getResourceSchedule := getResourceScheduleHandler.NewHandler(scheduleSvc, log)
	updateResourceSchedule := updateResourceScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Пакетное бронирование (каждая дата обрабатывается независимо)
	api.HandleFunc("/reservations", reserveBookings.Handle).Methods(http.MethodPost)

	// История бронирований за месяц
	api.HandleFunc("/history", queryHistory.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Освобождение одного периода бронирования
	api.HandleFunc("/bookings/{bookingId}/periods/{periodId}",
		releasePeriod.Handle).Methods(http.MethodDelete)

	// --- Справочники и ресурсы ---
	// Каталог периодов
	api.HandleFunc("/periods", getPeriods.Handle).Methods(http.MethodGet)

	// Бронирования ресурса за диапазон дат
	api.HandleFunc("/resources/{resourceId}/bookings",
		getResourceBookings.Handle).Methods(http.MethodGet)

	// Фиксированные закрытые слоты ресурса
	api.HandleFunc("/resources/{resourceId}/schedule",
		getResourceSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/schedule",
		updateResourceSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
