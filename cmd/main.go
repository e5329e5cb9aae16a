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

	addInventoryItemHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/add_inventory_item"
	addStaffHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/add_staff"
	createBookingHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/create_booking"
	getAdviceHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/get_advice"
	getBookingHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/get_customer_bookings"
	getRepairTypesHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/get_repair_types"
	getVehicleCatalogHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/get_vehicle_catalog"
	listBookingsHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/list_bookings"
	listInventoryHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/list_inventory"
	listStaffHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/list_staff"
	searchVehiclesHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/search_vehicles"
	updateBookingStatusHandler "github.com/m04kA/SMC-ServiceCenter/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-ServiceCenter/internal/api/middleware"
	"github.com/m04kA/SMC-ServiceCenter/internal/catalog"
	"github.com/m04kA/SMC-ServiceCenter/internal/config"
	bookingRepo "github.com/m04kA/SMC-ServiceCenter/internal/infra/storage/booking"
	inventoryRepo "github.com/m04kA/SMC-ServiceCenter/internal/infra/storage/inventory"
	staffRepo "github.com/m04kA/SMC-ServiceCenter/internal/infra/storage/staff"
	advisoryClient "github.com/m04kA/SMC-ServiceCenter/internal/integrations/advisory"
	advisoryService "github.com/m04kA/SMC-ServiceCenter/internal/service/advisory"
	bookingsService "github.com/m04kA/SMC-ServiceCenter/internal/service/bookings"
	inventoryService "github.com/m04kA/SMC-ServiceCenter/internal/service/inventory"
	staffService "github.com/m04kA/SMC-ServiceCenter/internal/service/staff"
	createBookingUC "github.com/m04kA/SMC-ServiceCenter/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ServiceCenter/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServiceCenter/pkg/logger"
	"github.com/m04kA/SMC-ServiceCenter/pkg/metrics"
	"github.com/m04kA/SMC-ServiceCenter/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ServiceCenter/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию (включая GEMINI_API_KEY из окружения - fail fast)
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

	log.Info("Starting SMC-ServiceCenter...")
	log.Info("Configuration loaded from config.toml")

	// Политика переходов статусов бронирований
	transitionPolicy := bookingsService.TransitionPolicy(cfg.Bookings.TransitionPolicy)
	if !transitionPolicy.IsValid() {
		log.Fatal("Unknown booking transition policy %q", cfg.Bookings.TransitionPolicy)
	}
	log.Info("Booking transition policy: %s", transitionPolicy)

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

	// Статический справочник транспорта и работ
	catalogProvider := catalog.NewProvider()
	log.Info("Vehicle catalog loaded")

	// Клиент внешнего генеративного сервиса
	adviceClient := advisoryClient.NewClient(
		cfg.Advisory.BaseURL,
		cfg.Advisory.Model,
		cfg.Advisory.APIKey,
		time.Duration(cfg.Advisory.Timeout)*time.Second,
		log,
	)
	log.Info("Advisory client initialized (model=%s, timeout=%ds)", cfg.Advisory.Model, cfg.Advisory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		staffRepository     *staffRepo.Repository
		inventoryRepository *inventoryRepo.Repository
	)

	// Интерфейс transaction manager для use case создания бронирования
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		inventoryRepository = inventoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		inventoryRepository = inventoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, transitionPolicy, log)
	staffSvc := staffService.NewService(staffRepository, log)
	inventorySvc := inventoryService.NewService(inventoryRepository, log)
	advisorySvc := advisoryService.NewService(adviceClient, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogProvider,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	addStaff := addStaffHandler.NewHandler(staffSvc, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	addInventoryItem := addInventoryItemHandler.NewHandler(inventorySvc, log)
	listInventory := listInventoryHandler.NewHandler(inventorySvc, log)
	getVehicleCatalog := getVehicleCatalogHandler.NewHandler(catalogProvider, log)
	getRepairTypes := getRepairTypesHandler.NewHandler(catalogProvider, log)
	searchVehicles := searchVehiclesHandler.NewHandler(catalogProvider, log)
	getAdvice := getAdviceHandler.NewHandler(advisorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{customerName}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Административные записи ---
	api.HandleFunc("/staff", addStaff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/inventory", addInventoryItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/inventory", listInventory.Handle).Methods(http.MethodGet)

	// --- Справочник ---
	api.HandleFunc("/catalog/vehicles", getVehicleCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/repair-types", getRepairTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/search", searchVehicles.Handle).Methods(http.MethodGet)

	// --- Консультации ---
	api.HandleFunc("/advice", getAdvice.Handle).Methods(http.MethodPost)

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
