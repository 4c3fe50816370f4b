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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/GritX-web/GritX/internal/api/handlers/create_booking"
	createContactHandler "github.com/GritX-web/GritX/internal/api/handlers/create_contact"
	createEventHandler "github.com/GritX-web/GritX/internal/api/handlers/create_event"
	createRSVPHandler "github.com/GritX-web/GritX/internal/api/handlers/create_rsvp"
	getAdminStatsHandler "github.com/GritX-web/GritX/internal/api/handlers/get_admin_stats"
	getAvailabilityHandler "github.com/GritX-web/GritX/internal/api/handlers/get_availability"
	healthHandler "github.com/GritX-web/GritX/internal/api/handlers/health"
	getBookingHandler "github.com/GritX-web/GritX/internal/api/handlers/get_booking"
	getEventHandler "github.com/GritX-web/GritX/internal/api/handlers/get_event"
	getFacilityHandler "github.com/GritX-web/GritX/internal/api/handlers/get_facility"
	getUserBookingsHandler "github.com/GritX-web/GritX/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/GritX-web/GritX/internal/api/handlers/list_bookings"
	listContactsHandler "github.com/GritX-web/GritX/internal/api/handlers/list_contacts"
	listEventsHandler "github.com/GritX-web/GritX/internal/api/handlers/list_events"
	listFacilitiesHandler "github.com/GritX-web/GritX/internal/api/handlers/list_facilities"
	listRSVPsHandler "github.com/GritX-web/GritX/internal/api/handlers/list_rsvps"
	updateBookingStatusHandler "github.com/GritX-web/GritX/internal/api/handlers/update_booking_status"
	"github.com/GritX-web/GritX/internal/api/middleware"
	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/config"
	bookingRepo "github.com/GritX-web/GritX/internal/infra/storage/booking"
	contactRepo "github.com/GritX-web/GritX/internal/infra/storage/contact"
	eventRepo "github.com/GritX-web/GritX/internal/infra/storage/event"
	facilityRepo "github.com/GritX-web/GritX/internal/infra/storage/facility"
	statsRepo "github.com/GritX-web/GritX/internal/infra/storage/stats"
	authProviderClient "github.com/GritX-web/GritX/internal/integrations/authprovider"
	bookingsService "github.com/GritX-web/GritX/internal/service/bookings"
	contactsService "github.com/GritX-web/GritX/internal/service/contacts"
	eventsService "github.com/GritX-web/GritX/internal/service/events"
	facilitiesService "github.com/GritX-web/GritX/internal/service/facilities"
	statsService "github.com/GritX-web/GritX/internal/service/stats"
	createBookingUC "github.com/GritX-web/GritX/internal/usecase/create_booking"
	getAvailabilityUC "github.com/GritX-web/GritX/internal/usecase/get_availability"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/logger"
	"github.com/GritX-web/GritX/pkg/metrics"
	"github.com/GritX-web/GritX/pkg/simpletxmanager"
	"github.com/GritX-web/GritX/pkg/txmanager"
)

func main() {
	// .env необязателен, нужен только для локальной разработки
	_ = godotenv.Load()

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

	log.Info("Starting GritX booking service...")
	log.Info("Configuration loaded from config.toml")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента провайдера аутентификации
	authClient := authProviderClient.NewClient(
		cfg.AuthProvider.URL,
		time.Duration(cfg.AuthProvider.Timeout)*time.Second,
		log,
	)
	log.Info("Auth provider client initialized (url=%s timeout=%ds)",
		cfg.AuthProvider.URL, cfg.AuthProvider.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
		eventRepository    *eventRepo.Repository
		contactRepository  *contactRepo.Repository
		statsRepository    *statsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		statsRepository = statsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		statsRepository = statsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Политика доступа администраторов
	policy := authz.NewPolicy(cfg.Admin.Emails)

	// Инициализируем сервисы
	facilitiesSvc := facilitiesService.NewService(
		facilityRepository,
		time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second,
		log,
	)
	bookingsSvc := bookingsService.NewService(bookingRepository, policy, txMgr, log)
	eventsSvc := eventsService.NewService(eventRepository, log)
	contactsSvc := contactsService.NewService(contactRepository, log)
	statsSvc := statsService.NewService(statsRepository, log)

	// Сетка слотов из конфигурации
	openMin, closeMin, err := cfg.Booking.GridMinutes()
	if err != nil {
		log.Fatal("Invalid booking grid configuration: %v", err)
	}
	grid := getAvailabilityUC.GridConfig{
		OpenMinute:  openMin,
		CloseMinute: closeMin,
		SlotMinutes: cfg.Booking.SlotMinutes,
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilitiesSvc,
		authClient,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		facilitiesSvc,
		grid,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitiesSvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitiesSvc, log)
	listEvents := listEventsHandler.NewHandler(eventsSvc, log)
	getEvent := getEventHandler.NewHandler(eventsSvc, log)
	createEvent := createEventHandler.NewHandler(eventsSvc, log)
	createRSVP := createRSVPHandler.NewHandler(eventsSvc, log)
	listRSVPs := listRSVPsHandler.NewHandler(eventsSvc, log)
	createContact := createContactHandler.NewHandler(contactsSvc, log)
	listContacts := listContactsHandler.NewHandler(contactsSvc, log)
	getAdminStats := getAdminStatsHandler.NewHandler(statsSvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId:[0-9]+}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{slug}", getFacility.Handle).Methods(http.MethodGet)

	api.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventId}/rsvps", createRSVP.Handle).Methods(http.MethodPost)

	api.HandleFunc("/contacts", createContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (политика доступа)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin(policy))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rsvps", listRSVPs.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contacts", listContacts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/stats", getAdminStats.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
