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
	"github.com/rs/cors"
	"github.com/shopspring/decimal"

	checkSlugHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/check_slug"
	createBookingHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/delete_booking"
	deleteRoomTypeHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/delete_room_type"
	exportConfigHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/export_config"
	getBookingHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/get_booking"
	getConfirmationHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/get_confirmation"
	getSettingsHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/get_settings"
	importConfigHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/import_config"
	listBookingsHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/list_bookings"
	listRoomTypesHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/list_room_types"
	previewQuoteHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/preview_quote"
	saveRoomTypeHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/save_room_type"
	updateBookingStatusHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelQuoteService/internal/config"
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/booking"
	roomTypeRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/roomtype"
	settingsRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/integrations/mailer"
	bookingsService "github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings"
	roomTypesService "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	settingsService "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/create_booking"
	previewQuoteUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/preview_quote"
	transferConfigUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/transfer_config"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/jwt"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/metrics"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelQuoteService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Репозитории работают через обертку с метриками или напрямую через *sql.DB
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txManager = txmanager.FromSQL(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	roomTypeRepository := roomTypeRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Цены за дополнительных гостей до первого сохранения настроек
	defaultSettings, err := settingsDefaults(cfg.Pricing)
	if err != nil {
		log.Fatal("Invalid pricing defaults: %v", err)
	}

	// Инициализируем сервисы
	roomTypeSvc := roomTypesService.NewService(roomTypeRepository, txManager, log)
	settingsSvc := settingsService.NewService(settingsRepository, defaultSettings, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	mailClient := mailer.NewClient(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		From:      cfg.Mail.From,
		FromName:  cfg.Mail.FromName,
		HotelName: cfg.Mail.HotelName,
	}, log)
	if !mailClient.Enabled() {
		log.Warn("SMTP host is not configured, emails will only be logged")
	}

	// Инициализируем use cases
	previewQuoteUseCase := previewQuoteUC.NewUseCase(roomTypeSvc, settingsSvc, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomTypeSvc,
		settingsSvc,
		mailClient,
		metricsCollector,
		cfg.Mail.AdminEmail,
		log,
	)
	transferConfigUseCase := transferConfigUC.NewUseCase(roomTypeSvc, settingsSvc, txManager, log)

	// Инициализируем handlers
	listRoomTypes := listRoomTypesHandler.NewHandler(roomTypeSvc, log)
	previewQuote := previewQuoteHandler.NewHandler(previewQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getConfirmation := getConfirmationHandler.NewHandler(bookingSvc, log)

	saveRoomType := saveRoomTypeHandler.NewHandler(roomTypeSvc, log)
	deleteRoomType := deleteRoomTypeHandler.NewHandler(roomTypeSvc, log)
	checkSlug := checkSlugHandler.NewHandler(roomTypeSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	exportConfig := exportConfigHandler.NewHandler(transferConfigUseCase, log)
	importConfig := importConfigHandler.NewHandler(transferConfigUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Ограничение частоты для публичных POST запросов
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		visitorTTL := time.Duration(cfg.RateLimit.VisitorTTLSec) * time.Second
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, visitorTTL, log)
		go limiter.RunCleanup(visitorTTL/2, stopCh)
		limit = func(h http.HandlerFunc) http.Handler { return limiter.Limit(h) }
		log.Info("Rate limit enabled: rps=%.2f, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма на сайте отеля)
	// ============================================================

	// Реестр типов номеров для формы
	api.HandleFunc("/room-types", listRoomTypes.Handle).Methods(http.MethodGet)

	// Предварительный расчет стоимости
	api.Handle("/quotes/preview", limit(previewQuote.Handle)).Methods(http.MethodPost)

	// Отправка заявки на бронирование
	api.Handle("/bookings", limit(createBooking.Handle)).Methods(http.MethodPost)

	// Страница подтверждения
	api.HandleFunc("/bookings/confirmation/{code}", getConfirmation.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен роли admin)
	// ============================================================

	tokens := jwt.New(cfg.Admin.JWTSecret, time.Duration(cfg.Admin.TokenTTLMin)*time.Minute, cfg.Admin.Issuer)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(tokens, log))

	// --- Типы номеров ---
	admin.HandleFunc("/room-types/{slug}", saveRoomType.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/room-types/{slug}", deleteRoomType.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/room-types/{slug}/available", checkSlug.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Импорт и экспорт ---
	admin.HandleFunc("/config/export", exportConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/config/import", importConfig.Handle).Methods(http.MethodPost)

	// CORS для сайта отеля
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем сбор метрик пула и очистку лимитера
	close(stopCh)

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

func settingsDefaults(cfg config.PricingConfig) (*domain.HotelSettings, error) {
	defaults := domain.DefaultHotelSettings()

	adult, err := decimal.NewFromString(cfg.DefaultExtraAdult)
	if err != nil {
		return nil, fmt.Errorf("pricing.default_extra_adult=%q: %w", cfg.DefaultExtraAdult, err)
	}
	kid, err := decimal.NewFromString(cfg.DefaultExtraKid)
	if err != nil {
		return nil, fmt.Errorf("pricing.default_extra_kid=%q: %w", cfg.DefaultExtraKid, err)
	}

	defaults.PriceExtraAdult = adult
	defaults.PriceExtraKid = kid
	return defaults, nil
}
