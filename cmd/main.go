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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	bookingFlowHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/booking_flow"
	createBookingHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/create_booking"
	estimatePriceHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/estimate_price"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_available_slots"
	registerProviderHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/register_provider"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/config"
	marketplaceCache "github.com/m04kA/SMC-PetCareService/internal/infra/cache/marketplace"
	bookingFlowRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking_flow"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
	"github.com/m04kA/SMC-PetCareService/internal/profile"
	"github.com/m04kA/SMC-PetCareService/internal/resolver"
	bookingFlowService "github.com/m04kA/SMC-PetCareService/internal/service/booking_flow"
	createBookingUC "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
	estimatePriceUC "github.com/m04kA/SMC-PetCareService/internal/usecase/estimate_price"
	getAvailableSlotsUC "github.com/m04kA/SMC-PetCareService/internal/usecase/get_available_slots"
	registerProviderUC "github.com/m04kA/SMC-PetCareService/internal/usecase/register_provider"
	flowSweeper "github.com/m04kA/SMC-PetCareService/internal/worker/flow_sweeper"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/metrics"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
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

	log.Info("Starting SMC-PetCareService...")

	// Инициализируем метрики (если включены)
	// При выключенных метриках передаем nil, методы *metrics.Metrics это допускают
	var metricsCollector *metrics.Metrics
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	txManager := txmanager.New(db, log)

	// Подключаемся к redis; без него кэш работает как прямой прокси
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is unavailable at %s, marketplace cache disabled until it recovers: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}
	pingCancel()

	// Инициализируем клиента маркетплейса и кэш справочников
	marketplaceClient := marketplace.NewClient(
		cfg.Marketplace.URL,
		cfg.Marketplace.Token,
		time.Duration(cfg.Marketplace.Timeout)*time.Second,
		log,
	)
	cache := marketplaceCache.NewCache(
		marketplaceClient,
		redisClient,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Marketplace client initialized (url=%s, timeout=%ds, cache_ttl=%ds)",
		cfg.Marketplace.URL, cfg.Marketplace.Timeout, cfg.Redis.CacheTTL)

	// Инициализируем репозитории и доменные компоненты
	flowRepository := bookingFlowRepo.NewRepository(db)
	modeResolver := resolver.New()
	estimator := pricing.New()
	builder := profile.NewBuilder()

	// Инициализируем сервисы
	flowSvc := bookingFlowService.NewService(
		flowRepository,
		cache,
		modeResolver,
		txManager,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(marketplaceClient, log)

	estimatePriceUseCase := estimatePriceUC.NewUseCase(
		cache,
		modeResolver,
		estimator,
		metricsCollector,
		log,
	)

	registerProviderUseCase := registerProviderUC.NewUseCase(
		cache,
		marketplaceClient,
		builder,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		flowRepository,
		cache,
		estimator,
		marketplaceClient,
		metricsCollector,
		createBookingUC.Config{
			AppointmentDuration: cfg.Booking.AppointmentDuration(),
			CheckoutURLTemplate: cfg.Booking.CheckoutURLTemplate,
		},
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	estimatePrice := estimatePriceHandler.NewHandler(estimatePriceUseCase, log)
	registerProvider := registerProviderHandler.NewHandler(registerProviderUseCase, log)
	bookingFlow := bookingFlowHandler.NewHandler(flowSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступное время провайдера на дату
	api.HandleFunc("/providers/{providerId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Предварительная стоимость
	api.HandleFunc("/providers/{providerId}/estimate", estimatePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Провайдеры ---
	protected.HandleFunc("/providers", registerProvider.Handle).Methods(http.MethodPost)

	// --- Сценарий бронирования ---
	protected.HandleFunc("/booking-flows", bookingFlow.HandleOpen).Methods(http.MethodPost)
	protected.HandleFunc("/booking-flows/{flowId}", bookingFlow.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/booking-flows/{flowId}", bookingFlow.HandleAbandon).Methods(http.MethodDelete)
	protected.HandleFunc("/booking-flows/{flowId}/schedule", bookingFlow.HandleSchedule).Methods(http.MethodPut)
	protected.HandleFunc("/booking-flows/{flowId}/pet", bookingFlow.HandlePet).Methods(http.MethodPut)
	protected.HandleFunc("/booking-flows/{flowId}/next", bookingFlow.HandleNext).Methods(http.MethodPost)
	protected.HandleFunc("/booking-flows/{flowId}/back", bookingFlow.HandleBack).Methods(http.MethodPost)

	// Отправка бронирования в маркетплейс
	protected.HandleFunc("/booking-flows/{flowId}/submit", createBooking.Handle).Methods(http.MethodPost)

	// CORS для веб-клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader},
	}).Handler(r)

	// Запускаем очистку брошенных сценариев
	sweeper := flowSweeper.NewSweeper(
		flowRepository,
		cfg.Booking.FlowTTL(),
		time.Duration(cfg.Booking.SweepTimeout)*time.Second,
		metricsCollector,
		log,
	)
	if err := sweeper.Start(cfg.Booking.SweepSchedule); err != nil {
		log.Fatal("Failed to start flow sweeper: %v", err)
	}
	log.Info("Flow sweeper started (schedule=%q, ttl=%s)", cfg.Booking.SweepSchedule, cfg.Booking.FlowTTL())

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

	// Дожидаемся текущего прохода sweeper
	select {
	case <-sweeper.Stop().Done():
		log.Info("Flow sweeper stopped")
	case <-shutdownCtx.Done():
		log.Warn("Flow sweeper did not stop in time")
	}

	log.Info("Server stopped gracefully")
}
