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

	adminLoginHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/admin_login"
	chatHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/chat"
	createBookingHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/get_booking"
	getContentHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/get_content"
	getMyBookingsHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/get_my_bookings"
	manageContentHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/manage_content"
	requestOTPHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/request_otp"
	verifyOTPHandler "github.com/m04kA/GameZone-BookingService/internal/api/handlers/verify_otp"
	"github.com/m04kA/GameZone-BookingService/internal/api/middleware"
	"github.com/m04kA/GameZone-BookingService/internal/config"
	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/cache"
	"github.com/m04kA/GameZone-BookingService/internal/infra/queue"
	bookingRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/booking"
	contentRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/content"
	conversationRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/conversation"
	llmClient "github.com/m04kA/GameZone-BookingService/internal/integrations/llm"
	smsClient "github.com/m04kA/GameZone-BookingService/internal/integrations/smsgateway"
	authService "github.com/m04kA/GameZone-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/GameZone-BookingService/internal/service/bookings"
	contentService "github.com/m04kA/GameZone-BookingService/internal/service/content"
	chatConciergeUC "github.com/m04kA/GameZone-BookingService/internal/usecase/chat_concierge"
	createBookingUC "github.com/m04kA/GameZone-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/GameZone-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/GameZone-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameZone-BookingService/pkg/logger"
	"github.com/m04kA/GameZone-BookingService/pkg/metrics"
	"github.com/m04kA/GameZone-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/GameZone-BookingService/pkg/txmanager"
)

// availabilityAdapter отдает консьержу занятость слотов через use case
type availabilityAdapter struct {
	uc *getAvailabilityUC.UseCase
}

func (a *availabilityAdapter) SlotsForDate(ctx context.Context, date time.Time) ([]domain.SlotOccupancy, error) {
	resp, err := a.uc.Execute(ctx, &getAvailabilityUC.Request{Date: date})
	if err != nil {
		return nil, err
	}
	return resp.Slots, nil
}

func main() {
	// Секреты (пароли, токены, ключи) подхватываются из .env при наличии
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

	log.Info("Starting GameZone-BookingService...")
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

	// Подключаемся к Redis (OTP-коды и rate limit)
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	redisStore, err := cache.NewStore(rootCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer redisStore.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	sms := smsClient.NewClient(
		cfg.SMS.URL,
		cfg.SMS.APIToken,
		cfg.SMS.Channel,
		time.Duration(cfg.SMS.Timeout)*time.Second,
		log,
	)
	llm := llmClient.NewClient(
		cfg.Concierge.BaseURL,
		cfg.Concierge.APIKey,
		cfg.Concierge.Model,
		time.Duration(cfg.Concierge.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SMS=%s channel=%s, LLM=%s model=%s)",
		cfg.SMS.URL, cfg.SMS.Channel, cfg.Concierge.BaseURL, cfg.Concierge.Model)

	// Очередь уведомлений о подтвержденных бронированиях
	var publisher *queue.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer publisher.Close()

		consumer := queue.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, sms, log)
		go consumer.Run(rootCtx)
		log.Info("Notification worker started (queue=%s)", cfg.RabbitMQ.Queue)
	} else {
		log.Warn("RabbitMQ disabled, booking confirmations will not be sent")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		contentRepository      *contentRepo.Repository
		conversationRepository *conversationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		contentRepository = contentRepo.NewRepository(wrappedDB)
		conversationRepository = conversationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		contentRepository = contentRepo.NewRepository(db)
		conversationRepository = conversationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	contentSvc := contentService.NewService(contentRepository, log)
	authSvc := authService.NewService(redisStore, sms, cfg.Auth, cfg.RateLimit.OTPPerHour, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)

	var eventPublisher createBookingUC.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		eventPublisher,
		log,
	)

	chatUseCase := chatConciergeUC.NewUseCase(
		conversationRepository,
		llm,
		&availabilityAdapter{uc: getAvailabilityUseCase},
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	requestOTP := requestOTPHandler.NewHandler(authSvc, log)
	verifyOTP := verifyOTPHandler.NewHandler(authSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	chat := chatHandler.NewHandler(chatUseCase, log)
	getContent := getContentHandler.NewHandler(contentSvc, log)
	manageContent := manageContentHandler.NewHandler(contentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятость слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Контент публичных страниц
	api.HandleFunc("/updates", getContent.HandleUpdates).Methods(http.MethodGet)
	api.HandleFunc("/promotions", getContent.HandlePromotions).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", getContent.HandleLeaderboard).Methods(http.MethodGet)

	// Вход: одноразовый код для гостей, логин-пароль для админа
	api.HandleFunc("/auth/otp/request", requestOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// AI-консьерж, с лимитом запросов по IP
	chatLimiter := middleware.RateLimit(redisStore, "rl:chat", cfg.RateLimit.ChatPerMinute, time.Minute, log)
	api.Handle("/chat", chatLimiter(http.HandlerFunc(chat.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (гостевой или админский токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/my/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только админский токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc))
	admin.Use(middleware.AdminOnly)

	// --- Новости ---
	admin.HandleFunc("/updates", manageContent.HandleCreateUpdate).Methods(http.MethodPost)
	admin.HandleFunc("/updates", manageContent.HandleListUpdates).Methods(http.MethodGet)
	admin.HandleFunc("/updates/{id}", manageContent.HandleUpdateUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/updates/{id}", manageContent.HandleDeleteUpdate).Methods(http.MethodDelete)

	// --- Акции ---
	admin.HandleFunc("/promotions", manageContent.HandleCreatePromotion).Methods(http.MethodPost)
	admin.HandleFunc("/promotions", manageContent.HandleListPromotions).Methods(http.MethodGet)
	admin.HandleFunc("/promotions/{id}", manageContent.HandleUpdatePromotion).Methods(http.MethodPut)
	admin.HandleFunc("/promotions/{id}", manageContent.HandleDeletePromotion).Methods(http.MethodDelete)

	// --- Таблица лидеров ---
	admin.HandleFunc("/leaderboard", manageContent.HandleCreateLeaderboardEntry).Methods(http.MethodPost)
	admin.HandleFunc("/leaderboard/{id}", manageContent.HandleUpdateLeaderboardEntry).Methods(http.MethodPut)
	admin.HandleFunc("/leaderboard/{id}", manageContent.HandleDeleteLeaderboardEntry).Methods(http.MethodDelete)

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

	// Останавливаем воркер уведомлений и сбор метрик
	rootCancel()
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

	log.Info("Server stopped")
}
