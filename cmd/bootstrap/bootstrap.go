package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/config"
	deliveryHttp "mediconnect/internal/delivery/http"
	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/infrastructure/cache"
	"mediconnect/internal/infrastructure/database"
	"mediconnect/internal/repository"
	"mediconnect/internal/service"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/jwt"
	"mediconnect/pkg/session"
	"mediconnect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply pending schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize shared services
	tokenService := jwt.NewTokenService(cfg.JWT)
	customValidator := validator.NewValidator()
	cookies := session.NewCookieManager(cfg.App.IsProduction(), cfg.JWT.SessionExpiry)
	sessions := service.NewRedisSessionStore(redisClient)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	conversationRepo := repository.NewConversationRepository()
	messageRepo := repository.NewMessageRepository()
	notificationRepo := repository.NewNotificationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	medicalReportRepo := repository.NewMedicalReportRepository()
	paymentRepo := repository.NewPaymentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	tx := usecase.NewTransactor(db)
	audit := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, tx, userRepo, patientProfileRepo, doctorProfileRepo, tokenService, sessions, audit)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, tx, appointmentRepo, userRepo, paymentRepo, notificationRepo, audit)
	conversationUsecase := usecase.NewConversationUsecase(db, log, tx, conversationRepo, messageRepo, userRepo, notificationRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, tx, prescriptionRepo, userRepo, notificationRepo, audit)
	medicalReportUsecase := usecase.NewMedicalReportUsecase(db, log, medicalReportRepo, userRepo)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, audit)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, userRepo, doctorProfileRepo)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, patientProfileRepo, doctorProfileRepo, appointmentRepo, audit)
	adminUsecase := usecase.NewAdminUsecase(db, log, tx, userRepo, doctorProfileRepo, notificationRepo, auditLogRepo, sessions, audit)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, cookies)

	// Initialize router
	router := deliveryHttp.NewRouter(&deliveryHttp.RouterConfig{
		AuthHandler:          handler.NewAuthHandler(log, authUsecase, customValidator, cookies),
		AppointmentHandler:   handler.NewAppointmentHandler(log, appointmentUsecase, customValidator),
		ConversationHandler:  handler.NewConversationHandler(log, conversationUsecase, customValidator),
		NotificationHandler:  handler.NewNotificationHandler(log, notificationUsecase),
		PrescriptionHandler:  handler.NewPrescriptionHandler(log, prescriptionUsecase, customValidator),
		MedicalReportHandler: handler.NewMedicalReportHandler(log, medicalReportUsecase, customValidator),
		PaymentHandler:       handler.NewPaymentHandler(log, paymentUsecase, customValidator),
		DoctorHandler:        handler.NewDoctorHandler(log, doctorUsecase),
		ProfileHandler:       handler.NewProfileHandler(log, profileUsecase, customValidator),
		AdminHandler:         handler.NewAdminHandler(log, adminUsecase, customValidator),
		AuthMiddleware:       authMiddleware,
		CORSOrigin:           cfg.App.CORSOrigin,
	})

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
