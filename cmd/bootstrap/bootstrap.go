package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truedoc-admin/config"
	deliveryHttp "truedoc-admin/internal/delivery/http"
	"truedoc-admin/internal/delivery/http/handler"
	"truedoc-admin/internal/delivery/http/middleware"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/infrastructure/cache"
	"truedoc-admin/internal/infrastructure/database"
	"truedoc-admin/internal/infrastructure/metrics"
	"truedoc-admin/internal/repository"
	"truedoc-admin/internal/service"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/jwt"
	"truedoc-admin/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, identityService := initializeServer(cfg, log, db, redisClient)
	app.Server = server

	if err := seedModeratorAccount(cfg.Seed, log, identityService); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, service.IdentityService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)
	doctorRepo := repository.NewDoctorRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	planLinkRepo := repository.NewDoctorInsurancePlanRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	specialtyRepo := repository.NewSpecialtyRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	identityService := service.NewIdentityService(log, accountRepo, sessionRepo, jwtService)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	paginator := usecase.NewPaginator(cfg.Pagination)
	accessGate := usecase.NewAccessGate(log, identityService, doctorRepo, appMetrics)
	moderationUsecase := usecase.NewModerationUsecase(log, doctorRepo, claimRepo, planLinkRepo, auditService, appMetrics)
	authUsecase := usecase.NewAuthUsecase(log, identityService, accessGate, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, claimRepo, locationRepo, moderationUsecase, auditService, paginator)
	referenceUsecase := usecase.NewReferenceUsecase(log, referenceRepo, specialtyRepo, auditService, paginator)
	leadUsecase := usecase.NewLeadUsecase(log, leadRepo, auditService, paginator)
	dashboardUsecase := usecase.NewDashboardUsecase(log, doctorRepo, leadRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo, paginator)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:          handler.NewAuthHandler(authUsecase, customValidator),
		Moderation:    handler.NewModerationHandler(moderationUsecase, customValidator),
		Doctor:        handler.NewDoctorHandler(doctorUsecase, customValidator),
		InsurancePlan: handler.NewReferenceHandler(entity.ReferenceKindInsurancePlan, referenceUsecase, customValidator),
		University:    handler.NewReferenceHandler(entity.ReferenceKindUniversity, referenceUsecase, customValidator),
		Institution:   handler.NewReferenceHandler(entity.ReferenceKindInstitution, referenceUsecase, customValidator),
		Specialty:     handler.NewSpecialtyHandler(referenceUsecase),
		Lead:          handler.NewLeadHandler(leadUsecase, customValidator),
		Dashboard:     handler.NewDashboardHandler(dashboardUsecase),
		AuditLog:      handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, identityService, accessGate)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, prometheus.DefaultGatherer)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, identityService
}

// seedModeratorAccount creates the configured login when it does not exist yet.
// Moderator rights still come from the doctor record with the same email.
func seedModeratorAccount(cfg config.SeedConfig, log *logrus.Logger, identity service.IdentityService) error {
	if cfg.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := identity.CreateAccount(ctx, cfg.Email, cfg.Password)
	switch {
	case errors.Is(err, service.ErrAccountExists):
		log.Debugf("Seed account %s already exists", cfg.Email)
	case err != nil:
		return fmt.Errorf("failed to seed moderator account: %w", err)
	default:
		log.Infof("Seeded moderator account %s", cfg.Email)
	}
	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
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
