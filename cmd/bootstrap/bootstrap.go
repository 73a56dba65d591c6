package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-records-api/config"
	deliveryHttp "clinic-records-api/internal/delivery/http"
	"clinic-records-api/internal/delivery/http/handler"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/internal/infrastructure/cache"
	"clinic-records-api/internal/infrastructure/database"
	"clinic-records-api/internal/repository"
	"clinic-records-api/internal/service"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/jwt"
	"clinic-records-api/pkg/validator"

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
	app, err := Connect()
	if err != nil {
		return nil, err
	}

	// Session store: redis when enabled, memory otherwise
	var sessions service.SessionStore
	if app.Config.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(app.Config.Redis, app.Log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		sessions = service.NewRedisSessionStore(redisClient)
	} else {
		app.Log.Warn("Redis disabled, sessions are kept in memory")
		sessions = service.NewMemorySessionStore()
	}

	app.Server = initializeServer(app.Config, app.Log, app.DB, sessions)

	return app, nil
}

// Connect loads configuration, sets up logging and opens the migrated database.
// It is shared with the seed command.
func Connect() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	if cfg.DB.Migrate {
		if err := database.Migrate(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &App{Config: cfg, Log: log, DB: db}, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, sessions service.SessionStore) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	userRepo := repository.NewUserRepository()

	// Initialize usecases
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, customValidator, departmentRepo, doctorRepo, appointmentRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, customValidator, doctorRepo, departmentRepo, appointmentRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, customValidator, patientRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, customValidator, time.Now, appointmentRepo, patientRepo, doctorRepo, departmentRepo)
	userUsecase := usecase.NewUserUsecase(db, log, customValidator, userRepo, jwtService, sessions)

	// Initialize handlers
	departmentHandler := handler.NewDepartmentHandler(departmentUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	userHandler := handler.NewUserHandler(userUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimit)

	// Initialize router
	router := deliveryHttp.NewRouter(
		departmentHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		rateLimitMiddleware,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
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
