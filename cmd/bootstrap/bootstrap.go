package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patients-care-api/config"
	deliveryHttp "patients-care-api/internal/delivery/http"
	"patients-care-api/internal/delivery/http/handler"
	"patients-care-api/internal/delivery/http/middleware"
	"patients-care-api/internal/infrastructure/cache"
	"patients-care-api/internal/infrastructure/database"
	"patients-care-api/internal/infrastructure/storage"
	"patients-care-api/internal/repository"
	"patients-care-api/internal/service"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/i18n"
	"patients-care-api/pkg/jwt"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"

	"github.com/google/uuid"
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

// New creates a new App instance with all dependencies initialized.
// Pending migrations are applied before the server is built.
func New() (*App, error) {
	app := &App{Log: SetupLogger()}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")

	if err := database.MigrateUp(cfg.DB.URL()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Log.Info("Database migrations applied")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	server, err := initializeServer(cfg, app.Log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	demoDoctorID := uuid.Nil
	if cfg.App.DemoDoctorID != "" {
		id, err := uuid.Parse(cfg.App.DemoDoctorID)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_DEMO_DOCTOR_ID: %w", err)
		}
		demoDoctorID = id
	}

	translator, err := i18n.New(cfg.App.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	photoStorage, err := storage.NewLocalPhotoStorage(cfg.App.UploadDir)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	responder := response.NewResponder(log, translator, customValidator)

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	accountRepo := repository.NewAccountRepository(doctorRepo, patientRepo)
	clinicRepo := repository.NewClinicRepository(db)
	affiliationRepo := repository.NewClinicAffiliationRepository(db)
	specializationRepo := repository.NewSpecializationRepository(db)
	doctorSpecializationRepo := repository.NewDoctorSpecializationRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	tokenStore := service.NewRedisTokenStore(redisClient)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, accountRepo, doctorRepo, patientRepo, jwtService, tokenStore, photoStorage, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	clinicUsecase := usecase.NewClinicUsecase(log, clinicRepo, photoStorage, auditService)
	affiliationUsecase := usecase.NewClinicAffiliationUsecase(log, affiliationRepo, clinicRepo, auditService)
	specializationUsecase := usecase.NewSpecializationUsecase(log, specializationRepo)
	doctorSpecializationUsecase := usecase.NewDoctorSpecializationUsecase(log, doctorSpecializationRepo, specializationRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, affiliationRepo, auditService, cfg.App.Location())
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:                 handler.NewAuthHandler(authUsecase, customValidator, responder),
		Doctor:               handler.NewDoctorHandler(doctorUsecase, responder),
		Patient:              handler.NewPatientHandler(patientUsecase, responder),
		Specialization:       handler.NewSpecializationHandler(specializationUsecase, customValidator, responder),
		DoctorSpecialization: handler.NewDoctorSpecializationHandler(doctorSpecializationUsecase, customValidator, responder),
		ClinicAffiliation:    handler.NewClinicAffiliationHandler(affiliationUsecase, customValidator, responder),
		Clinic:               handler.NewClinicHandler(clinicUsecase, customValidator, responder),
		Appointment:          handler.NewAppointmentHandler(appointmentUsecase, customValidator, responder),
		AuditLog:             handler.NewAuditLogHandler(auditLogUsecase, responder),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenStore, responder)
	demoGuard := middleware.NewDemoGuard(demoDoctorID, responder)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, demoGuard, corsMiddleware, responder, translator, log, cfg.App.UploadDir)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
