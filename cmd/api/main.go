package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	portusecase "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/funding"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/project"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/scheduler"
	timeprovider "github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Production: cfg.Environment == config.Production,
		Output:     cfg.Logger.Output,
		File: logger.FileConfig{
			Path:       cfg.Logger.File.Path,
			MaxSizeMB:  cfg.Logger.File.MaxSizeMB,
			MaxBackups: cfg.Logger.File.MaxBackups,
			MaxAgeDays: cfg.Logger.File.MaxAgeDays,
			Compress:   cfg.Logger.File.Compress,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeprovider.NewRealTimeProvider()
	ctx := context.Background()

	dbConfig, err := databaseConfig(cfg)
	if err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Connect and migrate
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Use cases
	uow := dbManager.CreateUnitOfWork()
	promMetrics := metrics.NewPrometheusMetrics()

	fundingEngine := funding.NewService(uow, promMetrics, appLogger, tp, funding.Config{
		QueueBuffer:        cfg.Funding.QueueBuffer,
		QueueIdleTimeout:   cfg.Funding.QueueIdleTimeout,
		MaxConflictRetries: cfg.Funding.MaxConflictRetries,
		RetryBackoff:       cfg.Funding.RetryBackoff,
	})
	projectUseCase := project.NewProjectUseCase(uow, tp, appLogger)
	userUseCase := user.NewUserUseCase(
		uow,
		repository.NewSessionRepository(dbManager.DB(), tp, appLogger),
		tp,
		appLogger,
		user.Config{SessionTTL: cfg.Identity.SessionTTL, BcryptCost: cfg.Identity.BcryptCost},
	)

	if cfg.Seed.Enabled {
		if err := userUseCase.SeedDemoUsers(ctx, demoUsers(cfg.Seed.DemoUsers)); err != nil {
			appLogger.Error("Failed to seed demo users", map[string]any{"error": err.Error()})
		}
	}

	verifier, err := identity.NewJWTVerifier(identity.Config{
		Secret:   cfg.Identity.JWTSecret,
		Issuer:   cfg.Identity.Issuer,
		TokenTTL: cfg.Identity.TokenTTL,
		Leeway:   cfg.Identity.TokenLeeway,
	}, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create identity verifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Housekeeping
	jobs, err := scheduler.NewScheduler(appLogger)
	if err != nil {
		appLogger.Error("Failed to create scheduler", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	purgeJob := scheduler.NewSessionPurgeJob(userUseCase, cfg.Scheduler.SessionCleanupInterval, cfg.Scheduler.JobTimeout, appLogger)
	if err := jobs.Register(purgeJob); err != nil {
		appLogger.Error("Failed to register session purge job", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	jobs.Start()

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, promMetrics, cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, routes.Dependencies{
		Projects: handler.NewProjectHandler(projectUseCase, fundingEngine, appLogger),
		Funding:  handler.NewFundingHandler(fundingEngine, projectUseCase, appLogger),
		Auth: handler.NewAuthHandler(userUseCase, handler.CookieConfig{
			Name:   cfg.Identity.CookieName,
			Secure: cfg.Identity.CookieSecure,
			Domain: cfg.Identity.CookieDomain,
		}, tp, appLogger),
		Health:         handler.NewHealthHandler(dbManager, appLogger),
		MetricsHandler: promMetrics.Handler(),
		Verifier:       verifier,
		Users:          userUseCase,
		CookieName:     cfg.Identity.CookieName,
		RateLimits: routes.RateLimits{
			GeneralLimit:  cfg.RateLimit.GeneralLimit,
			GeneralPeriod: cfg.RateLimit.GeneralPeriod,
			LoginLimit:    cfg.RateLimit.LoginLimit,
			LoginPeriod:   cfg.RateLimit.LoginPeriod,
		},
		Logger: appLogger,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first so no new funding operation is queued
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	if err := jobs.Stop(); err != nil {
		appLogger.Warn("Scheduler did not stop cleanly", map[string]any{"error": err.Error()})
	}
	fundingEngine.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

func databaseConfig(cfg *config.Config) (*database.Config, error) {
	dbConfig := &database.Config{
		Driver:             strings.ToLower(cfg.Database.Driver),
		Host:               cfg.Database.Host,
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Database,
		SSLMode:            cfg.Database.SSLMode,
		SQLitePath:         cfg.Database.SQLitePath,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		QueryTimeout:       cfg.Database.QueryTimeout,
		LogLevel:           cfg.Logger.Level,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		RetryAttempts:      cfg.Database.RetryAttempts,
		RetryDelay:         cfg.Database.RetryDelay,
		PoolMonitorPeriod:  cfg.Database.PoolMonitorPeriod,
	}

	if dbConfig.Driver == database.DriverPostgres {
		port, err := strconv.Atoi(cfg.Database.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid database port %q: %w", cfg.Database.Port, err)
		}
		dbConfig.Port = port
	}

	return dbConfig, dbConfig.Validate()
}

func demoUsers(users []config.DemoUserConfig) []portusecase.DemoUser {
	out := make([]portusecase.DemoUser, 0, len(users))
	for _, u := range users {
		out = append(out, portusecase.DemoUser{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Password:  u.Password,
		})
	}
	return out
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case database.DriverPostgres:
		required := map[string]string{
			"database.host (or CF_DB_HOST)":         cfg.Database.Host,
			"database.port (or CF_DB_PORT)":         cfg.Database.Port,
			"database.username (or CF_DB_USERNAME)": cfg.Database.Username,
			"database.password (or CF_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or CF_DB_NAME)":     cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	case database.DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			missingConfigs = append(missingConfigs, "database.sqlitePath")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s", cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Funding.QueueBuffer <= 0 {
		missingConfigs = append(missingConfigs, "funding.queueBuffer")
	}
	if cfg.Funding.MaxConflictRetries < 0 {
		return fmt.Errorf("funding.maxConflictRetries must be non-negative, got %d", cfg.Funding.MaxConflictRetries)
	}
	if cfg.Identity.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "identity.jwtSecret (or CF_IDENTITY_JWT_SECRET)")
	}
	if cfg.Identity.CookieName == "" {
		missingConfigs = append(missingConfigs, "identity.cookieName")
	}
	if cfg.Identity.SessionTTL <= 0 {
		missingConfigs = append(missingConfigs, "identity.sessionTtl")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		slices.Sort(missingConfigs)
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		} else {
			warnings = append(warnings, "database.driver sqlite is not meant for production")
		}
		if !cfg.Identity.CookieSecure {
			warnings = append(warnings, "identity.cookieSecure should be true in production")
		}
		if len(cfg.Identity.JWTSecret) < 32 {
			warnings = append(warnings, "identity.jwtSecret should be at least 32 bytes")
		}
		if cfg.Seed.Enabled {
			warnings = append(warnings, "seed.enabled creates demo accounts in production")
		}
		if slices.Contains(cfg.CORS.AllowedOrigins, "*") {
			warnings = append(warnings, "cors.allowedOrigins allows any origin with credentials")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
