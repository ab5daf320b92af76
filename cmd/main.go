package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/courseos/backend/docs"
	"github.com/courseos/backend/internal/auth"
	"github.com/courseos/backend/internal/cache"
	"github.com/courseos/backend/internal/config"
	"github.com/courseos/backend/internal/handlers"
	"github.com/courseos/backend/internal/jobs"
	"github.com/courseos/backend/internal/logger"
	"github.com/courseos/backend/internal/middleware"
	"github.com/courseos/backend/internal/repositories"
	"github.com/courseos/backend/internal/search"
	"github.com/courseos/backend/internal/services"
	"github.com/courseos/backend/internal/storage/postgrest"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// catalogStorage groups the storage collaborators of the catalog service
type catalogStorage struct {
	modules   services.ModuleRepository
	lessons   services.LessonRepository
	resources services.ResourceRepository
	orders    services.OrderRepository
	close     func()
}

// @title CourseOS Catalog API
// @version 1.0
// @description API for browsing, searching and ordering course modules, lessons and resources

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CourseOS Catalog Service", zap.String("storage", cfg.StorageDriver))

	// Open storage
	storage, err := openStorage(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.close()

	// Connect to Redis when the catalog cache is enabled
	var catalogCache services.CatalogCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		catalogCache = cache.NewCatalogCache(rdb, cfg.Redis.CacheTTL)
	}

	// Initialize services
	catalogService := services.NewCatalogService(storage.modules, storage.lessons, storage.resources, storage.orders, catalogCache, logger.Logger)
	navigationService := services.NewNavigationService(catalogService, logger.Logger)
	orderingService := services.NewOrderingService(catalogService, logger.Logger)
	searchFanout := search.NewFanout(catalogService, logger.Logger)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, navigationService, logger.Logger)
	searchHandler := handlers.NewSearchHandler(searchFanout, search.EngineConfig{
		Debounce:      cfg.Search.Debounce,
		LookupTimeout: cfg.Search.LookupTimeout,
	}, cfg.CORS.AllowedOrigins, logger.Logger)
	adminOrderHandler := handlers.NewAdminOrderHandler(orderingService, logger.Logger)

	// Initialize auth middleware
	tokenValidator := auth.NewTokenValidator(cfg.JWT.Secret)
	adminMiddleware := auth.RoleMiddleware(tokenValidator, cfg.JWT.AdminRole)

	// Start the order repair job
	repairJob := jobs.NewOrderRepairJob(orderingService, 0, logger.Logger)
	if cfg.Jobs.OrderRepairSchedule != "" {
		if err := repairJob.Start(cfg.Jobs.OrderRepairSchedule); err != nil {
			logger.Logger.Fatal("Failed to start order repair job", zap.Error(err))
		}
	}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Register public catalog routes
		catalogHandler.RegisterRoutes(r)
		// Register search routes
		searchHandler.RegisterRoutes(r)
		// Register admin routes with role middleware
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			adminOrderHandler.RegisterRoutes(r)
		})
	})

	// Start server. WriteTimeout is left unset so live search connections are not cut.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repairJob.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// openStorage builds the storage collaborators for the configured driver
func openStorage(cfg *config.Config) (*catalogStorage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgREST:
		client := postgrest.NewClient(cfg.PostgREST.URL, cfg.PostgREST.APIKey, cfg.PostgREST.Timeout)
		return &catalogStorage{
			modules:   client,
			lessons:   client,
			resources: client,
			orders:    client,
			close:     func() {},
		}, nil
	default:
		// Connect to database
		db, err := connectDB(cfg.DSN())
		if err != nil {
			return nil, err
		}

		// Run migrations
		if err := runMigrations(db); err != nil {
			db.Close()
			return nil, err
		}

		return &catalogStorage{
			modules:   repositories.NewModuleRepository(db),
			lessons:   repositories.NewLessonRepository(db),
			resources: repositories.NewResourceRepository(db),
			orders:    repositories.NewOrderRepository(db),
			close:     func() { db.Close() },
		}, nil
	}
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "catalog_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
