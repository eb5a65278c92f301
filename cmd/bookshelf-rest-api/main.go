// cmd/bookshelf-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/bookshelf/internal/api/rest/v1"
	"github.com/MGTheTrain/bookshelf/internal/app"
	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/cache"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/security"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(context.Background(), restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	redis    *redis.Client
	services v1.Services
}

func (d *appDependencies) close(log logger.Logger) {
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			log.Warn(fmt.Sprintf("failed to close redis client: %v", err))
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn(fmt.Sprintf("failed to close database: %v", err))
	}
}

// openDB opens the configured database
var openDB = persistence.NewDBConnection

// initializeDependencies sets up all application components. Connections
// opened before a failure are closed again.
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (_ *appDependencies, err error) {
	// Initialize database
	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	deps := &appDependencies{db: db}
	defer func() {
		if err != nil {
			deps.close(log)
		}
	}()

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	bookRepo, err := persistence.NewGormBookRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create book repository: %w", err)
	}

	authorRepo, err := persistence.NewGormAuthorRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create author repository: %w", err)
	}

	heroRepo, err := persistence.NewGormHeroRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hero repository: %w", err)
	}

	teamRepo, err := persistence.NewGormTeamRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create team repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	bookRepo, deps.redis, err = withBookCache(ctx, bookRepo, cfg.Cache, log)
	if err != nil {
		return nil, err
	}

	// Initialize security primitives
	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	issuer, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Initialize services
	tx := persistence.NewGormTransactor(db)

	bookService, err := app.NewBookService(bookRepo, authorRepo, tx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create book service: %w", err)
	}

	authorService, err := app.NewAuthorService(authorRepo, bookRepo, tx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}

	heroService, err := app.NewHeroService(heroRepo, teamRepo, tx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hero service: %w", err)
	}

	teamService, err := app.NewTeamService(teamRepo, heroRepo, tx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create team service: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, issuer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	catalogService, err := app.NewCatalogService(app.SeedItems(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	log.Info("Application services initialized successfully")
	deps.services = v1.Services{
		Books:   bookService,
		Authors: authorService,
		Heroes:  heroService,
		Teams:   teamService,
		Auth:    authService,
		Catalog: catalogService,
		Ping: func(ctx context.Context) error {
			return persistence.Ping(ctx, db)
		},
	}
	return deps, nil
}

// withBookCache puts the redis cache-aside layer in front of book lookups when enabled
func withBookCache(ctx context.Context, repo books.BookRepository, settings config.CacheSettings, log logger.Logger) (books.BookRepository, *redis.Client, error) {
	if !settings.Enabled {
		return repo, nil, nil
	}

	rdb, err := cache.NewRedisClient(ctx, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Book cache enabled at ", settings.Addr)
	return cache.NewCachedBookRepository(repo, cache.NewRedisStore(rdb), settings.TTL, log), rdb, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if cfg.Logger.LogLevel != config.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := v1.NewRouter(cfg.CORS, cfg.RateLimit, deps.services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
