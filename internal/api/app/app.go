package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/brainsync/internal/api/http"
	"github.com/aussiebroadwan/brainsync/internal/api/service"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/internal/api/store/document"
	"github.com/aussiebroadwan/brainsync/pkg/cryptox"
	"github.com/aussiebroadwan/brainsync/pkg/docstore/memdb"
	"github.com/aussiebroadwan/brainsync/pkg/docstore/mongodb"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
	"github.com/aussiebroadwan/brainsync/pkg/jwtx"
	"github.com/aussiebroadwan/brainsync/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v1.0.0"
)

// Application encapsulates the API with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	store  store.Store
	tokens *jwtx.Issuer

	// Services
	authService        *service.AuthService
	translationService *service.TranslationService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds the application. Selecting MongoDB and
// failing to reach it within the connect timeout is an error; there is no
// fallback to the in-memory store.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "brainsync-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initTokens(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	if err := app.initHTTP(); err != nil {
		return nil, err
	}

	return app, nil
}

// Handler exposes the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("brainsync api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"in_memory_db", app.cfg.UseInMemoryDB,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down brainsync api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.store.Close(ctx); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("brainsync api stopped")
	return nil
}

// initTokens builds the token issuer. Development runs without SECRET_KEY
// get a random per-process key, so tokens do not survive a restart.
func (app *Application) initTokens() error {
	secret := app.cfg.SecretKey
	if secret == "" {
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return fmt.Errorf("failed to generate signing key: %w", err)
		}
		secret = generated
		app.logger.Warn("SECRET_KEY not set, using an ephemeral signing key")
	}

	issuer, err := jwtx.NewIssuer(jwtx.IssuerConfig{
		Algorithm: app.cfg.Algorithm,
		Secret:    []byte(secret),
		TTL:       app.cfg.AccessTokenTTL,
		Issuer:    app.cfg.TokenIssuer,
		Leeway:    5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = issuer
	return nil
}

// initDatabase selects the backend and, for MongoDB, applies index migrations
func (app *Application) initDatabase(ctx context.Context) error {
	if app.cfg.UseInMemoryDB {
		app.logger.Warn("using in-memory database, data is lost on restart")
		app.store = document.NewStore(memdb.New())
		return nil
	}

	db, err := mongodb.Connect(ctx, mongodb.Options{
		URI:            app.cfg.MongoURL,
		Database:       app.cfg.DatabaseName,
		ConnectTimeout: app.cfg.MongoConnectTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("connected to MongoDB", "database", app.cfg.DatabaseName)
	app.store = document.NewStore(db)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.store,
		Tokens: app.tokens,
	}
	app.translationService = &service.TranslationService{Store: app.store}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	proxies, err := httpx.ParseTrustedProxies(app.cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router := httpapi.NewRouter(app.store, app.logger, httpapi.RouterConfig{
		BuildVersion:   BuildVersion,
		AllowedOrigins: app.cfg.AllowedOrigins,
		Limits:         app.cfg.RateLimits,
		TrustedProxies: proxies,
	})

	router.AuthService = app.authService
	router.TranslationService = app.translationService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
