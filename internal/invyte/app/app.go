package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/invyte/internal/invyte/http"
	"github.com/aussiebroadwan/invyte/internal/invyte/notify"
	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/internal/invyte/store/drivers/sqlite"
	"github.com/aussiebroadwan/invyte/pkg/jwtx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// ErrMissingSecret is returned outside dev when no JWT secret is configured.
var ErrMissingSecret = errors.New("INVYTE_JWT_SECRET is required outside dev")

// Application encapsulates the invyte service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	tokens *jwtx.HS256
	sender notify.Sender

	// Services
	userService     *service.UserService
	eventService    *service.EventService
	rsvpService     *service.RSVPService
	wishlistService *service.WishlistService
	dispatchService *service.DispatchService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the service logger from cfg. A nil out logs to stdout.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "invyte",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  out,
	})
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg, nil),
	}

	tokens, err := NewTokens(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.tokens = tokens

	db, err := OpenStore(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	sender, err := notify.New(cfg.Notify, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize notification sender: %w", err)
	}
	app.sender = sender
	app.logger.Info("notification sender ready", slog.String("driver", cfg.Notify.Driver))

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.dispatchService.Start()

	app.logger.Info("invyte starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
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

// Shutdown drains HTTP, stops the dispatcher and closes the sender and store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down invyte...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.dispatchService.Stop()

	if err := app.sender.Close(); err != nil {
		app.logger.Error("error closing notification sender", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("invyte stopped")
	return nil
}

// OpenStore opens the sqlite store and applies migrations.
func OpenStore(cfg Config, logger *slog.Logger) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", slog.String("file", cfg.DatabaseFile))
	return db, nil
}

// NewTokens builds the HS256 verifier. In dev a missing secret is replaced
// by a random one that lives as long as the process.
func NewTokens(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		if cfg.Env != "dev" {
			return nil, ErrMissingSecret
		}
		secret = make([]byte, jwtx.MinSecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate dev secret: %w", err)
		}
		logger.Warn("no INVYTE_JWT_SECRET set, using an ephemeral dev secret")
	}

	tokens, err := jwtx.NewHS256(secret, cfg.JWTIssuer, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT verifier: %w", err)
	}
	return tokens, nil
}

func (app *Application) initServices() {
	outbox := &service.Outbox{
		Store:         app.db,
		InviteBaseURL: app.cfg.InviteBaseURL,
	}

	app.userService = &service.UserService{Store: app.db}
	app.wishlistService = &service.WishlistService{Store: app.db}
	app.rsvpService = &service.RSVPService{
		Store:    app.db,
		Wishlist: app.wishlistService,
		Outbox:   outbox,
	}
	app.eventService = &service.EventService{
		Store:    app.db,
		Roster:   &service.RosterService{Store: app.db, Outbox: outbox},
		Wishlist: app.wishlistService,
	}

	app.dispatchService = service.NewDispatchService(
		app.db,
		app.sender,
		app.logger,
		app.cfg.DispatchInterval,
		app.cfg.DispatchBatchSize,
		app.cfg.NotificationRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.EventService = app.eventService
	router.RSVPService = app.rsvpService
	router.WishlistService = app.wishlistService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
