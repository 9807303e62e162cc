package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/quecocino-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/quecocino-backend/internal/auth"
	"github.com/heartmarshall/quecocino-backend/internal/config"
	authsvc "github.com/heartmarshall/quecocino-backend/internal/service/auth"
	"github.com/heartmarshall/quecocino-backend/internal/service/profile"
	"github.com/heartmarshall/quecocino-backend/internal/transport/middleware"
	"github.com/heartmarshall/quecocino-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate limiter buckets are evicted.
const rateLimitCleanup = 5 * time.Minute

// App owns the HTTP server and everything it depends on.
type App struct {
	log        *slog.Logger
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	closeStore func(context.Context) error
}

// New connects the configured store and assembles services, handlers and
// the HTTP server. The server is not started.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	verifier, err := google.NewVerifier(ctx, cfg.Auth, logger)
	if err != nil {
		_ = closeStore(ctx)
		return nil, fmt.Errorf("google verifier: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	profileService := profile.NewService(logger, store, cfg.Profile)
	authService := authsvc.NewService(logger, verifier, profileService, jwtManager)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	handler := newHandler(logger, cfg, store, authService, limiter)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		log:        logger,
		httpServer: server,
		limiter:    limiter,
		closeStore: closeStore,
	}, nil
}

// newHandler builds the router wrapped in the global middleware chain.
// Bearer authentication is applied per route by rest.Routes.
func newHandler(
	logger *slog.Logger,
	cfg *config.Config,
	store ProfileStore,
	authService *authsvc.Service,
	limiter *middleware.RateLimiter,
) http.Handler {
	authHandler := rest.NewAuthHandler(authService, logger)
	healthHandler := rest.NewHealthHandler(store, cfg.Store.Driver, BuildVersion())

	mux := http.NewServeMux()
	rest.Routes(mux, authHandler, healthHandler,
		limiter.Limit(cfg.Server.SignInRateLimit),
		middleware.Auth(authService),
	)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}

// Addr returns the address the server listens on.
func (a *App) Addr() string {
	return a.httpServer.Addr
}

// Run serves HTTP until Shutdown is called. It never returns
// http.ErrServerClosed.
func (a *App) Run() error {
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then stops the rate limiter and
// closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	a.limiter.Stop()
	if err := a.closeStore(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}

// Run is the application entry point. It loads configuration, starts the
// server and blocks until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	application, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Run()
	}()

	logger.Info("http server listening", slog.String("addr", application.Addr()))

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
