package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"weatherapp/internal/config"
	"weatherapp/internal/forecast"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	cfg             *config.Config
	readinessCheck  func(ctx context.Context) error
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, forecastService forecast.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecastService,
		cfg:             cfg,
	}

	app.registerRoutes()

	return app
}

// SetReadinessCheck installs the probe behind /ready
func (app *App) SetReadinessCheck(check func(ctx context.Context) error) {
	app.readinessCheck = check
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		app.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestContext bounds a handler's work by the configured request timeout
func (app *App) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if app.cfg.Server.RequestTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), app.cfg.Server.RequestTimeout)
}
