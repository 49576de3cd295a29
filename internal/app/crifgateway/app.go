// Package crifgateway собирает приложение шлюза: кодек, транспорт до
// бюро, сервис и HTTP-сервер REST-фасада.
package crifgateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/oybekdev/crif-gateway/internal/config"
	"github.com/oybekdev/crif-gateway/internal/services/bureau"
	"github.com/oybekdev/crif-gateway/internal/soap"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	builder := soap.NewBuilder(cfg.CRIF.UserID, cfg.CRIF.Password)
	parser := soap.NewParser()
	transport := soap.NewClient(
		cfg.CRIF.EndpointURL,
		cfg.CRIF.Timeout,
		cfg.CRIF.RateLimitRPS,
		cfg.CRIF.RateLimitBurst,
	)

	bureauService := bureau.NewService(builder, parser, transport, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, bureauService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
