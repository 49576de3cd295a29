// Package crifgateway предоставляет маршруты REST-фасада шлюза.
package crifgateway

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alertslist "github.com/oybekdev/crif-gateway/internal/http/handlers/alerts/list"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/application/create"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/application/update"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/health"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/monitoring/enquiry"
	"github.com/oybekdev/crif-gateway/internal/services/bureau"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, bureauService *bureau.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/applications", create.New(logger, bureauService).ServeHTTP)
		r.Patch("/applications", update.New(logger, bureauService).ServeHTTP)
		r.Post("/monitoring", enquiry.New(logger, bureauService).ServeHTTP)
		r.Get("/alerts", alertslist.New(logger, bureauService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
