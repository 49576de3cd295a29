// Package health реализует HTTP-обработчик проверки работоспособности
// сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/oybekdev/crif-gateway/internal/http/response"
)

// Handler управляет запросами проверки состояния сервиса.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]string{
		"status": "healthy",
	}))
}
