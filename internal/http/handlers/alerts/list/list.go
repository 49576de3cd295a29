// Package list реализует HTTP-обработчик выборки портфельных алертов.
// Параметры выборки передаются query-строкой.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/oybekdev/crif-gateway/internal/http/dto"
	"github.com/oybekdev/crif-gateway/internal/http/response"
	"github.com/oybekdev/crif-gateway/internal/lib/sl"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// Handler управляет HTTP-запросами выборки алертов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выборки алертов.
type Service interface {
	PortfolioAlerts(ctx context.Context, req *models.PAERequest) (*models.PAEResponse, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alerts.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	req := dto.AlertsRequest{
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		AlertCode: q.Get("alert_code"),
	}
	if raw := q.Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("invalid max_results", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("max_results must be an integer"))
			return
		}
		req.MaxResults = n
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	paeReq, err := req.ToModel()
	if err != nil {
		log.Error("failed to map request", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	paeResp, err := h.service.PortfolioAlerts(r.Context(), paeReq)
	if err != nil {
		log.Error("failed to list alerts", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("alerts listed", slog.Int("total", paeResp.TotalCount))
	render.JSON(w, r, response.OKWithData(dto.FromPAEResponse(paeResp)))
}
