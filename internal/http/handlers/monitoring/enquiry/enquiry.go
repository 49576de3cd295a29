// Package enquiry реализует HTTP-обработчик мониторингового запроса по
// существующему субъекту бюро. При наличии секции presentation вместе с
// отчётом запрашивается презентационный PDF.
package enquiry

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/oybekdev/crif-gateway/internal/http/dto"
	"github.com/oybekdev/crif-gateway/internal/http/response"
	"github.com/oybekdev/crif-gateway/internal/lib/sl"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// Handler управляет HTTP-запросами мониторинга.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики мониторинга.
type Service interface {
	Monitor(ctx context.Context, req *models.MERequest) (*models.MEResponse, error)
	MonitorWithReport(ctx context.Context, req *models.MERequest, pres models.PresentationOptions) (*models.PresentationResponse, error)
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
	const op = "handlers.monitoring.enquiry"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req dto.MonitoringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	meReq, err := req.ToModel()
	if err != nil {
		log.Error("failed to map request", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	if req.Presentation != nil {
		presResp, err := h.service.MonitorWithReport(r.Context(), meReq, req.Presentation.ToModel())
		if err != nil {
			log.Error("failed to run monitoring with report", sl.Err(err))
			w.WriteHeader(response.StatusForError(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Info("monitoring completed with report", slog.Bool("success", presResp.Success))
		render.JSON(w, r, response.OKWithData(dto.FromMEPresentation(presResp)))
		return
	}

	meResp, err := h.service.Monitor(r.Context(), meReq)
	if err != nil {
		log.Error("failed to run monitoring", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("monitoring completed", slog.Bool("success", meResp.Success))
	render.JSON(w, r, response.OKWithData(dto.FromMEResponse(meResp)))
}
