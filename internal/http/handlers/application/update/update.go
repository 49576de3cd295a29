// Package update реализует HTTP-обработчик обновления ранее переданной
// кредитной заявки.
package update

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

// Handler управляет HTTP-запросами на обновление заявок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления заявки.
type Service interface {
	UpdateApplication(ctx context.Context, req *models.AUERequest) (*models.AUEResponse, error)
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
	const op = "handlers.application.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req dto.UpdateApplicationRequest
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

	aueReq, err := req.ToModel()
	if err != nil {
		log.Error("failed to map request", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	aueResp, err := h.service.UpdateApplication(r.Context(), aueReq)
	if err != nil {
		log.Error("failed to update application", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("application updated", slog.Bool("success", aueResp.Success))
	render.JSON(w, r, response.OKWithData(dto.FromAUEResponse(aueResp)))
}
