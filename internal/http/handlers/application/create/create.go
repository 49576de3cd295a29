// Package create реализует HTTP-обработчик регистрации новой кредитной
// заявки в бюро.
//
// Handler принимает JSON-запрос с данными субъекта и договора, валидирует
// их, отображает в доменную модель и вызывает операцию регистрации.
// Если в запросе присутствует секция presentation, вместе с регистрацией
// запрашивается презентационный PDF-отчёт.
package create

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

// Handler управляет HTTP-запросами на регистрацию заявок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации заявки.
type Service interface {
	NewApplication(ctx context.Context, req *models.NAERequest) (*models.NAEResponse, error)
	NewApplicationWithReport(ctx context.Context, req *models.NAERequest, pres models.PresentationOptions) (*models.PresentationResponse, error)
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
	const op = "handlers.application.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req dto.NewApplicationRequest
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

	naeReq, err := req.ToModel()
	if err != nil {
		log.Error("failed to map request", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	if req.Presentation != nil {
		presResp, err := h.service.NewApplicationWithReport(r.Context(), naeReq, req.Presentation.ToModel())
		if err != nil {
			log.Error("failed to create application with report", sl.Err(err))
			w.WriteHeader(response.StatusForError(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Info("application created with report", slog.Bool("success", presResp.Success))
		render.JSON(w, r, response.OKWithData(dto.FromNAEPresentation(presResp)))
		return
	}

	naeResp, err := h.service.NewApplication(r.Context(), naeReq)
	if err != nil {
		log.Error("failed to create application", sl.Err(err))
		w.WriteHeader(response.StatusForError(err))
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("application created", slog.Bool("success", naeResp.Success))
	render.JSON(w, r, response.OKWithData(dto.FromNAEResponse(naeResp)))
}
