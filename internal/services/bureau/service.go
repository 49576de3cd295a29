// Package bureau содержит бизнес-логику обращений к кредитному бюро:
// валидацию запросов, сборку конверта, вызов транспорта и разбор ответа.
package bureau

import (
	"context"
	"log/slog"
	"time"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/lib/sl"
	"github.com/oybekdev/crif-gateway/internal/metrics"
	"github.com/oybekdev/crif-gateway/internal/models"
	"github.com/oybekdev/crif-gateway/internal/soap"
)

// Transport определяет отправку собранного конверта в бюро.
type Transport interface {
	// Send отправляет конверт и возвращает сырое тело ответа.
	Send(ctx context.Context, operation, envelope string) (string, error)
}

// Builder определяет сборку конверта запроса.
type Builder interface {
	Build(req models.Request) (string, error)
}

// Parser определяет разбор сырых ответов бюро.
type Parser interface {
	ParseNAE(raw string) (*models.NAEResponse, error)
	ParseME(raw string) (*models.MEResponse, error)
	ParseAUE(raw string) (*models.AUEResponse, error)
	ParsePAE(raw string) (*models.PAEResponse, error)
	ParsePresentation(raw string, base models.Operation) (*models.PresentationResponse, error)
}

// Service реализует шесть операций бюро поверх кодека и транспорта.
type Service struct {
	builder   Builder
	parser    Parser
	transport Transport
	log       *slog.Logger
}

// NewService создаёт сервис бюро.
func NewService(builder Builder, parser Parser, transport Transport, log *slog.Logger) *Service {
	return &Service{
		builder:   builder,
		parser:    parser,
		transport: transport,
		log:       log,
	}
}

var _ Builder = (*soap.Builder)(nil)
var _ Parser = (*soap.Parser)(nil)
var _ Transport = (*soap.Client)(nil)

// NewApplication регистрирует новую кредитную заявку (NAE).
func (s *Service) NewApplication(ctx context.Context, req *models.NAERequest) (*models.NAEResponse, error) {
	if err := ValidateNAE(req); err != nil {
		return nil, err
	}
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpNAE, NAE: req})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParseNAE(raw)
	s.observe(models.OpNAE, err, resp != nil && resp.Success)
	return resp, err
}

// NewApplicationWithReport регистрирует заявку и запрашивает
// презентационный PDF-отчёт (NAEP).
func (s *Service) NewApplicationWithReport(ctx context.Context, req *models.NAERequest, pres models.PresentationOptions) (*models.PresentationResponse, error) {
	if err := ValidateNAE(req); err != nil {
		return nil, err
	}
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpNAEP, NAE: req, Presentation: &pres})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParsePresentation(raw, models.OpNAE)
	s.observe(models.OpNAEP, err, resp != nil && resp.Success)
	return resp, err
}

// Monitor выполняет мониторинговый запрос по субъекту (ME).
func (s *Service) Monitor(ctx context.Context, req *models.MERequest) (*models.MEResponse, error) {
	if err := ValidateME(req); err != nil {
		return nil, err
	}
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpME, ME: req})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParseME(raw)
	s.observe(models.OpME, err, resp != nil && resp.Success)
	return resp, err
}

// MonitorWithReport выполняет мониторинговый запрос с презентационным
// PDF-отчётом (MEP).
func (s *Service) MonitorWithReport(ctx context.Context, req *models.MERequest, pres models.PresentationOptions) (*models.PresentationResponse, error) {
	if err := ValidateME(req); err != nil {
		return nil, err
	}
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpMEP, ME: req, Presentation: &pres})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParsePresentation(raw, models.OpME)
	s.observe(models.OpMEP, err, resp != nil && resp.Success)
	return resp, err
}

// UpdateApplication обновляет ранее переданную заявку (AUE).
func (s *Service) UpdateApplication(ctx context.Context, req *models.AUERequest) (*models.AUEResponse, error) {
	if err := ValidateAUE(req); err != nil {
		return nil, err
	}
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpAUE, AUE: req})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParseAUE(raw)
	s.observe(models.OpAUE, err, resp != nil && resp.Success)
	return resp, err
}

// PortfolioAlerts выбирает портфельные алерты (PAE).
func (s *Service) PortfolioAlerts(ctx context.Context, req *models.PAERequest) (*models.PAEResponse, error) {
	raw, err := s.roundTrip(ctx, models.Request{Op: models.OpPAE, PAE: req})
	if err != nil {
		return nil, err
	}
	resp, err := s.parser.ParsePAE(raw)
	s.observe(models.OpPAE, err, resp != nil && resp.Success)
	return resp, err
}

func (s *Service) roundTrip(ctx context.Context, req models.Request) (string, error) {
	op := req.Op.String()
	log := s.log.With(slog.String("operation", op))

	envelope, err := s.builder.Build(req)
	if err != nil {
		log.Error("failed to build envelope", sl.Err(err))
		s.count(req.Op, criferr.KindOf(err).String())
		return "", err
	}

	start := time.Now()
	raw, err := s.transport.Send(ctx, op, envelope)
	metrics.BureauRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error("bureau call failed", sl.Err(err))
		s.count(req.Op, criferr.KindOf(err).String())
		return "", err
	}

	log.Info("bureau call completed", slog.Duration("took", time.Since(start)))
	return raw, nil
}

func (s *Service) observe(op models.Operation, err error, success bool) {
	switch {
	case err != nil:
		s.count(op, criferr.KindOf(err).String())
	case success:
		s.count(op, "success")
	default:
		s.count(op, "business_error")
	}
}

func (s *Service) count(op models.Operation, outcome string) {
	metrics.BureauRequestsTotal.WithLabelValues(op.String(), outcome).Inc()
}
