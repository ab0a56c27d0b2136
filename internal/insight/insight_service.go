package insight

import (
	"context"

	"performx/internal/analytics"
	"performx/internal/employee"
	insighterrors "performx/internal/insight/errors"
	"performx/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=insight_service.go -destination=mock/insight_service_mock.go -package=mock
type Service interface {
	// Relay forwards a raw proxy body to the provider unchanged.
	Relay(ctx context.Context, req RelayRequest) (string, error)
	EmployeeSummary(ctx context.Context, employeeID string) (InsightResponse, error)
	YTDReport(ctx context.Context, employeeID string) (InsightResponse, error)
	OrgOutlook(ctx context.Context) (InsightResponse, error)
}

type service struct {
	generator Generator
	repo      employee.Repository
	analytics analytics.Service
	logger    *zap.Logger
}

// NewService builds the insight service. A nil generator means the proxy is
// not configured; every call then fails with ErrNotConfigured.
func NewService(generator Generator, repo employee.Repository, analyticsService analytics.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("insight.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.service")
	}
	return &service{generator: generator, repo: repo, analytics: analyticsService, logger: l}
}

func (s *service) Relay(ctx context.Context, req RelayRequest) (string, error) {
	if s.generator == nil {
		return "", insighterrors.ErrNotConfigured
	}

	params := GenerateParams{Model: req.Model, Contents: req.Contents}
	if req.Config != nil {
		params.SystemInstruction = req.Config.SystemInstruction
		params.Temperature = req.Config.Temperature
	}

	text, err := s.generator.Generate(ctx, params)
	if err != nil {
		s.logger.Error("genai relay failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("model", req.Model),
			zap.Error(err),
		)
		return "", err
	}
	return text, nil
}

func (s *service) EmployeeSummary(ctx context.Context, employeeID string) (InsightResponse, error) {
	rec, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return InsightResponse{}, employee.MapStoreError(err)
	}
	return s.generate(ctx, summaryParams(rec.Doc))
}

func (s *service) YTDReport(ctx context.Context, employeeID string) (InsightResponse, error) {
	rec, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return InsightResponse{}, employee.MapStoreError(err)
	}
	snap, err := s.analytics.Snapshot(ctx)
	if err != nil {
		return InsightResponse{}, err
	}
	return s.generate(ctx, ytdParams(rec.Doc, snap))
}

func (s *service) OrgOutlook(ctx context.Context) (InsightResponse, error) {
	snap, err := s.analytics.Snapshot(ctx)
	if err != nil {
		return InsightResponse{}, err
	}
	return s.generate(ctx, orgParams(snap))
}

func (s *service) generate(ctx context.Context, params GenerateParams) (InsightResponse, error) {
	if s.generator == nil {
		return InsightResponse{}, insighterrors.ErrNotConfigured
	}

	text, err := s.generator.Generate(ctx, params)
	if err != nil {
		s.logger.Error("insight generation failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("model", params.Model),
			zap.Error(err),
		)
		return InsightResponse{}, insighterrors.ErrProviderFailure
	}
	return InsightResponse{Text: text}, nil
}
