package config

import (
	"context"

	"performx/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=config_service.go -destination=mock/config_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (ConfigResponse, error)
	Update(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("config.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("config.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context) (ConfigResponse, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("get config failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return ConfigResponse{}, mapStoreError(err)
	}
	return ConfigResponse{SystemConfig: rec.Doc, Revision: rec.Revision}, nil
}

func (s *service) Update(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	doc := SystemConfig{
		CompanyName:      req.CompanyName,
		CompanyLogo:      req.CompanyLogo,
		Departments:      req.Departments,
		DashboardWidgets: req.DashboardWidgets,
	}
	rec, err := s.repo.Put(ctx, doc, req.Revision)
	if err != nil {
		s.logger.Error("update config failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return ConfigResponse{}, mapStoreError(err)
	}

	s.logger.Info("update config success",
		zap.String("request_id", rid),
		zap.Int64("revision", rec.Revision),
	)
	return ConfigResponse{SystemConfig: rec.Doc, Revision: rec.Revision}, nil
}
