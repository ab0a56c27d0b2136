package assessment

import (
	"context"

	"performx/internal/employee"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, employeeID string, req CreateAssessmentRequest) (employee.EmployeeResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assessment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, employeeID string, req CreateAssessmentRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
		// Newest first.
		doc.MonthlyAssessments = append([]employee.MonthlyAssessment{{
			ID:       uuid.NewString(),
			Month:    req.Month,
			Year:     req.Year,
			Rating:   req.Rating,
			Feedback: req.Feedback,
		}}, doc.MonthlyAssessments...)
		return nil
	})
	if err != nil {
		s.logger.Error("add assessment failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("add assessment success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}, nil
}
