package absence

import (
	"context"

	"performx/internal/employee"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, employeeID string, req CreateAbsenceRequest) (employee.EmployeeResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, employeeID string, req CreateAbsenceRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
		// Newest first.
		doc.Absences = append([]employee.Absence{{
			ID:     uuid.NewString(),
			Date:   req.Date,
			Type:   req.Type,
			Reason: req.Reason,
		}}, doc.Absences...)
		return nil
	})
	if err != nil {
		s.logger.Error("add absence failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("add absence success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}, nil
}
