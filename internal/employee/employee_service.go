package employee

import (
	"context"
	"time"

	employeeerrors "performx/internal/employee/errors"
	"performx/internal/events"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if !AccessLevel(req.RoleAccess).Valid() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRoleAccess
	}

	doc := Employee{
		ID:               req.ID,
		Name:             req.Name,
		RoleAccess:       AccessLevel(req.RoleAccess),
		IsActive:         true,
		Role:             req.Role,
		Department:       req.Department,
		Email:            req.Email,
		Avatar:           req.Avatar,
		PerformanceScore: req.PerformanceScore,
		JoiningDate:      req.JoiningDate,
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	rec, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapStoreError(err)
	}

	s.publishUpserted(rid, rec)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", rec.Doc.ID),
	)
	return toResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, MapStoreError(err)
	}
	return toListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapStoreError(err)
	}
	return toResponse(*rec), nil
}

// Update overlays the supplied fields onto the current document. Fields
// absent from the request keep their value; roleAccess is immutable here.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int64("revision", req.Revision),
	)

	if req.PerformanceScore != nil && (*req.PerformanceScore < 0 || *req.PerformanceScore > 5) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidScore
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return EmployeeResponse{}, MapStoreError(err)
	}

	doc := rec.Doc
	applyOverlay(&doc, req)

	out, err := s.repo.Save(ctx, doc, req.Revision)
	if err != nil {
		s.logger.Warn("update employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapStoreError(err)
	}

	s.publishUpserted(rid, out)
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return toResponse(*out), nil
}

// Deactivate toggles isActive off. Employees are never hard-deleted.
func (s *service) Deactivate(ctx context.Context, id string) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.Mutate(ctx, id, func(doc *Employee) error {
		doc.IsActive = false
		return nil
	})
	if err != nil {
		s.logger.Error("deactivate employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, MapStoreError(err)
	}

	s.publishUpserted(rid, rec)
	s.logger.Info("deactivate employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return toResponse(*rec), nil
}

func (s *service) publishUpserted(rid string, rec *Record) {
	events.PublishAsync(s.publisher, s.logger, rec.Doc.ID, events.EmployeeUpserted{
		EventType:  events.TypeEmployeeUpserted,
		RequestID:  rid,
		EmployeeID: rec.Doc.ID,
		Revision:   rec.Revision,
		OccurredAt: time.Now().UTC(),
	})
}

func applyOverlay(doc *Employee, req UpdateEmployeeRequest) {
	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Role != nil {
		doc.Role = *req.Role
	}
	if req.Department != nil {
		doc.Department = *req.Department
	}
	if req.Email != nil {
		doc.Email = *req.Email
	}
	if req.Avatar != nil {
		doc.Avatar = *req.Avatar
	}
	if req.PerformanceScore != nil {
		doc.PerformanceScore = *req.PerformanceScore
	}
	if req.IsActive != nil {
		doc.IsActive = *req.IsActive
	}
	if req.InternalNotes != nil {
		doc.InternalNotes = *req.InternalNotes
	}
}
