package goal

import (
	"context"

	"performx/internal/employee"
	goalerrors "performx/internal/goal/errors"
	"performx/internal/shared/apperror"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=goal_service.go -destination=mock/goal_service_mock.go -package=mock
type Service interface {
	// Add appends a goal to the employee's list (oldest first).
	Add(ctx context.Context, employeeID string, req CreateGoalRequest) (employee.EmployeeResponse, error)
	// BatchUpdate applies progress updates across employees sequentially.
	BatchUpdate(ctx context.Context, req BatchUpdateRequest) (BatchUpdateResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("goal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("goal.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, employeeID string, req CreateGoalRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
		doc.Goals = append(doc.Goals, employee.Goal{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			Progress:    req.Progress,
			DueDate:     req.DueDate,
			Status:      req.Status,
		})
		return nil
	})
	if err != nil {
		s.logger.Error("add goal failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("add goal success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}, nil
}

func (s *service) BatchUpdate(ctx context.Context, req BatchUpdateRequest) (BatchUpdateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// Employees may only touch their own goals; the route itself is shared
	// with managers, so the ownership check lives here.
	if contextutil.GetRole(ctx) == string(employee.AccessEmployee) {
		self := contextutil.GetEmployeeID(ctx)
		for _, item := range req.Items {
			if item.EmployeeID != self {
				return BatchUpdateResponse{}, apperror.ErrForbidden
			}
		}
	}

	// Group per employee, preserving first-seen order, so each employee is
	// written exactly once per batch.
	order := make([]string, 0, len(req.Items))
	grouped := make(map[string][]GoalProgressUpdate, len(req.Items))
	for _, item := range req.Items {
		if _, seen := grouped[item.EmployeeID]; !seen {
			order = append(order, item.EmployeeID)
		}
		grouped[item.EmployeeID] = append(grouped[item.EmployeeID], item)
	}

	resp := BatchUpdateResponse{Results: make([]BatchItemResult, 0, len(order))}
	for _, employeeID := range order {
		updates := grouped[employeeID]
		rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
			for _, u := range updates {
				if !applyGoalUpdate(doc, u) {
					return goalerrors.ErrGoalNotFound
				}
			}
			return nil
		})
		if err != nil {
			httpErr := apperror.ToHTTP(employee.MapStoreError(err))
			s.logger.Warn("batch goal update item failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.String("code", httpErr.Code),
			)
			resp.Results = append(resp.Results, BatchItemResult{
				EmployeeID: employeeID,
				Error:      httpErr.Code,
			})
			resp.Failed++
			continue
		}
		resp.Results = append(resp.Results, BatchItemResult{
			EmployeeID: employeeID,
			Ok:         true,
			Revision:   rec.Revision,
		})
	}

	return resp, nil
}

func applyGoalUpdate(doc *employee.Employee, u GoalProgressUpdate) bool {
	for i := range doc.Goals {
		if doc.Goals[i].ID != u.GoalID {
			continue
		}
		doc.Goals[i].Progress = u.Progress
		if u.Status != nil {
			doc.Goals[i].Status = *u.Status
		} else if u.Progress >= 100 {
			doc.Goals[i].Status = employee.GoalCompleted
		}
		return true
	}
	return false
}
