package review

import (
	"context"

	"performx/internal/employee"
	"performx/internal/shared/apperror"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=review_service.go -destination=mock/review_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, employeeID string, req CreateReviewRequest) (employee.EmployeeResponse, error)
	BatchAdd(ctx context.Context, req BatchReviewRequest) (BatchReviewResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, employeeID string, req CreateReviewRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
		appendReview(doc, req)
		return nil
	})
	if err != nil {
		s.logger.Error("add review failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("add review success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}, nil
}

func (s *service) BatchAdd(ctx context.Context, req BatchReviewRequest) (BatchReviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	order := make([]string, 0, len(req.Items))
	grouped := make(map[string][]CreateReviewRequest, len(req.Items))
	for _, item := range req.Items {
		if _, seen := grouped[item.EmployeeID]; !seen {
			order = append(order, item.EmployeeID)
		}
		grouped[item.EmployeeID] = append(grouped[item.EmployeeID], item.CreateReviewRequest)
	}

	resp := BatchReviewResponse{Results: make([]BatchReviewResult, 0, len(order))}
	for _, employeeID := range order {
		reviews := grouped[employeeID]
		rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
			for _, r := range reviews {
				appendReview(doc, r)
			}
			return nil
		})
		if err != nil {
			httpErr := apperror.ToHTTP(employee.MapStoreError(err))
			s.logger.Warn("batch review item failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.String("code", httpErr.Code),
			)
			resp.Results = append(resp.Results, BatchReviewResult{
				EmployeeID: employeeID,
				Error:      httpErr.Code,
			})
			resp.Failed++
			continue
		}
		resp.Results = append(resp.Results, BatchReviewResult{
			EmployeeID: employeeID,
			Ok:         true,
			Revision:   rec.Revision,
		})
	}

	return resp, nil
}

// Reviews are kept oldest first, so new ones go at the end.
func appendReview(doc *employee.Employee, req CreateReviewRequest) {
	doc.Reviews = append(doc.Reviews, employee.Review{
		ID:           uuid.NewString(),
		ReviewerName: req.ReviewerName,
		Date:         req.Date,
		Rating:       req.Rating,
		Comments:     req.Comments,
		Category:     req.Category,
	})
}
