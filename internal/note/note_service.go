package note

import (
	"context"

	"performx/internal/employee"
	"performx/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=note_service.go -destination=mock/note_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, employeeID string, req CreateNoteRequest) (employee.EmployeeResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("note.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("note.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, employeeID string, req CreateNoteRequest) (employee.EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	author := req.Author
	if author == "" {
		if callerID := contextutil.GetEmployeeID(ctx); callerID != "" {
			if caller, err := s.repo.Get(ctx, callerID); err == nil {
				author = caller.Doc.Name
			}
		}
	}

	rec, err := s.repo.Mutate(ctx, employeeID, func(doc *employee.Employee) error {
		// Newest first.
		doc.NotesHistory = append([]employee.NoteEntry{{
			ID:     uuid.NewString(),
			Date:   req.Date,
			Text:   req.Text,
			Author: author,
		}}, doc.NotesHistory...)
		return nil
	})
	if err != nil {
		s.logger.Error("add note failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("add note success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return employee.EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}, nil
}
