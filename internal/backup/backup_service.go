package backup

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"performx/internal/config"
	"performx/internal/employee"
	"performx/internal/events"
	"performx/internal/shared/apperror"
	"performx/internal/shared/contextutil"
	"performx/internal/store"

	"go.uber.org/zap"
)

// Replacer is the slice of the sync layer restore needs: the all-or-nothing
// dataset swap.
type Replacer interface {
	ReplaceAll(ctx context.Context, employees []store.EmployeeRow, cfg *store.ConfigRow) error
}

//go:generate mockgen -source=backup_service.go -destination=mock/backup_service_mock.go -package=mock
type Service interface {
	Export(ctx context.Context) (BackupDocument, error)
	Restore(ctx context.Context, req RestoreRequest) (RestoreResponse, error)
}

type service struct {
	employees  employee.Repository
	configRepo config.Repository
	replacer   Replacer
	publisher  events.Publisher
	logger     *zap.Logger
}

func NewService(
	employees employee.Repository,
	configRepo config.Repository,
	replacer Replacer,
	publisher events.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("backup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.service")
	}
	return &service{
		employees:  employees,
		configRepo: configRepo,
		replacer:   replacer,
		publisher:  publisher,
		logger:     l,
	}
}

func (s *service) Export(ctx context.Context) (BackupDocument, error) {
	rid := contextutil.GetRequestID(ctx)

	records, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("backup export failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return BackupDocument{}, employee.MapStoreError(err)
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("backup export failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return BackupDocument{}, employee.MapStoreError(err)
	}

	doc := BackupDocument{
		Employees: make([]employee.Employee, 0, len(records)),
		Config:    cfg.Doc,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for _, rec := range records {
		doc.Employees = append(doc.Employees, rec.Doc)
	}

	s.logger.Info("backup export success",
		zap.String("request_id", rid),
		zap.Int("employees", len(doc.Employees)),
	)
	return doc, nil
}

func (s *service) Restore(ctx context.Context, req RestoreRequest) (RestoreResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rows := make([]store.EmployeeRow, 0, len(*req.Employees))
	seen := make(map[string]struct{}, len(*req.Employees))
	for _, doc := range *req.Employees {
		if doc.ID == "" || !doc.RoleAccess.Valid() {
			return RestoreResponse{}, apperror.New(
				apperror.CodeInvalidInput,
				"every employee in a backup needs an id and a valid roleAccess",
				http.StatusBadRequest,
			)
		}
		if _, dup := seen[doc.ID]; dup {
			return RestoreResponse{}, apperror.New(
				apperror.CodeInvalidInput,
				"duplicate employee id "+doc.ID,
				http.StatusBadRequest,
			)
		}
		seen[doc.ID] = struct{}{}

		doc.Normalize()
		data, err := json.Marshal(doc)
		if err != nil {
			return RestoreResponse{}, apperror.ErrInvalidInput
		}
		// Revisions restart at 1: the backup is a new baseline, not a
		// continuation of the replaced dataset's history.
		rows = append(rows, store.EmployeeRow{ID: doc.ID, Revision: 1, Data: string(data)})
	}

	cfgDoc := *req.Config
	cfgDoc.Normalize()
	cfgData, err := json.Marshal(cfgDoc)
	if err != nil {
		return RestoreResponse{}, apperror.ErrInvalidInput
	}
	cfgRow := &store.ConfigRow{ID: store.ConfigRowID, Revision: 1, Data: string(cfgData)}

	if err := s.replacer.ReplaceAll(ctx, rows, cfgRow); err != nil {
		s.logger.Error("backup restore failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return RestoreResponse{}, employee.MapStoreError(err)
	}

	s.logger.Info("backup restore success",
		zap.String("request_id", rid),
		zap.Int("employees", len(rows)),
	)
	events.PublishAsync(s.publisher, s.logger, events.TypeBackupRestored, events.BackupRestored{
		EventType:  events.TypeBackupRestored,
		RequestID:  rid,
		Employees:  len(rows),
		OccurredAt: time.Now().UTC(),
	})

	return RestoreResponse{Employees: len(rows)}, nil
}
