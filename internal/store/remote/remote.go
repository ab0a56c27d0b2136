package remote

import (
	"context"
	"errors"
	"time"

	"performx/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store is the Postgres-backed primary document store.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the employees and config tables when missing.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&store.EmployeeRow{}, &store.ConfigRow{})
}

func (s *Store) ListEmployees(ctx context.Context) ([]store.EmployeeRow, error) {
	var rows []store.EmployeeRow
	err := s.db.WithContext(ctx).
		Order("updated_at ASC").
		Find(&rows).Error
	return rows, mapError(err)
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*store.EmployeeRow, error) {
	var row store.EmployeeRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (s *Store) InsertEmployee(ctx context.Context, row *store.EmployeeRow) error {
	row.Revision = 1
	row.UpdatedAt = time.Now().UTC()
	return mapError(s.db.WithContext(ctx).Create(row).Error)
}

func (s *Store) UpdateEmployee(ctx context.Context, row *store.EmployeeRow, expectedRevision int64) error {
	res := s.db.WithContext(ctx).
		Model(&store.EmployeeRow{}).
		Where("id = ? AND revision = ?", row.ID, expectedRevision).
		Updates(map[string]any{
			"data":       row.Data,
			"revision":   expectedRevision + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or someone bumped the revision first.
		var exists int64
		if err := s.db.WithContext(ctx).
			Model(&store.EmployeeRow{}).
			Where("id = ?", row.ID).
			Count(&exists).Error; err != nil {
			return mapError(err)
		}
		if exists == 0 {
			return store.ErrNotFound
		}
		return store.ErrRevisionConflict
	}
	row.Revision = expectedRevision + 1
	return nil
}

func (s *Store) GetConfig(ctx context.Context) (*store.ConfigRow, error) {
	var row store.ConfigRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", store.ConfigRowID).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (s *Store) UpsertConfig(ctx context.Context, row *store.ConfigRow, expectedRevision int64) error {
	row.ID = store.ConfigRowID
	if expectedRevision == 0 {
		row.Revision = 1
		row.UpdatedAt = time.Now().UTC()
		return mapError(s.db.WithContext(ctx).Create(row).Error)
	}

	res := s.db.WithContext(ctx).
		Model(&store.ConfigRow{}).
		Where("id = ? AND revision = ?", store.ConfigRowID, expectedRevision).
		Updates(map[string]any{
			"data":       row.Data,
			"revision":   expectedRevision + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrRevisionConflict
	}
	row.Revision = expectedRevision + 1
	return nil
}

// ReplaceAll swaps the complete dataset in one transaction. Used by restore:
// either everything applies or nothing does.
func (s *Store) ReplaceAll(ctx context.Context, employees []store.EmployeeRow, cfg *store.ConfigRow) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&store.EmployeeRow{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&store.ConfigRow{}).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		for i := range employees {
			employees[i].Revision = 1
			employees[i].UpdatedAt = now
			if err := tx.Create(&employees[i]).Error; err != nil {
				return err
			}
		}
		cfg.ID = store.ConfigRowID
		cfg.Revision = 1
		cfg.UpdatedAt = now
		return tx.Create(cfg).Error
	})
	return mapError(err)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return store.ErrDuplicateID
	}
	return err
}
