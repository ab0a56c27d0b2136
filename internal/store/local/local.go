package local

import (
	"context"
	"errors"

	"performx/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the SQLite mirror. Every write is insert-or-replace keyed by id;
// revisions arrive already decided by the primary.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

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

func (s *Store) GetConfig(ctx context.Context) (*store.ConfigRow, error) {
	var row store.ConfigRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", store.ConfigRowID).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (s *Store) ReplaceEmployee(ctx context.Context, row *store.EmployeeRow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

func (s *Store) ReplaceConfig(ctx context.Context, row *store.ConfigRow) error {
	row.ID = store.ConfigRowID
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

func (s *Store) ReplaceAll(ctx context.Context, employees []store.EmployeeRow, cfg *store.ConfigRow) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&store.EmployeeRow{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&store.ConfigRow{}).Error; err != nil {
			return err
		}
		for i := range employees {
			if err := tx.Create(&employees[i]).Error; err != nil {
				return err
			}
		}
		if cfg == nil {
			return nil
		}
		return tx.Create(cfg).Error
	})
}

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
