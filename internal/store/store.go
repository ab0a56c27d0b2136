package store

import (
	"context"
	"errors"
	"time"
)

// ConfigRowID is the fixed id of the singleton configuration row.
const ConfigRowID = "main_config"

// EmployeeRow is one entry of the employees table: the full employee document
// serialized into data, plus a monotonic revision used as the optimistic
// concurrency token. Revision 1 is assigned on insert and every successful
// update increments it by one.
type EmployeeRow struct {
	ID        string `gorm:"primaryKey"`
	Revision  int64  `gorm:"not null;default:1"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (EmployeeRow) TableName() string { return "employees" }

// ConfigRow holds the serialized SystemConfig under ConfigRowID.
type ConfigRow struct {
	ID        string `gorm:"primaryKey"`
	Revision  int64  `gorm:"not null;default:1"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (ConfigRow) TableName() string { return "config" }

var (
	ErrNotFound         = errors.New("store: row not found")
	ErrDuplicateID      = errors.New("store: row id already exists")
	ErrRevisionConflict = errors.New("store: revision conflict")
	ErrUnavailable      = errors.New("store: primary unavailable")
)

// Reader is the read surface shared by the primary store and the mirror.
type Reader interface {
	ListEmployees(ctx context.Context) ([]EmployeeRow, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeRow, error)
	GetConfig(ctx context.Context) (*ConfigRow, error)
}

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock

// Primary is the system of record. Writes are revision-guarded: updates name
// the revision the caller observed and fail with ErrRevisionConflict when a
// concurrent writer got there first.
type Primary interface {
	Reader
	InsertEmployee(ctx context.Context, row *EmployeeRow) error
	UpdateEmployee(ctx context.Context, row *EmployeeRow, expectedRevision int64) error
	UpsertConfig(ctx context.Context, row *ConfigRow, expectedRevision int64) error
	ReplaceAll(ctx context.Context, employees []EmployeeRow, cfg *ConfigRow) error
	Ping(ctx context.Context) error
}

// Mirror is the best-effort local copy. It carries no concurrency guard of
// its own: rows arrive with an authoritative revision and replace whatever is
// there (insert-or-replace keyed by id).
type Mirror interface {
	Reader
	ReplaceEmployee(ctx context.Context, row *EmployeeRow) error
	ReplaceConfig(ctx context.Context, row *ConfigRow) error
	ReplaceAll(ctx context.Context, employees []EmployeeRow, cfg *ConfigRow) error
}
