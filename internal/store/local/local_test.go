package local

import (
	"context"
	"testing"

	"performx/internal/store"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	s := New(db)
	assert.NoError(t, s.Migrate())
	return s
}

func TestStore_ReplaceEmployeeUpserts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.ReplaceEmployee(ctx, &store.EmployeeRow{ID: "1", Revision: 1, Data: `{"id":"1","name":"Sarah Chen"}`}))

	// Same id replaces, never duplicates.
	assert.NoError(t, s.ReplaceEmployee(ctx, &store.EmployeeRow{ID: "1", Revision: 2, Data: `{"id":"1","name":"S. Chen"}`}))

	rows, err := s.ListEmployees(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Revision)

	row, err := s.GetEmployee(ctx, "1")
	assert.NoError(t, err)
	assert.Contains(t, row.Data, "S. Chen")
}

func TestStore_GetEmployee_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_ReplaceConfigForcesSingletonID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.ReplaceConfig(ctx, &store.ConfigRow{ID: "whatever", Revision: 1, Data: `{}`}))

	cfg, err := s.GetConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, store.ConfigRowID, cfg.ID)
}

func TestStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.NoError(t, s.ReplaceEmployee(ctx, &store.EmployeeRow{ID: "old", Revision: 5, Data: `{}`}))
	assert.NoError(t, s.ReplaceConfig(ctx, &store.ConfigRow{Revision: 5, Data: `{"companyName":"Old"}`}))

	err := s.ReplaceAll(ctx,
		[]store.EmployeeRow{
			{ID: "1", Revision: 1, Data: `{"id":"1"}`},
			{ID: "2", Revision: 1, Data: `{"id":"2"}`},
		},
		&store.ConfigRow{ID: store.ConfigRowID, Revision: 1, Data: `{"companyName":"PerformX AI"}`},
	)
	assert.NoError(t, err)

	rows, err := s.ListEmployees(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = s.GetEmployee(ctx, "old")
	assert.ErrorIs(t, err, store.ErrNotFound)

	cfg, err := s.GetConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Revision)
	assert.Contains(t, cfg.Data, "PerformX AI")
}
