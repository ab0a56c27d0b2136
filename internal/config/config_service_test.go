package config

import (
	"context"
	"encoding/json"
	"testing"

	configerrors "performx/internal/config/errors"
	"performx/internal/shared/apperror"
	"performx/internal/store"

	"github.com/stretchr/testify/assert"
)

type fakeConfigSource struct {
	row *store.ConfigRow
}

func (f *fakeConfigSource) GetConfig(ctx context.Context) (*store.ConfigRow, error) {
	if f.row == nil {
		return nil, store.ErrNotFound
	}
	out := *f.row
	return &out, nil
}

func (f *fakeConfigSource) UpsertConfig(ctx context.Context, row *store.ConfigRow, expectedRevision int64) error {
	if f.row == nil {
		if expectedRevision != 0 {
			return store.ErrRevisionConflict
		}
		row.Revision = 1
		stored := *row
		f.row = &stored
		return nil
	}
	if f.row.Revision != expectedRevision {
		return store.ErrRevisionConflict
	}
	row.Revision = expectedRevision + 1
	stored := *row
	f.row = &stored
	return nil
}

func storedConfig(t *testing.T, doc SystemConfig, revision int64) *store.ConfigRow {
	t.Helper()
	data, err := json.Marshal(doc)
	assert.NoError(t, err)
	return &store.ConfigRow{ID: store.ConfigRowID, Revision: revision, Data: string(data)}
}

func TestConfigService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored document with its revision", func(t *testing.T) {
		source := &fakeConfigSource{row: storedConfig(t, SystemConfig{
			CompanyName:      "PerformX AI",
			Departments:      []string{"Engineering", "Design"},
			DashboardWidgets: DashboardWidgets{Charts: true, Stats: true, AIAudit: true},
		}, 3)}
		svc := NewService(NewRepository(source))

		resp, err := svc.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "PerformX AI", resp.CompanyName)
		assert.Equal(t, []string{"Engineering", "Design"}, resp.Departments)
		assert.Equal(t, int64(3), resp.Revision)
	})

	t.Run("missing row maps to config not found", func(t *testing.T) {
		svc := NewService(NewRepository(&fakeConfigSource{}))

		_, err := svc.Get(ctx)
		assert.ErrorIs(t, err, configerrors.ErrConfigNotFound)
	})
}

func TestConfigService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("matching revision replaces the document", func(t *testing.T) {
		source := &fakeConfigSource{row: storedConfig(t, SystemConfig{
			CompanyName: "PerformX AI",
			Departments: []string{"Engineering"},
		}, 1)}
		svc := NewService(NewRepository(source))

		resp, err := svc.Update(ctx, UpdateConfigRequest{
			Revision:    1,
			CompanyName: "PerformX Global",
			Departments: []string{"Engineering", "HR"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "PerformX Global", resp.CompanyName)
		assert.Equal(t, int64(2), resp.Revision)

		got, err := svc.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "PerformX Global", got.CompanyName)
	})

	t.Run("stale revision is rejected without writing", func(t *testing.T) {
		source := &fakeConfigSource{row: storedConfig(t, SystemConfig{
			CompanyName: "PerformX AI",
			Departments: []string{"Engineering"},
		}, 4)}
		svc := NewService(NewRepository(source))

		_, err := svc.Update(ctx, UpdateConfigRequest{
			Revision:    3,
			CompanyName: "Should Not Land",
			Departments: []string{"Engineering"},
		})

		assert.ErrorIs(t, err, apperror.ErrRevisionConflict)

		got, getErr := svc.Get(ctx)
		assert.NoError(t, getErr)
		assert.Equal(t, "PerformX AI", got.CompanyName)
		assert.Equal(t, int64(4), got.Revision)
	})

	t.Run("store outage maps to unavailable", func(t *testing.T) {
		svc := NewService(NewRepository(failingConfigSource{}))

		_, err := svc.Update(ctx, UpdateConfigRequest{
			Revision:    1,
			CompanyName: "PerformX AI",
			Departments: []string{"Engineering"},
		})
		assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	})
}

type failingConfigSource struct{}

func (failingConfigSource) GetConfig(ctx context.Context) (*store.ConfigRow, error) {
	return nil, store.ErrUnavailable
}

func (failingConfigSource) UpsertConfig(ctx context.Context, row *store.ConfigRow, expectedRevision int64) error {
	return store.ErrUnavailable
}
