package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"performx/internal/analytics"
	"performx/internal/employee"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	records []employee.Record
	listErr error
}

func (f *fakeRepo) List(ctx context.Context) ([]employee.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Insert(ctx context.Context, doc employee.Employee) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Save(ctx context.Context, doc employee.Employee, expectedRevision int64) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Mutate(ctx context.Context, id string, fn func(doc *employee.Employee) error) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func record(id, dept string, score float64, active bool, goals ...employee.Goal) employee.Record {
	return employee.Record{
		Revision: 1,
		Doc: employee.Employee{
			ID:               id,
			Name:             "Employee " + id,
			Department:       dept,
			PerformanceScore: score,
			IsActive:         active,
			Goals:            goals,
		},
	}
}

const cacheKey = "performx:analytics:snapshot"

func TestAnalyticsService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips recompute", func(t *testing.T) {
		cached := analytics.Snapshot{ActiveCount: 7, AvgScore: 4.1, Departments: []analytics.DepartmentAverage{}}
		payload, _ := json.Marshal(cached)

		cache, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet(cacheKey).SetVal(string(payload))

		repo := &fakeRepo{listErr: errors.New("must not be called")}
		svc := analytics.NewService(repo, cache)

		snap, err := svc.Snapshot(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, snap)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("cache miss computes and stores the snapshot", func(t *testing.T) {
		repo := &fakeRepo{records: []employee.Record{
			record("1", "Engineering", 4.8, true, employee.Goal{Progress: 100}),
			record("2", "Engineering", 4.0, true, employee.Goal{Progress: 50}),
			record("3", "Design", 3.0, true),
		}}

		cache, cacheMock := redismock.NewClientMock()
		cacheMock.ExpectGet(cacheKey).RedisNil()
		cacheMock.Regexp().ExpectSet(cacheKey, `.+`, 60*time.Second).SetVal("OK")

		svc := analytics.NewService(repo, cache)
		snap, err := svc.Snapshot(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, snap.ActiveCount)
		assert.Equal(t, 2, snap.TotalGoals)
		assert.Equal(t, 3.93, snap.AvgScore)
		assert.Equal(t, 75.0, snap.AvgGoalCompletion)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("nil cache recomputes every call", func(t *testing.T) {
		repo := &fakeRepo{records: []employee.Record{
			record("1", "Engineering", 4.5, true),
		}}
		svc := analytics.NewService(repo, nil)

		snap, err := svc.Snapshot(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, snap.ActiveCount)
	})

	t.Run("inactive employees are excluded everywhere", func(t *testing.T) {
		repo := &fakeRepo{records: []employee.Record{
			record("1", "Engineering", 4.8, true, employee.Goal{Progress: 20}),
			record("2", "Engineering", 1.0, false, employee.Goal{Progress: 90}),
		}}
		svc := analytics.NewService(repo, nil)

		snap, err := svc.Snapshot(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, snap.ActiveCount)
		assert.Equal(t, 1, snap.TotalGoals)
		assert.Equal(t, 20.0, snap.AvgGoalCompletion)
		assert.Equal(t, 4.8, snap.AvgScore)
		assert.Len(t, snap.Departments, 1)
		assert.Equal(t, 1, snap.Departments[0].Headcount)
	})

	t.Run("distribution buckets at 4.5 and 3.5", func(t *testing.T) {
		repo := &fakeRepo{records: []employee.Record{
			record("1", "Engineering", 4.5, true),
			record("2", "Engineering", 4.49, true),
			record("3", "Design", 3.5, true),
			record("4", "Design", 3.49, true),
			record("5", "Sales", 2.0, true),
		}}
		svc := analytics.NewService(repo, nil)

		snap, err := svc.Snapshot(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, snap.Distribution.Exceeds)
		assert.Equal(t, 2, snap.Distribution.Meets)
		assert.Equal(t, 2, snap.Distribution.Developing)
	})

	t.Run("departments are averaged and sorted by name", func(t *testing.T) {
		repo := &fakeRepo{records: []employee.Record{
			record("1", "Sales", 4.0, true),
			record("2", "Design", 3.0, true),
			record("3", "Design", 4.0, true),
		}}
		svc := analytics.NewService(repo, nil)

		snap, err := svc.Snapshot(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []analytics.DepartmentAverage{
			{Department: "Design", AvgScore: 3.5, Headcount: 2},
			{Department: "Sales", AvgScore: 4.0, Headcount: 1},
		}, snap.Departments)
	})

	t.Run("list failure surfaces as an error", func(t *testing.T) {
		repo := &fakeRepo{listErr: errors.New("connection refused")}
		svc := analytics.NewService(repo, nil)

		_, err := svc.Snapshot(ctx)
		assert.Error(t, err)
	})
}
