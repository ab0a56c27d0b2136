package analytics

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"performx/internal/employee"
	"performx/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	snapshotCacheKey = "performx:analytics:snapshot"
	snapshotCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type service struct {
	repo   employee.Repository
	cache  *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

// NewService builds the aggregate service. A nil cache disables caching and
// every call recomputes.
func NewService(repo employee.Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	rid := contextutil.GetRequestID(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, snapshotCacheKey).Result()
		if err == nil {
			var snap Snapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return snap, nil
			}
			// Unreadable cache entry; fall through and recompute.
		} else if err != redis.Nil {
			s.logger.Warn("analytics cache read failed",
				zap.String("request_id", rid),
				zap.Error(err),
			)
		}
	}

	// Collapse concurrent recomputes into one list + aggregate pass.
	v, err, _ := s.group.Do(snapshotCacheKey, func() (any, error) {
		records, err := s.repo.List(ctx)
		if err != nil {
			return nil, employee.MapStoreError(err)
		}
		snap := compute(records)

		if s.cache != nil {
			payload, err := json.Marshal(snap)
			if err == nil {
				if err := s.cache.Set(ctx, snapshotCacheKey, payload, snapshotCacheTTL).Err(); err != nil {
					s.logger.Warn("analytics cache write failed",
						zap.String("request_id", rid),
						zap.Error(err),
					)
				}
			}
		}
		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func compute(records []employee.Record) Snapshot {
	snap := Snapshot{Departments: []DepartmentAverage{}}

	type deptAgg struct {
		sum   float64
		count int
	}
	depts := make(map[string]*deptAgg)

	var scoreSum float64
	var progressSum, progressCount int
	for _, rec := range records {
		doc := rec.Doc
		if !doc.IsActive {
			continue
		}
		snap.ActiveCount++
		scoreSum += doc.PerformanceScore

		switch {
		case doc.PerformanceScore >= 4.5:
			snap.Distribution.Exceeds++
		case doc.PerformanceScore >= 3.5:
			snap.Distribution.Meets++
		default:
			snap.Distribution.Developing++
		}

		snap.TotalGoals += len(doc.Goals)
		for _, g := range doc.Goals {
			progressSum += g.Progress
			progressCount++
		}

		agg := depts[doc.Department]
		if agg == nil {
			agg = &deptAgg{}
			depts[doc.Department] = agg
		}
		agg.sum += doc.PerformanceScore
		agg.count++
	}

	if snap.ActiveCount > 0 {
		snap.AvgScore = round2(scoreSum / float64(snap.ActiveCount))
	}
	if progressCount > 0 {
		snap.AvgGoalCompletion = round2(float64(progressSum) / float64(progressCount))
	}

	for name, agg := range depts {
		snap.Departments = append(snap.Departments, DepartmentAverage{
			Department: name,
			AvgScore:   round2(agg.sum / float64(agg.count)),
			Headcount:  agg.count,
		})
	}
	sort.Slice(snap.Departments, func(i, j int) bool {
		return snap.Departments[i].Department < snap.Departments[j].Department
	})

	return snap
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
