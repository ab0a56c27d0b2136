package syncer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"performx/internal/store"

	"go.uber.org/zap"
)

const mirrorWriteTimeout = 10 * time.Second

// Status is what the sync indicator endpoint reports: whether reads are being
// served from the mirror and how many mirror writes are still in flight.
type Status struct {
	Degraded bool  `json:"degraded"`
	InFlight int64 `json:"inFlight"`
}

// Syncer routes reads and writes between the primary store and the local
// mirror. The primary is the system of record: writes go there synchronously
// and are shadowed into the mirror asynchronously, best-effort. When the
// primary is unreachable the syncer degrades to serving reads from the mirror
// and rejecting writes with store.ErrUnavailable; a background probe promotes
// it back and re-hydrates the mirror (the primary copy fully replaces the
// local one).
type Syncer struct {
	primary store.Primary
	mirror  store.Mirror
	logger  *zap.Logger

	degraded atomic.Bool
	inflight atomic.Int64
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func New(primary store.Primary, mirror store.Mirror, logger ...*zap.Logger) *Syncer {
	l := zap.L().Named("syncer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer")
	}
	return &Syncer{
		primary: primary,
		mirror:  mirror,
		logger:  l,
		stop:    make(chan struct{}),
	}
}

// Hydrate probes the primary once and, when reachable, copies its full
// dataset into the mirror. When unreachable the syncer starts degraded and
// serves whatever the mirror already holds.
func (s *Syncer) Hydrate(ctx context.Context) error {
	if err := s.primary.Ping(ctx); err != nil {
		s.degraded.Store(true)
		s.logger.Warn("primary unreachable on startup, serving from mirror", zap.Error(err))
		return nil
	}
	return s.rehydrateMirror(ctx)
}

func (s *Syncer) rehydrateMirror(ctx context.Context) error {
	rows, err := s.primary.ListEmployees(ctx)
	if err != nil {
		return err
	}
	cfg, err := s.primary.GetConfig(ctx)
	if err != nil && err != store.ErrNotFound {
		return err
	}
	if err := s.mirror.ReplaceAll(ctx, rows, cfg); err != nil {
		// Mirror trouble never blocks the service.
		s.logger.Warn("mirror hydration failed", zap.Error(err))
		return nil
	}
	s.logger.Info("mirror hydrated", zap.Int("employees", len(rows)))
	return nil
}

// StartProbe periodically re-checks the primary and flips between healthy and
// degraded mode. Recovery re-hydrates the mirror from the primary.
func (s *Syncer) StartProbe(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.probe()
			}
		}
	}()
}

func (s *Syncer) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
	defer cancel()

	err := s.primary.Ping(ctx)
	switch {
	case err == nil && s.degraded.Load():
		s.logger.Info("primary recovered, leaving degraded mode")
		if err := s.rehydrateMirror(ctx); err != nil {
			s.logger.Warn("rehydrate after recovery failed", zap.Error(err))
			return
		}
		s.degraded.Store(false)
	case err != nil && !s.degraded.Load():
		s.logger.Warn("primary unreachable, entering degraded mode", zap.Error(err))
		s.degraded.Store(true)
	}
}

// Close stops the probe loop and waits for in-flight mirror writes.
func (s *Syncer) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

func (s *Syncer) Status() Status {
	return Status{
		Degraded: s.degraded.Load(),
		InFlight: s.inflight.Load(),
	}
}

// --- reads ---

func (s *Syncer) ListEmployees(ctx context.Context) ([]store.EmployeeRow, error) {
	if s.degraded.Load() {
		return s.mirror.ListEmployees(ctx)
	}
	rows, err := s.primary.ListEmployees(ctx)
	if err != nil && err != store.ErrNotFound {
		s.markDegraded(err)
		return s.mirror.ListEmployees(ctx)
	}
	return rows, err
}

func (s *Syncer) GetEmployee(ctx context.Context, id string) (*store.EmployeeRow, error) {
	if s.degraded.Load() {
		return s.mirror.GetEmployee(ctx, id)
	}
	row, err := s.primary.GetEmployee(ctx, id)
	if err != nil && err != store.ErrNotFound {
		s.markDegraded(err)
		return s.mirror.GetEmployee(ctx, id)
	}
	return row, err
}

func (s *Syncer) GetConfig(ctx context.Context) (*store.ConfigRow, error) {
	if s.degraded.Load() {
		return s.mirror.GetConfig(ctx)
	}
	row, err := s.primary.GetConfig(ctx)
	if err != nil && err != store.ErrNotFound {
		s.markDegraded(err)
		return s.mirror.GetConfig(ctx)
	}
	return row, err
}

// --- writes ---

func (s *Syncer) InsertEmployee(ctx context.Context, row *store.EmployeeRow) error {
	if s.degraded.Load() {
		return store.ErrUnavailable
	}
	if err := s.primary.InsertEmployee(ctx, row); err != nil {
		return s.writeFailed(err)
	}
	s.mirrorEmployee(*row)
	return nil
}

func (s *Syncer) UpdateEmployee(ctx context.Context, row *store.EmployeeRow, expectedRevision int64) error {
	if s.degraded.Load() {
		return store.ErrUnavailable
	}
	if err := s.primary.UpdateEmployee(ctx, row, expectedRevision); err != nil {
		return s.writeFailed(err)
	}
	s.mirrorEmployee(*row)
	return nil
}

func (s *Syncer) UpsertConfig(ctx context.Context, row *store.ConfigRow, expectedRevision int64) error {
	if s.degraded.Load() {
		return store.ErrUnavailable
	}
	if err := s.primary.UpsertConfig(ctx, row, expectedRevision); err != nil {
		return s.writeFailed(err)
	}
	s.mirrorConfig(*row)
	return nil
}

func (s *Syncer) ReplaceAll(ctx context.Context, employees []store.EmployeeRow, cfg *store.ConfigRow) error {
	if s.degraded.Load() {
		return store.ErrUnavailable
	}
	if err := s.primary.ReplaceAll(ctx, employees, cfg); err != nil {
		return s.writeFailed(err)
	}

	rows := make([]store.EmployeeRow, len(employees))
	copy(rows, employees)
	cfgCopy := *cfg
	s.spawn(func(ctx context.Context) {
		if err := s.mirror.ReplaceAll(ctx, rows, &cfgCopy); err != nil {
			s.logger.Warn("mirror replace-all failed", zap.Error(err))
		}
	})
	return nil
}

func (s *Syncer) mirrorEmployee(row store.EmployeeRow) {
	s.spawn(func(ctx context.Context) {
		if err := s.mirror.ReplaceEmployee(ctx, &row); err != nil {
			s.logger.Warn("mirror employee write failed",
				zap.String("id", row.ID),
				zap.Error(err),
			)
		}
	})
}

func (s *Syncer) mirrorConfig(row store.ConfigRow) {
	s.spawn(func(ctx context.Context) {
		if err := s.mirror.ReplaceConfig(ctx, &row); err != nil {
			s.logger.Warn("mirror config write failed", zap.Error(err))
		}
	})
}

func (s *Syncer) spawn(fn func(ctx context.Context)) {
	s.wg.Add(1)
	s.inflight.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inflight.Add(-1)
		ctx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// writeFailed separates row-level outcomes, which the caller must see, from
// infrastructure failures, which flip the syncer into degraded mode.
func (s *Syncer) writeFailed(err error) error {
	switch err {
	case store.ErrNotFound, store.ErrDuplicateID, store.ErrRevisionConflict:
		return err
	}
	s.markDegraded(err)
	return store.ErrUnavailable
}

func (s *Syncer) markDegraded(err error) {
	if s.degraded.CompareAndSwap(false, true) {
		s.logger.Warn("primary unreachable, entering degraded mode", zap.Error(err))
	}
}
