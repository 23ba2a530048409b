package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Store owns the published Snapshot. Readers never lock: a reload builds a
// complete Snapshot first and then swaps the pointer.
type Store struct {
	Loader  Loader
	Log     *zap.Logger
	Metrics *Metrics

	current atomic.Pointer[Snapshot]
}

func NewStore(loader Loader, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{Loader: loader, Log: log}
}

// Load reads the dataset and publishes the result. On failure the
// previously published Snapshot, if any, stays in place.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	snap, err := s.Loader.Load(ctx)
	s.Metrics.observeLoad(snap, err)
	if err != nil {
		s.Log.Error("catalog load failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	prev := s.current.Swap(snap)
	fields := []zap.Field{
		zap.String("version", snap.Version),
		zap.String("source", snap.Source),
		zap.Int("products", snap.Len()),
		zap.Int("categories", snap.CategoryCount()),
		zap.Duration("duration", time.Since(start)),
	}
	if prev != nil {
		fields = append(fields, zap.String("previous_version", prev.Version))
	}
	s.Log.Info("catalog loaded", fields...)

	return snap, nil
}

func (s *Store) CurrentSnapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Ping reports readiness: a Snapshot has been published.
func (s *Store) Ping(_ context.Context) error {
	_, err := s.CurrentSnapshot()
	return err
}

// Refresh reloads the dataset every interval until ctx is done. Load
// failures are logged and otherwise ignored.
func (s *Store) Refresh(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = s.Load(ctx)
		}
	}
}
