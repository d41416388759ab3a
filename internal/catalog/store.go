package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/beanlog/cuppa/pkg/models"
)

// Snapshot is one complete, immutable view of the loaded catalog.
// Readers must not mutate Records.
type Snapshot struct {
	Records  []models.Record
	Source   string
	Encoding string
	LoadedAt time.Time
}

// Store holds the current catalog snapshot and swaps it atomically on
// reload: concurrent readers see either the previous complete snapshot
// or the new one, never a partial state.
type Store struct {
	path     string
	logger   *zap.Logger
	current  atomic.Pointer[Snapshot]
	group    singleflight.Group
	reloads  atomic.Int64
	failures atomic.Int64
}

// NewStore creates a store reading from the catalog file at path.
// Nothing is loaded until Load or Reload is called.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the catalog source path.
func (s *Store) Path() string { return s.path }

// Reloads returns the number of successful loads.
func (s *Store) Reloads() int64 { return s.reloads.Load() }

// Failures returns the number of failed loads.
func (s *Store) Failures() int64 { return s.failures.Load() }

// Load populates the snapshot if the catalog has not been loaded yet.
func (s *Store) Load(ctx context.Context) error {
	if s.current.Load() != nil {
		return nil
	}
	_, err := s.Reload(ctx)
	return err
}

// Snapshot returns the current snapshot, or ErrUnavailable when no load
// has ever succeeded.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrUnavailable
	}
	return snap, nil
}

// Reload reads the catalog file and atomically replaces the snapshot.
// Concurrent calls are coalesced into a single read; a failed reload
// leaves the previous snapshot serving.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, _ := s.group.Do("reload", func() (any, error) {
		records, stats, err := Load(s.path)
		if err != nil {
			s.failures.Add(1)
			catalogReloadFailuresTotal.Inc()
			s.logger.Warn("catalog load failed", zap.String("path", s.path), zap.Error(err))
			return nil, err
		}

		snap := &Snapshot{
			Records:  records,
			Source:   s.path,
			Encoding: stats.Encoding,
			LoadedAt: time.Now().UTC(),
		}
		s.current.Store(snap)
		s.reloads.Add(1)
		catalogRecords.Set(float64(len(records)))
		catalogReloadsTotal.Inc()
		s.logger.Info("catalog loaded",
			zap.String("path", s.path),
			zap.String("encoding", stats.Encoding),
			zap.Int("records", stats.Records),
			zap.Int("countries", stats.Countries),
			zap.Int("coerced_cells", stats.CoercedCells),
		)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
