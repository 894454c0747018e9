package repository

import (
	"context"
	"log/slog"
	"sync"

	"github.com/joseph-ayodele/homepage/constants"
	"github.com/joseph-ayodele/homepage/internal/entity"
)

// FallbackStore serves entries from a primary store and degrades each failed
// operation to an in-memory cache. With a nil primary it is memory-only.
// Cached entries carry negative ids; the primary only ever assigns positive ones.
type FallbackStore struct {
	primary EntryStore
	cache   *MemoryStore
	logger  *slog.Logger
	hooks   []func(healthy bool)

	// notifyMu orders state changes and hook calls together.
	notifyMu sync.Mutex
	mu       sync.Mutex
	healthy  bool
}

type FallbackOption func(*FallbackStore)

// WithStatusHook registers fn to be called whenever the primary store flips
// between healthy and failing.
func WithStatusHook(fn func(healthy bool)) FallbackOption {
	return func(s *FallbackStore) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

func NewFallbackStore(primary EntryStore, logger *slog.Logger, opts ...FallbackOption) *FallbackStore {
	s := &FallbackStore{
		primary: primary,
		cache:   newFallbackCache(),
		logger:  logger,
		healthy: primary != nil,
	}
	for _, o := range opts {
		o(s)
	}
	for _, fn := range s.hooks {
		fn(s.healthy)
	}
	return s
}

// OpenEntryStore initializes the SQL store described by cfg. If the store cannot be
// initialized the returned FallbackStore runs memory-only for the life of the process.
func OpenEntryStore(ctx context.Context, cfg Config, logger *slog.Logger, opts ...FallbackOption) *FallbackStore {
	sqlStore := NewSQLEntryStore(cfg, logger)
	if err := sqlStore.Initialize(ctx); err != nil {
		logger.Error("entries store unavailable, falling back to in-memory storage", "error", err)
		return NewFallbackStore(nil, logger, opts...)
	}
	return NewFallbackStore(sqlStore, logger, opts...)
}

func (s *FallbackStore) Insert(ctx context.Context, senderName, message string) (*entity.Entry, error) {
	if s.primary != nil {
		e, err := s.primary.Insert(ctx, senderName, message)
		if err == nil {
			s.setHealthy(true)
			return e, nil
		}
		s.logger.Warn("insert failed, storing entry in memory", "error", err)
		s.setHealthy(false)
	}
	return s.cache.Insert(ctx, senderName, message)
}

func (s *FallbackStore) ListAll(ctx context.Context) ([]*entity.Entry, error) {
	if s.primary != nil {
		entries, err := s.primary.ListAll(ctx)
		if err == nil {
			s.setHealthy(true)
			return entries, nil
		}
		s.logger.Warn("list failed, serving in-memory entries", "error", err)
		s.setHealthy(false)
	}
	return s.cache.ListAll(ctx)
}

// Delete routes negative ids to the cache and the rest to the primary. A positive
// id is never cached, so a failed primary delete has nothing to fall back to.
func (s *FallbackStore) Delete(ctx context.Context, id int64) error {
	if id < 0 || s.primary == nil {
		return s.cache.Delete(ctx, id)
	}
	if err := s.primary.Delete(ctx, id); err != nil {
		s.logger.Warn("delete failed, entry left in store", "entry_id", id, "error", err)
		s.setHealthy(false)
		return nil
	}
	s.setHealthy(true)
	return nil
}

// CachedLen reports how many entries live only in memory.
func (s *FallbackStore) CachedLen() int {
	return s.cache.Len()
}

// Mode reports which backend is serving entries.
func (s *FallbackStore) Mode() constants.StorageMode {
	if s.primary == nil {
		return constants.StorageModeMemory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.healthy {
		return constants.StorageModePersistent
	}
	return constants.StorageModeDegraded
}

func (s *FallbackStore) setHealthy(healthy bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	changed := s.healthy != healthy
	s.healthy = healthy
	s.mu.Unlock()

	if !changed {
		return
	}
	s.logger.Info("storage health changed", "healthy", healthy)
	for _, fn := range s.hooks {
		fn(healthy)
	}
}
