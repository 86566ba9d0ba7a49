package datafetcher

import (
	"sync"
	"time"

	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/types"
)

var storeLogger = logger.GetForComponent("pool_store")

// PoolStore holds the pool set currently served. Replacing the set swaps the
// pointer, so every view holding the previous set resets on its next access.
// Until a set is loaded Current returns nil.
type PoolStore struct {
	mu       sync.RWMutex
	set      *types.PoolSet
	source   string
	loadedAt time.Time
}

func NewPoolStore(set *types.PoolSet) *PoolStore {
	s := &PoolStore{set: set}
	if set != nil {
		s.loadedAt = time.Now()
	}
	return s
}

// Current returns the pool set being served, nil when none is loaded. Callers must not mutate it.
func (s *PoolStore) Current() *types.PoolSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Replace swaps in a new pool set. A nil set is stored as an empty one.
func (s *PoolStore) Replace(set *types.PoolSet, source string) {
	if set == nil {
		set = types.NewPoolSet(nil)
	}
	s.mu.Lock()
	s.set = set
	s.source = source
	s.loadedAt = time.Now()
	s.mu.Unlock()

	storeLogger.Info().
		Str("source", source).
		Int("pools", set.Len()).
		Msg("Pool set replaced")
}

// Reload re-reads path and replaces the set. The current set is kept when the file cannot be loaded.
func (s *PoolStore) Reload(path string) error {
	set, err := LoadPoolsFromFile(path)
	if err != nil {
		storeLogger.Error().Err(err).Str("path", path).Msg("Pool reload failed, keeping current set")
		return err
	}
	s.Replace(set, path)
	return nil
}

// Info returns where the current set came from and when it was loaded.
func (s *PoolStore) Info() (source string, loadedAt time.Time, count int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.loadedAt, s.set.Len()
}

// Loaded reports whether a pool set has been loaded or uploaded.
func (s *PoolStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set != nil
}
