package catalog

import (
	"sync"
	"time"
)

// DefaultTTL matches the original portal's five minute cache window on
// the manually edited workbook.
const DefaultTTL = 5 * time.Minute

// Store serves parsed catalogue snapshots from a time-limited cache.
// The workbook is re-read after the TTL elapses; there is no
// invalidation on write because the file is edited out of band.
type Store struct {
	path string
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	data     *Data
	loadedAt time.Time
}

// NewStore creates a store for the workbook at path. A non-positive ttl
// falls back to DefaultTTL.
func NewStore(path string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{path: path, ttl: ttl, now: time.Now}
}

// Get returns the current snapshot, reloading the workbook if the cached
// one is stale. A failed load is returned as-is; stale data is never
// served in its place.
func (s *Store) Get() (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data != nil && s.now().Sub(s.loadedAt) < s.ttl {
		return s.data, nil
	}

	data, err := LoadFile(s.path)
	if err != nil {
		s.data = nil
		return nil, err
	}
	s.data = data
	s.loadedAt = s.now()
	return s.data, nil
}

// Invalidate drops the cached snapshot so the next Get reloads.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
}
