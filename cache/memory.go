package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	tags      map[string]struct{}
	expiresAt time.Time
}

// MemoryStore is an in-process [Store] for tests and single-replica
// deployments. Expired entries are dropped lazily on Get and swept during
// Invalidate; there is no background eviction.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrEntryNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, ErrEntryNotFound
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, tags []Tag, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tagSet[tag.String()] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:     stored,
		tags:      tagSet,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, tags ...Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
			continue
		}
		for _, tag := range tags {
			if _, ok := entry.tags[tag.String()]; ok {
				delete(s.entries, key)
				break
			}
		}
	}
	return nil
}

// Len reports the number of live entries. Intended for tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
