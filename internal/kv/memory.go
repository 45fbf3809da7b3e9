package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	value []byte
	meta  Metadata
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

func (s *MemoryStore) GetWithMetadata(_ context.Context, key string) ([]byte, Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	if !ok {
		return nil, Metadata{}, ErrNotFound
	}
	value := make([]byte, len(rec.value))
	copy(value, rec.value)
	return value, rec.meta, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, meta Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = memoryRecord{value: stored, meta: meta}
	return nil
}
