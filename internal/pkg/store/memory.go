package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var _ Store = &MemoryStore{}

type MemoryStore struct {
	mu     sync.RWMutex
	logger *zap.Logger
	data   map[string]map[string]string
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger,
		data:   map[string]map[string]string{},
	}
}

func (s *MemoryStore) Put(_ context.Context, storeName, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[storeName]
	if !ok {
		ns = map[string]string{}
		s.data[storeName] = ns
	}
	if old, exists := ns[key]; exists && old != value {
		s.logger.Debug("overwriting key", zap.String("store", storeName), zap.String("key", key))
	}
	ns[key] = value

	return nil
}

func (s *MemoryStore) Get(_ context.Context, storeName, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[storeName][key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

// Len returns the number of keys held in the given namespace.
func (s *MemoryStore) Len(storeName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data[storeName])
}
