package storage

import (
	"context"
	"sync"
)

// Memory keeps every namespace in process memory. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

func (m *Memory) Namespace(_ context.Context, clientID string) Store {
	return &memoryStore{mem: m, ns: clientID}
}

type memoryStore struct {
	mem *Memory
	ns  string
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	s.mem.mu.RLock()
	defer s.mem.mu.RUnlock()
	v, ok := s.mem.data[s.ns][key]
	return v, ok, nil
}

func (s *memoryStore) Set(key, value string) error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	ns, ok := s.mem.data[s.ns]
	if !ok {
		ns = make(map[string]string)
		s.mem.data[s.ns] = ns
	}
	ns[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	delete(s.mem.data[s.ns], key)
	return nil
}
