package session

import "sync"

type MemoryStore struct {
	mu    sync.Mutex
	items map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Record)}
}

func (s *MemoryStore) Get(sessionID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[sessionID]
	return rec, ok
}

func (s *MemoryStore) Put(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[rec.SessionID] = rec
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
