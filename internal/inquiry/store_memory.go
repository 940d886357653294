package inquiry

import (
	"context"
	"sync"
)

// MemStore keeps inquiries in process memory; a restart starts empty.
type MemStore struct {
	mu    sync.RWMutex
	m     map[string]Inquiry
	order []string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]Inquiry)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, in InsertInquiry) (Inquiry, error) {
	q := newInquiry(in)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[q.ID] = q
	s.order = append(s.order, q.ID)
	return q, nil
}

func (s *MemStore) List(ctx context.Context) ([]Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Inquiry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Inquiry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.m[id]
	return q, ok, nil
}
