package storage

import (
	"context"
	"sync"

	"cantina-feedback/dashboard-svc/internal/domain"
)

// MemoryStore keeps sessions for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.ViewState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.ViewState)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (domain.ViewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return domain.ViewState{}, domain.ErrSessionNotFound
	}
	return state, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, state domain.ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = state
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(domain.ViewState) (domain.ViewState, error)) (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return domain.ViewState{}, domain.ErrSessionNotFound
	}
	next, err := fn(state)
	if err != nil {
		return domain.ViewState{}, err
	}
	s.sessions[sessionID] = next
	return next, nil
}
