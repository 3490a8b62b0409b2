package router

import (
	"context"
	"sync"
	"time"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// HealthStore tracks per-provider consecutive failures and cooldown windows.
// Implementations must be safe for concurrent use. The in-memory store is
// per-process; the Redis store shares state across instances.
type HealthStore interface {
	// MarkFailure increments the consecutive-failure counter and returns
	// the new count.
	MarkFailure(ctx context.Context, p domain.Provider) (int, error)

	// MarkSuccess resets the counter and clears any cooldown.
	MarkSuccess(ctx context.Context, p domain.Provider) error

	// SetUnhealthy opens a cooldown window ending at until.
	SetUnhealthy(ctx context.Context, p domain.Provider, until time.Time) error

	// UnhealthyUntil returns the end of the current cooldown window, or the
	// zero time when the provider is healthy.
	UnhealthyUntil(ctx context.Context, p domain.Provider) (time.Time, error)
}

// MemStore is the in-process HealthStore, used for single-instance
// deployments and tests.
type MemStore struct {
	mu    sync.Mutex
	state map[domain.Provider]*providerHealth
}

type providerHealth struct {
	failures int
	until    time.Time
}

// NewMemStore creates an empty in-memory health store.
func NewMemStore() *MemStore {
	return &MemStore{state: make(map[domain.Provider]*providerHealth)}
}

func (s *MemStore) MarkFailure(_ context.Context, p domain.Provider) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.state[p]
	if h == nil {
		h = &providerHealth{}
		s.state[p] = h
	}
	h.failures++
	return h.failures, nil
}

func (s *MemStore) MarkSuccess(_ context.Context, p domain.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state, p)
	return nil
}

func (s *MemStore) SetUnhealthy(_ context.Context, p domain.Provider, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.state[p]
	if h == nil {
		h = &providerHealth{}
		s.state[p] = h
	}
	h.until = until
	return nil
}

func (s *MemStore) UnhealthyUntil(_ context.Context, p domain.Provider) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.state[p]
	if h == nil {
		return time.Time{}, nil
	}
	return h.until, nil
}
