package sessions

import (
	"context"
	"sync"
	"time"
)

// Repository provides session persistence operations
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// MemoryRepository keeps sessions in process memory. Default backend for
// single-instance deployments and tests; Redis takes over when configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Session)}
}

func (r *MemoryRepository) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.store[s.Token] = &cp
	return nil
}

func (r *MemoryRepository) GetByToken(_ context.Context, token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.store[token]
	if !ok {
		return nil, nil
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		delete(r.store, token)
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryRepository) DeleteByToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, token)
	return nil
}
