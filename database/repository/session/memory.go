package sessionRepo

import (
	"context"
	"sync"

	"clinicflow/models"
)

type memorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemorySessionRepo returns an in-memory SessionRepository. Sessions
// live for the lifetime of the process; persistence across restarts is
// not a goal.
func NewMemorySessionRepo() SessionRepository {
	return &memorySessionRepo{
		sessions: make(map[string]*models.Session),
	}
}

func (r *memorySessionRepo) Get(ctx context.Context, userKey string) (*models.Session, error) {
	r.mu.RLock()
	sess, ok := r.sessions[userKey]
	r.mu.RUnlock()
	if !ok {
		return models.NewSession(), nil
	}
	// Copy so callers mutate their own snapshot until Put.
	cp := *sess
	return &cp, nil
}

func (r *memorySessionRepo) Put(ctx context.Context, userKey string, session *models.Session) error {
	cp := *session
	r.mu.Lock()
	r.sessions[userKey] = &cp
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepo) Delete(ctx context.Context, userKey string) error {
	r.mu.Lock()
	delete(r.sessions, userKey)
	r.mu.Unlock()
	return nil
}
