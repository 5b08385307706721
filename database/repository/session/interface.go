package sessionRepo

import (
	"context"

	"clinicflow/models"
)

// SessionRepository stores per-user dialogue sessions. Get returns a
// fresh session for unknown keys so callers never see a nil session.
type SessionRepository interface {
	Get(ctx context.Context, userKey string) (*models.Session, error)
	Put(ctx context.Context, userKey string, session *models.Session) error
	Delete(ctx context.Context, userKey string) error
}
