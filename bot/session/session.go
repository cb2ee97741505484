package session

import (
	"context"

	"stayhub/models"
)

// Store persists per-user conversation sessions. Get returns a fresh idle
// session when none exists; implementations never return (nil, nil).
type Store interface {
	Get(ctx context.Context, userID int64) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Clear(ctx context.Context, userID int64) error
}
