package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shrimpsizemoose/anslagstavla/internal/models"
)

const (
	// SessionTTL matches the 24h cookie lifetime.
	SessionTTL = 24 * time.Hour

	DefaultCookieName = "session_id"
)

// SessionStore maps opaque tokens to session records. Backends are
// interchangeable: an in-memory map for single-instance deployments, redis
// when sessions have to survive restarts or be shared between instances.
type SessionStore interface {
	Get(ctx context.Context, token string) (*models.Session, error)
	Put(ctx context.Context, token string, session *models.Session) error
	Delete(ctx context.Context, token string) error
	Close() error
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.New().String()
}
