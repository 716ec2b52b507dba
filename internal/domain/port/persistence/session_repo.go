package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// SessionRepository defines methods for managing login sessions
type SessionRepository interface {
	// Get returns the session if it exists and has not expired at now
	//
	// Possible errors:
	// - ErrSessionNotFound: If the session is missing or expired
	Get(ctx context.Context, sid string, now time.Time) (*entity.Session, error)

	// Upsert creates the session or replaces its user and expiry
	Upsert(ctx context.Context, session *entity.Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, sid string) error

	// DeleteExpired removes every session that expired before now and returns how many were removed
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
