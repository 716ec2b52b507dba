package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// DemoUser describes a locally authenticated account created at startup
type DemoUser struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UserUseCase defines methods for user and session operations
type UserUseCase interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// SyncIdentity upserts the user asserted by the identity collaborator
	SyncIdentity(ctx context.Context, identity *core.Identity) (*entity.User, error)

	// Authenticate checks a local email and password credential
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// StartSession creates a session for the user
	StartSession(ctx context.Context, userID string) (*entity.Session, error)

	// ResolveSession returns the user behind a live session
	ResolveSession(ctx context.Context, sid string) (*entity.User, error)

	// EndSession deletes a session
	EndSession(ctx context.Context, sid string) error

	// PurgeExpiredSessions deletes expired sessions and returns how many were removed
	PurgeExpiredSessions(ctx context.Context) (int64, error)

	// SeedDemoUsers creates or refreshes the given demo accounts
	SeedDemoUsers(ctx context.Context, users []DemoUser) error
}
