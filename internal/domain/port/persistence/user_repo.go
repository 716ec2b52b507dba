package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user carries the email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert matches an existing row first by ID, then by email, and updates it.
	// A new row is created when neither matches. The stored user is returned.
	// Empty optional fields of user do not overwrite stored values.
	//
	// Possible errors:
	// - ErrInvalidID: If the user has no ID
	// - ErrDatabaseConnection: If database connection fails
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
}
