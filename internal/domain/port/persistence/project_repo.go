package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// ProjectRepository defines methods to interact with project data.
// It stores and returns amounts but never computes them.
type ProjectRepository interface {
	// ListActive returns active projects, newest first
	ListActive(ctx context.Context) ([]*entity.Project, error)

	// GetByID retrieves a project by ID
	//
	// Possible errors:
	// - ErrProjectNotFound: If project doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Project, error)

	// GetByIDForUpdate retrieves a project and locks its row until the surrounding
	// transaction ends. Must be called inside a UnitOfWork transaction.
	//
	// Possible errors:
	// - ErrProjectNotFound: If project doesn't exist
	// - ErrConcurrentUpdate: If the lock could not be taken
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Project, error)

	// GetWithCreator retrieves a project left-joined with its creator
	//
	// Possible errors:
	// - ErrProjectNotFound: If project doesn't exist
	GetWithCreator(ctx context.Context, id uint64) (*entity.ProjectWithCreator, error)

	// ListByCreator returns the creator's projects annotated with transactions and backer counts
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.ProjectWithStats, error)

	// Create stores a new project and assigns its ID. The raised amount is stored
	// as zero, the project as active and not withdrawn, whatever the input carries.
	Create(ctx context.Context, project *entity.Project) error

	// SetAmount overwrites the raised amount
	//
	// Possible errors:
	// - ErrProjectNotFound: If project doesn't exist
	SetAmount(ctx context.Context, id uint64, amount decimal.Decimal) error

	// SetWithdrawn latches the withdrawn flag. Calling it again has no further effect.
	//
	// Possible errors:
	// - ErrProjectNotFound: If project doesn't exist
	SetWithdrawn(ctx context.Context, id uint64) error
}
