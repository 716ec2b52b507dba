package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with contribution records.
// Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a transaction with the same hash already exists
	// - ErrProjectNotFound: If referenced project does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByProject returns a project's transactions, newest first
	ListByProject(ctx context.Context, projectID uint64) ([]*entity.Transaction, error)
}
