package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// RefundRequestRepository defines methods to interact with refund requests
type RefundRequestRepository interface {
	// Create saves a new refund request and assigns its ID
	Create(ctx context.Context, request *entity.RefundRequest) error

	// GetByID retrieves a refund request by ID
	//
	// Possible errors:
	// - ErrRefundNotFound: If the request doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.RefundRequest, error)

	// GetByIDForUpdate retrieves a refund request and locks its row until the
	// surrounding transaction ends
	//
	// Possible errors:
	// - ErrRefundNotFound: If the request doesn't exist
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.RefundRequest, error)

	// SumByTransaction returns the total amount of every request filed against
	// the transaction, approved or not. Zero when there are none.
	SumByTransaction(ctx context.Context, transactionID uint64) (decimal.Decimal, error)

	// ListByCreator returns refund requests filed against the creator's projects, newest first
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.RefundRequest, error)

	// SetApproved stores the approval flag
	//
	// Possible errors:
	// - ErrRefundNotFound: If the request doesn't exist
	SetApproved(ctx context.Context, id uint64, approved bool) error
}
