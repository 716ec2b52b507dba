package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// ContributionRequest carries one contribution as received from the caller
type ContributionRequest struct {
	ProjectID       uint64
	DonorID         string
	WalletAddress   string
	Amount          string
	TransactionType string
	TransactionHash string
}

// RefundClaim carries a backer's refund request as received from the caller
type RefundClaim struct {
	ProjectID     uint64
	DonorID       string
	TransactionID *uint64
	Amount        string
}

// FundingUseCase is the only path that mutates a project's raised amount,
// its withdrawn flag or a refund's approval
type FundingUseCase interface {
	// RecordContribution validates and records a contribution, then adds it to the raised amount.
	// Both writes happen atomically.
	RecordContribution(ctx context.Context, req ContributionRequest) (*entity.Transaction, error)

	// Withdraw lets the creator claim the funds of a project that met its goal before the deadline.
	// At most one call per project succeeds.
	Withdraw(ctx context.Context, projectID uint64, callerID string) error

	// RequestRefund files an unapproved refund request against a project
	RequestRefund(ctx context.Context, claim RefundClaim) (*entity.RefundRequest, error)

	// ProcessRefund approves or rejects a refund request. An approval deducts the amount
	// from the raised amount exactly once, however often it is repeated.
	ProcessRefund(ctx context.Context, refundID uint64, approverID string, approved bool) error

	// CanWithdraw evaluates withdrawal eligibility against the engine clock
	CanWithdraw(project *entity.Project) bool

	// NeedsRefund evaluates refund eligibility against the engine clock
	NeedsRefund(project *entity.Project) bool

	// Status derives the lifecycle state against the engine clock
	Status(project *entity.Project) entity.ProjectStatus
}
