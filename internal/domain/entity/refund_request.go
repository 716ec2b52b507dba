package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// RefundRequest is a backer's claim on contributed funds, approved by the project creator
type RefundRequest struct {
	ID            uint64
	ProjectID     uint64
	DonorID       string
	TransactionID *uint64
	Amount        decimal.Decimal
	CreatorID     string // copied from the project at request time
	Approved      bool   // one-way latch for the balance deduction
	CreatedAt     time.Time
}

// NewRefundRequest validates a refund claim against its project.
// The request always starts unapproved.
func NewRefundRequest(
	project *Project,
	donorID string,
	transactionID *uint64,
	amount string,
	now time.Time,
) (*RefundRequest, error) {
	if strings.TrimSpace(donorID) == "" {
		return nil, errs.ErrUnauthorized
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	return &RefundRequest{
		ProjectID:     project.ID,
		DonorID:       donorID,
		TransactionID: transactionID,
		Amount:        value,
		CreatorID:     project.CreatorID,
		Approved:      false,
		CreatedAt:     now.UTC(),
	}, nil
}

// CheckLinkedTransaction verifies that a linked contribution was made by the
// claimant to the same project, and that claimed plus this request's amount
// stays within it. claimed is the total of requests already filed against tx.
func (r *RefundRequest) CheckLinkedTransaction(tx *Transaction, claimed decimal.Decimal) error {
	if tx == nil || tx.ProjectID != r.ProjectID || tx.DonorID != r.DonorID {
		return errs.ErrTransactionNotFound
	}
	if claimed.Add(r.Amount).GreaterThan(tx.Amount) {
		return errs.ErrRefundExceedsContribution
	}
	return nil
}

// CheckApprover verifies that approverID is the creator the request was filed against
func (r *RefundRequest) CheckApprover(approverID string) error {
	if approverID == "" || approverID != r.CreatorID {
		return errs.ErrNotRefundApprover
	}
	return nil
}
