package dto

import (
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// CreateRefundRequest represents a backer's refund claim
type CreateRefundRequest struct {
	ProjectID     FlexibleID    `json:"projectId" binding:"required"`
	TransactionID *FlexibleID   `json:"transactionId"`
	Amount        DecimalString `json:"amount" binding:"required"`
}

// ProcessRefundRequest carries the creator's decision
type ProcessRefundRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// RefundRequestResponse represents a refund request
type RefundRequestResponse struct {
	ID            uint64    `json:"id"`
	ProjectID     uint64    `json:"projectId"`
	DonorID       string    `json:"donorId"`
	TransactionID *uint64   `json:"transactionId"`
	Amount        string    `json:"amount"`
	CreatorID     string    `json:"creatorId"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewRefundRequestResponse maps a refund request
func NewRefundRequestResponse(r *entity.RefundRequest) RefundRequestResponse {
	return RefundRequestResponse{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		DonorID:       r.DonorID,
		TransactionID: r.TransactionID,
		Amount:        entity.FormatAmount(r.Amount),
		CreatorID:     r.CreatorID,
		Approved:      r.Approved,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

// NewRefundRequestListResponse maps a list of refund requests, never returning nil
func NewRefundRequestListResponse(requests []*entity.RefundRequest) []RefundRequestResponse {
	out := make([]RefundRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewRefundRequestResponse(r))
	}
	return out
}
