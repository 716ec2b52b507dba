package dto

import (
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// FundRequest represents the API request for contributing to a project
type FundRequest struct {
	Amount             DecimalString `json:"amount" binding:"required"`
	TransactionType    string        `json:"transactionType" binding:"required"`
	TransactionHash    string        `json:"transactionHash"`
	DonorWalletAddress string        `json:"donorWalletAddress"`
}

// TransactionResponse represents a recorded contribution
type TransactionResponse struct {
	ID                 uint64    `json:"id"`
	ProjectID          uint64    `json:"projectId"`
	DonorID            string    `json:"donorId,omitempty"`
	DonorWalletAddress string    `json:"donorWalletAddress,omitempty"`
	Amount             string    `json:"amount"`
	TransactionType    string    `json:"transactionType"`
	TransactionHash    string    `json:"transactionHash,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a transaction
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 tx.ID,
		ProjectID:          tx.ProjectID,
		DonorID:            tx.DonorID,
		DonorWalletAddress: tx.DonorWalletAddress,
		Amount:             entity.FormatAmount(tx.Amount),
		TransactionType:    string(tx.Type),
		TransactionHash:    tx.TransactionHash,
		CreatedAt:          tx.CreatedAt.UTC(),
	}
}

// NewTransactionListResponse maps a list of transactions, never returning nil
func NewTransactionListResponse(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
