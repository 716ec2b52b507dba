package model

import (
	"time"
)

// RefundRequest represents the database model for refund requests
type RefundRequest struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	ProjectID     uint64    `gorm:"not null;index"`
	DonorID       string    `gorm:"not null;size:255"`
	TransactionID *uint64   `gorm:"index"`
	Amount        Amount    `gorm:"not null"`
	CreatorID     string    `gorm:"not null;size:255;index"`
	Approved      bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for RefundRequest
func (RefundRequest) TableName() string {
	return "refund_requests"
}
