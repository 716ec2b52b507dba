package model

import (
	"time"
)

// Transaction represents the database model for contributions
type Transaction struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	ProjectID          uint64    `gorm:"not null;index"`
	DonorID            *string   `gorm:"size:255;index"`
	DonorWalletAddress *string   `gorm:"size:255"`
	Amount             Amount    `gorm:"not null"`
	TransactionType    string    `gorm:"not null;size:16"`
	TransactionHash    *string   `gorm:"uniqueIndex;size:255"`
	CreatedAt          time.Time `gorm:"not null;index"`

	// Define relationships
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
