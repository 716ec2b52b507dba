package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID              string    `gorm:"primaryKey;size:255"`
	Email           *string   `gorm:"uniqueIndex;size:320"`
	FirstName       string    `gorm:"size:255"`
	LastName        string    `gorm:"size:255"`
	PasswordHash    string    `gorm:"size:255"`
	ProfileImageURL *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
