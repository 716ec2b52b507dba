package model

import (
	"time"
)

// Project represents the database model for projects.
// Booleans carry no column default so that an explicit false is always written.
type Project struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	CreatorID     string    `gorm:"not null;size:255;index"`
	Title         string    `gorm:"not null;size:255"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"not null;size:32"`
	GoalAmount    Amount    `gorm:"not null"`
	CurrentAmount Amount    `gorm:"not null"`
	Deadline      time.Time `gorm:"not null"`
	ImageURL      *string   `gorm:"type:text"`
	IsActive      bool      `gorm:"not null"`
	Withdrawn     bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectWithCreator is the row shape of a project left-joined with its creator
type ProjectWithCreator struct {
	Project
	CreatorUserID          *string
	CreatorEmail           *string
	CreatorFirstName       *string
	CreatorLastName        *string
	CreatorProfileImageURL *string
}
