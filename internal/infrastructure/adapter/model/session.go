package model

import (
	"time"
)

// Session represents a login session row. The expire column is indexed for the purge job.
type Session struct {
	SID       string    `gorm:"column:sid;primaryKey;size:255"`
	UserID    string    `gorm:"not null;size:255"`
	Expire    time.Time `gorm:"not null;index:idx_session_expire"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
