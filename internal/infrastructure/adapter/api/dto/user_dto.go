package dto

import (
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// UserResponse represents a user in API responses. The password hash never leaves the server.
type UserResponse struct {
	ID              string    `json:"id"`
	DisplayName     string    `json:"displayName,omitempty"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// LoginRequest carries a local email and password credential
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned when a session has been issued
type SessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// NewUserResponse maps a user
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		DisplayName:     u.DisplayName(),
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt.UTC(),
		UpdatedAt:       u.UpdatedAt.UTC(),
	}
}
