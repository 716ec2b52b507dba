package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// User is an identity record supplied by the identity collaborator
type User struct {
	ID              string    // Stable external identifier
	Email           string    // Unique when present
	FirstName       string    // Display name fields
	LastName        string    //
	PasswordHash    string    // bcrypt hash, only for locally authenticated accounts
	ProfileImageURL string    // Optional avatar reference
	CreatedAt       time.Time // When the user was first seen
	UpdatedAt       time.Time // When the user was last synced
}

// NewUser normalizes identity data for an upsert
func NewUser(id, email, firstName, lastName, profileImageURL string, now time.Time) (*User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.ErrInvalidID
	}
	return &User{
		ID:              id,
		Email:           NormalizeEmail(email),
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		ProfileImageURL: strings.TrimSpace(profileImageURL),
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}, nil
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DisplayName returns the user's full name, falling back to the email
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Email
}

// HasPassword reports whether the account can log in locally
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
