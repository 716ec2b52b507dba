package core

import "context"

// Identity is the caller identity asserted by the external identity collaborator
type Identity struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// IdentityVerifier turns a credential presented by the client into an Identity
type IdentityVerifier interface {
	// Verify validates the credential and returns the identity it asserts.
	// Returns ErrUnauthorized when the credential is malformed, expired or forged.
	Verify(ctx context.Context, credential string) (*Identity, error)
}
