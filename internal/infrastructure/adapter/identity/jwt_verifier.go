package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// Claims are the identity claims carried by a caller token
type Claims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Picture   string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Config configures token verification
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
	Leeway   time.Duration
}

// JWTVerifier verifies HS256 tokens issued by the identity collaborator
type JWTVerifier struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	parser       *jwt.Parser
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ coreport.IdentityVerifier = (*JWTVerifier)(nil)

// NewJWTVerifier creates a verifier. An empty secret is rejected.
func NewJWTVerifier(cfg Config, timeProvider coreport.TimeProvider, logger coreport.Logger) (*JWTVerifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("identity: jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(timeProvider.Now),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &JWTVerifier{
		secret:       []byte(cfg.Secret),
		issuer:       cfg.Issuer,
		ttl:          cfg.TokenTTL,
		parser:       jwt.NewParser(opts...),
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// Verify validates the token and returns the identity it asserts
func (v *JWTVerifier) Verify(ctx context.Context, credential string) (*coreport.Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, fmt.Errorf("%w: missing token", errs.ErrUnauthorized)
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		v.logger.Debug("Rejected caller token", map[string]any{
			"error":      err.Error(),
			"request_id": coreport.RequestIDFrom(ctx),
		})
		return nil, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	return &coreport.Identity{
		UserID:          claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.Picture,
	}, nil
}

// Sign issues a token for the identity. It backs local tooling and tests; production
// tokens come from the identity collaborator.
func (v *JWTVerifier) Sign(identity *coreport.Identity) (string, error) {
	now := v.timeProvider.Now()
	claims := Claims{
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Picture:   identity.ProfileImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
