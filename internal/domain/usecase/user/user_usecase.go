package user

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// Config holds session and credential settings
type Config struct {
	SessionTTL time.Duration
	BcryptCost int
}

// DefaultConfig returns a one week session and bcrypt's default cost
func DefaultConfig() Config {
	return Config{
		SessionTTL: 7 * 24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// UserUseCase implements the user business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	sessions     persistence.SessionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	uow persistence.UnitOfWork,
	sessions persistence.SessionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *UserUseCase {
	if config.SessionTTL <= 0 {
		config.SessionTTL = DefaultConfig().SessionTTL
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{
		uow:          uow,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// GetUser retrieves a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidID
	}
	return u.uow.GetUserRepository(ctx).GetByID(ctx, id)
}

// SyncIdentity upserts the user asserted by the identity collaborator
func (u *UserUseCase) SyncIdentity(ctx context.Context, identity *coreport.Identity) (*entity.User, error) {
	if identity == nil {
		return nil, errs.ErrUnauthorized
	}

	candidate, err := entity.NewUser(
		identity.UserID,
		identity.Email,
		identity.FirstName,
		identity.LastName,
		identity.ProfileImageURL,
		u.timeProvider.Now(),
	)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	stored, err := u.uow.GetUserRepository(ctx).Upsert(ctx, candidate)
	if err != nil {
		u.logger.Error("Failed to sync identity", map[string]any{
			"user_id":    identity.UserID,
			"error":      err.Error(),
			"request_id": coreport.RequestIDFrom(ctx),
		})
		return nil, err
	}
	return stored, nil
}
