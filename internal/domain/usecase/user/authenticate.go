package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// Authenticate checks a local email and password credential.
// Unknown emails, accounts without a password and wrong passwords all fail the same way.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if entity.NormalizeEmail(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrInvalidRequest)
	}

	user, err := u.uow.GetUserRepository(ctx).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, u.rejectLogin(ctx, "unknown email")
		}
		return nil, err
	}

	if !user.HasPassword() {
		return nil, u.rejectLogin(ctx, "account has no local password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, u.rejectLogin(ctx, "password mismatch")
	}

	u.logger.Info("User authenticated", map[string]any{
		"user_id":    user.ID,
		"request_id": coreport.RequestIDFrom(ctx),
	})
	return user, nil
}

func (u *UserUseCase) rejectLogin(ctx context.Context, reason string) error {
	u.logger.Warn("Login rejected", map[string]any{
		"reason":     reason,
		"request_id": coreport.RequestIDFrom(ctx),
	})
	return fmt.Errorf("%w: invalid email or password", errs.ErrUnauthorized)
}

// hashPassword hashes a plain password with the configured cost
func (u *UserUseCase) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}
	return string(hash), nil
}
