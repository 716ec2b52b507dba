package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// SeedDemoUsers creates or refreshes the given demo accounts. Running it again
// with the same input leaves the stored accounts as they are.
func (u *UserUseCase) SeedDemoUsers(ctx context.Context, users []usecase.DemoUser) error {
	repo := u.uow.GetUserRepository(ctx)
	now := u.timeProvider.Now()

	for _, demo := range users {
		candidate, err := entity.NewUser(demo.ID, demo.Email, demo.FirstName, demo.LastName, "", now)
		if err != nil {
			return err
		}

		existing, err := repo.GetByID(ctx, candidate.ID)
		if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}

		if demo.Password != "" && !passwordMatches(existing, demo.Password) {
			if candidate.PasswordHash, err = u.hashPassword(demo.Password); err != nil {
				return err
			}
		}

		if _, err := repo.Upsert(ctx, candidate); err != nil {
			return err
		}
		u.logger.Info("Demo user ready", map[string]any{
			"user_id": candidate.ID,
			"created": existing == nil,
		})
	}
	return nil
}

func passwordMatches(user *entity.User, password string) bool {
	if user == nil || !user.HasPassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
