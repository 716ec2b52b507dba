package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errors       dbErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errors:       newDBErrorMapper(logger),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           derefString(m.Email),
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		PasswordHash:    m.PasswordHash,
		ProfileImageURL: derefString(m.ProfileImageURL),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.errors.mapError("getting user", err, errs.ErrUserNotFound, nil, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errs.ErrUserNotFound
	}

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.errors.mapError("getting user by email", err, errs.ErrUserNotFound, nil, nil)
	}
	return userModelToEntity(&userModel), nil
}

// Upsert matches by ID, then by email, and creates the user when neither matches.
// Matching by email keeps an identity provider that re-issues ids from tripping the email unique index.
func (r *UserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.ID == "" {
		return nil, errs.ErrInvalidID
	}

	now := r.timeProvider.Now().UTC()
	email := entity.NormalizeEmail(user.Email)

	var stored model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found := tx.Where("id = ?", user.ID).Limit(1).Find(&stored)
		if found.Error != nil {
			return found.Error
		}
		if found.RowsAffected == 0 && email != "" {
			found = tx.Where("email = ?", email).Limit(1).Find(&stored)
			if found.Error != nil {
				return found.Error
			}
		}

		if found.RowsAffected == 0 {
			stored = model.User{
				ID:              user.ID,
				Email:           optionalString(email),
				FirstName:       user.FirstName,
				LastName:        user.LastName,
				PasswordHash:    user.PasswordHash,
				ProfileImageURL: optionalString(user.ProfileImageURL),
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			return tx.Create(&stored).Error
		}

		updates := map[string]any{"updated_at": now}
		if email != "" {
			updates["email"] = email
			stored.Email = &email
		}
		if user.FirstName != "" {
			updates["first_name"] = user.FirstName
			stored.FirstName = user.FirstName
		}
		if user.LastName != "" {
			updates["last_name"] = user.LastName
			stored.LastName = user.LastName
		}
		if user.PasswordHash != "" {
			updates["password_hash"] = user.PasswordHash
			stored.PasswordHash = user.PasswordHash
		}
		if user.ProfileImageURL != "" {
			updates["profile_image_url"] = user.ProfileImageURL
			stored.ProfileImageURL = &user.ProfileImageURL
		}
		stored.UpdatedAt = now
		return tx.Model(&model.User{}).Where("id = ?", stored.ID).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return nil, err
		}
		return nil, r.errors.mapError("upserting user", err, errs.ErrUserNotFound, nil, map[string]any{"user_id": user.ID})
	}

	r.logger.Debug("User upserted", map[string]any{
		"user_id":      stored.ID,
		"requested_id": user.ID,
	})
	return userModelToEntity(&stored), nil
}
