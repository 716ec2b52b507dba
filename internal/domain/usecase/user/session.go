package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// StartSession creates a session for the user that expires after the configured TTL
func (u *UserUseCase) StartSession(ctx context.Context, userID string) (*entity.Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrUnauthorized
	}

	session := &entity.Session{
		SID:    uuid.NewString(),
		UserID: userID,
		Expire: u.timeProvider.Now().Add(u.config.SessionTTL).UTC(),
	}
	if err := u.sessions.Upsert(ctx, session); err != nil {
		return nil, err
	}

	u.logger.Info("Session started", map[string]any{
		"user_id":    userID,
		"expire":     session.Expire,
		"request_id": coreport.RequestIDFrom(ctx),
	})
	return session, nil
}

// ResolveSession returns the user behind a live session
func (u *UserUseCase) ResolveSession(ctx context.Context, sid string) (*entity.User, error) {
	if sid == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := u.sessions.Get(ctx, sid, u.timeProvider.Now())
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: session expired or unknown", errs.ErrUnauthorized)
		}
		return nil, err
	}

	user, err := u.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: session user no longer exists", errs.ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

// EndSession deletes a session. Ending an unknown session is not an error.
func (u *UserUseCase) EndSession(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return u.sessions.Delete(ctx, sid)
}

// PurgeExpiredSessions deletes expired sessions and returns how many were removed
func (u *UserUseCase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx, u.timeProvider.Now())
}
