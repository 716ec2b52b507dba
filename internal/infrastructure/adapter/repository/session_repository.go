package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// SessionRepository implements session storage using GORM
type SessionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errors       dbErrorMapper
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errors:       newDBErrorMapper(logger),
	}
}

// Get returns a session that has not expired at now
func (r *SessionRepository) Get(ctx context.Context, sid string, now time.Time) (*entity.Session, error) {
	var row model.Session
	err := r.db.WithContext(ctx).
		Where("sid = ? AND expire > ?", sid, now.UTC()).
		First(&row).Error
	if err != nil {
		return nil, r.errors.mapError("getting session", err, errs.ErrSessionNotFound, nil, nil)
	}
	return &entity.Session{SID: row.SID, UserID: row.UserID, Expire: row.Expire.UTC()}, nil
}

// Upsert creates the session or refreshes its user and expiry in one statement
func (r *SessionRepository) Upsert(ctx context.Context, session *entity.Session) error {
	row := model.Session{
		SID:       session.SID,
		UserID:    session.UserID,
		Expire:    session.Expire.UTC(),
		CreatedAt: r.timeProvider.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "expire"}),
	}).Create(&row).Error
	if err != nil {
		return r.errors.mapError("upserting session", err, nil, nil, map[string]any{"user_id": session.UserID})
	}

	r.logger.Debug("Session stored", map[string]any{
		"user_id": session.UserID,
		"expire":  row.Expire,
	})
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&model.Session{}).Error; err != nil {
		return r.errors.mapError("deleting session", err, nil, nil, nil)
	}
	return nil
}

// DeleteExpired removes all sessions that expired before now
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expire <= ?", now.UTC()).Delete(&model.Session{})
	if result.Error != nil {
		return 0, r.errors.mapError("purging sessions", result.Error, nil, nil, nil)
	}

	r.logger.Info("Expired sessions cleanup completed", map[string]any{
		"sessions_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
