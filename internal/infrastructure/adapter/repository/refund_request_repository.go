package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// RefundRequestRepository implements RefundRequestRepository interface using GORM
type RefundRequestRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorMapper
}

// NewRefundRequestRepository creates a new RefundRequestRepository instance
func NewRefundRequestRepository(db *gorm.DB, logger coreport.Logger) *RefundRequestRepository {
	return &RefundRequestRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorMapper(logger),
	}
}

func refundModelToEntity(m *model.RefundRequest) *entity.RefundRequest {
	return &entity.RefundRequest{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		DonorID:       m.DonorID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount.Decimal,
		CreatorID:     m.CreatorID,
		Approved:      m.Approved,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// Create saves a new refund request
func (r *RefundRequestRepository) Create(ctx context.Context, request *entity.RefundRequest) error {
	row := model.RefundRequest{
		ProjectID:     request.ProjectID,
		DonorID:       request.DonorID,
		TransactionID: request.TransactionID,
		Amount:        model.NewAmount(request.Amount),
		CreatorID:     request.CreatorID,
		Approved:      false,
		CreatedAt:     request.CreatedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errors.mapError("creating refund request", err, errs.ErrProjectNotFound, nil, map[string]any{
			"project_id": request.ProjectID,
			"donor_id":   request.DonorID,
		})
	}

	request.ID = row.ID
	request.Approved = false
	r.logger.Info("Refund request created", map[string]any{
		"refund_id":  row.ID,
		"project_id": row.ProjectID,
		"amount":     entity.FormatAmount(request.Amount),
	})
	return nil
}

// GetByID retrieves a refund request by ID
func (r *RefundRequestRepository) GetByID(ctx context.Context, id uint64) (*entity.RefundRequest, error) {
	var row model.RefundRequest
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.errors.mapError("getting refund request", err, errs.ErrRefundNotFound, nil, map[string]any{"refund_id": id})
	}
	return refundModelToEntity(&row), nil
}

// GetByIDForUpdate reads the refund request with a row lock
func (r *RefundRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.RefundRequest, error) {
	var row model.RefundRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&row, id).Error
	if err != nil {
		return nil, r.errors.mapError("locking refund request", err, errs.ErrRefundNotFound, nil, map[string]any{"refund_id": id})
	}
	return refundModelToEntity(&row), nil
}

// SumByTransaction adds up every request linked to the transaction.
// Amounts are summed as decimals since sqlite keeps them as text.
func (r *RefundRequestRepository) SumByTransaction(ctx context.Context, transactionID uint64) (decimal.Decimal, error) {
	var amounts []model.Amount
	err := r.db.WithContext(ctx).Model(&model.RefundRequest{}).
		Where("transaction_id = ?", transactionID).
		Pluck("amount", &amounts).Error
	if err != nil {
		return entity.Zero, r.errors.mapError("summing refund requests", err, nil, nil, map[string]any{"transaction_id": transactionID})
	}

	total := entity.Zero
	for _, amount := range amounts {
		total = total.Add(amount.Decimal)
	}
	return total, nil
}

// ListByCreator returns refund requests filed against the creator, newest first
func (r *RefundRequestRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.RefundRequest, error) {
	var rows []model.RefundRequest
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.mapError("listing refund requests", err, nil, nil, map[string]any{"creator_id": creatorID})
	}

	requests := make([]*entity.RefundRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, refundModelToEntity(&rows[i]))
	}
	return requests, nil
}

// SetApproved stores the approval flag
func (r *RefundRequestRepository) SetApproved(ctx context.Context, id uint64, approved bool) error {
	result := r.db.WithContext(ctx).Model(&model.RefundRequest{}).
		Where("id = ?", id).
		Update("approved", approved)
	if result.Error != nil {
		return r.errors.mapError("setting refund approval", result.Error, errs.ErrRefundNotFound, nil, map[string]any{"refund_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrRefundNotFound
	}
	return nil
}
