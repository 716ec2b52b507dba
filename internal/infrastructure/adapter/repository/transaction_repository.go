package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorMapper(logger),
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		ProjectID:          m.ProjectID,
		DonorID:            derefString(m.DonorID),
		DonorWalletAddress: derefString(m.DonorWalletAddress),
		Amount:             m.Amount.Decimal,
		Type:               entity.TransactionType(m.TransactionType),
		TransactionHash:    derefString(m.TransactionHash),
		CreatedAt:          m.CreatedAt.UTC(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ProjectID:          transaction.ProjectID,
		DonorID:            optionalString(transaction.DonorID),
		DonorWalletAddress: optionalString(transaction.DonorWalletAddress),
		Amount:             model.NewAmount(transaction.Amount),
		TransactionType:    string(transaction.Type),
		TransactionHash:    optionalString(transaction.TransactionHash),
		CreatedAt:          transaction.CreatedAt.UTC(),
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"project_id": transaction.ProjectID,
		"type":       transaction.Type,
		"amount":     entity.FormatAmount(transaction.Amount),
	})

	row := r.entityToModel(transaction)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errors.mapError("creating transaction", err, errs.ErrProjectNotFound, errs.ErrDuplicateTransaction, map[string]any{
			"project_id":       transaction.ProjectID,
			"transaction_hash": transaction.TransactionHash,
		})
	}

	transaction.ID = row.ID
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var row model.Transaction
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.errors.mapError("getting transaction", err, errs.ErrTransactionNotFound, nil, map[string]any{"transaction_id": id})
	}
	return transactionModelToEntity(&row), nil
}

// ListByProject returns a project's transactions, newest first
func (r *TransactionRepository) ListByProject(ctx context.Context, projectID uint64) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.mapError("listing transactions", err, nil, nil, map[string]any{"project_id": projectID})
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, transactionModelToEntity(&rows[i]))
	}
	return transactions, nil
}
