package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// AddOptionalColumns upgrades a 1.0.0 schema, which predates profile images,
// project images and refund links to a specific transaction.
type AddOptionalColumns struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddOptionalColumns creates a new migration
func NewAddOptionalColumns(db *gorm.DB, logger coreport.Logger) *AddOptionalColumns {
	return &AddOptionalColumns{
		db:     db,
		logger: logger,
	}
}

type optionalColumn struct {
	model any
	table string
	field string
}

// Run adds every missing column. Existing columns are left untouched.
func (m *AddOptionalColumns) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()

	columns := []optionalColumn{
		{model: &model.User{}, table: "users", field: "ProfileImageURL"},
		{model: &model.Project{}, table: "projects", field: "ImageURL"},
		{model: &model.RefundRequest{}, table: "refund_requests", field: "TransactionID"},
	}

	for _, col := range columns {
		if migrator.HasColumn(col.model, col.field) {
			m.logger.Debug("Column already present", map[string]any{"table": col.table, "column": col.field})
			continue
		}
		if err := migrator.AddColumn(col.model, col.field); err != nil {
			return fmt.Errorf("adding %s.%s: %w", col.table, col.field, err)
		}
		m.logger.Info("Added column", map[string]any{"table": col.table, "column": col.field})
	}

	return nil
}
