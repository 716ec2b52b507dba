package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes. Other dialects skip them.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates partial and BRIN indexes on postgres
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != dialectPostgres {
		m.logger.Debug("Skipping advanced indexes", map[string]any{"dialect": m.db.Dialector.Name()})
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// backs the public listing, which only ever reads active projects
			name: "idx_projects_active_partial",
			sql:  `CREATE INDEX IF NOT EXISTS idx_projects_active_partial ON projects (created_at DESC, id DESC) WHERE is_active`,
		},
		{
			name: "idx_projects_open_deadline",
			sql:  `CREATE INDEX IF NOT EXISTS idx_projects_open_deadline ON projects (deadline) WHERE is_active AND NOT withdrawn`,
		},
		{
			name: "idx_transactions_created_brin",
			sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_created_brin ON transactions USING BRIN (created_at)`,
		},
		{
			name: "idx_refund_requests_pending",
			sql:  `CREATE INDEX IF NOT EXISTS idx_refund_requests_pending ON refund_requests (creator_id) WHERE NOT approved`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}
