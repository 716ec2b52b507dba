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

// ProjectRepository implements ProjectRepository interface using GORM
type ProjectRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorMapper
}

// NewProjectRepository creates a new ProjectRepository instance
func NewProjectRepository(db *gorm.DB, logger coreport.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorMapper(logger),
	}
}

func projectModelToEntity(m *model.Project) *entity.Project {
	return &entity.Project{
		ID:            m.ID,
		CreatorID:     m.CreatorID,
		Title:         m.Title,
		Description:   m.Description,
		Category:      entity.Category(m.Category),
		GoalAmount:    m.GoalAmount.Decimal,
		CurrentAmount: m.CurrentAmount.Decimal,
		Deadline:      m.Deadline.UTC(),
		ImageURL:      derefString(m.ImageURL),
		IsActive:      m.IsActive,
		Withdrawn:     m.Withdrawn,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

func (r *ProjectRepository) projectError(operation string, err error, id uint64) error {
	return r.errors.mapError(operation, err, errs.ErrProjectNotFound, nil, map[string]any{"project_id": id})
}

// ListActive returns active projects, newest first
func (r *ProjectRepository) ListActive(ctx context.Context) ([]*entity.Project, error) {
	var rows []model.Project
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.mapError("listing active projects", err, nil, nil, nil)
	}

	projects := make([]*entity.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, projectModelToEntity(&rows[i]))
	}
	return projects, nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*entity.Project, error) {
	var row model.Project
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.projectError("getting project", err, id)
	}
	return projectModelToEntity(&row), nil
}

// GetByIDForUpdate reads the project with a row lock. SQLite has no row locks
// and relies on its single writer instead; gorm drops the clause there.
func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Project, error) {
	var row model.Project
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&row, id).Error
	if err != nil {
		return nil, r.projectError("locking project", err, id)
	}
	return projectModelToEntity(&row), nil
}

// GetWithCreator retrieves a project left-joined with its creator
func (r *ProjectRepository) GetWithCreator(ctx context.Context, id uint64) (*entity.ProjectWithCreator, error) {
	var rows []model.ProjectWithCreator
	err := r.db.WithContext(ctx).
		Table("projects").
		Select(`projects.*,
			users.id AS creator_user_id,
			users.email AS creator_email,
			users.first_name AS creator_first_name,
			users.last_name AS creator_last_name,
			users.profile_image_url AS creator_profile_image_url`).
		Joins("LEFT JOIN users ON users.id = projects.creator_id").
		Where("projects.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, r.projectError("getting project with creator", err, id)
	}
	if len(rows) == 0 {
		return nil, errs.ErrProjectNotFound
	}

	row := rows[0]
	result := &entity.ProjectWithCreator{Project: *projectModelToEntity(&row.Project)}
	if row.CreatorUserID != nil {
		result.Creator = &entity.User{
			ID:              *row.CreatorUserID,
			Email:           derefString(row.CreatorEmail),
			FirstName:       derefString(row.CreatorFirstName),
			LastName:        derefString(row.CreatorLastName),
			ProfileImageURL: derefString(row.CreatorProfileImageURL),
		}
	}
	return result, nil
}

// ListByCreator returns the creator's projects, newest first, each with its
// transactions and distinct backer count
func (r *ProjectRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.ProjectWithStats, error) {
	var rows []model.Project
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.mapError("listing creator projects", err, nil, nil, map[string]any{"creator_id": creatorID})
	}

	result := make([]*entity.ProjectWithStats, 0, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uint64, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	var txRows []model.Transaction
	err = r.db.WithContext(ctx).
		Where("project_id IN ?", ids).
		Order("created_at DESC").Order("id DESC").
		Find(&txRows).Error
	if err != nil {
		return nil, r.errors.mapError("listing creator transactions", err, nil, nil, map[string]any{"creator_id": creatorID})
	}

	byProject := make(map[uint64][]*entity.Transaction, len(rows))
	for i := range txRows {
		tx := transactionModelToEntity(&txRows[i])
		byProject[tx.ProjectID] = append(byProject[tx.ProjectID], tx)
	}

	for i := range rows {
		txs := byProject[rows[i].ID]
		if txs == nil {
			txs = []*entity.Transaction{}
		}
		result = append(result, &entity.ProjectWithStats{
			Project:      *projectModelToEntity(&rows[i]),
			Transactions: txs,
			BackerCount:  entity.CountBackers(txs),
		})
	}
	return result, nil
}

// Create stores a new project. The raised amount, active flag and withdrawn
// flag are forced regardless of what the caller supplied.
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	row := model.Project{
		CreatorID:     project.CreatorID,
		Title:         project.Title,
		Description:   project.Description,
		Category:      string(project.Category),
		GoalAmount:    model.NewAmount(project.GoalAmount),
		CurrentAmount: model.NewAmount(decimal.Zero),
		Deadline:      project.Deadline.UTC(),
		ImageURL:      optionalString(project.ImageURL),
		IsActive:      true,
		Withdrawn:     false,
		CreatedAt:     project.CreatedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errors.mapError("creating project", err, nil, nil, map[string]any{"creator_id": project.CreatorID})
	}

	project.ID = row.ID
	project.CurrentAmount = decimal.Zero
	project.IsActive = true
	project.Withdrawn = false

	r.logger.Info("Project created", map[string]any{
		"project_id": row.ID,
		"creator_id": row.CreatorID,
		"goal":       entity.FormatAmount(project.GoalAmount),
	})
	return nil
}

// SetAmount overwrites the raised amount
func (r *ProjectRepository) SetAmount(ctx context.Context, id uint64, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("current_amount", model.NewAmount(amount))
	if result.Error != nil {
		return r.projectError("setting project amount", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}

// SetWithdrawn latches the withdrawn flag
func (r *ProjectRepository) SetWithdrawn(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("withdrawn", true)
	if result.Error != nil {
		return r.projectError("setting project withdrawn", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}
