package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// CreateProjectRequest represents an incoming project creation
type CreateProjectRequest struct {
	CreatorID   string
	Title       string
	Description string
	Category    string
	GoalAmount  string
	Deadline    any // ISO string, numeric string, epoch seconds or millis, or time.Time
	ImageURL    string
}

// ProjectUseCase defines the project catalogue and its read models
type ProjectUseCase interface {
	// CreateProject validates and stores a new project owned by the caller
	CreateProject(ctx context.Context, req CreateProjectRequest) (*entity.Project, error)

	// ListActiveProjects returns active projects, newest first
	ListActiveProjects(ctx context.Context) ([]*entity.Project, error)

	// GetProject returns a project with its creator
	GetProject(ctx context.Context, id uint64) (*entity.ProjectWithCreator, error)

	// ListTransactions returns a project's contributions, newest first
	ListTransactions(ctx context.Context, projectID uint64) ([]*entity.Transaction, error)

	// ListCreatorProjects returns the caller's projects with transactions and backer counts
	ListCreatorProjects(ctx context.Context, creatorID string) ([]*entity.ProjectWithStats, error)

	// ListRefundRequests returns refund requests awaiting the caller as creator
	ListRefundRequests(ctx context.Context, creatorID string) ([]*entity.RefundRequest, error)
}
