package project

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// CreateProject validates and stores a new project owned by the caller
func (u *UseCase) CreateProject(ctx context.Context, req usecase.CreateProjectRequest) (*entity.Project, error) {
	deadline, err := entity.NormalizeDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	project, err := entity.NewProject(
		req.CreatorID,
		req.Title,
		req.Description,
		req.Category,
		req.GoalAmount,
		deadline,
		req.ImageURL,
		u.timeProvider.Now(),
	)
	if err != nil {
		u.logger.Warn("Rejected project creation", map[string]any{
			"creator_id": req.CreatorID,
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
			"request_id": coreport.RequestIDFrom(ctx),
		})
		return nil, err
	}

	if err := u.uow.GetProjectRepository(ctx).Create(ctx, project); err != nil {
		return nil, err
	}

	u.logger.Info("Project created", map[string]any{
		"project_id": project.ID,
		"creator_id": project.CreatorID,
		"goal":       entity.FormatAmount(project.GoalAmount),
		"deadline":   entity.FormatDeadline(project.Deadline),
		"request_id": coreport.RequestIDFrom(ctx),
	})
	return project, nil
}
