package project

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// ListActiveProjects returns active projects, newest first
func (u *UseCase) ListActiveProjects(ctx context.Context) ([]*entity.Project, error) {
	return u.uow.GetProjectRepository(ctx).ListActive(ctx)
}

// GetProject returns a project with its creator
func (u *UseCase) GetProject(ctx context.Context, id uint64) (*entity.ProjectWithCreator, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}
	return u.uow.GetProjectRepository(ctx).GetWithCreator(ctx, id)
}

// ListTransactions returns a project's contributions, newest first.
// An unknown project yields an empty list.
func (u *UseCase) ListTransactions(ctx context.Context, projectID uint64) ([]*entity.Transaction, error) {
	if projectID == 0 {
		return nil, errs.ErrInvalidID
	}
	return u.uow.GetTransactionRepository(ctx).ListByProject(ctx, projectID)
}

// ListCreatorProjects returns the caller's projects with transactions and backer counts
func (u *UseCase) ListCreatorProjects(ctx context.Context, creatorID string) ([]*entity.ProjectWithStats, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, errs.ErrUnauthorized
	}
	return u.uow.GetProjectRepository(ctx).ListByCreator(ctx, creatorID)
}

// ListRefundRequests returns refund requests awaiting the caller as creator
func (u *UseCase) ListRefundRequests(ctx context.Context, creatorID string) ([]*entity.RefundRequest, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, errs.ErrUnauthorized
	}
	return u.uow.GetRefundRequestRepository(ctx).ListByCreator(ctx, creatorID)
}
