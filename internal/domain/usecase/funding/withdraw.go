package funding

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// Withdraw latches the project's withdrawn flag for its creator. It succeeds at
// most once per project: the check and the write happen under the project lock.
//
// Possible errors:
// - ErrProjectNotFound
// - ErrNotProjectCreator (wrapped in FundingError)
// - ErrAlreadyWithdrawn, ErrGoalNotMet, ErrDeadlinePassed, ErrProjectInactive (wrapped in ProjectStateError)
func (s *Service) Withdraw(ctx context.Context, projectID uint64, callerID string) error {
	fields := map[string]any{"project_id": projectID, "caller_id": callerID}

	if projectID == 0 {
		return s.fail(OpWithdraw, errs.ErrInvalidID, fields)
	}

	var raised string
	err := s.serialized(ctx, OpWithdraw, projectID, func(txCtx context.Context) error {
		projects := s.uow.GetProjectRepository(txCtx)
		project, err := projects.GetByIDForUpdate(txCtx, projectID)
		if err != nil {
			return err
		}

		if err := project.CheckWithdraw(callerID, s.timeProvider.Now()); err != nil {
			if errs.IsForbiddenError(err) {
				return errs.NewFundingError(OpWithdraw, projectID, callerID, entity.FormatAmount(project.CurrentAmount), "caller is not the project creator", err)
			}
			return stateError(project, OpWithdraw, err)
		}

		raised = entity.FormatAmount(project.CurrentAmount)
		return projects.SetWithdrawn(txCtx, projectID)
	})
	if err != nil {
		return s.fail(OpWithdraw, err, fields)
	}

	s.metrics.WithdrawalCompleted()
	s.logger.Info("Funds withdrawn", map[string]any{
		"project_id": projectID,
		"creator_id": callerID,
		"amount":     raised,
	})
	return nil
}
