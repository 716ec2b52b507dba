package funding

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// RecordContribution records a contribution and adds it to the project's raised
// amount in one transaction. Input is validated before the project is touched.
//
// Possible errors:
// - ErrInvalidAmount, ErrAmountOverflow, ErrInvalidTransactionType, ErrMissingTransactionHash
// - ErrProjectNotFound
// - ErrProjectInactive, ErrDeadlinePassed, ErrGoalAlreadyMet (wrapped in ProjectStateError)
// - ErrDuplicateTransaction: the transaction hash was already recorded
func (s *Service) RecordContribution(ctx context.Context, req usecase.ContributionRequest) (*entity.Transaction, error) {
	fields := map[string]any{
		"project_id": req.ProjectID,
		"donor_id":   req.DonorID,
		"type":       req.TransactionType,
		"amount":     req.Amount,
	}

	tx, err := entity.NewTransaction(
		req.ProjectID,
		req.DonorID,
		req.WalletAddress,
		req.Amount,
		req.TransactionType,
		req.TransactionHash,
		s.timeProvider.Now(),
	)
	if err != nil {
		return nil, s.fail(OpContribute, errs.NewFundingError(OpContribute, req.ProjectID, req.DonorID, req.Amount, "invalid contribution", err), fields)
	}

	err = s.serialized(ctx, OpContribute, tx.ProjectID, func(txCtx context.Context) error {
		now := s.timeProvider.Now()
		tx.ID = 0
		tx.CreatedAt = now.UTC()

		projects := s.uow.GetProjectRepository(txCtx)
		project, err := projects.GetByIDForUpdate(txCtx, tx.ProjectID)
		if err != nil {
			return err
		}

		if err := project.CheckContribution(now); err != nil {
			return stateError(project, OpContribute, err)
		}

		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, tx); err != nil {
			return err
		}

		return projects.SetAmount(txCtx, project.ID, project.ApplyContribution(tx.Amount))
	})
	if err != nil {
		return nil, s.fail(OpContribute, err, fields)
	}

	s.metrics.ContributionRecorded(string(tx.Type), tx.Amount.InexactFloat64())
	s.logger.Info("Contribution recorded", map[string]any{
		"project_id":     tx.ProjectID,
		"transaction_id": tx.ID,
		"type":           string(tx.Type),
		"amount":         entity.FormatAmount(tx.Amount),
	})
	return tx, nil
}
