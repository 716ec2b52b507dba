package funding

import (
	"context"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// RequestRefund files an unapproved refund request against the project's creator.
// A linked transaction must be the claimant's own contribution to the project,
// and all requests filed against it together may not exceed its amount.
// Claims run on the project's queue so two claims on one contribution cannot
// both pass the coverage check. No balance changes until the creator approves.
//
// Possible errors:
// - ErrInvalidAmount, ErrAmountOverflow, ErrRefundExceedsContribution
// - ErrProjectNotFound, ErrTransactionNotFound
func (s *Service) RequestRefund(ctx context.Context, claim usecase.RefundClaim) (*entity.RefundRequest, error) {
	fields := map[string]any{
		"project_id": claim.ProjectID,
		"donor_id":   claim.DonorID,
		"amount":     claim.Amount,
	}

	if claim.ProjectID == 0 {
		return nil, s.fail(OpRequestRefund, errs.ErrInvalidID, fields)
	}

	var request *entity.RefundRequest
	err := s.serialized(ctx, OpRequestRefund, claim.ProjectID, func(txCtx context.Context) error {
		project, err := s.uow.GetProjectRepository(txCtx).GetByIDForUpdate(txCtx, claim.ProjectID)
		if err != nil {
			return err
		}

		request, err = entity.NewRefundRequest(project, claim.DonorID, claim.TransactionID, claim.Amount, s.timeProvider.Now())
		if err != nil {
			return errs.NewFundingError(OpRequestRefund, claim.ProjectID, claim.DonorID, claim.Amount, "invalid refund request", err)
		}

		refunds := s.uow.GetRefundRequestRepository(txCtx)
		if claim.TransactionID != nil {
			tx, err := s.uow.GetTransactionRepository(txCtx).GetByID(txCtx, *claim.TransactionID)
			if err != nil {
				return err
			}
			claimed, err := refunds.SumByTransaction(txCtx, tx.ID)
			if err != nil {
				return err
			}
			if err := request.CheckLinkedTransaction(tx, claimed); err != nil {
				fields["already_claimed"] = entity.FormatAmount(claimed)
				return errs.NewFundingError(OpRequestRefund, claim.ProjectID, claim.DonorID, claim.Amount, "linked transaction does not cover the refund", err)
			}
		}

		return refunds.Create(txCtx, request)
	})
	if err != nil {
		return nil, s.fail(OpRequestRefund, err, fields)
	}

	s.logger.Info("Refund requested", map[string]any{
		"refund_id":  request.ID,
		"project_id": request.ProjectID,
		"amount":     entity.FormatAmount(request.Amount),
	})
	return request, nil
}

// ProcessRefund approves or rejects a refund request as the project creator.
// The first approval deducts the amount from the raised total, floored at zero.
// Approving again leaves the total untouched. An approved request cannot be
// rejected afterwards.
//
// Possible errors:
// - ErrRefundNotFound, ErrProjectNotFound
// - ErrNotRefundApprover, ErrRefundAlreadyApproved (wrapped in FundingError)
func (s *Service) ProcessRefund(ctx context.Context, refundID uint64, approverID string, approved bool) error {
	fields := map[string]any{"refund_id": refundID, "approver_id": approverID, "approved": approved}

	if refundID == 0 {
		return s.fail(OpProcessRefund, errs.ErrInvalidID, fields)
	}

	// the project id picks the queue; the request is read again under lock below
	peek, err := s.uow.GetRefundRequestRepository(ctx).GetByID(ctx, refundID)
	if err != nil {
		return s.fail(OpProcessRefund, err, fields)
	}
	fields["project_id"] = peek.ProjectID

	outcome := RefundRejected
	err = s.serialized(ctx, OpProcessRefund, peek.ProjectID, func(txCtx context.Context) error {
		refunds := s.uow.GetRefundRequestRepository(txCtx)
		projects := s.uow.GetProjectRepository(txCtx)

		project, err := projects.GetByIDForUpdate(txCtx, peek.ProjectID)
		if err != nil {
			return err
		}
		request, err := refunds.GetByIDForUpdate(txCtx, refundID)
		if err != nil {
			return err
		}

		if err := request.CheckApprover(approverID); err != nil {
			return errs.NewFundingError(OpProcessRefund, request.ProjectID, approverID, entity.FormatAmount(request.Amount), "caller is not the refund approver", err)
		}

		switch {
		case approved && request.Approved:
			outcome = RefundAlreadyApproved
		case approved:
			outcome = RefundApproved
			if err := projects.SetAmount(txCtx, project.ID, project.ApplyRefund(request.Amount)); err != nil {
				return err
			}
		case request.Approved:
			return errs.NewFundingError(OpProcessRefund, request.ProjectID, approverID, entity.FormatAmount(request.Amount), "approved refund cannot be rejected", errs.ErrRefundAlreadyApproved)
		default:
			outcome = RefundRejected
		}

		return refunds.SetApproved(txCtx, refundID, approved)
	})
	if err != nil {
		return s.fail(OpProcessRefund, err, fields)
	}

	s.metrics.RefundProcessed(outcome)
	s.logger.Info("Refund processed", map[string]any{
		"refund_id":  refundID,
		"project_id": peek.ProjectID,
		"outcome":    outcome,
	})
	return nil
}
