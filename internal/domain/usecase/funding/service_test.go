package funding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/crowdfund-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/crowdfund-ledger/mocks/port/persistence"
)

type serviceMocks struct {
	uow          *persistencemocks.MockUnitOfWork
	projects     *persistencemocks.MockProjectRepository
	transactions *persistencemocks.MockTransactionRepository
	refunds      *persistencemocks.MockRefundRequestRepository
	metrics      *coremocks.MockMetrics
	logger       *coremocks.MockLogger
	clock        *coremocks.MockTimeProvider
}

func newMockedService(t *testing.T, now time.Time) (*Service, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		projects:     persistencemocks.NewMockProjectRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		refunds:      persistencemocks.NewMockRefundRequestRepository(t),
		metrics:      coremocks.NewMockMetrics(t),
		logger:       coremocks.NewMockLogger(t),
		clock:        coremocks.NewMockTimeProvider(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.clock.EXPECT().Now().Return(now).Maybe()

	m.uow.EXPECT().GetProjectRepository(mock.Anything).Return(m.projects).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.transactions).Maybe()
	m.uow.EXPECT().GetRefundRequestRepository(mock.Anything).Return(m.refunds).Maybe()

	svc := NewService(m.uow, m.metrics, m.logger, m.clock, Config{
		QueueBuffer:        4,
		QueueIdleTimeout:   time.Second,
		MaxConflictRetries: 2,
		RetryBackoff:       time.Millisecond,
	})
	t.Cleanup(svc.Shutdown)
	return svc, m
}

func (m *serviceMocks) expectCommit() {
	m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

func (m *serviceMocks) expectRollback() {
	m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func openProject(now time.Time) *entity.Project {
	return &entity.Project{
		ID:            7,
		CreatorID:     "creator",
		GoalAmount:    decimal.RequireFromString("10"),
		CurrentAmount: decimal.RequireFromString("2"),
		Deadline:      now.Add(time.Hour),
		IsActive:      true,
	}
}

func decimalEq(want string) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString(want)) })
}

func TestService_RecordContribution(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("records and adds the amount", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.ProjectID == 7 && tx.Type == entity.TypeDemo && tx.TransactionHash == ""
		})).RunAndReturn(func(_ context.Context, tx *entity.Transaction) error {
			tx.ID = 99
			return nil
		}).Once()
		m.projects.EXPECT().SetAmount(mock.Anything, uint64(7), decimalEq("3.5")).Return(nil).Once()
		m.metrics.EXPECT().ContributionRecorded("demo", 1.5).Once()

		tx, err := svc.RecordContribution(context.Background(), usecase.ContributionRequest{
			ProjectID:       7,
			DonorID:         "donor",
			Amount:          "1.5",
			TransactionType: "demo",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(99), tx.ID)
		assert.Equal(t, "1.50000000", entity.FormatAmount(tx.Amount))
	})

	invalid := []struct {
		name    string
		amount  string
		txType  string
		wantErr error
	}{
		{"negative amount", "-1", "demo", errs.ErrInvalidAmount},
		{"not a number", "abc", "demo", errs.ErrInvalidAmount},
		{"zero", "0", "demo", errs.ErrInvalidAmount},
		{"unknown type", "1", "crypto", errs.ErrInvalidTransactionType},
		{"real without hash", "1", "real", errs.ErrMissingTransactionHash},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			svc, m := newMockedService(t, now)
			m.metrics.EXPECT().OperationFailed(OpContribute, "validation").Once()

			_, err := svc.RecordContribution(context.Background(), usecase.ContributionRequest{
				ProjectID:       7,
				DonorID:         "donor",
				Amount:          tt.amount,
				TransactionType: tt.txType,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errs.IsValidationError(err))
			var fundingErr *errs.FundingError
			assert.True(t, errors.As(err, &fundingErr))
		})
	}

	t.Run("rejects once the goal is met", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		project := openProject(now)
		project.CurrentAmount = decimal.RequireFromString("10")
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(project, nil).Once()
		m.metrics.EXPECT().OperationFailed(OpContribute, "state_conflict").Once()

		_, err := svc.RecordContribution(context.Background(), demo(7, "donor", "1"))

		assert.ErrorIs(t, err, errs.ErrGoalAlreadyMet)
		var stateErr *errs.ProjectStateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "10.00000000", stateErr.CurrentAmount)
	})

	t.Run("rejects an inactive project", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		project := openProject(now)
		project.IsActive = false
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(project, nil).Once()
		m.metrics.EXPECT().OperationFailed(OpContribute, "state_conflict").Once()

		_, err := svc.RecordContribution(context.Background(), demo(7, "donor", "1"))
		assert.ErrorIs(t, err, errs.ErrProjectInactive)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(nil, errs.ErrProjectNotFound).Once()
		m.metrics.EXPECT().OperationFailed(OpContribute, "not_found").Once()

		_, err := svc.RecordContribution(context.Background(), demo(7, "donor", "1"))
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})

	t.Run("duplicate hash leaves the amount alone", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateTransaction).Once()
		m.metrics.EXPECT().OperationFailed(OpContribute, "state_conflict").Once()

		_, err := svc.RecordContribution(context.Background(), usecase.ContributionRequest{
			ProjectID:       7,
			Amount:          "1",
			TransactionType: "real",
			TransactionHash: "0x" + strings.Repeat("AB", 32),
		})
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("retries after a lost serialization race", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Twice()
		m.uow.EXPECT().Commit(mock.Anything).Return(errs.ErrConcurrentUpdate).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Twice()
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Twice()
		m.projects.EXPECT().SetAmount(mock.Anything, uint64(7), decimalEq("3")).Return(nil).Twice()
		m.clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Once()
		m.metrics.EXPECT().ConflictRetried(OpContribute).Once()
		m.metrics.EXPECT().ContributionRecorded("demo", 1.0).Once()

		_, err := svc.RecordContribution(context.Background(), demo(7, "donor", "1"))
		require.NoError(t, err)
	})

	t.Run("gives up after max conflict retries", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Times(3)
		m.uow.EXPECT().Commit(mock.Anything).Return(errs.ErrConcurrentUpdate).Times(3)
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Times(3)
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(3)
		m.projects.EXPECT().SetAmount(mock.Anything, uint64(7), mock.Anything).Return(nil).Times(3)
		m.clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Twice()
		m.metrics.EXPECT().ConflictRetried(OpContribute).Twice()
		m.metrics.EXPECT().OperationFailed(OpContribute, "internal").Once()

		_, err := svc.RecordContribution(context.Background(), demo(7, "donor", "1"))
		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})
}

func TestService_Withdraw(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	funded := func() *entity.Project {
		p := openProject(now)
		p.CurrentAmount = decimal.RequireFromString("10")
		return p
	}

	t.Run("creator withdraws a funded project", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(funded(), nil).Once()
		m.projects.EXPECT().SetWithdrawn(mock.Anything, uint64(7)).Return(nil).Once()
		m.metrics.EXPECT().WithdrawalCompleted().Once()

		require.NoError(t, svc.Withdraw(context.Background(), 7, "creator"))
	})

	tests := []struct {
		name     string
		project  func() *entity.Project
		caller   string
		wantErr  error
		wantKind string
	}{
		{"not the creator", funded, "someone", errs.ErrNotProjectCreator, "forbidden"},
		{"already withdrawn", func() *entity.Project { p := funded(); p.Withdrawn = true; return p }, "creator", errs.ErrAlreadyWithdrawn, "state_conflict"},
		{"goal not met", func() *entity.Project { return openProject(now) }, "creator", errs.ErrGoalNotMet, "state_conflict"},
		{"deadline passed", func() *entity.Project { p := funded(); p.Deadline = now.Add(-time.Second); return p }, "creator", errs.ErrDeadlinePassed, "state_conflict"},
		{"inactive", func() *entity.Project { p := funded(); p.IsActive = false; return p }, "creator", errs.ErrProjectInactive, "state_conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMockedService(t, now)
			m.expectRollback()
			m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(tt.project(), nil).Once()
			m.metrics.EXPECT().OperationFailed(OpWithdraw, tt.wantKind).Once()

			err := svc.Withdraw(context.Background(), 7, tt.caller)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ProcessRefund(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	request := func(approved bool) *entity.RefundRequest {
		return &entity.RefundRequest{
			ID:        3,
			ProjectID: 7,
			DonorID:   "donor",
			Amount:    decimal.RequireFromString("0.5"),
			CreatorID: "creator",
			Approved:  approved,
		}
	}

	t.Run("first approval deducts", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.projects.EXPECT().SetAmount(mock.Anything, uint64(7), decimalEq("1.5")).Return(nil).Once()
		m.refunds.EXPECT().SetApproved(mock.Anything, uint64(3), true).Return(nil).Once()
		m.metrics.EXPECT().RefundProcessed(RefundApproved).Once()

		require.NoError(t, svc.ProcessRefund(context.Background(), 3, "creator", true))
	})

	t.Run("repeated approval does not deduct", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(request(true), nil).Once()
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(request(true), nil).Once()
		m.refunds.EXPECT().SetApproved(mock.Anything, uint64(3), true).Return(nil).Once()
		m.metrics.EXPECT().RefundProcessed(RefundAlreadyApproved).Once()

		require.NoError(t, svc.ProcessRefund(context.Background(), 3, "creator", true))
	})

	t.Run("rejection leaves the amount alone", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.refunds.EXPECT().SetApproved(mock.Anything, uint64(3), false).Return(nil).Once()
		m.metrics.EXPECT().RefundProcessed(RefundRejected).Once()

		require.NoError(t, svc.ProcessRefund(context.Background(), 3, "creator", false))
	})

	t.Run("approved request cannot be rejected", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(request(true), nil).Once()
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(request(true), nil).Once()
		m.metrics.EXPECT().OperationFailed(OpProcessRefund, "state_conflict").Once()

		err := svc.ProcessRefund(context.Background(), 3, "creator", false)
		assert.ErrorIs(t, err, errs.ErrRefundAlreadyApproved)
	})

	t.Run("only the creator may process", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(request(false), nil).Once()
		m.metrics.EXPECT().OperationFailed(OpProcessRefund, "forbidden").Once()

		err := svc.ProcessRefund(context.Background(), 3, "donor", true)
		assert.ErrorIs(t, err, errs.ErrNotRefundApprover)
	})

	t.Run("missing refund", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.refunds.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrRefundNotFound).Once()
		m.metrics.EXPECT().OperationFailed(OpProcessRefund, "not_found").Once()

		err := svc.ProcessRefund(context.Background(), 3, "creator", true)
		assert.ErrorIs(t, err, errs.ErrRefundNotFound)
	})
}

func TestService_RequestRefund(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	txID := uint64(11)
	contribution := func(projectID uint64, donor, amount string) *entity.Transaction {
		return &entity.Transaction{ID: txID, ProjectID: projectID, DonorID: donor, Amount: decimal.RequireFromString(amount)}
	}

	t.Run("amount above the linked contribution", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().GetByID(mock.Anything, txID).Return(contribution(7, "donor", "0.5"), nil).Once()
		m.refunds.EXPECT().SumByTransaction(mock.Anything, txID).Return(decimal.Zero, nil).Once()
		m.metrics.EXPECT().OperationFailed(OpRequestRefund, "validation").Once()

		_, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{
			ProjectID: 7, DonorID: "donor", TransactionID: &txID, Amount: "0.6",
		})
		assert.ErrorIs(t, err, errs.ErrRefundExceedsContribution)
	})

	t.Run("contribution already claimed in full", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().GetByID(mock.Anything, txID).Return(contribution(7, "donor", "0.5"), nil).Once()
		m.refunds.EXPECT().SumByTransaction(mock.Anything, txID).Return(decimal.RequireFromString("0.5"), nil).Once()
		m.metrics.EXPECT().OperationFailed(OpRequestRefund, "validation").Once()

		_, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{
			ProjectID: 7, DonorID: "donor", TransactionID: &txID, Amount: "0.5",
		})
		assert.ErrorIs(t, err, errs.ErrRefundExceedsContribution)
	})

	t.Run("remainder of a partly claimed contribution", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().GetByID(mock.Anything, txID).Return(contribution(7, "donor", "0.5"), nil).Once()
		m.refunds.EXPECT().SumByTransaction(mock.Anything, txID).Return(decimal.RequireFromString("0.2"), nil).Once()
		m.refunds.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{
			ProjectID: 7, DonorID: "donor", TransactionID: &txID, Amount: "0.3",
		})
		require.NoError(t, err)
	})

	t.Run("contribution of another backer", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().GetByID(mock.Anything, txID).Return(contribution(7, "someone-else", "5"), nil).Once()
		m.refunds.EXPECT().SumByTransaction(mock.Anything, txID).Return(decimal.Zero, nil).Once()
		m.metrics.EXPECT().OperationFailed(OpRequestRefund, "not_found").Once()

		_, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{
			ProjectID: 7, DonorID: "donor", TransactionID: &txID, Amount: "1",
		})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("transaction of another project", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectRollback()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.transactions.EXPECT().GetByID(mock.Anything, txID).Return(contribution(8, "donor", "5"), nil).Once()
		m.refunds.EXPECT().SumByTransaction(mock.Anything, txID).Return(decimal.Zero, nil).Once()
		m.metrics.EXPECT().OperationFailed(OpRequestRefund, "not_found").Once()

		_, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{
			ProjectID: 7, DonorID: "donor", TransactionID: &txID, Amount: "1",
		})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("stores an unapproved request for the creator", func(t *testing.T) {
		svc, m := newMockedService(t, now)
		m.expectCommit()
		m.projects.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(openProject(now), nil).Once()
		m.refunds.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.RefundRequest) bool {
			return r.CreatorID == "creator" && !r.Approved && r.Amount.Equal(decimal.RequireFromString("1"))
		})).Return(nil).Once()

		req, err := svc.RequestRefund(context.Background(), usecase.RefundClaim{ProjectID: 7, DonorID: "donor", Amount: "1"})
		require.NoError(t, err)
		assert.Equal(t, "donor", req.DonorID)
	})
}

func TestService_Predicates(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newMockedService(t, now)

	expired := openProject(now)
	expired.Deadline = now.Add(-time.Second)

	assert.False(t, svc.CanWithdraw(openProject(now)))
	assert.True(t, svc.NeedsRefund(expired))
	assert.Equal(t, entity.StatusOpen, svc.Status(openProject(now)))
	assert.Equal(t, entity.StatusExpiredUnderfunded, svc.Status(expired))
}
