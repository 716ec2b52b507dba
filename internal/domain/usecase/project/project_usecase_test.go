package project

import (
	"context"
	"errors"
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

var fixedTime = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

type useCaseMocks struct {
	uow          *persistencemocks.MockUnitOfWork
	projects     *persistencemocks.MockProjectRepository
	transactions *persistencemocks.MockTransactionRepository
	refunds      *persistencemocks.MockRefundRequestRepository
	logger       *coremocks.MockLogger
	clock        *coremocks.MockTimeProvider
}

func newUseCase(t *testing.T) (*UseCase, *useCaseMocks) {
	t.Helper()

	m := &useCaseMocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		projects:     persistencemocks.NewMockProjectRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		refunds:      persistencemocks.NewMockRefundRequestRepository(t),
		logger:       coremocks.NewMockLogger(t),
		clock:        coremocks.NewMockTimeProvider(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.clock.EXPECT().Now().Return(fixedTime).Maybe()
	m.uow.EXPECT().GetProjectRepository(mock.Anything).Return(m.projects).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.transactions).Maybe()
	m.uow.EXPECT().GetRefundRequestRepository(mock.Anything).Return(m.refunds).Maybe()

	return NewProjectUseCase(m.uow, m.clock, m.logger), m
}

func TestUseCase_CreateProject(t *testing.T) {
	t.Run("should store a normalized project", func(t *testing.T) {
		// Arrange
		uc, m := newUseCase(t)
		ctx := context.Background()
		deadline := fixedTime.Add(time.Hour)

		m.projects.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Project")).
			RunAndReturn(func(_ context.Context, p *entity.Project) error {
				p.ID = 42
				return nil
			}).Once()

		// Act
		project, err := uc.CreateProject(ctx, usecase.CreateProjectRequest{
			CreatorID:  "creator-1",
			Title:      "  Solar roof  ",
			Category:   "",
			GoalAmount: "1.0",
			Deadline:   deadline.UnixMilli(),
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(42), project.ID)
		assert.Equal(t, "Solar roof", project.Title)
		assert.Equal(t, entity.CategoryOther, project.Category)
		assert.True(t, project.CurrentAmount.IsZero())
		assert.True(t, project.IsActive)
		assert.False(t, project.Withdrawn)
		assert.True(t, project.Deadline.Equal(deadline))
		assert.True(t, project.GoalAmount.Equal(decimal.RequireFromString("1")))
	})

	testCases := []struct {
		name    string
		req     usecase.CreateProjectRequest
		wantErr error
	}{
		{
			name:    "deadline in the past",
			req:     usecase.CreateProjectRequest{CreatorID: "c", Title: "t", GoalAmount: "1", Deadline: fixedTime.Add(-time.Second)},
			wantErr: errs.ErrDeadlineInPast,
		},
		{
			name:    "deadline equal to now",
			req:     usecase.CreateProjectRequest{CreatorID: "c", Title: "t", GoalAmount: "1", Deadline: fixedTime},
			wantErr: errs.ErrDeadlineInPast,
		},
		{
			name:    "unparseable deadline",
			req:     usecase.CreateProjectRequest{CreatorID: "c", Title: "t", GoalAmount: "1", Deadline: "next week"},
			wantErr: errs.ErrInvalidDeadline,
		},
		{
			name:    "negative goal",
			req:     usecase.CreateProjectRequest{CreatorID: "c", Title: "t", GoalAmount: "-1", Deadline: "2031-01-01"},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:    "unknown category",
			req:     usecase.CreateProjectRequest{CreatorID: "c", Title: "t", Category: "crypto", GoalAmount: "1", Deadline: "2031-01-01"},
			wantErr: errs.ErrInvalidCategory,
		},
		{
			name:    "missing title",
			req:     usecase.CreateProjectRequest{CreatorID: "c", GoalAmount: "1", Deadline: "2031-01-01"},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "anonymous caller",
			req:     usecase.CreateProjectRequest{Title: "t", GoalAmount: "1", Deadline: "2031-01-01"},
			wantErr: errs.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newUseCase(t)

			project, err := uc.CreateProject(context.Background(), tc.req)

			assert.Nil(t, project)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("should surface store errors", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.projects.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		_, err := uc.CreateProject(context.Background(), usecase.CreateProjectRequest{
			CreatorID: "c", Title: "t", GoalAmount: "1", Deadline: "2031-01-01",
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUseCase_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("GetProject rejects a zero id", func(t *testing.T) {
		uc, _ := newUseCase(t)
		_, err := uc.GetProject(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("GetProject returns the project with its creator", func(t *testing.T) {
		uc, m := newUseCase(t)
		want := &entity.ProjectWithCreator{Project: entity.Project{ID: 3}, Creator: &entity.User{ID: "c"}}
		m.projects.EXPECT().GetWithCreator(ctx, uint64(3)).Return(want, nil).Once()

		got, err := uc.GetProject(ctx, 3)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("GetProject reports a missing project", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.projects.EXPECT().GetWithCreator(ctx, uint64(9)).Return(nil, errs.ErrProjectNotFound).Once()

		_, err := uc.GetProject(ctx, 9)

		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("ListActiveProjects delegates to the store", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.projects.EXPECT().ListActive(ctx).Return([]*entity.Project{{ID: 2}, {ID: 1}}, nil).Once()

		projects, err := uc.ListActiveProjects(ctx)

		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("ListTransactions validates the id", func(t *testing.T) {
		uc, m := newUseCase(t)
		_, err := uc.ListTransactions(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidID)

		m.transactions.EXPECT().ListByProject(ctx, uint64(5)).Return([]*entity.Transaction{}, nil).Once()
		txs, err := uc.ListTransactions(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("creator scoped lists require a caller", func(t *testing.T) {
		uc, m := newUseCase(t)

		_, err := uc.ListCreatorProjects(ctx, " ")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		_, err = uc.ListRefundRequests(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		m.projects.EXPECT().ListByCreator(ctx, "c").Return([]*entity.ProjectWithStats{{BackerCount: 2}}, nil).Once()
		m.refunds.EXPECT().ListByCreator(ctx, "c").Return(nil, errors.New("boom")).Once()

		stats, err := uc.ListCreatorProjects(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, 2, stats[0].BackerCount)

		_, err = uc.ListRefundRequests(ctx, "c")
		assert.Error(t, err)
	})
}
