package project

import (
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// UseCase implements the project catalogue and its read models.
// It never changes a raised amount; that belongs to the funding engine.
type UseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ProjectUseCase = (*UseCase)(nil)

// NewProjectUseCase creates a new project use case instance
func NewProjectUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
