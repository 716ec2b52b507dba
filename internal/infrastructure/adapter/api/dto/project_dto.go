package dto

import (
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// ProjectEvaluator derives time-dependent project fields against the engine clock
type ProjectEvaluator interface {
	CanWithdraw(project *entity.Project) bool
	NeedsRefund(project *entity.Project) bool
	Status(project *entity.Project) entity.ProjectStatus
}

// CreateProjectRequest represents the API request for creating a project
type CreateProjectRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	GoalAmount  DecimalString `json:"goalAmount" binding:"required"`
	Deadline    DeadlineValue `json:"deadline"`
	ImageURL    string        `json:"imageUrl"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID            uint64    `json:"id"`
	CreatorID     string    `json:"creatorId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	GoalAmount    string    `json:"goalAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Deadline      string    `json:"deadline"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	IsActive      bool      `json:"isActive"`
	Withdrawn     bool      `json:"withdrawn"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
	CanWithdraw   bool      `json:"canWithdraw"`
	NeedsRefund   bool      `json:"needsRefund"`
}

// ProjectWithCreatorResponse is a project with its creator
type ProjectWithCreatorResponse struct {
	ProjectResponse
	Creator *UserResponse `json:"creator"`
}

// ProjectWithStatsResponse is a creator's project with its transactions and backer count
type ProjectWithStatsResponse struct {
	ProjectResponse
	Transactions []TransactionResponse `json:"transactions"`
	BackerCount  int                   `json:"backerCount"`
}

// NewProjectResponse maps a project
func NewProjectResponse(p *entity.Project, eval ProjectEvaluator) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		CreatorID:     p.CreatorID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      string(p.Category),
		GoalAmount:    entity.FormatAmount(p.GoalAmount),
		CurrentAmount: entity.FormatAmount(p.CurrentAmount),
		Deadline:      entity.FormatDeadline(p.Deadline),
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		Withdrawn:     p.Withdrawn,
		CreatedAt:     p.CreatedAt.UTC(),
		Status:        string(eval.Status(p)),
		CanWithdraw:   eval.CanWithdraw(p),
		NeedsRefund:   eval.NeedsRefund(p),
	}
}

// NewProjectListResponse maps a list of projects, never returning nil
func NewProjectListResponse(projects []*entity.Project, eval ProjectEvaluator) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p, eval))
	}
	return out
}

// NewProjectWithCreatorResponse maps a project joined with its creator
func NewProjectWithCreatorResponse(p *entity.ProjectWithCreator, eval ProjectEvaluator) ProjectWithCreatorResponse {
	resp := ProjectWithCreatorResponse{ProjectResponse: NewProjectResponse(&p.Project, eval)}
	if p.Creator != nil {
		creator := NewUserResponse(p.Creator)
		resp.Creator = &creator
	}
	return resp
}

// NewProjectWithStatsListResponse maps a creator's projects
func NewProjectWithStatsListResponse(projects []*entity.ProjectWithStats, eval ProjectEvaluator) []ProjectWithStatsResponse {
	out := make([]ProjectWithStatsResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectWithStatsResponse{
			ProjectResponse: NewProjectResponse(&p.Project, eval),
			Transactions:    NewTransactionListResponse(p.Transactions),
			BackerCount:     p.BackerCount,
		})
	}
	return out
}
