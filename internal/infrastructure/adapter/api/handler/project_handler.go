package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
)

// ProjectHandler handles project catalogue requests
type ProjectHandler struct {
	projects  usecase.ProjectUseCase
	evaluator dto.ProjectEvaluator
	logger    coreport.Logger
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(projects usecase.ProjectUseCase, evaluator dto.ProjectEvaluator, logger coreport.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:  projects,
		evaluator: evaluator,
		logger:    logger,
	}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListActiveProjects(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectListResponse(projects, h.evaluator))
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectWithCreatorResponse(project, h.evaluator))
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), usecase.CreateProjectRequest{
		CreatorID:   user.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		GoalAmount:  req.GoalAmount.String(),
		Deadline:    req.Deadline.Value,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProjectResponse(project, h.evaluator))
}

// ListTransactions handles GET /api/projects/:id/transactions
func (h *ProjectHandler) ListTransactions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	txs, err := h.projects.ListTransactions(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txs))
}

// ListMyProjects handles GET /api/my-projects
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	projects, err := h.projects.ListCreatorProjects(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectWithStatsListResponse(projects, h.evaluator))
}
