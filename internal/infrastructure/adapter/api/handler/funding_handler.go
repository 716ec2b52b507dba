package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
)

// FundingHandler handles contributions, withdrawals and refunds.
// It authorizes and validates input; every balance rule lives in the funding engine.
type FundingHandler struct {
	funding  usecase.FundingUseCase
	projects usecase.ProjectUseCase
	logger   coreport.Logger
}

// NewFundingHandler creates a new funding handler instance
func NewFundingHandler(funding usecase.FundingUseCase, projects usecase.ProjectUseCase, logger coreport.Logger) *FundingHandler {
	return &FundingHandler{
		funding:  funding,
		projects: projects,
		logger:   logger,
	}
}

// Fund handles POST /api/projects/:id/fund
func (h *FundingHandler) Fund(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.funding.RecordContribution(c.Request.Context(), usecase.ContributionRequest{
		ProjectID:       projectID,
		DonorID:         user.ID,
		WalletAddress:   req.DonorWalletAddress,
		Amount:          req.Amount.String(),
		TransactionType: req.TransactionType,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Withdraw handles POST /api/projects/:id/withdraw
func (h *FundingHandler) Withdraw(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.funding.Withdraw(c.Request.Context(), projectID, user.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Funds withdrawn successfully"})
}

// ListRefundRequests handles GET /api/refund-requests
func (h *FundingHandler) ListRefundRequests(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	requests, err := h.projects.ListRefundRequests(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRefundRequestListResponse(requests))
}

// CreateRefundRequest handles POST /api/refund-requests
func (h *FundingHandler) CreateRefundRequest(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var transactionID *uint64
	if req.TransactionID != nil && *req.TransactionID != 0 {
		id := uint64(*req.TransactionID)
		transactionID = &id
	}

	refund, err := h.funding.RequestRefund(c.Request.Context(), usecase.RefundClaim{
		ProjectID:     uint64(req.ProjectID),
		DonorID:       user.ID,
		TransactionID: transactionID,
		Amount:        req.Amount.String(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRefundRequestResponse(refund))
}

// ProcessRefund handles POST /api/refund-requests/:id/process
func (h *FundingHandler) ProcessRefund(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	refundID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.ProcessRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.funding.ProcessRefund(c.Request.Context(), refundID, user.ID, *req.Approved); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Refund request rejected"
	if *req.Approved {
		message = "Refund request approved"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
