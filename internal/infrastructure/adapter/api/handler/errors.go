package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/middleware"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsValidationError(err), errs.IsStateConflictError(err):
		return http.StatusBadRequest
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsForbiddenError(err):
		return http.StatusForbidden
	case errs.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body. Server errors are logged with full detail
// and answered with a generic message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	_ = c.Error(err)

	if status >= http.StatusInternalServerError {
		fields := errs.LogFieldsOf(err)
		fields["path"] = c.FullPath()
		fields["request_id"] = middleware.RequestIDFrom(c)
		logger.Error("Request failed with server error", fields)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: errs.Message(err),
	})
}

// respondBindError answers a malformed request body
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidRequest,
		Message: "invalid request: " + err.Error(),
	})
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidID, c.Param(name))
	}
	return id, nil
}

// caller returns the authenticated user. Routes using it sit behind RequireCaller.
func caller(c *gin.Context) (*entity.User, error) {
	user, ok := middleware.CallerFrom(c)
	if !ok {
		return nil, errs.ErrUnauthorized
	}
	return user, nil
}
