package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
)

// RateLimit limits requests per client ip. A non-positive limit disables it.
// prefix separates the counters of limiters sharing one process.
func RateLimit(prefix string, limit int64, period time.Duration, logger coreport.Logger) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if period <= 0 {
		period = time.Minute
	}

	instance := limiter.New(
		memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix, CleanUpInterval: period}),
		limiter.Rate{Period: period, Limit: limit},
	)

	return func(c *gin.Context) {
		key := c.ClientIP()
		state, err := instance.Get(c.Request.Context(), key)
		if err != nil {
			logger.Error("Rate limiter unavailable", map[string]any{
				"error":      err.Error(),
				"request_id": RequestIDFrom(c),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(state.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(state.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(state.Reset, 10))

		if state.Reached {
			logger.Warn("Rate limit reached", map[string]any{
				"limiter":    prefix,
				"ip":         key,
				"request_id": RequestIDFrom(c),
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    errs.CodeRateLimited,
				Message: "too many requests, try again later",
			})
			return
		}

		c.Next()
	}
}
