package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
)

const callerKey = "caller"

// Identity resolves the caller from an Authorization bearer token or, failing that,
// from the session cookie. Requests without credentials pass through anonymously;
// a credential that is present but invalid is rejected with 401.
func Identity(verifier coreport.IdentityVerifier, users usecase.UserUseCase, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if token, ok := bearerToken(c); ok {
			identity, err := verifier.Verify(ctx, token)
			if err != nil {
				abortUnauthorized(c, err)
				return
			}
			user, err := users.SyncIdentity(ctx, identity)
			if err != nil {
				if errs.IsUnauthorizedError(err) {
					abortUnauthorized(c, err)
					return
				}
				logger.Error("Failed to sync caller identity", map[string]any{
					"error":      err.Error(),
					"request_id": RequestIDFrom(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.ErrorCode(err),
					Message: errs.ErrInternalServer.Error(),
				})
				return
			}
			c.Set(callerKey, user)
			c.Next()
			return
		}

		if sid, err := c.Cookie(cookieName); err == nil && sid != "" {
			user, err := users.ResolveSession(ctx, sid)
			switch {
			case err == nil:
				c.Set(callerKey, user)
			case errs.IsUnauthorizedError(err):
				// stale cookie: continue anonymously and let protected routes answer 401
				logger.Debug("Ignoring stale session cookie", map[string]any{"request_id": RequestIDFrom(c)})
			default:
				logger.Error("Failed to resolve session", map[string]any{
					"error":      err.Error(),
					"request_id": RequestIDFrom(c),
				})
			}
		}

		c.Next()
	}
}

// RequireCaller rejects anonymous requests with 401
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerFrom(c); !ok {
			abortUnauthorized(c, errs.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// CallerFrom returns the authenticated caller, if any
func CallerFrom(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.CodeUnauthorized,
		Message: errs.Message(err),
	})
}
