package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
	Domain string
}

// AuthHandler exposes the caller identity and session lifecycle
type AuthHandler struct {
	users        usecase.UserUseCase
	cookie       CookieConfig
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(users usecase.UserUseCase, cookie CookieConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		users:        users,
		cookie:       cookie,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CurrentUser handles GET /api/auth/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// StartSession handles POST /api/auth/session. The caller was identified by a bearer token.
func (h *AuthHandler) StartSession(c *gin.Context) {
	user, err := caller(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.issueSession(c, user)
}

// Login handles POST /api/auth/login with a local email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.issueSession(c, user)
}

// EndSession handles DELETE /api/auth/session
func (h *AuthHandler) EndSession(c *gin.Context) {
	if sid, err := c.Cookie(h.cookie.Name); err == nil {
		if err := h.users.EndSession(c.Request.Context(), sid); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) issueSession(c *gin.Context, user *entity.User) {
	session, err := h.users.StartSession(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	maxAge := int(session.Expire.Sub(h.timeProvider.Now()) / time.Second)
	h.setCookie(c, session.SID, maxAge)
	c.JSON(http.StatusOK, dto.SessionResponse{
		User:      dto.NewUserResponse(user),
		ExpiresAt: session.Expire,
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}
