package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/middleware"
)

// RateLimits configures the per client ip limits
type RateLimits struct {
	GeneralLimit  int64
	GeneralPeriod time.Duration
	LoginLimit    int64
	LoginPeriod   time.Duration
}

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Projects       *handler.ProjectHandler
	Funding        *handler.FundingHandler
	Auth           *handler.AuthHandler
	Health         *handler.HealthHandler
	MetricsHandler http.Handler
	Verifier       coreport.IdentityVerifier
	Users          usecase.UserUseCase
	CookieName     string
	RateLimits     RateLimits
	Logger         coreport.Logger
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/healthz", deps.Health.Healthz)
	if deps.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	api := router.Group("/api")
	api.Use(
		middleware.RateLimit("api", deps.RateLimits.GeneralLimit, deps.RateLimits.GeneralPeriod, deps.Logger),
		middleware.Identity(deps.Verifier, deps.Users, deps.CookieName, deps.Logger),
	)

	// Login is the only route that accepts anonymous callers
	api.POST("/auth/login",
		middleware.RateLimit("login", deps.RateLimits.LoginLimit, deps.RateLimits.LoginPeriod, deps.Logger),
		deps.Auth.Login,
	)
	api.DELETE("/auth/session", deps.Auth.EndSession)

	authed := api.Group("", middleware.RequireCaller())
	{
		authed.GET("/auth/user", deps.Auth.CurrentUser)
		authed.POST("/auth/session", deps.Auth.StartSession)

		authed.GET("/projects", deps.Projects.ListProjects)
		authed.POST("/projects", deps.Projects.CreateProject)
		authed.GET("/projects/:id", deps.Projects.GetProject)
		authed.GET("/projects/:id/transactions", deps.Projects.ListTransactions)
		authed.POST("/projects/:id/fund", deps.Funding.Fund)
		authed.POST("/projects/:id/withdraw", deps.Funding.Withdraw)
		authed.GET("/my-projects", deps.Projects.ListMyProjects)

		authed.GET("/refund-requests", deps.Funding.ListRefundRequests)
		authed.POST("/refund-requests", deps.Funding.CreateRefundRequest)
		authed.POST("/refund-requests/:id/process", deps.Funding.ProcessRefund)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, metrics coreport.Metrics, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
