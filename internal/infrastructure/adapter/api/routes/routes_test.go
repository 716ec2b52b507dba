package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	portusecase "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/funding"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/project"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/time"
)

const cookieName = "sid"

type testServer struct {
	router   *gin.Engine
	clock    *timeprovider.FixedTimeProvider
	verifier *identity.JWTVerifier
	users    *user.UserUseCase
}

func newTestServer(t *testing.T, limits routes.RateLimits) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeprovider.NewFixedTimeProvider(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	testDB := database.NewTestDBManager(t, log, clock)
	uow := testDB.Manager.CreateUnitOfWork()
	promMetrics := metrics.NewPrometheusMetrics()

	verifier, err := identity.NewJWTVerifier(identity.Config{
		Secret:   "routes-test-secret",
		Issuer:   "crowdfund-test",
		TokenTTL: 30 * 24 * time.Hour,
	}, clock, log)
	require.NoError(t, err)

	engine := funding.NewService(uow, promMetrics, log, clock, funding.DefaultConfig())
	t.Cleanup(engine.Shutdown)
	projects := project.NewProjectUseCase(uow, clock, log)
	users := user.NewUserUseCase(uow, repository.NewSessionRepository(testDB.Manager.DB(), clock, log), clock, log, user.Config{
		SessionTTL: 24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, log, promMetrics, []string{"http://ui.example.com"})
	routes.SetupRoutes(router, routes.Dependencies{
		Projects:       handler.NewProjectHandler(projects, engine, log),
		Funding:        handler.NewFundingHandler(engine, projects, log),
		Auth:           handler.NewAuthHandler(users, handler.CookieConfig{Name: cookieName}, clock, log),
		Health:         handler.NewHealthHandler(testDB.Manager, log),
		MetricsHandler: promMetrics.Handler(),
		Verifier:       verifier,
		Users:          users,
		CookieName:     cookieName,
		RateLimits:     limits,
		Logger:         log,
	})

	return &testServer{router: router, clock: clock, verifier: verifier, users: users}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.verifier.Sign(&coreport.Identity{
		UserID:    userID,
		Email:     userID + "@example.com",
		FirstName: userID,
	})
	require.NoError(t, err)
	return token
}

type request struct {
	method string
	path   string
	token  string
	cookie *http.Cookie
	body   any
}

func (s *testServer) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if r.body != nil {
		switch b := r.body.(type) {
		case string:
			body.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&body).Encode(b))
		}
	}

	req := httptest.NewRequest(r.method, r.path, &body)
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.cookie != nil {
		req.AddCookie(r.cookie)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *testServer) createProject(t *testing.T, token, goal string, deadline any) dto.ProjectResponse {
	t.Helper()
	rec := s.do(t, request{method: http.MethodPost, path: "/api/projects", token: token, body: map[string]any{
		"title":       "Community solar",
		"description": "Panels for the library roof",
		"category":    "environment",
		"goalAmount":  goal,
		"deadline":    deadline,
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.ProjectResponse](t, rec)
}

func (s *testServer) fund(t *testing.T, token string, projectID uint64, amount any) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/projects/%d/fund", projectID),
		token:  token,
		body:   map[string]any{"amount": amount, "transactionType": "demo"},
	})
}

func (s *testServer) getProject(t *testing.T, token string, id uint64) dto.ProjectWithCreatorResponse {
	t.Helper()
	rec := s.do(t, request{method: http.MethodGet, path: fmt.Sprintf("/api/projects/%d", id), token: token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[dto.ProjectWithCreatorResponse](t, rec)
}

func TestFundAndWithdraw(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	donor := s.token(t, "donor")

	p := s.createProject(t, creator, "1.0", s.clock.Now().Add(time.Hour).Format(time.RFC3339))
	assert.Equal(t, "1.00000000", p.GoalAmount)
	assert.Equal(t, "0.00000000", p.CurrentAmount)
	assert.Equal(t, "open", p.Status)
	assert.False(t, p.CanWithdraw)

	require.Equal(t, http.StatusCreated, s.fund(t, donor, p.ID, "0.6").Code)
	rec := s.fund(t, donor, p.ID, "0.4")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tx := decode[dto.TransactionResponse](t, rec)
	assert.Equal(t, "0.40000000", tx.Amount)
	assert.Equal(t, "donor", tx.DonorID)

	got := s.getProject(t, donor, p.ID)
	assert.Equal(t, "1.00000000", got.CurrentAmount)
	assert.True(t, got.CanWithdraw)
	assert.Equal(t, "goal_met", got.Status)
	require.NotNil(t, got.Creator)
	assert.Equal(t, "creator", got.Creator.ID)

	t.Run("goal met blocks further funding", func(t *testing.T) {
		rec := s.fund(t, donor, p.ID, "0.1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeGoalAlreadyMet, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("only the creator withdraws", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: fmt.Sprintf("/api/projects/%d/withdraw", p.ID), token: donor})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec = s.do(t, request{method: http.MethodPost, path: fmt.Sprintf("/api/projects/%d/withdraw", p.ID), token: creator})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Funds withdrawn successfully", decode[dto.MessageResponse](t, rec).Message)

	rec = s.do(t, request{method: http.MethodPost, path: fmt.Sprintf("/api/projects/%d/withdraw", p.ID), token: creator})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeAlreadyWithdrawn, decode[dto.ErrorResponse](t, rec).Code)

	got = s.getProject(t, creator, p.ID)
	assert.True(t, got.Withdrawn)
	assert.Equal(t, "withdrawn", got.Status)
	assert.Equal(t, "1.00000000", got.CurrentAmount)

	rec = s.do(t, request{method: http.MethodGet, path: "/api/my-projects", token: creator})
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]dto.ProjectWithStatsResponse](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].BackerCount)
	assert.Len(t, mine[0].Transactions, 2)

	rec = s.do(t, request{method: http.MethodGet, path: fmt.Sprintf("/api/projects/%d/transactions", p.ID), token: donor})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.TransactionResponse](t, rec), 2)
}

func TestDeadlines(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	donor := s.token(t, "donor")

	t.Run("past deadline is rejected at creation", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/projects", token: creator, body: map[string]any{
			"title":      "Too late",
			"goalAmount": "1",
			"deadline":   s.clock.Now().Add(-time.Second).Unix(),
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeDeadlineInPast, decode[dto.ErrorResponse](t, rec).Code)
	})

	deadline := s.clock.Now().Add(time.Hour)
	p := s.createProject(t, creator, "5", deadline.UnixMilli())
	assert.Equal(t, deadline.Format(time.RFC3339Nano), p.Deadline)

	s.clock.Set(deadline)
	rec := s.fund(t, donor, p.ID, "1")
	require.Equal(t, http.StatusCreated, rec.Code, "the deadline instant itself is still open: %s", rec.Body.String())

	s.clock.Advance(time.Nanosecond)
	rec = s.fund(t, donor, p.ID, "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeDeadlinePassed, decode[dto.ErrorResponse](t, rec).Code)

	got := s.getProject(t, donor, p.ID)
	assert.Equal(t, "1.00000000", got.CurrentAmount)
	assert.Equal(t, "expired_underfunded", got.Status)
	assert.True(t, got.NeedsRefund)
}

func TestRefundFlow(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	donor := s.token(t, "donor")

	p := s.createProject(t, creator, "10", s.clock.Now().Add(24*time.Hour).Format(time.RFC3339))
	rec := s.fund(t, donor, p.ID, "0.5")
	require.Equal(t, http.StatusCreated, rec.Code)
	tx := decode[dto.TransactionResponse](t, rec)

	t.Run("refund larger than the linked contribution", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/refund-requests", token: donor, body: map[string]any{
			"projectId": p.ID, "transactionId": tx.ID, "amount": "0.6",
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeRefundExceedsContribute, decode[dto.ErrorResponse](t, rec).Code)
	})

	rec = s.do(t, request{method: http.MethodPost, path: "/api/refund-requests", token: donor, body: map[string]any{
		"projectId": fmt.Sprint(p.ID), "transactionId": tx.ID, "amount": "0.5",
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	refund := decode[dto.RefundRequestResponse](t, rec)
	assert.False(t, refund.Approved)
	assert.Equal(t, "creator", refund.CreatorID)
	require.NotNil(t, refund.TransactionID)
	assert.Equal(t, tx.ID, *refund.TransactionID)

	t.Run("second claim on a fully claimed contribution", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/refund-requests", token: donor, body: map[string]any{
			"projectId": p.ID, "transactionId": tx.ID, "amount": "0.5",
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, errs.CodeRefundExceedsContribute, decode[dto.ErrorResponse](t, rec).Code)

		rec = s.do(t, request{method: http.MethodPost, path: "/api/refund-requests", token: donor, body: map[string]any{
			"projectId": p.ID, "transactionId": tx.ID, "amount": "0.00000001",
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("claim on another backer's contribution", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/refund-requests", token: s.token(t, "stranger"), body: map[string]any{
			"projectId": p.ID, "transactionId": tx.ID, "amount": "0.1",
		}})
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		assert.Equal(t, errs.CodeTransactionNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	assert.Equal(t, "0.50000000", s.getProject(t, donor, p.ID).CurrentAmount)

	rec = s.do(t, request{method: http.MethodGet, path: "/api/refund-requests", token: creator})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.RefundRequestResponse](t, rec), 1)

	rec = s.do(t, request{method: http.MethodGet, path: "/api/refund-requests", token: donor})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]dto.RefundRequestResponse](t, rec))

	processPath := fmt.Sprintf("/api/refund-requests/%d/process", refund.ID)

	rec = s.do(t, request{method: http.MethodPost, path: processPath, token: donor, body: map[string]any{"approved": true}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, request{method: http.MethodPost, path: processPath, token: creator, body: map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for range 2 {
		rec = s.do(t, request{method: http.MethodPost, path: processPath, token: creator, body: map[string]any{"approved": true}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "0.00000000", s.getProject(t, donor, p.ID).CurrentAmount)
	}

	rec = s.do(t, request{method: http.MethodPost, path: processPath, token: creator, body: map[string]any{"approved": false}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, errs.CodeRefundAlreadyApproved, decode[dto.ErrorResponse](t, rec).Code)

	rec = s.do(t, request{method: http.MethodPost, path: "/api/refund-requests/999/process", token: creator, body: map[string]any{"approved": true}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidInput(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	p := s.createProject(t, creator, "10", s.clock.Now().Add(time.Hour).Format(time.RFC3339))

	testCases := []struct {
		name     string
		body     any
		wantCode int
	}{
		{"negative amount", map[string]any{"amount": "-1", "transactionType": "demo"}, errs.CodeInvalidAmount},
		{"non numeric amount", map[string]any{"amount": "abc", "transactionType": "demo"}, errs.CodeInvalidAmount},
		{"zero amount", map[string]any{"amount": "0", "transactionType": "demo"}, errs.CodeInvalidAmount},
		{"too many decimals", map[string]any{"amount": "0.123456789", "transactionType": "demo"}, errs.CodeInvalidAmount},
		{"unknown type", map[string]any{"amount": "1", "transactionType": "crypto"}, errs.CodeInvalidTransactionType},
		{"real without hash", map[string]any{"amount": "1", "transactionType": "real"}, errs.CodeMissingTransactionHash},
		{"missing amount", map[string]any{"transactionType": "demo"}, errs.CodeInvalidRequest},
		{"malformed json", `{"amount":`, errs.CodeInvalidRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, request{method: http.MethodPost, path: fmt.Sprintf("/api/projects/%d/fund", p.ID), token: creator, body: tc.body})
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, tc.wantCode, decode[dto.ErrorResponse](t, rec).Code)
		})
	}

	assert.Equal(t, "0.00000000", s.getProject(t, creator, p.ID).CurrentAmount)

	t.Run("numeric json amount is accepted exactly", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: fmt.Sprintf("/api/projects/%d/fund", p.ID), token: creator,
			body: `{"amount": 0.1, "transactionType": "demo"}`})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "0.10000000", decode[dto.TransactionResponse](t, rec).Amount)
	})

	t.Run("bad and unknown ids", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/api/projects/abc", token: creator})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidID, decode[dto.ErrorResponse](t, rec).Code)

		rec = s.do(t, request{method: http.MethodGet, path: "/api/projects/424242", token: creator})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.fund(t, creator, 424242, "1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/projects", token: creator, body: map[string]any{
			"title": "x", "goalAmount": "1", "category": "crypto", "deadline": "2031-01-01",
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidCategory, decode[dto.ErrorResponse](t, rec).Code)
	})
}

func TestConcurrentContributions(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	p := s.createProject(t, creator, "1000", s.clock.Now().Add(time.Hour).Format(time.RFC3339))

	const n = 40
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = s.token(t, fmt.Sprintf("donor-%d", i))
	}

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = s.fund(t, tokens[i], p.ID, "0.03").Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "request %d", i)
	}

	got := s.getProject(t, creator, p.ID)
	assert.Equal(t, "1.20000000", got.CurrentAmount)

	rec := s.do(t, request{method: http.MethodGet, path: "/api/my-projects", token: creator})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, n, decode[[]dto.ProjectWithStatsResponse](t, rec)[0].BackerCount)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/api/projects"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeUnauthorized, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("forged tokens are rejected", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/api/projects", token: "eyJhbGciOiJIUzI1NiJ9.e30.forged"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token syncs the user", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/api/auth/user", token: s.token(t, "alice")})
		require.Equal(t, http.StatusOK, rec.Code)
		u := decode[dto.UserResponse](t, rec)
		assert.Equal(t, "alice", u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("session cookie lifecycle", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/auth/session", token: s.token(t, "bob")})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		cookie := findCookie(rec, cookieName)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		rec = s.do(t, request{method: http.MethodGet, path: "/api/auth/user", cookie: cookie})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob", decode[dto.UserResponse](t, rec).ID)

		rec = s.do(t, request{method: http.MethodDelete, path: "/api/auth/session", cookie: cookie})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(t, request{method: http.MethodGet, path: "/api/auth/user", cookie: cookie})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sessions expire with the clock", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodPost, path: "/api/auth/session", token: s.token(t, "carol")})
		require.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, cookieName)
		require.NotNil(t, cookie)

		s.clock.Advance(25 * time.Hour)
		rec = s.do(t, request{method: http.MethodGet, path: "/api/auth/user", cookie: cookie})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("local login", func(t *testing.T) {
		require.NoError(t, s.users.SeedDemoUsers(context.Background(), []portusecase.DemoUser{
			{ID: "demo", Email: "demo@example.com", FirstName: "Demo", Password: "demo-pass"},
		}))

		rec := s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: map[string]any{
			"email": "demo@example.com", "password": "wrong",
		}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: map[string]any{
			"email": "DEMO@example.com", "password": "demo-pass",
		}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		session := decode[dto.SessionResponse](t, rec)
		assert.Equal(t, "demo", session.User.ID)
		assert.NotContains(t, rec.Body.String(), "$2a$")
		assert.NotNil(t, findCookie(rec, cookieName))
	})
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{LoginLimit: 2, LoginPeriod: time.Minute})

	login := func() int {
		return s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: map[string]any{
			"email": "nobody@example.com", "password": "x",
		}}).Code
	}

	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusUnauthorized, login())

	rec := s.do(t, request{method: http.MethodPost, path: "/api/auth/login", body: map[string]any{
		"email": "nobody@example.com", "password": "x",
	}})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, errs.CodeRateLimited, decode[dto.ErrorResponse](t, rec).Code)
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t, routes.RateLimits{})
	creator := s.token(t, "creator")
	p := s.createProject(t, creator, "10", s.clock.Now().Add(time.Hour).Format(time.RFC3339))
	require.Equal(t, http.StatusCreated, s.fund(t, creator, p.ID, "1").Code)

	rec := s.do(t, request{method: http.MethodGet, path: "/healthz"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"up"`)

	rec = s.do(t, request{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crowdfund_contributions_total{type="demo"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/api/projects/:id/fund"`)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://ui.example.com")
	cors := httptest.NewRecorder()
	s.router.ServeHTTP(cors, req)
	assert.Equal(t, http.StatusNoContent, cors.Code)
	assert.Equal(t, "http://ui.example.com", cors.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, cors.Header().Get("X-Request-ID"))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
