package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	m := NewPrometheusMetrics()

	m.ContributionRecorded("demo", 0.5)
	m.ContributionRecorded("demo", 1.5)
	m.ContributionRecorded("real", 2)
	m.WithdrawalCompleted()
	m.RefundProcessed("approved")
	m.RefundProcessed("already_approved")
	m.OperationFailed("withdraw", "state_conflict")
	m.ConflictRetried("contribute")
	m.HTTPRequest(http.MethodPost, "/api/projects/:id/fund", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.contributions.WithLabelValues("demo")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.contributionAmounts.WithLabelValues("demo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contributions.WithLabelValues("real")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.withdrawals))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refunds.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("withdraw", "state_conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictRetries.WithLabelValues("contribute")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/projects/:id/fund", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpLatency))
}

func TestPrometheusMetrics_Handler(t *testing.T) {
	m := NewPrometheusMetrics()
	m.WithdrawalCompleted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "crowdfund_withdrawals_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
