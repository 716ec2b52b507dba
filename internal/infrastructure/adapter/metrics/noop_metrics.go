package metrics

import (
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// NoopMetrics discards every observation
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics sink that records nothing
func NewNoopMetrics() core.Metrics {
	return NoopMetrics{}
}

func (NoopMetrics) ContributionRecorded(string, float64)                {}
func (NoopMetrics) WithdrawalCompleted()                                {}
func (NoopMetrics) RefundProcessed(string)                              {}
func (NoopMetrics) OperationFailed(string, string)                      {}
func (NoopMetrics) ConflictRetried(string)                              {}
func (NoopMetrics) HTTPRequest(string, string, int, time.Duration)      {}
