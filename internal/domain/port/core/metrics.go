package core

import "time"

// Metrics records funding engine and HTTP activity
type Metrics interface {
	// ContributionRecorded counts an accepted contribution and adds its amount to the running sum
	ContributionRecorded(transactionType string, amount float64)
	// WithdrawalCompleted counts a successful withdrawal
	WithdrawalCompleted()
	// RefundProcessed counts a processed refund by outcome (approved, rejected, already_approved)
	RefundProcessed(outcome string)
	// OperationFailed counts a rejected engine operation by error kind
	OperationFailed(operation, kind string)
	// ConflictRetried counts a store conflict that caused an operation to be re-run
	ConflictRetried(operation string)
	// HTTPRequest observes one served request
	HTTPRequest(method, route string, status int, latency time.Duration)
}
