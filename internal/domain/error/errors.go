package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation              = 4000
	CodeInvalidAmount           = 4001
	CodeAmountOverflow          = 4002
	CodeInvalidTransactionType  = 4003
	CodeInvalidCategory         = 4004
	CodeInvalidDeadline         = 4005
	CodeDeadlineInPast          = 4006
	CodeInvalidID               = 4007
	CodeMissingTransactionHash  = 4008
	CodeInvalidRequest          = 4009
	CodeRefundExceedsContribute = 4010
	CodeUnauthorized            = 4011
	CodeForbidden               = 4030
	CodeNotProjectCreator       = 4031
	CodeNotRefundApprover       = 4032
	CodeNotFound                = 4040
	CodeUserNotFound            = 4041
	CodeProjectNotFound         = 4042
	CodeTransactionNotFound     = 4043
	CodeRefundNotFound          = 4044
	CodeSessionNotFound         = 4045
	CodeStateConflict           = 4090
	CodeDeadlinePassed          = 4091
	CodeProjectInactive         = 4092
	CodeGoalNotMet              = 4093
	CodeAlreadyWithdrawn        = 4094
	CodeGoalAlreadyMet          = 4095
	CodeDuplicateTransaction    = 4096
	CodeRefundAlreadyApproved   = 4097
	CodeRateLimited             = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeConcurrentUpdate   = 5001
	CodeDatabaseConnection = 5002
	CodeUnavailable        = 5030
)

// Error kinds. Every specific error below belongs to exactly one kind and
// errors.Is reports true for both the specific error and its kind.
var (
	// ErrValidation is returned for malformed, missing or out-of-range input
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller is not the authorized party
	ErrForbidden = errors.New("forbidden")

	// ErrStateConflict is returned when an operation precondition is violated
	ErrStateConflict = errors.New("state conflict")

	// ErrUnauthorized is returned when the caller identity is missing or invalid
	ErrUnauthorized = errors.New("authentication required")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Validation errors
var (
	ErrInvalidAmount             = newKindError(ErrValidation, "invalid amount")
	ErrAmountOverflow            = newKindError(ErrValidation, "amount exceeds supported precision")
	ErrInvalidTransactionType    = newKindError(ErrValidation, "invalid transaction type")
	ErrInvalidCategory           = newKindError(ErrValidation, "invalid category")
	ErrInvalidDeadline           = newKindError(ErrValidation, "invalid deadline")
	ErrDeadlineInPast            = newKindError(ErrValidation, "deadline must be in the future")
	ErrInvalidID                 = newKindError(ErrValidation, "invalid id")
	ErrMissingTransactionHash    = newKindError(ErrValidation, "transaction hash is required for real transactions")
	ErrInvalidRequest            = newKindError(ErrValidation, "invalid request")
	ErrRefundExceedsContribution = newKindError(ErrValidation, "refund amount exceeds the contributed amount")
)

// Not found errors
var (
	ErrUserNotFound        = newKindError(ErrNotFound, "user not found")
	ErrProjectNotFound     = newKindError(ErrNotFound, "project not found")
	ErrTransactionNotFound = newKindError(ErrNotFound, "transaction not found")
	ErrRefundNotFound      = newKindError(ErrNotFound, "refund request not found")
	ErrSessionNotFound     = newKindError(ErrNotFound, "session not found")
)

// Forbidden errors
var (
	ErrNotProjectCreator = newKindError(ErrForbidden, "only the project creator can perform this action")
	ErrNotRefundApprover = newKindError(ErrForbidden, "only the project creator can process this refund request")
)

// State conflict errors
var (
	ErrDeadlinePassed        = newKindError(ErrStateConflict, "project deadline has passed")
	ErrProjectInactive       = newKindError(ErrStateConflict, "project is not active")
	ErrGoalNotMet            = newKindError(ErrStateConflict, "funding goal has not been met")
	ErrAlreadyWithdrawn      = newKindError(ErrStateConflict, "funds have already been withdrawn")
	ErrGoalAlreadyMet        = newKindError(ErrStateConflict, "funding goal has already been met")
	ErrDuplicateTransaction  = newKindError(ErrStateConflict, "transaction with this hash already exists")
	ErrRefundAlreadyApproved = newKindError(ErrStateConflict, "refund request has already been approved")
)

// Internal errors
var (
	// ErrConcurrentUpdate is returned when the store aborted a transaction because of a
	// serialization failure or deadlock. The operation left no partial writes.
	ErrConcurrentUpdate = newKindError(ErrInternalServer, "project is being updated concurrently, retry the operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = newKindError(ErrInternalServer, "database connection error")

	// ErrUnavailable is returned when the service is shutting down
	ErrUnavailable = newKindError(ErrInternalServer, "service is shutting down")
)

// kindError is a sentinel that also matches its kind under errors.Is
type kindError struct {
	kind    error
	message string
}

func newKindError(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// Error implements the error interface
func (e *kindError) Error() string {
	return e.message
}

// Is reports whether target is the kind of this error
func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// Message returns the client-facing message of err: the most specific known error it wraps,
// otherwise its kind. Unknown errors yield the generic internal message.
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.message
	}
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrStateConflict, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrInternalServer.Error()
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidDeadline):
		return CodeInvalidDeadline
	case errors.Is(err, ErrDeadlineInPast):
		return CodeDeadlineInPast
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrMissingTransactionHash):
		return CodeMissingTransactionHash
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrRefundExceedsContribution):
		return CodeRefundExceedsContribute
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProjectNotFound):
		return CodeProjectNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrRefundNotFound):
		return CodeRefundNotFound
	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, ErrNotProjectCreator):
		return CodeNotProjectCreator
	case errors.Is(err, ErrNotRefundApprover):
		return CodeNotRefundApprover
	case errors.Is(err, ErrDeadlinePassed):
		return CodeDeadlinePassed
	case errors.Is(err, ErrProjectInactive):
		return CodeProjectInactive
	case errors.Is(err, ErrGoalNotMet):
		return CodeGoalNotMet
	case errors.Is(err, ErrAlreadyWithdrawn):
		return CodeAlreadyWithdrawn
	case errors.Is(err, ErrGoalAlreadyMet):
		return CodeGoalAlreadyMet
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrRefundAlreadyApproved):
		return CodeRefundAlreadyApproved
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrUnavailable):
		return CodeUnavailable
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrStateConflict):
		return CodeStateConflict
	default:
		return CodeInternalServer
	}
}

// ProjectStateError describes a funding operation rejected by the project's current state
type ProjectStateError struct {
	ProjectID     uint64
	Operation     string
	CurrentAmount string
	GoalAmount    string
	Deadline      string
	Err           error
}

// Error implements the error interface for ProjectStateError
func (e *ProjectStateError) Error() string {
	return fmt.Sprintf("%s rejected for project %d (raised: %s, goal: %s, deadline: %s): %v",
		e.Operation, e.ProjectID, e.CurrentAmount, e.GoalAmount, e.Deadline, e.Err)
}

// Unwrap returns the underlying error
func (e *ProjectStateError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProjectStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "project_state_error",
		"project_id":     e.ProjectID,
		"operation":      e.Operation,
		"current_amount": e.CurrentAmount,
		"goal_amount":    e.GoalAmount,
		"deadline":       e.Deadline,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewProjectStateError creates a detailed project state error
func NewProjectStateError(projectID uint64, operation, currentAmount, goalAmount, deadline string, err error) error {
	return &ProjectStateError{
		ProjectID:     projectID,
		Operation:     operation,
		CurrentAmount: currentAmount,
		GoalAmount:    goalAmount,
		Deadline:      deadline,
		Err:           err,
	}
}

// FundingError represents a failed funding engine operation
type FundingError struct {
	Operation string
	ProjectID uint64
	CallerID  string
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for FundingError
func (e *FundingError) Error() string {
	return fmt.Sprintf("%s failed for project %d (caller: %s, amount: %s): %s - %v",
		e.Operation, e.ProjectID, e.CallerID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *FundingError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *FundingError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "funding_error",
		"operation":  e.Operation,
		"project_id": e.ProjectID,
		"caller_id":  e.CallerID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewFundingError creates a detailed funding error
func NewFundingError(operation string, projectID uint64, callerID, amount, reason string, err error) error {
	return &FundingError{
		Operation: operation,
		ProjectID: projectID,
		CallerID:  callerID,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// LogFielder is implemented by errors that carry structured logging fields
type LogFielder interface {
	LogFields() map[string]any
}

// LogFieldsOf returns the structured fields of err if it, or any error it wraps, provides them
func LogFieldsOf(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	if err == nil {
		return map[string]any{}
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbiddenError checks if the error is an authorization failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsStateConflictError checks if the error is a violated operation precondition
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrStateConflict)
}

// IsUnauthorizedError checks if the error is a missing or invalid identity
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConcurrentUpdateError checks if the error is a retryable store conflict
func IsConcurrentUpdateError(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}
