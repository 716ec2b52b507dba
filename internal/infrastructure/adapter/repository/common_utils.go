package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	ContextError      ErrorType = "context"
)

// Postgres SQLSTATE codes the classifier recognizes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// ErrorClassifier provides methods to classify database errors.
// Postgres errors are classified by SQLSTATE, other drivers by message.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return ContextError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsLockError checks if the error is due to locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
		return true
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint") ||
		strings.Contains(err.Error(), "NOT NULL constraint")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "EOF")
}

// dbErrorMapper turns driver errors into domain errors and logs them once
type dbErrorMapper struct {
	logger     coreport.Logger
	classifier *ErrorClassifier
}

func newDBErrorMapper(logger coreport.Logger) dbErrorMapper {
	return dbErrorMapper{logger: logger, classifier: NewErrorClassifier()}
}

// mapError maps err for operation. notFound is returned for a missing row,
// duplicate for a unique violation.
func (m dbErrorMapper) mapError(operation string, err error, notFound, duplicate error, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()

	switch m.classifier.Classify(err) {
	case NotFoundError:
		m.logger.Debug("Record not found", fields)
		if notFound != nil {
			return notFound
		}
		return errs.ErrNotFound
	case DuplicateKeyError:
		m.logger.Warn("Duplicate key", fields)
		if duplicate != nil {
			return duplicate
		}
		return fmt.Errorf("%w: duplicate key", errs.ErrDatabaseConnection)
	case LockError:
		m.logger.Warn("Concurrent update detected", fields)
		return errs.ErrConcurrentUpdate
	case ConstraintError:
		m.logger.Warn("Constraint violation", fields)
		if notFound != nil {
			return notFound
		}
		return errs.ErrInvalidRequest
	case ContextError:
		m.logger.Warn("Database operation cancelled", fields)
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		m.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
