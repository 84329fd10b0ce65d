package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PostgreSQL error codes the classifier understands
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgLockNotAvailable    = "55P03"
	pgDeadlockDetected    = "40P01"
	pgSerializationFail   = "40001"
	pgQueryCanceled       = "57014"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
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

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "too many connections") ||
		strings.Contains(msg, "eof") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe")
}

// IsLockError checks if the error is due to row locking or lock_timeout
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgLockNotAvailable, pgDeadlockDetected, pgSerializationFail:
		return true
	case pgQueryCanceled:
		return strings.Contains(err.Error(), "lock timeout")
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not obtain lock") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "dial") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key") ||
		c.IsDuplicateKeyError(err)
}

// dbErrorHandler converts driver errors into domain errors for one repository
type dbErrorHandler struct {
	logger     coreport.Logger
	classifier *ErrorClassifier
	notFound   error
	duplicate  error
}

func newDBErrorHandler(logger coreport.Logger, notFound, duplicate error) dbErrorHandler {
	return dbErrorHandler{
		logger:     logger,
		classifier: NewErrorClassifier(),
		notFound:   notFound,
		duplicate:  duplicate,
	}
}

// handle standardizes database error handling
func (h dbErrorHandler) handle(operation string, err error, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation

	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Debug("Record not found", fields)
		return h.notFound
	}

	fields["error"] = err.Error()

	switch h.classifier.Classify(err) {
	case DuplicateKeyError:
		h.logger.Warn("Duplicate record", fields)
		return h.duplicate
	case LockError:
		h.logger.Warn("Row is locked by another transaction", fields)
		return errs.ErrWalletBusy
	case ConstraintError:
		h.logger.Warn("Constraint violation", fields)
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	h.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// pageBounds converts a 1-based page into offset and limit
func pageBounds(page, size int) (int, int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * size, size
}
