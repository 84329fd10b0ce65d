package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance    = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeDuplicateTransaction   = 4004
	CodeConstraintViolation    = 4005
	CodeAmountOverflow         = 4006
	CodeValidation             = 4007
	CodeInvalidStateTransition = 4008
	CodeWithdrawalLimit        = 4009
	CodeInvalidCredentials     = 4010
	CodeUnauthorized           = 4011
	CodeForbidden              = 4030
	CodeUserNotFound           = 4040
	CodeWalletNotFound         = 4041
	CodeTransactionNotFound    = 4042
	CodeNotFound               = 4043
	CodeDuplicateUser          = 4090
	CodeRateLimited            = 4290
	CodeWalletBusy             = 4230

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeProviderUnavailable = 5020
	CodeBridgeUnavailable   = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a wallet has insufficient funds for an operation
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when an amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrZeroAmount is returned when an operation requires a strictly positive amount
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidTransactionType is returned when the transaction type is not one of the allowed values
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidStateTransition is returned when a transaction cannot move to the requested status
	ErrInvalidStateTransition = errors.New("invalid transaction state transition")

	// ErrDuplicateTransaction is returned when a transaction with the same reference already exists
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrWithdrawalLimit is returned when a withdrawal violates the configured limits
	ErrWithdrawalLimit = errors.New("withdrawal limit violated")

	// ErrWithdrawalsDisabled is returned when withdrawals are switched off
	ErrWithdrawalsDisabled = errors.New("withdrawals are currently disabled")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrWalletNotFound is returned when the user has no wallet
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPackageNotFound is returned when the requested service package doesn't exist
	ErrPackageNotFound = errors.New("service package not found")

	// ErrPackageInactive is returned when purchasing a package that is switched off
	ErrPackageInactive = errors.New("service package is not available")

	// ErrDeviceNotFound is returned when a device doesn't exist or belongs to another user
	ErrDeviceNotFound = errors.New("device not found")

	// ErrSessionNotFound is returned when a chat session doesn't exist or belongs to another user
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrWalletBusy is returned when a wallet row is locked by another operation
	ErrWalletBusy = errors.New("wallet is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to register an email that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserInactive is returned when a deactivated user tries to log in
	ErrUserInactive = errors.New("user account is disabled")

	// ErrUnauthorized is returned when a request carries no valid token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role or permission
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned when a caller exceeds the request rate
	ErrRateLimited = errors.New("too many requests")

	// ErrUnknownProvider is returned when the requested LLM provider is not configured
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrProviderUnavailable is returned when an LLM provider cannot be reached
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrBridgeUnavailable is returned when the agent bridge cannot be reached or fails
	ErrBridgeUnavailable = errors.New("agent bridge unavailable")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return CodeValidation
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrZeroAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidStateTransition):
		return CodeInvalidStateTransition
	case errors.Is(err, ErrWithdrawalLimit), errors.Is(err, ErrWithdrawalsDisabled):
		return CodeWithdrawalLimit
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserInactive):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrWalletBusy):
		return CodeWalletBusy
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrProviderUnavailable), errors.Is(err, ErrUnknownProvider):
		return CodeProviderUnavailable
	case errors.Is(err, ErrBridgeUnavailable):
		return CodeBridgeUnavailable
	default:
		return CodeInternalServer
	}
}

// BalanceError represents an error related to balance operations
type BalanceError struct {
	UserID         uint64
	Amount         string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for user %d (current balance: %s, amount: %s): %v",
		e.UserID, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// TransactionError represents an error related to transaction processing
type TransactionError struct {
	Reference string
	UserID    uint64
	Type      string
	Status    string
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error for reference %s (user: %d, type: %s, amount: %s): %s - %v",
		e.Reference, e.UserID, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transaction_error",
		"reference":  e.Reference,
		"user_id":    e.UserID,
		"type":       e.Type,
		"status":     e.Status,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(reference string, userID uint64, txType, status, amount, reason string, err error) error {
	return &TransactionError{
		Reference: reference,
		UserID:    userID,
		Type:      txType,
		Status:    status,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// ValidationError collects per-field validation messages
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message for the given field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error only when it carries messages
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes validation errors match ErrInvalidRequest
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ProviderError is returned when an LLM vendor answers with a non-2xx status
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Message)
}

// Is makes 5xx provider errors match ErrProviderUnavailable
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable && e.Status >= 500
}

// UserMessage converts the vendor status into a message safe to show end users
func (e *ProviderError) UserMessage() string {
	switch {
	case e.Status == 401 || e.Status == 403:
		return fmt.Sprintf("The %s API key is invalid or lacks permission.", e.Provider)
	case e.Status == 404:
		return fmt.Sprintf("The requested %s model was not found.", e.Provider)
	case e.Status == 429:
		return fmt.Sprintf("%s rate limit reached. Please wait a moment and try again.", e.Provider)
	case e.Status >= 500:
		return fmt.Sprintf("%s is temporarily unavailable. Please try again later.", e.Provider)
	default:
		return fmt.Sprintf("%s could not process the request.", e.Provider)
	}
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "provider_error",
		"provider":   e.Provider,
		"status":     e.Status,
		"message":    e.Message,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrDeviceNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsWalletBusyError checks if the error is related to a locked wallet
func IsWalletBusyError(err error) bool {
	return errors.Is(err, ErrWalletBusy)
}

// UserMessage returns a message suitable for API clients, hiding internal details
func UserMessage(err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.UserMessage()
	}
	if ErrorCode(err) == CodeInternalServer {
		return "Internal server error"
	}
	return err.Error()
}
