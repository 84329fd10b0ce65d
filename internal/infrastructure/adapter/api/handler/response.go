package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// loggable is implemented by rich domain errors
type loggable interface {
	LogFields() map[string]any
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{Success: true, Message: message, Data: data})
}

// statusFor maps a domain error to an HTTP status and a message safe to return
func statusFor(err error) (int, string) {
	var providerErr *domainerr.ProviderError
	var validationErr *domainerr.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Validation failed"
	case errors.As(err, &providerErr):
		return http.StatusBadGateway, providerErr.UserMessage()
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrZeroAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidTransactionType),
		errors.Is(err, domainerr.ErrUnknownProvider):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainerr.ErrInvalidCredentials), errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domainerr.ErrUserInactive), errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domainerr.ErrDuplicateTransaction),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrInvalidStateTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domainerr.ErrInsufficientBalance),
		errors.Is(err, domainerr.ErrWithdrawalLimit),
		errors.Is(err, domainerr.ErrWithdrawalsDisabled),
		errors.Is(err, domainerr.ErrPackageInactive):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domainerr.ErrWalletBusy):
		return http.StatusLocked, "Wallet is busy, retry shortly"
	case errors.Is(err, domainerr.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, domainerr.ErrProviderUnavailable):
		return http.StatusBadGateway, "The language model provider is unavailable"
	case errors.Is(err, domainerr.ErrBridgeUnavailable):
		return http.StatusServiceUnavailable, "The device bridge is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the error envelope and logs server-side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status, message := statusFor(err)

	fields := map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	}
	var rich loggable
	if errors.As(err, &rich) {
		for k, v := range rich.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}
	_ = c.Error(err)

	resp := dto.Response{Success: false, Message: message, Code: domainerr.ErrorCode(err)}
	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		resp.Errors = validationErr.Fields
	}
	c.JSON(status, resp)
}

// bindJSON binds the body and converts binding failures into a ValidationError
func bindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindQuery binds query parameters the same way bindJSON binds bodies
func bindQuery(c *gin.Context, target any) error {
	if err := c.ShouldBindQuery(target); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	v := domainerr.NewValidationError()
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			v.Add(lowerFirst(fe.Field()), validationMessage(fe))
		}
		return v
	}
	v.Add("body", "is malformed")
	return v
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// idParam parses a positive numeric path parameter
func idParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		v := domainerr.NewValidationError()
		v.Add(name, "must be a positive integer")
		return 0, v
	}
	return id, nil
}
