package wallet

import (
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// Field limits
const (
	maxMethodLength    = 50
	maxNoteLength      = 500
	maxReferenceLength = 100
)

// RequestValidator provides validation for wallet requests
type RequestValidator struct{}

// NewRequestValidator creates a new RequestValidator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateDeposit checks a deposit request and returns the amount in cents
func (v *RequestValidator) ValidateDeposit(userID uint64, req usecase.DepositRequest) (int64, error) {
	return v.validateMovement(userID, req.Amount, req.Method, req.Note, req.Reference)
}

// ValidateWithdrawal checks a withdrawal request and returns the amount in cents
func (v *RequestValidator) ValidateWithdrawal(userID uint64, req usecase.WithdrawalRequest) (int64, error) {
	return v.validateMovement(userID, req.Amount, req.Method, req.Note, req.Reference)
}

// ValidateAdjustment checks an admin adjustment and returns the signed amount in cents
func (v *RequestValidator) ValidateAdjustment(userID, adminID uint64, req usecase.AdjustRequest) (int64, error) {
	if userID == 0 || adminID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	ve := errs.NewValidationError()
	cents, err := entity.ParseSignedAmount(strings.TrimSpace(req.Amount))
	if err != nil {
		ve.Add("amount", err.Error())
	}
	if utf8.RuneCountInString(req.Note) > maxNoteLength {
		ve.Add("note", "is too long")
	}
	if err := ve.OrNil(); err != nil {
		return 0, err
	}
	return cents, nil
}

// ValidateReason checks the reason given when rejecting a transaction
func (v *RequestValidator) ValidateReason(reason string) error {
	ve := errs.NewValidationError()
	reason = strings.TrimSpace(reason)
	if reason == "" {
		ve.Add("reason", "is required")
	} else if utf8.RuneCountInString(reason) > maxNoteLength {
		ve.Add("reason", "is too long")
	}
	return ve.OrNil()
}

func (v *RequestValidator) validateMovement(userID uint64, amount, method, note, reference string) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}

	ve := errs.NewValidationError()
	cents, err := entity.ValidatePositiveAmount(strings.TrimSpace(amount))
	if err != nil {
		ve.Add("amount", err.Error())
	}
	if strings.TrimSpace(method) == "" {
		ve.Add("method", "is required")
	} else if utf8.RuneCountInString(method) > maxMethodLength {
		ve.Add("method", "is too long")
	}
	if utf8.RuneCountInString(note) > maxNoteLength {
		ve.Add("note", "is too long")
	}
	if len(reference) > maxReferenceLength {
		ve.Add("reference", "is too long")
	}
	if err := ve.OrNil(); err != nil {
		return 0, err
	}
	return cents, nil
}
