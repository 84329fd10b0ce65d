package dto

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// DepositRequest represents the API request for a deposit
type DepositRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Method    string `json:"method" binding:"max=64"`
	Note      string `json:"note" binding:"max=500"`
	Reference string `json:"reference" binding:"max=64"`
}

// WithdrawalRequest represents the API request for a withdrawal
type WithdrawalRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Method    string `json:"method" binding:"required,max=64"`
	Note      string `json:"note" binding:"max=500"`
	Reference string `json:"reference" binding:"max=64"`
}

// AdjustRequest represents an admin balance adjustment. Negative amounts debit.
type AdjustRequest struct {
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note" binding:"required,max=500"`
}

// ReviewRequest carries the admin note for approve and reject
type ReviewRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// TransactionQuery binds transaction listing filters
type TransactionQuery struct {
	PageQuery
	UserID uint64     `form:"userId"`
	Type   string     `form:"type"`
	Status string     `form:"status"`
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// TransactionResponse represents a wallet transaction
type TransactionResponse struct {
	ID           uint64         `json:"id"`
	Reference    string         `json:"reference"`
	UserID       uint64         `json:"userId"`
	Type         string         `json:"type"`
	Amount       string         `json:"amount"`
	Fee          string         `json:"fee"`
	Status       string         `json:"status"`
	Method       string         `json:"method,omitempty"`
	Note         string         `json:"note,omitempty"`
	BalanceAfter string         `json:"balanceAfter"`
	ProcessedBy  *uint64        `json:"processedBy,omitempty"`
	ProcessedAt  *time.Time     `json:"processedAt,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Reference:    t.Reference,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount(),
		Fee:          t.Fee(),
		Status:       string(t.Status),
		Method:       t.Method,
		Note:         t.Note,
		BalanceAfter: entity.AmountInCentsToString(t.BalanceAfter),
		ProcessedBy:  t.ProcessedBy,
		ProcessedAt:  t.ProcessedAt,
		Metadata:     t.Metadata,
		CreatedAt:    t.CreatedAt,
	}
}

// NewTransactionResponses maps a slice of transactions
func NewTransactionResponses(items []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(items))
	for _, t := range items {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
