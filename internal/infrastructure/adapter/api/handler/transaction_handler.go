package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles wallet and transaction requests
type TransactionHandler struct {
	wallet   usecase.WalletUseCase
	settings usecase.SettingsUseCase
	logger   coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(wallet usecase.WalletUseCase, settings usecase.SettingsUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		wallet:   wallet,
		settings: settings,
		logger:   logger,
	}
}

// GetWallet handles GET /api/wallet
func (h *TransactionHandler) GetWallet(c *gin.Context) {
	wallet, err := h.wallet.GetWallet(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "get wallet", err)
		return
	}
	respond(c, http.StatusOK, dto.NewWalletResponse(wallet))
}

// Deposit handles POST /api/wallet/deposits
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}

	tx, err := h.wallet.RequestDeposit(c.Request.Context(), middleware.CurrentUserID(c), usecase.DepositRequest{
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}

	respondMessage(c, http.StatusCreated, submittedMessage(tx), dto.NewTransactionResponse(tx))
}

// Withdraw handles POST /api/wallet/withdrawals
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "withdraw", err)
		return
	}

	tx, err := h.wallet.RequestWithdrawal(c.Request.Context(), middleware.CurrentUserID(c), usecase.WithdrawalRequest{
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(c, h.logger, "withdraw", err)
		return
	}

	respondMessage(c, http.StatusCreated, submittedMessage(tx), dto.NewTransactionResponse(tx))
}

// MyTransactions handles GET /api/wallet/transactions
func (h *TransactionHandler) MyTransactions(c *gin.Context) {
	filter, err := transactionFilter(c)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}
	filter.UserID = middleware.CurrentUserID(c)

	page, err := h.wallet.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}
	respond(c, http.StatusOK, transactionPage(page))
}

// AllTransactions handles GET /api/admin/transactions
func (h *TransactionHandler) AllTransactions(c *gin.Context) {
	filter, err := transactionFilter(c)
	if err != nil {
		respondError(c, h.logger, "list all transactions", err)
		return
	}

	page, err := h.wallet.ListAllTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "list all transactions", err)
		return
	}
	respond(c, http.StatusOK, transactionPage(page))
}

// Approve handles POST /api/admin/transactions/:id/approve
func (h *TransactionHandler) Approve(c *gin.Context) {
	h.review(c, "approve", h.wallet.Approve)
}

// Reject handles POST /api/admin/transactions/:id/reject
func (h *TransactionHandler) Reject(c *gin.Context) {
	h.review(c, "reject", h.wallet.Reject)
}

type reviewFunc func(ctx context.Context, txID, adminID uint64, note string) (*entity.Transaction, error)

func (h *TransactionHandler) review(c *gin.Context, operation string, fn reviewFunc) {
	txID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	var req dto.ReviewRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			respondError(c, h.logger, operation, err)
			return
		}
	}

	tx, err := fn(c.Request.Context(), txID, middleware.CurrentUserID(c), req.Note)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	h.logger.Info("Transaction reviewed", map[string]any{
		"transaction_id": tx.ID,
		"status":         string(tx.Status),
		"admin_id":       middleware.CurrentUserID(c),
	})
	respondMessage(c, http.StatusOK, "Transaction "+string(tx.Status), dto.NewTransactionResponse(tx))
}

// Adjust handles POST /api/admin/wallets/:userId/adjust
func (h *TransactionHandler) Adjust(c *gin.Context) {
	userID, err := idParam(c, "userId")
	if err != nil {
		respondError(c, h.logger, "adjust", err)
		return
	}

	var req dto.AdjustRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "adjust", err)
		return
	}

	tx, err := h.wallet.Adjust(c.Request.Context(), userID, middleware.CurrentUserID(c), usecase.AdjustRequest{
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		respondError(c, h.logger, "adjust", err)
		return
	}
	respondMessage(c, http.StatusOK, "Balance adjusted", dto.NewTransactionResponse(tx))
}

// GetSettings handles GET /api/admin/withdrawal-settings
func (h *TransactionHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get withdrawal settings", err)
		return
	}
	respond(c, http.StatusOK, dto.NewWithdrawalSettingsResponse(s))
}

// UpdateSettings handles PUT /api/admin/withdrawal-settings
func (h *TransactionHandler) UpdateSettings(c *gin.Context) {
	var req dto.WithdrawalSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "update withdrawal settings", err)
		return
	}

	s, err := h.settings.UpdateSettings(c.Request.Context(), middleware.CurrentUserID(c), usecase.SettingsInput{
		MinAmount:             req.MinAmount,
		MaxAmount:             req.MaxAmount,
		FeeBasisPoints:        req.FeeBasisPoints,
		DailyLimit:            req.DailyLimit,
		DepositAutoApprove:    req.DepositAutoApprove,
		WithdrawalAutoApprove: req.WithdrawalAutoApprove,
		Enabled:               req.Enabled,
	})
	if err != nil {
		respondError(c, h.logger, "update withdrawal settings", err)
		return
	}
	respondMessage(c, http.StatusOK, "Withdrawal settings updated", dto.NewWithdrawalSettingsResponse(s))
}

func submittedMessage(tx *entity.Transaction) string {
	if tx.IsPending() {
		return "Request submitted for review"
	}
	return "Request " + string(tx.Status)
}

func transactionFilter(c *gin.Context) (persistence.TransactionFilter, error) {
	var q dto.TransactionQuery
	if err := bindQuery(c, &q); err != nil {
		return persistence.TransactionFilter{}, err
	}

	v := domainerr.NewValidationError()
	if q.Type != "" && !entity.IsValidTransactionType(q.Type) {
		v.Add("type", "is not a known transaction type")
	}
	if q.Status != "" && !entity.IsValidTransactionStatus(q.Status) {
		v.Add("status", "is not a known transaction status")
	}
	if err := v.OrNil(); err != nil {
		return persistence.TransactionFilter{}, err
	}

	return persistence.TransactionFilter{
		UserID:   q.UserID,
		Type:     entity.TransactionType(q.Type),
		Status:   entity.TransactionStatus(q.Status),
		From:     q.From,
		To:       q.To,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func transactionPage(page *usecase.TransactionPage) dto.PageResponse[dto.TransactionResponse] {
	return dto.PageResponse[dto.TransactionResponse]{
		Items:    dto.NewTransactionResponses(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}
