package handler

import (
	"time"

	"crypto-casino-core/internal/adapter/http/dto"
	"crypto-casino-core/internal/adapter/http/middleware"
	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultTransactionLimit = 50

// WalletHandler handles balance reads and the withdrawal lifecycle for the
// authenticated session.
type WalletHandler struct {
	ledgerSvc     ports.LedgerService
	settlementSvc ports.SettlementService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, settlementSvc ports.SettlementService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc, settlementSvc: settlementSvc}
}

// sessionID extracts the authenticated session id set by SessionAuth.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxSessionID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		SessionID:      balance.SessionID.String(),
		Balance:        balance.Balance,
		TotalDeposited: balance.TotalDeposited,
		TotalWithdrawn: balance.TotalWithdrawn,
		TotalWagered:   balance.TotalWagered,
		TotalWon:       balance.TotalWon,
	})
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	txs, err := h.ledgerSvc.ListTransactions(c.Request.Context(), sid, defaultTransactionLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		tx := &txs[i]
		items = append(items, dto.TransactionResponse{
			ID:            tx.ID.String(),
			Kind:          string(tx.Kind),
			Amount:        tx.Amount,
			CounterField:  string(tx.CounterField),
			CounterAmount: tx.CounterAmount,
			Reference:     tx.Reference,
			CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		})
	}
	response.OK(c, dto.TransactionListResponse{Items: items})
}

// RequestWithdrawal handles POST /api/v1/withdrawals.
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	w, err := h.settlementSvc.Request(c.Request.Context(), ports.WithdrawalRequestInput{
		SessionID:      sid,
		Amount:         req.Amount,
		Address:        req.Address,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWithdrawalResponse(w))
}

// GetWithdrawal handles GET /api/v1/withdrawals/:id.
func (h *WalletHandler) GetWithdrawal(c *gin.Context) {
	w, ok := h.ownWithdrawal(c)
	if !ok {
		return
	}
	response.OK(c, toWithdrawalResponse(w))
}

// PollWithdrawal handles POST /api/v1/withdrawals/:id/poll: refresh one
// pending record from the node on demand.
func (h *WalletHandler) PollWithdrawal(c *gin.Context) {
	w, ok := h.ownWithdrawal(c)
	if !ok {
		return
	}

	polled, err := h.settlementSvc.Poll(c.Request.Context(), w.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWithdrawalResponse(polled))
}

// RequeueWithdrawal handles POST /api/v1/withdrawals/:id/requeue.
func (h *WalletHandler) RequeueWithdrawal(c *gin.Context) {
	w, ok := h.ownWithdrawal(c)
	if !ok {
		return
	}

	var req dto.RequeueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	requeued, err := h.settlementSvc.Requeue(c.Request.Context(), w.ID, req.IdempotencyKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toWithdrawalResponse(requeued))
}

// ownWithdrawal loads the :id withdrawal and verifies it belongs to the
// authenticated session. Foreign records read as not-found.
func (h *WalletHandler) ownWithdrawal(c *gin.Context) (*domain.Withdrawal, bool) {
	sid, ok := sessionID(c)
	if !ok {
		return nil, false
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return nil, false
	}

	w, err := h.settlementSvc.Get(c.Request.Context(), withdrawalID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if w.SessionID != sid {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return nil, false
	}
	return w, true
}

// toWithdrawalResponse converts domain.Withdrawal to DTO.
func toWithdrawalResponse(w *domain.Withdrawal) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:            w.ID.String(),
		Amount:        w.Amount,
		Fee:           w.Fee,
		Address:       w.Address,
		Status:        string(w.Status),
		OperationID:   w.OperationID,
		TxHash:        w.TxHash,
		FailureReason: w.FailureReason,
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
	}
	if w.RequeuedFrom != nil {
		resp.RequeuedFrom = w.RequeuedFrom.String()
	}
	return resp
}
