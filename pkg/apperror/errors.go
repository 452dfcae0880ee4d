package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Funds & Ledger (FUND) ----

func ErrInsufficientFunds() *AppError {
	return New("FUND_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("FUND_002", "Invalid amount", http.StatusBadRequest)
}

func ErrBalanceNotFound() *AppError {
	return New("FUND_003", "Balance not found for session", http.StatusNotFound)
}

func ErrLossLimitReached() *AppError {
	return New("FUND_004", "Session loss limit reached", http.StatusUnprocessableEntity)
}

func ErrSessionDurationExceeded() *AppError {
	return New("FUND_005", "Session duration cap exceeded", http.StatusUnprocessableEntity)
}

func ErrInvalidCounterField() *AppError {
	return New("FUND_006", "Invalid lifetime counter field", http.StatusBadRequest)
}

// ---- Fairness (FAIR) ----

// ErrFairnessUnavailable signals that no pre-committed randomness is
// available. Callers must refuse the wager; falling back to weaker
// randomness is never an option.
func ErrFairnessUnavailable() *AppError {
	return New("FAIR_001", "No committed randomness available, try again shortly", http.StatusServiceUnavailable)
}

func ErrClientSeedLocked() *AppError {
	return New("FAIR_002", "Client seed is locked until the seed is rotated", http.StatusConflict)
}

func ErrNoActiveStream() *AppError {
	return New("FAIR_003", "No active seed stream for session", http.StatusNotFound)
}

func ErrStreamConflict() *AppError {
	return New("FAIR_004", "Seed stream changed while the hand was in flight", http.StatusConflict)
}

// ---- Withdrawals (WDR) ----

func ErrWithdrawalNotFound() *AppError {
	return New("WDR_001", "Withdrawal not found", http.StatusNotFound)
}

func ErrWithdrawalNotApprovable() *AppError {
	return New("WDR_002", "Withdrawal is not awaiting approval", http.StatusConflict)
}

func ErrWithdrawalNotRequeueable() *AppError {
	return New("WDR_003", "Only failed withdrawals can be requeued", http.StatusConflict)
}

func ErrSettlementFailed(reason string) *AppError {
	return New("WDR_004", fmt.Sprintf("Settlement failed: %s", reason), http.StatusBadGateway)
}

func ErrInvalidAddress() *AppError {
	return New("WDR_005", "Invalid destination address", http.StatusBadRequest)
}

// ---- Admin & incident control (ADMIN) ----

func ErrKillSwitchActive() *AppError {
	return New("ADMIN_001", "New financial commitments are temporarily halted", http.StatusServiceUnavailable)
}

func ErrUnknownSetting(key string) *AppError {
	return New("ADMIN_002", fmt.Sprintf("Unknown setting %q", key), http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrOperatorRequired() *AppError {
	return New("AUTH_003", "Operator privileges required", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrNodeUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Blockchain node unavailable", http.StatusBadGateway, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a FUND_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("FUND_002", message, http.StatusBadRequest)
}
