package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("FUND_001", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[FUND_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("FUND_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestFundErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "FUND_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "FUND_002", 400},
		{"BalanceNotFound", ErrBalanceNotFound(), "FUND_003", 404},
		{"LossLimitReached", ErrLossLimitReached(), "FUND_004", 422},
		{"SessionDurationExceeded", ErrSessionDurationExceeded(), "FUND_005", 422},
		{"InvalidCounterField", ErrInvalidCounterField(), "FUND_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestFairnessErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"FairnessUnavailable", ErrFairnessUnavailable(), "FAIR_001", 503},
		{"ClientSeedLocked", ErrClientSeedLocked(), "FAIR_002", 409},
		{"NoActiveStream", ErrNoActiveStream(), "FAIR_003", 404},
		{"StreamConflict", ErrStreamConflict(), "FAIR_004", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWithdrawalErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"WithdrawalNotFound", ErrWithdrawalNotFound(), "WDR_001", 404},
		{"NotApprovable", ErrWithdrawalNotApprovable(), "WDR_002", 409},
		{"NotRequeueable", ErrWithdrawalNotRequeueable(), "WDR_003", 409},
		{"SettlementFailed", ErrSettlementFailed("node rejected"), "WDR_004", 502},
		{"InvalidAddress", ErrInvalidAddress(), "WDR_005", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSettlementFailedMessage(t *testing.T) {
	err := ErrSettlementFailed("insufficient node funds")
	assert.Contains(t, err.Message, "insufficient node funds")
}

func TestAdminErrors(t *testing.T) {
	ks := ErrKillSwitchActive()
	assert.Equal(t, "ADMIN_001", ks.Code)
	assert.Equal(t, 503, ks.HTTPStatus)

	st := ErrUnknownSetting("pool_floor")
	assert.Equal(t, "ADMIN_002", st.Code)
	assert.Contains(t, st.Message, "pool_floor")
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
		{"OperatorRequired", ErrOperatorRequired(), "AUTH_003", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	nodeErr := ErrNodeUnavailable(inner)
	assert.Equal(t, "SYS_002", nodeErr.Code)
	assert.Equal(t, 502, nodeErr.HTTPStatus)

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
