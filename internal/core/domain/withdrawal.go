package domain

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus is the settlement state of a withdrawal.
// CONFIRMED and FAILED are terminal; a failed withdrawal is requeued by
// creating a brand-new record, never by mutating the failed one.
type WithdrawalStatus string

const (
	WithdrawalPendingApproval WithdrawalStatus = "PENDING_APPROVAL"
	WithdrawalPending         WithdrawalStatus = "PENDING"
	WithdrawalConfirmed       WithdrawalStatus = "CONFIRMED"
	WithdrawalFailed          WithdrawalStatus = "FAILED"
)

// Withdrawal is one settlement attempt. The idempotency key is unique
// across all records; the reservation it represents is amount+fee.
type Withdrawal struct {
	ID             uuid.UUID        `json:"id"`
	SessionID      uuid.UUID        `json:"session_id"`
	Amount         float64          `json:"amount"`
	Fee            float64          `json:"fee"`
	Address        string           `json:"address"`
	IdempotencyKey string           `json:"idempotency_key"`
	Status         WithdrawalStatus `json:"status"`
	OperationID    string           `json:"operation_id,omitempty"`
	TxHash         string           `json:"tx_hash,omitempty"`
	FailureReason  string           `json:"failure_reason,omitempty"`
	RequeuedFrom   *uuid.UUID       `json:"requeued_from,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// IsTerminal returns true once no further transition is possible.
func (w *Withdrawal) IsTerminal() bool {
	return w.Status == WithdrawalConfirmed || w.Status == WithdrawalFailed
}

// Reserved is the total amount held against the balance for this record.
func (w *Withdrawal) Reserved() float64 {
	return w.Amount + w.Fee
}

// Age is the time since the withdrawal was requested.
func (w *Withdrawal) Age(now time.Time) time.Duration {
	return now.Sub(w.CreatedAt)
}
