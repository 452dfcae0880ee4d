package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerTxKind is the kind of ledger mutation a journal entry records.
type LedgerTxKind string

const (
	LedgerTxReserve LedgerTxKind = "RESERVE"
	LedgerTxCredit  LedgerTxKind = "CREDIT"
	LedgerTxRelease LedgerTxKind = "RELEASE"
)

// LedgerTransaction is an immutable journal entry. One row is appended for
// every successful ledger mutation, in the same database transaction as the
// balance update, so the journal and the balance can never disagree.
type LedgerTransaction struct {
	ID            uuid.UUID    `json:"id"`
	SessionID     uuid.UUID    `json:"session_id"`
	Kind          LedgerTxKind `json:"kind"`
	Amount        float64      `json:"amount"`
	CounterField  CounterField `json:"counter_field"`
	CounterAmount float64      `json:"counter_amount"`
	Reference     string       `json:"reference,omitempty"` // wager id, withdrawal id, ...
	CreatedAt     time.Time    `json:"created_at"`
}
