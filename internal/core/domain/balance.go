package domain

import (
	"time"

	"github.com/google/uuid"
)

// CounterField names a lifetime counter on a balance record. Wagered and won
// may only increase; deposited may only increase; withdrawn may only
// decrease through withdrawal-failure compensation.
type CounterField string

const (
	CounterDeposited CounterField = "total_deposited"
	CounterWithdrawn CounterField = "total_withdrawn"
	CounterWagered   CounterField = "total_wagered"
	CounterWon       CounterField = "total_won"
)

// ValidReserveCounter reports whether f may be incremented by a reserve.
func ValidReserveCounter(f CounterField) bool {
	return f == CounterWagered || f == CounterWithdrawn
}

// ValidCreditCounter reports whether f may be incremented by a credit.
func ValidCreditCounter(f CounterField) bool {
	return f == CounterWon || f == CounterDeposited
}

// Balance is the per-session ledger entry. It is created at session start,
// mutated exclusively through the ledger primitives and never deleted; the
// financial history lives in the append-only ledger transaction records.
type Balance struct {
	SessionID      uuid.UUID `json:"session_id"`
	Balance        float64   `json:"balance"`
	TotalDeposited float64   `json:"total_deposited"`
	TotalWithdrawn float64   `json:"total_withdrawn"`
	TotalWagered   float64   `json:"total_wagered"`
	TotalWon       float64   `json:"total_won"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NetLoss is the session's realized loss, floored at zero.
func (b *Balance) NetLoss() float64 {
	loss := b.TotalWagered - b.TotalWon
	if loss < 0 {
		return 0
	}
	return loss
}
