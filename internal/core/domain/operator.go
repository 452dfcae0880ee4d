package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an administrative account: approves large withdrawals, arms
// the kill switch and tunes settings. Passwords are stored as argon2id
// hashes.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminAction is an audit record of an operator-initiated state change.
type AdminAction struct {
	ID        uuid.UUID `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
