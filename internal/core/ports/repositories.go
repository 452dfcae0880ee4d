package ports

import (
	"context"
	"time"

	"crypto-casino-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepository defines persistence for per-session balances.
// TryReserve/Credit/Release run inside a caller-owned transaction so the
// journal entry commits atomically with the balance mutation. Each of them
// is a single guarded UPDATE, never a read-then-write pair.
type BalanceRepository interface {
	Create(ctx context.Context, b *domain.Balance) error
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Balance, error)
	// TryReserve conditionally decrements balance by amount and increments
	// the named counter by counterAmount. Returns false (no mutation) when
	// the balance is insufficient.
	TryReserve(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) (bool, error)
	Credit(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField) error
	Release(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) error
	// SumBalances totals all spendable balances, for reserve-coverage checks.
	SumBalances(ctx context.Context) (float64, error)
}

// LedgerTxRepository is the append-only financial journal.
type LedgerTxRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LedgerTransaction, error)
}

// AnchorRef identifies a fairness unit whose anchoring transaction has not
// confirmed yet.
type AnchorRef struct {
	ID          uuid.UUID
	Stream      bool // false = per-game commitment
	OperationID string
}

// FairnessRepository defines persistence for commitments and seed streams.
// Claim methods must be atomic against concurrent claimers; the guarded
// mutations (client seed, nonce, reveal) report whether the guard held.
type FairnessRepository interface {
	CreateCommitment(ctx context.Context, c *domain.Commitment) error
	CreateStream(ctx context.Context, s *domain.SeedStream) error

	// ClaimCommitment assigns one available commitment to the session.
	// Returns nil when the pool is exhausted.
	ClaimCommitment(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, now time.Time) (*domain.Commitment, error)
	// RetireCommitment moves an assigned commitment to consumed/expired.
	RetireCommitment(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.SeedStatus) error

	// ActiveStream returns the session's assigned stream, or nil.
	ActiveStream(ctx context.Context, sessionID uuid.UUID) (*domain.SeedStream, error)
	// ClaimStream assigns one available stream to the session, carrying the
	// given client seed. Returns nil when none is available.
	ClaimStream(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, clientSeed string, now time.Time) (*domain.SeedStream, error)
	// SetClientSeed updates the client seed only while nonce == 0.
	SetClientSeed(ctx context.Context, streamID uuid.UUID, seed string) (bool, error)
	// IncrementNonce advances the stream nonce only if it still equals
	// expected, so two concurrent hands can never share a nonce. Returns the
	// stream as the guarded update left it: the hand derives from that row
	// state, never from an earlier read. Nil when the guard did not hold.
	IncrementNonce(ctx context.Context, streamID uuid.UUID, expected int64) (*domain.SeedStream, error)
	// RevealStream moves an assigned stream to revealed and returns the row
	// as retired, so the reveal bundle reports the nonce and client seed the
	// stream actually ended with. Nil if the stream was already rotated by a
	// concurrent caller.
	RevealStream(ctx context.Context, tx pgx.Tx, streamID uuid.UUID) (*domain.SeedStream, error)

	CountCommitments(ctx context.Context) (map[domain.SeedStatus]int, error)
	CountStreams(ctx context.Context) (map[domain.SeedStatus]int, error)
	// ExpireStale marks available entries past their deadline as expired.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
	// UnconfirmedAnchors lists entries still waiting for their anchoring
	// transaction to confirm.
	UnconfirmedAnchors(ctx context.Context, limit int) ([]AnchorRef, error)
	ConfirmAnchor(ctx context.Context, ref AnchorRef, txHash string, blockHeight int64, at time.Time) error
}

// WithdrawalRepository defines persistence for settlement records.
type WithdrawalRepository interface {
	// Create inserts the record; returns false without error when the
	// idempotency key already exists.
	Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Withdrawal, error)
	// Transition moves the record from one status to another, updating the
	// given mutable fields. Returns false when the record was not in the
	// expected from-status, so compensation can never run twice.
	Transition(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.WithdrawalStatus, update WithdrawalUpdate) (bool, error)
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error)
	// ListPendingOlderThan returns pending records whose age exceeds cutoff.
	ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.Withdrawal, error)
}

// WithdrawalUpdate carries the mutable settlement fields for a transition.
// Nil pointers leave the column unchanged. The quoted fee is fixed at
// creation; escalated send fees are house-borne and never written back.
type WithdrawalUpdate struct {
	OperationID   *string
	TxHash        *string
	FailureReason *string
}

// KillSwitchRepository persists the singleton incident gate.
type KillSwitchRepository interface {
	Get(ctx context.Context) (*domain.KillSwitchState, error)
	Set(ctx context.Context, state *domain.KillSwitchState) error
}

// SettingsRepository is the durable key-value settings store.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// OperatorRepository defines persistence for administrative accounts.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// AdminAuditRepository is the append-only record of operator actions.
type AdminAuditRepository interface {
	Append(ctx context.Context, action *domain.AdminAction) error
	ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
