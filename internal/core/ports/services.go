package ports

import (
	"context"
	"time"

	"crypto-casino-core/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption. It keeps
// unrevealed server seeds opaque at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for players and operators.
type TokenService interface {
	GeneratePlayer(sessionID uuid.UUID) (string, time.Time, error)
	GenerateOperator(operatorID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SubjectID uuid.UUID
	Username  string
	Operator  bool
}

// IdempotencyCache is the redis fast path for duplicate withdrawal
// requests; the database unique key remains the source of truth.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RefillLock is the in-flight guard preventing overlapping pool refills.
type RefillLock interface {
	// TryAcquire returns true if the lock was free and is now held.
	TryAcquire(ctx context.Context, ttl time.Duration) (bool, error)
	Release(ctx context.Context) error
}

// SettingsCache is the short-TTL cache in front of the settings store.
type SettingsCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// --- Service Ports (Business Logic) ---

// LedgerService exposes the three atomic money primitives plus the
// read-only eligibility check. Reserve returns false, not an error, on
// insufficient funds.
type LedgerService interface {
	CreateBalance(ctx context.Context, sessionID uuid.UUID, demoSeed float64) (*domain.Balance, error)
	GetBalance(ctx context.Context, sessionID uuid.UUID) (*domain.Balance, error)
	Reserve(ctx context.Context, req ReserveRequest) (bool, error)
	Credit(ctx context.Context, req CreditRequest) error
	Release(ctx context.Context, req ReleaseRequest) error
	// CheckWagerEligibility evaluates the session-duration and net-loss
	// caps; it never touches the ledger.
	CheckWagerEligibility(ctx context.Context, sessionID uuid.UUID, stake float64) error
	ListTransactions(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LedgerTransaction, error)
}

// ReserveRequest holds input for a conditional reservation.
type ReserveRequest struct {
	SessionID     uuid.UUID
	Amount        float64
	Counter       domain.CounterField
	CounterAmount float64 // 0 = Amount
	Reference     string
}

// CreditRequest holds input for an unconditional credit.
type CreditRequest struct {
	SessionID uuid.UUID
	Amount    float64
	Counter   domain.CounterField
	Reference string
}

// ReleaseRequest holds input for a compensating release.
type ReleaseRequest struct {
	SessionID     uuid.UUID
	Amount        float64
	Counter       domain.CounterField
	CounterAmount float64 // 0 = Amount
	Reference     string
}

// HandResult is one resolved wager.
type HandResult struct {
	Roll       float64              `json:"roll"`
	Digest     string               `json:"digest"`
	Nonce      int64                `json:"nonce"`
	Won        bool                 `json:"won"`
	Payout     float64              `json:"payout"`
	Balance    float64              `json:"balance"`
	Commitment *domain.Commitment   `json:"commitment,omitempty"` // per-game mode: retired unit, seed disclosed
	ServerSeed string               `json:"server_seed,omitempty"` // per-game mode only
	State      *domain.PublicFairnessState `json:"fairness,omitempty"`
}

// WagerRequest is one hand: stake a bet on roll-under target.
type WagerRequest struct {
	SessionID  uuid.UUID
	Stake      float64
	RollUnder  float64 // win if roll < RollUnder; payout = stake * 99 / RollUnder
	ClientSeed string  // per-game mode: deterministic client input
}

// FairnessService manages committed randomness in both modes.
type FairnessService interface {
	Mode() domain.FairnessMode
	// CreateAnchoredSeed generates, commits and anchors one fairness unit.
	// Chain I/O happens before the insert, never inside a ledger
	// transaction.
	CreateAnchoredSeed(ctx context.Context) error
	// EnsureStream assigns a stream to the session if it has none.
	EnsureStream(ctx context.Context, sessionID uuid.UUID) (*domain.SeedStream, error)
	SetClientSeed(ctx context.Context, sessionID uuid.UUID, seed string) error
	RotateSeed(ctx context.Context, sessionID uuid.UUID, nextClientSeed string) (*domain.RevealBundle, *domain.PublicFairnessState, error)
	GetPublicFairnessState(ctx context.Context, sessionID uuid.UUID) (*domain.PublicFairnessState, error)
	// ResolveHand runs one wager end to end: gates, reservation, outcome
	// derivation, settlement.
	ResolveHand(ctx context.Context, req WagerRequest) (*HandResult, error)
}

// PoolHealth is the fairness inventory snapshot.
type PoolHealth struct {
	Mode        domain.FairnessMode       `json:"mode"`
	Counts      map[domain.SeedStatus]int `json:"counts"`
	Floor       int                       `json:"floor"`
	Healthy     bool                      `json:"healthy"`
}

// PoolService keeps the available-seed inventory above the floor.
type PoolService interface {
	RefillOnce(ctx context.Context) error
	Run(ctx context.Context)
	Health(ctx context.Context) (*PoolHealth, error)
}

// WithdrawalRequestInput holds validated input for a new withdrawal.
type WithdrawalRequestInput struct {
	SessionID      uuid.UUID
	Amount         float64
	Address        string
	IdempotencyKey string
}

// SettlementService drives withdrawals from reservation to terminal state.
type SettlementService interface {
	Request(ctx context.Context, in WithdrawalRequestInput) (*domain.Withdrawal, error)
	Approve(ctx context.Context, withdrawalID uuid.UUID, actor string) (*domain.Withdrawal, error)
	Reject(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error)
	// Poll refreshes one pending record from the node.
	Poll(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error)
	// PollOnce refreshes all pending records; used by the background loop.
	PollOnce(ctx context.Context) error
	Requeue(ctx context.Context, failedID uuid.UUID, idempotencyKey string) (*domain.Withdrawal, error)
	Get(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error)
}

// KillSwitchService is the persisted process-wide incident gate.
type KillSwitchService interface {
	Get(ctx context.Context) (*domain.KillSwitchState, error)
	Set(ctx context.Context, active bool, actor string) (*domain.KillSwitchState, error)
	// Guard returns ErrKillSwitchActive when the switch is armed.
	Guard(ctx context.Context) error
}

// SettingsService exposes hot-reloadable tuning with a short TTL cache.
type SettingsService interface {
	PoolFloor(ctx context.Context) int
	LossLimit(ctx context.Context) float64
	SessionDurationCap(ctx context.Context) time.Duration
	ApprovalThreshold(ctx context.Context) float64
	WithdrawalFee(ctx context.Context) float64
	FeeStep(ctx context.Context) float64
	MaxSendAttempts(ctx context.Context) int
	// Update persists a key and invalidates its cache entry.
	Update(ctx context.Context, key, value string) error
}

// AlertSeverity grades a reconciliation finding.
type AlertSeverity string

const (
	AlertWarning  AlertSeverity = "warning"
	AlertCritical AlertSeverity = "critical"
)

// Alert is one anomaly surfaced to operators.
type Alert struct {
	Severity AlertSeverity `json:"severity"`
	Kind     string        `json:"kind"`
	Message  string        `json:"message"`
	At       time.Time     `json:"at"`
}

// AlertService runs the read-only monitors over ledger and settlement
// state. It observes, it never mutates.
type AlertService interface {
	RunChecks(ctx context.Context) ([]Alert, error)
}

// AuditService records operator actions.
type AuditService interface {
	Record(ctx context.Context, actor, action, detail string)
	Recent(ctx context.Context, limit int) ([]domain.AdminAction, error)
}

// SessionStartResult is returned when a player session begins.
type SessionStartResult struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Balance   float64   `json:"balance"`
}

// AuthService issues player sessions and authenticates operators.
type AuthService interface {
	StartSession(ctx context.Context) (*SessionStartResult, error)
	OperatorLogin(ctx context.Context, username, password string) (string, time.Time, error)
}
