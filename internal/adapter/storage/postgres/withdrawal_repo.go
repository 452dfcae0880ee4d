package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
//
// The idempotency key carries a unique constraint; duplicate requests are
// detected at insert via ON CONFLICT DO NOTHING. Status transitions are
// guarded by the expected from-status so terminal compensation (the refund
// on failure) can never run twice.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, session_id, amount, fee, address, idempotency_key, status, operation_id, tx_hash, failure_reason, requeued_from, created_at, updated_at`

// Create inserts the record inside the caller's transaction; returns false
// without error when the idempotency key already exists.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) (bool, error) {
	query := `INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (idempotency_key) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		w.ID, w.SessionID, w.Amount, w.Fee, w.Address, w.IdempotencyKey,
		w.Status, w.OperationID, w.TxHash, w.FailureReason, w.RequeuedFrom,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert withdrawal: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID fetches a withdrawal by its id.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	return r.getOne(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
}

// GetByIdempotencyKey fetches a withdrawal by its idempotency key.
func (r *WithdrawalRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Withdrawal, error) {
	return r.getOne(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE idempotency_key = $1`, key)
}

func (r *WithdrawalRepo) getOne(ctx context.Context, query string, arg any) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.SessionID, &w.Amount, &w.Fee, &w.Address, &w.IdempotencyKey,
		&w.Status, &w.OperationID, &w.TxHash, &w.FailureReason, &w.RequeuedFrom,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

// Transition moves the record from one status to another, applying the
// update fields. Returns false when the record was not in the from-status.
func (r *WithdrawalRepo) Transition(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.WithdrawalStatus, update ports.WithdrawalUpdate) (bool, error) {
	query := `UPDATE withdrawals SET
			status = $3,
			operation_id = COALESCE($4, operation_id),
			tx_hash = COALESCE($5, tx_hash),
			failure_reason = COALESCE($6, failure_reason),
			updated_at = NOW()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, id, from, to,
		update.OperationID, update.TxHash, update.FailureReason)
	if err != nil {
		return false, fmt.Errorf("transition withdrawal: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByStatus returns withdrawals in the given status, oldest first.
func (r *WithdrawalRepo) ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals
		WHERE status = $1 ORDER BY created_at LIMIT $2`
	return r.list(ctx, query, status, limit)
}

// ListPendingOlderThan returns pending records created before cutoff.
func (r *WithdrawalRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals
		WHERE status = 'PENDING' AND created_at < $1 ORDER BY created_at LIMIT $2`
	return r.list(ctx, query, cutoff, limit)
}

func (r *WithdrawalRepo) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var out []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(
			&w.ID, &w.SessionID, &w.Amount, &w.Fee, &w.Address, &w.IdempotencyKey,
			&w.Status, &w.OperationID, &w.TxHash, &w.FailureReason, &w.RequeuedFrom,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
