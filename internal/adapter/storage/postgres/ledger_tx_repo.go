package postgres

import (
	"context"
	"fmt"

	"crypto-casino-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerTxRepo implements ports.LedgerTxRepository, the append-only journal.
type LedgerTxRepo struct {
	pool Pool
}

// NewLedgerTxRepo creates a new LedgerTxRepo.
func NewLedgerTxRepo(pool Pool) *LedgerTxRepo {
	return &LedgerTxRepo{pool: pool}
}

// Append inserts a journal entry inside the caller's transaction so it
// commits atomically with the balance mutation it describes.
func (r *LedgerTxRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error {
	query := `INSERT INTO ledger_transactions (id, session_id, kind, amount, counter_field, counter_amount, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.SessionID, entry.Kind, entry.Amount,
		entry.CounterField, entry.CounterAmount, entry.Reference, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger transaction: %w", err)
	}
	return nil
}

// ListBySession returns the most recent journal entries for a session.
func (r *LedgerTxRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	query := `SELECT id, session_id, kind, amount, counter_field, counter_amount, reference, created_at
		FROM ledger_transactions WHERE session_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerTransaction
	for rows.Next() {
		var e domain.LedgerTransaction
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Amount, &e.CounterField, &e.CounterAmount, &e.Reference, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger transaction: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
