package postgres

import (
	"context"
	"errors"
	"fmt"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository.
//
// Reserve/credit/release are each one guarded UPDATE so the funds check and
// the mutation cannot be split by a concurrent caller. Counter column names
// are interpolated only after validation against the CounterField enum.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Create inserts a new balance row at session start.
func (r *BalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	query := `INSERT INTO balances (session_id, balance, total_deposited, total_withdrawn, total_wagered, total_won, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		b.SessionID, b.Balance, b.TotalDeposited, b.TotalWithdrawn,
		b.TotalWagered, b.TotalWon, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// Get fetches a balance by session id (non-locking read).
func (r *BalanceRepo) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Balance, error) {
	query := `SELECT session_id, balance, total_deposited, total_withdrawn, total_wagered, total_won, created_at, updated_at
		FROM balances WHERE session_id = $1`

	b := &domain.Balance{}
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&b.SessionID, &b.Balance, &b.TotalDeposited, &b.TotalWithdrawn,
		&b.TotalWagered, &b.TotalWon, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// TryReserve conditionally decrements the balance and increments the named
// lifetime counter. The WHERE clause carries the funds check; zero rows
// affected means insufficient balance and no mutation.
func (r *BalanceRepo) TryReserve(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) (bool, error) {
	if !domain.ValidReserveCounter(counter) {
		return false, fmt.Errorf("counter %q is not reservable", counter)
	}

	query := fmt.Sprintf(`UPDATE balances
		SET balance = round((balance - $2)::numeric, 8)::float8,
			%[1]s = round((%[1]s + $3)::numeric, 8)::float8,
			updated_at = NOW()
		WHERE session_id = $1 AND balance >= $2 - $4`, counter)

	tag, err := tx.Exec(ctx, query, sessionID, amount, counterAmount, money.Tolerance)
	if err != nil {
		return false, fmt.Errorf("reserve balance: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Credit unconditionally increments the balance and the named counter.
func (r *BalanceRepo) Credit(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField) error {
	if !domain.ValidCreditCounter(counter) {
		return fmt.Errorf("counter %q is not creditable", counter)
	}

	query := fmt.Sprintf(`UPDATE balances
		SET balance = round((balance + $2)::numeric, 8)::float8,
			%[1]s = round((%[1]s + $2)::numeric, 8)::float8,
			updated_at = NOW()
		WHERE session_id = $1`, counter)

	tag, err := tx.Exec(ctx, query, sessionID, amount)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %s", sessionID)
	}
	return nil
}

// Release is the compensating inverse of TryReserve: it returns funds and
// walks the counter back by the amount the reserve had added.
func (r *BalanceRepo) Release(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) error {
	if !domain.ValidReserveCounter(counter) {
		return fmt.Errorf("counter %q is not releasable", counter)
	}

	query := fmt.Sprintf(`UPDATE balances
		SET balance = round((balance + $2)::numeric, 8)::float8,
			%[1]s = round((%[1]s - $3)::numeric, 8)::float8,
			updated_at = NOW()
		WHERE session_id = $1`, counter)

	tag, err := tx.Exec(ctx, query, sessionID, amount, counterAmount)
	if err != nil {
		return fmt.Errorf("release balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %s", sessionID)
	}
	return nil
}

// SumBalances totals all spendable player balances.
func (r *BalanceRepo) SumBalances(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM balances`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum balances: %w", err)
	}
	return total, nil
}
