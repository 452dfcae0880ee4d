package postgres

import (
	"context"
	"errors"
	"fmt"

	"crypto-casino-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// KillSwitchRepo implements ports.KillSwitchRepository as a singleton row.
// The write is an upsert so the gate survives restarts from the first Set.
type KillSwitchRepo struct {
	pool Pool
}

// NewKillSwitchRepo creates a new KillSwitchRepo.
func NewKillSwitchRepo(pool Pool) *KillSwitchRepo {
	return &KillSwitchRepo{pool: pool}
}

// Get returns the persisted gate state. A missing row means inactive.
func (r *KillSwitchRepo) Get(ctx context.Context) (*domain.KillSwitchState, error) {
	query := `SELECT active, activated_at, activated_by FROM kill_switch WHERE id = 1`

	s := &domain.KillSwitchState{}
	err := r.pool.QueryRow(ctx, query).Scan(&s.Active, &s.ActivatedAt, &s.ActivatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.KillSwitchState{}, nil
		}
		return nil, fmt.Errorf("get kill switch: %w", err)
	}
	return s, nil
}

// Set persists the gate state before returning.
func (r *KillSwitchRepo) Set(ctx context.Context, state *domain.KillSwitchState) error {
	query := `INSERT INTO kill_switch (id, active, activated_at, activated_by)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET active = $1, activated_at = $2, activated_by = $3`

	_, err := r.pool.Exec(ctx, query, state.Active, state.ActivatedAt, state.ActivatedBy)
	if err != nil {
		return fmt.Errorf("set kill switch: %w", err)
	}
	return nil
}
