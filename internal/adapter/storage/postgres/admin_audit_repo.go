package postgres

import (
	"context"
	"fmt"

	"crypto-casino-core/internal/core/domain"
)

// AdminAuditRepo implements ports.AdminAuditRepository, the append-only
// record of operator actions (approvals, rejections, kill-switch flips).
type AdminAuditRepo struct {
	pool Pool
}

// NewAdminAuditRepo creates a new AdminAuditRepo.
func NewAdminAuditRepo(pool Pool) *AdminAuditRepo {
	return &AdminAuditRepo{pool: pool}
}

// Append inserts one admin action.
func (r *AdminAuditRepo) Append(ctx context.Context, action *domain.AdminAction) error {
	query := `INSERT INTO admin_audit (id, actor, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, action.ID, action.Actor, action.Action, action.Detail, action.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin action: %w", err)
	}
	return nil
}

// ListRecent returns the newest actions first.
func (r *AdminAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	query := `SELECT id, actor, action, detail, created_at FROM admin_audit
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list admin actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.AdminAction
	for rows.Next() {
		var a domain.AdminAction
		if err := rows.Scan(&a.ID, &a.Actor, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
