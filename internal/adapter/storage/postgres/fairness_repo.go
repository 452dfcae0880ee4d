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

// FairnessRepo implements ports.FairnessRepository over the
// fairness_commitments and seed_streams tables.
//
// Claims use FOR UPDATE SKIP LOCKED so concurrent claimers each take a
// distinct row without queueing; the nonce/seed/reveal mutations are guarded
// UPDATEs whose row count tells the caller whether it won the race.
type FairnessRepo struct {
	pool Pool
}

// NewFairnessRepo creates a new FairnessRepo.
func NewFairnessRepo(pool Pool) *FairnessRepo {
	return &FairnessRepo{pool: pool}
}

const commitmentColumns = `id, server_seed_enc, server_seed_hash, status, anchor_operation_id, anchor_tx_hash, anchor_block_height, anchor_confirmed_at, session_id, expires_at, created_at, updated_at`

const streamColumns = `id, server_seed_enc, server_seed_hash, status, nonce, client_seed, anchor_operation_id, anchor_tx_hash, anchor_block_height, anchor_confirmed_at, session_id, expires_at, created_at, updated_at`

// CreateCommitment inserts a new available per-game commitment.
func (r *FairnessRepo) CreateCommitment(ctx context.Context, c *domain.Commitment) error {
	query := `INSERT INTO fairness_commitments (` + commitmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.ServerSeedEnc, c.ServerSeedHash, c.Status,
		c.AnchorOperationID, c.AnchorTxHash, c.AnchorBlockHeight, c.AnchorConfirmedAt,
		c.SessionID, c.ExpiresAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commitment: %w", err)
	}
	return nil
}

// CreateStream inserts a new available seed stream.
func (r *FairnessRepo) CreateStream(ctx context.Context, s *domain.SeedStream) error {
	query := `INSERT INTO seed_streams (` + streamColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.ServerSeedEnc, s.ServerSeedHash, s.Status, s.Nonce, s.ClientSeed,
		s.AnchorOperationID, s.AnchorTxHash, s.AnchorBlockHeight, s.AnchorConfirmedAt,
		s.SessionID, s.ExpiresAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seed stream: %w", err)
	}
	return nil
}

// ClaimCommitment atomically assigns one available, unexpired commitment to
// the session. Returns nil when the pool is exhausted.
func (r *FairnessRepo) ClaimCommitment(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, now time.Time) (*domain.Commitment, error) {
	query := `UPDATE fairness_commitments
		SET status = 'assigned', session_id = $1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM fairness_commitments
			WHERE status = 'available' AND expires_at > $2
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + commitmentColumns

	c := &domain.Commitment{}
	err := tx.QueryRow(ctx, query, sessionID, now).Scan(
		&c.ID, &c.ServerSeedEnc, &c.ServerSeedHash, &c.Status,
		&c.AnchorOperationID, &c.AnchorTxHash, &c.AnchorBlockHeight, &c.AnchorConfirmedAt,
		&c.SessionID, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim commitment: %w", err)
	}
	return c, nil
}

// RetireCommitment moves an assigned commitment to a terminal status.
func (r *FairnessRepo) RetireCommitment(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.SeedStatus) error {
	query := `UPDATE fairness_commitments SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'assigned'`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("retire commitment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commitment %s not assigned", id)
	}
	return nil
}

// ActiveStream returns the session's assigned stream, or nil.
func (r *FairnessRepo) ActiveStream(ctx context.Context, sessionID uuid.UUID) (*domain.SeedStream, error) {
	query := `SELECT ` + streamColumns + ` FROM seed_streams
		WHERE session_id = $1 AND status = 'assigned'`

	s := &domain.SeedStream{}
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&s.ID, &s.ServerSeedEnc, &s.ServerSeedHash, &s.Status, &s.Nonce, &s.ClientSeed,
		&s.AnchorOperationID, &s.AnchorTxHash, &s.AnchorBlockHeight, &s.AnchorConfirmedAt,
		&s.SessionID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active stream: %w", err)
	}
	return s, nil
}

// ClaimStream atomically assigns one available stream to the session,
// carrying the given client seed. Returns nil when none is available.
func (r *FairnessRepo) ClaimStream(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, clientSeed string, now time.Time) (*domain.SeedStream, error) {
	query := `UPDATE seed_streams
		SET status = 'assigned', session_id = $1, client_seed = $2, updated_at = NOW()
		WHERE id = (
			SELECT id FROM seed_streams
			WHERE status = 'available' AND expires_at > $3
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + streamColumns

	s := &domain.SeedStream{}
	err := tx.QueryRow(ctx, query, sessionID, clientSeed, now).Scan(
		&s.ID, &s.ServerSeedEnc, &s.ServerSeedHash, &s.Status, &s.Nonce, &s.ClientSeed,
		&s.AnchorOperationID, &s.AnchorTxHash, &s.AnchorBlockHeight, &s.AnchorConfirmedAt,
		&s.SessionID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim stream: %w", err)
	}
	return s, nil
}

// SetClientSeed updates the client seed only while the stream is untouched
// (nonce = 0). Returns false when the seed is locked.
func (r *FairnessRepo) SetClientSeed(ctx context.Context, streamID uuid.UUID, seed string) (bool, error) {
	query := `UPDATE seed_streams SET client_seed = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'assigned' AND nonce = 0`

	tag, err := r.pool.Exec(ctx, query, streamID, seed)
	if err != nil {
		return false, fmt.Errorf("set client seed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementNonce advances the nonce only if it still equals expected and
// returns the row as the update left it, so the caller derives the hand from
// the persisted client seed rather than an earlier read. Returns nil when a
// concurrent hand already consumed that nonce or the stream was rotated.
func (r *FairnessRepo) IncrementNonce(ctx context.Context, streamID uuid.UUID, expected int64) (*domain.SeedStream, error) {
	query := `UPDATE seed_streams SET nonce = nonce + 1, updated_at = NOW()
		WHERE id = $1 AND nonce = $2 AND status = 'assigned'
		RETURNING ` + streamColumns

	s := &domain.SeedStream{}
	err := r.pool.QueryRow(ctx, query, streamID, expected).Scan(
		&s.ID, &s.ServerSeedEnc, &s.ServerSeedHash, &s.Status, &s.Nonce, &s.ClientSeed,
		&s.AnchorOperationID, &s.AnchorTxHash, &s.AnchorBlockHeight, &s.AnchorConfirmedAt,
		&s.SessionID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment nonce: %w", err)
	}
	return s, nil
}

// RevealStream moves an assigned stream to revealed and returns the retired
// row, so the reveal bundle carries the final nonce and client seed even when
// an in-flight hand advanced the stream after the caller's read. Returns nil
// when the stream was already rotated by a concurrent caller.
func (r *FairnessRepo) RevealStream(ctx context.Context, tx pgx.Tx, streamID uuid.UUID) (*domain.SeedStream, error) {
	query := `UPDATE seed_streams SET status = 'revealed', updated_at = NOW()
		WHERE id = $1 AND status = 'assigned'
		RETURNING ` + streamColumns

	s := &domain.SeedStream{}
	err := tx.QueryRow(ctx, query, streamID).Scan(
		&s.ID, &s.ServerSeedEnc, &s.ServerSeedHash, &s.Status, &s.Nonce, &s.ClientSeed,
		&s.AnchorOperationID, &s.AnchorTxHash, &s.AnchorBlockHeight, &s.AnchorConfirmedAt,
		&s.SessionID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reveal stream: %w", err)
	}
	return s, nil
}

// CountCommitments returns per-status counts for the commitment pool.
func (r *FairnessRepo) CountCommitments(ctx context.Context) (map[domain.SeedStatus]int, error) {
	return r.countByStatus(ctx, "fairness_commitments")
}

// CountStreams returns per-status counts for the stream inventory.
func (r *FairnessRepo) CountStreams(ctx context.Context) (map[domain.SeedStatus]int, error) {
	return r.countByStatus(ctx, "seed_streams")
}

func (r *FairnessRepo) countByStatus(ctx context.Context, table string) (map[domain.SeedStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM `+table+` GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", table, err)
	}
	defer rows.Close()

	counts := make(map[domain.SeedStatus]int)
	for rows.Next() {
		var status domain.SeedStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan %s count: %w", table, err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// ExpireStale marks available entries past their deadline as expired.
func (r *FairnessRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	var expired int64
	for _, table := range []string{"fairness_commitments", "seed_streams"} {
		tag, err := r.pool.Exec(ctx,
			`UPDATE `+table+` SET status = 'expired', updated_at = NOW()
			WHERE status = 'available' AND expires_at <= $1`, now)
		if err != nil {
			return expired, fmt.Errorf("expire %s: %w", table, err)
		}
		expired += tag.RowsAffected()
	}
	return expired, nil
}

// UnconfirmedAnchors lists entries whose anchoring transaction has not
// confirmed yet.
func (r *FairnessRepo) UnconfirmedAnchors(ctx context.Context, limit int) ([]ports.AnchorRef, error) {
	query := `SELECT id, anchor_operation_id, false AS is_stream FROM fairness_commitments
			WHERE anchor_tx_hash = '' AND anchor_operation_id <> '' AND status <> 'expired'
		UNION ALL
		SELECT id, anchor_operation_id, true AS is_stream FROM seed_streams
			WHERE anchor_tx_hash = '' AND anchor_operation_id <> '' AND status <> 'expired'
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unconfirmed anchors: %w", err)
	}
	defer rows.Close()

	var refs []ports.AnchorRef
	for rows.Next() {
		var ref ports.AnchorRef
		if err := rows.Scan(&ref.ID, &ref.OperationID, &ref.Stream); err != nil {
			return nil, fmt.Errorf("scan anchor ref: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ConfirmAnchor records the confirmed anchoring transaction.
func (r *FairnessRepo) ConfirmAnchor(ctx context.Context, ref ports.AnchorRef, txHash string, blockHeight int64, at time.Time) error {
	table := "fairness_commitments"
	if ref.Stream {
		table = "seed_streams"
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE `+table+` SET anchor_tx_hash = $2, anchor_block_height = $3, anchor_confirmed_at = $4, updated_at = NOW()
		WHERE id = $1`, ref.ID, txHash, blockHeight, at)
	if err != nil {
		return fmt.Errorf("confirm anchor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("anchor target %s not found", ref.ID)
	}
	return nil
}
