package service

import (
	"context"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"

	"github.com/rs/zerolog"
)

const refillLockTTL = 2 * time.Minute

// PoolServiceImpl implements ports.PoolService: it keeps the available-seed
// inventory at or above the configured floor and promotes anchoring
// operations to confirmed once the node reports their transaction mined.
// Only one instance refills at a time, enforced by the redis lock.
type PoolServiceImpl struct {
	fairnessRepo ports.FairnessRepository
	fairnessSvc  ports.FairnessService
	settingsSvc  ports.SettingsService
	chainClient  ports.ChainClient
	refillLock   ports.RefillLock
	interval     time.Duration
	log          zerolog.Logger
}

// NewPoolService creates a new PoolServiceImpl.
func NewPoolService(
	fairnessRepo ports.FairnessRepository,
	fairnessSvc ports.FairnessService,
	settingsSvc ports.SettingsService,
	chainClient ports.ChainClient,
	refillLock ports.RefillLock,
	interval time.Duration,
	log zerolog.Logger,
) *PoolServiceImpl {
	return &PoolServiceImpl{
		fairnessRepo: fairnessRepo,
		fairnessSvc:  fairnessSvc,
		settingsSvc:  settingsSvc,
		chainClient:  chainClient,
		refillLock:   refillLock,
		interval:     interval,
		log:          log,
	}
}

// RefillOnce runs one maintenance cycle: expire stale units, top the pool up
// to the floor, then advance unconfirmed anchors. Skips silently when
// another instance holds the refill lock.
func (s *PoolServiceImpl) RefillOnce(ctx context.Context) error {
	held, err := s.refillLock.TryAcquire(ctx, refillLockTTL)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("acquire refill lock: %w", err))
	}
	if !held {
		s.log.Debug().Msg("refill lock held elsewhere, skipping cycle")
		return nil
	}
	defer func() {
		if err := s.refillLock.Release(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to release refill lock")
		}
	}()

	now := time.Now().UTC()
	expired, err := s.fairnessRepo.ExpireStale(ctx, now)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("expire stale units: %w", err))
	}
	if expired > 0 {
		s.log.Info().Int64("count", expired).Msg("expired stale fairness units")
	}

	available, err := s.availableCount(ctx)
	if err != nil {
		return err
	}

	floor := s.settingsSvc.PoolFloor(ctx)
	for i := available; i < floor; i++ {
		if err := s.fairnessSvc.CreateAnchoredSeed(ctx); err != nil {
			// Node trouble mid-refill: keep what we created, try again next
			// cycle.
			s.log.Warn().Err(err).Int("created", i-available).Msg("refill stopped early")
			break
		}
	}

	return s.confirmAnchors(ctx)
}

// Run drives RefillOnce on a ticker until the context is cancelled.
func (s *PoolServiceImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("pool refill loop started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("pool refill loop stopped")
			return
		case <-ticker.C:
			if err := s.RefillOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("pool refill cycle failed")
			}
		}
	}
}

// Health reports the inventory per status and whether the available count
// meets the floor.
func (s *PoolServiceImpl) Health(ctx context.Context) (*ports.PoolHealth, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return nil, err
	}

	floor := s.settingsSvc.PoolFloor(ctx)
	return &ports.PoolHealth{
		Mode:    s.fairnessSvc.Mode(),
		Counts:  counts,
		Floor:   floor,
		Healthy: counts[domain.SeedAvailable] >= floor,
	}, nil
}

func (s *PoolServiceImpl) counts(ctx context.Context) (map[domain.SeedStatus]int, error) {
	if s.fairnessSvc.Mode() == domain.ModeSessionStream {
		counts, err := s.fairnessRepo.CountStreams(ctx)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("count streams: %w", err))
		}
		return counts, nil
	}
	counts, err := s.fairnessRepo.CountCommitments(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("count commitments: %w", err))
	}
	return counts, nil
}

func (s *PoolServiceImpl) availableCount(ctx context.Context) (int, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return 0, err
	}
	return counts[domain.SeedAvailable], nil
}

// confirmAnchors polls the node for units whose anchoring operation has not
// confirmed and records the transaction hash and block height once it has.
func (s *PoolServiceImpl) confirmAnchors(ctx context.Context) error {
	refs, err := s.fairnessRepo.UnconfirmedAnchors(ctx, 50)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("list unconfirmed anchors: %w", err))
	}

	for _, ref := range refs {
		status, err := s.chainClient.GetOperationStatus(ctx, ref.OperationID)
		if err != nil {
			s.log.Warn().Err(err).Str("operation_id", ref.OperationID).Msg("anchor status poll failed")
			continue
		}

		switch status.Status {
		case ports.OperationSuccess:
			if err := s.fairnessRepo.ConfirmAnchor(ctx, ref, status.TxID, status.BlockHeight, time.Now().UTC()); err != nil {
				s.log.Error().Err(err).Str("unit_id", ref.ID.String()).Msg("failed to record anchor confirmation")
				continue
			}
			s.log.Info().
				Str("unit_id", ref.ID.String()).
				Str("tx_hash", status.TxID).
				Int64("block_height", status.BlockHeight).
				Msg("anchor confirmed")
		case ports.OperationFailed:
			s.log.Error().
				Str("unit_id", ref.ID.String()).
				Str("operation_id", ref.OperationID).
				Str("error", status.Error).
				Msg("anchoring operation failed on node")
		}
	}

	return nil
}
