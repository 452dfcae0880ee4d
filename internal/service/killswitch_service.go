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

// KillSwitchServiceImpl implements ports.KillSwitchService. The state lives
// in postgres so it survives restarts; every financial entry point calls
// Guard before any mutation.
type KillSwitchServiceImpl struct {
	repo  ports.KillSwitchRepository
	audit ports.AuditService
	log   zerolog.Logger
}

// NewKillSwitchService creates a new KillSwitchServiceImpl.
func NewKillSwitchService(repo ports.KillSwitchRepository, audit ports.AuditService, log zerolog.Logger) *KillSwitchServiceImpl {
	return &KillSwitchServiceImpl{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (s *KillSwitchServiceImpl) Get(ctx context.Context) (*domain.KillSwitchState, error) {
	state, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("read kill switch: %w", err))
	}
	return state, nil
}

func (s *KillSwitchServiceImpl) Set(ctx context.Context, active bool, actor string) (*domain.KillSwitchState, error) {
	state := &domain.KillSwitchState{Active: active}
	if active {
		now := time.Now().UTC()
		state.ActivatedAt = &now
		state.ActivatedBy = actor
	}

	if err := s.repo.Set(ctx, state); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist kill switch: %w", err))
	}

	action := "kill_switch_disarmed"
	if active {
		action = "kill_switch_armed"
	}
	s.audit.Record(ctx, actor, action, "")

	s.log.Warn().Bool("active", active).Str("actor", actor).Msg("kill switch state changed")
	return state, nil
}

// Guard refuses new financial commitments while the switch is armed. A
// storage failure also refuses: an unreadable gate must fail closed.
func (s *KillSwitchServiceImpl) Guard(ctx context.Context) error {
	state, err := s.repo.Get(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("read kill switch: %w", err))
	}
	if state.Active {
		return apperror.ErrKillSwitchActive()
	}
	return nil
}
