package service

import (
	"context"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService. Recording is best-effort:
// an audit write failure is logged, never allowed to fail the operator
// action it describes.
type AuditServiceImpl struct {
	repo ports.AdminAuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new AuditServiceImpl.
func NewAuditService(repo ports.AdminAuditRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{
		repo: repo,
		log:  log,
	}
}

func (s *AuditServiceImpl) Record(ctx context.Context, actor, action, detail string) {
	entry := &domain.AdminAction{
		ID:        uuid.New(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("actor", actor).Str("action", action).Msg("failed to record admin action")
		return
	}

	s.log.Info().Str("actor", actor).Str("action", action).Str("detail", detail).Msg("admin action recorded")
}

func (s *AuditServiceImpl) Recent(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	actions, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list admin actions: %w", err))
	}
	return actions, nil
}
