package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAdminAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	ctx := context.Background()
	repo.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.AdminAction) error {
		assert.Equal(t, "ops", a.Actor)
		assert.Equal(t, "withdrawal_approved", a.Action)
		assert.Equal(t, "id=123", a.Detail)
		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		return nil
	})

	svc.Record(ctx, "ops", "withdrawal_approved", "id=123")
}

func TestAuditService_RecordSwallowsWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAdminAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	ctx := context.Background()
	repo.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("db down"))

	// Must not panic or surface the error.
	svc.Record(ctx, "ops", "setting_updated", "")
}

func TestAuditService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAdminAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	ctx := context.Background()
	expected := []domain.AdminAction{
		{ID: uuid.New(), Actor: "ops", Action: "kill_switch_armed", CreatedAt: time.Now()},
	}
	repo.EXPECT().ListRecent(ctx, 20).Return(expected, nil)

	actions, err := svc.Recent(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, actions)
}
