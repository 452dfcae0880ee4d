package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-casino-core/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsTestDeps struct {
	svc   *SettingsServiceImpl
	repo  *mocks.MockSettingsRepository
	cache *mocks.MockSettingsCache
	ctrl  *gomock.Controller
}

var testSettingsDefaults = SettingsDefaults{
	PoolFloor:          10,
	LossLimit:          500,
	SessionDurationCap: 12 * time.Hour,
	ApprovalThreshold:  100,
	WithdrawalFee:      0.0001,
	FeeStep:            0.0001,
	MaxSendAttempts:    3,
}

func setupSettingsService(t *testing.T) *settingsTestDeps {
	ctrl := gomock.NewController(t)
	d := &settingsTestDeps{
		repo:  mocks.NewMockSettingsRepository(ctrl),
		cache: mocks.NewMockSettingsCache(ctrl),
		ctrl:  ctrl,
	}
	d.svc = NewSettingsService(d.repo, d.cache, testSettingsDefaults, zerolog.Nop())
	return d
}

func TestSettingsService_CacheHit(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingPoolFloor).Return("25", true, nil)

	assert.Equal(t, 25, d.svc.PoolFloor(ctx))
}

func TestSettingsService_CacheMissReadsStore(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingLossLimit).Return("", false, nil)
	d.repo.EXPECT().Get(ctx, SettingLossLimit).Return("750.5", true, nil)
	d.cache.EXPECT().Set(ctx, SettingLossLimit, "750.5", settingsCacheTTL).Return(nil)

	assert.Equal(t, 750.5, d.svc.LossLimit(ctx))
}

func TestSettingsService_DefaultWhenAbsent(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingApprovalThreshold).Return("", false, nil)
	d.repo.EXPECT().Get(ctx, SettingApprovalThreshold).Return("", false, nil)

	assert.Equal(t, 100.0, d.svc.ApprovalThreshold(ctx))
}

func TestSettingsService_DefaultOnStoreError(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingMaxSendAttempts).Return("", false, nil)
	d.repo.EXPECT().Get(ctx, SettingMaxSendAttempts).Return("", false, errors.New("db down"))

	assert.Equal(t, 3, d.svc.MaxSendAttempts(ctx))
}

func TestSettingsService_DefaultOnUnparseableValue(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingSessionDurationCap).Return("garbage", true, nil)

	assert.Equal(t, 12*time.Hour, d.svc.SessionDurationCap(ctx))
}

func TestSettingsService_CacheFailureFallsThrough(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, SettingWithdrawalFee).Return("", false, errors.New("redis down"))
	d.repo.EXPECT().Get(ctx, SettingWithdrawalFee).Return("0.0005", true, nil)
	d.cache.EXPECT().Set(ctx, SettingWithdrawalFee, "0.0005", settingsCacheTTL).Return(errors.New("redis down"))

	assert.Equal(t, 0.0005, d.svc.WithdrawalFee(ctx))
}

func TestSettingsService_UpdatePersistsAndInvalidates(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().Set(ctx, SettingPoolFloor, "15").Return(nil)
	d.cache.EXPECT().Invalidate(ctx, SettingPoolFloor).Return(nil)

	err := d.svc.Update(ctx, SettingPoolFloor, "15")
	require.NoError(t, err)
}

func TestSettingsService_UpdateRejectsUnknownKey(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	err := d.svc.Update(context.Background(), "house_edge", "5")
	require.Error(t, err)
	assertAppError(t, err, "ADMIN_002")
}

func TestSettingsService_UpdateRejectsBadValue(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	err := d.svc.Update(context.Background(), SettingPoolFloor, "ten")
	require.Error(t, err)
	assertAppError(t, err, "FUND_002")

	err = d.svc.Update(context.Background(), SettingSessionDurationCap, "12hours")
	require.Error(t, err)
}

func TestSettingsService_UpdateSurvivesCacheInvalidateFailure(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().Set(ctx, SettingFeeStep, "0.0002").Return(nil)
	d.cache.EXPECT().Invalidate(ctx, SettingFeeStep).Return(errors.New("redis down"))

	err := d.svc.Update(ctx, SettingFeeStep, "0.0002")
	require.NoError(t, err, "cache invalidation is best-effort")
}
