package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"

	"github.com/rs/zerolog"
)

const settingsCacheTTL = 30 * time.Second

// Settings keys. Each has a typed getter and a config-supplied default;
// unknown keys are rejected at update time.
const (
	SettingPoolFloor          = "pool_floor"
	SettingLossLimit          = "loss_limit"
	SettingSessionDurationCap = "session_duration_cap"
	SettingApprovalThreshold  = "approval_threshold"
	SettingWithdrawalFee      = "withdrawal_fee"
	SettingFeeStep            = "fee_step"
	SettingMaxSendAttempts    = "max_send_attempts"
)

// SettingsDefaults carries the config-file fallbacks used when a key has no
// stored override or the store is unreachable.
type SettingsDefaults struct {
	PoolFloor          int
	LossLimit          float64
	SessionDurationCap time.Duration
	ApprovalThreshold  float64
	WithdrawalFee      float64
	FeeStep            float64
	MaxSendAttempts    int
}

// SettingsServiceImpl implements ports.SettingsService: a durable key-value
// store fronted by a short-TTL redis cache so hot paths do not hit postgres
// per wager.
type SettingsServiceImpl struct {
	repo     ports.SettingsRepository
	cache    ports.SettingsCache
	defaults SettingsDefaults
	log      zerolog.Logger
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(repo ports.SettingsRepository, cache ports.SettingsCache, defaults SettingsDefaults, log zerolog.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:     repo,
		cache:    cache,
		defaults: defaults,
		log:      log,
	}
}

func (s *SettingsServiceImpl) PoolFloor(ctx context.Context) int {
	return s.intValue(ctx, SettingPoolFloor, s.defaults.PoolFloor)
}

func (s *SettingsServiceImpl) LossLimit(ctx context.Context) float64 {
	return s.floatValue(ctx, SettingLossLimit, s.defaults.LossLimit)
}

func (s *SettingsServiceImpl) SessionDurationCap(ctx context.Context) time.Duration {
	raw, ok := s.lookup(ctx, SettingSessionDurationCap)
	if !ok {
		return s.defaults.SessionDurationCap
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		s.log.Warn().Str("key", SettingSessionDurationCap).Str("value", raw).Msg("unparseable setting, using default")
		return s.defaults.SessionDurationCap
	}
	return d
}

func (s *SettingsServiceImpl) ApprovalThreshold(ctx context.Context) float64 {
	return s.floatValue(ctx, SettingApprovalThreshold, s.defaults.ApprovalThreshold)
}

func (s *SettingsServiceImpl) WithdrawalFee(ctx context.Context) float64 {
	return s.floatValue(ctx, SettingWithdrawalFee, s.defaults.WithdrawalFee)
}

func (s *SettingsServiceImpl) FeeStep(ctx context.Context) float64 {
	return s.floatValue(ctx, SettingFeeStep, s.defaults.FeeStep)
}

func (s *SettingsServiceImpl) MaxSendAttempts(ctx context.Context) int {
	return s.intValue(ctx, SettingMaxSendAttempts, s.defaults.MaxSendAttempts)
}

// Update validates the key and value, persists the override and invalidates
// the cache entry so the new value is visible within one TTL everywhere.
func (s *SettingsServiceImpl) Update(ctx context.Context, key, value string) error {
	if err := validateSetting(key, value); err != nil {
		return err
	}

	if err := s.repo.Set(ctx, key, value); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("persist setting %s: %w", key, err))
	}

	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to invalidate settings cache")
	}

	s.log.Info().Str("key", key).Str("value", value).Msg("setting updated")
	return nil
}

func validateSetting(key, value string) error {
	switch key {
	case SettingPoolFloor, SettingMaxSendAttempts:
		if _, err := strconv.Atoi(value); err != nil {
			return apperror.Validation(fmt.Sprintf("setting %s requires an integer value", key))
		}
	case SettingLossLimit, SettingApprovalThreshold, SettingWithdrawalFee, SettingFeeStep:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return apperror.Validation(fmt.Sprintf("setting %s requires a numeric value", key))
		}
	case SettingSessionDurationCap:
		if _, err := time.ParseDuration(value); err != nil {
			return apperror.Validation(fmt.Sprintf("setting %s requires a duration value", key))
		}
	default:
		return apperror.ErrUnknownSetting(key)
	}
	return nil
}

// lookup reads through the cache into the durable store. Cache failures fall
// through to postgres; store failures fall back to the default.
func (s *SettingsServiceImpl) lookup(ctx context.Context, key string) (string, bool) {
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("settings cache read failed")
	} else if ok {
		return cached, true
	}

	value, found, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("settings store read failed, using default")
		return "", false
	}
	if !found {
		return "", false
	}

	if err := s.cache.Set(ctx, key, value, settingsCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("settings cache write failed")
	}
	return value, true
}

func (s *SettingsServiceImpl) intValue(ctx context.Context, key string, fallback int) int {
	raw, ok := s.lookup(ctx, key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn().Str("key", key).Str("value", raw).Msg("unparseable setting, using default")
		return fallback
	}
	return v
}

func (s *SettingsServiceImpl) floatValue(ctx context.Context, key string, fallback float64) float64 {
	raw, ok := s.lookup(ctx, key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.log.Warn().Str("key", key).Str("value", raw).Msg("unparseable setting, using default")
		return fallback
	}
	return v
}
