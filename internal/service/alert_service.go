package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"

	"github.com/rs/zerolog"
)

const alertWebhookTimeout = 10 * time.Second

// AlertConfig carries the reconciliation thresholds and delivery target.
type AlertConfig struct {
	WebhookURL       string
	FundingAddress   string
	MinConfirmations int
	StuckWarningAge  time.Duration // default 1h
	StuckCriticalAge time.Duration // default 24h
}

// AlertServiceImpl implements ports.AlertService: read-only monitors over
// ledger and settlement state. It surfaces anomalies; it never mutates the
// records it inspects.
type AlertServiceImpl struct {
	withdrawalRepo ports.WithdrawalRepository
	balanceRepo    ports.BalanceRepository
	poolSvc        ports.PoolService
	chainClient    ports.ChainClient
	cfg            AlertConfig
	httpClient     *http.Client
	log            zerolog.Logger
}

// NewAlertService creates a new AlertServiceImpl.
func NewAlertService(
	withdrawalRepo ports.WithdrawalRepository,
	balanceRepo ports.BalanceRepository,
	poolSvc ports.PoolService,
	chainClient ports.ChainClient,
	cfg AlertConfig,
	log zerolog.Logger,
) *AlertServiceImpl {
	if cfg.StuckWarningAge <= 0 {
		cfg.StuckWarningAge = time.Hour
	}
	if cfg.StuckCriticalAge <= 0 {
		cfg.StuckCriticalAge = 24 * time.Hour
	}
	return &AlertServiceImpl{
		withdrawalRepo: withdrawalRepo,
		balanceRepo:    balanceRepo,
		poolSvc:        poolSvc,
		chainClient:    chainClient,
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: alertWebhookTimeout},
		log:            log,
	}
}

// RunChecks runs all monitors and best-effort delivers the findings to the
// operator webhook.
func (s *AlertServiceImpl) RunChecks(ctx context.Context) ([]ports.Alert, error) {
	now := time.Now().UTC()
	var alerts []ports.Alert

	stuck, err := s.checkStuckWithdrawals(ctx, now)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, stuck...)

	pool, err := s.checkPool(ctx, now)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, pool...)

	coverage, err := s.checkReserveCoverage(ctx, now)
	if err != nil {
		// The node being down is itself worth an alert, not a failed run.
		s.log.Warn().Err(err).Msg("reserve coverage check unavailable")
		alerts = append(alerts, ports.Alert{
			Severity: ports.AlertWarning,
			Kind:     "reserve_coverage_unavailable",
			Message:  fmt.Sprintf("could not verify reserve coverage: %v", err),
			At:       now,
		})
	} else {
		alerts = append(alerts, coverage...)
	}

	s.deliver(ctx, alerts)
	return alerts, nil
}

// checkStuckWithdrawals flags pending records past the age thresholds.
// Stuck records are surfaced to operators, never auto-failed.
func (s *AlertServiceImpl) checkStuckWithdrawals(ctx context.Context, now time.Time) ([]ports.Alert, error) {
	cutoff := now.Add(-s.cfg.StuckWarningAge)
	stuck, err := s.withdrawalRepo.ListPendingOlderThan(ctx, cutoff, 200)
	if err != nil {
		return nil, fmt.Errorf("list stuck withdrawals: %w", err)
	}

	var alerts []ports.Alert
	for i := range stuck {
		w := &stuck[i]
		severity := ports.AlertWarning
		if w.Age(now) > s.cfg.StuckCriticalAge {
			severity = ports.AlertCritical
		}
		alerts = append(alerts, ports.Alert{
			Severity: severity,
			Kind:     "stuck_withdrawal",
			Message:  fmt.Sprintf("withdrawal %s pending for %s (amount %.8f)", w.ID, w.Age(now).Round(time.Minute), w.Amount),
			At:       now,
		})
	}
	return alerts, nil
}

func (s *AlertServiceImpl) checkPool(ctx context.Context, now time.Time) ([]ports.Alert, error) {
	health, err := s.poolSvc.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("pool health: %w", err)
	}
	if health.Healthy {
		return nil, nil
	}

	available := health.Counts[domain.SeedAvailable]
	severity := ports.AlertWarning
	if available == 0 {
		severity = ports.AlertCritical
	}
	return []ports.Alert{{
		Severity: severity,
		Kind:     "pool_exhaustion",
		Message:  fmt.Sprintf("available fairness units %d below floor %d", available, health.Floor),
		At:       now,
	}}, nil
}

// checkReserveCoverage compares the funding address's confirmed balance
// against the sum of all player balances. A shortfall means the house could
// not pay everyone out.
func (s *AlertServiceImpl) checkReserveCoverage(ctx context.Context, now time.Time) ([]ports.Alert, error) {
	liabilities, err := s.balanceRepo.SumBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum balances: %w", err)
	}

	reserve, err := s.chainClient.GetAddressBalance(ctx, s.cfg.FundingAddress, s.cfg.MinConfirmations)
	if err != nil {
		return nil, fmt.Errorf("funding address balance: %w", err)
	}

	if reserve.Confirmed >= liabilities {
		return nil, nil
	}
	return []ports.Alert{{
		Severity: ports.AlertCritical,
		Kind:     "reserve_shortfall",
		Message:  fmt.Sprintf("confirmed reserve %.8f below player liabilities %.8f", reserve.Confirmed, liabilities),
		At:       now,
	}}, nil
}

// deliver POSTs the alerts to the operator webhook. Best-effort: failures
// are logged, the alerts are still returned to the caller.
func (s *AlertServiceImpl) deliver(ctx context.Context, alerts []ports.Alert) {
	if s.cfg.WebhookURL == "" || len(alerts) == 0 {
		return
	}

	payload, err := json.Marshal(map[string]any{"alerts": alerts})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal alerts")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build alert webhook request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("alert webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		s.log.Warn().Int("status", resp.StatusCode).Msg("alert webhook rejected delivery")
		return
	}
	s.log.Info().Int("count", len(alerts)).Msg("alerts delivered to webhook")
}
