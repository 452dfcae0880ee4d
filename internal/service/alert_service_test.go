package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertTestDeps struct {
	svc            *AlertServiceImpl
	withdrawalRepo *mocks.MockWithdrawalRepository
	balanceRepo    *mocks.MockBalanceRepository
	poolSvc        *mocks.MockPoolService
	chainClient    *mocks.MockChainClient
	ctrl           *gomock.Controller
}

func setupAlertService(t *testing.T, webhookURL string) *alertTestDeps {
	ctrl := gomock.NewController(t)
	d := &alertTestDeps{
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
		balanceRepo:    mocks.NewMockBalanceRepository(ctrl),
		poolSvc:        mocks.NewMockPoolService(ctrl),
		chainClient:    mocks.NewMockChainClient(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewAlertService(
		d.withdrawalRepo, d.balanceRepo, d.poolSvc, d.chainClient,
		AlertConfig{
			WebhookURL:       webhookURL,
			FundingAddress:   "house-addr",
			MinConfirmations: 1,
		},
		zerolog.Nop(),
	)
	return d
}

// expectQuietChecks makes every monitor report nothing wrong.
func (d *alertTestDeps) expectQuietChecks(ctx context.Context) {
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(100.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 1000}, nil)
}

func TestAlertService_RunChecks_AllQuiet(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.expectQuietChecks(ctx)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertService_RunChecks_StuckWithdrawalSeverity(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := time.Now().UTC()
	// Default thresholds: warn past 1h, escalate past 24h.
	warned := domain.Withdrawal{ID: uuid.New(), Amount: 10, Status: domain.WithdrawalPending, CreatedAt: now.Add(-2 * time.Hour)}
	critical := domain.Withdrawal{ID: uuid.New(), Amount: 20, Status: domain.WithdrawalPending, CreatedAt: now.Add(-30 * time.Hour)}

	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return([]domain.Withdrawal{warned, critical}, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(100.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 1000}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "stuck_withdrawal", alerts[0].Kind)
	assert.Equal(t, ports.AlertWarning, alerts[0].Severity)
	assert.Equal(t, ports.AlertCritical, alerts[1].Severity)
}

func TestAlertService_RunChecks_PoolExhaustion(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{
		Healthy: false,
		Floor:   5,
		Counts:  map[domain.SeedStatus]int{domain.SeedAvailable: 2},
	}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(100.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 1000}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "pool_exhaustion", alerts[0].Kind)
	assert.Equal(t, ports.AlertWarning, alerts[0].Severity, "units remain, so not yet critical")
}

func TestAlertService_RunChecks_PoolEmptyIsCritical(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{
		Healthy: false,
		Floor:   5,
		Counts:  map[domain.SeedStatus]int{domain.SeedAvailable: 0},
	}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(100.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 1000}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, ports.AlertCritical, alerts[0].Severity)
}

func TestAlertService_RunChecks_ReserveShortfall(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(5000.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 4200}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "reserve_shortfall", alerts[0].Kind)
	assert.Equal(t, ports.AlertCritical, alerts[0].Severity)
}

func TestAlertService_RunChecks_NodeOutageBecomesWarning(t *testing.T) {
	d := setupAlertService(t, "")
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(100.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(nil, errors.New("node unreachable"))

	// The run still succeeds; the blind spot itself is the finding.
	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "reserve_coverage_unavailable", alerts[0].Kind)
	assert.Equal(t, ports.AlertWarning, alerts[0].Severity)
}

func TestAlertService_RunChecks_WebhookDelivery(t *testing.T) {
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := setupAlertService(t, server.URL)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(5000.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 10}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	var payload struct {
		Alerts []ports.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(<-received, &payload))
	require.Len(t, payload.Alerts, 1)
	assert.Equal(t, "reserve_shortfall", payload.Alerts[0].Kind)
}

func TestAlertService_RunChecks_WebhookFailureTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := setupAlertService(t, server.URL)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.withdrawalRepo.EXPECT().ListPendingOlderThan(ctx, gomock.Any(), 200).Return(nil, nil)
	d.poolSvc.EXPECT().Health(ctx).Return(&ports.PoolHealth{Healthy: true}, nil)
	d.balanceRepo.EXPECT().SumBalances(ctx).Return(5000.0, nil)
	d.chainClient.EXPECT().GetAddressBalance(ctx, "house-addr", 1).Return(&ports.AddressBalance{Confirmed: 10}, nil)

	alerts, err := d.svc.RunChecks(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 1, "delivery failure never drops the findings")
}
