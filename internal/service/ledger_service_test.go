package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/internal/core/ports/mocks"
	"crypto-casino-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc         *LedgerServiceImpl
	balanceRepo *mocks.MockBalanceRepository
	journalRepo *mocks.MockLedgerTxRepository
	settingsSvc *mocks.MockSettingsService
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		balanceRepo: mocks.NewMockBalanceRepository(ctrl),
		journalRepo: mocks.NewMockLedgerTxRepository(ctrl),
		settingsSvc: mocks.NewMockSettingsService(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewLedgerService(d.balanceRepo, d.journalRepo, d.settingsSvc, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// ==================== CreateBalance Tests ====================

func TestLedgerService_CreateBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	d.balanceRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Balance) error {
		assert.Equal(t, sessionID, b.SessionID)
		assert.Equal(t, 100.0, b.Balance)
		assert.Equal(t, 100.0, b.TotalDeposited)
		return nil
	})

	balance, err := d.svc.CreateBalance(ctx, sessionID, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.Balance)
}

func TestLedgerService_CreateBalanceNegativeSeed(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateBalance(context.Background(), uuid.New(), -1)
	require.Error(t, err)
	assertAppError(t, err, "FUND_002")
}

// ==================== Reserve Tests ====================

func TestLedgerService_ReserveSuccess(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().TryReserve(ctx, tx, sessionID, 10.0, domain.CounterWagered, 10.0).Return(true, nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerTransaction) error {
		assert.Equal(t, domain.LedgerTxReserve, e.Kind)
		assert.Equal(t, 10.0, e.Amount)
		assert.Equal(t, "wager:abc", e.Reference)
		return nil
	})

	ok, err := d.svc.Reserve(ctx, ports.ReserveRequest{
		SessionID: sessionID,
		Amount:    10,
		Counter:   domain.CounterWagered,
		Reference: "wager:abc",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLedgerService_ReserveInsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().TryReserve(ctx, tx, sessionID, 1000.0, domain.CounterWagered, 1000.0).Return(false, nil)

	// No journal entry: the refusal leaves no trace in the ledger.
	ok, err := d.svc.Reserve(ctx, ports.ReserveRequest{
		SessionID: sessionID,
		Amount:    1000,
		Counter:   domain.CounterWagered,
	})
	require.NoError(t, err)
	assert.False(t, ok, "insufficient funds is a refusal, not an error")
}

func TestLedgerService_ReserveInvalidAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ok, err := d.svc.Reserve(context.Background(), ports.ReserveRequest{
		SessionID: uuid.New(),
		Amount:    0,
		Counter:   domain.CounterWagered,
	})
	assert.False(t, ok)
	require.Error(t, err)
	assertAppError(t, err, "FUND_002")
}

func TestLedgerService_ReserveInvalidCounter(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	// A reserve may never increment total_won.
	ok, err := d.svc.Reserve(context.Background(), ports.ReserveRequest{
		SessionID: uuid.New(),
		Amount:    5,
		Counter:   domain.CounterWon,
	})
	assert.False(t, ok)
	require.Error(t, err)
	assertAppError(t, err, "FUND_006")
}

func TestLedgerService_ReserveSeparateCounterAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()
	tx := &mockTx{}

	// Withdrawal reservation: amount+fee held, counter tracks amount only.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().TryReserve(ctx, tx, sessionID, 50.0001, domain.CounterWithdrawn, 50.0).Return(true, nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	ok, err := d.svc.Reserve(ctx, ports.ReserveRequest{
		SessionID:     sessionID,
		Amount:        50.0001,
		Counter:       domain.CounterWithdrawn,
		CounterAmount: 50,
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

// ==================== Credit Tests ====================

func TestLedgerService_CreditSuccess(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().Credit(ctx, tx, sessionID, 19.8, domain.CounterWon).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerTransaction) error {
		assert.Equal(t, domain.LedgerTxCredit, e.Kind)
		return nil
	})

	err := d.svc.Credit(ctx, ports.CreditRequest{
		SessionID: sessionID,
		Amount:    19.8,
		Counter:   domain.CounterWon,
		Reference: "wager:abc",
	})
	require.NoError(t, err)
}

func TestLedgerService_CreditInvalidCounter(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	err := d.svc.Credit(context.Background(), ports.CreditRequest{
		SessionID: uuid.New(),
		Amount:    10,
		Counter:   domain.CounterWagered,
	})
	require.Error(t, err)
	assertAppError(t, err, "FUND_006")
}

// ==================== Release Tests ====================

func TestLedgerService_ReleaseSuccess(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().Release(ctx, tx, sessionID, 50.0001, domain.CounterWithdrawn, 50.0).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerTransaction) error {
		assert.Equal(t, domain.LedgerTxRelease, e.Kind)
		assert.Equal(t, 50.0001, e.Amount)
		assert.Equal(t, 50.0, e.CounterAmount)
		return nil
	})

	err := d.svc.Release(ctx, ports.ReleaseRequest{
		SessionID:     sessionID,
		Amount:        50.0001,
		Counter:       domain.CounterWithdrawn,
		CounterAmount: 50,
		Reference:     "withdrawal:xyz",
	})
	require.NoError(t, err)
}

func TestLedgerService_ReleaseRepoFailure(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().Release(ctx, tx, gomock.Any(), 5.0, domain.CounterWagered, 5.0).Return(errors.New("db down"))

	err := d.svc.Release(ctx, ports.ReleaseRequest{
		SessionID: uuid.New(),
		Amount:    5,
		Counter:   domain.CounterWagered,
	})
	require.Error(t, err)
	assertAppError(t, err, "SYS_001")
}

// ==================== CheckWagerEligibility Tests ====================

func TestLedgerService_EligibilityOK(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	d.balanceRepo.EXPECT().Get(ctx, sessionID).Return(&domain.Balance{
		SessionID:    sessionID,
		Balance:      80,
		TotalWagered: 50,
		TotalWon:     30,
		CreatedAt:    time.Now().Add(-time.Hour),
	}, nil)
	d.settingsSvc.EXPECT().SessionDurationCap(ctx).Return(12 * time.Hour)
	d.settingsSvc.EXPECT().LossLimit(ctx).Return(500.0)

	assert.NoError(t, d.svc.CheckWagerEligibility(ctx, sessionID, 10))
}

func TestLedgerService_EligibilityLossLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	// Net loss 495 + stake 10 exceeds the 500 limit.
	d.balanceRepo.EXPECT().Get(ctx, sessionID).Return(&domain.Balance{
		SessionID:    sessionID,
		TotalWagered: 595,
		TotalWon:     100,
		CreatedAt:    time.Now().Add(-time.Hour),
	}, nil)
	d.settingsSvc.EXPECT().SessionDurationCap(ctx).Return(12 * time.Hour)
	d.settingsSvc.EXPECT().LossLimit(ctx).Return(500.0)

	err := d.svc.CheckWagerEligibility(ctx, sessionID, 10)
	require.Error(t, err)
	assertAppError(t, err, "FUND_004")
}

func TestLedgerService_EligibilityDurationCap(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	d.balanceRepo.EXPECT().Get(ctx, sessionID).Return(&domain.Balance{
		SessionID: sessionID,
		CreatedAt: time.Now().Add(-13 * time.Hour),
	}, nil)
	d.settingsSvc.EXPECT().SessionDurationCap(ctx).Return(12 * time.Hour)

	err := d.svc.CheckWagerEligibility(ctx, sessionID, 10)
	require.Error(t, err)
	assertAppError(t, err, "FUND_005")
}

func TestLedgerService_EligibilityCapsDisabled(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	// Zero-valued caps disable both checks.
	d.balanceRepo.EXPECT().Get(ctx, sessionID).Return(&domain.Balance{
		SessionID:    sessionID,
		TotalWagered: 100000,
		CreatedAt:    time.Now().Add(-100 * time.Hour),
	}, nil)
	d.settingsSvc.EXPECT().SessionDurationCap(ctx).Return(time.Duration(0))
	d.settingsSvc.EXPECT().LossLimit(ctx).Return(0.0)

	assert.NoError(t, d.svc.CheckWagerEligibility(ctx, sessionID, 10))
}

func TestLedgerService_EligibilityUnknownSession(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sessionID := uuid.New()

	d.balanceRepo.EXPECT().Get(ctx, sessionID).Return(nil, nil)

	err := d.svc.CheckWagerEligibility(ctx, sessionID, 10)
	require.Error(t, err)
	assertAppError(t, err, "FUND_003")
}
