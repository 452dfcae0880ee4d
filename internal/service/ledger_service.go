package service

import (
	"context"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Every mutation runs the
// guarded repository UPDATE and appends its journal entry inside one
// database transaction, so the balance and the journal can never disagree.
type LedgerServiceImpl struct {
	balanceRepo ports.BalanceRepository
	journalRepo ports.LedgerTxRepository
	settingsSvc ports.SettingsService
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	balanceRepo ports.BalanceRepository,
	journalRepo ports.LedgerTxRepository,
	settingsSvc ports.SettingsService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		balanceRepo: balanceRepo,
		journalRepo: journalRepo,
		settingsSvc: settingsSvc,
		transactor:  transactor,
		log:         log,
	}
}

// CreateBalance creates the session's balance row, seeded with demo funds.
func (s *LedgerServiceImpl) CreateBalance(ctx context.Context, sessionID uuid.UUID, demoSeed float64) (*domain.Balance, error) {
	if demoSeed < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := time.Now().UTC()
	balance := &domain.Balance{
		SessionID:      sessionID,
		Balance:        money.Round(demoSeed),
		TotalDeposited: money.Round(demoSeed),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.balanceRepo.Create(ctx, balance); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create balance: %w", err))
	}

	return balance, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, sessionID uuid.UUID) (*domain.Balance, error) {
	balance, err := s.balanceRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrBalanceNotFound()
	}
	return balance, nil
}

// Reserve atomically holds req.Amount against the balance. Returns false,
// with no mutation and no journal entry, when funds are insufficient.
func (s *LedgerServiceImpl) Reserve(ctx context.Context, req ports.ReserveRequest) (bool, error) {
	if req.Amount <= 0 {
		return false, apperror.ErrInvalidAmount()
	}
	if !domain.ValidReserveCounter(req.Counter) {
		return false, apperror.ErrInvalidCounterField()
	}

	amount := money.Round(req.Amount)
	counterAmount := money.Round(req.CounterAmount)
	if counterAmount == 0 {
		counterAmount = amount
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.balanceRepo.TryReserve(ctx, dbTx, req.SessionID, amount, req.Counter, counterAmount)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("reserve: %w", err))
	}
	if !ok {
		return false, nil
	}

	if err := s.appendEntry(ctx, dbTx, req.SessionID, domain.LedgerTxReserve, amount, req.Counter, counterAmount, req.Reference); err != nil {
		return false, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("commit reserve: %w", err))
	}

	s.log.Debug().
		Str("session_id", req.SessionID.String()).
		Float64("amount", amount).
		Str("reference", req.Reference).
		Msg("funds reserved")

	return true, nil
}

// Credit adds req.Amount to the balance unconditionally.
func (s *LedgerServiceImpl) Credit(ctx context.Context, req ports.CreditRequest) error {
	if req.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if !domain.ValidCreditCounter(req.Counter) {
		return apperror.ErrInvalidCounterField()
	}

	amount := money.Round(req.Amount)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balanceRepo.Credit(ctx, dbTx, req.SessionID, amount, req.Counter); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("credit: %w", err))
	}

	if err := s.appendEntry(ctx, dbTx, req.SessionID, domain.LedgerTxCredit, amount, req.Counter, amount, req.Reference); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit credit: %w", err))
	}

	s.log.Debug().
		Str("session_id", req.SessionID.String()).
		Float64("amount", amount).
		Str("reference", req.Reference).
		Msg("funds credited")

	return nil
}

// Release returns a previously reserved amount and unwinds the counter by
// exactly the amount the reservation added.
func (s *LedgerServiceImpl) Release(ctx context.Context, req ports.ReleaseRequest) error {
	if req.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if !domain.ValidReserveCounter(req.Counter) {
		return apperror.ErrInvalidCounterField()
	}

	amount := money.Round(req.Amount)
	counterAmount := money.Round(req.CounterAmount)
	if counterAmount == 0 {
		counterAmount = amount
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balanceRepo.Release(ctx, dbTx, req.SessionID, amount, req.Counter, counterAmount); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("release: %w", err))
	}

	if err := s.appendEntry(ctx, dbTx, req.SessionID, domain.LedgerTxRelease, amount, req.Counter, counterAmount, req.Reference); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit release: %w", err))
	}

	s.log.Debug().
		Str("session_id", req.SessionID.String()).
		Float64("amount", amount).
		Str("reference", req.Reference).
		Msg("reservation released")

	return nil
}

// CheckWagerEligibility evaluates the session-duration and net-loss caps.
// The stake itself counts toward the loss limit: a wager that could push
// realized losses past the cap is refused up front.
func (s *LedgerServiceImpl) CheckWagerEligibility(ctx context.Context, sessionID uuid.UUID, stake float64) error {
	balance, err := s.GetBalance(ctx, sessionID)
	if err != nil {
		return err
	}

	if durationCap := s.settingsSvc.SessionDurationCap(ctx); durationCap > 0 {
		if time.Since(balance.CreatedAt) > durationCap {
			return apperror.ErrSessionDurationExceeded()
		}
	}

	if limit := s.settingsSvc.LossLimit(ctx); limit > 0 {
		if balance.NetLoss()+stake > limit+money.Tolerance {
			return apperror.ErrLossLimitReached()
		}
	}

	return nil
}

func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	entries, err := s.journalRepo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list ledger transactions: %w", err))
	}
	return entries, nil
}

func (s *LedgerServiceImpl) appendEntry(ctx context.Context, dbTx pgx.Tx, sessionID uuid.UUID, kind domain.LedgerTxKind, amount float64, counter domain.CounterField, counterAmount float64, reference string) error {
	entry := &domain.LedgerTransaction{
		ID:            uuid.New(),
		SessionID:     sessionID,
		Kind:          kind,
		Amount:        amount,
		CounterField:  counter,
		CounterAmount: counterAmount,
		Reference:     reference,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.journalRepo.Append(ctx, dbTx, entry); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("append journal entry: %w", err))
	}
	return nil
}
