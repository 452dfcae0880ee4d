package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const withdrawalIdemTTL = 24 * time.Hour

// SettlementConfig carries the broadcast parameters.
type SettlementConfig struct {
	FundingAddress string
	SendTimeout    time.Duration
	PollBatchSize  int
}

// SettlementServiceImpl implements ports.SettlementService. It owns the
// withdrawal state machine end to end: reservation, operator approval,
// broadcast with bounded fee escalation, confirmation polling and the
// exactly-once refund compensation on failure.
type SettlementServiceImpl struct {
	withdrawalRepo ports.WithdrawalRepository
	balanceRepo    ports.BalanceRepository
	journalRepo    ports.LedgerTxRepository
	killSwitch     ports.KillSwitchService
	settingsSvc    ports.SettingsService
	chainClient    ports.ChainClient
	idemCache      ports.IdempotencyCache
	auditSvc       ports.AuditService
	transactor     ports.DBTransactor
	cfg            SettlementConfig
	log            zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	withdrawalRepo ports.WithdrawalRepository,
	balanceRepo ports.BalanceRepository,
	journalRepo ports.LedgerTxRepository,
	killSwitch ports.KillSwitchService,
	settingsSvc ports.SettingsService,
	chainClient ports.ChainClient,
	idemCache ports.IdempotencyCache,
	auditSvc ports.AuditService,
	transactor ports.DBTransactor,
	cfg SettlementConfig,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		withdrawalRepo: withdrawalRepo,
		balanceRepo:    balanceRepo,
		journalRepo:    journalRepo,
		killSwitch:     killSwitch,
		settingsSvc:    settingsSvc,
		chainClient:    chainClient,
		idemCache:      idemCache,
		auditSvc:       auditSvc,
		transactor:     transactor,
		cfg:            cfg,
		log:            log,
	}
}

// Request reserves amount+fee and creates the withdrawal record in one
// database transaction. Duplicate idempotency keys return the existing
// record without a second reservation.
func (s *SettlementServiceImpl) Request(ctx context.Context, in ports.WithdrawalRequestInput) (*domain.Withdrawal, error) {
	if err := s.killSwitch.Guard(ctx); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if in.Address == "" {
		return nil, apperror.ErrInvalidAddress()
	}
	if in.IdempotencyKey == "" {
		return nil, apperror.Validation("idempotency key is required")
	}

	// Layer 1: redis fast path.
	cached, err := s.idemCache.Get(ctx, in.IdempotencyKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", in.IdempotencyKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedWithdrawal(cached)
	}

	// Layer 2: the unique key in postgres is the source of truth.
	existing, err := s.withdrawalRepo.GetByIdempotencyKey(ctx, in.IdempotencyKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("idempotency lookup: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	return s.createWithdrawal(ctx, in, nil)
}

// createWithdrawal is shared by Request and Requeue: reserve, insert,
// journal, then broadcast if no approval is required.
func (s *SettlementServiceImpl) createWithdrawal(ctx context.Context, in ports.WithdrawalRequestInput, requeuedFrom *uuid.UUID) (*domain.Withdrawal, error) {
	amount := money.Round(in.Amount)
	fee := money.Round(s.settingsSvc.WithdrawalFee(ctx))
	reserved := money.Round(amount + fee)

	status := domain.WithdrawalPending
	if threshold := s.settingsSvc.ApprovalThreshold(ctx); threshold > 0 && money.GTE(amount, threshold) {
		status = domain.WithdrawalPendingApproval
	}

	now := time.Now().UTC()
	w := &domain.Withdrawal{
		ID:             uuid.New(),
		SessionID:      in.SessionID,
		Amount:         amount,
		Fee:            fee,
		Address:        in.Address,
		IdempotencyKey: in.IdempotencyKey,
		Status:         status,
		RequeuedFrom:   requeuedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.balanceRepo.TryReserve(ctx, dbTx, in.SessionID, reserved, domain.CounterWithdrawn, amount)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reserve withdrawal: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInsufficientFunds()
	}

	inserted, err := s.withdrawalRepo.Create(ctx, dbTx, w)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create withdrawal: %w", err))
	}
	if !inserted {
		// Lost a race on the unique key; the rollback undoes our reservation
		// and the winner's record is the answer.
		if err := dbTx.Rollback(ctx); err != nil {
			s.log.Warn().Err(err).Msg("rollback after idempotency race")
		}
		existing, err := s.withdrawalRepo.GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("idempotency lookup: %w", err))
		}
		if existing == nil {
			return nil, apperror.InternalError(fmt.Errorf("withdrawal with key %s vanished", in.IdempotencyKey))
		}
		return existing, nil
	}

	if err := s.appendJournal(ctx, dbTx, w.SessionID, domain.LedgerTxReserve, reserved, amount, w.ID); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit withdrawal: %w", err))
	}

	s.cacheWithdrawal(ctx, w)

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("session_id", w.SessionID.String()).
		Float64("amount", amount).
		Float64("fee", fee).
		Str("status", string(w.Status)).
		Msg("withdrawal requested")

	if w.Status == domain.WithdrawalPending {
		return s.broadcast(ctx, w)
	}
	return w, nil
}

// Approve moves a pending_approval record to pending and broadcasts it.
func (s *SettlementServiceImpl) Approve(ctx context.Context, withdrawalID uuid.UUID, actor string) (*domain.Withdrawal, error) {
	w, err := s.Get(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.withdrawalRepo.Transition(ctx, dbTx, withdrawalID, domain.WithdrawalPendingApproval, domain.WithdrawalPending, ports.WithdrawalUpdate{})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("approve transition: %w", err))
	}
	if !ok {
		return nil, apperror.ErrWithdrawalNotApprovable()
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit approval: %w", err))
	}

	s.auditSvc.Record(ctx, actor, "withdrawal_approved", withdrawalID.String())
	w.Status = domain.WithdrawalPending

	return s.broadcast(ctx, w)
}

// Reject fails a pending_approval record and refunds the reservation.
func (s *SettlementServiceImpl) Reject(ctx context.Context, withdrawalID uuid.UUID, actor, reason string) (*domain.Withdrawal, error) {
	w, err := s.Get(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.WithdrawalPendingApproval {
		return nil, apperror.ErrWithdrawalNotApprovable()
	}

	failed, err := s.compensateAndFail(ctx, w, domain.WithdrawalPendingApproval, "rejected by operator: "+reason)
	if err != nil {
		return nil, err
	}
	if !failed {
		return nil, apperror.ErrWithdrawalNotApprovable()
	}

	s.auditSvc.Record(ctx, actor, "withdrawal_rejected", fmt.Sprintf("%s: %s", withdrawalID, reason))

	return s.Get(ctx, withdrawalID)
}

// broadcast submits the withdrawal to the node. The distinguished
// unpaid-action-limit rejection escalates the broadcast fee and retries up
// to maxSendAttempts; a timeout leaves the record pending for the poller;
// any other rejection refunds and fails the record. The escalated portion of
// the fee is borne by the funding pool, so the player refund on a later
// failure stays exactly amount+fee.
func (s *SettlementServiceImpl) broadcast(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
	sendFee := w.Fee
	feeStep := s.settingsSvc.FeeStep(ctx)
	maxAttempts := s.settingsSvc.MaxSendAttempts(ctx)
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
		operationID, err := s.chainClient.Send(sendCtx, ports.SendRequest{
			From:   s.cfg.FundingAddress,
			To:     w.Address,
			Amount: w.Amount,
			Memo:   "withdrawal:" + w.ID.String(),
			Fee:    sendFee,
		})
		cancel()

		if err == nil {
			return s.markBroadcast(ctx, w, operationID)
		}

		var limitErr *ports.UnpaidActionLimitError
		if errors.As(err, &limitErr) {
			bump := feeStep * float64(limitErr.Actions-limitErr.Limit)
			sendFee = money.Round(sendFee + bump)
			lastErr = err
			s.log.Warn().
				Str("withdrawal_id", w.ID.String()).
				Int("attempt", attempt).
				Int("actions", limitErr.Actions).
				Int("limit", limitErr.Limit).
				Float64("next_fee", sendFee).
				Msg("unpaid action limit hit, escalating fee")
			continue
		}

		if isTimeout(err) {
			// No definitive answer from the node. The record stays pending;
			// the poller or an operator picks it up.
			s.log.Warn().
				Str("withdrawal_id", w.ID.String()).
				Err(err).
				Msg("broadcast timed out, leaving withdrawal pending")
			return w, nil
		}

		// Definitive rejection: refund and fail.
		reason := err.Error()
		if _, ferr := s.compensateAndFail(ctx, w, domain.WithdrawalPending, reason); ferr != nil {
			return nil, ferr
		}
		return s.Get(ctx, w.ID)
	}

	// Fee escalation exhausted.
	reason := fmt.Sprintf("fee escalation exhausted after %d attempts: %v", maxAttempts, lastErr)
	if _, ferr := s.compensateAndFail(ctx, w, domain.WithdrawalPending, reason); ferr != nil {
		return nil, ferr
	}
	return s.Get(ctx, w.ID)
}

func (s *SettlementServiceImpl) markBroadcast(ctx context.Context, w *domain.Withdrawal, operationID string) (*domain.Withdrawal, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.withdrawalRepo.Transition(ctx, dbTx, w.ID, domain.WithdrawalPending, domain.WithdrawalPending, ports.WithdrawalUpdate{
		OperationID: &operationID,
	})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("record operation id: %w", err))
	}
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("withdrawal %s left pending state during broadcast", w.ID))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit operation id: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("operation_id", operationID).
		Msg("withdrawal broadcast")

	w.OperationID = operationID
	return w, nil
}

// Poll refreshes one pending record from the node.
func (s *SettlementServiceImpl) Poll(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.Get(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.WithdrawalPending || w.OperationID == "" {
		return w, nil
	}

	if err := s.pollPending(ctx, w); err != nil {
		return nil, err
	}
	return s.Get(ctx, withdrawalID)
}

// PollOnce refreshes every pending record that has an operation id.
func (s *SettlementServiceImpl) PollOnce(ctx context.Context) error {
	batch := s.cfg.PollBatchSize
	if batch <= 0 {
		batch = 100
	}

	pending, err := s.withdrawalRepo.ListByStatus(ctx, domain.WithdrawalPending, batch)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("list pending withdrawals: %w", err))
	}

	for i := range pending {
		w := &pending[i]
		if w.OperationID == "" {
			continue
		}
		if err := s.pollPending(ctx, w); err != nil {
			s.log.Warn().Err(err).Str("withdrawal_id", w.ID.String()).Msg("withdrawal poll failed")
		}
	}
	return nil
}

func (s *SettlementServiceImpl) pollPending(ctx context.Context, w *domain.Withdrawal) error {
	status, err := s.chainClient.GetOperationStatus(ctx, w.OperationID)
	if err != nil {
		return apperror.ErrNodeUnavailable(fmt.Errorf("operation status: %w", err))
	}

	switch status.Status {
	case ports.OperationSuccess:
		return s.confirm(ctx, w, status.TxID)
	case ports.OperationFailed:
		reason := status.Error
		if reason == "" {
			reason = "operation failed on node"
		}
		_, err := s.compensateAndFail(ctx, w, domain.WithdrawalPending, reason)
		return err
	default:
		// queued/executing: nothing to record yet.
		return nil
	}
}

func (s *SettlementServiceImpl) confirm(ctx context.Context, w *domain.Withdrawal, txHash string) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.withdrawalRepo.Transition(ctx, dbTx, w.ID, domain.WithdrawalPending, domain.WithdrawalConfirmed, ports.WithdrawalUpdate{
		TxHash: &txHash,
	})
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("confirm transition: %w", err))
	}
	if !ok {
		// Another poller confirmed or failed it first.
		return nil
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit confirmation: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("tx_hash", txHash).
		Msg("withdrawal confirmed")
	return nil
}

// compensateAndFail refunds amount+fee, unwinds total_withdrawn by exactly
// amount and marks the record failed, all in one database transaction. The
// guarded transition makes the refund run at most once no matter how many
// pollers race.
func (s *SettlementServiceImpl) compensateAndFail(ctx context.Context, w *domain.Withdrawal, from domain.WithdrawalStatus, reason string) (bool, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ok, err := s.withdrawalRepo.Transition(ctx, dbTx, w.ID, from, domain.WithdrawalFailed, ports.WithdrawalUpdate{
		FailureReason: &reason,
	})
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("fail transition: %w", err))
	}
	if !ok {
		return false, nil
	}

	refund := money.Round(w.Reserved())
	if err := s.balanceRepo.Release(ctx, dbTx, w.SessionID, refund, domain.CounterWithdrawn, w.Amount); err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("refund reservation: %w", err))
	}
	if err := s.appendJournal(ctx, dbTx, w.SessionID, domain.LedgerTxRelease, refund, w.Amount, w.ID); err != nil {
		return false, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("commit failure: %w", err))
	}

	s.log.Warn().
		Str("withdrawal_id", w.ID.String()).
		Float64("refund", refund).
		Str("reason", reason).
		Msg("withdrawal failed, reservation refunded")
	return true, nil
}

// Requeue creates a brand-new withdrawal for a failed one. The failed record
// is never resurrected; the new record carries a fresh reservation and links
// back via requeued_from.
func (s *SettlementServiceImpl) Requeue(ctx context.Context, failedID uuid.UUID, idempotencyKey string) (*domain.Withdrawal, error) {
	if err := s.killSwitch.Guard(ctx); err != nil {
		return nil, err
	}

	failed, err := s.Get(ctx, failedID)
	if err != nil {
		return nil, err
	}
	if failed.Status != domain.WithdrawalFailed {
		return nil, apperror.ErrWithdrawalNotRequeueable()
	}
	if idempotencyKey == "" || idempotencyKey == failed.IdempotencyKey {
		return nil, apperror.Validation("requeue requires a fresh idempotency key")
	}

	existing, err := s.withdrawalRepo.GetByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("idempotency lookup: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	return s.createWithdrawal(ctx, ports.WithdrawalRequestInput{
		SessionID:      failed.SessionID,
		Amount:         failed.Amount,
		Address:        failed.Address,
		IdempotencyKey: idempotencyKey,
	}, &failed.ID)
}

func (s *SettlementServiceImpl) Get(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get withdrawal: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWithdrawalNotFound()
	}
	return w, nil
}

func (s *SettlementServiceImpl) appendJournal(ctx context.Context, dbTx pgx.Tx, sessionID uuid.UUID, kind domain.LedgerTxKind, amount, counterAmount float64, withdrawalID uuid.UUID) error {
	entry := &domain.LedgerTransaction{
		ID:            uuid.New(),
		SessionID:     sessionID,
		Kind:          kind,
		Amount:        amount,
		CounterField:  domain.CounterWithdrawn,
		CounterAmount: counterAmount,
		Reference:     "withdrawal:" + withdrawalID.String(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.journalRepo.Append(ctx, dbTx, entry); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("append journal entry: %w", err))
	}
	return nil
}

func (s *SettlementServiceImpl) cacheWithdrawal(ctx context.Context, w *domain.Withdrawal) {
	payload, err := json.Marshal(w)
	if err != nil {
		return
	}
	if err := s.idemCache.Set(ctx, w.IdempotencyKey, payload, withdrawalIdemTTL); err != nil {
		s.log.Warn().Err(err).Str("key", w.IdempotencyKey).Msg("failed to cache withdrawal idempotency")
	}
}

func (s *SettlementServiceImpl) unmarshalCachedWithdrawal(data []byte) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	if err := json.Unmarshal(data, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached withdrawal: %w", err))
	}
	return w, nil
}

// isTimeout distinguishes "no definitive answer" from a rejection.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
