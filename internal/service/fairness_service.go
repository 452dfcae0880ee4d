package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FairnessConfig carries the anchoring parameters for committed randomness.
type FairnessConfig struct {
	Mode           domain.FairnessMode
	FundingAddress string
	AnchorAmount   float64 // self-transfer carrying the commitment memo
	AnchorFee      float64
	SeedTTL        time.Duration // availability window before expiry
}

// FairnessServiceImpl implements ports.FairnessService. Server seeds are
// generated and anchored ahead of play; a hand can only consume randomness
// whose commitment already exists on-chain. When no committed randomness is
// available the wager is refused, never resolved with a fallback source.
type FairnessServiceImpl struct {
	fairnessRepo ports.FairnessRepository
	ledgerSvc    ports.LedgerService
	killSwitch   ports.KillSwitchService
	chainClient  ports.ChainClient
	encSvc       ports.EncryptionService
	transactor   ports.DBTransactor
	cfg          FairnessConfig
	log          zerolog.Logger
}

// NewFairnessService creates a new FairnessServiceImpl.
func NewFairnessService(
	fairnessRepo ports.FairnessRepository,
	ledgerSvc ports.LedgerService,
	killSwitch ports.KillSwitchService,
	chainClient ports.ChainClient,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	cfg FairnessConfig,
	log zerolog.Logger,
) *FairnessServiceImpl {
	return &FairnessServiceImpl{
		fairnessRepo: fairnessRepo,
		ledgerSvc:    ledgerSvc,
		killSwitch:   killSwitch,
		chainClient:  chainClient,
		encSvc:       encSvc,
		transactor:   transactor,
		cfg:          cfg,
		log:          log,
	}
}

func (s *FairnessServiceImpl) Mode() domain.FairnessMode {
	return s.cfg.Mode
}

// CreateAnchoredSeed generates one fairness unit and anchors its commitment
// hash on-chain before inserting it. The chain send happens first: a unit
// that exists in the database always has an anchoring operation behind it.
func (s *FairnessServiceImpl) CreateAnchoredSeed(ctx context.Context) error {
	serverSeed, err := domain.NewServerSeed()
	if err != nil {
		return apperror.InternalError(err)
	}
	seedHash := domain.HashServerSeed(serverSeed)

	seedEnc, err := s.encSvc.Encrypt(serverSeed)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt server seed: %w", err))
	}

	unitID := uuid.New()
	operationID, err := s.chainClient.Send(ctx, ports.SendRequest{
		From:   s.cfg.FundingAddress,
		To:     s.cfg.FundingAddress,
		Amount: s.cfg.AnchorAmount,
		Memo:   fmt.Sprintf("fairness:%s:%s", unitID, seedHash),
		Fee:    s.cfg.AnchorFee,
	})
	if err != nil {
		return apperror.ErrNodeUnavailable(fmt.Errorf("anchor commitment: %w", err))
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.SeedTTL)

	switch s.cfg.Mode {
	case domain.ModeSessionStream:
		stream := &domain.SeedStream{
			ID:                unitID,
			ServerSeedEnc:     seedEnc,
			ServerSeedHash:    seedHash,
			Status:            domain.SeedAvailable,
			AnchorOperationID: operationID,
			ExpiresAt:         expiresAt,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := s.fairnessRepo.CreateStream(ctx, stream); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create seed stream: %w", err))
		}
	default:
		commitment := &domain.Commitment{
			ID:                unitID,
			ServerSeedEnc:     seedEnc,
			ServerSeedHash:    seedHash,
			Status:            domain.SeedAvailable,
			AnchorOperationID: operationID,
			ExpiresAt:         expiresAt,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := s.fairnessRepo.CreateCommitment(ctx, commitment); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create commitment: %w", err))
		}
	}

	s.log.Info().
		Str("unit_id", unitID.String()).
		Str("seed_hash", seedHash).
		Str("operation_id", operationID).
		Msg("anchored seed created")

	return nil
}

// EnsureStream returns the session's assigned stream, claiming one from the
// pool on first use.
func (s *FairnessServiceImpl) EnsureStream(ctx context.Context, sessionID uuid.UUID) (*domain.SeedStream, error) {
	stream, err := s.fairnessRepo.ActiveStream(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load active stream: %w", err))
	}
	if stream != nil {
		return stream, nil
	}

	clientSeed, err := defaultClientSeed()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	return s.claimStream(ctx, sessionID, clientSeed)
}

func (s *FairnessServiceImpl) claimStream(ctx context.Context, sessionID uuid.UUID, clientSeed string) (*domain.SeedStream, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	stream, err := s.fairnessRepo.ClaimStream(ctx, dbTx, sessionID, clientSeed, time.Now().UTC())
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("claim stream: %w", err))
	}
	if stream == nil {
		return nil, apperror.ErrFairnessUnavailable()
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit claim: %w", err))
	}

	s.log.Info().
		Str("session_id", sessionID.String()).
		Str("stream_id", stream.ID.String()).
		Msg("seed stream assigned")

	return stream, nil
}

// SetClientSeed changes the stream's client seed. Locked once the first hand
// has resolved; the player rotates instead.
func (s *FairnessServiceImpl) SetClientSeed(ctx context.Context, sessionID uuid.UUID, seed string) error {
	stream, err := s.fairnessRepo.ActiveStream(ctx, sessionID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("load active stream: %w", err))
	}
	if stream == nil {
		return apperror.ErrNoActiveStream()
	}

	ok, err := s.fairnessRepo.SetClientSeed(ctx, stream.ID, seed)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("set client seed: %w", err))
	}
	if !ok {
		return apperror.ErrClientSeedLocked()
	}
	return nil
}

// RotateSeed reveals the session's current stream and assigns a fresh one in
// a single database transaction. The retired seed is decrypted and returned
// so the player can verify every hand it resolved.
func (s *FairnessServiceImpl) RotateSeed(ctx context.Context, sessionID uuid.UUID, nextClientSeed string) (*domain.RevealBundle, *domain.PublicFairnessState, error) {
	current, err := s.fairnessRepo.ActiveStream(ctx, sessionID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("load active stream: %w", err))
	}
	if current == nil {
		return nil, nil, apperror.ErrNoActiveStream()
	}

	if nextClientSeed == "" {
		nextClientSeed, err = defaultClientSeed()
		if err != nil {
			return nil, nil, apperror.InternalError(err)
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The bundle is built from the row the reveal returned, not the earlier
	// read: an in-flight hand may have advanced the nonce in between, and
	// that last hand must still fall inside what the bundle verifies.
	retired, err := s.fairnessRepo.RevealStream(ctx, dbTx, current.ID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("reveal stream: %w", err))
	}
	if retired == nil {
		return nil, nil, apperror.ErrStreamConflict()
	}

	next, err := s.fairnessRepo.ClaimStream(ctx, dbTx, sessionID, nextClientSeed, time.Now().UTC())
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("claim next stream: %w", err))
	}
	if next == nil {
		return nil, nil, apperror.ErrFairnessUnavailable()
	}

	serverSeed, err := s.encSvc.Decrypt(retired.ServerSeedEnc)
	if err != nil {
		return nil, nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt retired seed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("commit rotation: %w", err))
	}

	s.log.Info().
		Str("session_id", sessionID.String()).
		Str("retired_stream", retired.ID.String()).
		Str("next_stream", next.ID.String()).
		Int64("final_nonce", retired.Nonce).
		Msg("seed stream rotated")

	bundle := &domain.RevealBundle{
		ServerSeed:        serverSeed,
		ServerSeedHash:    retired.ServerSeedHash,
		FinalNonce:        retired.Nonce,
		ClientSeed:        retired.ClientSeed,
		AnchorTxHash:      retired.AnchorTxHash,
		AnchorBlockHeight: retired.AnchorBlockHeight,
		Algorithm:         domain.Algorithm,
	}
	return bundle, streamState(next), nil
}

// GetPublicFairnessState returns the secret-free fairness view. In
// session-stream mode a stream is assigned on first read.
func (s *FairnessServiceImpl) GetPublicFairnessState(ctx context.Context, sessionID uuid.UUID) (*domain.PublicFairnessState, error) {
	if s.cfg.Mode == domain.ModePerGame {
		return &domain.PublicFairnessState{
			Mode:      domain.ModePerGame,
			Algorithm: domain.Algorithm,
		}, nil
	}

	stream, err := s.EnsureStream(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return streamState(stream), nil
}

// ResolveHand runs one wager end to end: kill switch, eligibility, stake
// reservation, outcome derivation and settlement.
func (s *FairnessServiceImpl) ResolveHand(ctx context.Context, req ports.WagerRequest) (*ports.HandResult, error) {
	if err := s.killSwitch.Guard(ctx); err != nil {
		return nil, err
	}
	if req.Stake <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.RollUnder <= 0 || req.RollUnder >= 100 {
		return nil, apperror.Validation("roll-under target must be between 0 and 100 exclusive")
	}
	if err := s.ledgerSvc.CheckWagerEligibility(ctx, req.SessionID, req.Stake); err != nil {
		return nil, err
	}

	if s.cfg.Mode == domain.ModeSessionStream {
		return s.resolveStreamHand(ctx, req)
	}
	return s.resolvePerGameHand(ctx, req)
}

func (s *FairnessServiceImpl) resolveStreamHand(ctx context.Context, req ports.WagerRequest) (*ports.HandResult, error) {
	stream, err := s.EnsureStream(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	wagerID := uuid.New()
	reference := "wager:" + wagerID.String()

	reserved, err := s.ledgerSvc.Reserve(ctx, ports.ReserveRequest{
		SessionID: req.SessionID,
		Amount:    req.Stake,
		Counter:   domain.CounterWagered,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, apperror.ErrInsufficientFunds()
	}

	// The nonce guard serializes concurrent hands on the same stream. If
	// another hand advanced it first, undo the stake and report the conflict.
	// The hand derives from the row the guarded update returned: a client
	// seed set while this request was in flight is the one the persisted
	// stream holds, and the one the reveal must reproduce.
	advanced, err := s.fairnessRepo.IncrementNonce(ctx, stream.ID, stream.Nonce)
	if err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("advance nonce: %w", err))
	}
	if advanced == nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrStreamConflict()
	}

	serverSeed, err := s.encSvc.Decrypt(advanced.ServerSeedEnc)
	if err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt server seed: %w", err))
	}

	roll, digest := domain.DeriveRoll(serverSeed, advanced.ClientSeed, advanced.Nonce)
	result, err := s.settleOutcome(ctx, req, wagerID, roll, digest, advanced.Nonce)
	if err != nil {
		return nil, err
	}

	result.State = streamState(advanced)
	return result, nil
}

func (s *FairnessServiceImpl) resolvePerGameHand(ctx context.Context, req ports.WagerRequest) (*ports.HandResult, error) {
	wagerID := uuid.New()
	reference := "wager:" + wagerID.String()

	reserved, err := s.ledgerSvc.Reserve(ctx, ports.ReserveRequest{
		SessionID: req.SessionID,
		Amount:    req.Stake,
		Counter:   domain.CounterWagered,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, apperror.ErrInsufficientFunds()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	commitment, err := s.fairnessRepo.ClaimCommitment(ctx, dbTx, req.SessionID, time.Now().UTC())
	if err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("claim commitment: %w", err))
	}
	if commitment == nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrFairnessUnavailable()
	}

	serverSeed, err := s.encSvc.Decrypt(commitment.ServerSeedEnc)
	if err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt server seed: %w", err))
	}

	clientSeed := req.ClientSeed
	if clientSeed == "" {
		clientSeed = req.SessionID.String()
	}
	roll, digest := domain.DeriveRoll(serverSeed, clientSeed, 0)

	if err := s.fairnessRepo.RetireCommitment(ctx, dbTx, commitment.ID, domain.SeedConsumed); err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("retire commitment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.releaseStake(ctx, req.SessionID, req.Stake, reference)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit consumption: %w", err))
	}

	result, err := s.settleOutcome(ctx, req, wagerID, roll, digest, 0)
	if err != nil {
		return nil, err
	}

	commitment.Status = domain.SeedConsumed
	result.Commitment = commitment
	result.ServerSeed = serverSeed
	return result, nil
}

// settleOutcome credits a winning payout and assembles the hand result.
func (s *FairnessServiceImpl) settleOutcome(ctx context.Context, req ports.WagerRequest, wagerID uuid.UUID, roll float64, digest string, nonce int64) (*ports.HandResult, error) {
	won := roll < req.RollUnder
	var payout float64
	if won {
		payout = money.Round(req.Stake * 99 / req.RollUnder)
		if err := s.ledgerSvc.Credit(ctx, ports.CreditRequest{
			SessionID: req.SessionID,
			Amount:    payout,
			Counter:   domain.CounterWon,
			Reference: "wager:" + wagerID.String(),
		}); err != nil {
			return nil, err
		}
	}

	balance, err := s.ledgerSvc.GetBalance(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session_id", req.SessionID.String()).
		Str("wager_id", wagerID.String()).
		Float64("stake", req.Stake).
		Float64("roll", roll).
		Bool("won", won).
		Float64("payout", payout).
		Msg("hand resolved")

	return &ports.HandResult{
		Roll:    roll,
		Digest:  digest,
		Nonce:   nonce,
		Won:     won,
		Payout:  payout,
		Balance: balance.Balance,
	}, nil
}

// releaseStake is compensation on the post-reservation failure paths; its
// own failure is logged for reconciliation, not propagated.
func (s *FairnessServiceImpl) releaseStake(ctx context.Context, sessionID uuid.UUID, stake float64, reference string) {
	err := s.ledgerSvc.Release(ctx, ports.ReleaseRequest{
		SessionID: sessionID,
		Amount:    stake,
		Counter:   domain.CounterWagered,
		Reference: reference,
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("session_id", sessionID.String()).
			Str("reference", reference).
			Float64("stake", stake).
			Msg("failed to release stake after aborted hand")
	}
}

func streamState(stream *domain.SeedStream) *domain.PublicFairnessState {
	return &domain.PublicFairnessState{
		Mode:               domain.ModeSessionStream,
		ServerSeedHash:     stream.ServerSeedHash,
		AnchorTxHash:       stream.AnchorTxHash,
		AnchorBlockHeight:  stream.AnchorBlockHeight,
		NextNonce:          stream.Nonce + 1,
		ClientSeed:         stream.ClientSeed,
		ClientSeedEditable: stream.ClientSeedEditable(),
		Algorithm:          domain.Algorithm,
	}
}

// defaultClientSeed is the 8-byte random seed assigned until the player sets
// their own.
func defaultClientSeed() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate client seed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
