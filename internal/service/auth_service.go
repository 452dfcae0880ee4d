package service

import (
	"context"
	"fmt"
	"time"

	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService. Player sessions are
// anonymous: starting one mints a fresh session id with a demo-seeded
// balance. Operators authenticate against stored Argon2id hashes.
type AuthServiceImpl struct {
	operatorRepo ports.OperatorRepository
	ledgerSvc    ports.LedgerService
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	demoSeed     float64
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	operatorRepo ports.OperatorRepository,
	ledgerSvc ports.LedgerService,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	demoSeed float64,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		ledgerSvc:    ledgerSvc,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		demoSeed:     demoSeed,
		log:          log,
	}
}

// StartSession creates a new player session: balance row plus JWT.
func (s *AuthServiceImpl) StartSession(ctx context.Context) (*ports.SessionStartResult, error) {
	sessionID := uuid.New()

	balance, err := s.ledgerSvc.CreateBalance(ctx, sessionID, s.demoSeed)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.GeneratePlayer(sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate session token: %w", err))
	}

	s.log.Info().Str("session_id", sessionID.String()).Msg("player session started")

	return &ports.SessionStartResult{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		Balance:   balance.Balance,
	}, nil
}

// OperatorLogin validates operator credentials and returns a JWT.
func (s *AuthServiceImpl) OperatorLogin(ctx context.Context, username, password string) (string, time.Time, error) {
	operator, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("find operator: %w", err))
	}
	if operator == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, operator.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.GenerateOperator(operator.ID, operator.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate operator token: %w", err))
	}

	s.log.Info().Str("operator", username).Msg("operator logged in")
	return token, expiry, nil
}
