package service

import (
	"fmt"
	"time"

	"crypto-casino-core/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService using HS256 JWT. Player and
// operator tokens share a secret but carry a distinct role claim, so a
// player token can never reach the admin surface.
type JWTTokenService struct {
	secret         []byte
	playerExpiry   time.Duration
	operatorExpiry time.Duration
	issuer         string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, playerExpiry, operatorExpiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret:         []byte(secret),
		playerExpiry:   playerExpiry,
		operatorExpiry: operatorExpiry,
		issuer:         issuer,
	}
}

// GeneratePlayer creates a signed session token for a player.
func (s *JWTTokenService) GeneratePlayer(sessionID uuid.UUID) (string, time.Time, error) {
	return s.generate(sessionID, "", "player", s.playerExpiry)
}

// GenerateOperator creates a signed token for an operator account.
func (s *JWTTokenService) GenerateOperator(operatorID uuid.UUID, username string) (string, time.Time, error) {
	return s.generate(operatorID, username, "operator", s.operatorExpiry)
}

func (s *JWTTokenService) generate(subject uuid.UUID, username, role string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := jwt.MapClaims{
		"sub":  subject.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"iss":  s.issuer,
	}
	if username != "" {
		claims["username"] = username
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT token, returning the claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}

	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	role, _ := claims["role"].(string)
	username, _ := claims["username"].(string)

	return &ports.TokenClaims{
		SubjectID: subjectID,
		Username:  username,
		Operator:  role == "operator",
	}, nil
}
