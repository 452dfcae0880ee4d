package domain

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FairnessMode selects how committed randomness is consumed. The two modes
// are mutually exclusive within a session.
type FairnessMode string

const (
	// ModePerGame consumes one commitment per hand, drawn from the pool.
	ModePerGame FairnessMode = "per_game"
	// ModeSessionStream assigns one seed stream per session and increments
	// a nonce per hand until the stream is rotated.
	ModeSessionStream FairnessMode = "session_stream"
)

// SeedStatus is the lifecycle state of a commitment or seed stream.
type SeedStatus string

const (
	SeedAvailable SeedStatus = "available"
	SeedAssigned  SeedStatus = "assigned"
	SeedConsumed  SeedStatus = "consumed"
	SeedRevealed  SeedStatus = "revealed"
	SeedExpired   SeedStatus = "expired"
)

// Algorithm is the published outcome derivation, disclosed alongside the
// commitment hash so players can verify results independently:
// roll = int(hex(HMAC-SHA256(serverSeed, clientSeed+":"+nonce))[0:8]) % 10000 / 100.
const Algorithm = "HMAC-SHA256(serverSeed, clientSeed:nonce), first 8 hex chars mod 10000 / 100"

// Commitment is a per-game fairness unit: a secret server seed whose hash
// was anchored on-chain before play. The seed is stored encrypted at rest
// and disclosed only after the hand it resolved.
type Commitment struct {
	ID                uuid.UUID  `json:"id"`
	ServerSeedEnc     string     `json:"-"` // AES-256-GCM, never exposed
	ServerSeedHash    string     `json:"server_seed_hash"`
	Status            SeedStatus `json:"status"`
	AnchorOperationID string     `json:"anchor_operation_id,omitempty"`
	AnchorTxHash      string     `json:"anchor_tx_hash,omitempty"`
	AnchorBlockHeight int64      `json:"anchor_block_height,omitempty"`
	AnchorConfirmedAt *time.Time `json:"anchor_confirmed_at,omitempty"`
	SessionID         *uuid.UUID `json:"session_id,omitempty"`
	ExpiresAt         time.Time  `json:"expires_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// SeedStream is a session-mode fairness unit. Once the stream has resolved
// its first hand (nonce >= 1) the client seed is locked until rotation.
type SeedStream struct {
	ID                uuid.UUID  `json:"id"`
	ServerSeedEnc     string     `json:"-"`
	ServerSeedHash    string     `json:"server_seed_hash"`
	Status            SeedStatus `json:"status"`
	Nonce             int64      `json:"nonce"`
	ClientSeed        string     `json:"client_seed"`
	AnchorOperationID string     `json:"anchor_operation_id,omitempty"`
	AnchorTxHash      string     `json:"anchor_tx_hash,omitempty"`
	AnchorBlockHeight int64      `json:"anchor_block_height,omitempty"`
	AnchorConfirmedAt *time.Time `json:"anchor_confirmed_at,omitempty"`
	SessionID         *uuid.UUID `json:"session_id,omitempty"`
	ExpiresAt         time.Time  `json:"expires_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ClientSeedEditable reports whether the client seed may still change.
func (s *SeedStream) ClientSeedEditable() bool {
	return s.Nonce == 0
}

// RevealBundle is returned by a rotation: everything a player needs to
// verify the retired stream against its pre-published hash.
type RevealBundle struct {
	ServerSeed        string `json:"server_seed"`
	ServerSeedHash    string `json:"server_seed_hash"`
	FinalNonce        int64  `json:"final_nonce"`
	ClientSeed        string `json:"client_seed"`
	AnchorTxHash      string `json:"anchor_tx_hash,omitempty"`
	AnchorBlockHeight int64  `json:"anchor_block_height,omitempty"`
	Algorithm         string `json:"algorithm"`
}

// PublicFairnessState is the secret-free view of a session's fairness unit.
type PublicFairnessState struct {
	Mode              FairnessMode `json:"mode"`
	ServerSeedHash    string       `json:"server_seed_hash"`
	AnchorTxHash      string       `json:"anchor_tx_hash,omitempty"`
	AnchorBlockHeight int64        `json:"anchor_block_height,omitempty"`
	NextNonce         int64        `json:"next_nonce"`
	ClientSeed        string       `json:"client_seed,omitempty"`
	ClientSeedEditable bool        `json:"client_seed_editable"`
	Algorithm         string       `json:"algorithm"`
}

// NewServerSeed returns 32 bytes of CSPRNG entropy, hex encoded.
func NewServerSeed() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate server seed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashServerSeed is the commitment function: hex(SHA-256(serverSeed)).
func HashServerSeed(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}

// DeriveRoll produces the outcome for one hand. The digest is keyed by the
// server seed over "clientSeed:nonce"; the first 8 hex characters map to a
// roll in [0, 100) with two decimals. The full digest is returned so it can
// be journaled with the hand.
func DeriveRoll(serverSeed, clientSeed string, nonce int64) (float64, string) {
	h := hmac.New(sha256.New, []byte(serverSeed))
	h.Write([]byte(clientSeed + ":" + strconv.FormatInt(nonce, 10)))
	digest := hex.EncodeToString(h.Sum(nil))

	num, _ := strconv.ParseInt(digest[:8], 16, 64)
	roll := float64(num%10000) / 100

	return roll, digest
}

// VerifyReveal checks a disclosed server seed against its published hash.
func VerifyReveal(serverSeed, publishedHash string) bool {
	return HashServerSeed(serverSeed) == publishedHash
}
