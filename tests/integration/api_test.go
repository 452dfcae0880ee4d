package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "crypto-casino-core/internal/adapter/http/handler"
	redisStorage "crypto-casino-core/internal/adapter/storage/redis"
	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/internal/service"
	"crypto-casino-core/pkg/logger"
	"crypto-casino-core/pkg/money"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory repos, miniredis
// and a fake blockchain node. It exercises the real HTTP layer, middleware,
// handlers and services end-to-end; the fairness pool is refilled through
// the real pool service before the server starts.

const (
	testFundingAddress = "HOUSEPOOLADDR001"
	testPlayerAddress  = "PLAYERADDR000001"
	testOperatorUser   = "duty_operator"
	testOperatorPass   = "Vault-Operator-9"
	testDemoSeed       = 100.0
)

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	chain       *fakeChainClient
	withdrawals *inMemoryWithdrawalRepo
	journal     *inMemoryJournalRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	idemCache := redisStorage.NewIdempotencyCache(rdb)
	settingsCache := redisStorage.NewSettingsCache(rdb)
	refillLock := redisStorage.NewRefillLock(rdb)

	balanceRepo := newInMemoryBalanceRepo()
	journalRepo := newInMemoryJournalRepo()
	fairnessRepo := newInMemoryFairnessRepo()
	withdrawalRepo := newInMemoryWithdrawalRepo()
	killSwitchRepo := newInMemoryKillSwitchRepo()
	settingsRepo := newInMemorySettingsRepo()
	operatorRepo := newInMemoryOperatorRepo()
	auditRepo := newInMemoryAuditRepo()
	transactor := newInMemoryTransactor()
	chain := newFakeChainClient()

	encSvc, err := service.NewAESEncryptionService("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-jwt-secret-32bytes!!", time.Hour, time.Hour, "test-issuer")

	log := logger.New("error", false)

	auditSvc := service.NewAuditService(auditRepo, log)
	settingsSvc := service.NewSettingsService(settingsRepo, settingsCache, service.SettingsDefaults{
		PoolFloor:          10,
		LossLimit:          500,
		SessionDurationCap: 12 * time.Hour,
		ApprovalThreshold:  100,
		WithdrawalFee:      0.0001,
		FeeStep:            0.0001,
		MaxSendAttempts:    3,
	}, log)
	killSwitchSvc := service.NewKillSwitchService(killSwitchRepo, auditSvc, log)
	ledgerSvc := service.NewLedgerService(balanceRepo, journalRepo, settingsSvc, transactor, log)
	fairnessSvc := service.NewFairnessService(
		fairnessRepo, ledgerSvc, killSwitchSvc, chain, encSvc, transactor,
		service.FairnessConfig{
			Mode:           domain.ModeSessionStream,
			FundingAddress: testFundingAddress,
			AnchorAmount:   0.00000001,
			AnchorFee:      0.0001,
			SeedTTL:        24 * time.Hour,
		},
		log,
	)
	poolSvc := service.NewPoolService(fairnessRepo, fairnessSvc, settingsSvc, chain, refillLock, time.Minute, log)
	settlementSvc := service.NewSettlementService(
		withdrawalRepo, balanceRepo, journalRepo, killSwitchSvc, settingsSvc,
		chain, idemCache, auditSvc, transactor,
		service.SettlementConfig{
			FundingAddress: testFundingAddress,
			SendTimeout:    5 * time.Second,
			PollBatchSize:  50,
		},
		log,
	)
	alertSvc := service.NewAlertService(withdrawalRepo, balanceRepo, poolSvc, chain, service.AlertConfig{
		FundingAddress:   testFundingAddress,
		MinConfirmations: 1,
	}, log)
	authSvc := service.NewAuthService(operatorRepo, ledgerSvc, hashSvc, tokenSvc, testDemoSeed, log)

	// Seed the operator account and the fairness pool before serving.
	passwordHash, err := hashSvc.Hash(testOperatorPass)
	require.NoError(t, err)
	require.NoError(t, operatorRepo.Create(ctx, &domain.Operator{
		ID:           uuid.New(),
		Username:     testOperatorUser,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}))
	require.NoError(t, poolSvc.RefillOnce(ctx))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		FairnessSvc:    fairnessSvc,
		SettlementSvc:  settlementSvc,
		KillSwitchSvc:  killSwitchSvc,
		PoolSvc:        poolSvc,
		AlertSvc:       alertSvc,
		SettingsSvc:    settingsSvc,
		AuditSvc:       auditSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	return &testApp{
		server:      httptest.NewServer(router),
		redis:       mr,
		chain:       chain,
		withdrawals: withdrawalRepo,
		journal:     journalRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Helpers ---

func doRequest(t *testing.T, app *testApp, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeData unwraps the standard {"data": ...} success envelope into out.
func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// errorCode reads the error envelope and returns its code.
func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.ErrorCode
}

type sessionData struct {
	SessionID string  `json:"session_id"`
	Token     string  `json:"token"`
	Balance   float64 `json:"balance"`
}

func startSession(t *testing.T, app *testApp) sessionData {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var data sessionData
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data
}

func operatorToken(t *testing.T, app *testApp) string {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/operator/login", "", map[string]string{
		"username": testOperatorUser,
		"password": testOperatorPass,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

type balanceData struct {
	Balance        float64 `json:"balance"`
	TotalDeposited float64 `json:"total_deposited"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
	TotalWagered   float64 `json:"total_wagered"`
	TotalWon       float64 `json:"total_won"`
}

func getBalance(t *testing.T, app *testApp, token string) balanceData {
	t.Helper()
	resp := doRequest(t, app, http.MethodGet, "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data balanceData
	decodeData(t, resp, &data)
	return data
}

type handData struct {
	Roll    float64 `json:"roll"`
	Digest  string  `json:"digest"`
	Nonce   int64   `json:"nonce"`
	Won     bool    `json:"won"`
	Payout  float64 `json:"payout"`
	Balance float64 `json:"balance"`
}

func playHand(t *testing.T, app *testApp, token string, stake, rollUnder float64) handData {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/v1/wagers", token, map[string]any{
		"stake":      stake,
		"roll_under": rollUnder,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data handData
	decodeData(t, resp, &data)
	return data
}

type withdrawalData struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Status        string  `json:"status"`
	OperationID   string  `json:"operation_id"`
	TxHash        string  `json:"tx_hash"`
	FailureReason string  `json:"failure_reason"`
	RequeuedFrom  string  `json:"requeued_from"`
}

func requestWithdrawal(t *testing.T, app *testApp, token string, amount float64, key string) withdrawalData {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/v1/withdrawals", token, map[string]any{
		"amount":          amount,
		"address":         testPlayerAddress,
		"idempotency_key": key,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var data withdrawalData
	decodeData(t, resp, &data)
	return data
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_StartSession(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, testDemoSeed, session.Balance)

	balance := getBalance(t, app, session.Token)
	assert.Equal(t, testDemoSeed, balance.Balance)
	assert.Equal(t, testDemoSeed, balance.TotalDeposited)
}

func TestIntegration_OperatorLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/operator/login", "", map[string]string{
		"username": testOperatorUser,
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_001", errorCode(t, resp))
}

func TestIntegration_WagerResolvesHand(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	hand := playHand(t, app, session.Token, 10, 50)

	assert.GreaterOrEqual(t, hand.Roll, 0.0)
	assert.Less(t, hand.Roll, 100.0)
	assert.Len(t, hand.Digest, 64)
	assert.Equal(t, int64(1), hand.Nonce)

	expected := money.Round(testDemoSeed - 10)
	if hand.Won {
		assert.Equal(t, money.Round(10*99/50.0), hand.Payout)
		expected = money.Round(expected + hand.Payout)
	} else {
		assert.Zero(t, hand.Payout)
	}
	assert.InDelta(t, expected, hand.Balance, money.Tolerance)

	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, expected, balance.Balance, money.Tolerance)
	assert.Equal(t, 10.0, balance.TotalWagered)

	// The stake reservation is journaled.
	resp := doRequest(t, app, http.MethodGet, "/api/v1/wallet/transactions", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items []struct {
			Kind   string  `json:"kind"`
			Amount float64 `json:"amount"`
		} `json:"items"`
	}
	decodeData(t, resp, &list)
	require.NotEmpty(t, list.Items)
	kinds := make(map[string]bool)
	for _, item := range list.Items {
		kinds[item.Kind] = true
	}
	assert.True(t, kinds["RESERVE"])
	if hand.Won {
		assert.True(t, kinds["CREDIT"])
	}
}

func TestIntegration_RevealRoundTrip(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)

	// Pin the client seed while the stream is still fresh.
	clientSeed := "alpha-seed-1"
	resp := doRequest(t, app, http.MethodPut, "/api/v1/fairness/client-seed", session.Token, map[string]string{
		"seed": clientSeed,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var state struct {
		ServerSeedHash string `json:"server_seed_hash"`
		NextNonce      int64  `json:"next_nonce"`
	}
	resp = doRequest(t, app, http.MethodGet, "/api/v1/fairness", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &state)
	require.NotEmpty(t, state.ServerSeedHash)
	assert.Equal(t, int64(1), state.NextNonce)

	hands := make([]handData, 0, 3)
	for i := 0; i < 3; i++ {
		hands = append(hands, playHand(t, app, session.Token, 1, 49.5))
	}

	resp = doRequest(t, app, http.MethodPost, "/api/v1/fairness/rotate", session.Token, map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rotation struct {
		Reveal struct {
			ServerSeed     string `json:"server_seed"`
			ServerSeedHash string `json:"server_seed_hash"`
			FinalNonce     int64  `json:"final_nonce"`
			ClientSeed     string `json:"client_seed"`
		} `json:"reveal"`
		Fairness struct {
			ServerSeedHash     string `json:"server_seed_hash"`
			NextNonce          int64  `json:"next_nonce"`
			ClientSeedEditable bool   `json:"client_seed_editable"`
		} `json:"fairness"`
	}
	decodeData(t, resp, &rotation)

	// The disclosed seed matches the hash published before any hand.
	assert.Equal(t, state.ServerSeedHash, rotation.Reveal.ServerSeedHash)
	assert.True(t, domain.VerifyReveal(rotation.Reveal.ServerSeed, rotation.Reveal.ServerSeedHash))
	assert.Equal(t, int64(3), rotation.Reveal.FinalNonce)
	assert.Equal(t, clientSeed, rotation.Reveal.ClientSeed)

	// Every recorded hand is reproducible from the revealed seed.
	for i, hand := range hands {
		roll, digest := domain.DeriveRoll(rotation.Reveal.ServerSeed, clientSeed, int64(i+1))
		assert.Equal(t, hand.Roll, roll)
		assert.Equal(t, hand.Digest, digest)
	}

	// A fresh stream with an editable seed took over.
	assert.NotEqual(t, state.ServerSeedHash, rotation.Fairness.ServerSeedHash)
	assert.Equal(t, int64(1), rotation.Fairness.NextNonce)
	assert.True(t, rotation.Fairness.ClientSeedEditable)
}

func TestIntegration_ClientSeedLocksAfterFirstHand(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)

	resp := doRequest(t, app, http.MethodPut, "/api/v1/fairness/client-seed", session.Token, map[string]string{
		"seed": "before-play",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	playHand(t, app, session.Token, 1, 50)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/fairness/client-seed", session.Token, map[string]string{
		"seed": "after-play",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "FAIR_002", errorCode(t, resp))

	// Rotation unlocks editing on the replacement stream.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/fairness/rotate", session.Token, map[string]string{
		"next_client_seed": "next-round",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPut, "/api/v1/fairness/client-seed", session.Token, map[string]string{
		"seed": "fresh-again",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestIntegration_WithdrawalLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	w := requestWithdrawal(t, app, session.Token, 40, "wd-lifecycle-1")

	assert.Equal(t, string(domain.WithdrawalPending), w.Status)
	assert.NotEmpty(t, w.OperationID)
	assert.Equal(t, 40.0, w.Amount)
	assert.Equal(t, 0.0001, w.Fee)

	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, money.Round(testDemoSeed-40.0001), balance.Balance, money.Tolerance)
	assert.Equal(t, 40.0, balance.TotalWithdrawn)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/withdrawals/"+w.ID+"/poll", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var polled withdrawalData
	decodeData(t, resp, &polled)
	assert.Equal(t, string(domain.WithdrawalConfirmed), polled.Status)
	assert.Equal(t, "tx-"+w.OperationID, polled.TxHash)

	// Confirmation settles the obligation; the reservation stands.
	balance = getBalance(t, app, session.Token)
	assert.InDelta(t, money.Round(testDemoSeed-40.0001), balance.Balance, money.Tolerance)
	assert.Equal(t, 40.0, balance.TotalWithdrawn)
}

func TestIntegration_WithdrawalIdempotency(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	first := requestWithdrawal(t, app, session.Token, 25, "wd-idem-1")
	second := requestWithdrawal(t, app, session.Token, 25, "wd-idem-1")

	assert.Equal(t, first.ID, second.ID)

	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, money.Round(testDemoSeed-25.0001), balance.Balance, money.Tolerance)
	assert.Equal(t, 25.0, balance.TotalWithdrawn)
}

func TestIntegration_WithdrawalRejectedByNodeRefunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	app.chain.failNextSends(errors.New("invalid address checksum"))

	w := requestWithdrawal(t, app, session.Token, 40, "wd-reject-1")
	assert.Equal(t, string(domain.WithdrawalFailed), w.Status)
	assert.Contains(t, w.FailureReason, "invalid address checksum")

	// Refund is exact: amount+fee back, total_withdrawn unwound by amount.
	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, testDemoSeed, balance.Balance, money.Tolerance)
	assert.Zero(t, balance.TotalWithdrawn)

	// Requeue creates a brand-new record linked to the failed one.
	resp := doRequest(t, app, http.MethodPost, "/api/v1/withdrawals/"+w.ID+"/requeue", session.Token, map[string]string{
		"idempotency_key": "wd-reject-1-retry",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var requeued withdrawalData
	decodeData(t, resp, &requeued)
	assert.NotEqual(t, w.ID, requeued.ID)
	assert.Equal(t, w.ID, requeued.RequeuedFrom)
	assert.Equal(t, string(domain.WithdrawalPending), requeued.Status)
	assert.NotEmpty(t, requeued.OperationID)
}

func TestIntegration_FeeEscalationIsHouseBorne(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)
	app.chain.failNextSends(&ports.UnpaidActionLimitError{Actions: 60, Limit: 50})

	w := requestWithdrawal(t, app, session.Token, 40, "wd-fee-1")
	assert.Equal(t, string(domain.WithdrawalPending), w.Status)
	assert.NotEmpty(t, w.OperationID)

	// The retry carried the escalated broadcast fee.
	sends := app.chain.sendsWithMemoPrefix("withdrawal:")
	require.Len(t, sends, 1)
	assert.Equal(t, money.Round(0.0001+0.0001*10), sends[0].Fee)

	// The record keeps the quoted fee: the player refund basis never grows.
	assert.Equal(t, 0.0001, w.Fee)
	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, money.Round(testDemoSeed-40.0001), balance.Balance, money.Tolerance)
}

func TestIntegration_ApprovalFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := operatorToken(t, app)
	resp := doRequest(t, app, http.MethodPut, "/api/v1/admin/settings", opToken, map[string]string{
		"key":   "approval_threshold",
		"value": "50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	session := startSession(t, app)
	w := requestWithdrawal(t, app, session.Token, 60, "wd-approve-1")
	assert.Equal(t, string(domain.WithdrawalPendingApproval), w.Status)
	assert.Empty(t, w.OperationID)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/admin/withdrawals/"+w.ID+"/approve", opToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var approved withdrawalData
	decodeData(t, resp, &approved)
	assert.Equal(t, string(domain.WithdrawalPending), approved.Status)
	assert.NotEmpty(t, approved.OperationID)

	// Both operator actions hit the audit trail.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/admin/audit", opToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var audit struct {
		Items []struct {
			Action string `json:"action"`
		} `json:"items"`
	}
	decodeData(t, resp, &audit)
	actions := make(map[string]bool)
	for _, a := range audit.Items {
		actions[a.Action] = true
	}
	assert.True(t, actions["setting_updated"])
	assert.True(t, actions["withdrawal_approved"])
}

func TestIntegration_RejectRefunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := operatorToken(t, app)
	resp := doRequest(t, app, http.MethodPut, "/api/v1/admin/settings", opToken, map[string]string{
		"key":   "approval_threshold",
		"value": "50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	session := startSession(t, app)
	w := requestWithdrawal(t, app, session.Token, 60, "wd-reject-ops-1")
	require.Equal(t, string(domain.WithdrawalPendingApproval), w.Status)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/admin/withdrawals/"+w.ID+"/reject", opToken, map[string]string{
		"reason": "destination flagged",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rejected withdrawalData
	decodeData(t, resp, &rejected)
	assert.Equal(t, string(domain.WithdrawalFailed), rejected.Status)
	assert.Contains(t, rejected.FailureReason, "destination flagged")

	balance := getBalance(t, app, session.Token)
	assert.InDelta(t, testDemoSeed, balance.Balance, money.Tolerance)
	assert.Zero(t, balance.TotalWithdrawn)
}

func TestIntegration_KillSwitchHaltsNewCommitments(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)

	// A withdrawal already in flight before the incident.
	inflight := requestWithdrawal(t, app, session.Token, 10, "wd-inflight-1")
	require.Equal(t, string(domain.WithdrawalPending), inflight.Status)

	opToken := operatorToken(t, app)
	resp := doRequest(t, app, http.MethodPut, "/api/v1/admin/killswitch", opToken, map[string]any{
		"active": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// New commitments refuse.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/wagers", session.Token, map[string]any{
		"stake": 1, "roll_under": 50,
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "ADMIN_001", errorCode(t, resp))

	resp = doRequest(t, app, http.MethodPost, "/api/v1/withdrawals", session.Token, map[string]any{
		"amount": 5, "address": testPlayerAddress, "idempotency_key": "wd-halted-1",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	// In-flight settlement keeps advancing while the switch is armed.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/withdrawals/"+inflight.ID+"/poll", session.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var polled withdrawalData
	decodeData(t, resp, &polled)
	assert.Equal(t, string(domain.WithdrawalConfirmed), polled.Status)

	// Disarm restores play.
	resp = doRequest(t, app, http.MethodPut, "/api/v1/admin/killswitch", opToken, map[string]any{
		"active": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	hand := playHand(t, app, session.Token, 1, 50)
	assert.GreaterOrEqual(t, hand.Roll, 0.0)
}

func TestIntegration_AuthBoundaries(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// No token on a player route.
	resp := doRequest(t, app, http.MethodGet, "/api/v1/wallet/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Garbage token.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/wallet/balance", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_002", errorCode(t, resp))

	// Player token on an operator route.
	session := startSession(t, app)
	resp = doRequest(t, app, http.MethodGet, "/api/v1/admin/killswitch", session.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_003", errorCode(t, resp))
}

func TestIntegration_ForeignWithdrawalReadsAsNotFound(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	owner := startSession(t, app)
	w := requestWithdrawal(t, app, owner.Token, 10, "wd-owner-1")

	other := startSession(t, app)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/withdrawals/"+w.ID, other.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "WDR_001", errorCode(t, resp))
}

func TestIntegration_PoolHealth(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := operatorToken(t, app)
	resp := doRequest(t, app, http.MethodGet, "/api/v1/admin/pool/health", opToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Mode    string         `json:"mode"`
		Counts  map[string]int `json:"counts"`
		Floor   int            `json:"floor"`
		Healthy bool           `json:"healthy"`
	}
	decodeData(t, resp, &health)
	assert.Equal(t, string(domain.ModeSessionStream), health.Mode)
	assert.Equal(t, 10, health.Floor)
	assert.True(t, health.Healthy)
	assert.GreaterOrEqual(t, health.Counts[string(domain.SeedAvailable)], 10)
}

func TestIntegration_AlertsQuietOnHealthySystem(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	opToken := operatorToken(t, app)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/admin/alerts/run", opToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Alerts []struct {
			Kind string `json:"kind"`
		} `json:"alerts"`
	}
	decodeData(t, resp, &body)
	assert.Empty(t, body.Alerts)
}

func TestIntegration_WagerValidation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	session := startSession(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/wagers", session.Token, map[string]any{
		"stake": -5, "roll_under": 50,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/v1/wagers", session.Token, map[string]any{
		"stake": 1, "roll_under": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/v1/withdrawals", session.Token, map[string]any{
		"amount": 10, "address": "bad addr!", "idempotency_key": fmt.Sprintf("wd-%d", time.Now().UnixNano()),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
