package integration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Balance Repo ---

// inMemoryBalanceRepo mirrors the guarded-UPDATE semantics of the postgres
// repo: the funds check and the mutation happen under one lock, so concurrent
// reservations can never drive a balance negative.
type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[uuid.UUID]*domain.Balance
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{balances: make(map[uuid.UUID]*domain.Balance)}
}

func (r *inMemoryBalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[b.SessionID]; ok {
		return fmt.Errorf("balance already exists")
	}
	cp := *b
	r.balances[b.SessionID] = &cp
	return nil
}

func (r *inMemoryBalanceRepo) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBalanceRepo) TryReserve(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) (bool, error) {
	if !domain.ValidReserveCounter(counter) {
		return false, fmt.Errorf("counter %q is not reservable", counter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[sessionID]
	if !ok {
		return false, nil
	}
	if !money.GTE(b.Balance, amount) {
		return false, nil
	}
	b.Balance = money.Round(b.Balance - amount)
	addCounter(b, counter, counterAmount)
	b.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryBalanceRepo) Credit(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField) error {
	if !domain.ValidCreditCounter(counter) {
		return fmt.Errorf("counter %q is not creditable", counter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[sessionID]
	if !ok {
		return fmt.Errorf("balance not found: %s", sessionID)
	}
	b.Balance = money.Round(b.Balance + amount)
	addCounter(b, counter, amount)
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryBalanceRepo) Release(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, amount float64, counter domain.CounterField, counterAmount float64) error {
	if !domain.ValidReserveCounter(counter) {
		return fmt.Errorf("counter %q is not releasable", counter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[sessionID]
	if !ok {
		return fmt.Errorf("balance not found: %s", sessionID)
	}
	b.Balance = money.Round(b.Balance + amount)
	addCounter(b, counter, -counterAmount)
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryBalanceRepo) SumBalances(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, b := range r.balances {
		total += b.Balance
	}
	return money.Round(total), nil
}

func addCounter(b *domain.Balance, counter domain.CounterField, delta float64) {
	switch counter {
	case domain.CounterDeposited:
		b.TotalDeposited = money.Round(b.TotalDeposited + delta)
	case domain.CounterWithdrawn:
		b.TotalWithdrawn = money.Round(b.TotalWithdrawn + delta)
	case domain.CounterWagered:
		b.TotalWagered = money.Round(b.TotalWagered + delta)
	case domain.CounterWon:
		b.TotalWon = money.Round(b.TotalWon + delta)
	}
}

// --- In-Memory Ledger Journal Repo ---

type inMemoryJournalRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerTransaction
}

func newInMemoryJournalRepo() *inMemoryJournalRepo {
	return &inMemoryJournalRepo{}
}

func (r *inMemoryJournalRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryJournalRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.LedgerTransaction
	// Newest first, matching the postgres ordering.
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].SessionID != sessionID {
			continue
		}
		result = append(result, r.entries[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Fairness Repo ---

type inMemoryFairnessRepo struct {
	mu          sync.RWMutex
	commitments map[uuid.UUID]*domain.Commitment
	streams     map[uuid.UUID]*domain.SeedStream
}

func newInMemoryFairnessRepo() *inMemoryFairnessRepo {
	return &inMemoryFairnessRepo{
		commitments: make(map[uuid.UUID]*domain.Commitment),
		streams:     make(map[uuid.UUID]*domain.SeedStream),
	}
}

func (r *inMemoryFairnessRepo) CreateCommitment(ctx context.Context, c *domain.Commitment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.commitments[c.ID] = &cp
	return nil
}

func (r *inMemoryFairnessRepo) CreateStream(ctx context.Context, s *domain.SeedStream) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.streams[s.ID] = &cp
	return nil
}

func (r *inMemoryFairnessRepo) ClaimCommitment(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, now time.Time) (*domain.Commitment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.commitments {
		if c.Status != domain.SeedAvailable || !c.ExpiresAt.After(now) {
			continue
		}
		sid := sessionID
		c.Status = domain.SeedAssigned
		c.SessionID = &sid
		c.UpdatedAt = now
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryFairnessRepo) RetireCommitment(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.SeedStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commitments[id]
	if !ok {
		return fmt.Errorf("commitment not found")
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryFairnessRepo) ActiveStream(ctx context.Context, sessionID uuid.UUID) (*domain.SeedStream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.streams {
		if s.Status == domain.SeedAssigned && s.SessionID != nil && *s.SessionID == sessionID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryFairnessRepo) ClaimStream(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, clientSeed string, now time.Time) (*domain.SeedStream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.streams {
		if s.Status != domain.SeedAvailable || !s.ExpiresAt.After(now) {
			continue
		}
		sid := sessionID
		s.Status = domain.SeedAssigned
		s.SessionID = &sid
		s.ClientSeed = clientSeed
		s.UpdatedAt = now
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryFairnessRepo) SetClientSeed(ctx context.Context, streamID uuid.UUID, seed string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.streams[streamID]
	if !ok || s.Nonce != 0 {
		return false, nil
	}
	s.ClientSeed = seed
	s.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryFairnessRepo) IncrementNonce(ctx context.Context, streamID uuid.UUID, expected int64) (*domain.SeedStream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.streams[streamID]
	if !ok || s.Status != domain.SeedAssigned || s.Nonce != expected {
		return nil, nil
	}
	s.Nonce++
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, nil
}

func (r *inMemoryFairnessRepo) RevealStream(ctx context.Context, tx pgx.Tx, streamID uuid.UUID) (*domain.SeedStream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.streams[streamID]
	if !ok || s.Status != domain.SeedAssigned {
		return nil, nil
	}
	s.Status = domain.SeedRevealed
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, nil
}

func (r *inMemoryFairnessRepo) CountCommitments(ctx context.Context) (map[domain.SeedStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.SeedStatus]int)
	for _, c := range r.commitments {
		counts[c.Status]++
	}
	return counts, nil
}

func (r *inMemoryFairnessRepo) CountStreams(ctx context.Context) (map[domain.SeedStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.SeedStatus]int)
	for _, s := range r.streams {
		counts[s.Status]++
	}
	return counts, nil
}

func (r *inMemoryFairnessRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired int64
	for _, c := range r.commitments {
		if c.Status == domain.SeedAvailable && !c.ExpiresAt.After(now) {
			c.Status = domain.SeedExpired
			expired++
		}
	}
	for _, s := range r.streams {
		if s.Status == domain.SeedAvailable && !s.ExpiresAt.After(now) {
			s.Status = domain.SeedExpired
			expired++
		}
	}
	return expired, nil
}

func (r *inMemoryFairnessRepo) UnconfirmedAnchors(ctx context.Context, limit int) ([]ports.AnchorRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var refs []ports.AnchorRef
	for _, c := range r.commitments {
		if c.AnchorOperationID != "" && c.AnchorConfirmedAt == nil {
			refs = append(refs, ports.AnchorRef{ID: c.ID, Stream: false, OperationID: c.AnchorOperationID})
		}
	}
	for _, s := range r.streams {
		if s.AnchorOperationID != "" && s.AnchorConfirmedAt == nil {
			refs = append(refs, ports.AnchorRef{ID: s.ID, Stream: true, OperationID: s.AnchorOperationID})
		}
	}
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

func (r *inMemoryFairnessRepo) ConfirmAnchor(ctx context.Context, ref ports.AnchorRef, txHash string, blockHeight int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref.Stream {
		s, ok := r.streams[ref.ID]
		if !ok {
			return fmt.Errorf("stream not found")
		}
		s.AnchorTxHash = txHash
		s.AnchorBlockHeight = blockHeight
		s.AnchorConfirmedAt = &at
		return nil
	}
	c, ok := r.commitments[ref.ID]
	if !ok {
		return fmt.Errorf("commitment not found")
	}
	c.AnchorTxHash = txHash
	c.AnchorBlockHeight = blockHeight
	c.AnchorConfirmedAt = &at
	return nil
}

// --- In-Memory Withdrawal Repo ---

// inMemoryWithdrawalRepo keeps the two guards the postgres repo enforces: the
// idempotency key is unique across all records, and Transition mutates only
// when the record is still in the expected from-status.
type inMemoryWithdrawalRepo struct {
	mu          sync.RWMutex
	withdrawals map[uuid.UUID]*domain.Withdrawal
	byKey       map[string]uuid.UUID
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{
		withdrawals: make(map[uuid.UUID]*domain.Withdrawal),
		byKey:       make(map[string]uuid.UUID),
	}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byKey[w.IdempotencyKey]; dup {
		return false, nil
	}
	cp := *w
	r.withdrawals[w.ID] = &cp
	r.byKey[w.IdempotencyKey] = w.ID
	return true, nil
}

func (r *inMemoryWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWithdrawalRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *r.withdrawals[id]
	return &cp, nil
}

func (r *inMemoryWithdrawalRepo) Transition(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.WithdrawalStatus, update ports.WithdrawalUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || w.Status != from {
		return false, nil
	}
	w.Status = to
	if update.OperationID != nil {
		w.OperationID = *update.OperationID
	}
	if update.TxHash != nil {
		w.TxHash = *update.TxHash
	}
	if update.FailureReason != nil {
		w.FailureReason = *update.FailureReason
	}
	w.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryWithdrawalRepo) ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status != status {
			continue
		}
		result = append(result, *w)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (r *inMemoryWithdrawalRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status != domain.WithdrawalPending {
			continue
		}
		if !w.CreatedAt.Before(cutoff) {
			continue
		}
		result = append(result, *w)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Kill Switch Repo ---

type inMemoryKillSwitchRepo struct {
	mu    sync.RWMutex
	state domain.KillSwitchState
}

func newInMemoryKillSwitchRepo() *inMemoryKillSwitchRepo {
	return &inMemoryKillSwitchRepo{}
}

func (r *inMemoryKillSwitchRepo) Get(ctx context.Context) (*domain.KillSwitchState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.state
	return &cp, nil
}

func (r *inMemoryKillSwitchRepo) Set(ctx context.Context, state *domain.KillSwitchState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = *state
	return nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{values: make(map[string]string)}
}

func (r *inMemorySettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *inMemorySettingsRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[uuid.UUID]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[uuid.UUID]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.operators {
		if existing.Username == op.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *op
	r.operators[op.ID] = &cp
	return nil
}

func (r *inMemoryOperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.operators {
		if op.Username == username {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Admin Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	actions []domain.AdminAction
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Append(ctx context.Context, action *domain.AdminAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, *action)
	return nil
}

func (r *inMemoryAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.AdminAction
	for i := len(r.actions) - 1; i >= 0; i-- {
		result = append(result, r.actions[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing. Commit and
// rollback do nothing: the in-memory repos apply each mutation immediately,
// so a raced insert cannot undo its reservation the way a real rollback
// would.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Fake Chain Client ---

// fakeChainClient simulates the blockchain node. Sends succeed with a fresh
// operation id unless errors have been queued; operation status defaults to
// success with a derived transaction hash unless overridden.
type fakeChainClient struct {
	mu       sync.Mutex
	seq      int
	sends    []ports.SendRequest
	sendErrs []error
	statuses map[string]*ports.OperationStatus
	balance  ports.AddressBalance
}

func newFakeChainClient() *fakeChainClient {
	return &fakeChainClient{
		statuses: make(map[string]*ports.OperationStatus),
		balance:  ports.AddressBalance{Confirmed: 1_000_000, Total: 1_000_000},
	}
}

// failNextSends queues errors returned by the next Send calls, in order.
func (c *fakeChainClient) failNextSends(errs ...error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sendErrs = append(c.sendErrs, errs...)
}

// setOperationStatus overrides the status reported for one operation.
func (c *fakeChainClient) setOperationStatus(operationID string, status *ports.OperationStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[operationID] = status
}

// sendsWithMemoPrefix returns the recorded send requests whose memo starts
// with prefix.
func (c *fakeChainClient) sendsWithMemoPrefix(prefix string) []ports.SendRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result []ports.SendRequest
	for _, s := range c.sends {
		if strings.HasPrefix(s.Memo, prefix) {
			result = append(result, s)
		}
	}
	return result
}

func (c *fakeChainClient) GetNodeStatus(ctx context.Context) (*ports.NodeStatus, error) {
	return &ports.NodeStatus{Connected: true, Synced: true, BlockHeight: 1000}, nil
}

func (c *fakeChainClient) GetAddressBalance(ctx context.Context, address string, minConfirmations int) (*ports.AddressBalance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := c.balance
	return &cp, nil
}

func (c *fakeChainClient) Send(ctx context.Context, req ports.SendRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sendErrs) > 0 {
		err := c.sendErrs[0]
		c.sendErrs = c.sendErrs[1:]
		return "", err
	}
	c.seq++
	operationID := fmt.Sprintf("op-%d", c.seq)
	c.sends = append(c.sends, req)
	return operationID, nil
}

func (c *fakeChainClient) GetOperationStatus(ctx context.Context, operationID string) (*ports.OperationStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status, ok := c.statuses[operationID]; ok {
		cp := *status
		return &cp, nil
	}
	return &ports.OperationStatus{
		Status:      ports.OperationSuccess,
		TxID:        "tx-" + operationID,
		BlockHeight: 1000,
	}, nil
}
