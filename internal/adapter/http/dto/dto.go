package dto

// OperatorLoginRequest is the request body for operator login.
type OperatorLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OperatorLoginResponse is the response body for successful operator login.
type OperatorLoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SessionStartResponse is the response body for a new player session.
type SessionStartResponse struct {
	SessionID string  `json:"session_id"`
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	Balance   float64 `json:"balance"`
}

// SetClientSeedRequest is the request body for changing the client seed.
type SetClientSeedRequest struct {
	Seed string `json:"seed" binding:"required,min=1,max=64,client_seed"`
}

// RotateSeedRequest is the request body for rotating the active seed stream.
type RotateSeedRequest struct {
	NextClientSeed string `json:"next_client_seed,omitempty" binding:"omitempty,max=64,client_seed"`
}

// WagerRequest is the request body for resolving one hand.
type WagerRequest struct {
	Stake      float64 `json:"stake" binding:"required,gt=0"`
	RollUnder  float64 `json:"roll_under" binding:"required,gt=0,lt=100"`
	ClientSeed string  `json:"client_seed,omitempty" binding:"omitempty,max=64,client_seed"`
}

// WithdrawalRequest is the request body for requesting a withdrawal.
type WithdrawalRequest struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Address        string  `json:"address" binding:"required,chain_address"`
	IdempotencyKey string  `json:"idempotency_key" binding:"required,min=1,max=100"`
}

// RequeueRequest is the request body for requeueing a failed withdrawal.
type RequeueRequest struct {
	IdempotencyKey string `json:"idempotency_key" binding:"required,min=1,max=100"`
}

// RejectRequest is the request body for rejecting a pending-approval
// withdrawal.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// KillSwitchRequest is the request body for arming or disarming the kill
// switch.
type KillSwitchRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SettingUpdateRequest is the request body for updating one setting key.
type SettingUpdateRequest struct {
	Key   string `json:"key" binding:"required,min=1,max=100"`
	Value string `json:"value" binding:"required,min=1,max=200"`
}

// BalanceResponse is the response body for a balance read.
type BalanceResponse struct {
	SessionID      string  `json:"session_id"`
	Balance        float64 `json:"balance"`
	TotalDeposited float64 `json:"total_deposited"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
	TotalWagered   float64 `json:"total_wagered"`
	TotalWon       float64 `json:"total_won"`
}

// TransactionResponse is one journal entry.
type TransactionResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Amount        float64 `json:"amount"`
	CounterField  string  `json:"counter_field"`
	CounterAmount float64 `json:"counter_amount"`
	Reference     string  `json:"reference,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// TransactionListResponse wraps a journal page.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}

// WithdrawalResponse is the response body for withdrawal state.
type WithdrawalResponse struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Address       string  `json:"address"`
	Status        string  `json:"status"`
	OperationID   string  `json:"operation_id,omitempty"`
	TxHash        string  `json:"tx_hash,omitempty"`
	FailureReason string  `json:"failure_reason,omitempty"`
	RequeuedFrom  string  `json:"requeued_from,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
