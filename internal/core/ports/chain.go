package ports

import (
	"context"
	"fmt"
)

// NodeStatus is the external node's health snapshot.
type NodeStatus struct {
	Connected   bool  `json:"connected"`
	Synced      bool  `json:"synced"`
	BlockHeight int64 `json:"block_height"`
}

// AddressBalance is an address balance split by confirmation depth.
type AddressBalance struct {
	Confirmed float64 `json:"confirmed"`
	Pending   float64 `json:"pending"`
	Total     float64 `json:"total"`
}

// OperationState is the node-side lifecycle of an async send.
type OperationState string

const (
	OperationQueued    OperationState = "queued"
	OperationExecuting OperationState = "executing"
	OperationSuccess   OperationState = "success"
	OperationFailed    OperationState = "failed"
)

// OperationStatus is the result of polling an async send operation.
type OperationStatus struct {
	Status      OperationState `json:"status"`
	TxID        string         `json:"txid,omitempty"`
	BlockHeight int64          `json:"block_height,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// SendRequest describes one value transfer for the node to broadcast.
type SendRequest struct {
	From   string
	To     string
	Amount float64
	Memo   string
	Fee    float64
}

// UnpaidActionLimitError is the node's distinguished fee-policy rejection:
// the transaction carries Actions unpaid actions against a limit of Limit.
// The settlement retry loop uses the two counts to escalate the fee
// deterministically.
type UnpaidActionLimitError struct {
	Actions int
	Limit   int
}

func (e *UnpaidActionLimitError) Error() string {
	return fmt.Sprintf("unpaid action limit exceeded: %d actions exceeds limit of %d", e.Actions, e.Limit)
}

// ChainClient is the blockchain node capability the core consumes. Send is
// asynchronous: it returns an operation id to poll, and a timeout without a
// definitive answer must leave the caller's record pending, never failed.
type ChainClient interface {
	GetNodeStatus(ctx context.Context) (*NodeStatus, error)
	GetAddressBalance(ctx context.Context, address string, minConfirmations int) (*AddressBalance, error)
	Send(ctx context.Context, req SendRequest) (string, error)
	GetOperationStatus(ctx context.Context, operationID string) (*OperationStatus, error)
}
