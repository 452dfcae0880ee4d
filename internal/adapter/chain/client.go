package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"crypto-casino-core/internal/core/ports"
)

// unpaidActionPattern matches the node gateway's fee-policy rejection so the
// settlement layer can read the action counts out of the message.
var unpaidActionPattern = regexp.MustCompile(`unpaid action limit exceeded: (\d+) actions exceeds limit of (\d+)`)

// Client talks to the blockchain node gateway over its JSON HTTP API.
// Send is asynchronous on the node side; callers poll the returned
// operation id via GetOperationStatus.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type sendResponse struct {
	OperationID string `json:"operation_id"`
}

func (c *Client) GetNodeStatus(ctx context.Context) (*ports.NodeStatus, error) {
	var status ports.NodeStatus
	if err := c.get(ctx, "/v1/node/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) GetAddressBalance(ctx context.Context, address string, minConfirmations int) (*ports.AddressBalance, error) {
	path := fmt.Sprintf("/v1/addresses/%s/balance?min_confirmations=%d", address, minConfirmations)
	var balance ports.AddressBalance
	if err := c.get(ctx, path, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// Send submits a transfer and returns the node's operation id. A fee-policy
// rejection is surfaced as *ports.UnpaidActionLimitError so the caller can
// escalate the fee; every other failure is returned as-is.
func (c *Client) Send(ctx context.Context, req ports.SendRequest) (string, error) {
	body, err := json.Marshal(map[string]any{
		"from":   req.From,
		"to":     req.To,
		"amount": req.Amount,
		"memo":   req.Memo,
		"fee":    req.Fee,
	})
	if err != nil {
		return "", fmt.Errorf("marshal send request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/operations/send", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build send request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", c.decodeError(resp)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode send response: %w", err)
	}
	if out.OperationID == "" {
		return "", fmt.Errorf("node returned empty operation id")
	}
	return out.OperationID, nil
}

func (c *Client) GetOperationStatus(ctx context.Context, operationID string) (*ports.OperationStatus, error) {
	var status ports.OperationStatus
	if err := c.get(ctx, "/v1/operations/"+operationID, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("node request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode node response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx node response into a typed error where the
// message is recognized, falling back to the raw message otherwise.
func (c *Client) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("node returned status %d", resp.StatusCode)
	}

	message := string(raw)
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	if m := unpaidActionPattern.FindStringSubmatch(message); m != nil {
		actions, _ := strconv.Atoi(m[1])
		limit, _ := strconv.Atoi(m[2])
		return &ports.UnpaidActionLimitError{Actions: actions, Limit: limit}
	}

	return fmt.Errorf("node returned status %d: %s", resp.StatusCode, message)
}
