package chain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-casino-core/internal/core/ports"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestClient_GetNodeStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/node/status", r.URL.Path)
		json.NewEncoder(w).Encode(ports.NodeStatus{Connected: true, Synced: true, BlockHeight: 120045})
	})

	status, err := client.GetNodeStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.True(t, status.Synced)
	assert.Equal(t, int64(120045), status.BlockHeight)
}

func TestClient_GetAddressBalance(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/addresses/zs1pool/balance", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("min_confirmations"))
		json.NewEncoder(w).Encode(ports.AddressBalance{Confirmed: 120.5, Pending: 2.25, Total: 122.75})
	})

	bal, err := client.GetAddressBalance(context.Background(), "zs1pool", 3)
	require.NoError(t, err)
	assert.Equal(t, 120.5, bal.Confirmed)
	assert.Equal(t, 2.25, bal.Pending)
}

func TestClient_Send_ReturnsOperationID(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/operations/send", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "zs1pool", body["from"])
		assert.Equal(t, "zs1player", body["to"])
		assert.Equal(t, 1.5, body["amount"])
		assert.Equal(t, 0.0001, body["fee"])

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(sendResponse{OperationID: "opid-1234"})
	})

	opID, err := client.Send(context.Background(), ports.SendRequest{
		From: "zs1pool", To: "zs1player", Amount: 1.5, Fee: 0.0001,
	})
	require.NoError(t, err)
	assert.Equal(t, "opid-1234", opID)
}

func TestClient_Send_UnpaidActionLimit(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{
			Error: "unpaid action limit exceeded: 75 actions exceeds limit of 50",
		})
	})

	_, err := client.Send(context.Background(), ports.SendRequest{From: "a", To: "b", Amount: 1})
	require.Error(t, err)

	var limitErr *ports.UnpaidActionLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 75, limitErr.Actions)
	assert.Equal(t, 50, limitErr.Limit)
}

func TestClient_Send_PlainTextUnpaidActionLimit(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unpaid action limit exceeded: 12 actions exceeds limit of 10"))
	})

	_, err := client.Send(context.Background(), ports.SendRequest{From: "a", To: "b", Amount: 1})

	var limitErr *ports.UnpaidActionLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 12, limitErr.Actions)
	assert.Equal(t, 10, limitErr.Limit)
}

func TestClient_Send_OtherNodeError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "invalid address checksum"})
	})

	_, err := client.Send(context.Background(), ports.SendRequest{From: "a", To: "bogus", Amount: 1})
	require.Error(t, err)

	var limitErr *ports.UnpaidActionLimitError
	assert.False(t, errors.As(err, &limitErr))
	assert.Contains(t, err.Error(), "invalid address checksum")
}

func TestClient_GetOperationStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/operations/opid-1234", r.URL.Path)
		json.NewEncoder(w).Encode(ports.OperationStatus{
			Status: ports.OperationSuccess, TxID: "deadbeef", BlockHeight: 120050,
		})
	})

	status, err := client.GetOperationStatus(context.Background(), "opid-1234")
	require.NoError(t, err)
	assert.Equal(t, ports.OperationSuccess, status.Status)
	assert.Equal(t, "deadbeef", status.TxID)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.GetNodeStatus(context.Background())
	require.Error(t, err)
}
