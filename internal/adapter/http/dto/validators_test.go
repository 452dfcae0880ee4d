package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindJSON(t *testing.T, body string, out interface{}) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

func TestClientSeedValidation(t *testing.T) {
	cases := []struct {
		name  string
		seed  string
		valid bool
	}{
		{"alphanumeric", "my-lucky-seed_7", true},
		{"dots allowed", "seed.v2", true},
		{"spaces rejected", "my seed", false},
		{"script rejected", "<script>", false},
		{"too long", string(bytes.Repeat([]byte("a"), 65)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req SetClientSeedRequest
			err := bindJSON(t, `{"seed":"`+tc.seed+`"}`, &req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChainAddressValidation(t *testing.T) {
	cases := []struct {
		name  string
		addr  string
		valid bool
	}{
		{"base58 style", "9wviCeWe2D8XS82k2ovp5EUYLzBhUWAB", true},
		{"hex style", "00b1a2c3d4e5f60718", true},
		{"too short", "abc", false},
		{"punctuation rejected", "addr;drop-table", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req WithdrawalRequest
			err := bindJSON(t, `{"amount":10,"address":"`+tc.addr+`","idempotency_key":"k1"}`, &req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWagerRequestBounds(t *testing.T) {
	var req WagerRequest
	assert.NoError(t, bindJSON(t, `{"stake":1,"roll_under":49.5}`, &req))
	assert.Error(t, bindJSON(t, `{"stake":0,"roll_under":49.5}`, &req), "zero stake")
	assert.Error(t, bindJSON(t, `{"stake":1,"roll_under":100}`, &req), "roll-under must stay below 100")
	assert.Error(t, bindJSON(t, `{"stake":1,"roll_under":0}`, &req), "roll-under must be positive")
}

func TestSanitizeStruct(t *testing.T) {
	req := RejectRequest{Reason: "  <b>bad</b> actor  "}
	SanitizeStruct(&req)
	assert.Equal(t, "&lt;b&gt;bad&lt;/b&gt; actor", req.Reason)

	// Non-pointer input is a no-op, not a panic.
	SanitizeStruct(req)
}
