package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lending/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferFrom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/transfers", r.URL.Path)

		var req transferReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Sender)
		assert.Equal(t, "custody", req.Recipient)
		assert.NotEmpty(t, req.TraceID)
		assert.True(t, req.Amount.Equal(decimal.NewFromInt(100)))

		_ = json.NewEncoder(w).Encode(transferResp{Success: true})
	}))
	defer server.Close()

	svc := New(Config{EndPoint: server.URL, AccountID: "custody"})

	err := svc.TransferFrom(context.Background(), "alice", "custody", "asset", decimal.NewFromInt(100))
	require.NoError(t, err)
}

func TestTransferRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(transferResp{Success: false, Message: "insufficient allowance"})
	}))
	defer server.Close()

	svc := New(Config{EndPoint: server.URL, AccountID: "custody"})

	err := svc.Transfer(context.Background(), "alice", "asset", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, core.ErrTransferFailed)
}

func TestBalanceOf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/alice/assets/asset", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"balance": "250"})
	}))
	defer server.Close()

	svc := New(Config{EndPoint: server.URL, AccountID: "custody"})

	balance, err := svc.BalanceOf(context.Background(), "alice", "asset")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(250)))
}
