package ledger

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/config"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*httptest.Server, *gatewayClient) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.LedgerConfig{
		BaseURL:        server.URL,
		RequestTimeout: 2 * time.Second,
	}
	client := NewGatewayClient(cfg, slog.Default()).(*gatewayClient)

	return server, client
}

func TestGatewayClient_Status(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blockchain/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"initialized": true,
				"connected": true,
				"timestamp": "2025-11-05T10:00:00Z",
				"network": {
					"organization": "recycling",
					"channel": "olivechannel",
					"chaincode": "wastetracking",
					"status": "active"
				}
			}
		}`))
	}))

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.Healthy())
	assert.Equal(t, "olivechannel", status.Network.Channel)
}

func TestGatewayClient_Status_GatewayError(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": false, "error": "chaincode not deployed"}`))
	}))

	status, err := client.Status(context.Background())
	require.Error(t, err)
	assert.Nil(t, status)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLedgerRejected.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "chaincode not deployed", appErr.Details())
}

func TestGatewayClient_Status_BadStatusCode(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.Status(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLedgerRejected.ErrorCode(), appErr.ErrorCode())
}

func TestGatewayClient_Status_Unreachable(t *testing.T) {
	server, client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := client.Status(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLedgerUnavailable.ErrorCode(), appErr.ErrorCode())
}

func TestGatewayClient_WasteHistory(t *testing.T) {
	wasteID := uuid.New()

	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/waste/history/"+wasteID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"txId": "tx-2", "action": "TRANSFER", "timestamp": "2025-11-05T12:00:00Z"},
				{"txId": "tx-1", "action": "CREATE", "timestamp": "2025-11-05T10:00:00Z"}
			]
		}`))
	}))

	events, err := client.WasteHistory(context.Background(), wasteID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "tx-2", events[0].TxID)
	assert.Equal(t, "CREATE", events[1].Action)
}
