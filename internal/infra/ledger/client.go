// Package ledger talks to the blockchain gateway bridge over HTTP. The bridge
// owns the Fabric connection; this client only mirrors its observations.
package ledger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/AjaXium2/greenolivechain/config"
	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// gatewayEnvelope is the response wrapper the gateway bridge uses.
type gatewayEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

type gatewayClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGatewayClient creates an HTTP client for the blockchain gateway bridge.
func NewGatewayClient(cfg *config.LedgerConfig, logger *slog.Logger) service.LedgerGateway {
	timeout := defaultRequestTimeout
	if cfg != nil && cfg.RequestTimeout > 0 {
		timeout = cfg.RequestTimeout
	}

	baseURL := ""
	if cfg != nil {
		baseURL = cfg.BaseURL
	}

	return &gatewayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Status fetches the gateway's view of the ledger connection.
func (c *gatewayClient) Status(ctx context.Context) (*entity.BlockchainStatus, error) {
	var status entity.BlockchainStatus
	if err := c.get(ctx, "/api/blockchain/status", &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// WasteHistory fetches the on-chain history of a waste batch.
func (c *gatewayClient) WasteHistory(ctx context.Context, wasteID uuid.UUID) ([]entity.LedgerEvent, error) {
	var events []entity.LedgerEvent
	if err := c.get(ctx, "/api/waste/history/"+wasteID.String(), &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *gatewayClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ledger gateway unreachable",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrLedgerUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("ledger gateway rejected request",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.ErrLedgerRejected.WithDetails(http.StatusText(resp.StatusCode))
	}

	var envelope gatewayEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errors.Wrap(err, "failed to decode gateway response")
	}
	if !envelope.Success {
		return domainerrors.ErrLedgerRejected.WithDetails(envelope.Error)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrap(err, "failed to decode gateway payload")
	}

	return nil
}
