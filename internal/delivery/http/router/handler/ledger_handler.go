package handler

import (
	"log/slog"
	"net/http"

	"github.com/AjaXium2/greenolivechain/internal/delivery/http/response"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler serves the blockchain connection status.
type LedgerHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler.
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// BlockchainStatus handles GET /api/blockchain/status. It serves the last
// cached observation, which the background poller keeps fresh.
func (h *LedgerHandler) BlockchainStatus(c echo.Context) error {
	status, err := h.ledgerUC.Status(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "")
}
