package handler

import (
	"log/slog"
	"net/http"

	"github.com/AjaXium2/greenolivechain/internal/delivery/http/response"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TraceabilityHandlerParams holds dependencies for TraceabilityHandler, injected by Fx.
type TraceabilityHandlerParams struct {
	fx.In

	TraceabilityUC usecase.TraceabilityUsecase
	Logger         *slog.Logger
}

// TraceabilityHandler serves the read-side aggregation endpoints.
type TraceabilityHandler struct {
	traceabilityUC usecase.TraceabilityUsecase
	logger         *slog.Logger
}

// NewTraceabilityHandler is the constructor for TraceabilityHandler.
func NewTraceabilityHandler(params TraceabilityHandlerParams) *TraceabilityHandler {
	return &TraceabilityHandler{
		traceabilityUC: params.TraceabilityUC,
		logger:         params.Logger,
	}
}

// GetTraceability handles GET /api/traceability/:wasteId.
func (h *TraceabilityHandler) GetTraceability(c echo.Context) error {
	wasteID, err := uuid.Parse(c.Param("wasteId"))
	if err != nil {
		return response.BadRequest(c, "invalid waste id")
	}

	chain, err := h.traceabilityUC.GetTraceability(c.Request().Context(), wasteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chain, "")
}

// DashboardStats handles GET /api/dashboard/stats.
func (h *TraceabilityHandler) DashboardStats(c echo.Context) error {
	stats, err := h.traceabilityUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// RecentActivity handles GET /api/dashboard/activity.
func (h *TraceabilityHandler) RecentActivity(c echo.Context) error {
	events, err := h.traceabilityUC.RecentActivity(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
