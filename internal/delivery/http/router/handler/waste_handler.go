// Package handler contains the echo handlers of the REST surface.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/delivery/http/response"
	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WasteHandlerParams holds dependencies for WasteHandler, injected by Fx.
type WasteHandlerParams struct {
	fx.In

	WasteUC usecase.WasteUsecase
	Logger  *slog.Logger
}

// WasteHandler serves the farm-stage waste endpoints.
type WasteHandler struct {
	wasteUC usecase.WasteUsecase
	logger  *slog.Logger
}

// NewWasteHandler is the constructor for WasteHandler.
func NewWasteHandler(params WasteHandlerParams) *WasteHandler {
	return &WasteHandler{
		wasteUC: params.WasteUC,
		logger:  params.Logger,
	}
}

// AddWasteRequest wraps the waste payload the way the gateway contract does.
type AddWasteRequest struct {
	WasteData WasteData `json:"wasteData" validate:"required"`
}

// WasteData is the declared batch. Status is accepted for wire compatibility
// but ignored: new batches always start READY.
type WasteData struct {
	Type        entity.WasteType `json:"type" validate:"required"`
	Quantity    float64          `json:"quantity" validate:"gte=0"`
	HarvestDate time.Time        `json:"harvestDate"`
	Status      string           `json:"status,omitempty"`
}

// UpdateWasteStatusRequest carries a status event for a batch.
type UpdateWasteStatusRequest struct {
	WasteID   uuid.UUID          `json:"wasteId" validate:"required"`
	NewStatus entity.StageStatus `json:"newStatus" validate:"required"`
}

// AddWaste handles POST /api/waste/add.
func (h *WasteHandler) AddWaste(c echo.Context) error {
	var req AddWasteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid waste payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddWasteInput{
		Type:        req.WasteData.Type,
		Quantity:    req.WasteData.Quantity,
		HarvestDate: req.WasteData.HarvestDate,
	}
	if input.HarvestDate.IsZero() {
		input.HarvestDate = time.Now()
	}

	waste, err := h.wasteUC.AddWaste(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, waste, "Waste batch registered")
}

// ListWastes handles GET /api/waste/list.
func (h *WasteHandler) ListWastes(c echo.Context) error {
	wastes, err := h.wasteUC.ListWastes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wastes, "")
}

// UpdateStatus handles PUT /api/waste/update-status. Events that do not
// apply to the batch's current status leave it untouched and still succeed.
func (h *WasteHandler) UpdateStatus(c echo.Context) error {
	var req UpdateWasteStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid status payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	waste, err := h.wasteUC.UpdateStatus(c.Request().Context(), req.WasteID, req.NewStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, waste, "")
}

// WasteHistory handles GET /api/waste/history/:id.
func (h *WasteHandler) WasteHistory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid waste id")
	}

	events, err := h.wasteUC.WasteHistory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
