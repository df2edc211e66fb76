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

// ExtractionHandlerParams holds dependencies for ExtractionHandler, injected by Fx.
type ExtractionHandlerParams struct {
	fx.In

	ExtractionUC usecase.ExtractionUsecase
	Logger       *slog.Logger
}

// ExtractionHandler serves the extraction-stage endpoints: the mill's own
// waste batches and the canonical extraction records.
type ExtractionHandler struct {
	extractionUC usecase.ExtractionUsecase
	logger       *slog.Logger
}

// NewExtractionHandler is the constructor for ExtractionHandler.
func NewExtractionHandler(params ExtractionHandlerParams) *ExtractionHandler {
	return &ExtractionHandler{
		extractionUC: params.ExtractionUC,
		logger:       params.Logger,
	}
}

// AddExtractionWasteRequest declares a new mill waste batch.
type AddExtractionWasteRequest struct {
	Type           entity.WasteType `json:"type" validate:"required"`
	Quantity       float64          `json:"quantity" validate:"gte=0"`
	SourceOlives   string           `json:"sourceOlives"`
	ProductionDate time.Time        `json:"productionDate"`
}

// AddExtractionRecordRequest wraps the record payload the way the gateway
// contract does.
type AddExtractionRecordRequest struct {
	ExtractionData ExtractionData `json:"extractionData" validate:"required"`
}

// ExtractionData is the canonical extraction record payload.
type ExtractionData struct {
	WasteID          uuid.UUID `json:"wasteId" validate:"required"`
	ProductType      string    `json:"productType" validate:"required"`
	Quantity         float64   `json:"quantity" validate:"gte=0"`
	Quality          string    `json:"quality"`
	ExtractionMethod string    `json:"extractionMethod"`
	Temperature      float64   `json:"temperature"`
	Pressure         float64   `json:"pressure"`
	YieldPercentage  float64   `json:"yieldPercentage"`
}

// UpdateExtractionStatusRequest carries a status event for a record.
type UpdateExtractionStatusRequest struct {
	ExtractionID uuid.UUID          `json:"extractionId" validate:"required"`
	NewStatus    entity.StageStatus `json:"newStatus" validate:"required"`
}

// AddWaste handles POST /api/extraction/waste/add.
func (h *ExtractionHandler) AddWaste(c echo.Context) error {
	var req AddExtractionWasteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid waste payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddExtractionWasteInput{
		Type:           req.Type,
		Quantity:       req.Quantity,
		SourceOlives:   req.SourceOlives,
		ProductionDate: req.ProductionDate,
	}
	if input.ProductionDate.IsZero() {
		input.ProductionDate = time.Now()
	}

	waste, err := h.extractionUC.AddExtractionWaste(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, waste, "Extraction waste batch registered")
}

// ListWastes handles GET /api/extraction/waste/list.
func (h *ExtractionHandler) ListWastes(c echo.Context) error {
	wastes, err := h.extractionUC.ListExtractionWastes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wastes, "")
}

// TransferWaste handles PUT /api/extraction/waste/transfer/:id.
func (h *ExtractionHandler) TransferWaste(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid waste id")
	}

	waste, err := h.extractionUC.TransferExtractionWaste(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, waste, "")
}

// AddRecord handles POST /api/extraction/add.
func (h *ExtractionHandler) AddRecord(c echo.Context) error {
	var req AddExtractionRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid extraction payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddExtractionRecordInput{
		WasteID:          req.ExtractionData.WasteID,
		ProductType:      req.ExtractionData.ProductType,
		Quantity:         req.ExtractionData.Quantity,
		Quality:          req.ExtractionData.Quality,
		ExtractionMethod: req.ExtractionData.ExtractionMethod,
		Temperature:      req.ExtractionData.Temperature,
		Pressure:         req.ExtractionData.Pressure,
		YieldPercentage:  req.ExtractionData.YieldPercentage,
	}

	record, err := h.extractionUC.AddRecord(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Extraction recorded")
}

// GetRecord handles GET /api/extraction/:id.
func (h *ExtractionHandler) GetRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid extraction id")
	}

	record, err := h.extractionUC.GetRecord(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// ListRecords handles GET /api/extraction/list.
func (h *ExtractionHandler) ListRecords(c echo.Context) error {
	records, err := h.extractionUC.ListRecords(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ListRecordsByWaste handles GET /api/extraction/by-waste/:id.
func (h *ExtractionHandler) ListRecordsByWaste(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid waste id")
	}

	records, err := h.extractionUC.ListRecordsByWaste(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// UpdateStatus handles PUT /api/extraction/update-status.
func (h *ExtractionHandler) UpdateStatus(c echo.Context) error {
	var req UpdateExtractionStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid status payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.extractionUC.UpdateRecordStatus(c.Request().Context(), req.ExtractionID, req.NewStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "")
}
