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

// RecyclingHandlerParams holds dependencies for RecyclingHandler, injected by Fx.
type RecyclingHandlerParams struct {
	fx.In

	RecyclingUC usecase.RecyclingUsecase
	Logger      *slog.Logger
}

// RecyclingHandler serves the recycling endpoints: intake records, the
// selection-driven process workflow and the canonical recycling records.
type RecyclingHandler struct {
	recyclingUC usecase.RecyclingUsecase
	logger      *slog.Logger
}

// NewRecyclingHandler is the constructor for RecyclingHandler.
func NewRecyclingHandler(params RecyclingHandlerParams) *RecyclingHandler {
	return &RecyclingHandler{
		recyclingUC: params.RecyclingUC,
		logger:      params.Logger,
	}
}

// AddWasteRecordRequest declares an incoming waste delivery.
type AddWasteRecordRequest struct {
	Type                    entity.WasteType `json:"type" validate:"required"`
	Quantity                float64          `json:"quantity" validate:"gte=0"`
	SourceOrganization      string           `json:"sourceOrganization" validate:"required"`
	DestinationOrganization string           `json:"destinationOrganization" validate:"required"`
	Notes                   string           `json:"notes"`
}

// ReceiveWasteRequest names the intake record to receive.
type ReceiveWasteRequest struct {
	RecordID uuid.UUID `json:"recordId" validate:"required"`
}

// StartProcessRequest selects the intake record the next process consumes.
type StartProcessRequest struct {
	WasteID uuid.UUID `json:"wasteId" validate:"required"`
}

// AddProcessRequest carries the new process parameters. The consumed record
// comes from the current selection.
type AddProcessRequest struct {
	ProcessType    entity.ProcessType `json:"processType" validate:"required"`
	StartDate      time.Time          `json:"startDate"`
	OutputQuantity *float64           `json:"outputQuantity"`
	Notes          string             `json:"notes"`
}

// CompleteProcessRequest names the process to complete.
type CompleteProcessRequest struct {
	ProcessID uuid.UUID `json:"processId" validate:"required"`
}

// AddRecyclingRecordRequest wraps the record payload the way the gateway
// contract does.
type AddRecyclingRecordRequest struct {
	RecyclingData RecyclingData `json:"recyclingData" validate:"required"`
}

// RecyclingData is the canonical recycling record payload.
type RecyclingData struct {
	WasteID             uuid.UUID `json:"wasteId" validate:"required"`
	RecycledProduct     string    `json:"recycledProduct" validate:"required"`
	Quantity            float64   `json:"quantity" validate:"gte=0"`
	Method              string    `json:"method"`
	EnvironmentalImpact string    `json:"environmentalImpact"`
	Certifications      []string  `json:"certifications"`
}

// AddWasteRecord handles POST /api/recycling/records.
func (h *RecyclingHandler) AddWasteRecord(c echo.Context) error {
	var req AddWasteRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid intake payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddWasteRecordInput{
		Type:                    req.Type,
		Quantity:                req.Quantity,
		SourceOrganization:      req.SourceOrganization,
		DestinationOrganization: req.DestinationOrganization,
		Notes:                   req.Notes,
	}

	record, err := h.recyclingUC.AddWasteRecord(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Waste record registered")
}

// ListWasteRecords handles GET /api/recycling/records.
func (h *RecyclingHandler) ListWasteRecords(c echo.Context) error {
	records, err := h.recyclingUC.ListWasteRecords(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ReceiveWaste handles POST /api/recycling/receive.
func (h *RecyclingHandler) ReceiveWaste(c echo.Context) error {
	var req ReceiveWasteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid receive payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.recyclingUC.ReceiveWaste(c.Request().Context(), req.RecordID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// StartProcess handles POST /api/recycling/start.
func (h *RecyclingHandler) StartProcess(c echo.Context) error {
	var req StartProcessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid start payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.recyclingUC.StartProcess(c.Request().Context(), req.WasteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Waste record selected")
}

// AddProcess handles POST /api/recycling/process.
func (h *RecyclingHandler) AddProcess(c echo.Context) error {
	var req AddProcessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid process payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddProcessInput{
		ProcessType:    req.ProcessType,
		StartDate:      req.StartDate,
		OutputQuantity: req.OutputQuantity,
		Notes:          req.Notes,
	}

	process, err := h.recyclingUC.AddProcess(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, process, "Recycling process started")
}

// ListProcesses handles GET /api/recycling/processes.
func (h *RecyclingHandler) ListProcesses(c echo.Context) error {
	processes, err := h.recyclingUC.ListProcesses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, processes, "")
}

// CompleteProcess handles PUT /api/recycling/complete.
func (h *RecyclingHandler) CompleteProcess(c echo.Context) error {
	var req CompleteProcessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid complete payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	process, err := h.recyclingUC.CompleteProcess(c.Request().Context(), req.ProcessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, process, "")
}

// AddRecord handles POST /api/recycling/add.
func (h *RecyclingHandler) AddRecord(c echo.Context) error {
	var req AddRecyclingRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid recycling payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddRecyclingRecordInput{
		WasteID:             req.RecyclingData.WasteID,
		RecycledProduct:     req.RecyclingData.RecycledProduct,
		Quantity:            req.RecyclingData.Quantity,
		Method:              req.RecyclingData.Method,
		EnvironmentalImpact: req.RecyclingData.EnvironmentalImpact,
		Certifications:      req.RecyclingData.Certifications,
	}

	record, err := h.recyclingUC.AddRecord(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Recycling recorded")
}

// GetRecord handles GET /api/recycling/:id.
func (h *RecyclingHandler) GetRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid recycling id")
	}

	record, err := h.recyclingUC.GetRecord(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// ListRecords handles GET /api/recycling/list.
func (h *RecyclingHandler) ListRecords(c echo.Context) error {
	records, err := h.recyclingUC.ListRecords(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ListRecordsByWaste handles GET /api/recycling/by-waste/:id.
func (h *RecyclingHandler) ListRecordsByWaste(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid waste id")
	}

	records, err := h.recyclingUC.ListRecordsByWaste(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}
