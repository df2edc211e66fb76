package usecase

import (
	"context"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"

	"github.com/google/uuid"
)

// AddWasteRecordInput carries a new recycling-intake declaration.
type AddWasteRecordInput struct {
	Type                    entity.WasteType `json:"type"`
	Quantity                float64          `json:"quantity"`
	SourceOrganization      string           `json:"sourceOrganization"`
	DestinationOrganization string           `json:"destinationOrganization"`
	Notes                   string           `json:"notes"`
}

// AddProcessInput carries the parameters of a new recycling process.
// The waste record it consumes comes from the current selection, not the input.
type AddProcessInput struct {
	ProcessType    entity.ProcessType `json:"processType"`
	StartDate      time.Time          `json:"startDate"`
	OutputQuantity *float64           `json:"outputQuantity"`
	Notes          string             `json:"notes"`
}

// AddRecyclingRecordInput carries a new canonical recycling record.
type AddRecyclingRecordInput struct {
	WasteID             uuid.UUID `json:"wasteId"`
	RecycledProduct     string    `json:"recycledProduct"`
	Quantity            float64   `json:"quantity"`
	Method              string    `json:"method"`
	EnvironmentalImpact string    `json:"environmentalImpact"`
	Certifications      []string  `json:"certifications"`
}

// RecyclingUsecase defines the recycling workflow use cases: intake records,
// the selection-driven process creation, and canonical recycling records.
type RecyclingUsecase interface {
	// AddWasteRecord registers a new intake record in PENDING state.
	AddWasteRecord(ctx context.Context, input *AddWasteRecordInput) (*entity.WasteRecord, error)

	// ListWasteRecords retrieves every intake record.
	ListWasteRecords(ctx context.Context) ([]*entity.WasteRecord, error)

	// ReceiveWaste moves an intake record from PENDING to TRANSFERRED.
	// Unknown ids and records past PENDING are no-ops.
	ReceiveWaste(ctx context.Context, id uuid.UUID) (*entity.WasteRecord, error)

	// StartProcess selects the intake record a new process will consume.
	// It returns nil without state change when the record does not exist,
	// and rejects records that are not TRANSFERRED or already have a
	// process (one process per waste record).
	StartProcess(ctx context.Context, wasteID uuid.UUID) (*entity.WasteRecord, error)

	// AddProcess creates an IN_PROGRESS process against the current
	// selection, marks the selected record PROCESSED and clears the
	// selection. Without a selection it is a rejected no-op.
	AddProcess(ctx context.Context, input *AddProcessInput) (*entity.RecyclingProcess, error)

	// ListProcesses retrieves every recycling process.
	ListProcesses(ctx context.Context) ([]*entity.RecyclingProcess, error)

	// CompleteProcess moves a process from IN_PROGRESS to COMPLETED and
	// stamps its end date. Unknown ids and completed processes are no-ops.
	CompleteProcess(ctx context.Context, id uuid.UUID) (*entity.RecyclingProcess, error)

	// AddRecord registers a canonical recycling record.
	AddRecord(ctx context.Context, input *AddRecyclingRecordInput) (*entity.RecyclingRecord, error)

	// GetRecord retrieves a recycling record by id.
	GetRecord(ctx context.Context, id uuid.UUID) (*entity.RecyclingRecord, error)

	// ListRecords retrieves all recycling records.
	ListRecords(ctx context.Context) ([]*entity.RecyclingRecord, error)

	// ListRecordsByWaste retrieves recycling records derived from a waste batch.
	ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.RecyclingRecord, error)
}
