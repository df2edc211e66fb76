package usecase

import (
	"context"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"

	"github.com/google/uuid"
)

// AddExtractionWasteInput carries a new extraction-stage waste declaration.
type AddExtractionWasteInput struct {
	Type           entity.WasteType `json:"type"`
	Quantity       float64          `json:"quantity"`
	SourceOlives   string           `json:"sourceOlives"`
	ProductionDate time.Time        `json:"productionDate"`
}

// AddExtractionRecordInput carries a new canonical extraction record.
type AddExtractionRecordInput struct {
	WasteID          uuid.UUID `json:"wasteId"`
	ProductType      string    `json:"productType"`
	Quantity         float64   `json:"quantity"`
	Quality          string    `json:"quality"`
	ExtractionMethod string    `json:"extractionMethod"`
	Temperature      float64   `json:"temperature"`
	Pressure         float64   `json:"pressure"`
	YieldPercentage  float64   `json:"yieldPercentage"`
}

// ExtractionUsecase defines the extraction-stage use cases: the lifecycle of
// waste produced by the mill plus the canonical extraction records.
type ExtractionUsecase interface {
	// AddExtractionWaste registers a new extraction-stage waste batch.
	AddExtractionWaste(ctx context.Context, input *AddExtractionWasteInput) (*entity.ExtractionWaste, error)

	// ListExtractionWastes retrieves every extraction-stage waste batch.
	ListExtractionWastes(ctx context.Context) ([]*entity.ExtractionWaste, error)

	// TransferExtractionWaste marks a batch as handed off to the recycler.
	// Unknown ids and already-transferred batches are no-ops.
	TransferExtractionWaste(ctx context.Context, id uuid.UUID) (*entity.ExtractionWaste, error)

	// AddRecord registers a canonical extraction record.
	AddRecord(ctx context.Context, input *AddExtractionRecordInput) (*entity.ExtractionRecord, error)

	// GetRecord retrieves an extraction record by id.
	GetRecord(ctx context.Context, id uuid.UUID) (*entity.ExtractionRecord, error)

	// ListRecords retrieves all extraction records.
	ListRecords(ctx context.Context) ([]*entity.ExtractionRecord, error)

	// ListRecordsByWaste retrieves extraction records derived from a waste batch.
	ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.ExtractionRecord, error)

	// UpdateRecordStatus applies a status event to a record; illegal events
	// for the current state are no-ops.
	UpdateRecordStatus(ctx context.Context, id uuid.UUID, status entity.StageStatus) (*entity.ExtractionRecord, error)
}
