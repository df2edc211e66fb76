// Package usecase defines the application's use case interfaces and their inputs.
package usecase

import (
	"context"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"

	"github.com/google/uuid"
)

// AddWasteInput carries a new farm waste declaration.
type AddWasteInput struct {
	Type        entity.WasteType `json:"type"`
	Quantity    float64          `json:"quantity"`
	HarvestDate time.Time        `json:"harvestDate"`
}

// WasteUsecase defines the farm-stage waste lifecycle use cases.
type WasteUsecase interface {
	// AddWaste registers a new waste batch. The batch starts in READY state
	// and is returned only after the write is acknowledged by the store.
	AddWaste(ctx context.Context, input *AddWasteInput) (*entity.FarmerWaste, error)

	// ListWastes retrieves every registered waste batch.
	ListWastes(ctx context.Context) ([]*entity.FarmerWaste, error)

	// TransferWaste marks a batch as handed off to the extraction stage.
	// Unknown ids and already-transferred batches are no-ops; the current
	// state of the batch is returned when it exists.
	TransferWaste(ctx context.Context, id uuid.UUID) (*entity.FarmerWaste, error)

	// UpdateStatus applies a status event by name. Events that are not
	// legal for the batch's current state are no-ops.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StageStatus) (*entity.FarmerWaste, error)

	// WasteHistory returns the on-chain history of a batch.
	WasteHistory(ctx context.Context, id uuid.UUID) ([]entity.LedgerEvent, error)
}
