package entity

import (
	"time"

	"github.com/google/uuid"
)

// StageStatus is the lifecycle status of a stage-owned waste batch
// (farm or extraction stage). The only transition is READY -> TRANSFERRED
// and TRANSFERRED is terminal.
type StageStatus string

const (
	// StageStatusReady indicates the batch is available for handoff.
	StageStatusReady StageStatus = "READY"
	// StageStatusTransferred indicates the batch was handed to the next stage.
	StageStatusTransferred StageStatus = "TRANSFERRED"
)

// String returns the string representation of the StageStatus.
func (s StageStatus) String() string {
	return string(s)
}

// IsValid checks if the StageStatus is a valid value.
func (s StageStatus) IsValid() bool {
	switch s {
	case StageStatusReady, StageStatusTransferred:
		return true
	default:
		return false
	}
}

// FarmerWaste represents a quantified waste batch declared at the farm stage.
type FarmerWaste struct {
	ID           uuid.UUID   `json:"id"`                     // Unique identifier of the batch.
	Type         WasteType   `json:"type"`                   // Category of the by-product.
	Quantity     float64     `json:"quantity"`               // Declared quantity in kilograms.
	HarvestDate  time.Time   `json:"harvestDate"`            // When the waste was collected.
	TransferDate *time.Time  `json:"transferDate,omitempty"` // Set only once the batch is transferred.
	Status       StageStatus `json:"status"`                 // READY or TRANSFERRED.
}

// Transfer moves the batch to TRANSFERRED and stamps the transfer date.
// It reports whether the transition applied; a batch that is already
// TRANSFERRED is left untouched.
func (w *FarmerWaste) Transfer(at time.Time) bool {
	if w.Status != StageStatusReady {
		return false
	}

	w.Status = StageStatusTransferred
	w.TransferDate = &at

	return true
}
