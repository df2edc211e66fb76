package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionWaste represents a waste batch produced by the oil-extraction
// stage. SourceOlives is a free-text back-reference to the olive batch the
// waste came from; no referential integrity is enforced on it.
type ExtractionWaste struct {
	ID             uuid.UUID   `json:"id"`                     // Unique identifier of the batch.
	Type           WasteType   `json:"type"`                   // Category of the by-product.
	Quantity       float64     `json:"quantity"`               // Declared quantity in kilograms.
	SourceOlives   string      `json:"sourceOlives"`           // Lookup key of the originating olive batch.
	ProductionDate time.Time   `json:"productionDate"`         // When the waste was produced.
	TransferDate   *time.Time  `json:"transferDate,omitempty"` // Set only once the batch is transferred.
	Status         StageStatus `json:"status"`                 // READY or TRANSFERRED.
}

// Transfer moves the batch to TRANSFERRED and stamps the transfer date.
// Already-transferred batches are left untouched.
func (w *ExtractionWaste) Transfer(at time.Time) bool {
	if w.Status != StageStatusReady {
		return false
	}

	w.Status = StageStatusTransferred
	w.TransferDate = &at

	return true
}
