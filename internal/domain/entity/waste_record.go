package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the intake status of a waste record at the recycler.
// Transitions are linear and forward-only:
// PENDING -> TRANSFERRED -> PROCESSED, with PROCESSED terminal.
type RecordStatus string

const (
	// RecordStatusPending indicates the record was announced but not yet received.
	RecordStatusPending RecordStatus = "PENDING"
	// RecordStatusTransferred indicates the recycler has taken possession.
	RecordStatusTransferred RecordStatus = "TRANSFERRED"
	// RecordStatusProcessed indicates a recycling process consumed the record.
	RecordStatusProcessed RecordStatus = "PROCESSED"
)

// String returns the string representation of the RecordStatus.
func (s RecordStatus) String() string {
	return string(s)
}

// IsValid checks if the RecordStatus is a valid value.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusTransferred, RecordStatusProcessed:
		return true
	default:
		return false
	}
}

// WasteRecord represents a waste delivery registered at the recycling intake.
type WasteRecord struct {
	ID                      uuid.UUID    `json:"id"`              // Unique identifier of the record.
	Type                    WasteType    `json:"type"`            // Category of the delivered waste.
	Quantity                float64      `json:"quantity"`        // Delivered quantity in kilograms.
	SourceOrganization      string       `json:"sourceOrganization"`      // Organization that shipped the waste.
	DestinationOrganization string       `json:"destinationOrganization"` // Recycler receiving the waste.
	CreatedAt               time.Time    `json:"createdAt"`       // When the record was registered.
	Status                  RecordStatus `json:"status"`          // PENDING, TRANSFERRED or PROCESSED.
	Notes                   string       `json:"notes,omitempty"` // Optional free-form remarks.
}

// Receive moves the record from PENDING to TRANSFERRED and reports whether
// the transition applied. Any other starting state is left untouched.
func (r *WasteRecord) Receive() bool {
	if r.Status != RecordStatusPending {
		return false
	}

	r.Status = RecordStatusTransferred

	return true
}

// MarkProcessed moves the record from TRANSFERRED to PROCESSED and reports
// whether the transition applied. PROCESSED is terminal.
func (r *WasteRecord) MarkProcessed() bool {
	if r.Status != RecordStatusTransferred {
		return false
	}

	r.Status = RecordStatusProcessed

	return true
}
