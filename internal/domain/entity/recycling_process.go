package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessType classifies the transformation applied to a received waste record.
type ProcessType string

const (
	// ProcessTypeCompost indicates composting of organic waste.
	ProcessTypeCompost ProcessType = "COMPOST"
	// ProcessTypeFuel indicates conversion into biomass fuel.
	ProcessTypeFuel ProcessType = "FUEL"
	// ProcessTypeFertilizer indicates transformation into fertilizer.
	ProcessTypeFertilizer ProcessType = "FERTILIZER"
	// ProcessTypeOther indicates any transformation outside the named categories.
	ProcessTypeOther ProcessType = "OTHER"
)

// String returns the string representation of the ProcessType.
func (t ProcessType) String() string {
	return string(t)
}

// IsValid checks if the ProcessType is a valid value.
func (t ProcessType) IsValid() bool {
	switch t {
	case ProcessTypeCompost, ProcessTypeFuel, ProcessTypeFertilizer, ProcessTypeOther:
		return true
	default:
		return false
	}
}

// ProcessStatus is the lifecycle status of a recycling process.
// The only transition is IN_PROGRESS -> COMPLETED and COMPLETED is terminal.
type ProcessStatus string

const (
	// ProcessStatusInProgress indicates the transformation is still running.
	ProcessStatusInProgress ProcessStatus = "IN_PROGRESS"
	// ProcessStatusCompleted indicates the transformation finished.
	ProcessStatusCompleted ProcessStatus = "COMPLETED"
)

// String returns the string representation of the ProcessStatus.
func (s ProcessStatus) String() string {
	return string(s)
}

// IsValid checks if the ProcessStatus is a valid value.
func (s ProcessStatus) IsValid() bool {
	switch s {
	case ProcessStatusInProgress, ProcessStatusCompleted:
		return true
	default:
		return false
	}
}

// RecyclingProcess represents a transformation applied to a waste record.
// A process is created only against a record in TRANSFERRED state; creating
// it consumes the record (the record moves to PROCESSED).
type RecyclingProcess struct {
	ID             uuid.UUID     `json:"id"`                       // Unique identifier of the process.
	WasteID        uuid.UUID     `json:"wasteId"`                  // Waste record this process consumes.
	ProcessType    ProcessType   `json:"processType"`              // COMPOST, FUEL, FERTILIZER or OTHER.
	StartDate      time.Time     `json:"startDate"`                // When the transformation started.
	EndDate        *time.Time    `json:"endDate,omitempty"`        // Set only once the process completes.
	OutputQuantity *float64      `json:"outputQuantity,omitempty"` // Yield in kilograms, when known.
	Status         ProcessStatus `json:"status"`                   // IN_PROGRESS or COMPLETED.
	Notes          string        `json:"notes,omitempty"`          // Optional free-form remarks.
}

// Complete moves the process to COMPLETED and stamps the end date.
// Already-completed processes are left untouched.
func (p *RecyclingProcess) Complete(at time.Time) bool {
	if p.Status != ProcessStatusInProgress {
		return false
	}

	p.Status = ProcessStatusCompleted
	p.EndDate = &at

	return true
}
