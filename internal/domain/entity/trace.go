package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionRecord is the canonical extraction-stage record as written to the
// ledger. The traceability chain treats it as an opaque payload except for the
// WasteID foreign key and the Timestamp used for ordering.
type ExtractionRecord struct {
	ID               uuid.UUID   `json:"id"`
	WasteID          uuid.UUID   `json:"wasteId"`
	ProductType      string      `json:"productType"`
	Quantity         float64     `json:"quantity"`
	Quality          string      `json:"quality,omitempty"`
	ExtractionMethod string      `json:"extractionMethod,omitempty"`
	Temperature      float64     `json:"temperature,omitempty"`
	Pressure         float64     `json:"pressure,omitempty"`
	YieldPercentage  float64     `json:"yieldPercentage,omitempty"`
	Status           StageStatus `json:"status"`
	Timestamp        time.Time   `json:"timestamp"`
	BlockchainTxID   string      `json:"blockchainTxId,omitempty"`
}

// RecyclingRecord is the canonical recycling-stage record as written to the
// ledger, opaque to the chain except for WasteID and Timestamp.
type RecyclingRecord struct {
	ID                  uuid.UUID `json:"id"`
	WasteID             uuid.UUID `json:"wasteId"`
	RecycledProduct     string    `json:"recycledProduct"`
	Quantity            float64   `json:"quantity"`
	Method              string    `json:"method,omitempty"`
	EnvironmentalImpact string    `json:"environmentalImpact,omitempty"`
	Certifications      []string  `json:"certifications,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
	BlockchainTxID      string    `json:"blockchainTxId,omitempty"`
}

// TraceabilityChain is the derived lineage of a waste batch: its origin plus
// every extraction and recycling record referencing it. It is assembled on
// demand, never persisted and never mutated after assembly. Ordering inside
// Extractions and Recyclings is whatever the store returned.
type TraceabilityChain struct {
	WasteID     uuid.UUID          `json:"wasteId"`
	Waste       *FarmerWaste       `json:"waste"`
	Extractions []ExtractionRecord `json:"extractions"`
	Recyclings  []RecyclingRecord  `json:"recyclings"`
}
