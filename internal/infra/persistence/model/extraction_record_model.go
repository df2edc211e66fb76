package model

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionRecordModel is the GORM-specific struct for the 'extraction_records' table.
// It holds the canonical extraction record mirrored from the ledger.
type ExtractionRecordModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WasteID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductType      string    `gorm:"type:varchar(64);not null"`
	Quantity         float64   `gorm:"not null"`
	Quality          string    `gorm:"type:varchar(64)"`
	ExtractionMethod string    `gorm:"type:varchar(64)"`
	Temperature      float64
	Pressure         float64
	YieldPercentage  float64
	Status           string    `gorm:"type:varchar(16);not null"`
	Timestamp        time.Time `gorm:"not null;index"`
	BlockchainTxID   string    `gorm:"type:varchar(128)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExtractionRecordModel) TableName() string {
	return "extraction_records"
}
