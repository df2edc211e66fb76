package model

import (
	"time"

	"github.com/google/uuid"
)

// RecyclingRecordModel is the GORM-specific struct for the 'recycling_records' table.
// It holds the canonical recycling record mirrored from the ledger.
// Certifications is stored as a JSON array.
type RecyclingRecordModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WasteID             uuid.UUID `gorm:"type:uuid;not null;index"`
	RecycledProduct     string    `gorm:"type:varchar(128);not null"`
	Quantity            float64   `gorm:"not null"`
	Method              string    `gorm:"type:varchar(128)"`
	EnvironmentalImpact string    `gorm:"type:varchar(255)"`
	Certifications      []string  `gorm:"serializer:json"`
	Timestamp           time.Time `gorm:"not null;index"`
	BlockchainTxID      string    `gorm:"type:varchar(128)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecyclingRecordModel) TableName() string {
	return "recycling_records"
}
