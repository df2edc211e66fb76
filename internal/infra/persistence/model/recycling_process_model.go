package model

import (
	"time"

	"github.com/google/uuid"
)

// RecyclingProcessModel is the GORM-specific struct for the 'recycling_processes' table.
// It represents a transformation applied to a waste record. The unique index on
// WasteID enforces at most one process per record at the storage level.
type RecyclingProcessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WasteID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProcessType    string    `gorm:"type:varchar(32);not null"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        *time.Time
	OutputQuantity *float64
	Status         string `gorm:"type:varchar(16);not null;index"`
	Notes          string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecyclingProcessModel) TableName() string {
	return "recycling_processes"
}
