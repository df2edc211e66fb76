package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteRecordModel is the GORM-specific struct for the 'waste_records' table.
// It represents a waste delivery registered at the recycling intake.
type WasteRecordModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type                    string    `gorm:"type:varchar(32);not null"`
	Quantity                float64   `gorm:"not null"`
	SourceOrganization      string    `gorm:"type:varchar(128);not null"`
	DestinationOrganization string    `gorm:"type:varchar(128);not null"`
	Status                  string    `gorm:"type:varchar(16);not null;index"`
	Notes                   string    `gorm:"type:text"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (WasteRecordModel) TableName() string {
	return "waste_records"
}
