package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmerWasteModel is the GORM-specific struct for the 'farmer_wastes' table.
// It represents a waste batch declared at the farm stage.
type FarmerWasteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type         string    `gorm:"type:varchar(32);not null"`
	Quantity     float64   `gorm:"not null"`
	HarvestDate  time.Time `gorm:"not null"`
	TransferDate *time.Time
	Status       string `gorm:"type:varchar(16);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerWasteModel) TableName() string {
	return "farmer_wastes"
}
