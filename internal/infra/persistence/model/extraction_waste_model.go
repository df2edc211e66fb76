package model

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionWasteModel is the GORM-specific struct for the 'extraction_wastes' table.
// It represents a waste batch produced by the oil extraction stage.
type ExtractionWasteModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type           string    `gorm:"type:varchar(32);not null"`
	Quantity       float64   `gorm:"not null"`
	SourceOlives   string    `gorm:"type:varchar(255)"`
	ProductionDate time.Time `gorm:"not null"`
	TransferDate   *time.Time
	Status         string `gorm:"type:varchar(16);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExtractionWasteModel) TableName() string {
	return "extraction_wastes"
}
