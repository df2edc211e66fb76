// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	"github.com/AjaXium2/greenolivechain/internal/errors"

	"github.com/google/uuid"
)

// ErrWasteNotFound is returned when a waste batch is not found.
var ErrWasteNotFound = errors.New("waste batch not found")

// FarmWasteRepository defines the interface for farm-stage waste persistence.
type FarmWasteRepository interface {
	// CreateWaste persists a new farm waste batch.
	CreateWaste(ctx context.Context, waste *entity.FarmerWaste) error

	// FindWasteByID retrieves a waste batch by its unique ID.
	FindWasteByID(ctx context.Context, id uuid.UUID) (*entity.FarmerWaste, error)

	// ListWastes retrieves all waste batches, oldest first.
	ListWastes(ctx context.Context) ([]*entity.FarmerWaste, error)

	// UpdateWaste persists status and transfer-date changes of a batch.
	UpdateWaste(ctx context.Context, waste *entity.FarmerWaste) error
}
