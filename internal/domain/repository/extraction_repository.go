package repository

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	"github.com/AjaXium2/greenolivechain/internal/errors"

	"github.com/google/uuid"
)

// ErrExtractionNotFound is returned when an extraction record is not found.
var ErrExtractionNotFound = errors.New("extraction record not found")

// ExtractionWasteRepository defines the interface for extraction-stage waste persistence.
type ExtractionWasteRepository interface {
	// CreateWaste persists a new extraction-stage waste batch.
	CreateWaste(ctx context.Context, waste *entity.ExtractionWaste) error

	// FindWasteByID retrieves a waste batch by its unique ID.
	FindWasteByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionWaste, error)

	// ListWastes retrieves all extraction-stage waste batches, oldest first.
	ListWastes(ctx context.Context) ([]*entity.ExtractionWaste, error)

	// UpdateWaste persists status and transfer-date changes of a batch.
	UpdateWaste(ctx context.Context, waste *entity.ExtractionWaste) error
}

// ExtractionRecordRepository defines the interface for canonical extraction records.
type ExtractionRecordRepository interface {
	// CreateRecord persists a new extraction record.
	CreateRecord(ctx context.Context, record *entity.ExtractionRecord) error

	// FindRecordByID retrieves an extraction record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionRecord, error)

	// ListRecords retrieves all extraction records, newest first.
	ListRecords(ctx context.Context) ([]*entity.ExtractionRecord, error)

	// ListRecordsByWaste retrieves every extraction record derived from the
	// given waste batch, in insertion order.
	ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.ExtractionRecord, error)

	// UpdateRecord persists status changes of an extraction record.
	UpdateRecord(ctx context.Context, record *entity.ExtractionRecord) error
}
