package repository

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	"github.com/AjaXium2/greenolivechain/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for recycling persistence.
var (
	// ErrRecordNotFound is returned when an intake waste record is not found.
	ErrRecordNotFound = errors.New("waste record not found")
	// ErrProcessNotFound is returned when a recycling process is not found.
	ErrProcessNotFound = errors.New("recycling process not found")
	// ErrRecyclingNotFound is returned when a recycling record is not found.
	ErrRecyclingNotFound = errors.New("recycling record not found")
)

// WasteRecordRepository defines the interface for recycling-intake records.
type WasteRecordRepository interface {
	// CreateRecord persists a new intake record.
	CreateRecord(ctx context.Context, record *entity.WasteRecord) error

	// FindRecordByID retrieves an intake record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.WasteRecord, error)

	// ListRecords retrieves all intake records, oldest first.
	ListRecords(ctx context.Context) ([]*entity.WasteRecord, error)

	// UpdateRecord persists status changes of an intake record.
	UpdateRecord(ctx context.Context, record *entity.WasteRecord) error
}

// RecyclingProcessRepository defines the interface for recycling processes.
type RecyclingProcessRepository interface {
	// CreateProcess persists a new recycling process.
	CreateProcess(ctx context.Context, process *entity.RecyclingProcess) error

	// FindProcessByID retrieves a process by its unique ID.
	FindProcessByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingProcess, error)

	// ListProcesses retrieves all processes, oldest first.
	ListProcesses(ctx context.Context) ([]*entity.RecyclingProcess, error)

	// CountProcessesByWaste counts processes referencing the given waste record.
	CountProcessesByWaste(ctx context.Context, wasteID uuid.UUID) (int64, error)

	// UpdateProcess persists status and end-date changes of a process.
	UpdateProcess(ctx context.Context, process *entity.RecyclingProcess) error
}

// RecyclingRecordRepository defines the interface for canonical recycling records.
type RecyclingRecordRepository interface {
	// CreateRecord persists a new recycling record.
	CreateRecord(ctx context.Context, record *entity.RecyclingRecord) error

	// FindRecordByID retrieves a recycling record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingRecord, error)

	// ListRecords retrieves all recycling records, newest first.
	ListRecords(ctx context.Context) ([]*entity.RecyclingRecord, error)

	// ListRecordsByWaste retrieves every recycling record derived from the
	// given waste batch, in insertion order.
	ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.RecyclingRecord, error)
}
