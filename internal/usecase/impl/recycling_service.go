package impl

import (
	"context"
	"sync"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type recyclingService struct {
	recordRepo    repository.WasteRecordRepository
	processRepo   repository.RecyclingProcessRepository
	recyclingRepo repository.RecyclingRecordRepository
	txManager     repository.TransactionManager

	mu       sync.Mutex
	selected *uuid.UUID
}

// NewRecyclingService creates the recycling workflow service.
func NewRecyclingService(
	recordRepo repository.WasteRecordRepository,
	processRepo repository.RecyclingProcessRepository,
	recyclingRepo repository.RecyclingRecordRepository,
	txManager repository.TransactionManager,
) usecase.RecyclingUsecase {
	return &recyclingService{
		recordRepo:    recordRepo,
		processRepo:   processRepo,
		recyclingRepo: recyclingRepo,
		txManager:     txManager,
	}
}

// AddWasteRecord registers a new intake record in PENDING state.
func (s *recyclingService) AddWasteRecord(ctx context.Context, input *usecase.AddWasteRecordInput) (*entity.WasteRecord, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidWasteType.WithDetails(input.Type.String())
	}

	record := &entity.WasteRecord{
		ID:                      uuid.New(),
		Type:                    input.Type,
		Quantity:                input.Quantity,
		SourceOrganization:      input.SourceOrganization,
		DestinationOrganization: input.DestinationOrganization,
		Status:                  entity.RecordStatusPending,
		CreatedAt:               time.Now(),
		Notes:                   input.Notes,
	}

	if err := s.recordRepo.CreateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create waste record")
	}

	return record, nil
}

// ListWasteRecords retrieves every intake record.
func (s *recyclingService) ListWasteRecords(ctx context.Context) ([]*entity.WasteRecord, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste records")
	}

	return records, nil
}

// ReceiveWaste moves an intake record from PENDING to TRANSFERRED.
func (s *recyclingService) ReceiveWaste(ctx context.Context, id uuid.UUID) (*entity.WasteRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find waste record")
	}

	if !record.Receive() {
		return record, nil
	}

	if err := s.recordRepo.UpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update waste record")
	}

	return record, nil
}

// StartProcess selects the intake record the next process will consume. The
// record must be TRANSFERRED and must not already have a process.
func (s *recyclingService) StartProcess(ctx context.Context, wasteID uuid.UUID) (*entity.WasteRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, wasteID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find waste record")
	}

	if record.Status != entity.RecordStatusTransferred {
		return nil, domainerrors.ErrRecordNotReceivable.WithDetails(record.Status.String())
	}

	count, err := s.processRepo.CountProcessesByWaste(ctx, wasteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count processes for waste record")
	}
	if count > 0 {
		return nil, domainerrors.ErrProcessAlreadyExists
	}

	s.mu.Lock()
	id := wasteID
	s.selected = &id
	s.mu.Unlock()

	return record, nil
}

// AddProcess creates an IN_PROGRESS process against the current selection and
// marks the selected record PROCESSED, atomically. The selection is cleared
// only after the transaction commits.
func (s *recyclingService) AddProcess(ctx context.Context, input *usecase.AddProcessInput) (*entity.RecyclingProcess, error) {
	if !input.ProcessType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(input.ProcessType.String())
	}

	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	if selected == nil {
		return nil, domainerrors.ErrNoSelection
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	process := &entity.RecyclingProcess{
		ID:             uuid.New(),
		WasteID:        *selected,
		ProcessType:    input.ProcessType,
		StartDate:      startDate,
		OutputQuantity: input.OutputQuantity,
		Status:         entity.ProcessStatusInProgress,
		Notes:          input.Notes,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		recordRepo := factory.NewWasteRecordRepository()
		processRepo := factory.NewRecyclingProcessRepository()

		record, err := recordRepo.FindRecordByID(ctx, *selected)
		if err != nil {
			return errors.Wrap(err, "failed to find selected waste record")
		}

		count, err := processRepo.CountProcessesByWaste(ctx, *selected)
		if err != nil {
			return errors.Wrap(err, "failed to count processes for waste record")
		}
		if count > 0 {
			return domainerrors.ErrProcessAlreadyExists
		}

		if err := processRepo.CreateProcess(ctx, process); err != nil {
			return errors.Wrap(err, "failed to create recycling process")
		}

		record.MarkProcessed()
		if err := recordRepo.UpdateRecord(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update waste record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.selected != nil && *s.selected == *selected {
		s.selected = nil
	}
	s.mu.Unlock()

	return process, nil
}

// ListProcesses retrieves every recycling process.
func (s *recyclingService) ListProcesses(ctx context.Context) ([]*entity.RecyclingProcess, error) {
	processes, err := s.processRepo.ListProcesses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling processes")
	}

	return processes, nil
}

// CompleteProcess moves a process from IN_PROGRESS to COMPLETED.
func (s *recyclingService) CompleteProcess(ctx context.Context, id uuid.UUID) (*entity.RecyclingProcess, error) {
	process, err := s.processRepo.FindProcessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProcessNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find recycling process")
	}

	if !process.Complete(time.Now()) {
		return process, nil
	}

	if err := s.processRepo.UpdateProcess(ctx, process); err != nil {
		return nil, errors.Wrap(err, "failed to update recycling process")
	}

	return process, nil
}

// AddRecord registers a canonical recycling record.
func (s *recyclingService) AddRecord(ctx context.Context, input *usecase.AddRecyclingRecordInput) (*entity.RecyclingRecord, error) {
	record := &entity.RecyclingRecord{
		ID:                  uuid.New(),
		WasteID:             input.WasteID,
		RecycledProduct:     input.RecycledProduct,
		Quantity:            input.Quantity,
		Method:              input.Method,
		EnvironmentalImpact: input.EnvironmentalImpact,
		Certifications:      input.Certifications,
		Timestamp:           time.Now(),
	}

	if err := s.recyclingRepo.CreateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create recycling record")
	}

	return record, nil
}

// GetRecord retrieves a recycling record by id.
func (s *recyclingService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.RecyclingRecord, error) {
	record, err := s.recyclingRepo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecyclingNotFound) {
			return nil, domainerrors.ErrRecyclingNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling record")
	}

	return record, nil
}

// ListRecords retrieves all recycling records.
func (s *recyclingService) ListRecords(ctx context.Context) ([]*entity.RecyclingRecord, error) {
	records, err := s.recyclingRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records")
	}

	return records, nil
}

// ListRecordsByWaste retrieves recycling records derived from a waste batch.
func (s *recyclingService) ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.RecyclingRecord, error) {
	records, err := s.recyclingRepo.ListRecordsByWaste(ctx, wasteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records by waste")
	}

	return records, nil
}
