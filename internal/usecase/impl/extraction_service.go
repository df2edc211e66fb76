package impl

import (
	"context"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type extractionService struct {
	wasteRepo  repository.ExtractionWasteRepository
	recordRepo repository.ExtractionRecordRepository
}

// NewExtractionService creates the extraction-stage service.
func NewExtractionService(
	wasteRepo repository.ExtractionWasteRepository,
	recordRepo repository.ExtractionRecordRepository,
) usecase.ExtractionUsecase {
	return &extractionService{
		wasteRepo:  wasteRepo,
		recordRepo: recordRepo,
	}
}

// AddExtractionWaste registers a new extraction-stage waste batch in READY state.
func (s *extractionService) AddExtractionWaste(ctx context.Context, input *usecase.AddExtractionWasteInput) (*entity.ExtractionWaste, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidWasteType.WithDetails(input.Type.String())
	}

	waste := &entity.ExtractionWaste{
		ID:             uuid.New(),
		Type:           input.Type,
		Quantity:       input.Quantity,
		SourceOlives:   input.SourceOlives,
		ProductionDate: input.ProductionDate,
		Status:         entity.StageStatusReady,
	}

	if err := s.wasteRepo.CreateWaste(ctx, waste); err != nil {
		return nil, errors.Wrap(err, "failed to create extraction waste batch")
	}

	return waste, nil
}

// ListExtractionWastes retrieves every extraction-stage waste batch.
func (s *extractionService) ListExtractionWastes(ctx context.Context) ([]*entity.ExtractionWaste, error) {
	wastes, err := s.wasteRepo.ListWastes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list extraction waste batches")
	}

	return wastes, nil
}

// TransferExtractionWaste marks a batch as handed off to the recycler.
// Unknown ids and already-transferred batches leave the collection untouched.
func (s *extractionService) TransferExtractionWaste(ctx context.Context, id uuid.UUID) (*entity.ExtractionWaste, error) {
	waste, err := s.wasteRepo.FindWasteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find extraction waste batch")
	}

	if !waste.Transfer(time.Now()) {
		return waste, nil
	}

	if err := s.wasteRepo.UpdateWaste(ctx, waste); err != nil {
		return nil, errors.Wrap(err, "failed to update extraction waste batch")
	}

	return waste, nil
}

// AddRecord registers a canonical extraction record.
func (s *extractionService) AddRecord(ctx context.Context, input *usecase.AddExtractionRecordInput) (*entity.ExtractionRecord, error) {
	record := &entity.ExtractionRecord{
		ID:               uuid.New(),
		WasteID:          input.WasteID,
		ProductType:      input.ProductType,
		Quantity:         input.Quantity,
		Quality:          input.Quality,
		ExtractionMethod: input.ExtractionMethod,
		Temperature:      input.Temperature,
		Pressure:         input.Pressure,
		YieldPercentage:  input.YieldPercentage,
		Status:           entity.StageStatusReady,
		Timestamp:        time.Now(),
	}

	if err := s.recordRepo.CreateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create extraction record")
	}

	return record, nil
}

// GetRecord retrieves an extraction record by id.
func (s *extractionService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.ExtractionRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExtractionNotFound) {
			return nil, domainerrors.ErrExtractionNotFound
		}

		return nil, errors.Wrap(err, "failed to find extraction record")
	}

	return record, nil
}

// ListRecords retrieves all extraction records.
func (s *extractionService) ListRecords(ctx context.Context) ([]*entity.ExtractionRecord, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records")
	}

	return records, nil
}

// ListRecordsByWaste retrieves extraction records derived from a waste batch.
func (s *extractionService) ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.ExtractionRecord, error) {
	records, err := s.recordRepo.ListRecordsByWaste(ctx, wasteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records by waste")
	}

	return records, nil
}

// UpdateRecordStatus applies a status event to a record. Only the transition
// READY -> TRANSFERRED has an effect; anything else on a valid status is a
// no-op returning the current record.
func (s *extractionService) UpdateRecordStatus(ctx context.Context, id uuid.UUID, status entity.StageStatus) (*entity.ExtractionRecord, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status.String())
	}

	record, err := s.recordRepo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExtractionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find extraction record")
	}

	if status != entity.StageStatusTransferred || record.Status != entity.StageStatusReady {
		return record, nil
	}

	record.Status = entity.StageStatusTransferred
	if err := s.recordRepo.UpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update extraction record")
	}

	return record, nil
}
