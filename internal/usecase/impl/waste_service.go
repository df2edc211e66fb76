package impl

import (
	"context"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	"github.com/AjaXium2/greenolivechain/internal/domain/service"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type wasteService struct {
	wasteRepo repository.FarmWasteRepository
	ledger    service.LedgerGateway
}

// NewWasteService creates the farm-stage waste lifecycle service.
func NewWasteService(wasteRepo repository.FarmWasteRepository, ledger service.LedgerGateway) usecase.WasteUsecase {
	return &wasteService{
		wasteRepo: wasteRepo,
		ledger:    ledger,
	}
}

// AddWaste registers a new waste batch in READY state. The batch is returned
// only after the store acknowledged the write; no optimistic local entry is
// kept around a failed write.
func (s *wasteService) AddWaste(ctx context.Context, input *usecase.AddWasteInput) (*entity.FarmerWaste, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidWasteType.WithDetails(input.Type.String())
	}

	waste := &entity.FarmerWaste{
		ID:          uuid.New(),
		Type:        input.Type,
		Quantity:    input.Quantity,
		HarvestDate: input.HarvestDate,
		Status:      entity.StageStatusReady,
	}

	if err := s.wasteRepo.CreateWaste(ctx, waste); err != nil {
		return nil, errors.Wrap(err, "failed to create waste batch")
	}

	return waste, nil
}

// ListWastes retrieves every registered waste batch.
func (s *wasteService) ListWastes(ctx context.Context) ([]*entity.FarmerWaste, error) {
	wastes, err := s.wasteRepo.ListWastes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste batches")
	}

	return wastes, nil
}

// TransferWaste marks a batch as handed off. Unknown ids and batches that are
// already TRANSFERRED leave the collection untouched; the second call on the
// same batch returns it with its original transfer date.
func (s *wasteService) TransferWaste(ctx context.Context, id uuid.UUID) (*entity.FarmerWaste, error) {
	waste, err := s.wasteRepo.FindWasteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find waste batch")
	}

	if !waste.Transfer(time.Now()) {
		return waste, nil
	}

	if err := s.wasteRepo.UpdateWaste(ctx, waste); err != nil {
		return nil, errors.Wrap(err, "failed to update waste batch")
	}

	return waste, nil
}

// UpdateStatus applies a status event by name. The only event with an effect
// is TRANSFERRED; everything else is a no-op on a valid status and an error
// on an unknown one.
func (s *wasteService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StageStatus) (*entity.FarmerWaste, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status.String())
	}

	if status == entity.StageStatusTransferred {
		return s.TransferWaste(ctx, id)
	}

	waste, err := s.wasteRepo.FindWasteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find waste batch")
	}

	return waste, nil
}

// WasteHistory returns the on-chain history of a batch.
func (s *wasteService) WasteHistory(ctx context.Context, id uuid.UUID) ([]entity.LedgerEvent, error) {
	events, err := s.ledger.WasteHistory(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch waste history")
	}

	return events, nil
}
