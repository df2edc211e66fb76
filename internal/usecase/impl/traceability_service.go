package impl

import (
	"context"
	"fmt"

	"github.com/AjaXium2/greenolivechain/config"
	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type traceabilityService struct {
	wasteRepo      repository.FarmWasteRepository
	extractionRepo repository.ExtractionRecordRepository
	recyclingRepo  repository.RecyclingRecordRepository
	dashboard      *config.DashboardConfig
}

// NewTraceabilityService creates the read-side aggregation service.
func NewTraceabilityService(
	wasteRepo repository.FarmWasteRepository,
	extractionRepo repository.ExtractionRecordRepository,
	recyclingRepo repository.RecyclingRecordRepository,
	dashboard *config.DashboardConfig,
) usecase.TraceabilityUsecase {
	return &traceabilityService{
		wasteRepo:      wasteRepo,
		extractionRepo: extractionRepo,
		recyclingRepo:  recyclingRepo,
		dashboard:      dashboard,
	}
}

// GetTraceability assembles the full lineage of a waste batch. Any failed
// lookup aborts the assembly, so callers never see a partial chain.
func (s *traceabilityService) GetTraceability(ctx context.Context, wasteID uuid.UUID) (*entity.TraceabilityChain, error) {
	waste, err := s.wasteRepo.FindWasteByID(ctx, wasteID)
	if err != nil {
		if errors.Is(err, repository.ErrWasteNotFound) {
			return nil, domainerrors.ErrWasteNotFound.WithDetails(wasteID.String())
		}

		return nil, errors.Wrap(err, "failed to find waste batch")
	}

	extractions, err := s.extractionRepo.ListRecordsByWaste(ctx, wasteID)
	if err != nil {
		return nil, domainerrors.ErrTraceabilityIncomplete.WrapMessage("failed to load extraction lineage")
	}

	recyclings, err := s.recyclingRepo.ListRecordsByWaste(ctx, wasteID)
	if err != nil {
		return nil, domainerrors.ErrTraceabilityIncomplete.WrapMessage("failed to load recycling lineage")
	}

	return &entity.TraceabilityChain{
		WasteID:     wasteID,
		Waste:       waste,
		Extractions: extractions,
		Recyclings:  recyclings,
	}, nil
}

// RecentActivity samples the newest entries of each collection, merges them
// into one feed sorted newest first and truncates it to the configured limit.
func (s *traceabilityService) RecentActivity(ctx context.Context) ([]entity.ActivityEvent, error) {
	wastes, err := s.wasteRepo.ListWastes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste batches")
	}

	extractions, err := s.extractionRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records")
	}

	recyclings, err := s.recyclingRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records")
	}

	events := make([]entity.ActivityEvent, 0, s.dashboard.WasteSample+s.dashboard.ExtractionSample+s.dashboard.RecyclingSample)

	// ListWastes is oldest first, so the newest batches sit at the tail.
	for i := len(wastes) - 1; i >= 0 && len(wastes)-i <= s.dashboard.WasteSample; i-- {
		waste := wastes[i]
		events = append(events, entity.ActivityEvent{
			ID:          waste.ID.String(),
			Kind:        entity.ActivityKindWaste,
			Description: fmt.Sprintf("Waste batch registered: %s (%.1f kg)", waste.Type, waste.Quantity),
			Timestamp:   waste.HarvestDate,
		})
	}

	for i, record := range extractions {
		if i >= s.dashboard.ExtractionSample {
			break
		}
		events = append(events, entity.ActivityEvent{
			ID:             record.ID.String(),
			Kind:           entity.ActivityKindExtraction,
			Description:    fmt.Sprintf("Extraction recorded: %s (%.1f kg)", record.ProductType, record.Quantity),
			Timestamp:      record.Timestamp,
			BlockchainTxID: record.BlockchainTxID,
		})
	}

	for i, record := range recyclings {
		if i >= s.dashboard.RecyclingSample {
			break
		}
		events = append(events, entity.ActivityEvent{
			ID:             record.ID.String(),
			Kind:           entity.ActivityKindRecycling,
			Description:    fmt.Sprintf("Recycling recorded: %s (%.1f kg)", record.RecycledProduct, record.Quantity),
			Timestamp:      record.Timestamp,
			BlockchainTxID: record.BlockchainTxID,
		})
	}

	return entity.MergeActivity(events, s.dashboard.ActivityLimit), nil
}

// Stats computes the dashboard totals. Every stored entry counts as one
// on-chain transaction, so blockchainTransactions is the sum of the three.
func (s *traceabilityService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	wastes, err := s.wasteRepo.ListWastes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waste batches")
	}

	extractions, err := s.extractionRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records")
	}

	recyclings, err := s.recyclingRepo.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records")
	}

	return &usecase.DashboardStats{
		TotalWastes:            len(wastes),
		TotalExtractions:       len(extractions),
		TotalRecyclings:        len(recyclings),
		BlockchainTransactions: int64(len(wastes) + len(extractions) + len(recyclings)),
	}, nil
}
