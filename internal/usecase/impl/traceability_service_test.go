package impl

import (
	"context"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/config"
	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	mockRepo "github.com/AjaXium2/greenolivechain/internal/mocks/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceabilityServiceFixtures holds all test dependencies for traceability service tests.
type traceabilityServiceFixtures struct {
	service        usecase.TraceabilityUsecase
	wasteRepo      *mockRepo.MockFarmWasteRepository
	extractionRepo *mockRepo.MockExtractionRecordRepository
	recyclingRepo  *mockRepo.MockRecyclingRecordRepository
}

func createTestTraceabilityService(t *testing.T) traceabilityServiceFixtures {
	wasteRepo := mockRepo.NewMockFarmWasteRepository(t)
	extractionRepo := mockRepo.NewMockExtractionRecordRepository(t)
	recyclingRepo := mockRepo.NewMockRecyclingRecordRepository(t)
	dashboard := &config.DashboardConfig{
		ActivityLimit:    10,
		WasteSample:      5,
		ExtractionSample: 3,
		RecyclingSample:  3,
	}
	service := NewTraceabilityService(wasteRepo, extractionRepo, recyclingRepo, dashboard)

	return traceabilityServiceFixtures{
		service:        service,
		wasteRepo:      wasteRepo,
		extractionRepo: extractionRepo,
		recyclingRepo:  recyclingRepo,
	}
}

func TestTraceabilityService_GetTraceability(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	waste := &entity.FarmerWaste{
		ID:     wasteID,
		Type:   entity.WasteTypeOlives,
		Status: entity.StageStatusTransferred,
	}
	extractions := []entity.ExtractionRecord{
		{ID: uuid.New(), WasteID: wasteID, ProductType: "olive oil"},
	}
	recyclings := []entity.RecyclingRecord{
		{ID: uuid.New(), WasteID: wasteID, RecycledProduct: "compost"},
	}

	fx.wasteRepo.EXPECT().FindWasteByID(ctx, wasteID).Return(waste, nil)
	fx.extractionRepo.EXPECT().ListRecordsByWaste(ctx, wasteID).Return(extractions, nil)
	fx.recyclingRepo.EXPECT().ListRecordsByWaste(ctx, wasteID).Return(recyclings, nil)

	chain, err := fx.service.GetTraceability(ctx, wasteID)
	require.NoError(t, err)
	require.NotNil(t, chain)
	assert.Equal(t, wasteID, chain.WasteID)
	assert.Equal(t, waste, chain.Waste)
	assert.Len(t, chain.Extractions, 1)
	assert.Len(t, chain.Recyclings, 1)
}

func TestTraceabilityService_GetTraceability_UnknownWaste(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()
	wasteID := uuid.New()

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(nil, repository.ErrWasteNotFound)

	chain, err := fx.service.GetTraceability(ctx, wasteID)
	require.Error(t, err)
	assert.Nil(t, chain)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrWasteNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestTraceabilityService_GetTraceability_NoPartialChain(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	waste := &entity.FarmerWaste{ID: wasteID, Status: entity.StageStatusReady}

	fx.wasteRepo.EXPECT().FindWasteByID(ctx, wasteID).Return(waste, nil)
	fx.extractionRepo.EXPECT().
		ListRecordsByWaste(ctx, wasteID).
		Return(nil, errors.New("connection reset"))

	chain, err := fx.service.GetTraceability(ctx, wasteID)
	require.Error(t, err)
	assert.Nil(t, chain)
}

func TestTraceabilityService_RecentActivity_Order(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()
	base := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

	wastes := []*entity.FarmerWaste{
		{ID: uuid.New(), Type: entity.WasteTypeBranches, Quantity: 10, HarvestDate: base.Add(10 * time.Minute)},
	}
	extractions := []*entity.ExtractionRecord{
		{ID: uuid.New(), ProductType: "olive oil", Quantity: 5, Timestamp: base.Add(30 * time.Minute)},
	}
	recyclings := []*entity.RecyclingRecord{
		{ID: uuid.New(), RecycledProduct: "compost", Quantity: 8, Timestamp: base.Add(20 * time.Minute)},
	}

	fx.wasteRepo.EXPECT().ListWastes(ctx).Return(wastes, nil)
	fx.extractionRepo.EXPECT().ListRecords(ctx).Return(extractions, nil)
	fx.recyclingRepo.EXPECT().ListRecords(ctx).Return(recyclings, nil)

	events, err := fx.service.RecentActivity(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, entity.ActivityKindExtraction, events[0].Kind)
	assert.Equal(t, entity.ActivityKindRecycling, events[1].Kind)
	assert.Equal(t, entity.ActivityKindWaste, events[2].Kind)
}

func TestTraceabilityService_RecentActivity_SamplesAndTruncates(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	// Eight batches, oldest first; only the newest five may enter the feed.
	wastes := make([]*entity.FarmerWaste, 0, 8)
	for i := 0; i < 8; i++ {
		wastes = append(wastes, &entity.FarmerWaste{
			ID:          uuid.New(),
			Type:        entity.WasteTypeLeaves,
			HarvestDate: base.Add(time.Duration(i) * time.Hour),
		})
	}

	// Five records, newest first; only the first three may enter the feed.
	extractions := make([]*entity.ExtractionRecord, 0, 5)
	for i := 0; i < 5; i++ {
		extractions = append(extractions, &entity.ExtractionRecord{
			ID:        uuid.New(),
			Timestamp: base.Add(time.Duration(100-i) * time.Hour),
		})
	}

	recyclings := make([]*entity.RecyclingRecord, 0, 5)
	for i := 0; i < 5; i++ {
		recyclings = append(recyclings, &entity.RecyclingRecord{
			ID:        uuid.New(),
			Timestamp: base.Add(time.Duration(200-i) * time.Hour),
		})
	}

	fx.wasteRepo.EXPECT().ListWastes(ctx).Return(wastes, nil)
	fx.extractionRepo.EXPECT().ListRecords(ctx).Return(extractions, nil)
	fx.recyclingRepo.EXPECT().ListRecords(ctx).Return(recyclings, nil)

	events, err := fx.service.RecentActivity(ctx)
	require.NoError(t, err)

	// 5 + 3 + 3 sampled, truncated to the limit of 10.
	require.Len(t, events, 10)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.After(events[i-1].Timestamp))
	}

	// The newest recycling records outrank everything else in the feed.
	assert.Equal(t, entity.ActivityKindRecycling, events[0].Kind)
	assert.Equal(t, recyclings[0].ID.String(), events[0].ID)
}

func TestTraceabilityService_Stats(t *testing.T) {
	fx := createTestTraceabilityService(t)

	ctx := context.Background()

	wastes := []*entity.FarmerWaste{{ID: uuid.New()}, {ID: uuid.New()}}
	extractions := []*entity.ExtractionRecord{
		{ID: uuid.New(), BlockchainTxID: "tx-1"},
		{ID: uuid.New()},
	}
	recyclings := []*entity.RecyclingRecord{
		{ID: uuid.New(), BlockchainTxID: "tx-2"},
	}

	fx.wasteRepo.EXPECT().ListWastes(ctx).Return(wastes, nil)
	fx.extractionRepo.EXPECT().ListRecords(ctx).Return(extractions, nil)
	fx.recyclingRepo.EXPECT().ListRecords(ctx).Return(recyclings, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalWastes)
	assert.Equal(t, 2, stats.TotalExtractions)
	assert.Equal(t, 1, stats.TotalRecyclings)

	// Every stored entry counts as one on-chain transaction, regardless of
	// whether the record carries a transaction id yet.
	assert.Equal(t, int64(5), stats.BlockchainTransactions)
}
