package impl

import (
	"context"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	mockRepo "github.com/AjaXium2/greenolivechain/internal/mocks/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// extractionServiceFixtures holds all test dependencies for extraction service tests.
type extractionServiceFixtures struct {
	service    usecase.ExtractionUsecase
	wasteRepo  *mockRepo.MockExtractionWasteRepository
	recordRepo *mockRepo.MockExtractionRecordRepository
}

func createTestExtractionService(t *testing.T) extractionServiceFixtures {
	wasteRepo := mockRepo.NewMockExtractionWasteRepository(t)
	recordRepo := mockRepo.NewMockExtractionRecordRepository(t)
	service := NewExtractionService(wasteRepo, recordRepo)

	return extractionServiceFixtures{
		service:    service,
		wasteRepo:  wasteRepo,
		recordRepo: recordRepo,
	}
}

func TestExtractionService_AddExtractionWaste(t *testing.T) {
	fx := createTestExtractionService(t)

	ctx := context.Background()
	input := &usecase.AddExtractionWasteInput{
		Type:           entity.WasteTypeOlivePaste,
		Quantity:       60,
		SourceOlives:   "picual batch 7",
		ProductionDate: time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC),
	}

	fx.wasteRepo.EXPECT().
		CreateWaste(ctx, mock.AnythingOfType("*entity.ExtractionWaste")).
		Return(nil)

	waste, err := fx.service.AddExtractionWaste(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, waste)
	assert.Equal(t, entity.StageStatusReady, waste.Status)
	assert.Equal(t, "picual batch 7", waste.SourceOlives)
}

func TestExtractionService_TransferExtractionWaste_UnknownID(t *testing.T) {
	fx := createTestExtractionService(t)

	ctx := context.Background()
	wasteID := uuid.New()

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(nil, repository.ErrWasteNotFound)

	waste, err := fx.service.TransferExtractionWaste(ctx, wasteID)
	require.NoError(t, err)
	assert.Nil(t, waste)
}

func TestExtractionService_AddRecord(t *testing.T) {
	fx := createTestExtractionService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	input := &usecase.AddExtractionRecordInput{
		WasteID:          wasteID,
		ProductType:      "extra virgin olive oil",
		Quantity:         18.2,
		Quality:          "premium",
		ExtractionMethod: "cold press",
		Temperature:      26,
		Pressure:         180,
		YieldPercentage:  21.5,
	}

	fx.recordRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.ExtractionRecord")).
		Return(nil)

	record, err := fx.service.AddRecord(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, wasteID, record.WasteID)
	assert.Equal(t, entity.StageStatusReady, record.Status)
	assert.WithinDuration(t, time.Now(), record.Timestamp, time.Second)
}

func TestExtractionService_UpdateRecordStatus(t *testing.T) {
	fx := createTestExtractionService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.ExtractionRecord{
		ID:     recordID,
		Status: entity.StageStatusReady,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	fx.recordRepo.EXPECT().
		UpdateRecord(ctx, mock.AnythingOfType("*entity.ExtractionRecord")).
		Return(nil)

	record, err := fx.service.UpdateRecordStatus(ctx, recordID, entity.StageStatusTransferred)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.StageStatusTransferred, record.Status)
}

func TestExtractionService_UpdateRecordStatus_NoOpOnReady(t *testing.T) {
	fx := createTestExtractionService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.ExtractionRecord{
		ID:     recordID,
		Status: entity.StageStatusTransferred,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	record, err := fx.service.UpdateRecordStatus(ctx, recordID, entity.StageStatusTransferred)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.StageStatusTransferred, record.Status)
}
