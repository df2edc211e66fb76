package impl

import (
	"context"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	mockRepo "github.com/AjaXium2/greenolivechain/internal/mocks/repository"
	mockService "github.com/AjaXium2/greenolivechain/internal/mocks/service"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wasteServiceFixtures holds all test dependencies for waste service tests.
type wasteServiceFixtures struct {
	service   usecase.WasteUsecase
	wasteRepo *mockRepo.MockFarmWasteRepository
	ledger    *mockService.MockLedgerGateway
}

func createTestWasteService(t *testing.T) wasteServiceFixtures {
	wasteRepo := mockRepo.NewMockFarmWasteRepository(t)
	ledger := mockService.NewMockLedgerGateway(t)
	service := NewWasteService(wasteRepo, ledger)

	return wasteServiceFixtures{
		service:   service,
		wasteRepo: wasteRepo,
		ledger:    ledger,
	}
}

func TestWasteService_AddWaste(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	input := &usecase.AddWasteInput{
		Type:        entity.WasteTypeBranches,
		Quantity:    120.5,
		HarvestDate: time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC),
	}

	fx.wasteRepo.EXPECT().
		CreateWaste(ctx, mock.AnythingOfType("*entity.FarmerWaste")).
		Return(nil)

	waste, err := fx.service.AddWaste(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, waste)
	assert.NotEqual(t, uuid.Nil, waste.ID)
	assert.Equal(t, entity.WasteTypeBranches, waste.Type)
	assert.Equal(t, 120.5, waste.Quantity)
	assert.Equal(t, entity.StageStatusReady, waste.Status)
	assert.Nil(t, waste.TransferDate)
}

func TestWasteService_AddWaste_InvalidType(t *testing.T) {
	fx := createTestWasteService(t)

	input := &usecase.AddWasteInput{
		Type:     entity.WasteType("PLASTIC"),
		Quantity: 10,
	}

	waste, err := fx.service.AddWaste(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, waste)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidWasteType.ErrorCode(), appErr.ErrorCode())
}

func TestWasteService_TransferWaste(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	stored := &entity.FarmerWaste{
		ID:          wasteID,
		Type:        entity.WasteTypeLeaves,
		Quantity:    40,
		HarvestDate: time.Now().Add(-48 * time.Hour),
		Status:      entity.StageStatusReady,
	}

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(stored, nil)

	fx.wasteRepo.EXPECT().
		UpdateWaste(ctx, mock.AnythingOfType("*entity.FarmerWaste")).
		Return(nil)

	waste, err := fx.service.TransferWaste(ctx, wasteID)
	require.NoError(t, err)
	require.NotNil(t, waste)
	assert.Equal(t, entity.StageStatusTransferred, waste.Status)
	require.NotNil(t, waste.TransferDate)
	assert.WithinDuration(t, time.Now(), *waste.TransferDate, time.Second)
}

func TestWasteService_TransferWaste_UnknownID(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	wasteID := uuid.New()

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(nil, repository.ErrWasteNotFound)

	waste, err := fx.service.TransferWaste(ctx, wasteID)
	require.NoError(t, err)
	assert.Nil(t, waste)
}

func TestWasteService_TransferWaste_AlreadyTransferred(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	transferredAt := time.Now().Add(-time.Hour)
	stored := &entity.FarmerWaste{
		ID:           wasteID,
		Type:         entity.WasteTypeOlives,
		Quantity:     200,
		Status:       entity.StageStatusTransferred,
		TransferDate: &transferredAt,
	}

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(stored, nil)

	waste, err := fx.service.TransferWaste(ctx, wasteID)
	require.NoError(t, err)
	require.NotNil(t, waste)
	assert.Equal(t, entity.StageStatusTransferred, waste.Status)
	assert.Equal(t, transferredAt, *waste.TransferDate)
}

func TestWasteService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestWasteService(t)

	waste, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.StageStatus("SHIPPED"))
	require.Error(t, err)
	assert.Nil(t, waste)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatus.ErrorCode(), appErr.ErrorCode())
}

func TestWasteService_UpdateStatus_ReadyIsNoOp(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	stored := &entity.FarmerWaste{
		ID:     wasteID,
		Type:   entity.WasteTypePits,
		Status: entity.StageStatusReady,
	}

	fx.wasteRepo.EXPECT().
		FindWasteByID(ctx, wasteID).
		Return(stored, nil)

	waste, err := fx.service.UpdateStatus(ctx, wasteID, entity.StageStatusReady)
	require.NoError(t, err)
	require.NotNil(t, waste)
	assert.Equal(t, entity.StageStatusReady, waste.Status)
}

func TestWasteService_ListWastes_RepoError(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()

	fx.wasteRepo.EXPECT().
		ListWastes(ctx).
		Return(nil, errors.New("connection refused"))

	wastes, err := fx.service.ListWastes(ctx)
	require.Error(t, err)
	assert.Nil(t, wastes)
}

func TestWasteService_WasteHistory(t *testing.T) {
	fx := createTestWasteService(t)

	ctx := context.Background()
	wasteID := uuid.New()
	events := []entity.LedgerEvent{
		{TxID: "tx-2", Action: "TRANSFER", Timestamp: time.Now()},
		{TxID: "tx-1", Action: "CREATE", Timestamp: time.Now().Add(-time.Hour)},
	}

	fx.ledger.EXPECT().
		WasteHistory(ctx, wasteID).
		Return(events, nil)

	history, err := fx.service.WasteHistory(ctx, wasteID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "tx-2", history[0].TxID)
}
