package impl

import (
	"context"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	mockRepo "github.com/AjaXium2/greenolivechain/internal/mocks/repository"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recyclingServiceFixtures holds all test dependencies for recycling service tests.
type recyclingServiceFixtures struct {
	service       usecase.RecyclingUsecase
	recordRepo    *mockRepo.MockWasteRecordRepository
	processRepo   *mockRepo.MockRecyclingProcessRepository
	recyclingRepo *mockRepo.MockRecyclingRecordRepository
	txManager     *mockRepo.MockTransactionManager
}

func createTestRecyclingService(t *testing.T) recyclingServiceFixtures {
	recordRepo := mockRepo.NewMockWasteRecordRepository(t)
	processRepo := mockRepo.NewMockRecyclingProcessRepository(t)
	recyclingRepo := mockRepo.NewMockRecyclingRecordRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRecyclingService(recordRepo, processRepo, recyclingRepo, txManager)

	return recyclingServiceFixtures{
		service:       service,
		recordRepo:    recordRepo,
		processRepo:   processRepo,
		recyclingRepo: recyclingRepo,
		txManager:     txManager,
	}
}

func TestRecyclingService_AddWasteRecord(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	input := &usecase.AddWasteRecordInput{
		Type:                    entity.WasteTypeOlivePaste,
		Quantity:                75,
		SourceOrganization:      "extraction",
		DestinationOrganization: "recycling",
		Notes:                   "first press of the season",
	}

	fx.recordRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.WasteRecord")).
		Return(nil)

	record, err := fx.service.AddWasteRecord(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.RecordStatusPending, record.Status)
	assert.Equal(t, "extraction", record.SourceOrganization)
	assert.WithinDuration(t, time.Now(), record.CreatedAt, time.Second)
}

func TestRecyclingService_ReceiveWaste(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Type:   entity.WasteTypeResidualWater,
		Status: entity.RecordStatusPending,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	fx.recordRepo.EXPECT().
		UpdateRecord(ctx, mock.AnythingOfType("*entity.WasteRecord")).
		Return(nil)

	record, err := fx.service.ReceiveWaste(ctx, recordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.RecordStatusTransferred, record.Status)
}

func TestRecyclingService_ReceiveWaste_UnknownID(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(nil, repository.ErrRecordNotFound)

	record, err := fx.service.ReceiveWaste(ctx, recordID)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRecyclingService_ReceiveWaste_AlreadyProcessed(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusProcessed,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	record, err := fx.service.ReceiveWaste(ctx, recordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.RecordStatusProcessed, record.Status)
}

func TestRecyclingService_StartProcess(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusTransferred,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	fx.processRepo.EXPECT().
		CountProcessesByWaste(ctx, recordID).
		Return(int64(0), nil)

	record, err := fx.service.StartProcess(ctx, recordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, recordID, record.ID)
}

func TestRecyclingService_StartProcess_NotTransferred(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusPending,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	record, err := fx.service.StartProcess(ctx, recordID)
	require.Error(t, err)
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecordNotReceivable.ErrorCode(), appErr.ErrorCode())
}

func TestRecyclingService_StartProcess_ProcessExists(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusTransferred,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)

	fx.processRepo.EXPECT().
		CountProcessesByWaste(ctx, recordID).
		Return(int64(1), nil)

	record, err := fx.service.StartProcess(ctx, recordID)
	require.Error(t, err)
	assert.Nil(t, record)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProcessAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestRecyclingService_AddProcess_NoSelection(t *testing.T) {
	fx := createTestRecyclingService(t)

	input := &usecase.AddProcessInput{ProcessType: entity.ProcessTypeCompost}

	process, err := fx.service.AddProcess(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, process)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNoSelection.ErrorCode(), appErr.ErrorCode())
}

func TestRecyclingService_AddProcess(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusTransferred,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)
	fx.processRepo.EXPECT().
		CountProcessesByWaste(ctx, recordID).
		Return(int64(0), nil)

	_, err := fx.service.StartProcess(ctx, recordID)
	require.NoError(t, err)

	txRecordRepo := mockRepo.NewMockWasteRecordRepository(t)
	txProcessRepo := mockRepo.NewMockRecyclingProcessRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewWasteRecordRepository().Return(txRecordRepo)
	factory.EXPECT().NewRecyclingProcessRepository().Return(txProcessRepo)

	txRecordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)
	txProcessRepo.EXPECT().
		CountProcessesByWaste(ctx, recordID).
		Return(int64(0), nil)
	txProcessRepo.EXPECT().
		CreateProcess(ctx, mock.AnythingOfType("*entity.RecyclingProcess")).
		Return(nil)
	txRecordRepo.EXPECT().
		UpdateRecord(ctx, mock.AnythingOfType("*entity.WasteRecord")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output := 42.0
	input := &usecase.AddProcessInput{
		ProcessType:    entity.ProcessTypeCompost,
		StartDate:      time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		OutputQuantity: &output,
		Notes:          "pomace compost batch",
	}

	process, err := fx.service.AddProcess(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, process)
	assert.Equal(t, recordID, process.WasteID)
	assert.Equal(t, entity.ProcessStatusInProgress, process.Status)
	assert.Equal(t, entity.RecordStatusProcessed, stored.Status)

	// The committed process consumed the selection.
	again, err := fx.service.AddProcess(ctx, input)
	require.Error(t, err)
	assert.Nil(t, again)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNoSelection.ErrorCode(), appErr.ErrorCode())
}

func TestRecyclingService_AddProcess_TxFailureKeepsSelection(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	recordID := uuid.New()
	stored := &entity.WasteRecord{
		ID:     recordID,
		Status: entity.RecordStatusTransferred,
	}

	fx.recordRepo.EXPECT().
		FindRecordByID(ctx, recordID).
		Return(stored, nil)
	fx.processRepo.EXPECT().
		CountProcessesByWaste(ctx, recordID).
		Return(int64(0), nil)

	_, err := fx.service.StartProcess(ctx, recordID)
	require.NoError(t, err)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "insert recycling process")).
		Once()

	input := &usecase.AddProcessInput{ProcessType: entity.ProcessTypeFuel}

	process, err := fx.service.AddProcess(ctx, input)
	require.Error(t, err)
	assert.Nil(t, process)

	// Selection survives the rollback, so a retry reaches the store again.
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecordRepo := mockRepo.NewMockWasteRecordRepository(t)
	txProcessRepo := mockRepo.NewMockRecyclingProcessRepository(t)
	factory.EXPECT().NewWasteRecordRepository().Return(txRecordRepo)
	factory.EXPECT().NewRecyclingProcessRepository().Return(txProcessRepo)
	txRecordRepo.EXPECT().FindRecordByID(ctx, recordID).Return(stored, nil)
	txProcessRepo.EXPECT().CountProcessesByWaste(ctx, recordID).Return(int64(0), nil)
	txProcessRepo.EXPECT().CreateProcess(ctx, mock.AnythingOfType("*entity.RecyclingProcess")).Return(nil)
	txRecordRepo.EXPECT().UpdateRecord(ctx, mock.AnythingOfType("*entity.WasteRecord")).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	process, err = fx.service.AddProcess(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, process)
	assert.Equal(t, recordID, process.WasteID)
}

func TestRecyclingService_CompleteProcess(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	processID := uuid.New()
	stored := &entity.RecyclingProcess{
		ID:          processID,
		WasteID:     uuid.New(),
		ProcessType: entity.ProcessTypeFertilizer,
		StartDate:   time.Now().Add(-72 * time.Hour),
		Status:      entity.ProcessStatusInProgress,
	}

	fx.processRepo.EXPECT().
		FindProcessByID(ctx, processID).
		Return(stored, nil)

	fx.processRepo.EXPECT().
		UpdateProcess(ctx, mock.AnythingOfType("*entity.RecyclingProcess")).
		Return(nil)

	process, err := fx.service.CompleteProcess(ctx, processID)
	require.NoError(t, err)
	require.NotNil(t, process)
	assert.Equal(t, entity.ProcessStatusCompleted, process.Status)
	require.NotNil(t, process.EndDate)
	assert.WithinDuration(t, time.Now(), *process.EndDate, time.Second)
}

func TestRecyclingService_CompleteProcess_AlreadyCompleted(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	processID := uuid.New()
	endedAt := time.Now().Add(-time.Hour)
	stored := &entity.RecyclingProcess{
		ID:      processID,
		Status:  entity.ProcessStatusCompleted,
		EndDate: &endedAt,
	}

	fx.processRepo.EXPECT().
		FindProcessByID(ctx, processID).
		Return(stored, nil)

	process, err := fx.service.CompleteProcess(ctx, processID)
	require.NoError(t, err)
	require.NotNil(t, process)
	assert.Equal(t, endedAt, *process.EndDate)
}

func TestRecyclingService_CompleteProcess_UnknownID(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	processID := uuid.New()

	fx.processRepo.EXPECT().
		FindProcessByID(ctx, processID).
		Return(nil, repository.ErrProcessNotFound)

	process, err := fx.service.CompleteProcess(ctx, processID)
	require.NoError(t, err)
	assert.Nil(t, process)
}

func TestRecyclingService_AddRecord(t *testing.T) {
	fx := createTestRecyclingService(t)

	ctx := context.Background()
	input := &usecase.AddRecyclingRecordInput{
		WasteID:             uuid.New(),
		RecycledProduct:     "compost",
		Quantity:            30,
		Method:              "aerobic composting",
		EnvironmentalImpact: "low",
		Certifications:      []string{"EU-ECO"},
	}

	fx.recyclingRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.RecyclingRecord")).
		Return(nil)

	record, err := fx.service.AddRecord(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "compost", record.RecycledProduct)
	assert.WithinDuration(t, time.Now(), record.Timestamp, time.Second)
}
