package postgres

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/repository"
	"github.com/AjaXium2/greenolivechain/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// extractionRecordRepository implements the repository.ExtractionRecordRepository interface.
type extractionRecordRepository struct {
	db *gorm.DB
}

// NewExtractionRecordRepository is the constructor for extractionRecordRepository.
func NewExtractionRecordRepository(db *gorm.DB) repository.ExtractionRecordRepository {
	return &extractionRecordRepository{
		db: db,
	}
}

// CreateRecord persists a new extraction record.
func (repo *extractionRecordRepository) CreateRecord(ctx context.Context, record *entity.ExtractionRecord) error {
	recordM := fromExtractionRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create extraction record")
	}

	record.ID = recordM.ID

	return nil
}

// FindRecordByID retrieves an extraction record by its unique ID.
func (repo *extractionRecordRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionRecord, error) {
	var recordM model.ExtractionRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExtractionNotFound
		}

		return nil, errors.Wrap(err, "failed to find extraction record by ID")
	}

	return toExtractionRecordDomain(&recordM), nil
}

// ListRecords retrieves all extraction records, newest first.
func (repo *extractionRecordRepository) ListRecords(ctx context.Context) ([]*entity.ExtractionRecord, error) {
	var recordModels []*model.ExtractionRecordModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records")
	}

	records := make([]*entity.ExtractionRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toExtractionRecordDomain(recordM))
	}

	return records, nil
}

// ListRecordsByWaste retrieves every extraction record derived from the given waste batch.
func (repo *extractionRecordRepository) ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.ExtractionRecord, error) {
	var recordModels []*model.ExtractionRecordModel

	if err := repo.db.WithContext(ctx).
		Where("waste_id = ?", wasteID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list extraction records by waste")
	}

	records := make([]entity.ExtractionRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, *toExtractionRecordDomain(recordM))
	}

	return records, nil
}

// UpdateRecord persists status changes of an extraction record.
func (repo *extractionRecordRepository) UpdateRecord(ctx context.Context, record *entity.ExtractionRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExtractionRecordModel{}).
		Where("id = ?", record.ID).
		Update("status", record.Status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update extraction record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExtractionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toExtractionRecordDomain(data *model.ExtractionRecordModel) *entity.ExtractionRecord {
	if data == nil {
		return nil
	}

	return &entity.ExtractionRecord{
		ID:               data.ID,
		WasteID:          data.WasteID,
		ProductType:      data.ProductType,
		Quantity:         data.Quantity,
		Quality:          data.Quality,
		ExtractionMethod: data.ExtractionMethod,
		Temperature:      data.Temperature,
		Pressure:         data.Pressure,
		YieldPercentage:  data.YieldPercentage,
		Status:           entity.StageStatus(data.Status),
		Timestamp:        data.Timestamp,
		BlockchainTxID:   data.BlockchainTxID,
	}
}

func fromExtractionRecordDomain(data *entity.ExtractionRecord) *model.ExtractionRecordModel {
	if data == nil {
		return nil
	}

	return &model.ExtractionRecordModel{
		ID:               data.ID,
		WasteID:          data.WasteID,
		ProductType:      data.ProductType,
		Quantity:         data.Quantity,
		Quality:          data.Quality,
		ExtractionMethod: data.ExtractionMethod,
		Temperature:      data.Temperature,
		Pressure:         data.Pressure,
		YieldPercentage:  data.YieldPercentage,
		Status:           data.Status.String(),
		Timestamp:        data.Timestamp,
		BlockchainTxID:   data.BlockchainTxID,
	}
}
