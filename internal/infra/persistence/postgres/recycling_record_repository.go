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

// recyclingRecordRepository implements the repository.RecyclingRecordRepository interface.
type recyclingRecordRepository struct {
	db *gorm.DB
}

// NewRecyclingRecordRepository is the constructor for recyclingRecordRepository.
func NewRecyclingRecordRepository(db *gorm.DB) repository.RecyclingRecordRepository {
	return &recyclingRecordRepository{
		db: db,
	}
}

// CreateRecord persists a new recycling record.
func (repo *recyclingRecordRepository) CreateRecord(ctx context.Context, record *entity.RecyclingRecord) error {
	recordM := fromRecyclingRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create recycling record")
	}

	record.ID = recordM.ID

	return nil
}

// FindRecordByID retrieves a recycling record by its unique ID.
func (repo *recyclingRecordRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingRecord, error) {
	var recordM model.RecyclingRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecyclingNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling record by ID")
	}

	return toRecyclingRecordDomain(&recordM), nil
}

// ListRecords retrieves all recycling records, newest first.
func (repo *recyclingRecordRepository) ListRecords(ctx context.Context) ([]*entity.RecyclingRecord, error) {
	var recordModels []*model.RecyclingRecordModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records")
	}

	records := make([]*entity.RecyclingRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRecyclingRecordDomain(recordM))
	}

	return records, nil
}

// ListRecordsByWaste retrieves every recycling record derived from the given waste batch.
func (repo *recyclingRecordRepository) ListRecordsByWaste(ctx context.Context, wasteID uuid.UUID) ([]entity.RecyclingRecord, error) {
	var recordModels []*model.RecyclingRecordModel

	if err := repo.db.WithContext(ctx).
		Where("waste_id = ?", wasteID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records by waste")
	}

	records := make([]entity.RecyclingRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, *toRecyclingRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toRecyclingRecordDomain(data *model.RecyclingRecordModel) *entity.RecyclingRecord {
	if data == nil {
		return nil
	}

	return &entity.RecyclingRecord{
		ID:                  data.ID,
		WasteID:             data.WasteID,
		RecycledProduct:     data.RecycledProduct,
		Quantity:            data.Quantity,
		Method:              data.Method,
		EnvironmentalImpact: data.EnvironmentalImpact,
		Certifications:      data.Certifications,
		Timestamp:           data.Timestamp,
		BlockchainTxID:      data.BlockchainTxID,
	}
}

func fromRecyclingRecordDomain(data *entity.RecyclingRecord) *model.RecyclingRecordModel {
	if data == nil {
		return nil
	}

	return &model.RecyclingRecordModel{
		ID:                  data.ID,
		WasteID:             data.WasteID,
		RecycledProduct:     data.RecycledProduct,
		Quantity:            data.Quantity,
		Method:              data.Method,
		EnvironmentalImpact: data.EnvironmentalImpact,
		Certifications:      data.Certifications,
		Timestamp:           data.Timestamp,
		BlockchainTxID:      data.BlockchainTxID,
	}
}
