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

// wasteRecordRepository implements the repository.WasteRecordRepository interface.
type wasteRecordRepository struct {
	db *gorm.DB
}

// NewWasteRecordRepository is the constructor for wasteRecordRepository.
func NewWasteRecordRepository(db *gorm.DB) repository.WasteRecordRepository {
	return &wasteRecordRepository{
		db: db,
	}
}

// CreateRecord persists a new intake record.
func (repo *wasteRecordRepository) CreateRecord(ctx context.Context, record *entity.WasteRecord) error {
	recordM := fromWasteRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required intake record fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create intake record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindRecordByID retrieves an intake record by its unique ID.
func (repo *wasteRecordRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.WasteRecord, error) {
	var recordM model.WasteRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find intake record by ID")
	}

	return toWasteRecordDomain(&recordM), nil
}

// ListRecords retrieves all intake records, oldest first.
func (repo *wasteRecordRepository) ListRecords(ctx context.Context) ([]*entity.WasteRecord, error) {
	var recordModels []*model.WasteRecordModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list intake records")
	}

	records := make([]*entity.WasteRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toWasteRecordDomain(recordM))
	}

	return records, nil
}

// UpdateRecord persists status changes of an intake record.
func (repo *wasteRecordRepository) UpdateRecord(ctx context.Context, record *entity.WasteRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WasteRecordModel{}).
		Where("id = ?", record.ID).
		Update("status", record.Status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update intake record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWasteRecordDomain(data *model.WasteRecordModel) *entity.WasteRecord {
	if data == nil {
		return nil
	}

	return &entity.WasteRecord{
		ID:                      data.ID,
		Type:                    entity.WasteType(data.Type),
		Quantity:                data.Quantity,
		SourceOrganization:      data.SourceOrganization,
		DestinationOrganization: data.DestinationOrganization,
		CreatedAt:               data.CreatedAt,
		Status:                  entity.RecordStatus(data.Status),
		Notes:                   data.Notes,
	}
}

func fromWasteRecordDomain(data *entity.WasteRecord) *model.WasteRecordModel {
	if data == nil {
		return nil
	}

	return &model.WasteRecordModel{
		ID:                      data.ID,
		Type:                    data.Type.String(),
		Quantity:                data.Quantity,
		SourceOrganization:      data.SourceOrganization,
		DestinationOrganization: data.DestinationOrganization,
		Status:                  data.Status.String(),
		Notes:                   data.Notes,
		CreatedAt:               data.CreatedAt,
	}
}
