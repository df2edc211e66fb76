// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// farmWasteRepository implements the repository.FarmWasteRepository interface.
type farmWasteRepository struct {
	db *gorm.DB
}

// NewFarmWasteRepository is the constructor for farmWasteRepository.
func NewFarmWasteRepository(db *gorm.DB) repository.FarmWasteRepository {
	return &farmWasteRepository{
		db: db,
	}
}

// CreateWaste persists a new farm waste batch.
func (repo *farmWasteRepository) CreateWaste(ctx context.Context, waste *entity.FarmerWaste) error {
	wasteM := fromFarmerWasteDomain(waste)

	if err := repo.db.WithContext(ctx).Create(wasteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required waste batch fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create waste batch")
	}

	waste.ID = wasteM.ID

	return nil
}

// FindWasteByID retrieves a waste batch by its unique ID.
func (repo *farmWasteRepository) FindWasteByID(ctx context.Context, id uuid.UUID) (*entity.FarmerWaste, error) {
	var wasteM model.FarmerWasteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&wasteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWasteNotFound
		}

		return nil, errors.Wrap(err, "failed to find waste batch by ID")
	}

	return toFarmerWasteDomain(&wasteM), nil
}

// ListWastes retrieves all waste batches, oldest first.
func (repo *farmWasteRepository) ListWastes(ctx context.Context) ([]*entity.FarmerWaste, error) {
	var wasteModels []*model.FarmerWasteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&wasteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list waste batches")
	}

	wastes := make([]*entity.FarmerWaste, 0, len(wasteModels))
	for _, wasteM := range wasteModels {
		wastes = append(wastes, toFarmerWasteDomain(wasteM))
	}

	return wastes, nil
}

// UpdateWaste persists status and transfer-date changes of a batch.
func (repo *farmWasteRepository) UpdateWaste(ctx context.Context, waste *entity.FarmerWaste) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmerWasteModel{}).
		Where("id = ?", waste.ID).
		Updates(map[string]any{
			"status":        waste.Status.String(),
			"transfer_date": waste.TransferDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update waste batch")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWasteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFarmerWasteDomain converts a GORM FarmerWasteModel to a domain FarmerWaste entity.
func toFarmerWasteDomain(data *model.FarmerWasteModel) *entity.FarmerWaste {
	if data == nil {
		return nil
	}

	return &entity.FarmerWaste{
		ID:           data.ID,
		Type:         entity.WasteType(data.Type),
		Quantity:     data.Quantity,
		HarvestDate:  data.HarvestDate,
		TransferDate: data.TransferDate,
		Status:       entity.StageStatus(data.Status),
	}
}

// fromFarmerWasteDomain converts a domain FarmerWaste entity to a GORM FarmerWasteModel.
func fromFarmerWasteDomain(data *entity.FarmerWaste) *model.FarmerWasteModel {
	if data == nil {
		return nil
	}

	return &model.FarmerWasteModel{
		ID:           data.ID,
		Type:         data.Type.String(),
		Quantity:     data.Quantity,
		HarvestDate:  data.HarvestDate,
		TransferDate: data.TransferDate,
		Status:       data.Status.String(),
	}
}
