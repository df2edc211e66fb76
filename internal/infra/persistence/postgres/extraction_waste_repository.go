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

// extractionWasteRepository implements the repository.ExtractionWasteRepository interface.
type extractionWasteRepository struct {
	db *gorm.DB
}

// NewExtractionWasteRepository is the constructor for extractionWasteRepository.
func NewExtractionWasteRepository(db *gorm.DB) repository.ExtractionWasteRepository {
	return &extractionWasteRepository{
		db: db,
	}
}

// CreateWaste persists a new extraction-stage waste batch.
func (repo *extractionWasteRepository) CreateWaste(ctx context.Context, waste *entity.ExtractionWaste) error {
	wasteM := fromExtractionWasteDomain(waste)

	if err := repo.db.WithContext(ctx).Create(wasteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required waste batch fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create extraction waste batch")
	}

	waste.ID = wasteM.ID

	return nil
}

// FindWasteByID retrieves a waste batch by its unique ID.
func (repo *extractionWasteRepository) FindWasteByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionWaste, error) {
	var wasteM model.ExtractionWasteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&wasteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWasteNotFound
		}

		return nil, errors.Wrap(err, "failed to find extraction waste batch by ID")
	}

	return toExtractionWasteDomain(&wasteM), nil
}

// ListWastes retrieves all extraction-stage waste batches, oldest first.
func (repo *extractionWasteRepository) ListWastes(ctx context.Context) ([]*entity.ExtractionWaste, error) {
	var wasteModels []*model.ExtractionWasteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&wasteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list extraction waste batches")
	}

	wastes := make([]*entity.ExtractionWaste, 0, len(wasteModels))
	for _, wasteM := range wasteModels {
		wastes = append(wastes, toExtractionWasteDomain(wasteM))
	}

	return wastes, nil
}

// UpdateWaste persists status and transfer-date changes of a batch.
func (repo *extractionWasteRepository) UpdateWaste(ctx context.Context, waste *entity.ExtractionWaste) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExtractionWasteModel{}).
		Where("id = ?", waste.ID).
		Updates(map[string]any{
			"status":        waste.Status.String(),
			"transfer_date": waste.TransferDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update extraction waste batch")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWasteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toExtractionWasteDomain(data *model.ExtractionWasteModel) *entity.ExtractionWaste {
	if data == nil {
		return nil
	}

	return &entity.ExtractionWaste{
		ID:             data.ID,
		Type:           entity.WasteType(data.Type),
		Quantity:       data.Quantity,
		SourceOlives:   data.SourceOlives,
		ProductionDate: data.ProductionDate,
		TransferDate:   data.TransferDate,
		Status:         entity.StageStatus(data.Status),
	}
}

func fromExtractionWasteDomain(data *entity.ExtractionWaste) *model.ExtractionWasteModel {
	if data == nil {
		return nil
	}

	return &model.ExtractionWasteModel{
		ID:             data.ID,
		Type:           data.Type.String(),
		Quantity:       data.Quantity,
		SourceOlives:   data.SourceOlives,
		ProductionDate: data.ProductionDate,
		TransferDate:   data.TransferDate,
		Status:         data.Status.String(),
	}
}
