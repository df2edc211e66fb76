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

// recyclingProcessRepository implements the repository.RecyclingProcessRepository interface.
type recyclingProcessRepository struct {
	db *gorm.DB
}

// NewRecyclingProcessRepository is the constructor for recyclingProcessRepository.
func NewRecyclingProcessRepository(db *gorm.DB) repository.RecyclingProcessRepository {
	return &recyclingProcessRepository{
		db: db,
	}
}

// CreateProcess persists a new recycling process. The unique index on
// waste_id turns a concurrent double-create into ErrProcessAlreadyExists.
func (repo *recyclingProcessRepository) CreateProcess(ctx context.Context, process *entity.RecyclingProcess) error {
	processM := fromRecyclingProcessDomain(process)

	if err := repo.db.WithContext(ctx).Create(processM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProcessAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecordNotFound.WrapMessage("invalid waste record reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recycling process")
	}

	process.ID = processM.ID

	return nil
}

// FindProcessByID retrieves a process by its unique ID.
func (repo *recyclingProcessRepository) FindProcessByID(ctx context.Context, id uuid.UUID) (*entity.RecyclingProcess, error) {
	var processM model.RecyclingProcessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&processM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProcessNotFound
		}

		return nil, errors.Wrap(err, "failed to find recycling process by ID")
	}

	return toRecyclingProcessDomain(&processM), nil
}

// ListProcesses retrieves all processes, oldest first.
func (repo *recyclingProcessRepository) ListProcesses(ctx context.Context) ([]*entity.RecyclingProcess, error) {
	var processModels []*model.RecyclingProcessModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&processModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recycling processes")
	}

	processes := make([]*entity.RecyclingProcess, 0, len(processModels))
	for _, processM := range processModels {
		processes = append(processes, toRecyclingProcessDomain(processM))
	}

	return processes, nil
}

// CountProcessesByWaste counts processes referencing the given waste record.
func (repo *recyclingProcessRepository) CountProcessesByWaste(ctx context.Context, wasteID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RecyclingProcessModel{}).
		Where("waste_id = ?", wasteID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recycling processes by waste")
	}

	return count, nil
}

// UpdateProcess persists status and end-date changes of a process.
func (repo *recyclingProcessRepository) UpdateProcess(ctx context.Context, process *entity.RecyclingProcess) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecyclingProcessModel{}).
		Where("id = ?", process.ID).
		Updates(map[string]any{
			"status":   process.Status.String(),
			"end_date": process.EndDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update recycling process")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProcessNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRecyclingProcessDomain(data *model.RecyclingProcessModel) *entity.RecyclingProcess {
	if data == nil {
		return nil
	}

	return &entity.RecyclingProcess{
		ID:             data.ID,
		WasteID:        data.WasteID,
		ProcessType:    entity.ProcessType(data.ProcessType),
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		OutputQuantity: data.OutputQuantity,
		Status:         entity.ProcessStatus(data.Status),
		Notes:          data.Notes,
	}
}

func fromRecyclingProcessDomain(data *entity.RecyclingProcess) *model.RecyclingProcessModel {
	if data == nil {
		return nil
	}

	return &model.RecyclingProcessModel{
		ID:             data.ID,
		WasteID:        data.WasteID,
		ProcessType:    data.ProcessType.String(),
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		OutputQuantity: data.OutputQuantity,
		Status:         data.Status.String(),
		Notes:          data.Notes,
	}
}
