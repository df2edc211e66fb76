package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	mockUsecase "github.com/AjaXium2/greenolivechain/internal/mocks/usecase"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWasteHandler_AddWaste_BindsWasteDataEnvelope(t *testing.T) {
	wasteUC := mockUsecase.NewMockWasteUsecase(t)
	handler := &WasteHandler{
		wasteUC: wasteUC,
		logger:  slog.Default(),
	}

	body := `{"wasteData":{"type":"BRANCHES","quantity":50,"harvestDate":"2024-01-01T00:00:00Z","status":"READY"}}`

	wasteUC.EXPECT().
		AddWaste(mock.Anything, mock.AnythingOfType("*usecase.AddWasteInput")).
		RunAndReturn(func(_ context.Context, input *usecase.AddWasteInput) (*entity.FarmerWaste, error) {
			assert.Equal(t, entity.WasteTypeBranches, input.Type)
			assert.InDelta(t, 50.0, input.Quantity, 0.001)
			assert.Equal(t, 2024, input.HarvestDate.Year())

			return &entity.FarmerWaste{ID: uuid.New(), Type: input.Type, Status: entity.StageStatusReady}, nil
		})

	c, rec := newJSONContext(http.MethodPost, "/api/waste/add", body)
	require.NoError(t, handler.AddWaste(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestWasteHandler_UpdateStatus_BindsWasteIDKey(t *testing.T) {
	wasteUC := mockUsecase.NewMockWasteUsecase(t)
	handler := &WasteHandler{
		wasteUC: wasteUC,
		logger:  slog.Default(),
	}

	wasteID := uuid.New()
	body := `{"wasteId":"` + wasteID.String() + `","newStatus":"TRANSFERRED"}`

	wasteUC.EXPECT().
		UpdateStatus(mock.Anything, wasteID, entity.StageStatusTransferred).
		Return(&entity.FarmerWaste{ID: wasteID, Status: entity.StageStatusTransferred}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/waste/update-status", body)
	require.NoError(t, handler.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
