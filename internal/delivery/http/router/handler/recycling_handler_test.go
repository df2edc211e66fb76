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

func TestRecyclingHandler_AddRecord_BindsRecyclingDataEnvelope(t *testing.T) {
	recyclingUC := mockUsecase.NewMockRecyclingUsecase(t)
	handler := &RecyclingHandler{
		recyclingUC: recyclingUC,
		logger:      slog.Default(),
	}

	wasteID := uuid.New()
	body := `{"recyclingData":{"wasteId":"` + wasteID.String() + `","recycledProduct":"COMPOST","quantity":30,"method":"AEROBIC","certifications":["ECO-CERT"]}}`

	recyclingUC.EXPECT().
		AddRecord(mock.Anything, mock.AnythingOfType("*usecase.AddRecyclingRecordInput")).
		RunAndReturn(func(_ context.Context, input *usecase.AddRecyclingRecordInput) (*entity.RecyclingRecord, error) {
			assert.Equal(t, wasteID, input.WasteID)
			assert.Equal(t, "COMPOST", input.RecycledProduct)
			assert.Equal(t, "AEROBIC", input.Method)
			assert.Equal(t, []string{"ECO-CERT"}, input.Certifications)

			return &entity.RecyclingRecord{ID: uuid.New(), WasteID: wasteID}, nil
		})

	c, rec := newJSONContext(http.MethodPost, "/api/recycling/add", body)
	require.NoError(t, handler.AddRecord(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRecyclingHandler_StartProcess_BindsWasteIDKey(t *testing.T) {
	recyclingUC := mockUsecase.NewMockRecyclingUsecase(t)
	handler := &RecyclingHandler{
		recyclingUC: recyclingUC,
		logger:      slog.Default(),
	}

	wasteID := uuid.New()
	body := `{"wasteId":"` + wasteID.String() + `"}`

	recyclingUC.EXPECT().
		StartProcess(mock.Anything, wasteID).
		Return(&entity.WasteRecord{ID: wasteID, Status: entity.RecordStatusTransferred}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/recycling/start", body)
	require.NoError(t, handler.StartProcess(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
