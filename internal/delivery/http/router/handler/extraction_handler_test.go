package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AjaXium2/greenolivechain/internal/delivery/http/validator"
	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	mockUsecase "github.com/AjaXium2/greenolivechain/internal/mocks/usecase"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newJSONContext builds an echo context carrying a JSON body, with the
// request validator wired the way the server wires it.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestExtractionHandler_AddRecord_BindsExtractionDataEnvelope(t *testing.T) {
	extractionUC := mockUsecase.NewMockExtractionUsecase(t)
	handler := &ExtractionHandler{
		extractionUC: extractionUC,
		logger:       slog.Default(),
	}

	wasteID := uuid.New()
	body := `{"extractionData":{"wasteId":"` + wasteID.String() + `","productType":"OLIVE_OIL","quantity":120.5,"extractionMethod":"COLD_PRESS","yieldPercentage":18.2}}`

	extractionUC.EXPECT().
		AddRecord(mock.Anything, mock.AnythingOfType("*usecase.AddExtractionRecordInput")).
		RunAndReturn(func(_ context.Context, input *usecase.AddExtractionRecordInput) (*entity.ExtractionRecord, error) {
			assert.Equal(t, wasteID, input.WasteID)
			assert.Equal(t, "OLIVE_OIL", input.ProductType)
			assert.InDelta(t, 120.5, input.Quantity, 0.001)
			assert.Equal(t, "COLD_PRESS", input.ExtractionMethod)

			return &entity.ExtractionRecord{ID: uuid.New(), WasteID: wasteID}, nil
		})

	c, rec := newJSONContext(http.MethodPost, "/api/extraction/add", body)
	require.NoError(t, handler.AddRecord(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestExtractionHandler_AddRecord_RejectsFlatBody(t *testing.T) {
	extractionUC := mockUsecase.NewMockExtractionUsecase(t)
	handler := &ExtractionHandler{
		extractionUC: extractionUC,
		logger:       slog.Default(),
	}

	// An unwrapped payload must not reach the usecase.
	body := `{"wasteId":"` + uuid.NewString() + `","productType":"OLIVE_OIL","quantity":10}`

	c, _ := newJSONContext(http.MethodPost, "/api/extraction/add", body)
	err := handler.AddRecord(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestExtractionHandler_UpdateStatus_BindsExtractionIDKey(t *testing.T) {
	extractionUC := mockUsecase.NewMockExtractionUsecase(t)
	handler := &ExtractionHandler{
		extractionUC: extractionUC,
		logger:       slog.Default(),
	}

	recordID := uuid.New()
	body := `{"extractionId":"` + recordID.String() + `","newStatus":"TRANSFERRED"}`

	extractionUC.EXPECT().
		UpdateRecordStatus(mock.Anything, recordID, entity.StageStatusTransferred).
		Return(&entity.ExtractionRecord{ID: recordID, Status: entity.StageStatusTransferred}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/extraction/update-status", body)
	require.NoError(t, handler.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
