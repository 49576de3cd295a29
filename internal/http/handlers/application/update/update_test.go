package update_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/application/update"
	"github.com/oybekdev/crif-gateway/internal/models"
)

type mockService struct {
	UpdateFunc func(context.Context, *models.AUERequest) (*models.AUEResponse, error)
}

func (m *mockService) UpdateApplication(ctx context.Context, req *models.AUERequest) (*models.AUEResponse, error) {
	return m.UpdateFunc(ctx, req)
}

func makeLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func doRequest(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestUpdate_Success(t *testing.T) {
	svc := &mockService{
		UpdateFunc: func(_ context.Context, req *models.AUERequest) (*models.AUEResponse, error) {
			assert.Equal(t, "CB-7", req.ApplicationCodes.CBContractCode.String)
			assert.Equal(t, models.PhaseActive, req.ApplicationToUpdate.ContractPhase)
			return &models.AUEResponse{
				BaseResponse: models.BaseResponse{Success: true},
				ApplicationCodes: &models.ApplicationCodes{
					CBContractCode: null.StringFrom("CB-7"),
				},
				ApplicationUpdated: &models.ApplicationSnapshot{
					ContractType:  "30",
					ContractPhase: models.PhaseActive,
				},
			}, nil
		},
	}
	h := update.New(makeLogger(), svc)

	rr := doRequest(t, h, map[string]any{
		"cb_contract_code": "CB-7",
		"contract_phase":   "AC",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cb_contract_code":"CB-7"`)
	assert.Contains(t, rr.Body.String(), `"contract_phase":"AC"`)
}

func TestUpdate_InvalidPhase(t *testing.T) {
	h := update.New(makeLogger(), &mockService{})

	rr := doRequest(t, h, map[string]any{
		"cb_contract_code": "CB-7",
		"contract_phase":   "XX",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdate_ValidationErrorFromService(t *testing.T) {
	svc := &mockService{
		UpdateFunc: func(context.Context, *models.AUERequest) (*models.AUEResponse, error) {
			return nil, criferr.Validation("application_codes", "only one application code should be provided")
		},
	}
	h := update.New(makeLogger(), svc)

	rr := doRequest(t, h, map[string]any{
		"cb_contract_code":     "CB-7",
		"provider_contract_no": "P-1",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "only one application code")
}

func TestUpdate_InvalidJSON(t *testing.T) {
	h := update.New(makeLogger(), &mockService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications", bytes.NewReader([]byte("[")))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
