package list_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/http/handlers/alerts/list"
	"github.com/oybekdev/crif-gateway/internal/http/response"
	"github.com/oybekdev/crif-gateway/internal/models"
)

type mockService struct {
	PortfolioAlertsFunc func(context.Context, *models.PAERequest) (*models.PAEResponse, error)
}

func (m *mockService) PortfolioAlerts(ctx context.Context, req *models.PAERequest) (*models.PAEResponse, error) {
	return m.PortfolioAlertsFunc(ctx, req)
}

func makeLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func doRequest(h http.Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts"+query, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestList_Success(t *testing.T) {
	svc := &mockService{
		PortfolioAlertsFunc: func(_ context.Context, req *models.PAERequest) (*models.PAEResponse, error) {
			assert.Equal(t, 2024, req.DateFrom.Time.Year())
			assert.Equal(t, "A01", req.AlertCode.String)
			assert.Equal(t, 50, req.MaxResults.Int)
			return &models.PAEResponse{
				BaseResponse: models.BaseResponse{Success: true},
				Alerts: []models.Alert{{
					AlertCode:      "A01",
					CBContractCode: "CB-7",
					EventDateTime:  time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
				}},
				TotalCount: 1,
			}, nil
		},
	}
	h := list.New(makeLogger(), svc)

	rr := doRequest(h, "?date_from=2024-01-01&date_to=2024-03-01&alert_code=A01&max_results=50")

	require.Equal(t, http.StatusOK, rr.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusOK, resp.Status)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_count":1`)
	assert.Contains(t, string(data), `"cb_contract_code":"CB-7"`)
}

func TestList_BadMaxResults(t *testing.T) {
	h := list.New(makeLogger(), &mockService{})

	rr := doRequest(h, "?max_results=abc")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "max_results must be an integer")
}

func TestList_ValidationFailed(t *testing.T) {
	h := list.New(makeLogger(), &mockService{})

	rr := doRequest(h, "?date_from=15.03.2024")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "DateFrom")
}

func TestList_ServiceError(t *testing.T) {
	svc := &mockService{
		PortfolioAlertsFunc: func(context.Context, *models.PAERequest) (*models.PAEResponse, error) {
			return nil, criferr.New(criferr.KindCommunication, "connection refused")
		},
	}
	h := list.New(makeLogger(), svc)

	rr := doRequest(h, "")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
