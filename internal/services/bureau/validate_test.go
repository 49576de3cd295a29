package bureau

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

func validNAERequest() *models.NAERequest {
	return &models.NAERequest{
		SubjectRefDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Individual: &models.Individual{
			FirstName:   "JOHN",
			LastName:    "DOE",
			DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		Application: &models.ApplicationData{
			ContractType:        "30",
			ContractPhase:       models.PhaseRequested,
			ContractRequestDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Currency:            "UZS",
		},
	}
}

func TestValidateNAE(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.NAERequest)
		wantErr bool
	}{
		{
			name:   "валидный запрос с физлицом",
			mutate: func(r *models.NAERequest) {},
		},
		{
			name: "нет ни физлица ни юрлица",
			mutate: func(r *models.NAERequest) {
				r.Individual = nil
			},
			wantErr: true,
		},
		{
			name: "физлицо и юрлицо одновременно",
			mutate: func(r *models.NAERequest) {
				r.Company = &models.Company{TradeName: "ACME"}
			},
			wantErr: true,
		},
		{
			name: "пустой тип договора",
			mutate: func(r *models.NAERequest) {
				r.Application.ContractType = ""
			},
			wantErr: true,
		},
		{
			name: "валюта не UZS",
			mutate: func(r *models.NAERequest) {
				r.Application.Currency = "USD"
			},
			wantErr: true,
		},
		{
			name: "без заявки",
			mutate: func(r *models.NAERequest) {
				r.Application = nil
			},
		},
		{
			name: "код бюро вместе с провайдерским номером",
			mutate: func(r *models.NAERequest) {
				r.ApplicationCodes.CBContractCode = null.StringFrom("CB-1")
				r.ApplicationCodes.ProviderContractNo = null.StringFrom("P-1")
			},
			wantErr: true,
		},
		{
			name: "код бюро без провайдерских номеров",
			mutate: func(r *models.NAERequest) {
				r.ApplicationCodes.CBContractCode = null.StringFrom("CB-1")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validNAERequest()
			tt.mutate(req)
			err := ValidateNAE(req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNAE_NilRequest(t *testing.T) {
	err := ValidateNAE(nil)
	assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
}

func TestValidateME(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.MERequest
		wantErr bool
	}{
		{
			name: "по коду бюро",
			req:  &models.MERequest{CBSubjectCode: null.StringFrom("CB-1")},
		},
		{
			name: "по номеру провайдера",
			req:  &models.MERequest{ProviderSubjectNo: null.StringFrom("P-1")},
		},
		{
			name: "по данным физлица",
			req:  &models.MERequest{Individual: &models.Individual{FirstName: "JOHN", LastName: "DOE"}},
		},
		{
			name:    "субъект не задан",
			req:     &models.MERequest{},
			wantErr: true,
		},
		{
			name:    "nil запрос",
			req:     nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateME(tt.req)
			if tt.wantErr {
				assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAUE(t *testing.T) {
	tests := []struct {
		name    string
		codes   models.ApplicationCodes
		wantErr bool
	}{
		{
			name:  "ровно один код — бюро",
			codes: models.ApplicationCodes{CBContractCode: null.StringFrom("CB-1")},
		},
		{
			name:  "ровно один код — контракт провайдера",
			codes: models.ApplicationCodes{ProviderContractNo: null.StringFrom("P-1")},
		},
		{
			name:  "ровно один код — заявка провайдера",
			codes: models.ApplicationCodes{ProviderApplicationNo: null.StringFrom("A-1")},
		},
		{
			name:    "ни одного кода",
			codes:   models.ApplicationCodes{},
			wantErr: true,
		},
		{
			name: "два кода",
			codes: models.ApplicationCodes{
				CBContractCode:     null.StringFrom("CB-1"),
				ProviderContractNo: null.StringFrom("P-1"),
			},
			wantErr: true,
		},
		{
			name: "три кода",
			codes: models.ApplicationCodes{
				CBContractCode:        null.StringFrom("CB-1"),
				ProviderContractNo:    null.StringFrom("P-1"),
				ProviderApplicationNo: null.StringFrom("A-1"),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAUE(&models.AUERequest{ApplicationCodes: tt.codes})
			if tt.wantErr {
				assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
