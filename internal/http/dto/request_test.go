package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

func TestNewApplicationRequestToModel(t *testing.T) {
	req := NewApplicationRequest{
		ProviderSubjectNo: "SUBJ-001",
		SubjectRefDate:    "2024-03-15",
		Individual: &Individual{
			FirstName:     "JOHN",
			LastName:      "DOE",
			DateOfBirth:   "1990-05-20",
			Gender:        "M",
			MaritalStatus: "2",
			Addresses: []Address{{
				Type: "MI",
				City: "Tashkent",
			}},
			IdentificationCodes: []IdentificationCode{{Type: "1", Number: "12345678901234"}},
			Documents:           []Document{{Type: "1", Number: "AA1234567", IssueDate: "2015-01-10"}},
			Contacts:            []Contact{{Type: "2", Value: "+998901234567"}},
		},
		Application: &Application{
			ContractType:        "30",
			ContractRequestDate: "2024-03-15",
			FinancedAmount:      ptrFloat(5000000),
			InstallmentsNumber:  ptrInt(12),
		},
		Role:               "B",
		ProviderContractNo: "CONTRACT-001",
	}

	m, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "SUBJ-001", m.ProviderSubjectNo.String)
	assert.Equal(t, 2024, m.SubjectRefDate.Year())

	require.NotNil(t, m.Individual)
	assert.Equal(t, models.GenderMale, m.Individual.Gender)
	assert.Equal(t, models.MaritalMarried, m.Individual.MaritalStatus)
	require.Len(t, m.Individual.Addresses, 1)
	// Пустая страна адреса по умолчанию — Узбекистан.
	assert.Equal(t, "UZ", m.Individual.Addresses[0].Country)
	require.Len(t, m.Individual.IDDocuments, 1)
	assert.True(t, m.Individual.IDDocuments[0].IssueDate.Valid)

	require.NotNil(t, m.Application)
	assert.Equal(t, "30", m.Application.ContractType)
	assert.Equal(t, models.PhaseRequested, m.Application.ContractPhase)
	assert.Equal(t, "UZS", m.Application.Currency)
	assert.Equal(t, models.PeriodicityMonthly, m.Application.PaymentPeriodicity)
	assert.Equal(t, float64(5000000), m.Application.FinancedAmount.Float64)
	assert.Equal(t, 12, m.Application.InstallmentsNumber.Int)

	assert.Equal(t, models.RoleBorrower, m.Link.Role)
	assert.Equal(t, "CONTRACT-001", m.ApplicationCodes.ProviderContractNo.String)
}

func TestNewApplicationRequestToModel_UnknownContractType(t *testing.T) {
	req := NewApplicationRequest{
		SubjectRefDate: "2024-03-15",
		Individual: &Individual{
			FirstName:   "JOHN",
			LastName:    "DOE",
			DateOfBirth: "1990-05-20",
		},
		Application: &Application{
			ContractType:        "999",
			ContractRequestDate: "2024-03-15",
		},
	}

	_, err := req.ToModel()
	require.Error(t, err)
	assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
}

func TestCompanyToModel_UnknownLegalForm(t *testing.T) {
	req := MonitoringRequest{
		Company: &Company{
			TradeName: "ACME",
			LegalForm: "999",
		},
	}

	_, err := req.ToModel()
	require.Error(t, err)
	assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
}

func TestCompanyToModel_KnownLegalForm(t *testing.T) {
	req := MonitoringRequest{
		Company: &Company{
			TradeName:         "ACME",
			LegalForm:         "152",
			EstablishmentDate: "2010-06-01",
			EmployeesNumber:   "02",
		},
	}

	m, err := req.ToModel()
	require.NoError(t, err)

	require.NotNil(t, m.Company)
	assert.Equal(t, models.LegalFormLimitedLiabilityEntity, m.Company.LegalForm)
	assert.Equal(t, models.EmployeesFrom10To49, m.Company.EmployeesNumber)
	assert.Equal(t, 2010, m.Company.EstablishmentDate.Year())
}

func TestUpdateApplicationRequestToModel(t *testing.T) {
	cancel := true
	req := UpdateApplicationRequest{
		CBContractCode:   "CB-7",
		ContractPhase:    "CA",
		CancellationFlag: &cancel,
		FinancedAmount:   ptrFloat(4500000),
	}

	m, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "CB-7", m.ApplicationCodes.CBContractCode.String)
	assert.Equal(t, models.PhaseClosedInAdvance, m.ApplicationToUpdate.ContractPhase)
	require.True(t, m.ApplicationToUpdate.CancellationFlag.Valid)
	assert.True(t, m.ApplicationToUpdate.CancellationFlag.Bool)
	assert.Equal(t, float64(4500000), m.ApplicationToUpdate.FinancedAmount.Float64)
}

func TestAlertsRequestToModel(t *testing.T) {
	req := AlertsRequest{
		DateFrom:   "2024-01-01",
		DateTo:     "2024-03-01",
		AlertCode:  "A01",
		MaxResults: 50,
	}

	m, err := req.ToModel()
	require.NoError(t, err)

	assert.True(t, m.DateFrom.Valid)
	assert.True(t, m.DateTo.Valid)
	assert.Equal(t, "A01", m.AlertCode.String)
	assert.Equal(t, 50, m.MaxResults.Int)
}

func TestPresentationToModel_Defaults(t *testing.T) {
	var p *Presentation
	opts := p.ToModel()

	assert.Equal(t, models.CultureRussian, opts.Culture)
	assert.Equal(t, "PDF", opts.Format)
}

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(n int) *int           { return &n }
