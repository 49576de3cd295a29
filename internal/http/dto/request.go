// Package dto описывает JSON-представления REST-фасада и их отображение
// в доменную модель. Перечисления передаются кодами доменных таблиц бюро
// и проверяются тегами валидатора до отображения.
package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/oybekdev/crif-gateway/internal/codes"
	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
)

const dateFormat = "2006-01-02"

// NewApplicationRequest — запрос на регистрацию новой кредитной заявки.
type NewApplicationRequest struct {
	ProviderSubjectNo string `json:"provider_subject_no,omitempty"`
	SubjectRefDate    string `json:"subject_ref_date" validate:"required,datetime=2006-01-02"`

	Individual *Individual `json:"individual,omitempty"`
	Company    *Company    `json:"company,omitempty"`

	Application *Application `json:"application,omitempty"`

	Role        string `json:"role" validate:"omitempty,oneof=B C G"`
	CompanyRole string `json:"company_role" validate:"omitempty,oneof=1 2 3 4 5 6 7 8 9"`

	ProviderContractNo    string `json:"provider_contract_no,omitempty"`
	ProviderApplicationNo string `json:"provider_application_no,omitempty"`
	CBContractCode        string `json:"cb_contract_code,omitempty"`

	Presentation *Presentation `json:"presentation,omitempty"`
}

// MonitoringRequest — мониторинговый запрос по субъекту.
type MonitoringRequest struct {
	CBSubjectCode     string `json:"cb_subject_code,omitempty"`
	ProviderSubjectNo string `json:"provider_subject_no,omitempty"`

	Individual *Individual `json:"individual,omitempty"`
	Company    *Company    `json:"company,omitempty"`

	Presentation *Presentation `json:"presentation,omitempty"`
}

// UpdateApplicationRequest — обновление ранее переданной заявки.
type UpdateApplicationRequest struct {
	ProviderContractNo    string `json:"provider_contract_no,omitempty"`
	ProviderApplicationNo string `json:"provider_application_no,omitempty"`
	CBContractCode        string `json:"cb_contract_code,omitempty"`

	ContractPhase        string   `json:"contract_phase" validate:"omitempty,oneof=RQ RN RF AC CL CA"`
	CancellationFlag     *bool    `json:"cancellation_flag,omitempty"`
	FinancedAmount       *float64 `json:"financed_amount,omitempty"`
	CreditLimit          *float64 `json:"credit_limit,omitempty"`
	MonthlyPaymentAmount *float64 `json:"monthly_payment_amount,omitempty"`
}

// AlertsRequest — параметры выборки портфельных алертов.
type AlertsRequest struct {
	DateFrom   string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	AlertCode  string `json:"alert_code,omitempty"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=1000"`
}

// Presentation — запрос презентационного PDF-отчёта.
type Presentation struct {
	Culture string `json:"culture" validate:"omitempty,oneof=ru-RU en-US uz-UZ"`
}

// Individual — данные физического лица.
type Individual struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Patronymic       string `json:"patronymic,omitempty"`
	OriginalLastName string `json:"original_last_name,omitempty"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	BirthPlace       string `json:"birth_place,omitempty"`
	Gender           string `json:"gender" validate:"omitempty,oneof=M F"`
	MaritalStatus    string `json:"marital_status" validate:"omitempty,oneof=1 2 3 4"`

	Addresses           []Address            `json:"addresses,omitempty" validate:"dive"`
	IdentificationCodes []IdentificationCode `json:"identification_codes,omitempty" validate:"dive"`
	Documents           []Document           `json:"documents,omitempty" validate:"dive"`
	Contacts            []Contact            `json:"contacts,omitempty" validate:"dive"`
	Employment          *Employment          `json:"employment,omitempty"`
}

// Company — данные юридического лица.
type Company struct {
	TradeName         string   `json:"trade_name" validate:"required"`
	ShortName         string   `json:"short_name,omitempty"`
	LegalForm         string   `json:"legal_form,omitempty"`
	RegistrationPlace string   `json:"registration_place,omitempty"`
	EconomicActivity  string   `json:"economic_activity,omitempty"`
	EstablishmentDate string   `json:"establishment_date" validate:"omitempty,datetime=2006-01-02"`
	GrossIncome       *float64 `json:"gross_income,omitempty"`
	EmployeesNumber   string   `json:"employees_number" validate:"omitempty,oneof=01 02 03 04"`

	Addresses           []Address            `json:"addresses,omitempty" validate:"dive"`
	IdentificationCodes []IdentificationCode `json:"identification_codes,omitempty" validate:"dive"`
	Contacts            []Contact            `json:"contacts,omitempty" validate:"dive"`
}

// Address — адрес субъекта.
type Address struct {
	Type        string `json:"type" validate:"required,oneof=MI AI MT AT"`
	FullAddress string `json:"full_address,omitempty"`
	Street      string `json:"street,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
	District    string `json:"district,omitempty"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
}

// IdentificationCode — идентификационный код (ПИНФЛ, ИНН).
type IdentificationCode struct {
	Type   string `json:"type" validate:"required,oneof=1 2 3 4"`
	Number string `json:"number" validate:"required"`
}

// Document — документ, удостоверяющий личность.
type Document struct {
	Type       string `json:"type" validate:"required,oneof=1 2 3 4 5 6 7 8 9 0"`
	Number     string `json:"number" validate:"required"`
	IssueDate  string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// Contact — контакт субъекта.
type Contact struct {
	Type  string `json:"type" validate:"required,oneof=1 2 3"`
	Value string `json:"value" validate:"required"`
}

// Employment — сведения о занятости.
type Employment struct {
	OccupationStatus  string   `json:"occupation_status" validate:"omitempty,oneof=1 2"`
	EmployerName      string   `json:"employer_name,omitempty"`
	Occupation        string   `json:"occupation,omitempty"`
	GrossAnnualIncome *float64 `json:"gross_annual_income,omitempty"`
	DateHiredFrom     string   `json:"date_hired_from" validate:"omitempty,datetime=2006-01-02"`
}

// Application — данные договора/заявки.
type Application struct {
	ContractType        string   `json:"contract_type" validate:"required"`
	ContractPhase       string   `json:"contract_phase" validate:"omitempty,oneof=RQ RN RF AC CL CA"`
	ContractRequestDate string   `json:"contract_request_date" validate:"required,datetime=2006-01-02"`
	Currency            string   `json:"currency" validate:"omitempty,oneof=UZS"`
	FinancedAmount      *float64 `json:"financed_amount,omitempty"`
	CreditLimit         *float64 `json:"credit_limit,omitempty"`
	MonthlyPayment      *float64 `json:"monthly_payment,omitempty"`
	InstallmentsNumber  *int     `json:"installments_number,omitempty"`
	PaymentPeriodicity  string   `json:"payment_periodicity" validate:"omitempty,oneof=D W F M B Q T C S Y I"`
	DueDate             string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToModel отображает запрос регистрации в доменную модель.
func (r NewApplicationRequest) ToModel() (*models.NAERequest, error) {
	refDate, err := parseDate(r.SubjectRefDate, "subject_ref_date")
	if err != nil {
		return nil, err
	}

	ind, err := r.Individual.toModel()
	if err != nil {
		return nil, err
	}
	comp, err := r.Company.toModel()
	if err != nil {
		return nil, err
	}
	app, err := r.Application.toModel()
	if err != nil {
		return nil, err
	}

	role := models.RoleBorrower
	if r.Role != "" {
		role = codes.SubjectRoleFromCode(r.Role)
	}

	return &models.NAERequest{
		ProviderSubjectNo: nullString(r.ProviderSubjectNo),
		SubjectRefDate:    refDate,
		Individual:        ind,
		Company:           comp,
		Application:       app,
		Link: models.LinkData{
			Role:        role,
			CompanyRole: codes.CompanyRoleFromCode(r.CompanyRole),
		},
		ApplicationCodes: models.ApplicationCodes{
			ProviderContractNo:    nullString(r.ProviderContractNo),
			ProviderApplicationNo: nullString(r.ProviderApplicationNo),
			CBContractCode:        nullString(r.CBContractCode),
		},
	}, nil
}

// ToModel отображает мониторинговый запрос в доменную модель.
func (r MonitoringRequest) ToModel() (*models.MERequest, error) {
	ind, err := r.Individual.toModel()
	if err != nil {
		return nil, err
	}
	comp, err := r.Company.toModel()
	if err != nil {
		return nil, err
	}
	return &models.MERequest{
		CBSubjectCode:     nullString(r.CBSubjectCode),
		ProviderSubjectNo: nullString(r.ProviderSubjectNo),
		Individual:        ind,
		Company:           comp,
	}, nil
}

// ToModel отображает запрос обновления в доменную модель.
func (r UpdateApplicationRequest) ToModel() (*models.AUERequest, error) {
	upd := models.ApplicationUpdate{
		ContractPhase:        codes.ContractPhaseFromCode(r.ContractPhase),
		FinancedAmount:       null.Float64FromPtr(r.FinancedAmount),
		CreditLimit:          null.Float64FromPtr(r.CreditLimit),
		MonthlyPaymentAmount: null.Float64FromPtr(r.MonthlyPaymentAmount),
	}
	if r.CancellationFlag != nil {
		upd.CancellationFlag = null.BoolFrom(*r.CancellationFlag)
	}
	return &models.AUERequest{
		ApplicationCodes: models.ApplicationCodes{
			ProviderContractNo:    nullString(r.ProviderContractNo),
			ProviderApplicationNo: nullString(r.ProviderApplicationNo),
			CBContractCode:        nullString(r.CBContractCode),
		},
		ApplicationToUpdate: upd,
	}, nil
}

// ToModel отображает параметры выборки алертов в доменную модель.
func (r AlertsRequest) ToModel() (*models.PAERequest, error) {
	req := &models.PAERequest{AlertCode: nullString(r.AlertCode)}
	if r.DateFrom != "" {
		t, err := parseDate(r.DateFrom, "date_from")
		if err != nil {
			return nil, err
		}
		req.DateFrom = null.TimeFrom(t)
	}
	if r.DateTo != "" {
		t, err := parseDate(r.DateTo, "date_to")
		if err != nil {
			return nil, err
		}
		req.DateTo = null.TimeFrom(t)
	}
	if r.MaxResults > 0 {
		req.MaxResults = null.IntFrom(r.MaxResults)
	}
	return req, nil
}

// ToModel отображает параметры презентации; пустая культура даёт русский
// отчёт, формат всегда PDF.
func (p *Presentation) ToModel() models.PresentationOptions {
	culture := models.CultureRussian
	if p != nil && p.Culture != "" {
		culture = codes.PresentationCultureFromCode(p.Culture)
	}
	return models.PresentationOptions{Culture: culture, Format: "PDF"}
}

func (d *Individual) toModel() (*models.Individual, error) {
	if d == nil {
		return nil, nil
	}
	dob, err := parseDate(d.DateOfBirth, "date_of_birth")
	if err != nil {
		return nil, err
	}
	ind := &models.Individual{
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Patronymic:       nullString(d.Patronymic),
		OriginalLastName: nullString(d.OriginalLastName),
		DateOfBirth:      dob,
		BirthPlace:       nullString(d.BirthPlace),
		Gender:           codes.GenderFromCode(d.Gender),
		MaritalStatus:    codes.MaritalStatusFromCode(d.MaritalStatus),
		Addresses:        toAddresses(d.Addresses),
		Contacts:         toContacts(d.Contacts),
	}
	for _, id := range d.IdentificationCodes {
		ind.IdentificationCodes = append(ind.IdentificationCodes, models.IdentificationCode{
			Type:   codes.IdentificationTypeFromCode(id.Type),
			Number: id.Number,
		})
	}
	for _, doc := range d.Documents {
		md := models.IDDocument{
			Type:   codes.IDDocumentTypeFromCode(doc.Type),
			Number: doc.Number,
		}
		if md.IssueDate, err = parseNullDate(doc.IssueDate, "issue_date"); err != nil {
			return nil, err
		}
		if md.ExpiryDate, err = parseNullDate(doc.ExpiryDate, "expiry_date"); err != nil {
			return nil, err
		}
		ind.IDDocuments = append(ind.IDDocuments, md)
	}
	if emp := d.Employment; emp != nil {
		me := &models.Employment{
			OccupationStatus:  codes.OccupationStatusFromCode(emp.OccupationStatus),
			EmployerTradeName: nullString(emp.EmployerName),
			Occupation:        nullString(emp.Occupation),
			GrossAnnualIncome: null.Float64FromPtr(emp.GrossAnnualIncome),
			Currency:          codes.CurrencyUZS,
		}
		if me.DateHiredFrom, err = parseNullDate(emp.DateHiredFrom, "date_hired_from"); err != nil {
			return nil, err
		}
		ind.Employment = me
	}
	return ind, nil
}

func (d *Company) toModel() (*models.Company, error) {
	if d == nil {
		return nil, nil
	}
	var legalForm models.LegalForm
	if d.LegalForm != "" {
		legalForm = codes.LegalFormFromCode(d.LegalForm)
		if legalForm == models.LegalFormUnknown {
			return nil, criferr.Validation("legal_form", "unknown legal form code")
		}
	}
	comp := &models.Company{
		TradeName:         d.TradeName,
		ShortName:         nullString(d.ShortName),
		LegalForm:         legalForm,
		RegistrationPlace: d.RegistrationPlace,
		EconomicActivity:  d.EconomicActivity,
		GrossIncome:       null.Float64FromPtr(d.GrossIncome),
		EmployeesNumber:   codes.EmployeeCountFromCode(d.EmployeesNumber),
		Addresses:         toAddresses(d.Addresses),
		Contacts:          toContacts(d.Contacts),
	}
	if d.EstablishmentDate != "" {
		t, err := parseDate(d.EstablishmentDate, "establishment_date")
		if err != nil {
			return nil, err
		}
		comp.EstablishmentDate = t
	}
	for _, id := range d.IdentificationCodes {
		comp.IdentificationCodes = append(comp.IdentificationCodes, models.IdentificationCode{
			Type:   codes.IdentificationTypeFromCode(id.Type),
			Number: id.Number,
		})
	}
	return comp, nil
}

func (d *Application) toModel() (*models.ApplicationData, error) {
	if d == nil {
		return nil, nil
	}
	reqDate, err := parseDate(d.ContractRequestDate, "contract_request_date")
	if err != nil {
		return nil, err
	}
	if codes.ContractTypeFromCode(d.ContractType) == models.ContractTypeUnknown {
		return nil, criferr.Validation("contract_type", "unknown contract type code")
	}

	phase := models.PhaseRequested
	if d.ContractPhase != "" {
		phase = codes.ContractPhaseFromCode(d.ContractPhase)
	}
	currency := d.Currency
	if currency == "" {
		currency = codes.CurrencyUZS
	}
	periodicity := models.PeriodicityMonthly
	if d.PaymentPeriodicity != "" {
		periodicity = codes.PaymentPeriodicityFromCode(d.PaymentPeriodicity)
	}

	app := &models.ApplicationData{
		ContractType:         d.ContractType,
		ContractPhase:        phase,
		ContractRequestDate:  reqDate,
		Currency:             currency,
		FinancedAmount:       null.Float64FromPtr(d.FinancedAmount),
		MonthlyPaymentAmount: null.Float64FromPtr(d.MonthlyPayment),
		PaymentPeriodicity:   periodicity,
		CreditLimit:          null.Float64FromPtr(d.CreditLimit),
	}
	if d.InstallmentsNumber != nil {
		app.InstallmentsNumber = null.IntFrom(*d.InstallmentsNumber)
	}
	if app.DueDate, err = parseNullDate(d.DueDate, "due_date"); err != nil {
		return nil, err
	}
	return app, nil
}

func toAddresses(addrs []Address) []models.Address {
	out := make([]models.Address, 0, len(addrs))
	for _, a := range addrs {
		country := a.Country
		if country == "" {
			country = codes.CountryUZ
		}
		out = append(out, models.Address{
			Type:        codes.AddressTypeFromCode(a.Type),
			FullAddress: nullString(a.FullAddress),
			Street:      nullString(a.Street),
			PostalCode:  nullString(a.PostalCode),
			City:        a.City,
			District:    a.District,
			Region:      a.Region,
			Country:     country,
		})
	}
	return out
}

func toContacts(contacts []Contact) []models.Contact {
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, models.Contact{
			Type:  codes.ContactTypeFromCode(c.Type),
			Value: c.Value,
		})
	}
	return out
}

func nullString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, criferr.Validation(field, "must be a date in format 2006-01-02")
	}
	return t, nil
}

func parseNullDate(s, field string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}
	t, err := parseDate(s, field)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}
