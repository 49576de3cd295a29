package dto

import (
	"encoding/base64"
	"time"

	"github.com/oybekdev/crif-gateway/internal/codes"
	"github.com/oybekdev/crif-gateway/internal/models"
)

// BureauError — ошибка бюро в JSON-представлении.
type BureauError struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	FieldName   string `json:"field_name,omitempty"`
}

// NewApplicationResponse — результат регистрации заявки.
type NewApplicationResponse struct {
	Success bool         `json:"success"`
	Error   *BureauError `json:"error,omitempty"`

	CBSubjectCode         string `json:"cb_subject_code,omitempty"`
	CBContractCode        string `json:"cb_contract_code,omitempty"`
	ProviderContractNo    string `json:"provider_contract_no,omitempty"`
	ProviderApplicationNo string `json:"provider_application_no,omitempty"`

	Report   *CreditReport `json:"report,omitempty"`
	Document string        `json:"document,omitempty"` // base64 PDF
}

// MonitoringResponse — результат мониторингового запроса.
type MonitoringResponse struct {
	Success bool         `json:"success"`
	Error   *BureauError `json:"error,omitempty"`

	Report   *CreditReport `json:"report,omitempty"`
	Document string        `json:"document,omitempty"` // base64 PDF
}

// UpdateApplicationResponse — результат обновления заявки со срезами
// состояния до и после.
type UpdateApplicationResponse struct {
	Success bool         `json:"success"`
	Error   *BureauError `json:"error,omitempty"`

	CBContractCode string               `json:"cb_contract_code,omitempty"`
	Before         *ApplicationSnapshot `json:"before,omitempty"`
	After          *ApplicationSnapshot `json:"after,omitempty"`
}

// ApplicationSnapshot — срез состояния заявки.
type ApplicationSnapshot struct {
	ContractType         string   `json:"contract_type,omitempty"`
	ContractCategory     string   `json:"contract_category,omitempty"`
	ContractPhase        string   `json:"contract_phase,omitempty"`
	ContractRequestDate  string   `json:"contract_request_date,omitempty"`
	FinancedAmount       *float64 `json:"financed_amount,omitempty"`
	CreditLimit          *float64 `json:"credit_limit,omitempty"`
	MonthlyPaymentAmount *float64 `json:"monthly_payment_amount,omitempty"`
	CancellationFlag     *bool    `json:"cancellation_flag,omitempty"`
}

// AlertsResponse — выборка портфельных алертов.
type AlertsResponse struct {
	Success bool         `json:"success"`
	Error   *BureauError `json:"error,omitempty"`

	TotalCount int     `json:"total_count"`
	Alerts     []Alert `json:"alerts,omitempty"`
}

// Alert — портфельный алерт.
type Alert struct {
	AlertCode          string `json:"alert_code"`
	AlertDescription   string `json:"alert_description,omitempty"`
	EventDateTime      string `json:"event_date_time,omitempty"`
	CBSubjectCode      string `json:"cb_subject_code,omitempty"`
	CBContractCode     string `json:"cb_contract_code,omitempty"`
	ProviderContractNo string `json:"provider_contract_no,omitempty"`
	SubjectName        string `json:"subject_name,omitempty"`
	Details            string `json:"details,omitempty"`
}

// CreditReport — кредитный отчёт.
type CreditReport struct {
	CBSubjectCode string `json:"cb_subject_code,omitempty"`
	Matched       bool   `json:"matched"`

	TotalContracts int    `json:"total_contracts"`
	TotalProviders int    `json:"total_providers"`
	Currency       string `json:"currency,omitempty"`

	NotGrantedContracts []Contract `json:"not_granted_contracts,omitempty"`
	GrantedContracts    []Contract `json:"granted_contracts,omitempty"`

	Footprint *Footprint `json:"footprint,omitempty"`
}

// Contract — договор из истории, с категорией из доменной таблицы.
type Contract struct {
	CBContractCode     string `json:"cb_contract_code,omitempty"`
	ProviderContractNo string `json:"provider_contract_no,omitempty"`
	ContractType       string `json:"contract_type,omitempty"`
	ContractCategory   string `json:"contract_category,omitempty"`
	ContractPhase      string `json:"contract_phase,omitempty"`
	ProviderName       string `json:"provider_name,omitempty"`
	LastUpdateDate     string `json:"last_update_date,omitempty"`

	PaymentHistory []PaymentRecord `json:"payment_history,omitempty"`
}

// PaymentRecord — помесячный срез платежей.
type PaymentRecord struct {
	ReferenceYear      int      `json:"reference_year"`
	ReferenceMonth     int      `json:"reference_month"`
	OutstandingBalance *float64 `json:"outstanding_balance,omitempty"`
	DaysPastDue        *int     `json:"days_past_due,omitempty"`
	Status             string   `json:"status,omitempty"`
}

// Footprint — история запросов по субъекту.
type Footprint struct {
	Count1Month   int             `json:"count_1_month"`
	Count3Months  int             `json:"count_3_months"`
	Count6Months  int             `json:"count_6_months"`
	Count12Months int             `json:"count_12_months"`
	Enquiries     []FootprintItem `json:"enquiries,omitempty"`
}

// FootprintItem — отдельное событие запроса.
type FootprintItem struct {
	EnquiryType   string `json:"enquiry_type,omitempty"`
	EnquiryDate   string `json:"enquiry_date,omitempty"`
	InstituteName string `json:"institute_name,omitempty"`
}

// FromNAEResponse собирает JSON-ответ регистрации заявки.
func FromNAEResponse(m *models.NAEResponse) NewApplicationResponse {
	resp := NewApplicationResponse{
		Success: m.Success,
		Error:   fromErrorInfo(m.Error),
		Report:  fromCreditReport(m.CreditReport),
	}
	fillAppCodes(m.ApplicationCodes, &resp.CBSubjectCode, &resp.CBContractCode, &resp.ProviderContractNo, &resp.ProviderApplicationNo)
	return resp
}

// FromMEResponse собирает JSON-ответ мониторинга.
func FromMEResponse(m *models.MEResponse) MonitoringResponse {
	return MonitoringResponse{
		Success: m.Success,
		Error:   fromErrorInfo(m.Error),
		Report:  fromCreditReport(m.CreditReport),
	}
}

// FromAUEResponse собирает JSON-ответ обновления заявки.
func FromAUEResponse(m *models.AUEResponse) UpdateApplicationResponse {
	resp := UpdateApplicationResponse{
		Success: m.Success,
		Error:   fromErrorInfo(m.Error),
		Before:  fromSnapshot(m.ApplicationDB),
		After:   fromSnapshot(m.ApplicationUpdated),
	}
	if m.ApplicationCodes != nil {
		resp.CBContractCode = m.ApplicationCodes.CBContractCode.String
	}
	return resp
}

// FromPAEResponse собирает JSON-ответ выборки алертов.
func FromPAEResponse(m *models.PAEResponse) AlertsResponse {
	resp := AlertsResponse{
		Success:    m.Success,
		Error:      fromErrorInfo(m.Error),
		TotalCount: m.TotalCount,
	}
	for _, a := range m.Alerts {
		alert := Alert{
			AlertCode:          a.AlertCode,
			AlertDescription:   a.AlertDescription,
			CBSubjectCode:      a.CBSubjectCode,
			CBContractCode:     a.CBContractCode,
			ProviderContractNo: a.ProviderContractNo,
			SubjectName:        a.SubjectName,
			Details:            a.Details,
		}
		if !a.EventDateTime.IsZero() {
			alert.EventDateTime = a.EventDateTime.Format(time.RFC3339)
		}
		resp.Alerts = append(resp.Alerts, alert)
	}
	return resp
}

// FromNAEPresentation собирает JSON-ответ регистрации заявки с
// презентационным документом.
func FromNAEPresentation(m *models.PresentationResponse) NewApplicationResponse {
	resp := NewApplicationResponse{
		Success:  m.Success,
		Error:    fromErrorInfo(m.Error),
		Report:   fromCreditReport(m.CreditReport),
		Document: encodeDocument(m.Document),
	}
	fillAppCodes(m.ApplicationCodes, &resp.CBSubjectCode, &resp.CBContractCode, &resp.ProviderContractNo, &resp.ProviderApplicationNo)
	return resp
}

// FromMEPresentation собирает JSON-ответ мониторинга с презентационным
// документом.
func FromMEPresentation(m *models.PresentationResponse) MonitoringResponse {
	return MonitoringResponse{
		Success:  m.Success,
		Error:    fromErrorInfo(m.Error),
		Report:   fromCreditReport(m.CreditReport),
		Document: encodeDocument(m.Document),
	}
}

func encodeDocument(doc []byte) string {
	if len(doc) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(doc)
}

func fillAppCodes(ac *models.ApplicationCodes, subject, cb, contract, application *string) {
	if ac == nil {
		return
	}
	*subject = ac.CBSubjectCode.String
	*cb = ac.CBContractCode.String
	*contract = ac.ProviderContractNo.String
	*application = ac.ProviderApplicationNo.String
}

func fromErrorInfo(e *models.ErrorInfo) *BureauError {
	if e == nil {
		return nil
	}
	return &BureauError{
		Code:        e.Code,
		Description: e.Description,
		FieldName:   e.FieldName,
	}
}

func fromSnapshot(s *models.ApplicationSnapshot) *ApplicationSnapshot {
	if s == nil {
		return nil
	}
	out := &ApplicationSnapshot{
		ContractType:         s.ContractType,
		ContractCategory:     categoryName(s.ContractType),
		ContractPhase:        codes.ContractPhaseCode(s.ContractPhase),
		FinancedAmount:       s.FinancedAmount.Ptr(),
		CreditLimit:          s.CreditLimit.Ptr(),
		MonthlyPaymentAmount: s.MonthlyPaymentAmount.Ptr(),
		CancellationFlag:     s.CancellationFlag.Ptr(),
	}
	if s.ContractRequestDate.Valid {
		out.ContractRequestDate = s.ContractRequestDate.Time.Format(dateFormat)
	}
	return out
}

func fromCreditReport(r *models.CreditReport) *CreditReport {
	if r == nil {
		return nil
	}
	out := &CreditReport{}
	if ms := r.MatchedSubject; ms != nil {
		out.CBSubjectCode = ms.CBSubjectCode
		out.Matched = ms.FlagMatched
	}
	if ch := r.ContractHistory; ch != nil {
		if agg := ch.AggregatedData; agg != nil {
			out.TotalContracts = agg.TotalContracts
			out.TotalProviders = agg.TotalProviders
			out.Currency = agg.Currency
		}
		for _, c := range ch.NotGrantedContracts {
			out.NotGrantedContracts = append(out.NotGrantedContracts, Contract{
				CBContractCode:     c.CBContractCode,
				ProviderContractNo: c.ProviderContractNo,
				ContractType:       c.ContractType,
				ContractCategory:   categoryName(c.ContractType),
				ContractPhase:      codes.ContractPhaseCode(c.ContractPhase),
				LastUpdateDate:     formatNullDate(c.LastUpdateDate.Valid, c.LastUpdateDate.Time),
			})
		}
		for _, c := range ch.GrantedContracts {
			contract := Contract{
				CBContractCode:     c.CBContractCode,
				ProviderContractNo: c.ProviderContractNo,
				ContractType:       c.ContractType,
				ContractCategory:   categoryName(c.ContractType),
				ContractPhase:      codes.ContractPhaseCode(c.ContractPhase),
				ProviderName:       c.ProviderName,
				LastUpdateDate:     formatNullDate(c.LastUpdateDate.Valid, c.LastUpdateDate.Time),
			}
			for _, pmt := range c.PaymentHistory {
				contract.PaymentHistory = append(contract.PaymentHistory, PaymentRecord{
					ReferenceYear:      pmt.ReferenceYear,
					ReferenceMonth:     pmt.ReferenceMonth,
					OutstandingBalance: pmt.OutstandingBalance.Ptr(),
					DaysPastDue:        pmt.DaysPastDue.Ptr(),
					Status:             pmt.Status,
				})
			}
			out.GrantedContracts = append(out.GrantedContracts, contract)
		}
	}
	if fp := r.Footprint; fp != nil {
		f := &Footprint{}
		if c := fp.Counters; c != nil {
			f.Count1Month = c.Count1Month
			f.Count3Months = c.Count3Months
			f.Count6Months = c.Count6Months
			f.Count12Months = c.Count12Months
		}
		for _, d := range fp.Data {
			f.Enquiries = append(f.Enquiries, FootprintItem{
				EnquiryType:   codes.EnquiryTypeCode(d.EnquiryType),
				EnquiryDate:   formatNullDate(d.EnquiryDate.Valid, d.EnquiryDate.Time),
				InstituteName: d.InstituteName,
			})
		}
		out.Footprint = f
	}
	return out
}

func categoryName(contractTypeCode string) string {
	cat := codes.ContractCategoryByCode(contractTypeCode)
	if cat == models.ContractCategoryUnknown {
		return ""
	}
	return cat.String()
}

func formatNullDate(valid bool, t time.Time) string {
	if !valid {
		return ""
	}
	return t.Format(dateFormat)
}
