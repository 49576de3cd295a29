package models

import (
	"time"

	"github.com/aarondl/null/v8"
)

// BaseResponse — общая часть всех ответов бюро. Операция считается
// успешной, только если оба внутренних кода результата (уровня шлюза
// сообщений и уровня продукта) обозначают успех.
type BaseResponse struct {
	Success bool
	Error   *ErrorInfo

	MessageResultCode null.String
	ProductResultCode null.String
}

// ErrorInfo — структурированная ошибка бюро.
type ErrorInfo struct {
	Code        string
	Description string
	FieldName   string
}

// NAEResponse — ответ на регистрацию новой заявки.
type NAEResponse struct {
	BaseResponse
	ApplicationCodes *ApplicationCodes
	CreditReport     *CreditReport
}

// MEResponse — ответ на мониторинговый запрос.
type MEResponse struct {
	BaseResponse
	CreditReport *CreditReport
}

// AUEResponse — ответ на обновление заявки, со срезами до и после.
type AUEResponse struct {
	BaseResponse
	ApplicationCodes   *ApplicationCodes
	ApplicationDB      *ApplicationSnapshot
	ApplicationUpdated *ApplicationSnapshot
}

// ApplicationSnapshot — срез состояния заявки в базе бюро.
type ApplicationSnapshot struct {
	ContractType         string
	ContractPhase        ContractPhase
	ContractRequestDate  null.Time
	FinancedAmount       null.Float64
	CreditLimit          null.Float64
	MonthlyPaymentAmount null.Float64
	CancellationFlag     null.Bool
}

// PAEResponse — ответ с портфельными алертами.
type PAEResponse struct {
	BaseResponse
	Alerts     []Alert
	TotalCount int
}

// Alert — портфельный алерт.
type Alert struct {
	AlertCode          string
	AlertDescription   string
	EventDateTime      time.Time
	CBSubjectCode      string
	CBContractCode     string
	ProviderContractNo string
	SubjectName        string
	Details            string
}

// PresentationResponse — ответ презентационного варианта: та же
// структурная нагрузка, что у базовой операции (Base показывает, какой
// именно), плюс декодированный PDF-документ. Содержимое документа кодек
// не интерпретирует.
type PresentationResponse struct {
	BaseResponse
	Base             Operation // OpNAE или OpME
	ApplicationCodes *ApplicationCodes
	CreditReport     *CreditReport
	Culture          PresentationCulture
	Format           string
	Document         []byte
}
