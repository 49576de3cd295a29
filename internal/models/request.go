package models

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Operation — явный тег вида операции. Диспетчеризация в кодеке идёт по
// нему одним исчерпывающим switch, а не по конкретному типу запроса.
type Operation int

const (
	OperationUnknown Operation = iota
	OpNAE                      // New Application Enquiry
	OpNAEP                     // NAE + презентационный PDF
	OpME                       // Monitoring Enquiry
	OpMEP                      // ME + презентационный PDF
	OpAUE                      // Application Update Enquiry
	OpPAE                      // Portfolio Alerts Enquiry
)

func (op Operation) String() string {
	switch op {
	case OpNAE:
		return "NAE"
	case OpNAEP:
		return "NAEP"
	case OpME:
		return "ME"
	case OpMEP:
		return "MEP"
	case OpAUE:
		return "AUE"
	case OpPAE:
		return "PAE"
	default:
		return "unknown"
	}
}

// Request — запрос к бюро: тег операции плюс полезная нагрузка
// соответствующего вида. Презентационные варианты (NAEP/MEP) несут ту же
// базовую нагрузку, что и NAE/ME, и дополнительно Presentation.
type Request struct {
	Op           Operation
	NAE          *NAERequest
	ME           *MERequest
	AUE          *AUERequest
	PAE          *PAERequest
	Presentation *PresentationOptions
}

// PresentationOptions — параметры презентационного варианта операции.
type PresentationOptions struct {
	Culture PresentationCulture
	Format  string // всегда "PDF"
}

// NAERequest — заявка на регистрацию новой кредитной заявки.
type NAERequest struct {
	ProviderSubjectNo null.String
	SubjectRefDate    time.Time
	Individual        *Individual
	Company           *Company
	Application       *ApplicationData
	Link              LinkData
	ApplicationCodes  ApplicationCodes
}

// MERequest — мониторинговый запрос по существующему субъекту.
// Субъект задаётся либо кодом бюро, либо номером провайдера, либо данными.
type MERequest struct {
	CBSubjectCode     null.String
	ProviderSubjectNo null.String
	Individual        *Individual
	Company           *Company
}

// AUERequest — обновление ранее переданной заявки.
type AUERequest struct {
	ApplicationCodes    ApplicationCodes
	ApplicationToUpdate ApplicationUpdate
}

// PAERequest — выборка портфельных алертов.
type PAERequest struct {
	DateFrom   null.Time
	DateTo     null.Time
	AlertCode  null.String
	MaxResults null.Int
}

// ApplicationData — данные договора/заявки. Для рассрочных договоров
// заполняются FinancedAmount, InstallmentsNumber и PaymentPeriodicity,
// для карточных/возобновляемых — CreditLimit; на практике они взаимно
// исключают друг друга, хотя структурно это не закреплено.
type ApplicationData struct {
	ContractType        string // код доменной таблицы
	ContractPhase       ContractPhase
	ContractRequestDate time.Time
	Currency            string

	FinancedAmount       null.Float64
	MonthlyPaymentAmount null.Float64
	InstallmentsNumber   null.Int
	PaymentPeriodicity   PaymentPeriodicity
	DueDate              null.Time

	CreditLimit null.Float64
}

// LinkData — роль субъекта в договоре.
type LinkData struct {
	Role        SubjectRole
	CompanyRole CompanyRole
}

// ApplicationCodes — до трёх альтернативных идентификаторов договора.
// При ссылке на существующую заявку заполняется ровно один; при
// регистрации субъекта в существующий договор (задан CBContractCode)
// оба провайдерских номера должны быть пусты.
type ApplicationCodes struct {
	ProviderContractNo    null.String
	ProviderApplicationNo null.String
	CBContractCode        null.String
	CBSubjectCode         null.String // только в ответах
}

// ApplicationUpdate — изменяемые поля заявки для операции AUE.
type ApplicationUpdate struct {
	ContractPhase        ContractPhase
	CancellationFlag     null.Bool
	FinancedAmount       null.Float64
	CreditLimit          null.Float64
	MonthlyPaymentAmount null.Float64
}
