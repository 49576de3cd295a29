// Package soap реализует кодек проводного формата бюро CRIF: сборку
// SOAP-запросов, разбор SOAP-ответов с многоуровневым определением
// ошибок и HTTP-транспорт.
//
// Проводные структуры в этом файле — точное отражение XML-схемы бюро.
// Запросные структуры несут префиксные имена (soapenv/urn/cb), потому
// что encoding/xml выводит их дословно; ответные структуры матчятся по
// локальному имени, чтобы не зависеть от префиксов, выбранных бюро.
package soap

import "encoding/xml"

// Пространства имён конверта.
const (
	nsSoap = "http://schemas.xmlsoap.org/soap/envelope/"
	nsMG   = "urn:cbs-messagegatewaysoap:2015-01-01"
	nsCB   = "urn:crif-creditbureau:v1"
)

// resultCodeSuccess — односимвольный сентинел успеха на уровнях шлюза
// сообщений и продукта.
const resultCodeSuccess = "S"

const serviceID = "CB"

// ---------------------------------------------------------------------------
// Запрос.

type reqEnvelope struct {
	XMLName   xml.Name `xml:"soapenv:Envelope"`
	NSSoapenv string   `xml:"xmlns:soapenv,attr"`
	NSUrn     string   `xml:"xmlns:urn,attr"`
	NSCb      string   `xml:"xmlns:cb,attr"`
	Body      reqBody  `xml:"soapenv:Body"`
}

type reqBody struct {
	MGRequest mgRequest `xml:"urn:MGRequest"`
}

type mgRequest struct {
	Message reqMessage `xml:"urn:Message"`
	Product reqProduct `xml:"urn:Product"`
}

type reqMessage struct {
	GroupID     string        `xml:"GroupId,attr"`
	ID          string        `xml:"Id,attr"`
	TimeStamp   string        `xml:"TimeStamp,attr"`
	Idempotence string        `xml:"Idempotence,attr"`
	Credential  reqCredential `xml:"urn:Credential"`
}

type reqCredential struct {
	Domain   string `xml:"Domain,attr"`
	ID       string `xml:"Id,attr"`
	Password string `xml:"Password,attr"`
}

type reqProduct struct {
	ServiceID string `xml:"ServiceId,attr"`
	ID        string `xml:"Id,attr"`
	Version   string `xml:"Version,attr"`

	NAE  *naeInput `xml:"cb:CB_NAE_ProductInput,omitempty"`
	NAEP *naeInput `xml:"cb:CB_NAEP_ProductInput,omitempty"`
	ME   *meInput  `xml:"cb:CB_ME_ProductInput,omitempty"`
	MEP  *meInput  `xml:"cb:CB_MEP_ProductInput,omitempty"`
	AUE  *aueInput `xml:"cb:CB_AUE_ProductInput,omitempty"`
	PAE  *paeInput `xml:"cb:CB_PAE_ProductInput,omitempty"`
}

type naeInput struct {
	Subject          wireSubject       `xml:"cb:Subject"`
	Application      *wireApplication  `xml:"cb:Application,omitempty"`
	Link             wireLink          `xml:"cb:Link"`
	ApplicationCodes *wireAppCodes     `xml:"cb:ApplicationCodes,omitempty"`
	Presentation     *wirePresentation `xml:"cb:PresentationOptions,omitempty"`
}

type meInput struct {
	Subject      wireSubject       `xml:"cb:Subject"`
	Presentation *wirePresentation `xml:"cb:PresentationOptions,omitempty"`
}

type aueInput struct {
	ApplicationCodes wireAppCodes   `xml:"cb:ApplicationCodes"`
	Application      *wireAppUpdate `xml:"cb:Application,omitempty"`
}

type paeInput struct {
	DateFrom   string `xml:"DateFrom,attr,omitempty"`
	DateTo     string `xml:"DateTo,attr,omitempty"`
	AlertCode  string `xml:"AlertCode,attr,omitempty"`
	MaxResults string `xml:"MaxResults,attr,omitempty"`
}

type wirePresentation struct {
	Culture    string `xml:"Culture,attr"`
	FormatType string `xml:"FormatType,attr"`
}

type wireSubject struct {
	CBSubjectCode     string `xml:"CBSubjectCode,attr,omitempty"`
	ProviderSubjectNo string `xml:"ProviderSubjectNo,attr,omitempty"`
	SubjectRefDate    string `xml:"SubjectRefDate,attr,omitempty"`

	Individual *wireIndividual `xml:"cb:Individual,omitempty"`
	Company    *wireCompany    `xml:"cb:Company,omitempty"`
}

// Порядок дочерних элементов внутри Individual значим и закреплён схемой
// бюро: имя, данные рождения, адреса, идентификационные коды, документы,
// контакты, занятость. Порядок полей структуры и есть порядок сериализации.
type wireIndividual struct {
	Gender        string `xml:"Gender,attr,omitempty"`
	MaritalStatus string `xml:"MaritalStatus,attr,omitempty"`

	Name       wireIndividualName `xml:"cb:IndividualName"`
	BirthData  wireBirthData      `xml:"cb:BirthData"`
	Addresses  []wireAddress      `xml:"cb:Address"`
	IDCodes    []wireIDCode       `xml:"cb:IdentificationCode"`
	Documents  []wireIDDocument   `xml:"cb:ID"`
	Contacts   []wireContact      `xml:"cb:Contact"`
	Employment *wireEmployment    `xml:"cb:EmploymentData,omitempty"`
}

type wireIndividualName struct {
	FirstName        string `xml:"FirstName,attr"`
	LastName         string `xml:"LastName,attr"`
	Patronymic       string `xml:"Patronymic,attr,omitempty"`
	OriginalLastName string `xml:"OriginalLastName,attr,omitempty"`
}

type wireBirthData struct {
	Date    string `xml:"Date,attr"`
	Place   string `xml:"Place,attr,omitempty"`
	Country string `xml:"Country,attr"`
}

type wireCompany struct {
	LegalForm         string `xml:"LegalForm,attr,omitempty"`
	RegistrationPlace string `xml:"RegistrationPlace,attr,omitempty"`
	EconomicActivity  string `xml:"EconomicActivity,attr,omitempty"`
	EstablishmentDate string `xml:"EstablishmentDate,attr,omitempty"`
	GrossIncome       string `xml:"GrossIncome,attr,omitempty"`
	NoOfEmployees     string `xml:"NoOfEmployees,attr,omitempty"`

	Name      wireCompanyName `xml:"cb:CompanyName"`
	Addresses []wireAddress   `xml:"cb:Address"`
	IDCodes   []wireIDCode    `xml:"cb:IdentificationCode"`
	Contacts  []wireContact   `xml:"cb:Contact"`
}

type wireCompanyName struct {
	TradeName        string `xml:"TradeName,attr"`
	ShortCompanyName string `xml:"ShortCompanyName,attr,omitempty"`
}

type wireAddress struct {
	Type        string `xml:"Type,attr"`
	FullAddress string `xml:"FullAddress,attr,omitempty"`
	StreetNo    string `xml:"StreetNo,attr,omitempty"`
	PostalCode  string `xml:"PostalCode,attr,omitempty"`
	City        string `xml:"City,attr,omitempty"`
	District    string `xml:"District,attr,omitempty"`
	Region      string `xml:"Region,attr,omitempty"`
	Country     string `xml:"Country,attr,omitempty"`
}

type wireIDCode struct {
	Type   string `xml:"Type,attr"`
	Number string `xml:"Number,attr"`
}

type wireIDDocument struct {
	Type         string `xml:"Type,attr"`
	Number       string `xml:"Number,attr"`
	IssueDate    string `xml:"IssueDate,attr,omitempty"`
	ExpiryDate   string `xml:"ExpiryDate,attr,omitempty"`
	IssueCountry string `xml:"IssueCountry,attr"`
}

type wireContact struct {
	Type  string `xml:"Type,attr"`
	Value string `xml:"Value,attr"`
}

type wireEmployment struct {
	GrossIncome      string `xml:"GrossIncome,attr,omitempty"`
	Currency         string `xml:"Currency,attr"`
	OccupationStatus string `xml:"OccupationStatus,attr,omitempty"`
	DateHiredFrom    string `xml:"DateHiredFrom,attr,omitempty"`
	Occupation       string `xml:"Occupation,attr,omitempty"`

	EmployerData *wireEmployerData `xml:"cb:EmployerData,omitempty"`
}

type wireEmployerData struct {
	Name wireCompanyName `xml:"cb:CompanyName"`
}

type wireApplication struct {
	ContractType        string `xml:"ContractType,attr"`
	ContractPhase       string `xml:"ContractPhase,attr"`
	ContractRequestDate string `xml:"ContractRequestDate,attr"`
	Currency            string `xml:"Currency,attr"`

	Installment *wireInstallment `xml:"cb:Installment,omitempty"`
	CreditCard  *wireCreditCard  `xml:"cb:CreditCard,omitempty"`
}

type wireInstallment struct {
	FinancedAmount       string `xml:"FinancedAmount,attr"`
	MonthlyPaymentAmount string `xml:"MonthlyPaymentAmount,attr,omitempty"`
	InstallmentsNumber   string `xml:"InstallmentsNumber,attr,omitempty"`
	PaymentPeriodicity   string `xml:"PaymentPeriodicity,attr,omitempty"`
	DueDate              string `xml:"DueDate,attr,omitempty"`
}

type wireCreditCard struct {
	CreditLimit string `xml:"CreditLimit,attr"`
}

type wireLink struct {
	Role        string `xml:"Role,attr"`
	CompanyRole string `xml:"CompanyRole,attr,omitempty"`
}

type wireAppCodes struct {
	ProviderContractNo    string `xml:"ProviderContractNo,attr,omitempty"`
	ProviderApplicationNo string `xml:"ProviderApplicationNo,attr,omitempty"`
	CBContractCode        string `xml:"CBContractCode,attr,omitempty"`
}

type wireAppUpdate struct {
	ContractPhase        string `xml:"ContractPhase,attr,omitempty"`
	CancellationFlag     string `xml:"CancellationFlag,attr,omitempty"`
	FinancedAmount       string `xml:"FinancedAmount,attr,omitempty"`
	CreditLimit          string `xml:"CreditLimit,attr,omitempty"`
	MonthlyPaymentAmount string `xml:"MonthlyPaymentAmount,attr,omitempty"`
}

// ---------------------------------------------------------------------------
// Ответ. Имена без префиксов: совпадение идёт по локальному имени.

type respEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    respBody `xml:"Body"`
}

type respBody struct {
	MGResponse *mgResponse `xml:"MGResponse"`
}

type mgResponse struct {
	MessageResponse *wireResult      `xml:"MessageResponse"`
	ProductResponse *wireProductResp `xml:"ProductResponse"`
}

type wireResult struct {
	ResultCode        string `xml:"ResultCode,attr"`
	ResultDescription string `xml:"ResultDescription,attr"`
}

type wireProductResp struct {
	ResultCode        string `xml:"ResultCode,attr"`
	ResultDescription string `xml:"ResultDescription,attr"`

	NAE  *naeOutput  `xml:"CB_NAE_ProductOutput"`
	NAEP *naepOutput `xml:"CB_NAEP_ProductOutput"`
	ME   *meOutput   `xml:"CB_ME_ProductOutput"`
	MEP  *mepOutput  `xml:"CB_MEP_ProductOutput"`
	AUE  *aueOutput  `xml:"CB_AUE_ProductOutput"`
	PAE  *paeOutput  `xml:"CB_PAE_ProductOutput"`
}

type naeOutput struct {
	ApplicationCodes *wireAppCodesOut  `xml:"ApplicationCodes"`
	CreditReport     *wireCreditReport `xml:"CreditReport"`
}

type naepOutput struct {
	naeOutput
	Presentation *wirePresentationDoc `xml:"PresentationDocument"`
}

type meOutput struct {
	CreditReport *wireCreditReport `xml:"CreditReport"`
}

type mepOutput struct {
	meOutput
	Presentation *wirePresentationDoc `xml:"PresentationDocument"`
}

type aueOutput struct {
	ApplicationCodes   *wireAppCodesOut `xml:"ApplicationCodes"`
	ApplicationDB      *wireAppSnapshot `xml:"ApplicationDB"`
	ApplicationUpdated *wireAppSnapshot `xml:"ApplicationUpdated"`
}

type paeOutput struct {
	Alerts []wireAlert `xml:"Alert"`
}

type wireAppCodesOut struct {
	ProviderContractNo    string `xml:"ProviderContractNo,attr"`
	ProviderApplicationNo string `xml:"ProviderApplicationNo,attr"`
	CBContractCode        string `xml:"CBContractCode,attr"`
}

type wireAppSnapshot struct {
	ContractType         string `xml:"ContractType,attr"`
	ContractPhase        string `xml:"ContractPhase,attr"`
	ContractRequestDate  string `xml:"ContractRequestDate,attr"`
	FinancedAmount       string `xml:"FinancedAmount,attr"`
	CreditLimit          string `xml:"CreditLimit,attr"`
	MonthlyPaymentAmount string `xml:"MonthlyPaymentAmount,attr"`
	CancellationFlag     string `xml:"CancellationFlag,attr"`
}

type wireAlert struct {
	AlertCode          string `xml:"AlertCode,attr"`
	AlertDescription   string `xml:"AlertDescription,attr"`
	EventDateTime      string `xml:"EventDateTime,attr"`
	CBSubjectCode      string `xml:"CBSubjectCode,attr"`
	CBContractCode     string `xml:"CBContractCode,attr"`
	ProviderContractNo string `xml:"ProviderContractNo,attr"`
	SubjectName        string `xml:"SubjectName,attr"`
	Details            string `xml:",chardata"`
}

type wirePresentationDoc struct {
	Culture    string `xml:"Culture,attr"`
	FormatType string `xml:"FormatType,attr"`
	Data       string `xml:",chardata"`
}

type wireCreditReport struct {
	MatchedSubject  *wireMatchedSubject  `xml:"MatchedSubject"`
	ContractHistory *wireContractHistory `xml:"ContractHistory"`
	Footprint       *wireFootprint       `xml:"Footprint"`
}

type wireMatchedSubject struct {
	CBSubjectCode string `xml:"CBSubjectCode,attr"`
	FlagMatched   string `xml:"FlagMatched,attr"`
}

type wireContractHistory struct {
	AggregatedData      *wireAggregated  `xml:"AggregatedData"`
	NotGrantedContracts []wireNotGranted `xml:"NotGrantedContract"`
	GrantedContracts    []wireGranted    `xml:"GrantedContract"`
}

type wireAggregated struct {
	TotalContracts string `xml:"TotalContracts,attr"`
	TotalProviders string `xml:"TotalProviders,attr"`
	Currency       string `xml:"Currency,attr"`
}

type wireNotGranted struct {
	CBContractCode     string `xml:"CBContractCode,attr"`
	ProviderContractNo string `xml:"ProviderContractNo,attr"`
	ContractType       string `xml:"ContractType,attr"`
	ContractPhase      string `xml:"ContractPhase,attr"`
	LastUpdateDate     string `xml:"LastUpdateDate,attr"`
}

type wireGranted struct {
	CBContractCode     string `xml:"CBContractCode,attr"`
	ProviderContractNo string `xml:"ProviderContractNo,attr"`
	ContractType       string `xml:"ContractType,attr"`
	ContractPhase      string `xml:"ContractPhase,attr"`
	ProviderName       string `xml:"ProviderName,attr"`
	LastUpdateDate     string `xml:"LastUpdateDate,attr"`

	PaymentHistory []wirePayment `xml:"PaymentHistory"`
}

type wirePayment struct {
	ReferenceYear      string `xml:"ReferenceYear,attr"`
	ReferenceMonth     string `xml:"ReferenceMonth,attr"`
	OutstandingBalance string `xml:"OutstandingBalance,attr"`
	DaysPastDue        string `xml:"DaysPastDue,attr"`
	Status             string `xml:"Status,attr"`
}

type wireFootprint struct {
	Counters *wireCounters       `xml:"Counters"`
	Data     []wireFootprintData `xml:"FootprintData"`
}

type wireCounters struct {
	Count1Month   string `xml:"Count1Month,attr"`
	Count3Months  string `xml:"Count3Months,attr"`
	Count6Months  string `xml:"Count6Months,attr"`
	Count12Months string `xml:"Count12Months,attr"`
}

type wireFootprintData struct {
	EnquiryType   string `xml:"EnquiryType,attr"`
	EnquiryDate   string `xml:"EnquiryDate,attr"`
	InstituteName string `xml:"InstituteName,attr"`
}
